package mdctx

// Package-level entry points, one per Builder mutator. Each creates a
// fresh Builder on store and delegates, so callers can chain straight from
// the package: mdctx.Put(store, "a", "b").Remove("c").Commit().

// Put starts a Builder on store with key staged to value.
func Put(store Store, key, value string) *Builder {
	return New(store).Put(key, value)
}

// PutPtr starts a Builder on store with key staged to value, which may be
// nil to store the null marker.
func PutPtr(store Store, key string, value *string) *Builder {
	return New(store).PutPtr(key, value)
}

// PutOrDefault starts a Builder on store with key staged to *value when
// value is non-nil, def otherwise.
func PutOrDefault(store Store, key string, value *string, def string) *Builder {
	return New(store).PutOrDefault(key, value, def)
}

// PutIfPresent starts a Builder on store with key staged to *value when
// value is non-nil, staging nothing otherwise.
func PutIfPresent(store Store, key string, value *string) *Builder {
	return New(store).PutIfPresent(key, value)
}

// Remove starts a Builder on store with key staged for deletion.
func Remove(store Store, key string) *Builder {
	return New(store).Remove(key)
}

// Clear starts a Builder on store with every current key staged for
// deletion.
func Clear(store Store) *Builder {
	return New(store).Clear()
}
