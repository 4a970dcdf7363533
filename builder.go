package mdctx

import (
	"log/slog"
	"maps"
	"slices"

	"github.com/google/uuid"
)

// Builder stages diagnostic context mutations without touching the store.
// Mutators return the Builder for chaining; Commit applies everything and
// consumes the Builder. Mutating a consumed Builder panics with
// ErrAlreadyCommitted.
type Builder struct {
	store   Store
	logger  *slog.Logger
	pending map[string]Value // nil once committed
	order   []string         // keys in first-staged order
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger the resulting Transaction uses for drift
// diagnostics. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// New returns an empty Builder operating on store.
func New(store Store, opts ...Option) *Builder {
	b := &Builder{
		store:   store,
		logger:  slog.Default(),
		pending: make(map[string]Value),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Put stages key to be set to value.
func (b *Builder) Put(key, value string) *Builder {
	return b.stage(key, Of(value))
}

// PutPtr stages key to be set to value, which may be nil to store the null
// marker. The key ends up present either way.
func (b *Builder) PutPtr(key string, value *string) *Builder {
	return b.stage(key, OfPtr(value))
}

// PutOrDefault stages *value for key when value is non-nil, def otherwise.
func (b *Builder) PutOrDefault(key string, value *string, def string) *Builder {
	if value == nil {
		return b.stage(key, Of(def))
	}

	return b.stage(key, Of(*value))
}

// PutIfPresent stages *value for key when value is non-nil; a nil value is
// a no-op that stages nothing.
func (b *Builder) PutIfPresent(key string, value *string) *Builder {
	b.checkOpen()

	if value == nil {
		return b
	}

	return b.stage(key, Of(*value))
}

// Remove stages key for deletion.
func (b *Builder) Remove(key string) *Builder {
	return b.stage(key, Absent())
}

// Clear stages every key currently in the store for deletion. The store is
// read now, not at commit time: keys that appear in the store afterwards
// are not affected.
func (b *Builder) Clear() *Builder {
	b.checkOpen()

	for _, key := range slices.Sorted(maps.Keys(b.store.Snapshot())) {
		b.stage(key, Absent())
	}

	return b
}

// Commit applies every staged change to the store in first-staged order,
// recording for each key the value the store held immediately beforehand.
// It returns a Transaction that can undo exactly these changes, and
// consumes the Builder. A second Commit returns ErrAlreadyCommitted.
func (b *Builder) Commit() (*Transaction, error) {
	if b.pending == nil {
		return nil, ErrAlreadyCommitted
	}

	diff := make(map[string]change, len(b.pending))

	for _, key := range b.order {
		desired := b.pending[key]

		original := Absent()
		if v, ok := b.store.Get(key); ok {
			original = OfPtr(v)
		}

		diff[key] = change{original: original, applied: desired}

		if desired.Exists() {
			b.store.Put(key, desired.Ptr())
		} else {
			b.store.Remove(key)
		}
	}

	txn := &Transaction{
		store:  b.store,
		logger: b.logger,
		id:     uuid.NewString(),
		diff:   diff,
		order:  b.order,
	}

	b.pending = nil
	b.order = nil

	return txn, nil
}

// stage records desired for key, overwriting any earlier stage of the same
// key while keeping its original position in the commit order.
func (b *Builder) stage(key string, desired Value) *Builder {
	b.checkOpen()

	if _, staged := b.pending[key]; !staged {
		b.order = append(b.order, key)
	}

	b.pending[key] = desired

	return b
}

func (b *Builder) checkOpen() {
	if b.pending == nil {
		panic(ErrAlreadyCommitted)
	}
}
