package mdctx

import "log/slog"

// change pairs what the store held before a commit with what the commit
// applied.
type change struct {
	original Value
	applied  Value
}

// Transaction records a committed set of diagnostic context changes,
// sufficient to reverse them. Produced only by Builder.Commit; single-use.
type Transaction struct {
	store  Store
	logger *slog.Logger
	id     string
	diff   map[string]change // nil once restored
	order  []string
}

// ID returns the transaction's identifier, which drift diagnostics carry
// so skipped keys can be correlated with the commit that staged them.
func (t *Transaction) ID() string {
	return t.id
}

// Restore reverts every key this transaction changed to its pre-commit
// value. A key whose current value no longer matches what this transaction
// applied has been changed by someone else since Commit: it is skipped and
// reported at debug level, leaving the other party's value in place.
// Per-key reverts are independent, so a partial restore is expected
// behavior, not a failure.
//
// Restore always consumes the transaction, even when keys were skipped.
// A second call returns ErrAlreadyRestored.
func (t *Transaction) Restore() error {
	if t.diff == nil {
		return ErrAlreadyRestored
	}

	for _, key := range t.order {
		c := t.diff[key]

		now := Absent()
		if v, ok := t.store.Get(key); ok {
			now = OfPtr(v)
		}

		if !now.Equal(c.applied) {
			t.logger.Debug("diagnostic context drifted, leaving key untouched",
				slog.String("txn_id", t.id),
				slog.String("key", key),
				slog.Any("applied", c.applied),
				slog.Any("found", now),
			)

			continue
		}

		if c.original.Exists() {
			t.store.Put(key, c.original.Ptr())
		} else {
			t.store.Remove(key)
		}
	}

	t.diff = nil
	t.order = nil

	return nil
}
