// Package mdctx provides transactional staging, commit, and conditional
// restore of entries in a mapped diagnostic context: a string-keyed map of
// optional string values that a logging pipeline reads to enrich the
// records it emits.
//
// # Staging and committing
//
// A Builder accumulates desired mutations without touching the store.
// Commit applies them and returns a Transaction that remembers, for every
// touched key, what the store held immediately beforehand:
//
//	store := mdctx.NewMapStore()
//
//	txn, err := mdctx.Put(store, "request_id", "req-1138").
//		Put("tenant", "acme").
//		Remove("stale_key").
//		Commit()
//	if err != nil {
//		return err
//	}
//
// # Restoring
//
// Restore reverts each key to its pre-commit value, but only if the
// store's current value still matches what this transaction applied. A key
// changed by someone else in the meantime has drifted: it is skipped and
// reported at debug level rather than clobbered.
//
//	defer func() {
//		if err := txn.Restore(); err != nil {
//			logger.Error("restore failed", slog.Any("error", err))
//		}
//	}()
//
// # Lifecycle rules
//
// Builders and Transactions are single-use, single-owner values. Commit
// consumes the Builder and Restore consumes the Transaction; a second
// Commit or Restore returns ErrAlreadyCommitted or ErrAlreadyRestored, and
// mutating a committed Builder panics. Neither type is safe for concurrent
// use, matching the per-goroutine scope of the context itself.
package mdctx
