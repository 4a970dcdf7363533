package mdctx

import "errors"

// ErrAlreadyCommitted reports use of a Builder after Commit has consumed
// it. Commit returns it; the chainable mutators panic with it, since their
// signatures cannot carry an error. Both indicate a logic bug in the
// calling code, not a condition to retry.
var ErrAlreadyCommitted = errors.New("diagnostic context builder already committed")

// ErrAlreadyRestored reports a second Restore on a Transaction whose diff
// has already been consumed.
var ErrAlreadyRestored = errors.New("diagnostic context transaction already restored")
