package properties

import "errors"

// ErrKeyNotFound is reported by SetComment (and wrappers) when the
// document does not contain the key. Scan errors carry their position as a
// propparser.Error.
var ErrKeyNotFound = errors.New("no such key")
