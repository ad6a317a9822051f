package tree

import "errors"

// ErrWrite is returned when the output sink rejects a line.
var ErrWrite = errors.New("write tree output")
