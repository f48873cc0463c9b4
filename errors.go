package fitlog

import "errors"

// ErrFileAccess reports a path that is missing, unreadable or unwritable.
// Filesystem failures are fatal for the run, there is no retry.
var ErrFileAccess = errors.New("file access error")

// ErrFormat reports malformed content: a missing header row, inconsistent
// field counts, or an unparsable value in an identity column.
var ErrFormat = errors.New("format error")
