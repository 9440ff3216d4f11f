package platform

import "errors"

var (
	// ErrCommandStart indicates the helper process could not be spawned,
	// typically because the executable is missing from PATH.
	ErrCommandStart = errors.New("cannot start command")
	// ErrCommandWait indicates the helper process was started but waiting
	// for it failed for a reason other than a non-zero exit status.
	ErrCommandWait = errors.New("cannot wait for command")
)
