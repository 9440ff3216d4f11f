package service

import "errors"

// Error kinds returned by [ServiceBuilder]. Returned errors wrap one of
// these together with the underlying cause, so both can be matched with
// errors.Is.
var (
	// ErrNotFound means Node.js or the Appium entry script could not be
	// located by any resolution strategy.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInstance means an explicitly configured path does not exist.
	ErrInvalidInstance = errors.New("invalid instance")

	// ErrInvalidArgument means a configured value is out of range or
	// malformed (bind address, port, startup timeout).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrExecution means a helper command could not even be run, as
	// opposed to running and reporting nothing useful.
	ErrExecution = errors.New("helper execution failed")

	// ErrNoLauncher is returned by Start when no launcher was configured.
	ErrNoLauncher = errors.New("no launcher")
)
