package platform

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/platform_mock.go -package=mock

// Command is a single helper process invocation whose standard output is
// captured for later inspection.
type Command interface {
	// Execute runs the command to completion.
	Execute(ctx context.Context) error

	// Stdout returns everything the command wrote to standard output.
	Stdout() string

	// Destroy releases the process. It kills the process if it is still
	// running and is safe to call more than once, and on a command that
	// never executed.
	Destroy()
}

// Runner creates helper commands.
type Runner interface {
	Command(name string, args ...string) Command
}
