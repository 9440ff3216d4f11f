// Package platform abstracts the parts of the host the service builder
// depends on: environment lookups, operating system detection and
// short-lived helper command execution.
//
// Everything here is injected into the builder so that resolution logic can
// be exercised deterministically against simulated hosts (for example a
// Windows host on a Linux CI runner) and against mocked commands.
package platform
