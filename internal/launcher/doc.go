// Package launcher starts a resolved Appium server as a child process of
// the current program.
//
// ExecLauncher implements the service.Launcher interface on top of os/exec.
// The server output is forwarded line by line to the logger, and the
// returned Process can be stopped gracefully with a deadline taken from the
// caller's context.
package launcher
