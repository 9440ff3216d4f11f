// Package server runs a local Appium server in the foreground.
//
// It starts the server through a [Starter], then blocks until the server
// exits on its own or a stop signal arrives, in which case the server is
// shut down gracefully within a deadline.
package server
