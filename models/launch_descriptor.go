// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"maps"
	"net"
	"slices"
	"strconv"
	"time"

	"github.com/kballard/go-shellquote"
)

// DefaultLocalIPAddress is the wildcard address the server binds to when no
// address has been configured.
const DefaultLocalIPAddress = "0.0.0.0"

// LaunchDescriptor is the fully resolved description of a server process:
// what to execute, with which arguments and environment, and how long the
// launcher may wait for it to come up.
//
// A LaunchDescriptor is produced by the service builder and consumed by a
// launcher. It is treated as immutable once produced; accessors return
// copies of the slice and map fields.
type LaunchDescriptor struct {
	// Executable is the path to the Node.js binary.
	Executable string

	// Address is the validated bind address passed via --address.
	Address string

	// Port is the bind port passed via --port. Zero lets the server pick.
	Port int

	// Args is the ordered argument list. Args[0] is the entry script.
	Args []string

	// Env holds environment overrides applied on top of the parent process
	// environment.
	Env map[string]string

	// StartupTimeout bounds how long a launcher waits for the server.
	StartupTimeout time.Duration
}

// Arguments returns a copy of the argument list.
func (d LaunchDescriptor) Arguments() []string {
	return slices.Clone(d.Args)
}

// Environment returns a copy of the environment overrides.
func (d LaunchDescriptor) Environment() map[string]string {
	if d.Env == nil {
		return map[string]string{}
	}
	return maps.Clone(d.Env)
}

// CommandLine renders the executable and its arguments as a single shell
// quoted string, suitable for logs and for copy-pasting into a terminal.
func (d LaunchDescriptor) CommandLine() string {
	return shellquote.Join(append([]string{d.Executable}, d.Args...)...)
}

// URL returns the base URL a client should use to reach the server.
// The wildcard addresses are mapped to the matching loopback address.
func (d LaunchDescriptor) URL() string {
	host := d.Address
	switch host {
	case "", DefaultLocalIPAddress:
		host = "127.0.0.1"
	case "::":
		host = "::1"
	}
	return "http://" + net.JoinHostPort(host, strconv.Itoa(d.Port)) + "/"
}
