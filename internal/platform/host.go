// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package platform

import (
	"maps"
	"os"
	"runtime"
	"strings"
)

// Windows is the GOOS value of Windows hosts.
const Windows = "windows"

// Host describes the environment the service builder runs in.
//
// Properties are in-process overrides that take precedence over the OS
// environment. They let an embedding program (or a test) pin a variable
// without touching the real process environment.
type Host struct {
	// Properties are consulted before the OS environment.
	Properties map[string]string

	// LookupEnv reads the OS environment. os.LookupEnv when nil.
	LookupEnv func(string) (string, bool)

	// Environ lists the OS environment as KEY=VALUE pairs. os.Environ when nil.
	Environ func() []string

	// GOOS is the target operating system. runtime.GOOS when empty.
	GOOS string
}

// Default returns a Host backed by the real process environment.
func Default() Host {
	return Host{
		LookupEnv: os.LookupEnv,
		Environ:   os.Environ,
		GOOS:      runtime.GOOS,
	}
}

// Lookup resolves a variable by name: a non-blank property wins, otherwise
// the OS environment value is used. The result is trimmed; an empty string
// means the variable is unset or blank in both places.
func (h Host) Lookup(name string) string {
	if v := strings.TrimSpace(h.Properties[name]); v != "" {
		return v
	}

	lookup := h.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	v, _ := lookup(name)
	return strings.TrimSpace(v)
}

// IsWindows reports whether the host runs Windows.
func (h Host) IsWindows() bool {
	return h.os() == Windows
}

// Variables returns the OS environment merged with the properties, the
// latter taking precedence.
func (h Host) Variables() map[string]string {
	environ := h.Environ
	if environ == nil {
		environ = os.Environ
	}

	vars := make(map[string]string)
	for _, kv := range environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		vars[k] = v
	}
	maps.Copy(vars, h.Properties)

	return vars
}

func (h Host) os() string {
	if h.GOOS == "" {
		return runtime.GOOS
	}
	return h.GOOS
}
