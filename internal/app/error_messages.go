// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// service builder, the launcher and the command line tool.
//
// All Msg* constants are human-readable message strings that end up in
// returned errors or log entries. Keeping them in one place ensures
// consistent wording.
package app

const (
	// MsgNodeNotInstalled is used when the helper that asks Node.js for its
	// own location could not be executed at all.
	MsgNodeNotInstalled = "Node.js is not installed!"

	// MsgDefaultNodeNotFound is used when the helper ran but did not report
	// an existing Node.js binary.
	MsgDefaultNodeNotFound = "Can't get a path to the default Node.js instance"

	// MsgAppiumNotInstalled is used when no Appium installation could be
	// found in the global npm package root.
	MsgAppiumNotInstalled = "There is no installed nodes! Please install node via NPM " +
		"(https://www.npmjs.com/package/appium#using-node-js) or download and " +
		"install Appium app (http://appium.io/downloads.html)"

	// MsgNpmRootLookupFailed is used when the global npm package root lookup
	// could not be executed.
	MsgNpmRootLookupFailed = "cannot look up the global npm package root"

	// MsgInvalidAppiumNode is used when an explicitly configured entry
	// script does not exist.
	MsgInvalidAppiumNode = "The invalid appium node has been defined"

	// MsgNoLauncher is used when Start is called on a builder without a
	// launcher.
	MsgNoLauncher = "no launcher configured"
)
