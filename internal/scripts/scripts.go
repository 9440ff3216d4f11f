// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package scripts ships the small helper scripts used to query a host for
// its Node.js installation, and materializes them on disk so they can be
// handed to an interpreter.
package scripts

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

//go:embed assets/*
var assets embed.FS

// Script names an embedded helper script.
type Script string

const (
	// DefaultNodeRootUnix prints the global npm package root.
	// It runs under a login bash so that nvm/asdf style PATH tweaks apply.
	DefaultNodeRootUnix Script = "get_path_to_default_node.sh"

	// NodeExecutable prints the path of the node binary running it.
	NodeExecutable Script = "getExe.js"
)

// ErrUnknownScript is returned for a Script with no embedded payload.
var ErrUnknownScript = errors.New("unknown helper script")

// Content returns the embedded payload of s.
func (s Script) Content() ([]byte, error) {
	data, err := assets.ReadFile("assets/" + string(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownScript, s)
	}
	return data, nil
}

// Cache materializes scripts into a private temporary directory on first
// use and hands out the same file for subsequent requests. The directory is
// removed by Close.
//
// A Cache is not safe for concurrent use.
type Cache struct {
	baseDir string
	dir     string
	paths   map[Script]string
}

// NewCache returns a Cache that materializes scripts under baseDir.
// os.TempDir is used when baseDir is empty.
func NewCache(baseDir string) *Cache {
	return &Cache{
		baseDir: baseDir,
		paths:   make(map[Script]string),
	}
}

// Path returns the absolute path of the materialized script, writing it to
// disk if this is the first request for it.
func (c *Cache) Path(s Script) (string, error) {
	if p, ok := c.paths[s]; ok {
		return p, nil
	}

	data, err := s.Content()
	if err != nil {
		return "", err
	}

	if c.dir == "" {
		base := c.baseDir
		if base == "" {
			base = os.TempDir()
		}
		dir := filepath.Join(base, "appium-scripts-"+uuid.NewString())
		if err = os.MkdirAll(dir, 0o700); err != nil {
			return "", fmt.Errorf("error creating scripts directory: %w", err)
		}
		c.dir = dir
	}

	p := filepath.Join(c.dir, string(s))
	if err = os.WriteFile(p, data, 0o700); err != nil {
		return "", fmt.Errorf("error writing script %s: %w", s, err)
	}

	c.paths[s] = p
	return p, nil
}

// Dir returns the directory scripts are materialized into, or an empty
// string if nothing has been materialized yet.
func (c *Cache) Dir() string {
	return c.dir
}

// Close deletes every materialized script. Deletion is best effort: the
// returned error is informational and the Cache is reset either way.
func (c *Cache) Close() error {
	if c.dir == "" {
		return nil
	}

	err := os.RemoveAll(c.dir)
	c.dir = ""
	clear(c.paths)

	return err
}
