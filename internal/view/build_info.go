// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-appium-service/models"
)

// PrintBuildInfo writes the build metadata, one field per line.
func PrintBuildInfo(w io.Writer, info models.AppBuildInfo) {
	fmt.Fprintf(w, "Build version: %s\n", valueOrNA(info.BuildVersion()))
	fmt.Fprintf(w, "Build date: %s\n", valueOrNA(info.BuildDate()))
	fmt.Fprintf(w, "Build commit: %s\n", valueOrNA(info.BuildCommit()))
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
