package service

import (
	"maps"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
)

// assembleArgs builds the server command line:
//
//	<entry-script> --port <n> --address <addr> [--log <path>] [<flag> [<value>]]...
//
// Flags with a blank name or a nil value are skipped; a blank value emits
// the flag alone. Flags are emitted in name order so that the result does
// not depend on map iteration.
func assembleArgs(appiumJS string, port int, address, logFile string, serverArguments map[string]*string) []string {
	args := make([]string, 0, 5+2*len(serverArguments))
	args = append(args,
		absPath(appiumJS),
		"--port", strconv.Itoa(port),
		"--address", address,
	)

	if logFile != "" {
		args = append(args, "--log", absPath(logFile))
	}

	for _, argument := range slices.Sorted(maps.Keys(serverArguments)) {
		value := serverArguments[argument]
		if isBlank(argument) || value == nil {
			continue
		}

		args = append(args, argument)
		if !isBlank(*value) {
			args = append(args, *value)
		}
	}

	return args
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
