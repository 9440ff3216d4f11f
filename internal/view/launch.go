package view

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-appium-service/models"
	"github.com/charmbracelet/lipgloss"
)

// RenderLaunch renders a resolved launch as a bordered table.
func RenderLaunch(d models.LaunchDescriptor) string {
	rows := [][2]string{
		{"Node.js", d.Executable},
		{"Entry script", firstOrNA(d.Args)},
		{"URL", d.URL()},
		{"Port", portLabel(d.Port)},
		{"Startup timeout", d.StartupTimeout.String()},
		{"Environment", environmentLabel(d.Env)},
		{"Command", d.CommandLine()},
	}

	width := 0
	for _, r := range rows {
		width = max(width, lipgloss.Width(r[0]))
	}

	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, titleStyle.Render("APPIUM SERVICE"), "")
	for _, r := range rows {
		label := labelStyle.Width(width + 2).Render(r[0])
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, label, r[1]))
	}

	return boxStyle.Render(strings.Join(lines, "\n"))
}

func firstOrNA(args []string) string {
	if len(args) == 0 {
		return valueOrNA("")
	}
	return valueOrNA(args[0])
}

func portLabel(port int) string {
	if port == 0 {
		return "any free port"
	}
	return strconv.Itoa(port)
}

func environmentLabel(env map[string]string) string {
	if len(env) == 0 {
		return "inherited"
	}

	pairs := make([]string, 0, len(env))
	for _, k := range slices.Sorted(maps.Keys(env)) {
		pairs = append(pairs, k+"="+env[k])
	}
	return strings.Join(pairs, "\n")
}
