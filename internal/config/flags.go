package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"
)

// ParseFlags parses all configuration flags in args (without the program
// name).
//
// Flags:
//
//	-c/-config        JSON or YAML file path with configs
//	-node             Node.js executable path
//	-appium-js        Appium entry script path
//	-a                bind IP address
//	-p                port, 0 for any free port
//	-startup-timeout  startup timeout (e.g., "90s", "2m")
//	-log-file         server log file
//	-arg              extra server flags, shell-quoted, repeatable
//	-env              KEY=VALUE for the server environment, repeatable
//	-log-level        minimum log level of this command
//	-log-console      human readable logs
//	-dry-run          print the resolved launch and exit
func ParseFlags(args []string) (*StructuredConfig, error) {
	var values flagValues
	fs := values.flagSet()
	fs.SetOutput(io.Discard)

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("error parsing flags: unexpected arguments: %s", shellquote.Join(fs.Args()...))
	}

	return values.config(), nil
}

// PrintUsage writes the flag defaults to w.
func PrintUsage(w io.Writer) {
	var values flagValues
	fs := values.flagSet()
	fs.SetOutput(w)
	fmt.Fprintln(w, "Usage of appium-service:")
	fs.PrintDefaults()
}

type flagValues struct {
	cfg         StructuredConfig
	port        optionalInt
	arguments   argumentsValue
	environment environmentValue
}

func (v *flagValues) flagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("appium-service", flag.ContinueOnError)

	fs.StringVar(&v.cfg.FilePath, "c", "", "JSON or YAML config file path")
	fs.StringVar(&v.cfg.FilePath, "config", "", "JSON or YAML config file path (alias)")
	fs.StringVar(&v.cfg.Server.NodePath, "node", "", "Node.js executable path")
	fs.StringVar(&v.cfg.Server.AppiumJS, "appium-js", "", "Appium entry script path")
	fs.StringVar(&v.cfg.Server.Address, "a", "", "Bind IP address")
	fs.Var(&v.port, "p", "Port, 0 for any free port")
	fs.DurationVar(&v.cfg.Server.StartupTimeout, "startup-timeout", 0, "Startup timeout (e.g., 90s, 2m)")
	fs.StringVar(&v.cfg.Server.LogFile, "log-file", "", "Server log file")
	fs.Var(&v.arguments, "arg", "Extra server flags, shell-quoted (repeatable)")
	fs.Var(&v.environment, "env", "KEY=VALUE added to the server environment (repeatable)")
	fs.StringVar(&v.cfg.Log.Level, "log-level", "", "Minimum log level")
	fs.BoolVar(&v.cfg.Log.Console, "log-console", false, "Human readable logs")
	fs.BoolVar(&v.cfg.DryRun, "dry-run", false, "Print the resolved launch and exit")

	return fs
}

func (v *flagValues) config() *StructuredConfig {
	cfg := v.cfg
	cfg.Server.Port = v.port.value
	cfg.Server.Args = Arguments(v.arguments)
	if len(v.environment) > 0 {
		cfg.Server.Environment = v.environment
	}
	return &cfg
}

// optionalInt is a flag.Value that remembers whether it was set, so that
// an explicit zero can be told apart from an absent flag.
type optionalInt struct {
	value *int
}

func (o *optionalInt) String() string {
	if o.value == nil {
		return ""
	}
	return strconv.Itoa(*o.value)
}

func (o *optionalInt) Set(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return errors.New("need an integer")
	}
	o.value = &n
	return nil
}

// argumentsValue accumulates shell-quoted flag strings.
type argumentsValue []string

func (a *argumentsValue) String() string {
	return shellquote.Join(*a...)
}

func (a *argumentsValue) Set(s string) error {
	tokens, err := shellquote.Split(s)
	if err != nil {
		return err
	}
	*a = append(*a, tokens...)
	return nil
}

// environmentValue accumulates KEY=VALUE pairs.
type environmentValue map[string]string

func (e *environmentValue) String() string {
	if *e == nil {
		return ""
	}
	pairs := make([]string, 0, len(*e))
	for _, k := range slices.Sorted(maps.Keys(*e)) {
		pairs = append(pairs, k+"="+(*e)[k])
	}
	return strings.Join(pairs, ",")
}

func (e *environmentValue) Set(s string) error {
	k, v, ok := strings.Cut(s, "=")
	if !ok || strings.TrimSpace(k) == "" {
		return errors.New("need a variable in a form `KEY=VALUE`")
	}
	if *e == nil {
		*e = make(environmentValue)
	}
	(*e)[k] = v
	return nil
}
