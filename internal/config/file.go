package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors [StructuredConfig] for config files, with durations
// accepted as strings ("90s") or numbers of nanoseconds.
type fileConfig struct {
	Server struct {
		NodePath       string            `json:"node_path" yaml:"node_path"`
		AppiumJS       string            `json:"appium_js" yaml:"appium_js"`
		Address        string            `json:"address" yaml:"address"`
		Port           *int              `json:"port" yaml:"port"`
		StartupTimeout Duration          `json:"startup_timeout" yaml:"startup_timeout"`
		LogFile        string            `json:"log_file" yaml:"log_file"`
		Args           Arguments         `json:"args" yaml:"args"`
		Environment    map[string]string `json:"environment" yaml:"environment"`
	} `json:"server" yaml:"server"`

	Log Log `json:"log" yaml:"log"`
}

// parseFile reads a JSON or YAML config file, chosen by extension.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err = json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFileFormat, ext)
	}

	cfg := &StructuredConfig{
		Server: Server{
			NodePath:       fileCfg.Server.NodePath,
			AppiumJS:       fileCfg.Server.AppiumJS,
			Address:        fileCfg.Server.Address,
			Port:           fileCfg.Server.Port,
			StartupTimeout: time.Duration(fileCfg.Server.StartupTimeout),
			LogFile:        fileCfg.Server.LogFile,
			Args:           fileCfg.Server.Args,
			Environment:    fileCfg.Server.Environment,
		},
		Log: fileCfg.Log,
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var tmp time.Duration
	if err := node.Decode(&tmp); err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*d = Duration(tmp)
	return nil
}
