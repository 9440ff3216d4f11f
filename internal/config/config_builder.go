package config

import (
	"errors"
	"fmt"
	"reflect"

	"dario.cat/mergo"
	"github.com/MKhiriev/go-appium-service/internal/platform"
)

// configBuilder collects configs in ascending precedence.
type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 3),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride, mergo.WithTransformers(optionalTransformer{})); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (b *configBuilder) withEnv(host platform.Host) *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg, host.Variables()); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flagsCfg, err := ParseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flagsCfg)
	return b
}

// withFile loads the config file named by the last source that set one.
// The file has the lowest precedence, so it goes first.
func (b *configBuilder) withFile() *configBuilder {
	var path string
	for _, cfg := range b.configs {
		if cfg.FilePath != "" {
			path = cfg.FilePath
		}
	}

	if path == "" {
		return b
	}

	fileCfg, err := parseFile(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append([]*StructuredConfig{fileCfg}, b.configs...)
	return b
}

// optionalTransformer makes a set *int replace the merged value even when
// it points at zero. mergo would otherwise merge the pointees and skip the
// zero.
type optionalTransformer struct{}

func (optionalTransformer) Transformer(typ reflect.Type) func(dst, src reflect.Value) error {
	if typ != reflect.TypeFor[*int]() {
		return nil
	}

	return func(dst, src reflect.Value) error {
		if !src.IsNil() && dst.CanSet() {
			n := int(src.Elem().Int())
			dst.Set(reflect.ValueOf(&n))
		}
		return nil
	}
}
