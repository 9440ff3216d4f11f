package config

import "github.com/MKhiriev/go-appium-service/internal/service"

// Apply copies the server settings onto b. Unset values leave the builder
// defaults in place.
func (cfg *StructuredConfig) Apply(b *service.ServiceBuilder) (*service.ServiceBuilder, error) {
	s := cfg.Server

	if s.NodePath != "" {
		b.WithNodeExecutable(s.NodePath)
	}
	if s.AppiumJS != "" {
		b.WithAppiumJS(s.AppiumJS)
	}
	if s.Address != "" {
		b.WithIPAddress(s.Address)
	}
	if s.Port != nil {
		b.UsingPort(*s.Port)
	}
	if s.StartupTimeout != 0 {
		b.WithStartupTimeout(s.StartupTimeout)
	}
	if s.LogFile != "" {
		b.WithLogFile(s.LogFile)
	}
	if len(s.Environment) > 0 {
		b.WithEnvironment(s.Environment)
	}

	pairs, err := s.Args.Pairs()
	if err != nil {
		return b, err
	}
	for _, p := range pairs {
		b.WithArgumentValue(p.Flag, p.Value)
	}

	return b, b.Err()
}
