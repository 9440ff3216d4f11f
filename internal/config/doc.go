// Package config provides configuration loading, merging, and validation
// facilities for the appium-service command.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. JSON or YAML config file
//  2. Environment variables
//  3. Command-line flags
//
// Maps such as the server environment are merged key by key. The main entry
// point is [GetStructuredConfig]; [StructuredConfig.Apply] hands the result
// to a service builder.
package config
