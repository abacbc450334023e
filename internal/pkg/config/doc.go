// Package config provides functionality for loading and managing application configuration.
//
// This package defines the settings structs consumed by the CLI, validates
// them, and centralizes their defaults. Settings are populated from
// environment variables by the commands layer.
package config
