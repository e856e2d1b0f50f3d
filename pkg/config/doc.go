// Package config loads configuration structs from environment variables.
//
// It combines github.com/joho/godotenv, which reads .env files into the
// process environment, with github.com/caarlos0/env/v11, which parses the
// environment into structs using `env`, `envDefault` and `envSeparator` tags.
// Parsed structs are cached per type, so repeated Load calls for the same
// type are cheap and return the same values.
//
//	var fb authcode.Config
//	config.MustLoad(&fb) // reads FACEBOOK_CLIENT_ID, FACEBOOK_CLIENT_SECRET, ...
//
// Use LoadEnv to read extra .env files before the first Load, and
// ResetCache in tests that need to parse a type again.
package config
