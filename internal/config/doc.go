// Package config loads, normalizes, and validates shrinktunes configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. Extensions are normalized to lowercase
// without leading dots so configuration, CLI flags, and the format catalog
// all speak the same spelling.
package config
