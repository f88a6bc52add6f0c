// Package main hosts the shrinktunes CLI entrypoint and command graph.
//
// The Cobra-based command tree covers batch conversion, the ffmpeg format
// listing, readiness checks, and configuration scaffolding. It centralizes
// configuration resolution and logger setup so subcommands can focus on user
// experience instead of wiring; the conversion and parsing logic lives in the
// internal packages.
package main
