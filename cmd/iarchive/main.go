// Package main provides the entry point for the iarchive CLI tool.
package main

import "github.com/iarchive/iarchive/cmd/iarchive/cmd"

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	cmd.Execute(version, commit, date, builtBy)
}
