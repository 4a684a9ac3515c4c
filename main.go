// Package main is the entry point for the kmeroracle CLI.
package main

import "kmeroracle.dev/pkg/kmeroracle/cmd"

func main() {
	cmd.Execute()
}
