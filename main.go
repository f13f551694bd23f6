// Package main is the entry point for the droidtest CLI.
package main

import "droidtest.dev/pkg/droidtest/cmd"

func main() {
	cmd.Execute()
}
