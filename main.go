// Package main is the entry point for the jokes API.
// It parses the command line and hands off to the matching subcommand.
package main

func main() {
	Execute()
}
