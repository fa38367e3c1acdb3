// Package main is the entry point for the pwmutate CLI.
package main

import "gooze.dev/pkg/pwmutate/cmd"

func main() {
	cmd.Execute()
}
