// Command moment formats, parses and compares dates from the shell.
//
//	moment format 2010-02-14T15:25:50 -f "dddd, MMMM Do YYYY"
//	moment --locale fr from 2010-02-14 --to 2010-02-16
//	moment add now 3 days 2 h
//
// Settings come from flags, MOMENT_* environment variables or a moment.yaml
// file in the working directory.
package main

import (
	"fmt"
	"os"
	_ "time/tzdata"
)

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "moment: %v\n", err)
		os.Exit(1)
	}
}
