package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	timesheet "github.com/Shudderr/timesheet-parser"
	"github.com/Shudderr/timesheet-parser/schedule"
)

func main() {
	var name string
	var pretty bool
	flag.StringVar(&name, "name", "Rohan", "employee name to extract")
	flag.BoolVar(&pretty, "pretty", false, "indent the JSON output")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [-name employee] [-pretty] roster.pdf\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	week, err := timesheet.Open(flag.Arg(0)).Target(name).Week()
	if err != nil {
		if errors.Is(err, schedule.ErrNoMatch) {
			fmt.Fprintf(os.Stderr, "no schedule found: %v\n", err)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "timesheet failed: %v\n", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(week); err != nil {
		fmt.Fprintf(os.Stderr, "encode failed: %v\n", err)
		os.Exit(1)
	}
}
