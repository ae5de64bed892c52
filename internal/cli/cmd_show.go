package cli

import (
	"encoding/json"
	"errors"
	"io"
	"strings"
)

var (
	errShowArgsRequired = errors.New("usage: mdtest show <file> <name>")
	errCaseNotFound     = errors.New("no test case named")
	errCaseAmbiguous    = errors.New("name matches multiple test cases; use the full heading path")
)

func cmdShow(out io.Writer, errOut io.Writer, cfg Config, workDir string, args []string) int {
	if hasHelpFlag(args) {
		printShowHelp(out)

		return 0
	}

	if len(args) < 2 {
		fprintln(errOut, "error:", errShowArgsRequired)

		return 1
	}

	file := args[0]
	name := args[1]

	root, err := rootOptions(cfg, workDir)
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	cases, err := parseFixtureFile(workDir, file, root)
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	// Match by leaf name or by the full " > "-joined heading path. A bare
	// name that several cases share is ambiguous.
	var matches []int

	for i, c := range cases {
		if c.Name == name || strings.Join(c.Headings, " > ") == name {
			matches = append(matches, i)
		}
	}

	switch {
	case len(matches) == 0:
		fprintln(errOut, "error:", errCaseNotFound, name)

		return 1
	case len(matches) > 1:
		fprintln(errOut, "error:", errCaseAmbiguous)

		for _, i := range matches {
			fprintln(errOut, "  "+strings.Join(cases[i].Headings, " > "))
		}

		return 1
	}

	c := cases[matches[0]]

	optionsJSON, err := json.Marshal(c.Options)
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	fprintln(out, "Name:   ", c.Name)
	fprintln(out, "Path:   ", strings.Join(c.Headings, " > "))
	fprintf(out, "Line:    %s:%d\n", file, c.Line)
	fprintln(out, "Options:", string(optionsJSON))
	fprintln(out, "Args:")

	for i, arg := range c.Args {
		fprintf(out, "--- %d ---\n", i+1)
		fprintln(out, arg)
	}

	return 0
}

func printShowHelp(out io.Writer) {
	fprintln(out, "Usage: mdtest show <file> <name>")
	fprintln(out, "")
	fprintln(out, "Show one test case in full: heading path, defining line, effective")
	fprintln(out, "options as JSON, and every positional argument. <name> is the leaf")
	fprintln(out, "heading title, or the full ' > '-joined heading path when the leaf")
	fprintln(out, "title alone is ambiguous.")
}
