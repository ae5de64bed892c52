package cli

import (
	"encoding/json"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/mdtest/pkg/mdtest/jsonopts"
)

// lsEntry is one test case in machine-readable ls output.
type lsEntry struct {
	File     string       `json:"file"`
	Name     string       `json:"name"`
	Headings []string     `json:"headings"`
	Line     int          `json:"line"`
	Args     []string     `json:"args"`
	Options  jsonopts.Map `json:"options"`
}

func cmdLs(out io.Writer, errOut io.Writer, cfg Config, workDir string, args []string) int {
	if hasHelpFlag(args) {
		printLsHelp(out)

		return 0
	}

	flagSet := flag.NewFlagSet("ls", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	asJSON := flagSet.Bool("json", false, "Emit JSON instead of a table")

	err := flagSet.Parse(args)
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	pattern := cfg.FixtureGlob
	if flagSet.NArg() > 0 {
		pattern = flagSet.Arg(0)
	}

	root, err := rootOptions(cfg, workDir)
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	files, err := globFixtures(workDir, pattern)
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	var entries []lsEntry

	for _, file := range files {
		cases, parseErr := parseFixtureFile(workDir, file, root)
		if parseErr != nil {
			fprintln(errOut, "error:", parseErr)

			return 1
		}

		for _, c := range cases {
			entries = append(entries, lsEntry{
				File:     file,
				Name:     c.Name,
				Headings: c.Headings,
				Line:     c.Line,
				Args:     c.Args,
				Options:  c.Options,
			})
		}
	}

	if *asJSON {
		data, marshalErr := json.MarshalIndent(entries, "", "  ")
		if marshalErr != nil {
			fprintln(errOut, "error:", marshalErr)

			return 1
		}

		fprintln(out, string(data))

		return 0
	}

	for _, entry := range entries {
		fprintf(out, "%s:%d\t%s\targs=%d\n",
			entry.File, entry.Line, strings.Join(entry.Headings, " > "), len(entry.Args))
	}

	return 0
}

func printLsHelp(out io.Writer) {
	fprintln(out, "Usage: mdtest ls [--json] [glob]")
	fprintln(out, "")
	fprintln(out, "List every test case defined by the fixture documents matching the")
	fprintln(out, "glob (default: fixture_glob from config). One line per case:")
	fprintln(out, "file:line, the heading path, and the argument count.")
}
