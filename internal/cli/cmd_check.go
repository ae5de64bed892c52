package cli

import (
	"io"
)

func cmdCheck(out io.Writer, errOut io.Writer, cfg Config, workDir string, args []string) int {
	if hasHelpFlag(args) {
		printCheckHelp(out)

		return 0
	}

	pattern := cfg.FixtureGlob
	if len(args) > 0 {
		pattern = args[0]
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

	caseCount := 0
	failed := 0

	for _, file := range files {
		cases, parseErr := parseFixtureFile(workDir, file, root)
		if parseErr != nil {
			fprintln(errOut, "error:", parseErr)

			failed++

			continue
		}

		caseCount += len(cases)
	}

	fprintf(out, "checked %d fixture file(s), %d test case(s)\n", len(files), caseCount)

	if failed > 0 {
		fprintf(errOut, "%d file(s) failed\n", failed)

		return 1
	}

	return 0
}

func printCheckHelp(out io.Writer) {
	fprintln(out, "Usage: mdtest check [glob]")
	fprintln(out, "")
	fprintln(out, "Parse every fixture document matching the glob (default: fixture_glob")
	fprintln(out, "from config) and report the first error in each failing file. Exits")
	fprintln(out, "non-zero if any file fails.")
}
