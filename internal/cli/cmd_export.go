package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
)

var errExportArgsRequired = errors.New("usage: mdtest export <file> <dir>")

const exportDirPerm = 0o755

func cmdExport(out io.Writer, errOut io.Writer, cfg Config, workDir string, args []string) int {
	if hasHelpFlag(args) {
		printExportHelp(out)

		return 0
	}

	if len(args) < 2 {
		fprintln(errOut, "error:", errExportArgsRequired)

		return 1
	}

	file := args[0]

	destDir := args[1]
	if !filepath.IsAbs(destDir) {
		destDir = filepath.Join(workDir, destDir)
	}

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

	seen := make(map[string]int)

	for _, c := range cases {
		dir := filepath.Join(destDir, caseSlug(c.Name, seen))

		mkdirErr := os.MkdirAll(dir, exportDirPerm)
		if mkdirErr != nil {
			fprintln(errOut, "error:", mkdirErr)

			return 1
		}

		for i, arg := range c.Args {
			path := filepath.Join(dir, fmt.Sprintf("arg-%d.txt", i+1))

			writeErr := atomic.WriteFile(path, strings.NewReader(arg))
			if writeErr != nil {
				fprintln(errOut, "error: write", path+":", writeErr)

				return 1
			}
		}
	}

	fprintf(out, "exported %d test case(s) to %s\n", len(cases), destDir)

	return 0
}

// caseSlug derives a directory name from a test case name. Repeated names
// get a numeric suffix so sibling cases never collide.
func caseSlug(name string, seen map[string]int) string {
	var sb strings.Builder

	lastDash := true // suppress a leading dash

	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			sb.WriteRune(r)

			lastDash = false
		case !lastDash:
			sb.WriteByte('-')

			lastDash = true
		}
	}

	slug := strings.TrimSuffix(sb.String(), "-")
	if slug == "" {
		slug = "case"
	}

	seen[slug]++
	if seen[slug] > 1 {
		slug = fmt.Sprintf("%s-%d", slug, seen[slug])
	}

	return slug
}

func printExportHelp(out io.Writer) {
	fprintln(out, "Usage: mdtest export <file> <dir>")
	fprintln(out, "")
	fprintln(out, "Write each test case's positional arguments to <dir>/<case-slug>/arg-N.txt.")
	fprintln(out, "Files are written atomically so a partially exported fixture never appears.")
}
