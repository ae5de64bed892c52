// Package cli implements the mdtest command line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	minArgs  = 2
	helpFlag = "--help"
)

var (
	errFlagRequiresArg = errors.New("flag requires an argument")
	errUnknownFlag     = errors.New("unknown flag")
)

// Run is the main entry point. Returns exit code.
func Run(out io.Writer, errOut io.Writer, args []string, env []string) int {
	if len(args) < minArgs {
		printUsage(out)

		return 0
	}

	flags, err := parseGlobalFlags(args[1:])
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	// Default workDir to current directory
	workDir := flags.workDir
	if workDir == "" {
		workDir, err = os.Getwd()
		if err != nil {
			fprintln(errOut, "error: cannot get working directory:", err)

			return 1
		}
	}

	cfg, sources, err := LoadConfig(workDir, flags.configPath, env)
	if err != nil {
		fprintln(errOut, "error:", err)
		printUsage(errOut)

		return 1
	}

	if len(flags.remaining) == 0 {
		printUsage(out)

		return 0
	}

	cmd := flags.remaining[0]
	cmdArgs := flags.remaining[1:]

	if cmd == "-h" || cmd == helpFlag {
		printUsage(out)

		return 0
	}

	switch cmd {
	case "ls":
		return cmdLs(out, errOut, cfg, workDir, cmdArgs)
	case "show":
		return cmdShow(out, errOut, cfg, workDir, cmdArgs)
	case "check":
		return cmdCheck(out, errOut, cfg, workDir, cmdArgs)
	case "export":
		return cmdExport(out, errOut, cfg, workDir, cmdArgs)
	case "config":
		return cmdConfig(out, cfg, sources)
	default:
		fprintln(errOut, "error: unknown command:", cmd)
		printUsage(errOut)

		return 1
	}
}

// globalFlags holds parsed global options.
type globalFlags struct {
	workDir    string
	configPath string
	remaining  []string
}

// parseGlobalFlags consumes leading global flags and returns the rest.
func parseGlobalFlags(args []string) (globalFlags, error) {
	var flags globalFlags

	idx := 0
	for idx < len(args) {
		arg := args[idx]

		switch arg {
		case "-C", "--cwd":
			if idx+1 >= len(args) {
				return globalFlags{}, fmt.Errorf("%w: %s", errFlagRequiresArg, arg)
			}

			flags.workDir = args[idx+1]
			idx += 2
		case "-c", "--config":
			if idx+1 >= len(args) {
				return globalFlags{}, fmt.Errorf("%w: %s", errFlagRequiresArg, arg)
			}

			flags.configPath = args[idx+1]
			idx += 2
		default:
			if len(arg) > 1 && arg[0] == '-' && arg != "-h" && arg != helpFlag {
				return globalFlags{}, fmt.Errorf("%w: %s", errUnknownFlag, arg)
			}

			flags.remaining = args[idx:]

			return flags, nil
		}
	}

	return flags, nil
}

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}

func fprintf(w io.Writer, format string, a ...any) {
	_, _ = fmt.Fprintf(w, format, a...)
}

func hasHelpFlag(args []string) bool {
	for _, arg := range args {
		if arg == "-h" || arg == helpFlag {
			return true
		}
	}

	return false
}

func printUsage(writer io.Writer) {
	fprintln(writer, `mdtest - markdown-defined test fixtures

Usage: mdtest [options] <command> [args]

Options:
  -C, --cwd <dir>       Run as if started in <dir>
  -c, --config <file>   Use specified config file

Commands:
  ls [--json] [glob]     List test cases in fixture documents
  show <file> <name>     Show one test case in full
  check [glob]           Parse every fixture document and report errors
  export <file> <dir>    Write each test case's args to files
  config                 Print effective configuration

Run 'mdtest <command> --help' for command details.`)
}
