package cli

import "io"

func cmdConfig(out io.Writer, cfg Config, sources ConfigSources) int {
	fprintln(out, "fixture_glob="+cfg.FixtureGlob)

	if cfg.OptionsFile != "" {
		fprintln(out, "options_file="+cfg.OptionsFile)
	}

	fprintln(out, "")
	fprintln(out, "# sources")

	if sources.Global == "" && sources.Project == "" {
		fprintln(out, "(defaults only)")
	} else {
		if sources.Global != "" {
			fprintln(out, "global_config="+sources.Global)
		}

		if sources.Project != "" {
			fprintln(out, "project_config="+sources.Project)
		}
	}

	return 0
}
