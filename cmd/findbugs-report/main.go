// (c) Copyright 2016 Hewlett Packard Enterprise Development LP
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/securego/findbugs-report"
	"github.com/securego/findbugs-report/engine"
	"github.com/securego/findbugs-report/report"
	"github.com/securego/findbugs-report/report/text"
)

const (
	exitOK     = 0
	exitBugs   = 1
	exitFailed = 2
)

type options struct {
	config        string
	threshold     string
	effort        string
	formats       []string
	out           string
	name          string
	locale        string
	xref          bool
	xrefLocation  string
	details       bool
	engineVersion string
	classes       string
	logFile       string
	quiet         bool
	verbose       bool
	noColor       bool
}

// errBugsFound signals a successful run which reported bugs
var errBugsFound = errors.New("bugs found")

func newRootCommand(fs afero.Fs) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "findbugs-report [events-file]",
		Short: "Render a FindBugs analysis run as site reports",
		Long: `findbugs-report replays the callbacks of a FindBugs analysis run and
renders them as an XHTML site report and/or a structured XML document.

The run is read from a file of events, one JSON object per line or msgpack
encoded when the file ends in .msgpack. Without a file the events are read
from stdin.`,
		Example: `  # Render the html report below target/site
  findbugs-report run.jsonl

  # Render both formats with a high threshold
  findbugs-report --format html --format xml --threshold High run.jsonl`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, fs, opts, args)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.config, "config", "", "Path to an optional YAML or TOML config file")
	f.StringVar(&opts.threshold, "threshold", "", "Reporting threshold: High, Normal, Low, Exp or Ignore")
	f.StringVar(&opts.effort, "effort", "", "Analysis effort: Min, Default or Max")
	f.StringSliceVar(&opts.formats, "format", nil, "Report format, html or xml (repeatable)")
	f.StringVar(&opts.out, "out", "", "Output directory of the reports")
	f.StringVar(&opts.name, "name", "", "Base name of the report files")
	f.StringVar(&opts.locale, "locale", "", "Locale of the report labels, e.g. de or fr")
	f.BoolVar(&opts.xref, "xref", false, "Link line numbers into the source cross reference")
	f.StringVar(&opts.xrefLocation, "xref-location", "", "Relative location of the source cross reference")
	f.BoolVar(&opts.details, "details", true, "Add a column linking to the bug pattern descriptions")
	f.StringVar(&opts.engineVersion, "engine-version", "", "Engine version shown in the reports")
	f.StringVar(&opts.classes, "classes", "", "Compiled classes directory, the report is skipped when it is missing")
	f.StringVar(&opts.logFile, "log", "", "Log messages to file rather than stderr")
	f.BoolVar(&opts.quiet, "quiet", false, "Only show output when bugs are found")
	f.BoolVar(&opts.verbose, "verbose", false, "Log every callback of the run")
	f.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	cmd.AddCommand(newVersionCommand())
	return cmd
}

func loadConfig(cmd *cobra.Command, fs afero.Fs, opts *options) (*findbugs.Config, error) {
	cfg := findbugs.NewConfig()
	if opts.config != "" {
		var err error
		if cfg, err = findbugs.LoadConfig(fs, opts.config); err != nil {
			return nil, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("threshold") {
		cfg.Threshold = opts.threshold
	}
	if flags.Changed("effort") {
		cfg.Effort = opts.effort
	}
	if flags.Changed("format") {
		cfg.Formats = opts.formats
	}
	if flags.Changed("out") {
		cfg.OutputDirectory = opts.out
	}
	if flags.Changed("name") {
		cfg.OutputName = opts.name
	}
	if flags.Changed("locale") {
		cfg.Locale = opts.locale
	}
	if flags.Changed("xref") {
		cfg.LinkXref = opts.xref
	}
	if flags.Changed("xref-location") {
		cfg.XrefLocation = opts.xrefLocation
	}
	if flags.Changed("details") {
		cfg.DetailsLink = opts.details
	}
	if flags.Changed("engine-version") {
		cfg.EngineVersion = opts.engineVersion
	}
	if flags.Changed("classes") {
		cfg.ClassesDir = opts.classes
	}
	return cfg, cfg.Validate()
}

func newLogger(fs afero.Fs, opts *options, stderr io.Writer) (*slog.Logger, io.Closer, error) {
	if opts.quiet {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), nil, nil
	}
	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	var w io.Writer = stderr
	var closer io.Closer
	if opts.logFile != "" {
		f, err := fs.Create(opts.logFile)
		if err != nil {
			return nil, nil, fmt.Errorf("creating log file: %w", err)
		}
		w, closer = f, f
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), closer, nil
}

func run(cmd *cobra.Command, fs afero.Fs, opts *options, args []string) error {
	logger, logCloser, err := newLogger(fs, opts, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if logCloser != nil {
		defer logCloser.Close() // #nosec
	}

	cfg, err := loadConfig(cmd, fs, opts)
	if err != nil {
		return err
	}
	if cfg.ClassesDir != "" && !report.CanGenerate(fs, cfg.ClassesDir) {
		logger.Info("Skipping report, classes directory does not exist", "dir", cfg.ClassesDir)
		return nil
	}

	var in io.Reader = cmd.InOrStdin()
	path := "stdin"
	if len(args) == 1 {
		path = args[0]
		f, err := fs.Open(path)
		if err != nil {
			return fmt.Errorf("opening events: %w", err)
		}
		defer f.Close() // #nosec
		in = f
	}

	result, err := report.Generate(cmd.Context(), cfg, fs, engine.DecoderFor(path, in), logger)
	if err != nil {
		return err
	}

	if !opts.quiet || result.HasBugs() {
		if err := text.WriteSummary(cmd.OutOrStdout(), result, !opts.noColor); err != nil {
			return err
		}
	}
	if result.HasBugs() {
		return errBugsFound
	}
	return nil
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errBugsFound):
		return exitBugs
	}
	return exitFailed
}

func main() {
	cmd := newRootCommand(afero.NewOsFs())
	err := cmd.Execute()
	if err != nil && !errors.Is(err, errBugsFound) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err) // #nosec
	}
	os.Exit(exitCode(err))
}
