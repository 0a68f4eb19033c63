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

package report

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/securego/findbugs-report"
	"github.com/securego/findbugs-report/engine"
	"github.com/securego/findbugs-report/report/html"
	"github.com/securego/findbugs-report/report/sink"
	"github.com/securego/findbugs-report/report/xdoc"
)

// Format enumerates the output format of the report
type Format int

const (
	// FormatHTML is the site report
	FormatHTML Format = iota // XHTML site document

	// FormatXML is the structured document
	FormatXML // BugCollection XML document
)

// String returns the configuration name of the format
func (f Format) String() string {
	switch f {
	case FormatHTML:
		return "html"
	case FormatXML:
		return "xml"
	}
	return "unknown"
}

// Extension returns the file extension used for the format
func (f Format) Extension() string {
	return "." + f.String()
}

// ParseFormat looks up a format by its configuration name
func ParseFormat(name string) (Format, error) {
	switch name {
	case "html":
		return FormatHTML, nil
	case "xml":
		return FormatXML, nil
	}
	return 0, fmt.Errorf("unsupported format %q", name)
}

// Result describes a finished report run
type Result struct {
	RunID         string
	Threshold     findbugs.Threshold
	Effort        findbugs.Effort
	EngineVersion string
	Metrics       findbugs.Metrics
	Files         []string
}

// HasBugs reports whether the run found any bug
func (r *Result) HasBugs() bool {
	return r.Metrics.NumBugs > 0
}

// CanGenerate reports whether the compiled classes directory exists.
func CanGenerate(fs afero.Fs, classesDir string) bool {
	exists, err := afero.DirExists(fs, classesDir)
	return err == nil && exists
}

// Generate replays the recorded analysis run into the configured report
// formats and writes them below the output directory.
func Generate(ctx context.Context, cfg *findbugs.Config, fs afero.Fs, dec engine.Decoder, logger *slog.Logger) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	formats := make(map[Format]bool, len(cfg.Formats))
	for _, name := range cfg.Formats {
		f, err := ParseFormat(name)
		if err != nil {
			return nil, err
		}
		formats[f] = true
	}

	result := &Result{RunID: uuid.NewString()}
	logger = logger.With("run", result.RunID)

	msgs := findbugs.NewMessages(cfg.Locale)
	result.Threshold = findbugs.ThresholdFor(cfg.Threshold, logger)
	result.Effort = findbugs.EffortFor(cfg.Effort, logger)
	for _, setting := range result.Effort.Settings() {
		logger.Debug("  Analysis feature", "name", setting.Name, "enabled", setting.Enabled)
	}

	stream, err := engine.Open(dec)
	if err != nil {
		return nil, err
	}
	result.EngineVersion = cfg.EngineVersion
	if result.EngineVersion == "" {
		result.EngineVersion = stream.Header().Version
	}
	if result.EngineVersion == "" {
		result.EngineVersion = msgs.Get(findbugs.KeyVersion)
	}

	if cfg.ClassesDir != "" {
		logger.Debug("  "+msgs.Get(findbugs.KeySourceRoot), "dir", cfg.ClassesDir)
	}
	if err := fs.MkdirAll(cfg.OutputDirectory, 0o750); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	var files []io.Closer
	create := func(f Format) (afero.File, error) {
		name := filepath.Join(cfg.OutputDirectory, cfg.OutputName+f.Extension())
		file, err := fs.Create(name)
		if err != nil {
			return nil, fmt.Errorf("creating %s report: %w", f, err)
		}
		files = append(files, file)
		result.Files = append(result.Files, name)
		return file, nil
	}
	abort := func(err error) (*Result, error) {
		for _, f := range files {
			_ = f.Close()
		}
		return nil, err
	}

	var real findbugs.BugReporter = findbugs.NopReporter{}
	var htmlReporter *html.Reporter
	if formats[FormatHTML] {
		file, err := create(FormatHTML)
		if err != nil {
			return abort(err)
		}
		htmlReporter, err = html.NewReporter(sink.NewXHTML(file), msgs, logger, result.Threshold, result.Effort, html.Options{
			LinkXref:      cfg.LinkXref,
			XrefLocation:  cfg.XrefLocation,
			DetailsLink:   cfg.DetailsLink,
			EngineVersion: result.EngineVersion,
		})
		if err != nil {
			return abort(err)
		}
		real = htmlReporter
	}

	filter, err := findbugs.NewFilterReporter(real, result.Threshold, logger)
	if err != nil {
		return abort(err)
	}
	var top findbugs.BugReporter = filter

	var xmlReporter *xdoc.Reporter
	if formats[FormatXML] {
		file, err := create(FormatXML)
		if err != nil {
			return abort(err)
		}
		xmlReporter, err = xdoc.NewReporter(filter, msgs, logger, result.Threshold, result.Effort, xdoc.Options{
			EngineVersion: result.EngineVersion,
		})
		if err != nil {
			return abort(err)
		}
		xmlReporter.SetOutputWriter(file)
		top = xmlReporter
	}

	logger.Info("Replaying analysis", "formats", cfg.Formats, "threshold", result.Threshold.Name(), "effort", result.Effort.Name())
	if err := stream.Replay(ctx, top); err != nil {
		return abort(fmt.Errorf("failed executing FindBugs: %w", err))
	}

	if htmlReporter != nil {
		result.Metrics = result.Metrics.Merge(htmlReporter.Metrics())
	}
	if xmlReporter != nil {
		result.Metrics = result.Metrics.Merge(xmlReporter.Metrics())
	}
	logger.Info("Report written", "files", result.Files, "bugs", result.Metrics.NumBugs)
	return result, nil
}
