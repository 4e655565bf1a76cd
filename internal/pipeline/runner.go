// Package pipeline orchestrates the run: scan and probe the catalog,
// compute the acceptance interval, filter, synthesize the rename plan, and
// emit it. Diagnostics go through the logger (stderr); only the plan is
// written to the supplied output stream.
package pipeline

import (
	"bytes"
	"context"
	"io"
	"regexp"

	"github.com/dustin/go-humanize"

	"github.com/backmassage/renamer/internal/catalog"
	"github.com/backmassage/renamer/internal/config"
	"github.com/backmassage/renamer/internal/display"
	"github.com/backmassage/renamer/internal/filter"
	"github.com/backmassage/renamer/internal/logging"
	"github.com/backmassage/renamer/internal/rename"
	"github.com/backmassage/renamer/internal/stats"
)

// Run is the top-level entry point. Every error it returns is fatal to the
// whole run: no plan bytes reach out unless synthesis completed.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger, prober catalog.Prober, out io.Writer) (RunStats, error) {
	var rs RunStats

	// Catalog: per directory, sorted then truncated; directories
	// concatenate in argument order. Glob exclusions apply to the
	// combined catalog.
	var files []catalog.Entry
	for _, dir := range cfg.Directories {
		entries, err := catalog.ScanDir(ctx, dir, prober, log, cfg.Verbose)
		if err != nil {
			return rs, err
		}
		entries = catalog.TruncateAfter(entries, cfg.ExcludeAfter)
		files = append(files, entries...)
	}
	files, err := catalog.ExcludeGlobs(files, cfg.Excludes)
	if err != nil {
		return rs, err
	}
	rs.Scanned = len(files)

	// Interval over the full pre-filter catalog.
	durations := make([]float64, len(files))
	for i, e := range files {
		durations[i] = e.Duration
	}
	iv, err := stats.ConfidenceInterval(durations, cfg.Confidence)
	if err != nil {
		return rs, err
	}
	log.Info("n: %d  mean: %.2fmin  stdev: %.2fmin  margin: %.2fmin",
		iv.N, iv.Mean/60, iv.Stdev/60, iv.Margin/60)
	log.Info("duration interval: %.2fmin - %.2fmin", iv.Lower/60, iv.Upper/60)

	minDuration := iv.Lower
	if cfg.MinDurationSet {
		minDuration = cfg.MinDurationSecs
		log.Info("user minimum duration: %s", display.FormatTimespan(minDuration, 2))
	} else {
		log.Info("calculated minimum duration: %s", display.FormatTimespan(minDuration, 2))
	}

	kept := filter.Keep(files, minDuration)
	if cfg.ExcludeMax {
		log.Outlier("excluding titles longer than %s", display.FormatTimespan(iv.Upper, 2))
		kept = filter.KeepBelow(kept, iv.Upper)
	}
	rs.Kept = len(kept)

	for i, e := range kept {
		log.Info("%3d %s %s (%s)", i+1, e.RelPath,
			display.FormatTimespan(e.Duration, 2), humanize.IBytes(uint64(e.Size)))
	}
	log.Info("keep count: %d", len(kept))

	// The --expect assertion halts the run before any synthesis.
	if err := filter.CheckCount(kept, cfg.Expect); err != nil {
		return rs, err
	}

	var pattern *regexp.Regexp
	if cfg.InputRegex != "" {
		pattern, err = rename.CompilePattern(cfg.InputRegex)
		if err != nil {
			return rs, err
		}
	}

	plan, err := rename.Synthesize(kept, rename.Options{
		Pattern:   pattern,
		Template:  cfg.OutputFormat,
		Offset:    cfg.Offset,
		OutputDir: cfg.OutputDir,
	})
	if err != nil {
		return rs, err
	}
	rs.Planned = len(plan.Renames)
	rs.Dirs = len(plan.Dirs())

	// Buffer the plan so a write error can never leave it half-emitted.
	var buf bytes.Buffer
	if err := plan.Emit(&buf); err != nil {
		return rs, err
	}
	if _, err := out.Write(buf.Bytes()); err != nil {
		return rs, err
	}

	logSummary(log, &rs)
	return rs, nil
}

func logSummary(log *logging.Logger, rs *RunStats) {
	log.Info("==============================")
	log.Success("Done: %d scanned, %d kept, %d renames planned, %d directories to create",
		rs.Scanned, rs.Kept, rs.Planned, rs.Dirs)
	if rs.Dropped() > 0 {
		log.Warn("%d kept entries did not match the input regex and are absent from the plan", rs.Dropped())
	}
}
