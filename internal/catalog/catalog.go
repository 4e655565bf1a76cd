// Package catalog builds the per-file entry list the rest of the pipeline
// consumes: one Entry per regular file in a scanned directory, probed for
// duration and sorted into deterministic order.
package catalog

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/backmassage/renamer/internal/logging"
)

// Entry is one discovered media file.
type Entry struct {
	// AbsPath is the fully-qualified location, used as the move source.
	AbsPath string
	// RelPath is relative to the parent of the scanned directory, so its
	// first component is the scanned directory's own name. Always
	// slash-separated: it is the sort key, the display key, and the
	// input to the rename regex.
	RelPath string
	// Size in bytes, informational only.
	Size int64
	// Duration in seconds, the sole statistical observable.
	Duration float64
}

// Prober measures the duration of a single file.
type Prober interface {
	Duration(ctx context.Context, path string) (float64, error)
}

// ScanDir lists dir (non-recursive), probes every regular file, and returns
// the entries sorted by RelPath. A probe failure aborts the whole scan; a
// partial catalog would skew the statistics downstream.
func ScanDir(ctx context.Context, dir string, p Prober, log *logging.Logger, verbose bool) ([]Entry, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", dir, err)
	}

	listing, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("scan %q: %w", dir, err)
	}

	base := filepath.Base(abs)
	var entries []Entry
	for _, de := range listing {
		full := filepath.Join(abs, de.Name())
		info, err := os.Stat(full)
		if err != nil {
			return nil, fmt.Errorf("stat %q: %w", full, err)
		}
		if !info.Mode().IsRegular() {
			continue
		}

		log.Debug(verbose, "checking: %s", full)
		d, err := p.Duration(ctx, full)
		if err != nil {
			return nil, fmt.Errorf("probe failed: %w", err)
		}

		entries = append(entries, Entry{
			AbsPath:  full,
			RelPath:  path.Join(base, de.Name()),
			Size:     info.Size(),
			Duration: d,
		})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].RelPath < entries[j].RelPath })
	return entries, nil
}

// TruncateAfter caps a single directory's sorted entries. n = 0 disables.
// For compatibility with the original tool this keeps the first n+1 entries,
// not n.
func TruncateAfter(entries []Entry, n int) []Entry {
	if n <= 0 || len(entries) <= n+1 {
		return entries
	}
	return entries[:n+1]
}

// ExcludeGlobs drops entries whose RelPath matches any of the given
// patterns. An invalid pattern is an error rather than a silent no-op.
func ExcludeGlobs(entries []Entry, globs []string) ([]Entry, error) {
	if len(globs) == 0 {
		return entries, nil
	}
	kept := make([]Entry, 0, len(entries))
	for _, e := range entries {
		drop := false
		for _, g := range globs {
			ok, err := MatchPath(e.RelPath, g)
			if err != nil {
				return nil, fmt.Errorf("exclude pattern %q: %w", g, err)
			}
			if ok {
				drop = true
				break
			}
		}
		if !drop {
			kept = append(kept, e)
		}
	}
	return kept, nil
}

// MatchPath matches a slash-separated relative path against a glob,
// component-wise and anchored at the right: "*.mkv" matches any basename,
// "show/*.mkv" requires the parent component too. This mirrors how the
// original tool's path matching behaved, so existing exclude patterns keep
// working.
func MatchPath(relPath, pattern string) (bool, error) {
	pparts := splitComponents(pattern)
	if len(pparts) == 0 {
		return false, nil
	}
	parts := splitComponents(relPath)
	if len(pparts) > len(parts) {
		return false, nil
	}

	tail := parts[len(parts)-len(pparts):]
	for i, pp := range pparts {
		ok, err := path.Match(pp, tail[i])
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func splitComponents(p string) []string {
	var out []string
	for _, part := range strings.Split(filepath.ToSlash(p), "/") {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
