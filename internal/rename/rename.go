// Package rename synthesizes the batch rename plan: it matches kept entries
// against the input pattern, formats destination paths from captured groups
// and implicit variables, and derives the set of directories the plan needs
// created.
//
// The plan is the tool's product: nothing here touches the filesystem
// beyond the injectable directory-existence check. Two sources may map to
// the same destination; the plan emits both moves and leaves conflict
// resolution to whoever reviews it.
package rename

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/backmassage/renamer/internal/catalog"
)

// Rename is one source → destination pair.
type Rename struct {
	Src string
	Dst string
}

// Options configures plan synthesis.
type Options struct {
	// Pattern, when non-nil, must match each entry's RelPath from the
	// start (compile it with CompilePattern); non-matching entries are
	// skipped entirely. Nil applies the template to every entry.
	Pattern *regexp.Regexp
	// Template is the destination format string. Empty selects the
	// default episode numbering.
	Template string
	// Offset shifts the index/offset_index variables.
	Offset int
	// OutputDir, when set, is prepended to every destination.
	OutputDir string
	// DirExists reports whether a destination parent already exists.
	// Nil uses the real filesystem.
	DirExists func(dir string) bool
}

const defaultTemplate = "E{offset_index}{extension}"

// CompilePattern compiles a user pattern anchored at the start of the
// subject, matching re.match semantics rather than a search.
func CompilePattern(expr string) (*regexp.Regexp, error) {
	return regexp.Compile(`\A(?:` + expr + `)`)
}

// Plan is the ordered rename list plus the directories it requires.
type Plan struct {
	Renames []Rename
	dirs    []string
}

// Synthesize builds the plan for the kept entries, in order. Entries the
// pattern rejects contribute nothing, including to numbering: index and
// offset_index count only entries that reach formatting.
func Synthesize(kept []catalog.Entry, opts Options) (*Plan, error) {
	tmpl := opts.Template
	if tmpl == "" {
		tmpl = defaultTemplate
	}
	exists := opts.DirExists
	if exists == nil {
		exists = dirExists
	}

	var renames []Rename
	seq := 0
	for _, e := range kept {
		var args []any
		kwargs := map[string]any{}

		if opts.Pattern != nil {
			m := opts.Pattern.FindStringSubmatch(e.RelPath)
			if m == nil {
				continue
			}
			names := opts.Pattern.SubexpNames()
			for gi, g := range m[1:] {
				v := maybeInt(g)
				args = append(args, v)
				if name := names[gi+1]; name != "" {
					kwargs[name] = v
				}
			}
		}

		// Implicit variables win over same-named captures.
		kwargs["index"] = opts.Offset + seq
		kwargs["offset_index"] = opts.Offset + seq + 1
		kwargs["extension"] = Extensions(e.RelPath)
		seq++

		dst, err := Format(tmpl, args, kwargs)
		if err != nil {
			return nil, fmt.Errorf("format destination for %q: %w", e.RelPath, err)
		}
		if opts.OutputDir != "" {
			dst = filepath.Join(opts.OutputDir, dst)
		}

		renames = append(renames, Rename{Src: e.AbsPath, Dst: dst})
	}

	return &Plan{Renames: renames, dirs: missingParents(renames, exists)}, nil
}

// missingParents collects the unique destination parents the filesystem
// does not already have, sorted for deterministic emission.
func missingParents(renames []Rename, exists func(string) bool) []string {
	set := map[string]struct{}{}
	for _, r := range renames {
		parent := filepath.Dir(r.Dst)
		if _, seen := set[parent]; seen {
			continue
		}
		if !exists(parent) {
			set[parent] = struct{}{}
		}
	}
	dirs := make([]string, 0, len(set))
	for d := range set {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)
	return dirs
}

func dirExists(dir string) bool {
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}

// Dirs returns the sorted directories the plan needs created.
func (p *Plan) Dirs() []string {
	return p.dirs
}

// Emit writes the shell-consumable plan: one mkdir -p line per missing
// directory, then one mv line per rename. Paths are single-quoted with
// embedded quotes escaped so the output can be piped straight to a shell.
func (p *Plan) Emit(w io.Writer) error {
	for _, d := range p.dirs {
		if _, err := fmt.Fprintf(w, "mkdir -p %s\n", shellQuote(d)); err != nil {
			return err
		}
	}
	for _, r := range p.Renames {
		if _, err := fmt.Fprintf(w, "mv %s %s\n", shellQuote(r.Src), shellQuote(r.Dst)); err != nil {
			return err
		}
	}
	return nil
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// Extensions returns the full multi-part suffix of a path's basename:
// ".tar.gz" for "a.tar.gz", "" for "README" or a bare dotfile. A leading
// dot marks a hidden file, not a suffix.
func Extensions(relPath string) string {
	name := strings.TrimLeft(path.Base(relPath), ".")
	i := strings.Index(name, ".")
	if i < 0 {
		return ""
	}
	return name[i:]
}

// maybeInt converts s to an int only when the decimal form round-trips
// exactly, so zero-padded captures like "007" stay text while "-12" becomes
// a number usable in numeric format specs.
func maybeInt(s string) any {
	n, err := strconv.Atoi(s)
	if err != nil {
		return s
	}
	if strconv.Itoa(n) != s {
		return s
	}
	return n
}
