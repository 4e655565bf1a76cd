package rename

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Format renders a Python str.format style template. args fill positional
// fields ({0}, or auto-numbered {}), kwargs fill named fields ({name}).
// Values are ints or strings; a field may carry a format spec after a
// colon ({n:02d}). {{ and }} emit literal braces.
func Format(tmpl string, args []any, kwargs map[string]any) (string, error) {
	var b strings.Builder
	auto := 0
	autoUsed := false
	manualUsed := false

	i := 0
	for i < len(tmpl) {
		switch tmpl[i] {
		case '{':
			if i+1 < len(tmpl) && tmpl[i+1] == '{' {
				b.WriteByte('{')
				i += 2
				continue
			}
			end := strings.IndexByte(tmpl[i+1:], '}')
			if end < 0 {
				return "", fmt.Errorf("unclosed '{' in format string")
			}
			field := tmpl[i+1 : i+1+end]
			i += end + 2

			name, spec := field, ""
			if ci := strings.IndexByte(field, ':'); ci >= 0 {
				name, spec = field[:ci], field[ci+1:]
			}

			var v any
			switch {
			case name == "":
				if manualUsed {
					return "", fmt.Errorf("cannot switch from manual field numbering to automatic")
				}
				autoUsed = true
				if auto >= len(args) {
					return "", fmt.Errorf("not enough positional arguments (have %d)", len(args))
				}
				v = args[auto]
				auto++
			case isDigits(name):
				if autoUsed {
					return "", fmt.Errorf("cannot switch from automatic field numbering to manual")
				}
				manualUsed = true
				idx, err := strconv.Atoi(name)
				if err != nil || idx >= len(args) {
					return "", fmt.Errorf("positional argument %s out of range (have %d)", name, len(args))
				}
				v = args[idx]
			default:
				vv, ok := kwargs[name]
				if !ok {
					return "", fmt.Errorf("unknown field %q", name)
				}
				v = vv
			}

			s, err := formatValue(v, spec)
			if err != nil {
				return "", err
			}
			b.WriteString(s)

		case '}':
			if i+1 < len(tmpl) && tmpl[i+1] == '}' {
				b.WriteByte('}')
				i += 2
				continue
			}
			return "", fmt.Errorf("single '}' in format string")

		default:
			b.WriteByte(tmpl[i])
			i++
		}
	}
	return b.String(), nil
}

var intSpecRe = regexp.MustCompile(`^(0?)([1-9][0-9]*)d?$`)

// formatValue applies a format spec to a captured or implicit value. The
// supported specs cover what rename templates use in practice: bare fields,
// zero- or space-padded integers, and width-padded strings.
func formatValue(v any, spec string) (string, error) {
	switch val := v.(type) {
	case int:
		if spec == "" || spec == "d" {
			return strconv.Itoa(val), nil
		}
		m := intSpecRe.FindStringSubmatch(spec)
		if m == nil {
			return "", fmt.Errorf("unsupported format spec %q for integer", spec)
		}
		width, _ := strconv.Atoi(m[2])
		if m[1] == "0" {
			return fmt.Sprintf("%0*d", width, val), nil
		}
		return fmt.Sprintf("%*d", width, val), nil
	case string:
		if spec == "" || spec == "s" {
			return val, nil
		}
		if width, err := strconv.Atoi(spec); err == nil && width > 0 && spec[0] != '0' {
			// Strings left-align within the requested width.
			return fmt.Sprintf("%-*s", width, val), nil
		}
		return "", fmt.Errorf("unsupported format spec %q for string", spec)
	default:
		return "", fmt.Errorf("cannot format value of type %T", v)
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
