package layout

import (
	"regexp"
	"strconv"
	"strings"
)

// ParsedStyle is the result of parsing one style text block: a mapping
// from camelCase property name to either a float64 or a string value,
// plus the set of property names that carried an !important suffix
// (§3 "Parsed style", §4.1).
type ParsedStyle struct {
	Values     map[string]any
	Important map[string]bool
}

func newParsedStyle() *ParsedStyle {
	return &ParsedStyle{
		Values:    make(map[string]any),
		Important: make(map[string]bool),
	}
}

var (
	numberRe   = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
	zeroUnitRe = regexp.MustCompile(`^0(px|%|em|rem|pt|vh|vw)$`)
)

// ParseStyle parses a multi-line style block: one "property: value"
// declaration per line, optional trailing ';', optional "!important"
// suffix (§4.1). Lines that are empty after trimming, or that lack a
// ':', are dropped silently (§7 "malformed declaration").
func ParseStyle(text string) *ParsedStyle {
	ps := newParsedStyle()
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimSuffix(line, ";")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		idx := strings.IndexByte(line, ':')
		if idx < 0 {
			continue
		}
		key := strings.TrimSpace(line[:idx])
		val := strings.TrimSpace(line[idx+1:])
		if key == "" || val == "" {
			continue
		}

		important := false
		if trimmed, ok := trimImportant(val); ok {
			important = true
			val = trimmed
		}

		camelKey := kebabToCamel(key)
		coerced := coerceValue(val)

		if camelKey == "flex" {
			grow, shrink, basis := expandFlexShorthand(coerced)
			setDecl(ps, "flexGrow", grow, important)
			setDecl(ps, "flexShrink", shrink, important)
			setDecl(ps, "flexBasis", basis, important)
			continue
		}

		setDecl(ps, camelKey, coerced, important)
	}
	return ps
}

func setDecl(ps *ParsedStyle, key string, value any, important bool) {
	ps.Values[key] = value
	if important {
		ps.Important[key] = true
	} else {
		delete(ps.Important, key)
	}
}

func trimImportant(val string) (string, bool) {
	const suffix = "!important"
	trimmed := strings.TrimSpace(val)
	if strings.HasSuffix(trimmed, suffix) {
		return strings.TrimSpace(strings.TrimSuffix(trimmed, suffix)), true
	}
	return val, false
}

// kebabToCamel normalizes a kebab-case or already-camelCase property
// name to camelCase (§4.1).
func kebabToCamel(key string) string {
	if !strings.Contains(key, "-") {
		return key
	}
	parts := strings.Split(key, "-")
	var b strings.Builder
	for i, p := range parts {
		if p == "" {
			continue
		}
		if i == 0 {
			b.WriteString(p)
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}

// coerceValue implements §4.1's value coercion rules: numbers parse as
// float64, zero-with-unit collapses to float64(0), everything else is
// kept as a string (percentages included — the layout code recognizes
// the trailing '%' itself, per §4.8).
func coerceValue(val string) any {
	if numberRe.MatchString(val) {
		f, err := strconv.ParseFloat(val, 64)
		if err == nil {
			return f
		}
	}
	if zeroUnitRe.MatchString(val) {
		return float64(0)
	}
	return val
}

// expandFlexShorthand implements the §4.1 "flex" property expansion.
// v is already value-coerced: a string for identifiers/percentages, or
// a float64 for bare numbers.
func expandFlexShorthand(v any) (grow, shrink, basis any) {
	tokens := flexTokens(v)
	switch len(tokens) {
	case 0:
		return 0.0, 1.0, 0.0
	case 1:
		return expandSingleFlexToken(tokens[0])
	case 2:
		return expandTwoFlexTokens(tokens[0], tokens[1])
	default:
		return parseFlexNumber(tokens[0]), parseFlexNumber(tokens[1]), tokens[2]
	}
}

func flexTokens(v any) []string {
	switch t := v.(type) {
	case float64:
		return []string{strconv.FormatFloat(t, 'g', -1, 64)}
	case string:
		return strings.Fields(t)
	default:
		return nil
	}
}

func expandSingleFlexToken(tok string) (grow, shrink, basis any) {
	switch tok {
	case "auto":
		return 1.0, 1.0, "auto"
	case "none":
		return 0.0, 0.0, "auto"
	case "initial":
		return 0.0, 1.0, "auto"
	default:
		return parseFlexNumber(tok), 1.0, 0.0
	}
}

func expandTwoFlexTokens(first, second string) (grow, shrink, basis any) {
	grow = parseFlexNumber(first)
	if numberRe.MatchString(second) {
		return grow, parseFlexNumber(second), 0.0
	}
	return grow, 1.0, second
}

func parseFlexNumber(tok string) float64 {
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0
	}
	return f
}
