package router

import (
	"fmt"
	"regexp"
	"strings"
)

// WildcardKey is the reserved parameter key under which the remainder matched
// by a wildcard segment is recorded. It is never listed in ParamNames.
const WildcardKey = "*"

// Pattern is a compiled route template.
//
// Template syntax:
//   - literal characters match themselves;
//   - ":name" matches one non-empty segment without "/" and binds it to name
//     (identifier characters: letters, digits, underscore);
//   - "*" matches the remainder of the path, including "/".
//
// The compiled matcher is anchored at both ends: a path matches only when the
// whole path conforms, never a prefix. Matching is a pure lookup with no
// failure mode; "no match" is an ordinary outcome.
type Pattern struct {
	template string
	re       *regexp.Regexp

	// groupNames aligns one-to-one with the regexp capture groups. A wildcard
	// occupies its slot with WildcardKey so named captures around it still zip
	// with the right group.
	groupNames []string

	// paramNames are the named captures in declaration order.
	paramNames []string
}

// Compile turns a route template into a Pattern. The only rejected input is a
// template that binds the same parameter name twice; every other syntactically
// valid template compiles.
func Compile(template string) (*Pattern, error) {
	var re strings.Builder
	var groupNames, paramNames []string

	re.WriteByte('^')
	for i := 0; i < len(template); {
		ch := template[i]
		switch {
		case ch == ':':
			start := i + 1
			end := start
			for end < len(template) && isIdentChar(template[end]) {
				end++
			}
			name := template[start:end]
			for _, existing := range paramNames {
				if name != "" && existing == name {
					return nil, fmt.Errorf("router: duplicate parameter %q in template %q", name, template)
				}
			}
			groupNames = append(groupNames, name)
			if name != "" {
				paramNames = append(paramNames, name)
			}
			re.WriteString(`([^/]+)`)
			i = end
		case ch == '*':
			groupNames = append(groupNames, WildcardKey)
			re.WriteString(`(.*)`)
			i++
		case isRegexpMeta(ch):
			re.WriteByte('\\')
			re.WriteByte(ch)
			i++
		default:
			re.WriteByte(ch)
			i++
		}
	}
	re.WriteByte('$')

	return &Pattern{
		template:   template,
		re:         regexp.MustCompile(re.String()),
		groupNames: groupNames,
		paramNames: paramNames,
	}, nil
}

// MustCompile is Compile that panics on error. Route registration uses it:
// a duplicate parameter name is a bootstrap-time configuration bug and the
// process refuses to start.
func MustCompile(template string) *Pattern {
	p, err := Compile(template)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the original template.
func (p *Pattern) String() string {
	return p.template
}

// ParamNames returns the named captures in declaration order, excluding any
// wildcard.
func (p *Pattern) ParamNames() []string {
	return p.paramNames
}

// Match applies the pattern to a candidate path. On success it returns the
// captured parameters: named captures under their names, a wildcard remainder
// under WildcardKey. On failure it returns (nil, false); matching never
// errors.
func (p *Pattern) Match(path string) (map[string]string, bool) {
	m := p.re.FindStringSubmatch(path)
	if m == nil {
		return nil, false
	}
	params := make(map[string]string, len(p.groupNames))
	for i, name := range p.groupNames {
		if name == "" {
			continue
		}
		params[name] = m[i+1]
	}
	return params, true
}

func isIdentChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

func isRegexpMeta(c byte) bool {
	switch c {
	case '.', '+', '?', '^', '$', '{', '}', '[', ']', '|', '(', ')', '\\':
		return true
	}
	return false
}
