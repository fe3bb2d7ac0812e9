// Package preprocess expands #include directives in shader source.
//
// Directives must sit on their own line:
//
//	#include "lighting.wgsl"   // relative to the including file
//	#include <noise.wgsl>      // search directories only
//
// Every directive is resolved through an includer.Includer, spliced in
// place, expanded recursively and then released. Directives inside
// /* */ block comments are left as they are.
package preprocess

import (
	"errors"
	"fmt"
	"strings"

	"github.com/DavidYen/shaderc/includer"
)

// DefaultMaxDepth is the include nesting limit used when Expand is given
// a non-positive depth.
const DefaultMaxDepth = 32

const directive = "#include"

var (
	// ErrIncludeFailed is returned when the includer cannot resolve a directive.
	ErrIncludeFailed = errors.New("preprocess: include failed")

	// ErrDepthExceeded is returned when includes nest deeper than allowed.
	// Include cycles end here too.
	ErrDepthExceeded = errors.New("preprocess: include depth exceeded")

	// ErrMalformedDirective is returned for an #include line that cannot be parsed.
	ErrMalformedDirective = errors.New("preprocess: malformed #include directive")
)

// DirectiveError locates a failing #include directive.
type DirectiveError struct {
	File   string // file containing the directive
	Line   int    // 1-based line of the directive
	Target string // requested include name, if parsed
	Detail string // message from the includer, if any
	Err    error  // one of the Err* sentinels
}

func (e *DirectiveError) Error() string {
	msg := fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
	if e.Target != "" {
		msg += fmt.Sprintf(" %q", e.Target)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *DirectiveError) Unwrap() error { return e.Err }

// Expand returns source with every #include directive replaced by the
// expanded content it resolves to. name identifies source and is passed
// as the requesting file for its directives.
func Expand(name, source string, inc includer.Includer, maxDepth int) (string, error) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	e := &expander{inc: inc, maxDepth: maxDepth}
	return e.expand(name, source, 0)
}

type expander struct {
	inc      includer.Includer
	maxDepth int
}

func (e *expander) expand(name, source string, depth int) (string, error) {
	var b strings.Builder
	b.Grow(len(source))

	comment := 0 // block comment nesting at the start of the line
	for i, line := range strings.Split(source, "\n") {
		if i > 0 {
			b.WriteByte('\n')
		}

		if comment > 0 {
			comment = blockCommentDepth(line, comment)
			b.WriteString(line)
			continue
		}

		target, kind, ok, err := parseDirective(line)
		if err != nil {
			return "", &DirectiveError{File: name, Line: i + 1, Err: err}
		}
		if !ok {
			comment = blockCommentDepth(line, 0)
			b.WriteString(line)
			continue
		}

		if depth+1 > e.maxDepth {
			return "", &DirectiveError{File: name, Line: i + 1, Target: target, Err: ErrDepthExceeded}
		}

		text, err := e.include(name, i+1, target, kind, depth)
		if err != nil {
			return "", err
		}
		b.WriteString(strings.TrimSuffix(text, "\n"))
	}

	return b.String(), nil
}

// include resolves one directive, expands the result and releases it.
func (e *expander) include(name string, line int, target string, kind includer.IncludeType, depth int) (string, error) {
	r := e.inc.IncludeTyped(target, kind, name)
	if r == nil {
		return "", &DirectiveError{File: name, Line: line, Target: target, Err: ErrIncludeFailed}
	}
	defer e.inc.ReleaseInclude(r)

	if r.Failed() {
		return "", &DirectiveError{File: name, Line: line, Target: target, Detail: r.Content, Err: ErrIncludeFailed}
	}

	return e.expand(r.SourceName, r.Content, depth+1)
}

// parseDirective reports whether line is an #include directive and, if so,
// returns its target and style. A trailing // comment is allowed.
func parseDirective(line string) (string, includer.IncludeType, bool, error) {
	s := strings.TrimLeft(line, " \t")
	if !strings.HasPrefix(s, directive) {
		return "", 0, false, nil
	}
	if len(s) > len(directive) && !strings.ContainsRune(" \t\r\"<", rune(s[len(directive)])) {
		// A longer token such as #includes.
		return "", 0, false, nil
	}
	s = strings.TrimSpace(strings.TrimSuffix(s[len(directive):], "\r"))

	var closer byte
	var kind includer.IncludeType
	switch {
	case strings.HasPrefix(s, `"`):
		closer, kind = '"', includer.Relative
	case strings.HasPrefix(s, "<"):
		closer, kind = '>', includer.Standard
	default:
		return "", 0, false, ErrMalformedDirective
	}

	end := strings.IndexByte(s[1:], closer)
	if end <= 0 {
		return "", 0, false, ErrMalformedDirective
	}
	target := s[1 : end+1]

	rest := strings.TrimSpace(s[end+2:])
	if rest != "" && !strings.HasPrefix(rest, "//") {
		return "", 0, false, ErrMalformedDirective
	}

	return target, kind, true, nil
}

// blockCommentDepth returns the /* */ nesting depth after line, given the
// depth before it. WGSL block comments nest. A // outside a block comment
// ends the scan.
func blockCommentDepth(line string, depth int) int {
	for i := 0; i+1 < len(line); i++ {
		switch {
		case depth == 0 && line[i] == '/' && line[i+1] == '/':
			return 0
		case line[i] == '/' && line[i+1] == '*':
			depth++
			i++
		case depth > 0 && line[i] == '*' && line[i+1] == '/':
			depth--
			i++
		}
	}
	return depth
}
