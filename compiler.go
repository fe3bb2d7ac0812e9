package shaderc

import (
	"errors"
	"fmt"

	"github.com/DavidYen/shaderc/includer"
	"github.com/DavidYen/shaderc/internal/preprocess"
	"github.com/gogpu/naga"
)

// DefaultMaxIncludeDepth is the include nesting limit of a new Compiler.
const DefaultMaxIncludeDepth = preprocess.DefaultMaxDepth

var (
	// ErrEmptySource is returned when Compile is given no source text.
	ErrEmptySource = errors.New("shaderc: shader source is empty")

	// ErrInvalidSPIRV is returned when the compiled module is not valid SPIR-V.
	ErrInvalidSPIRV = errors.New("shaderc: invalid SPIR-V output")
)

// Result is the output of one compilation.
type Result struct {
	// Source is the WGSL text after include expansion.
	Source string

	// SPIRV is the compiled module as little-endian words.
	// Nil when produced by Preprocess.
	SPIRV []uint32

	// NumIncludes is the number of include requests the compilation made.
	NumIncludes int
}

// Compiler expands #include directives in WGSL source and compiles the
// result to SPIR-V.
//
// Each call gets its own includer.Counting wrapped around the configured
// delegate, so a Compiler is safe for concurrent use as long as the
// delegate is.
type Compiler struct {
	delegate        includer.Delegate
	maxIncludeDepth int
}

// NewCompiler creates a Compiler.
//
// Example:
//
//	c := shaderc.NewCompiler(
//	    shaderc.WithDelegate(includer.NewFSDelegate(os.DirFS("shaders"))),
//	)
//	res, err := c.Compile("main.wgsl", src)
func NewCompiler(opts ...CompilerOption) *Compiler {
	o := defaultCompilerOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Compiler{
		delegate:        o.delegate,
		maxIncludeDepth: o.maxIncludeDepth,
	}
}

// Preprocess expands includes in source without compiling it.
func (c *Compiler) Preprocess(name, source string) (*Result, error) {
	if source == "" {
		return nil, ErrEmptySource
	}

	inc := includer.NewCounting(c.delegate)
	expanded, err := preprocess.Expand(name, source, inc, c.maxIncludeDepth)
	if err != nil {
		return nil, fmt.Errorf("shaderc: preprocess %s: %w", name, err)
	}

	Logger().Debug("shaderc: preprocessed",
		"name", name,
		"includes", inc.NumIncludeDirectives())

	return &Result{
		Source:      expanded,
		NumIncludes: inc.NumIncludeDirectives(),
	}, nil
}

// Compile expands includes in source and compiles it to SPIR-V.
// name identifies source for relative includes and error messages.
func (c *Compiler) Compile(name, source string) (*Result, error) {
	res, err := c.Preprocess(name, source)
	if err != nil {
		return nil, err
	}

	spirvBytes, err := naga.Compile(res.Source)
	if err != nil {
		return nil, fmt.Errorf("shaderc: failed to compile %s: %w", name, err)
	}

	words, err := spirvWords(spirvBytes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	res.SPIRV = words

	Logger().Debug("shaderc: compiled",
		"name", name,
		"includes", res.NumIncludes,
		"words", len(words))

	return res, nil
}
