package shaderc

import "github.com/DavidYen/shaderc/includer"

// CompilerOption configures a Compiler during creation.
//
// Example:
//
//	c := shaderc.NewCompiler(
//	    shaderc.WithDelegate(includer.NewFSDelegate(os.DirFS("shaders"), "lib")),
//	    shaderc.WithMaxIncludeDepth(8),
//	)
type CompilerOption func(*compilerOptions)

// compilerOptions holds optional configuration for Compiler creation.
type compilerOptions struct {
	delegate        includer.Delegate
	maxIncludeDepth int
}

// defaultCompilerOptions returns the default compiler options.
func defaultCompilerOptions() compilerOptions {
	return compilerOptions{
		delegate:        includer.MapDelegate{}, // every include fails
		maxIncludeDepth: DefaultMaxIncludeDepth,
	}
}

// WithDelegate sets the strategy that resolves #include directives.
// Without it, sources that contain includes fail to compile.
func WithDelegate(d includer.Delegate) CompilerOption {
	return func(o *compilerOptions) {
		if d != nil {
			o.delegate = d
		}
	}
}

// WithMaxIncludeDepth limits include nesting. Values <= 0 keep the default.
func WithMaxIncludeDepth(n int) CompilerOption {
	return func(o *compilerOptions) {
		if n > 0 {
			o.maxIncludeDepth = n
		}
	}
}
