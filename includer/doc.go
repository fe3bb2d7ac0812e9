// Package includer resolves shader #include directives and counts them.
//
// # Includer and Delegate
//
// Includer is the capability a preprocessor consumes. It has two resolve
// shapes, a legacy filename-only Include and a typed IncludeTyped that
// carries the directive style and the requesting file, plus
// ReleaseInclude for results handed out by IncludeTyped.
//
// Delegate is the strategy behind it: the three methods a concrete
// resolver supplies.
//
// # Counting
//
// Counting wraps any Delegate and counts every resolve call of either
// shape in one atomic counter:
//
//	inc := includer.NewCounting(includer.NewFSDelegate(os.DirFS("shaders"), "lib"))
//	r := inc.IncludeTyped("common.wgsl", includer.Relative, "main.wgsl")
//	defer inc.ReleaseInclude(r)
//	n := inc.NumIncludeDirectives() // 1
//
// Results and their ownership pass through untouched.
//
// # Strategies
//
//   - FSDelegate: any fs.FS (os.DirFS, embed.FS, fstest.MapFS)
//   - MapDelegate: in-memory map
//   - DelegateFuncs: plain functions, handy for mocks
//
// A failed resolution is a result with an empty SourceName whose Content
// holds the error message.
package includer
