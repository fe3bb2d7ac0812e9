// Package shaderc compiles WGSL shaders that use #include directives.
//
// # Overview
//
// A Compiler expands #include directives through an includer.Delegate,
// compiles the expanded source to SPIR-V with gogpu/naga, and reports how
// many include requests the compilation made.
//
// # Quick Start
//
//	import (
//	    "github.com/DavidYen/shaderc"
//	    "github.com/DavidYen/shaderc/includer"
//	)
//
//	c := shaderc.NewCompiler(
//	    shaderc.WithDelegate(includer.NewFSDelegate(os.DirFS("shaders"), "lib")),
//	)
//	res, err := c.Compile("main.wgsl", src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(len(res.SPIRV), res.NumIncludes)
//
// # Includes
//
// Quoted includes (#include "file") are resolved next to the including
// file first; angle-bracket includes (#include <file>) only use the
// delegate's search directories. See package includer for the available
// strategies and for includer.Counting, the counting layer every
// compilation runs through.
//
// # Logging
//
// shaderc is silent by default. Use SetLogger to enable log/slog output.
package shaderc
