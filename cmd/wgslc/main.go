// Command wgslc expands #include directives in a WGSL shader and compiles
// it to SPIR-V.
//
// Usage:
//
//	wgslc [-root dir] [-I dir]... [-o out.spv] [-E] [-j n] [-v] input.wgsl...
//
// Paths are slash separated and relative to -root. Several inputs are
// compiled in parallel, each to its own .spv file next to the input.
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/DavidYen/shaderc"
	"github.com/DavidYen/shaderc/includer"
)

// dirList collects repeated -I flags.
type dirList []string

func (d *dirList) String() string { return strings.Join(*d, ",") }

func (d *dirList) Set(v string) error {
	*d = append(*d, filepath.ToSlash(filepath.Clean(v)))
	return nil
}

func main() {
	var (
		includeDirs dirList
		root        = flag.String("root", ".", "directory include paths are relative to")
		output      = flag.String("o", "", "output file (default: input with .spv extension)")
		preprocess  = flag.Bool("E", false, "print the expanded source and exit")
		maxDepth    = flag.Int("max-depth", shaderc.DefaultMaxIncludeDepth, "maximum include nesting")
		jobs        = flag.Int("j", 0, "parallel compilations (default GOMAXPROCS)")
		verbose     = flag.Bool("v", false, "debug logging")
	)
	flag.Var(&includeDirs, "I", "include search directory (repeatable)")
	flag.Parse()

	if flag.NArg() == 0 || (flag.NArg() > 1 && (*output != "" || *preprocess)) {
		fmt.Fprintln(os.Stderr, "usage: wgslc [flags] input.wgsl...")
		fmt.Fprintln(os.Stderr, "-o and -E take a single input")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if *verbose {
		shaderc.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	fsys := os.DirFS(*root)
	sources := make([]shaderc.Source, flag.NArg())
	for i, arg := range flag.Args() {
		name := filepath.ToSlash(filepath.Clean(arg))
		src, err := fs.ReadFile(fsys, name)
		if err != nil {
			log.Fatalf("Failed to read input: %v", err)
		}
		sources[i] = shaderc.Source{Name: name, Text: string(src)}
	}

	c := shaderc.NewCompiler(
		shaderc.WithDelegate(includer.NewFSDelegate(fsys, includeDirs...)),
		shaderc.WithMaxIncludeDepth(*maxDepth),
	)

	if *preprocess {
		res, err := c.Preprocess(sources[0].Name, sources[0].Text)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(res.Source)
		return
	}

	results, err := c.CompileAll(sources, *jobs)
	for i, res := range results {
		if res == nil {
			continue
		}
		out := *output
		if out == "" {
			out = spvPath(*root, sources[i].Name)
		}
		if werr := writeSPIRV(out, res.SPIRV); werr != nil {
			log.Fatalf("Failed to save: %v", werr)
		}
		log.Printf("Compiled %s to %s (%d words, %d includes)\n", sources[i].Name, out, len(res.SPIRV), res.NumIncludes)
	}
	if err != nil {
		log.Fatal(err)
	}
}

// spvPath returns the default output path for input under root.
func spvPath(root, input string) string {
	return filepath.Join(root, filepath.FromSlash(strings.TrimSuffix(input, path.Ext(input))+".spv"))
}

func writeSPIRV(name string, words []uint32) error {
	buf := make([]byte, 0, len(words)*4)
	for _, w := range words {
		buf = binary.LittleEndian.AppendUint32(buf, w)
	}
	return os.WriteFile(name, buf, 0o644)
}
