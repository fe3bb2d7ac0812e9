package shaderc

import (
	"errors"

	"github.com/DavidYen/shaderc/internal/workpool"
)

// Source is one named shader in a batch.
type Source struct {
	Name string
	Text string
}

// CompileAll compiles sources in parallel on workers goroutines
// (GOMAXPROCS if workers <= 0). Results are returned in input order; a
// failed source leaves a nil entry and contributes to the joined error.
//
// Every source gets its own include counter, so NumIncludes of each
// result covers that source only.
func (c *Compiler) CompileAll(sources []Source, workers int) ([]*Result, error) {
	results := make([]*Result, len(sources))
	errs := make([]error, len(sources))

	pool := workpool.New(workers)
	defer pool.Close()

	pool.Run(len(sources), func(i int) {
		results[i], errs[i] = c.Compile(sources[i].Name, sources[i].Text)
	})

	Logger().Debug("shaderc: batch compiled",
		"sources", len(sources),
		"workers", pool.Workers())

	return results, errors.Join(errs...)
}
