package includer

import "sync/atomic"

// Counting is an Includer that counts how many include requests it saw
// and forwards each of them to a Delegate.
//
// Both Include and IncludeTyped bump the same counter, whatever the
// directive style. ReleaseInclude never touches it. Results and their
// ownership pass through unchanged.
//
// The counter is atomic, so one Counting may be shared by goroutines.
// Whether the Delegate tolerates that is up to the Delegate.
type Counting struct {
	delegate Delegate

	// Number of include directives encountered.
	numIncludeDirectives atomic.Int64
}

var _ Includer = (*Counting)(nil)

// NewCounting returns a Counting includer with a zero count that forwards
// to d.
func NewCounting(d Delegate) *Counting {
	return &Counting{delegate: d}
}

// Include bumps the count and returns d.IncludeDelegate(filename).
func (c *Counting) Include(filename string) (string, string) {
	c.numIncludeDirectives.Add(1)
	return c.delegate.IncludeDelegate(filename)
}

// IncludeTyped bumps the count and returns
// d.IncludeTypedDelegate(filename, kind, requestingFile).
func (c *Counting) IncludeTyped(filename string, kind IncludeType, requestingFile string) *IncludeResult {
	c.numIncludeDirectives.Add(1)
	return c.delegate.IncludeTypedDelegate(filename, kind, requestingFile)
}

// ReleaseInclude hands result back to the delegate.
func (c *Counting) ReleaseInclude(result *IncludeResult) {
	c.delegate.ReleaseDelegate(result)
}

// NumIncludeDirectives returns the number of include requests so far.
func (c *Counting) NumIncludeDirectives() int {
	return int(c.numIncludeDirectives.Load())
}
