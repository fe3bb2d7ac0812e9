package includer

// IncludeType distinguishes the two #include directive styles.
type IncludeType int

const (
	// Relative is a quoted include: #include "file".
	// Lookup starts next to the requesting file.
	Relative IncludeType = iota

	// Standard is an angle-bracket include: #include <file>.
	// Lookup uses only the configured search directories.
	Standard
)

// String returns the directive style name.
func (t IncludeType) String() string {
	switch t {
	case Relative:
		return "relative"
	case Standard:
		return "standard"
	default:
		return "unknown"
	}
}

// IncludeResult is the resolved content of one include request.
//
// A result with an empty SourceName is a failed resolution; Content then
// holds a human readable error message. The result stays owned by the
// Delegate that produced it until it is passed back to ReleaseInclude.
type IncludeResult struct {
	// SourceName is the resolved name of the included file.
	SourceName string

	// Content is the included source text.
	Content string

	// UserData is reserved for the producing Delegate.
	UserData any
}

// Failed reports whether the result signals a resolution failure.
func (r *IncludeResult) Failed() bool {
	return r == nil || r.SourceName == ""
}

// Includer is the include-resolution capability a preprocessor consumes.
type Includer interface {
	// Include resolves filename and returns (resolvedName, content).
	Include(filename string) (string, string)

	// IncludeTyped resolves filename as requested by requestingFile.
	IncludeTyped(filename string, kind IncludeType, requestingFile string) *IncludeResult

	// ReleaseInclude releases a result returned by IncludeTyped.
	ReleaseInclude(result *IncludeResult)
}

// Delegate supplies the resolution strategy behind a Counting includer.
//
// Implementations decide how names are found, how failures are reported
// and what releasing a result means.
type Delegate interface {
	// IncludeDelegate backs Includer.Include.
	IncludeDelegate(filename string) (string, string)

	// IncludeTypedDelegate backs Includer.IncludeTyped.
	IncludeTypedDelegate(filename string, kind IncludeType, requestingFile string) *IncludeResult

	// ReleaseDelegate backs Includer.ReleaseInclude.
	ReleaseDelegate(result *IncludeResult)
}

// failure builds a result following the empty-name failure convention.
func failure(msg string) *IncludeResult {
	return &IncludeResult{Content: msg}
}
