package includer

// DelegateFuncs adapts plain functions to the Delegate interface.
// Nil functions resolve to a failure and release to a no-op.
type DelegateFuncs struct {
	IncludeFn      func(filename string) (string, string)
	IncludeTypedFn func(filename string, kind IncludeType, requestingFile string) *IncludeResult
	ReleaseFn      func(result *IncludeResult)
}

var _ Delegate = DelegateFuncs{}

// IncludeDelegate implements the Delegate interface.
func (f DelegateFuncs) IncludeDelegate(filename string) (string, string) {
	if f.IncludeFn != nil {
		return f.IncludeFn(filename)
	}
	return "", "no include function configured"
}

// IncludeTypedDelegate implements the Delegate interface.
func (f DelegateFuncs) IncludeTypedDelegate(filename string, kind IncludeType, requestingFile string) *IncludeResult {
	if f.IncludeTypedFn != nil {
		return f.IncludeTypedFn(filename, kind, requestingFile)
	}
	return failure("no include function configured")
}

// ReleaseDelegate implements the Delegate interface.
func (f DelegateFuncs) ReleaseDelegate(result *IncludeResult) {
	if f.ReleaseFn != nil {
		f.ReleaseFn(result)
	}
}
