package includer

import "fmt"

// MapDelegate resolves includes from an in-memory name to source map.
// Lookups are exact; both include styles and the requesting file are
// ignored. The map must not be modified while in use.
type MapDelegate map[string]string

var _ Delegate = MapDelegate(nil)

// IncludeDelegate implements the Delegate interface.
func (m MapDelegate) IncludeDelegate(filename string) (string, string) {
	content, ok := m[filename]
	if !ok {
		return "", fmt.Sprintf("cannot find include %q", filename)
	}
	return filename, content
}

// IncludeTypedDelegate implements the Delegate interface.
func (m MapDelegate) IncludeTypedDelegate(filename string, _ IncludeType, _ string) *IncludeResult {
	name, content := m.IncludeDelegate(filename)
	return &IncludeResult{SourceName: name, Content: content}
}

// ReleaseDelegate implements the Delegate interface. Map results hold no
// resources.
func (MapDelegate) ReleaseDelegate(*IncludeResult) {}
