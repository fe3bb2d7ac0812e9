package includer

import (
	"fmt"
	"io/fs"
	"path"
	"sync"
)

// FSDelegate resolves includes from an fs.FS.
//
// Use os.DirFS for the real filesystem, or embed.FS / fstest.MapFS for
// virtual ones. Names are slash separated and relative to the FS root.
//
// Relative includes are looked up in the requesting file's directory
// first, then in each search directory in order. Standard includes only
// use the search directories. Legacy Include calls behave like relative
// includes from the FS root.
//
// FSDelegate is safe for concurrent use.
type FSDelegate struct {
	fsys       fs.FS
	searchDirs []string

	mu          sync.Mutex
	outstanding map[*IncludeResult]struct{}
}

var _ Delegate = (*FSDelegate)(nil)

// NewFSDelegate returns a delegate reading from fsys. searchDirs are the
// directories consulted for standard includes and as relative fallbacks.
func NewFSDelegate(fsys fs.FS, searchDirs ...string) *FSDelegate {
	return &FSDelegate{
		fsys:        fsys,
		searchDirs:  searchDirs,
		outstanding: make(map[*IncludeResult]struct{}),
	}
}

// IncludeDelegate implements the Delegate interface.
func (d *FSDelegate) IncludeDelegate(filename string) (string, string) {
	r := d.resolve(filename, Relative, "")
	return r.SourceName, r.Content
}

// IncludeTypedDelegate implements the Delegate interface. The result is
// tracked until ReleaseDelegate is called with it.
func (d *FSDelegate) IncludeTypedDelegate(filename string, kind IncludeType, requestingFile string) *IncludeResult {
	r := d.resolve(filename, kind, requestingFile)

	d.mu.Lock()
	d.outstanding[r] = struct{}{}
	d.mu.Unlock()

	return r
}

// ReleaseDelegate implements the Delegate interface. Releasing nil, a
// result from another delegate, or the same result twice is logged and
// otherwise ignored.
func (d *FSDelegate) ReleaseDelegate(result *IncludeResult) {
	if result == nil {
		return
	}

	d.mu.Lock()
	_, ok := d.outstanding[result]
	delete(d.outstanding, result)
	d.mu.Unlock()

	if !ok {
		slogger().Warn("includer: release of unknown include result",
			"source", result.SourceName)
	}
}

// Outstanding returns the number of typed results not yet released.
func (d *FSDelegate) Outstanding() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.outstanding)
}

// candidates lists the names to try, in priority order.
func (d *FSDelegate) candidates(filename string, kind IncludeType, requestingFile string) []string {
	names := make([]string, 0, len(d.searchDirs)+1)
	if kind == Relative {
		dir := "."
		if requestingFile != "" {
			dir = path.Dir(requestingFile)
		}
		names = append(names, path.Join(dir, filename))
	}
	for _, dir := range d.searchDirs {
		names = append(names, path.Join(dir, filename))
	}
	return names
}

func (d *FSDelegate) resolve(filename string, kind IncludeType, requestingFile string) *IncludeResult {
	for _, name := range d.candidates(filename, kind, requestingFile) {
		if !fs.ValidPath(name) {
			continue
		}
		raw, err := fs.ReadFile(d.fsys, name)
		if err != nil {
			continue
		}
		content, err := decodeSource(raw)
		if err != nil {
			return failure(fmt.Sprintf("cannot decode include %q: %v", name, err))
		}
		return &IncludeResult{SourceName: name, Content: content}
	}

	if kind == Standard {
		return failure(fmt.Sprintf("cannot find or open system include file %q", filename))
	}
	return failure(fmt.Sprintf("cannot find or open include file %q", filename))
}
