package includer

import (
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// decodeSource converts raw include file bytes to UTF-8 text.
// A UTF-8 or UTF-16 byte order mark selects the encoding and is dropped;
// without one the bytes are read as UTF-8.
func decodeSource(raw []byte) (string, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(dec, raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
