package symbols

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// RemoveInvalidSymbols rewrites the "symbols" array at path in a raw JSON
// config document, dropping any entry present in invalid. It preserves the
// rest of the document, including key order and unrelated fields, since it
// edits the array in place rather than round-tripping through a struct.
//
// This is a one-shot cleanup: it only removes entries already known bad, it
// does not itself decide what is invalid.
func RemoveInvalidSymbols(raw []byte, path string, invalid []string) ([]byte, error) {
	if len(invalid) == 0 {
		return raw, nil
	}

	drop := make(map[string]struct{}, len(invalid))
	for _, s := range invalid {
		drop[s] = struct{}{}
	}

	arr := gjson.GetBytes(raw, path)
	if !arr.Exists() || !arr.IsArray() {
		return nil, fmt.Errorf("path %q is not an array in config document", path)
	}

	var kept []string
	for _, v := range arr.Array() {
		s := v.String()
		if _, bad := drop[s]; !bad {
			kept = append(kept, s)
		}
	}

	out, err := sjson.SetBytes(raw, path, kept)
	if err != nil {
		return nil, fmt.Errorf("rewrite %q: %w", path, err)
	}
	return out, nil
}
