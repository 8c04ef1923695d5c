package engine

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// ValidEncoding checks that name resolves to a known text encoding.
// Invalid names are configuration errors and must be caught before any
// file is opened.
func ValidEncoding(name string) error {
	if isUTF8(name) {
		return nil
	}
	if _, err := htmlindex.Get(name); err != nil {
		return fmt.Errorf("unknown encoding %q", name)
	}
	return nil
}

// decodeReader wraps r so it yields UTF-8 text decoded from the named
// encoding. UTF-8 input (the default) is passed through untouched.
func decodeReader(r io.Reader, name string) (io.Reader, error) {
	if isUTF8(name) {
		return r, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q", name)
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

func isUTF8(name string) bool {
	switch strings.ToLower(name) {
	case "", "utf8", "utf-8":
		return true
	}
	return false
}
