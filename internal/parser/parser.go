// Package parser turns annotated HTML text into per-tag attribute
// snapshots. It layers on the golang.org/x/net/html tokenizer, which
// emits start-tag events with attributes in source order, duplicates
// preserved, and names already lowercased.
package parser

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/zjhiphop/ng-attr-hint/internal/annotate"
	"github.com/zjhiphop/ng-attr-hint/internal/lint"
)

// Parse tokenizes the fully annotated document and invokes emit once per
// opening tag, in document order. Self-closing tags count as opening
// tags. emit runs synchronously; the next tag is not read until it
// returns, so the snapshot may be discarded afterwards.
func Parse(path, annotated string, emit func(*lint.Tag)) error {
	z := html.NewTokenizer(strings.NewReader(annotated))
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return fmt.Errorf("parsing %q: %w", path, err)
			}
			return nil
		case html.StartTagToken, html.SelfClosingTagToken:
			emit(snapshot(path, z.Token()))
		}
	}
}

// snapshot builds a Tag from one start-tag token, splitting repeated
// attribute names into the duplicate map and lifting the injected
// location marker out of the attribute set.
func snapshot(path string, tok html.Token) *lint.Tag {
	tag := lint.NewTag(tok.Data, path, 0)
	for _, attr := range tok.Attr {
		if attr.Key == annotate.LocAttr {
			tag.File, tag.Line = splitLoc(path, attr.Val)
			continue
		}
		tag.SetAttr(attr.Key, attr.Val)
	}
	return tag
}

// splitLoc splits a "<file>:<line>" marker value on its last colon, so
// file names containing colons survive. fallback is used when the marker
// is malformed.
func splitLoc(fallback, v string) (string, int) {
	i := strings.LastIndex(v, ":")
	if i < 0 {
		return fallback, 0
	}
	n, err := strconv.Atoi(v[i+1:])
	if err != nil {
		return fallback, 0
	}
	return v[:i], n
}
