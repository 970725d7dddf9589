// Package shebang locates and rewrites the interpreter path embedded in
// Windows venv wrapper executables. A wrapper is a launcher stub followed
// by a `#!<interpreter>` line and an appended zip archive; only the bytes
// between the marker and the line break are ever touched.
package shebang

import (
	"bytes"
	"strings"
)

var (
	marker       = []byte("#!")
	zipSignature = []byte("PK")
)

// Span is the half-open byte range [Start, End) of the interpreter path
// within a wrapper's contents. The #! marker and the trailing line break
// are outside the span.
type Span struct {
	Start int
	End   int
}

// Len returns the field length in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

func isLineBreak(b byte) bool {
	return b == '\r' || b == '\n'
}

// Locate finds the interpreter path field in content. It first looks for
// a field whose line break is immediately followed by the zip signature
// (the well-formed wrapper layout); if no such field exists anywhere, it
// falls back to the first #! occurrence, taking everything up to the
// first line break or end of data. The second result is false when
// content holds no #! marker at all.
//
// An empty field (marker directly followed by a line break or by the zip
// signature) is a valid match with Start == End.
func Locate(content []byte) (Span, bool) {
	if span, ok := LocateArchiveBound(content); ok {
		return span, true
	}
	return locateLoose(content)
}

// LocateArchiveBound finds the first #! occurrence whose field run is
// followed by one-or-more CR/LF bytes and then the zip signature. This is
// the stricter of the two searches and the one that identifies genuine
// wrapper executables.
func LocateArchiveBound(content []byte) (Span, bool) {
	for off := 0; off < len(content); {
		i := bytes.Index(content[off:], marker)
		if i < 0 {
			break
		}
		start := off + i + len(marker)
		end := start
		for end < len(content) && !isLineBreak(content[end]) {
			end++
		}
		brk := end
		for brk < len(content) && isLineBreak(content[brk]) {
			brk++
		}
		if brk > end && bytes.HasPrefix(content[brk:], zipSignature) {
			return Span{Start: start, End: end}, true
		}
		off += i + 1
	}
	return Span{}, false
}

func locateLoose(content []byte) (Span, bool) {
	i := bytes.Index(content, marker)
	if i < 0 {
		return Span{}, false
	}
	start := i + len(marker)
	end := start
	for end < len(content) && !isLineBreak(content[end]) {
		end++
	}
	return Span{Start: start, End: end}, true
}

// Patch returns content with the span replaced by replacement. The input
// slice is never modified; bytes outside the span are copied verbatim, so
// the archive payload after the field is untouched. The replacement may
// be shorter or longer than the field.
func Patch(content []byte, span Span, replacement []byte) []byte {
	out := make([]byte, 0, len(content)-span.Len()+len(replacement))
	out = append(out, content[:span.Start]...)
	out = append(out, replacement...)
	out = append(out, content[span.End:]...)
	return out
}

// Field decodes the span's bytes as UTF-8 for display. Invalid sequences
// are replaced with U+FFFD rather than reported as errors.
func Field(content []byte, span Span) string {
	return strings.ToValidUTF8(string(content[span.Start:span.End]), "�")
}
