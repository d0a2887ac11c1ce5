package section

import (
	"iter"
	"strings"
)

// Scanner extracts flat <tag>...</tag> spans from a text buffer.
//
// Matching is purely textual: [Scanner.View] pairs the first open delimiter
// with the first close delimiter in the buffer, regardless of nesting. The
// documents it reads never nest a tag inside itself, and the scanner does not
// check for it.
type Scanner struct {
	buf   string
	open  string
	close string
}

// New returns a Scanner over buf for the given tag name.
// An empty tag yields no sections.
func New(buf, tag string) *Scanner {
	s := &Scanner{buf: buf}

	if tag != "" {
		s.open = "<" + tag + ">"
		s.close = "</" + tag + ">"
	}

	return s
}

// Tag returns the tag name the Scanner was created with.
func (s *Scanner) Tag() string {
	if s.open == "" {
		return ""
	}

	return s.open[1 : len(s.open)-1]
}

// View returns the text strictly between the first open delimiter and the
// first close delimiter of the current buffer. It reports false if either
// delimiter is absent.
//
// Both delimiters are searched from the start of the buffer. If the first
// close delimiter precedes the first open delimiter, the view extends from
// the open delimiter to the end of the buffer.
func (s *Scanner) View() (string, bool) {
	if s.open == "" {
		return "", false
	}

	start := strings.Index(s.buf, s.open)
	end := strings.Index(s.buf, s.close)

	if start < 0 || end < 0 {
		return "", false
	}

	start += len(s.open)

	if end < start {
		return s.buf[start:], true
	}

	return s.buf[start:end], true
}

// Next truncates the buffer to the text following its first close delimiter.
// It reports false, leaving the buffer unchanged, if there is none.
func (s *Scanner) Next() bool {
	if s.close == "" {
		return false
	}

	end := strings.Index(s.buf, s.close)
	if end < 0 {
		return false
	}

	s.buf = s.buf[end+len(s.close):]

	return true
}

// All returns an iterator over the body of each successive tag span in buf.
//
// Each range over the returned sequence starts a fresh [Scanner], so the
// sequence can be consumed more than once.
func All(buf, tag string) iter.Seq[string] {
	return func(yield func(string) bool) {
		s := New(buf, tag)

		for {
			body, ok := s.View()
			if !ok || !yield(body) {
				return
			}

			s.Next()
		}
	}
}

// Field returns the body of the first tag span in buf, or the empty string if
// buf contains none.
func Field(buf, tag string) string {
	body, _ := New(buf, tag).View()

	return body
}
