package ntext

import (
	"strings"
)

// sink accumulates text.  Writes are dropped while it is disabled or
// while a complexity filter is in effect.
type sink struct {
	buf      strings.Builder
	disabled bool
	filtered bool
}

func (s *sink) enabled() bool {
	return !s.disabled && !s.filtered
}

func (s *sink) write(text string) {
	if text == "" || !s.enabled() {
		return
	}
	s.buf.WriteString(text)
}

func (s *sink) String() string {
	return s.buf.String()
}
