package source

import (
	"strings"

	"fortio.org/safecast"
)

// Script is the ordered line model of one script. Line numbers are
// strictly increasing by one starting at 1 and the slice order equals
// source order. A Script is immutable once built.
type Script struct {
	lines []ScriptLine
}

// NewScript splits text into lines. A trailing terminator does not produce
// an extra empty line, and a '\r' preceding '\n' is dropped. Empty input
// yields an empty Script. NewScript never fails.
func NewScript(text string) *Script {
	if text == "" {
		return &Script{}
	}

	raw := strings.Split(text, "\n")
	if raw[len(raw)-1] == "" {
		raw = raw[:len(raw)-1]
	}

	lines := make([]ScriptLine, 0, len(raw))
	for i, content := range raw {
		num, err := safecast.Conv[uint32](i + 1)
		if err != nil {
			// больше строк адресовать нечем
			break
		}
		content = strings.TrimSuffix(content, "\r")
		lines = append(lines, ScriptLine{
			Number:  num,
			Content: content,
			Trimmed: strings.TrimSpace(content),
		})
	}
	return &Script{lines: lines}
}

// Lines returns the read-only line sequence.
// Do not modify the returned slice.
func (s *Script) Lines() []ScriptLine {
	if s == nil {
		return nil
	}
	return s.lines
}

// Len returns the number of lines.
func (s *Script) Len() int {
	if s == nil {
		return 0
	}
	return len(s.lines)
}

// Line returns the line with the given 1-based number.
func (s *Script) Line(num uint32) (ScriptLine, bool) {
	if s == nil || num == 0 || int(num) > len(s.lines) {
		return ScriptLine{}, false
	}
	return s.lines[num-1], true
}

// Next returns the line following l, if any.
func (s *Script) Next(l ScriptLine) (ScriptLine, bool) {
	return s.Line(l.Number + 1)
}

// First returns line 1, if the script has one.
func (s *Script) First() (ScriptLine, bool) {
	return s.Line(1)
}
