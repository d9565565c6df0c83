package schema

import (
	"strings"
)

// Path identifies a (possibly nested) feature as an ordered sequence of
// step names from root to leaf. It is an immutable value type: all
// methods return new values and never mutate the receiver.
type Path struct {
	steps []string
}

// NewPath creates a Path from the given steps.
// The steps are copied, so the caller may reuse the slice.
func NewPath(steps ...string) Path {
	if len(steps) == 0 {
		return Path{}
	}
	s := make([]string, len(steps))
	copy(s, steps)
	return Path{steps: s}
}

// Len returns the number of steps.
func (p Path) Len() int { return len(p.steps) }

// IsEmpty returns true if the path has no steps.
func (p Path) IsEmpty() bool { return len(p.steps) == 0 }

// Step returns the i-th step. Panics if i is out of range.
func (p Path) Step(i int) string { return p.steps[i] }

// Steps returns a copy of the steps.
func (p Path) Steps() []string {
	s := make([]string, len(p.steps))
	copy(s, p.steps)
	return s
}

// Last returns the final step, or "" for an empty path.
func (p Path) Last() string {
	if len(p.steps) == 0 {
		return ""
	}
	return p.steps[len(p.steps)-1]
}

// Child returns a new Path with step appended.
func (p Path) Child(step string) Path {
	s := make([]string, len(p.steps)+1)
	copy(s, p.steps)
	s[len(p.steps)] = step
	return Path{steps: s}
}

// Parent returns the path with the last step removed.
// The parent of an empty path is the empty path.
func (p Path) Parent() Path {
	if len(p.steps) == 0 {
		return Path{}
	}
	return Path{steps: p.steps[:len(p.steps)-1]}
}

// Prefix returns the path consisting of the first n steps.
// Panics if n is negative or greater than Len.
func (p Path) Prefix(n int) Path {
	return Path{steps: p.steps[:n]}
}

// Equal reports whether both paths have identical step sequences.
func (p Path) Equal(other Path) bool {
	if len(p.steps) != len(other.steps) {
		return false
	}
	for i, s := range p.steps {
		if s != other.steps[i] {
			return false
		}
	}
	return true
}

// IsStrictPrefixOf reports whether p's steps are a strict ordered initial
// subsequence of other's steps. A path is not a strict prefix of itself.
func (p Path) IsStrictPrefixOf(other Path) bool {
	if len(p.steps) >= len(other.steps) {
		return false
	}
	for i, s := range p.steps {
		if s != other.steps[i] {
			return false
		}
	}
	return true
}

// Compare orders paths lexicographically by steps, shorter first on ties.
// Returns -1, 0, or 1.
func (p Path) Compare(other Path) int {
	n := len(p.steps)
	if len(other.steps) < n {
		n = len(other.steps)
	}
	for i := 0; i < n; i++ {
		if c := strings.Compare(p.steps[i], other.steps[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(p.steps) < len(other.steps):
		return -1
	case len(p.steps) > len(other.steps):
		return 1
	default:
		return 0
	}
}

// String serializes the path as dot-joined steps. Steps that contain a
// dot or a single quote are wrapped in single quotes, with embedded
// quotes doubled, so that distinct paths always serialize to distinct
// strings. The result doubles as a stable map key.
func (p Path) String() string {
	var sb strings.Builder
	for i, s := range p.steps {
		if i > 0 {
			sb.WriteByte('.')
		}
		if strings.ContainsAny(s, ".'") {
			sb.WriteByte('\'')
			sb.WriteString(strings.ReplaceAll(s, "'", "''"))
			sb.WriteByte('\'')
		} else {
			sb.WriteString(s)
		}
	}
	return sb.String()
}

// ParsePath is the inverse of String. It splits on dots, honoring
// single-quoted steps; a doubled quote inside a quoted step is a
// literal quote.
func ParsePath(s string) Path {
	if s == "" {
		return Path{}
	}
	var steps []string
	var cur strings.Builder
	quoted := false
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '\'':
			if quoted && i+1 < len(s) && s[i+1] == '\'' {
				cur.WriteByte('\'')
				i++
			} else {
				quoted = !quoted
			}
		case c == '.' && !quoted:
			steps = append(steps, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	steps = append(steps, cur.String())
	return Path{steps: steps}
}
