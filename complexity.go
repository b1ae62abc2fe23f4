//go:generate stringer -type=Complexity,Strategy -linecomment -output stringer_generated.go
package ntext

import (
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Complexity ranks optional output.  An append call marked with
// Builder.At(level) only produces text when level is at or below
// the OutputComplexity of the Settings.  Unmarked calls always produce
// text.
type Complexity int

const (
	ComplexityDisable  Complexity = iota // disable
	ComplexitySkeleton                   // skeleton
	ComplexityBasic                      // basic
	ComplexityMedium                     // medium
	ComplexityComplex                    // complex
	ComplexityFull                       // full
)

// ParseComplexity is the inverse of Complexity.String.  Case is ignored.
func ParseComplexity(s string) (Complexity, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for c := ComplexityDisable; c <= ComplexityFull; c++ {
		if c.String() == want {
			return c, nil
		}
	}
	return ComplexityFull, errors.Errorf("unknown complexity level '%s'", s)
}

func (c Complexity) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Complexity) UnmarshalText(text []byte) error {
	parsed, err := ParseComplexity(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c *Complexity) UnmarshalYAML(node *yaml.Node) error {
	return errors.Wrapf(c.UnmarshalText([]byte(node.Value)), "line %d", node.Line)
}
