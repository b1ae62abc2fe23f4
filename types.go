package ntext

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/muir/ntext/nproduct"
)

// Char is a single character.  Go does not distinguish runes from
// int32 so a character that should print as a character (and be quoted
// when AutomaticCharQuoting is set) must be wrapped in Char.
type Char rune

// TextFormatter is implemented by values that write their own text.
// It takes precedence over everything but nil checks, registered
// handlers, and strings.
type TextFormatter interface {
	FormatText(b *Builder)
}

// MultiArray is a rectangular array of any rank that is not a Go
// array or slice.  At is called with one coordinate per dimension,
// offset by LowerBound: the first element of a dimension whose lower
// bound is 1 is at coordinate 1.
type MultiArray interface {
	nproduct.Array
	At(coordinates []int) any
}

// Strategy identifies how the Formatter turned a value into text.
// Strategies are tried in the order they are declared; the first one
// that accepts a value is used.
type Strategy int

const (
	StrategyNull             Strategy = iota // null
	StrategyHandler                          // handler
	StrategyText                             // text
	StrategySelf                             // self
	StrategyType                             // type
	StrategyScalar                           // scalar
	StrategyArray                            // array
	StrategySequence                         // sequence
	StrategyInterfaceHandler                 // interface-handler
	StrategyReflect                          // reflect
	StrategyFallback                         // fallback
)

var (
	charType     = reflect.TypeOf(Char(0))
	anyType      = reflect.TypeOf((*any)(nil)).Elem()
	stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
	errorType    = reflect.TypeOf((*error)(nil)).Elem()
)

// describesItself is true for types that have their own String or
// Error method.  Those skip the scalar and reflection strategies so
// that their own text is used instead.
func describesItself(t reflect.Type) bool {
	return t.Implements(stringerType) || t.Implements(errorType)
}

type anySeq = iter.Seq[any]
