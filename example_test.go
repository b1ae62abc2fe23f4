package ntext_test

import (
	"fmt"
	"iter"

	"github.com/muir/ntext"
)

// Example shows the default text for common shapes of values.
func Example() {
	type point struct {
		X, Y int
	}
	fmt.Println(ntext.FormatValue([2][2]int{{1, 2}, {3, 4}}))
	fmt.Println(ntext.FormatValue([]string{"a", "b", "c"}))
	fmt.Println(ntext.FormatValue(map[string]float64{"pi": 3.14, "e": 2.718}))
	fmt.Println(ntext.FormatValue(point{X: 1, Y: 2}))
	fmt.Println(ntext.FormatValue([]any{1, ntext.Char('c'), nil}))
	// Output: {{1,2},{3,4}}
	// {"a","b","c"}
	// {"e":2.718,"pi":3.14}
	// [point X=1,Y=2]
	// {1,'c',null}
}

func ExampleBuilder_SequenceBegin() {
	b := ntext.NewFormatter().NewBuilder()
	b.SequenceBegin("(", "", ", ", "", ")").
		AppendSequenceElement(1).
		AppendSequenceElement("two").
		SequenceEnd()
	fmt.Println(b.Text())
	// Output: (1, "two")
}

type invoice struct {
	Number int
	Lines  []string
	Notes  string
}

func (inv invoice) FormatText(b *ntext.Builder) {
	b.InstanceBegin("invoice").
		AppendMember("number", inv.Number).
		At(ntext.ComplexityMedium).AppendMember("lines", inv.Lines).
		At(ntext.ComplexityFull).AppendMember("notes", inv.Notes).
		InstanceEnd()
}

// The same value prints with more or less detail depending upon
// Settings.OutputComplexity.
func ExampleBuilder_At() {
	inv := invoice{Number: 12, Lines: []string{"tea"}, Notes: "paid"}
	for _, level := range []ntext.Complexity{ntext.ComplexityBasic, ntext.ComplexityMedium, ntext.ComplexityFull} {
		s := ntext.DefaultSettings()
		s.OutputComplexity = level
		fmt.Println(level, ntext.NewFormatter(ntext.WithSettings(s)).FormatValue(inv))
	}
	// Output: basic [invoice number=12]
	// medium [invoice number=12,lines={"tea"}]
	// full [invoice number=12,lines={"tea"},notes="paid"]
}

type temperature float64

func ExampleHandle() {
	r := ntext.NewRegistry()
	ntext.Handle(r, func(f float64, b *ntext.Builder) {
		b.AppendString(fmt.Sprintf("%.1f", f))
	})
	s := ntext.DefaultSettings()
	s.ParentHandlerSearchDepth = 1
	f := ntext.NewFormatter(ntext.WithRegistry(r), ntext.WithSettings(s))
	fmt.Println(f.FormatValue([]float64{1, 2.5}))
	// temperature is one step away from float64
	fmt.Println(f.FormatValue(temperature(-3)))
	// Output: {1.0,2.5}
	// -3.0
}

func ExampleFormatter_StrategyFor() {
	f := ntext.NewFormatter()
	var seq iter.Seq[any] = func(yield func(any) bool) {
		_ = yield(1) && yield(2)
	}
	for _, v := range []any{nil, "s", 3, []int{}, seq, struct{ A int }{}, make(chan int)} {
		fmt.Println(f.StrategyFor(v))
	}
	// Output: null
	// text
	// scalar
	// array
	// sequence
	// reflect
	// fallback
}
