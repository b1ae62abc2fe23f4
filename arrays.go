package ntext

import (
	"reflect"

	"github.com/muir/ntext/nproduct"
)

// reflectArray presents a Go array or slice as a MultiArray.  Arrays
// nested directly inside it are rectangular so they become additional
// dimensions: [2][3]int has rank 2, and so does [][3]int.  The
// elements of [][]int may differ in length so it has rank 1.  Arrays
// with their own String or Error method stay elements.
type reflectArray struct {
	v     reflect.Value
	sizes []int
}

var _ MultiArray = reflectArray{}

func newReflectArray(v reflect.Value) reflectArray {
	sizes := []int{v.Len()}
	for t := v.Type().Elem(); t.Kind() == reflect.Array && !describesItself(t); t = t.Elem() {
		sizes = append(sizes, t.Len())
	}
	return reflectArray{v: v, sizes: sizes}
}

func (a reflectArray) Rank() int          { return len(a.sizes) }
func (a reflectArray) LowerBound(int) int { return 0 }
func (a reflectArray) Length(d int) int   { return a.sizes[d] }

func (a reflectArray) At(coordinates []int) any {
	e := a.v
	for _, i := range coordinates {
		e = e.Index(i)
	}
	return e.Interface()
}

// arrayProcessor opens a nested sequence for each index of the outer
// dimensions and appends elements at the innermost one.
type arrayProcessor struct {
	b          *Builder
	array      MultiArray
	delimiters Delimiters
}

var _ nproduct.Processor = arrayProcessor{}

func (p arrayProcessor) BeforeDimension(state *nproduct.State) bool {
	if state.IsInnermost() {
		p.b.AppendSequenceElement(p.array.At(state.Coordinates()))
	} else {
		p.b.SequenceElementBegin().SequenceBeginWith(p.delimiters)
	}
	return true
}

func (p arrayProcessor) AfterDimension(state *nproduct.State) bool {
	if !state.IsInnermost() {
		p.b.SequenceEnd().SequenceElementEnd()
	}
	return true
}

// formatArray writes any rectangular array, of any rank, with the
// same delimiters at every level: {{1,2},{3,4}}
func formatArray(b *Builder, array MultiArray, d Delimiters) {
	b.SequenceBeginWith(d)
	nproduct.WalkArray(array, arrayProcessor{
		b:          b,
		array:      array,
		delimiters: d,
	})
	b.SequenceEnd()
}
