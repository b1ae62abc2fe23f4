// Obligatory // comment

/*

Package ntext turns arbitrary Go values into compact, single-line text
for diagnostics and logs.

	ntext.FormatValue([][2]int{{1, 2}, {3, 4}})      // {{1,2},{3,4}}
	ntext.FormatValue([]string{"a", "b", "c"})       // {"a","b","c"}
	ntext.FormatValue(point{X: 1, Y: 2})             // [point X=1,Y=2]
	ntext.FormatValue(map[string]float64{"pi": 3.14}) // {"pi":3.14}

Sequences

All output is built from nested sequences.  A sequence has a prefix, a
separator for its first element, a separator for the other elements, a
postfix for each element, and a postfix for the whole.  A Builder keeps
a stack of open sequences so arrays, maps, and structs at any depth
share one implementation of separators:

	b := formatter.NewBuilder()
	b.SequenceBegin("(", "", ",", "", ")").
		AppendSequenceElement(1).
		AppendSequenceElement(2).
		SequenceEnd()
	b.Text() // (1,2)

Unbalanced sequences are bugs in the calling code.  SequenceEnd without
a matching SequenceBegin, or Text with sequences still open, panic with
an error that wraps ErrContractViolation.

How values are formatted

A Formatter tries the following, in order, and uses the first that
applies:

	null                nil, and nil pointers, interfaces, funcs, and chans
	handler             a Handler registered for the type, or an ancestor of it
	text                strings (quoted) and Char (quoted)
	self                values that implement TextFormatter
	type                reflect.Type values print their name
	scalar              bools and numbers; floats use a period, never a comma
	array               arrays, slices, and MultiArray, of any rank
	sequence            maps (sorted by key text) and iter.Seq[any]
	interface-handler   a Handler registered for an interface the value implements
	reflect             structs, member by member, via an Introspector
	fallback            fmt.Sprint

Types that have a String or Error method skip the scalar, array,
sequence, and reflect strategies so that their own text is used.

Ancestors

Go has no inheritance so the ancestors of a type are: the type a pointer
points to, the type embedded as the first field of a struct, the type
literal of a named type, and finally the empty interface.  Handlers of
ancestors are found when Settings.ParentHandlerSearchDepth allows enough
steps, or when Settings.ParentHandlerSearchUpToRoot is set.  The handler
receives the value converted to the ancestor: the embedded struct, or the
float64 for a named float64 type.

Complexity

The same call site can produce terse or verbose output.  Mark optional
parts with Builder.At and pick a level with Settings.OutputComplexity:

	func (o Order) FormatText(b *ntext.Builder) {
		b.InstanceBegin("Order").
			AppendMember("id", o.ID).
			At(ntext.ComplexityMedium).AppendMember("lines", o.Lines).
			InstanceEnd()
	}

At the default level, ComplexityFull, both members are shown.  With
ComplexityBasic the output is [Order id=7].

A value that contains itself, through a pointer, map, or slice, is
written as [TypeName ...] where it recurs.

Loading settings

Settings can be read from YAML with LoadSettings and adjusted with
ApplyOverrides, which accepts dotted keys such as "array.prefix".

*/
package ntext
