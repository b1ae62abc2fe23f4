package ntext

// sequenceFrame is one open sequence: an array dimension, a collection,
// a map entry, a member, or a reflected struct.
type sequenceFrame struct {
	Delimiters
	elementCount int
	// visible is whether the element in progress is being written
	visible bool
}

// Builder accumulates the text of nested sequences.  Each open sequence
// has its own delimiters; the Builder keeps them on a stack so that
// arrays, collections, and structs at any depth share the same
// separator handling.
//
// A Builder must not be used by more than one goroutine at a time.
type Builder struct {
	formatter *Formatter
	settings  Settings
	out       sink
	current   *sequenceFrame
	stack     []*sequenceFrame

	// calls is the nesting depth of append calls.  A mark from At
	// applies to the next call made at markCalls.
	calls     int
	level     Complexity
	levelSet  bool
	markCalls int
	marks     []filterMark

	// active holds the pointers, maps, and slices being formatted
	active map[activeKey]struct{}
}

// filterMark restores the filter when the marked call returns
type filterMark struct {
	calls    int
	filtered bool
}

// NewBuilder creates a Builder that dispatches values to f.
func (f *Formatter) NewBuilder() *Builder {
	return &Builder{
		formatter: f,
		settings:  f.settings,
	}
}

// Formatter returns the formatter that values are dispatched to.
func (b *Builder) Formatter() *Formatter { return b.formatter }

// Settings returns the settings of the formatter.
func (b *Builder) Settings() Settings { return b.settings }

// Depth is the number of open sequences.
func (b *Builder) Depth() int {
	if b.current == nil {
		return 0
	}
	return len(b.stack) + 1
}

// At marks the next append call as optional: it only produces text
// when level is at or below Settings.OutputComplexity.  The mark covers
// everything the call writes, including nested values.  Handlers and
// TextFormatters may use it too; a mark that is still unused when they
// return is dropped.
//
//	b.AppendMember("id", id).At(ntext.ComplexityMedium).AppendMember("history", h)
func (b *Builder) At(level Complexity) *Builder {
	b.level = level
	b.levelSet = true
	b.markCalls = b.calls
	return b
}

// Enable turns output back on after Disable.
func (b *Builder) Enable() *Builder {
	b.out.disabled = false
	return b
}

// Disable drops all text until Enable is called.  Sequence bookkeeping
// continues while disabled.
func (b *Builder) Disable() *Builder {
	b.out.disabled = true
	return b
}

// Enabled reports whether text written now would be kept.
func (b *Builder) Enabled() bool {
	return b.out.enabled()
}

func (b *Builder) enter() {
	if b.levelSet && b.calls == b.markCalls {
		b.marks = append(b.marks, filterMark{calls: b.calls, filtered: b.out.filtered})
		b.out.filtered = b.out.filtered || b.level > b.settings.OutputComplexity
		b.levelSet = false
	}
	b.calls++
}

func (b *Builder) exit() {
	b.calls--
	if n := len(b.marks); n > 0 && b.marks[n-1].calls == b.calls {
		b.out.filtered = b.marks[n-1].filtered
		b.marks = b.marks[:n-1]
	}
}

// dropMark forgets a mark made at or below depth calls that no append
// call used.
func (b *Builder) dropMark(calls int) {
	if b.levelSet && b.markCalls >= calls {
		b.levelSet = false
	}
}

// SequenceBegin opens a sequence and writes its prefix.
func (b *Builder) SequenceBegin(prefix, firstElementPrefix, otherElementPrefix, elementPostfix, postfix string) *Builder {
	return b.SequenceBeginWith(Delimiters{
		Prefix:             prefix,
		FirstElementPrefix: firstElementPrefix,
		OtherElementPrefix: otherElementPrefix,
		ElementPostfix:     elementPostfix,
		Postfix:            postfix,
	})
}

// SequenceBeginWith is SequenceBegin with the delimiters in a struct.
func (b *Builder) SequenceBeginWith(d Delimiters) *Builder {
	b.enter()
	defer b.exit()
	if b.current != nil {
		b.stack = append(b.stack, b.current)
	}
	b.current = &sequenceFrame{Delimiters: d}
	b.out.write(d.Prefix)
	return b
}

// SequenceEnd writes the postfix of the innermost open sequence and
// closes it.  It panics if no sequence is open.
func (b *Builder) SequenceEnd() *Builder {
	b.enter()
	defer b.exit()
	if b.current == nil {
		contractViolation("SequenceEnd without an open sequence")
	}
	b.out.write(b.current.Postfix)
	if n := len(b.stack); n > 0 {
		b.current = b.stack[n-1]
		b.stack = b.stack[:n-1]
	} else {
		b.current = nil
	}
	return b
}

// SequenceElementBegin writes the separator that comes before an
// element of the innermost open sequence.  Use it with
// SequenceElementEnd when an element is built from more than one
// value.
func (b *Builder) SequenceElementBegin() *Builder {
	b.enter()
	defer b.exit()
	if b.current == nil {
		contractViolation("sequence element outside of a sequence")
	}
	b.current.visible = b.out.enabled()
	if b.current.elementCount == 0 {
		b.out.write(b.current.FirstElementPrefix)
	} else {
		b.out.write(b.current.OtherElementPrefix)
	}
	return b
}

// SequenceElementEnd finishes an element started with
// SequenceElementBegin.
func (b *Builder) SequenceElementEnd() *Builder {
	b.enter()
	defer b.exit()
	if b.current == nil {
		contractViolation("sequence element outside of a sequence")
	}
	b.out.write(b.current.ElementPostfix)
	// suppressed elements must not cause separators later
	if b.current.visible {
		b.current.elementCount++
	}
	return b
}

// AppendSequenceElement adds a value as the next element of the
// innermost open sequence.  It panics if no sequence is open.
func (b *Builder) AppendSequenceElement(value any) *Builder {
	b.enter()
	defer b.exit()
	b.SequenceElementBegin()
	b.formatter.Dispatch(value, b)
	return b.SequenceElementEnd()
}

// AppendString writes text as-is.
func (b *Builder) AppendString(text string) *Builder {
	b.enter()
	defer b.exit()
	b.out.write(text)
	return b
}

// AppendValue writes the text of a value.  It does not add a
// separator even if a sequence is open.
func (b *Builder) AppendValue(value any) *Builder {
	b.enter()
	defer b.exit()
	return b.SequenceBegin("", "", "", "", "").
		AppendSequenceElement(value).
		SequenceEnd()
}

// AppendMember writes name, the member separator, and the text of
// value.  Inside a sequence the member is one element of that sequence.
func (b *Builder) AppendMember(name string, value any) *Builder {
	b.enter()
	defer b.exit()
	inSequence := b.current != nil
	if inSequence {
		b.SequenceElementBegin()
	}
	b.SequenceBegin(name+b.settings.MemberSeparator, "", "", "", "").
		AppendSequenceElement(value).
		SequenceEnd()
	if inSequence {
		b.SequenceElementEnd()
	}
	return b
}

// InstanceBegin opens a sequence for the members of a named thing,
// using Settings.Instance.  Close it with InstanceEnd.
//
//	b.InstanceBegin("Shape").AppendMember("id", s.ID).InstanceEnd()
func (b *Builder) InstanceBegin(name string) *Builder {
	d := b.settings.Instance
	d.Prefix += name
	return b.SequenceBeginWith(d)
}

// InstanceEnd closes the sequence opened by InstanceBegin.
func (b *Builder) InstanceEnd() *Builder {
	return b.SequenceEnd()
}

// Text returns the accumulated text.  It panics if any sequence is
// still open since the text would be truncated.
func (b *Builder) Text() string {
	if depth := b.Depth(); depth != 0 {
		contractViolation("Text called with %d open sequences", depth)
	}
	return b.out.String()
}
