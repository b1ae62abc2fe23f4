package ntext

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"

	"github.com/muir/reflectutils"
)

// subject is a value on its way through the cascade
type subject struct {
	value any
	// rv is value with pointers followed.  It is invalid for nil.
	rv reflect.Value
	// describesItself is true when the type of value has a String
	// or Error method
	describesItself bool

	handler Handler
	// handled is value converted to the shape the handler was found for
	handled reflect.Value
}

func newSubject(value any) *subject {
	s := &subject{value: value}
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Ptr && !rv.IsNil() {
		rv = rv.Elem()
	}
	s.rv = rv
	if value != nil {
		s.describesItself = describesItself(reflect.TypeOf(value))
	}
	return s
}

type strategy struct {
	kind  Strategy
	match func(*Formatter, *subject) bool
	apply func(*Formatter, *Builder, *subject)
}

// cascade is the order in which strategies are tried.  It is filled
// in by init because the strategies format nested values through
// Dispatch, which reads cascade.
var cascade []strategy

func init() {
	cascade = []strategy{
		{StrategyNull, isNull, writeNull},
		{StrategyHandler, hasHandler, callHandler},
		{StrategyText, isText, writeText},
		{StrategySelf, isTextFormatter, callTextFormatter},
		{StrategyType, isType, writeType},
		{StrategyScalar, isScalar, writeScalar},
		{StrategyArray, isArray, writeArray},
		{StrategySequence, isSequence, writeSequence},
		{StrategyInterfaceHandler, hasInterfaceHandler, callHandler},
		{StrategyReflect, isReflectable, writeMembers},
		{StrategyFallback, always, writeFallback},
	}
}

func always(*Formatter, *subject) bool { return true }

func isNull(_ *Formatter, s *subject) bool {
	if s.value == nil {
		return true
	}
	//nolint:exhaustive // nil slices and maps are empty, not null
	switch s.rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return s.rv.IsNil()
	}
	return false
}

func writeNull(_ *Formatter, b *Builder, _ *subject) {
	b.AppendString("null")
}

func hasHandler(f *Formatter, s *subject) bool {
	if f.registry.Len() == 0 {
		return false
	}
	h, v, ok := f.registry.find(addressable(reflect.ValueOf(s.value)),
		f.settings.ParentHandlerSearchDepth, f.settings.ParentHandlerSearchUpToRoot)
	if !ok {
		return false
	}
	s.handler = h
	s.handled = v
	return true
}

func hasInterfaceHandler(f *Formatter, s *subject) bool {
	h, ok := f.registry.findInterface(reflect.TypeOf(s.value))
	if !ok {
		return false
	}
	s.handler = h
	s.handled = reflect.ValueOf(s.value)
	return true
}

func callHandler(_ *Formatter, b *Builder, s *subject) {
	s.handler(s.handled.Interface(), b)
}

func isText(_ *Formatter, s *subject) bool {
	return s.rv.Type() == charType || s.rv.Kind() == reflect.String
}

func writeText(f *Formatter, b *Builder, s *subject) {
	if s.rv.Type() == charType {
		text := string(rune(s.rv.Int()))
		if f.settings.AutomaticCharQuoting {
			text = f.settings.CharQuote + text + f.settings.CharQuote
		}
		b.AppendString(text)
		return
	}
	text := s.rv.String()
	if f.settings.AutomaticStringQuoting {
		text = f.settings.StringQuote + text + f.settings.StringQuote
	}
	b.AppendString(text)
}

func isTextFormatter(_ *Formatter, s *subject) bool {
	_, ok := s.value.(TextFormatter)
	return ok
}

func callTextFormatter(_ *Formatter, b *Builder, s *subject) {
	s.value.(TextFormatter).FormatText(b)
}

func isType(_ *Formatter, s *subject) bool {
	_, ok := s.value.(reflect.Type)
	return ok
}

func writeType(_ *Formatter, b *Builder, s *subject) {
	b.AppendString(reflectutils.TypeName(s.value.(reflect.Type)))
}

func isScalar(_ *Formatter, s *subject) bool {
	if s.describesItself {
		return false
	}
	//nolint:exhaustive // everything else is not a scalar
	switch s.rv.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}

func writeScalar(_ *Formatter, b *Builder, s *subject) {
	b.AppendString(formatScalar(s.rv))
}

// formatScalar never uses a locale: floats always have a period for a
// decimal point so that they cannot be confused with separators.
func formatScalar(v reflect.Value) string {
	//nolint:exhaustive // only scalar kinds get here
	switch v.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'g', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64)
	case reflect.Complex64:
		return strconv.FormatComplex(v.Complex(), 'g', -1, 64)
	case reflect.Complex128:
		return strconv.FormatComplex(v.Complex(), 'g', -1, 128)
	}
	return fmt.Sprint(v.Interface())
}

func isArray(_ *Formatter, s *subject) bool {
	if _, ok := s.value.(MultiArray); ok {
		return true
	}
	if s.describesItself {
		return false
	}
	k := s.rv.Kind()
	return k == reflect.Array || k == reflect.Slice
}

func writeArray(f *Formatter, b *Builder, s *subject) {
	array, ok := s.value.(MultiArray)
	if !ok {
		array = newReflectArray(s.rv)
	}
	formatArray(b, array, f.settings.Array)
}

// asSeq accepts iter.Seq[any] and the same function shape unnamed
func asSeq(value any) (anySeq, bool) {
	switch seq := value.(type) {
	case anySeq:
		return seq, true
	case func(func(any) bool):
		return seq, true
	}
	return nil, false
}

func isSequence(_ *Formatter, s *subject) bool {
	if _, ok := asSeq(s.value); ok {
		return true
	}
	return !s.describesItself && s.rv.Kind() == reflect.Map
}

func writeSequence(f *Formatter, b *Builder, s *subject) {
	b.SequenceBeginWith(f.settings.Enumerable)
	if seq, ok := asSeq(s.value); ok {
		seq(func(element any) bool {
			b.AppendSequenceElement(element)
			return true
		})
		b.SequenceEnd()
		return
	}
	type entry struct {
		sortKey string
		key     any
		value   any
	}
	entries := make([]entry, 0, s.rv.Len())
	iter := s.rv.MapRange()
	for iter.Next() {
		key := iter.Key().Interface()
		entries = append(entries, entry{
			sortKey: f.FormatValue(key),
			key:     key,
			value:   iter.Value().Interface(),
		})
	}
	// map iteration order is random; formatting must be repeatable
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].sortKey < entries[j].sortKey
	})
	for _, e := range entries {
		b.SequenceElementBegin().
			SequenceBeginWith(f.settings.MapEntry).
			AppendSequenceElement(e.key).
			AppendSequenceElement(e.value).
			SequenceEnd().
			SequenceElementEnd()
	}
	b.SequenceEnd()
}

func isReflectable(f *Formatter, s *subject) bool {
	return f.settings.UseReflection && !s.describesItself && s.rv.Kind() == reflect.Struct
}

func writeMembers(f *Formatter, b *Builder, s *subject) {
	v := addressable(s.rv)
	t := v.Type()
	b.InstanceBegin(instanceName(t))
	for _, m := range f.members.get(f.introspector, t, f.settings.MemberFlags()) {
		b.AppendMember(m.Name, m.Get(v).Interface())
	}
	b.InstanceEnd()
}

func instanceName(t reflect.Type) string {
	if t.Name() != "" {
		return t.Name()
	}
	return reflectutils.TypeName(t)
}

func writeFallback(_ *Formatter, b *Builder, s *subject) {
	b.AppendString(fmt.Sprint(s.value))
}
