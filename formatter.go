package ntext

import (
	"reflect"

	"github.com/muir/reflectutils"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Formatter turns values into text.  It may be shared between
// goroutines: each call to FormatValue uses its own Builder.
type Formatter struct {
	settings     Settings
	registry     *Registry
	introspector Introspector
	members      *memberCache
	log          *zap.Logger
}

// FormatterOpt configures a Formatter
type FormatterOpt func(*Formatter)

// WithSettings replaces DefaultSettings()
func WithSettings(s Settings) FormatterOpt {
	return func(f *Formatter) {
		f.settings = s
	}
}

// WithRegistry shares a handler registry.  By default each Formatter
// has its own empty registry.
func WithRegistry(r *Registry) FormatterOpt {
	return func(f *Formatter) {
		f.registry = r
	}
}

// WithIntrospector replaces ReflectIntrospector
func WithIntrospector(in Introspector) FormatterOpt {
	return func(f *Formatter) {
		f.introspector = in
	}
}

// WithLogger sets a logger for debug traces of strategy selection.
func WithLogger(log *zap.Logger) FormatterOpt {
	return func(f *Formatter) {
		f.log = log
	}
}

// NewFormatter creates a Formatter
func NewFormatter(opts ...FormatterOpt) *Formatter {
	f := &Formatter{
		settings:     DefaultSettings(),
		introspector: ReflectIntrospector{},
		members:      newMemberCache(),
		log:          zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.registry == nil {
		f.registry = NewRegistry()
	}
	return f
}

// Settings returns a copy of the settings in use.
func (f *Formatter) Settings() Settings { return f.settings }

// Registry returns the handler registry.
func (f *Formatter) Registry() *Registry { return f.registry }

// FormatValue returns the text of value.
func (f *Formatter) FormatValue(value any) string {
	return f.NewBuilder().AppendValue(value).Text()
}

// StrategyFor reports which strategy FormatValue would use for the
// top level of value.  Handlers are not called.
func (f *Formatter) StrategyFor(value any) Strategy {
	return f.choose(newSubject(value)).kind
}

// Dispatch writes the text of value to b.  Handlers and TextFormatters
// call it (usually indirectly through Builder methods) to format
// nested values.
func (f *Formatter) Dispatch(value any, b *Builder) {
	if b == nil {
		contractViolation("Dispatch called with a nil Builder")
	}
	s := newSubject(value)
	if key, ok := activeKeyOf(value); ok {
		if _, busy := b.active[key]; busy {
			f.log.Debug("value refers to itself", zap.String("shape", reflectutils.TypeName(key.t)))
			b.InstanceBegin(instanceName(s.rv.Type())).AppendString(" ...").InstanceEnd()
			return
		}
		if b.active == nil {
			b.active = make(map[activeKey]struct{})
		}
		b.active[key] = struct{}{}
		defer delete(b.active, key)
	}
	st := f.choose(s)
	if ce := f.log.Check(zapcore.DebugLevel, "format value"); ce != nil {
		shape := "nil"
		if value != nil {
			shape = reflectutils.TypeName(reflect.TypeOf(value))
		}
		ce.Write(
			zap.Stringer("strategy", st.kind),
			zap.String("shape", shape),
			zap.Int("depth", b.Depth()))
	}
	calls := b.calls
	st.apply(f, b, s)
	b.dropMark(calls)
}

// activeKey identifies a value that can contain itself
type activeKey struct {
	p uintptr
	t reflect.Type
}

func activeKeyOf(value any) (activeKey, bool) {
	rv := reflect.ValueOf(value)
	//nolint:exhaustive // other kinds cannot refer back to themselves
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map:
		if rv.IsNil() {
			return activeKey{}, false
		}
	case reflect.Slice:
		if rv.Len() == 0 {
			return activeKey{}, false
		}
	default:
		return activeKey{}, false
	}
	return activeKey{p: rv.Pointer(), t: rv.Type()}, true
}

func (f *Formatter) choose(s *subject) *strategy {
	for i := range cascade {
		if cascade[i].match(f, s) {
			return &cascade[i]
		}
	}
	// StrategyFallback matches everything
	panic("no formatting strategy")
}

// Default is used by the package-level functions.
var Default = NewFormatter()

// FormatValue formats with the Default formatter.
func FormatValue(value any) string {
	return Default.FormatValue(value)
}

// RegisterHandler adds a handler to the Default formatter.
func RegisterHandler(shape any, h Handler) {
	Default.Registry().Register(shape, h)
}

// ClearHandlers removes all handlers from the Default formatter.
func ClearHandlers() {
	Default.Registry().Clear()
}
