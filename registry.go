package ntext

import (
	"reflect"
	"sort"
	"sync"

	"github.com/muir/reflectutils"
)

// Handler writes the text of a value.  It is called with values of the
// shape it was registered for.
type Handler func(value any, b *Builder)

// Registry maps shapes (types) to the handlers that format them.
// Lookups may run concurrently with each other; registration should
// be done before formatting starts.
type Registry struct {
	lock     sync.RWMutex
	handlers map[reflect.Type]Handler
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[reflect.Type]Handler),
	}
}

// shapeOf accepts either a reflect.Type or an example value.
func shapeOf(shape any) reflect.Type {
	if shape == nil {
		contractViolation("nil has no shape")
	}
	t, isType := shape.(reflect.Type)
	if !isType {
		t = reflect.TypeOf(shape)
	}
	return t
}

// Register sets the handler for a shape.  The shape is a reflect.Type
// or an example value of the type.  Registering a handler for an
// interface type matches values that implement it; registering one
// for the empty interface provides a root handler that is only used
// when ancestor searches reach the root.
func (r *Registry) Register(shape any, h Handler) {
	t := shapeOf(shape)
	if h == nil {
		contractViolation("nil handler for %s", reflectutils.TypeName(t))
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.handlers[t] = h
}

// Handle registers a typed handler for T.
//
//	ntext.Handle(registry, func(id uuid.UUID, b *ntext.Builder) {
//		b.AppendString(id.String())
//	})
func Handle[T any](r *Registry, fn func(T, *Builder)) {
	r.Register(reflect.TypeOf((*T)(nil)).Elem(), func(value any, b *Builder) {
		fn(value.(T), b)
	})
}

// Unregister removes the handler for a shape, if any.
func (r *Registry) Unregister(shape any) {
	t := shapeOf(shape)
	r.lock.Lock()
	defer r.lock.Unlock()
	delete(r.handlers, t)
}

// Clear removes all handlers.
func (r *Registry) Clear() {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.handlers = make(map[reflect.Type]Handler)
}

// Len is the number of registered handlers.
func (r *Registry) Len() int {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return len(r.handlers)
}

// Lookup returns the handler registered for exactly this shape.
func (r *Registry) Lookup(shape any) (Handler, bool) {
	t := shapeOf(shape)
	r.lock.RLock()
	defer r.lock.RUnlock()
	h, ok := r.handlers[t]
	return h, ok
}

// find looks for a handler for v, then for the ancestors of v.  Moving
// from a pointer to what it points at does not count against depth.
// The returned value is v converted to the shape that matched.
func (r *Registry) find(v reflect.Value, depth int, toRoot bool) (Handler, reflect.Value, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	if len(r.handlers) == 0 {
		return nil, reflect.Value{}, false
	}
	seen := make(map[reflect.Type]struct{})
	hops := 0
	shape := v.Type()
	for {
		if h, ok := r.handlers[shape]; ok {
			return h, v, true
		}
		if _, ok := seen[shape]; ok {
			return nil, reflect.Value{}, false
		}
		seen[shape] = struct{}{}
		if shape.Kind() != reflect.Ptr {
			hops++
			if !toRoot && hops > depth {
				return nil, reflect.Value{}, false
			}
		}
		var ok bool
		shape, v, ok = parentShape(shape, v)
		if !ok {
			return nil, reflect.Value{}, false
		}
	}
}

// findInterface looks for handlers registered for non-empty interfaces
// that t implements.  When more than one matches, the one whose
// interface name sorts first wins.
func (r *Registry) findInterface(t reflect.Type) (Handler, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	var matches []reflect.Type
	for shape := range r.handlers {
		if shape.Kind() == reflect.Interface && shape.NumMethod() > 0 && t.Implements(shape) {
			matches = append(matches, shape)
		}
	}
	if len(matches) == 0 {
		return nil, false
	}
	sort.Slice(matches, func(i, j int) bool {
		return reflectutils.TypeName(matches[i]) < reflectutils.TypeName(matches[j])
	})
	return r.handlers[matches[0]], true
}

// parentShape steps one level up the ancestry of a shape:
//
//	*T                    -> T
//	struct{ Base; ... }   -> Base (the first field, when embedded)
//	type Celsius float64  -> float64 (and likewise for named slices, maps...)
//	anything else         -> any
//
// v is converted along with the shape.  The root, any, has no parent.
func parentShape(t reflect.Type, v reflect.Value) (reflect.Type, reflect.Value, bool) {
	if t == anyType {
		return nil, reflect.Value{}, false
	}
	//nolint:exhaustive // everything else is handled after the switch
	switch t.Kind() {
	case reflect.Ptr:
		if v.IsNil() {
			return nil, reflect.Value{}, false
		}
		return t.Elem(), v.Elem(), true
	case reflect.Struct:
		if t.NumField() > 0 && t.Field(0).Anonymous {
			field := t.Field(0)
			return field.Type, exposed(v.Field(0)), true
		}
		return anyType, v, true
	case reflect.Interface:
		return anyType, v, true
	}
	if t.PkgPath() != "" {
		if u := unnamed(t); u != nil && v.Type().ConvertibleTo(u) {
			return u, v.Convert(u), true
		}
	}
	return anyType, v, true
}

var basicTypes = map[reflect.Kind]reflect.Type{
	reflect.Bool:       reflect.TypeOf(false),
	reflect.Int:        reflect.TypeOf(int(0)),
	reflect.Int8:       reflect.TypeOf(int8(0)),
	reflect.Int16:      reflect.TypeOf(int16(0)),
	reflect.Int32:      reflect.TypeOf(int32(0)),
	reflect.Int64:      reflect.TypeOf(int64(0)),
	reflect.Uint:       reflect.TypeOf(uint(0)),
	reflect.Uint8:      reflect.TypeOf(uint8(0)),
	reflect.Uint16:     reflect.TypeOf(uint16(0)),
	reflect.Uint32:     reflect.TypeOf(uint32(0)),
	reflect.Uint64:     reflect.TypeOf(uint64(0)),
	reflect.Uintptr:    reflect.TypeOf(uintptr(0)),
	reflect.Float32:    reflect.TypeOf(float32(0)),
	reflect.Float64:    reflect.TypeOf(float64(0)),
	reflect.Complex64:  reflect.TypeOf(complex64(0)),
	reflect.Complex128: reflect.TypeOf(complex128(0)),
	reflect.String:     reflect.TypeOf(""),
}

// unnamed returns the type literal that a named type is defined as,
// or nil if there is no useful one.
func unnamed(t reflect.Type) reflect.Type {
	if basic, ok := basicTypes[t.Kind()]; ok {
		return basic
	}
	//nolint:exhaustive // only composite kinds have a literal
	switch t.Kind() {
	case reflect.Slice:
		return reflect.SliceOf(t.Elem())
	case reflect.Array:
		return reflect.ArrayOf(t.Len(), t.Elem())
	case reflect.Map:
		return reflect.MapOf(t.Key(), t.Elem())
	case reflect.Chan:
		return reflect.ChanOf(t.ChanDir(), t.Elem())
	}
	return nil
}
