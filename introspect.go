package ntext

import (
	"reflect"
	"strings"
	"sync"
	"unsafe"

	"github.com/muir/reflectutils"
)

// MemberFlags select which members of a struct are shown by the
// reflection strategy.
type MemberFlags uint8

const (
	// PublicFields are exported struct fields
	PublicFields MemberFlags = 1 << iota
	// PrivateFields are unexported struct fields
	PrivateFields
	// PublicProperties are exported methods that take no arguments and
	// return one value
	PublicProperties
	// PrivateProperties are unexported methods of that shape.  Go
	// cannot call those through reflection so the default Introspector
	// never finds any.
	PrivateProperties
)

// Has is true if all of want are set.
func (f MemberFlags) Has(want MemberFlags) bool {
	return f&want == want
}

// Member is one named part of a struct.
type Member struct {
	Name string
	// Get extracts the member from an addressable struct value.  The
	// result can be used with Interface() even for unexported fields.
	Get func(structValue reflect.Value) reflect.Value
}

// Introspector lists the members of struct types for the reflection
// strategy.  Supply one with WithIntrospector to replace the default
// reflect-based member walk, for example with generated describers.
type Introspector interface {
	Members(t reflect.Type, flags MemberFlags) []Member
}

// ReflectIntrospector lists fields in declaration order followed by
// properties in method order.  Fields of embedded structs are listed
// in place of the embedded struct.  Blank fields are skipped, and so
// are fields tagged `ntext:"-"`.  A tag `ntext:"name"` renames a field.
type ReflectIntrospector struct{}

var _ Introspector = ReflectIntrospector{}

const tagName = "ntext"

func (ReflectIntrospector) Members(t reflect.Type, flags MemberFlags) []Member {
	var members []Member
	if flags&(PublicFields|PrivateFields) != 0 {
		reflectutils.WalkStructElements(t, func(field reflect.StructField) bool {
			if field.Name == "_" {
				return false
			}
			name := field.Name
			if tag, ok := field.Tag.Lookup(tagName); ok {
				tagged, _, _ := strings.Cut(tag, ",")
				if tagged == "-" {
					return false
				}
				if tagged != "" {
					name = tagged
				}
			}
			if field.Anonymous && field.Type.Kind() == reflect.Struct {
				return true
			}
			want := PublicFields
			if !field.IsExported() {
				want = PrivateFields
			}
			if flags.Has(want) {
				index := field.Index
				members = append(members, Member{
					Name: name,
					Get: func(v reflect.Value) reflect.Value {
						return exposed(v.FieldByIndex(index))
					},
				})
			}
			return false
		})
	}
	if flags.Has(PublicProperties) {
		for i := 0; i < t.NumMethod(); i++ {
			method := t.Method(i)
			if !isProperty(method) {
				continue
			}
			index := method.Index
			members = append(members, Member{
				Name: method.Name,
				Get: func(v reflect.Value) reflect.Value {
					return v.Method(index).Call(nil)[0]
				},
			})
		}
	}
	return members
}

// isProperty matches getter-shaped methods.  The methods that describe
// the whole value are not properties of it.
func isProperty(m reflect.Method) bool {
	if !m.IsExported() || m.Type.NumIn() != 1 || m.Type.NumOut() != 1 {
		return false
	}
	switch m.Name {
	case "String", "GoString", "Error":
		return false
	}
	return true
}

type memberKey struct {
	t     reflect.Type
	flags MemberFlags
}

// memberCache remembers member lists per type and flag combination.
type memberCache struct {
	lock    sync.RWMutex
	members map[memberKey][]Member
}

func newMemberCache() *memberCache {
	return &memberCache{
		members: make(map[memberKey][]Member),
	}
}

func (c *memberCache) get(in Introspector, t reflect.Type, flags MemberFlags) []Member {
	key := memberKey{t: t, flags: flags}
	c.lock.RLock()
	members, ok := c.members[key]
	c.lock.RUnlock()
	if ok {
		return members
	}
	members = in.Members(t, flags)
	c.lock.Lock()
	c.members[key] = members
	c.lock.Unlock()
	return members
}

// addressable returns v or an addressable copy of it.  v must not
// have been read through an unexported field.
func addressable(v reflect.Value) reflect.Value {
	if v.CanAddr() {
		return v
	}
	c := reflect.New(v.Type()).Elem()
	c.Set(v)
	return c
}

// exposed makes an addressable value that was read through an
// unexported field usable with Interface().
func exposed(v reflect.Value) reflect.Value {
	if v.CanInterface() || !v.CanAddr() {
		return v
	}
	//nolint:gosec // read-only access to unexported fields
	return reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Elem()
}
