package ntext

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Delimiters are the strings that bracket a sequence and separate its
// elements.  The text of a sequence is Prefix, then for each element
// FirstElementPrefix (first element) or OtherElementPrefix (the rest),
// the element, ElementPostfix, and finally Postfix.
type Delimiters struct {
	Prefix             string `yaml:"prefix" mapstructure:"prefix"`
	FirstElementPrefix string `yaml:"first_element_prefix" mapstructure:"first_element_prefix"`
	OtherElementPrefix string `yaml:"other_element_prefix" mapstructure:"other_element_prefix"`
	ElementPostfix     string `yaml:"element_postfix" mapstructure:"element_postfix"`
	Postfix            string `yaml:"postfix" mapstructure:"postfix"`
}

// Settings control a Formatter.  Start from DefaultSettings: the zero
// value has no delimiters at all.
type Settings struct {
	AutomaticStringQuoting bool   `yaml:"automatic_string_quoting" mapstructure:"automatic_string_quoting"`
	AutomaticCharQuoting   bool   `yaml:"automatic_char_quoting" mapstructure:"automatic_char_quoting"`
	StringQuote            string `yaml:"string_quote" mapstructure:"string_quote"`
	CharQuote              string `yaml:"char_quote" mapstructure:"char_quote"`

	Array      Delimiters `yaml:"array" mapstructure:"array"`
	Enumerable Delimiters `yaml:"enumerable" mapstructure:"enumerable"`
	// MapEntry brackets the key and the value of one map entry.  The
	// value is the "other" element so OtherElementPrefix separates them.
	MapEntry Delimiters `yaml:"map_entry" mapstructure:"map_entry"`
	// Instance brackets the members of a reflected struct.  The type name
	// follows Prefix directly.
	Instance        Delimiters `yaml:"instance" mapstructure:"instance"`
	MemberSeparator string     `yaml:"member_separator" mapstructure:"member_separator"`

	// UseReflection enables the generic member dump of structs.
	UseReflection     bool `yaml:"use_reflection" mapstructure:"use_reflection"`
	PublicFields      bool `yaml:"public_fields" mapstructure:"public_fields"`
	PrivateFields     bool `yaml:"private_fields" mapstructure:"private_fields"`
	PublicProperties  bool `yaml:"public_properties" mapstructure:"public_properties"`
	PrivateProperties bool `yaml:"private_properties" mapstructure:"private_properties"`

	// ParentHandlerSearchDepth is how many ancestor shapes are tried when
	// there is no handler for the exact type of a value.  Pointer
	// indirection is free.  ParentHandlerSearchUpToRoot ignores the depth
	// and searches all the way to the empty interface.
	ParentHandlerSearchDepth    int  `yaml:"parent_handler_search_depth" mapstructure:"parent_handler_search_depth"`
	ParentHandlerSearchUpToRoot bool `yaml:"parent_handler_search_up_to_root" mapstructure:"parent_handler_search_up_to_root"`

	OutputComplexity Complexity `yaml:"output_complexity" mapstructure:"output_complexity"`
}

// DefaultSettings quote strings and characters, bracket arrays and
// sequences with braces, and dump the exported fields of structs.
//
//	[]int{1, 2}              {1,2}
//	map[string]int{"a": 1}   {"a":1}
//	point{X: 1, Y: 2}        [point X=1,Y=2]
func DefaultSettings() Settings {
	braces := Delimiters{
		Prefix:             "{",
		OtherElementPrefix: ",",
		Postfix:            "}",
	}
	return Settings{
		AutomaticStringQuoting: true,
		AutomaticCharQuoting:   true,
		StringQuote:            `"`,
		CharQuote:              `'`,
		Array:                  braces,
		Enumerable:             braces,
		MapEntry: Delimiters{
			OtherElementPrefix: ":",
		},
		Instance: Delimiters{
			Prefix:             "[",
			FirstElementPrefix: " ",
			OtherElementPrefix: ",",
			Postfix:            "]",
		},
		MemberSeparator:  "=",
		UseReflection:    true,
		PublicFields:     true,
		OutputComplexity: ComplexityFull,
	}
}

// MemberFlags selects the members that the reflection strategy
// asks the Introspector for.
func (s Settings) MemberFlags() MemberFlags {
	var flags MemberFlags
	if s.PublicFields {
		flags |= PublicFields
	}
	if s.PrivateFields {
		flags |= PrivateFields
	}
	if s.PublicProperties {
		flags |= PublicProperties
	}
	if s.PrivateProperties {
		flags |= PrivateProperties
	}
	return flags
}

// ParseSettings reads YAML on top of DefaultSettings.  Unknown keys
// are an error.
func ParseSettings(data []byte) (Settings, error) {
	s := DefaultSettings()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	err := dec.Decode(&s)
	if err != nil && !errors.Is(err, io.EOF) {
		return s, errors.Wrap(err, "decode formatter settings")
	}
	return s, nil
}

// LoadSettings is ParseSettings on the contents of a file.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultSettings(), errors.Wrapf(err, "read formatter settings %s", path)
	}
	s, err := ParseSettings(data)
	return s, errors.Wrap(err, path)
}

// ApplyOverrides sets individual fields of s.  Keys are the yaml names
// of the fields; nested fields use dots: "array.prefix".  Values are
// converted as needed so strings from a command line work:
// "parent_handler_search_depth": "2".
func ApplyOverrides(s Settings, overrides map[string]any) (Settings, error) {
	nested := make(map[string]any)
	for key, value := range overrides {
		parts := strings.Split(key, ".")
		m := nested
		for _, part := range parts[:len(parts)-1] {
			sub, ok := m[part].(map[string]any)
			if !ok {
				sub = make(map[string]any)
				m[part] = sub
			}
			m = sub
		}
		m[parts[len(parts)-1]] = value
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.TextUnmarshallerHookFunc(),
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           &s,
	})
	if err != nil {
		return s, errors.Wrap(err, "build settings decoder")
	}
	if err := dec.Decode(nested); err != nil {
		return s, errors.Wrap(err, "apply settings overrides")
	}
	return s, nil
}
