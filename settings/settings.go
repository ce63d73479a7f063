// Package settings implements the catalog of session settings a client may
// send with a query and their wire encoding.  The catalog is built once at
// init and is read-only thereafter, so it is safe for concurrent use.
package settings

import (
	"fmt"
	"math"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/brimdata/native/wire"
)

// Kind is the primitive kind that determines a setting's wire encoding.
type Kind int

const (
	Int64 Kind = iota
	Int32
	Boolean
	String
	Float
	Seconds
	Milliseconds
	Character
)

func (k Kind) String() string {
	switch k {
	case Int64:
		return "Int64"
	case Int32:
		return "Int32"
	case Boolean:
		return "Boolean"
	case String:
		return "String"
	case Float:
		return "Float"
	case Seconds:
		return "Seconds"
	case Milliseconds:
		return "Milliseconds"
	case Character:
		return "Character"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

type Setting struct {
	Name        string
	Kind        Kind
	Description string
	// ClientOnly settings configure the connection and are never sent to
	// the server.
	ClientOnly bool
}

var index map[string]int

func init() {
	index = make(map[string]int, len(catalog))
	for k, s := range catalog {
		if _, ok := index[s.Name]; ok {
			panic(fmt.Sprintf("settings: duplicate catalog entry %q", s.Name))
		}
		index[s.Name] = k
	}
}

func Lookup(name string) (Setting, bool) {
	k, ok := index[name]
	if !ok {
		return Setting{}, false
	}
	return catalog[k], true
}

// All returns a copy of the catalog in declaration order.
func All() []Setting {
	return append([]Setting(nil), catalog...)
}

type UnknownSettingError struct {
	Name string
	// Suggestion is the catalog name closest to Name, if any is close.
	Suggestion string
}

func (u *UnknownSettingError) Error() string {
	if u.Suggestion != "" {
		return fmt.Sprintf("unknown setting: %q (did you mean %q?)", u.Name, u.Suggestion)
	}
	return fmt.Sprintf("unknown setting: %q", u.Name)
}

func unknownSetting(name string) *UnknownSettingError {
	return &UnknownSettingError{Name: name, Suggestion: Suggest(name)}
}

// Suggest returns the catalog name within edit distance 3 of name that is
// closest to it, or the empty string.
func Suggest(name string) string {
	best, dist := "", 4
	for _, s := range catalog {
		if d := levenshtein.ComputeDistance(name, s.Name); d < dist {
			best, dist = s.Name, d
		}
	}
	return best
}

type TypeMismatchError struct {
	Name  string
	Kind  Kind
	Value any
}

func (t *TypeMismatchError) Error() string {
	return fmt.Sprintf("setting %q of kind %s cannot hold Go value %v of type %T", t.Name, t.Kind, t.Value, t.Value)
}

// Encode writes the value of the named setting to s.  The value is checked
// against the setting's kind before anything is written.
func Encode(s *wire.Serializer, name string, value any) error {
	setting, ok := Lookup(name)
	if !ok {
		return unknownSetting(name)
	}
	return setting.Encode(s, value)
}

func (st Setting) Encode(s *wire.Serializer, value any) error {
	v, err := st.normalize(value)
	if err != nil {
		return err
	}
	return st.write(s, v)
}

// Validate reports whether value can be encoded for the setting.
func (st Setting) Validate(value any) error {
	_, err := st.normalize(value)
	return err
}

// normalize converts value to the Go type written for the setting's kind:
// int64 for the integer and duration kinds, bool, string, float32 and byte.
func (st Setting) normalize(value any) (any, error) {
	mismatch := &TypeMismatchError{Name: st.Name, Kind: st.Kind, Value: value}
	switch st.Kind {
	case Int64:
		if v, ok := toInt64(value); ok {
			return v, nil
		}
	case Int32:
		if v, ok := toInt64(value); ok && v >= math.MinInt32 && v <= math.MaxInt32 {
			return v, nil
		}
	case Boolean:
		if v, ok := value.(bool); ok {
			return v, nil
		}
	case String:
		if v, ok := value.(string); ok {
			return v, nil
		}
	case Float:
		switch v := value.(type) {
		case float32:
			return v, nil
		case float64:
			if math.Abs(v) <= math.MaxFloat32 || math.IsInf(v, 0) || math.IsNaN(v) {
				return float32(v), nil
			}
		}
		if v, ok := toInt64(value); ok {
			return float32(v), nil
		}
	case Seconds:
		if d, ok := value.(time.Duration); ok {
			return int64(d / time.Second), nil
		}
		if v, ok := toInt64(value); ok {
			return v, nil
		}
	case Milliseconds:
		if d, ok := value.(time.Duration); ok {
			return int64(d / time.Millisecond), nil
		}
		if v, ok := toInt64(value); ok {
			return v, nil
		}
	case Character:
		switch v := value.(type) {
		case byte:
			if v < 0x80 {
				return v, nil
			}
		case rune:
			if v >= 0 && v < 0x80 {
				return byte(v), nil
			}
		case string:
			if len(v) == 1 && v[0] < 0x80 {
				return v[0], nil
			}
		}
	}
	return nil, mismatch
}

func (st Setting) write(s *wire.Serializer, v any) error {
	switch st.Kind {
	case Int64, Int32, Seconds, Milliseconds:
		return s.WriteVarInt(v.(int64))
	case Boolean:
		return s.WriteBool(v.(bool))
	case String:
		return s.WriteString(v.(string))
	case Float:
		return s.WriteFloat32(v.(float32))
	case Character:
		return s.WriteUint8(v.(byte))
	}
	return fmt.Errorf("setting %q has unknown kind %s", st.Name, st.Kind)
}

func toInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return int64(v), uint64(v) <= math.MaxInt64
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return int64(v), v <= math.MaxInt64
	}
	return 0, false
}
