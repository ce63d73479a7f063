package settings

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/alecthomas/units"
	"github.com/brimdata/native/wire"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type Value struct {
	Name  string
	Value any
}

// Values is an ordered list of setting values.  Each name appears at most
// once.
type Values []Value

// Set validates value against the named setting and stores it, replacing
// any earlier value for the same name.
func (v *Values) Set(name string, value any) error {
	setting, ok := Lookup(name)
	if !ok {
		return unknownSetting(name)
	}
	if err := setting.Validate(value); err != nil {
		return err
	}
	for k := range *v {
		if (*v)[k].Name == name {
			(*v)[k].Value = value
			return nil
		}
	}
	*v = append(*v, Value{name, value})
	return nil
}

func (v Values) Get(name string) (any, bool) {
	for _, val := range v {
		if val.Name == name {
			return val.Value, true
		}
	}
	return nil, false
}

// EncodeAll writes the settings list of a query: a (name, value) pair for
// each value that is sent to the server followed by an empty name.  The
// whole list is validated before anything is written.
func EncodeAll(s *wire.Serializer, values Values, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	list := make([]Setting, 0, len(values))
	for _, val := range values {
		setting, ok := Lookup(val.Name)
		if !ok {
			return unknownSetting(val.Name)
		}
		if err := setting.Validate(val.Value); err != nil {
			return err
		}
		list = append(list, setting)
	}
	for k, setting := range list {
		if setting.ClientOnly {
			logger.Debug("client-only setting not sent", zap.String("setting", setting.Name))
			continue
		}
		if err := s.WriteString(setting.Name); err != nil {
			return err
		}
		if err := setting.Encode(s, values[k].Value); err != nil {
			return err
		}
	}
	return s.WriteString("")
}

// Load reads a YAML mapping of setting names to values.  Integer settings
// also take byte sizes such as "64MB", and duration settings also take Go
// duration strings such as "10s".  The order of the mapping is kept.
func Load(r io.Reader) (Values, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	m := doc.Content[0]
	if m.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: settings must be a mapping of names to values", m.Line)
	}
	var values Values
	for k := 0; k+1 < len(m.Content); k += 2 {
		key, node := m.Content[k], m.Content[k+1]
		setting, ok := Lookup(key.Value)
		if !ok {
			return nil, fmt.Errorf("line %d: %w", key.Line, unknownSetting(key.Value))
		}
		v, err := decodeNode(setting, node)
		if err != nil {
			return nil, fmt.Errorf("line %d: setting %q: %w", node.Line, setting.Name, err)
		}
		if err := values.Set(setting.Name, v); err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Line, err)
		}
	}
	return values, nil
}

func decodeNode(setting Setting, node *yaml.Node) (any, error) {
	switch setting.Kind {
	case Int64, Int32:
		if node.Tag == "!!str" {
			v, err := units.ParseBase2Bytes(node.Value)
			return int64(v), err
		}
		var v int64
		err := node.Decode(&v)
		return v, err
	case Boolean:
		var v bool
		err := node.Decode(&v)
		return v, err
	case String:
		var v string
		err := node.Decode(&v)
		return v, err
	case Float:
		var v float64
		err := node.Decode(&v)
		return v, err
	case Seconds, Milliseconds:
		if node.Tag == "!!int" {
			var v int64
			err := node.Decode(&v)
			return v, err
		}
		var s string
		if err := node.Decode(&s); err != nil {
			return nil, err
		}
		return time.ParseDuration(s)
	case Character:
		var v string
		err := node.Decode(&v)
		return v, err
	}
	return nil, fmt.Errorf("unknown kind %s", setting.Kind)
}
