package garage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// SpecKey is one of the recognised vehicle specification keys.
type SpecKey int

// Recognised keys, in display order.
const (
	SpecEngine SpecKey = iota
	SpecPower
	SpecTorque
	SpecTransmission
	SpecFuelCapacity
	SpecMileage
	SpecKerbWeight

	numSpecKeys
)

var specKeyNames = [numSpecKeys]string{
	"Engine",
	"Power",
	"Torque",
	"Transmission",
	"Fuel Capacity",
	"Mileage",
	"Kerb Weight",
}

var specKeySlugs = [numSpecKeys]string{
	"engine",
	"power",
	"torque",
	"transmission",
	"fuel_capacity",
	"mileage",
	"kerb_weight",
}

// SpecKeys returns every recognised key in display order.
func SpecKeys() []SpecKey {
	keys := make([]SpecKey, numSpecKeys)
	for i := range keys {
		keys[i] = SpecKey(i)
	}
	return keys
}

// String returns the display name, e.g. "Fuel Capacity".
func (k SpecKey) String() string {
	if k < 0 || k >= numSpecKeys {
		return fmt.Sprintf("SpecKey(%d)", int(k))
	}
	return specKeyNames[k]
}

// Slug returns the field name used in forms and on the command line,
// e.g. "fuel_capacity".
func (k SpecKey) Slug() string {
	if k < 0 || k >= numSpecKeys {
		return ""
	}
	return specKeySlugs[k]
}

// ParseSpecKey accepts either the display name or the slug.
func ParseSpecKey(s string) (SpecKey, bool) {
	for i := SpecKey(0); i < numSpecKeys; i++ {
		if s == specKeyNames[i] || s == specKeySlugs[i] {
			return i, true
		}
	}
	return 0, false
}

// SpecEntry is one key/value pair.
type SpecEntry struct {
	Key   SpecKey
	Value string
}

// Specs is an ordered mapping over the recognised keys. The zero value has
// every key empty. Specs is a value type: copies never share storage.
type Specs struct {
	values [numSpecKeys]string
}

// NewSpecs builds Specs from display names or slugs. Unknown keys are an
// error.
func NewSpecs(m map[string]string) (Specs, error) {
	var s Specs
	var unknown []string
	for name, value := range m {
		k, ok := ParseSpecKey(name)
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		s.values[k] = value
	}
	if len(unknown) > 0 {
		return Specs{}, fmt.Errorf("unknown spec key(s): %s", strings.Join(unknown, ", "))
	}
	return s, nil
}

// Get returns the value for k, or "" when unset.
func (s Specs) Get(k SpecKey) string {
	if k < 0 || k >= numSpecKeys {
		return ""
	}
	return s.values[k]
}

// With returns a copy of s with k set to value.
func (s Specs) With(k SpecKey, value string) Specs {
	if k >= 0 && k < numSpecKeys {
		s.values[k] = value
	}
	return s
}

// Clone returns s. It exists for symmetry with Vehicle.Clone.
func (s Specs) Clone() Specs {
	return s
}

// IsZero reports whether every key is empty.
func (s Specs) IsZero() bool {
	return s == Specs{}
}

// Entries returns the non-empty entries in display order.
func (s Specs) Entries() []SpecEntry {
	var out []SpecEntry
	for k := SpecKey(0); k < numSpecKeys; k++ {
		if s.values[k] != "" {
			out = append(out, SpecEntry{Key: k, Value: s.values[k]})
		}
	}
	return out
}

// MarshalYAML writes the non-empty entries as an ordered mapping.
func (s Specs) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range s.Entries() {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Key.String()},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Value},
		)
	}
	return node, nil
}

// UnmarshalYAML reads a mapping, rejecting unknown keys.
func (s *Specs) UnmarshalYAML(node *yaml.Node) error {
	var m map[string]string
	if err := node.Decode(&m); err != nil {
		return fmt.Errorf("specs must be a mapping of strings: %w", err)
	}
	parsed, err := NewSpecs(m)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalJSON writes the non-empty entries as an object in display order.
func (s Specs) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range s.Entries() {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, _ := json.Marshal(e.Key.String())
		v, err := json.Marshal(e.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object, rejecting unknown keys.
func (s *Specs) UnmarshalJSON(data []byte) error {
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	parsed, err := NewSpecs(m)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
