package selector

import (
	"fmt"
	"slices"
	"sync"

	"github.com/NethermindEth/idioms/utils"
	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var ErrInvalidSpec = errors.New("invalid constraint spec")

// Spec is the configuration form of a NamedConstraint:
//
//	cake:
//	  op: "<"
//	  value: 60
//
// Both fields must be given. A zero threshold has to be written out, since an
// omitted value cannot be told apart from a zero one after decoding.
type Spec[V any] struct {
	Op    string `yaml:"op" mapstructure:"op" validate:"required,operator"`
	Value V      `yaml:"value" mapstructure:"value"`
}

func (s Spec[V]) Named() NamedConstraint[V] {
	return NamedConstraint[V]{Op: Operator(s.Op), Threshold: s.Value}
}

var (
	once sync.Once
	v    *validator.Validate
)

func validateOperator(fl validator.FieldLevel) bool {
	op, ok := fl.Field().Interface().(string)
	return ok && slices.Contains(Operators, Operator(op))
}

// Validator returns a singleton that validates constraint specs.
func Validator() *validator.Validate {
	once.Do(func() {
		v = validator.New()

		if err := v.RegisterValidation("operator", validateOperator); err != nil {
			panic("failed to register validation: " + err.Error())
		}
	})
	return v
}

const valueField = "value"

// invalidSpec wraps both ErrInvalidSpec and the decoder or validator error, so
// callers can match either with errors.Is or errors.As.
func invalidSpec(key string, err error) error {
	return fmt.Errorf("%w: key %q: %w", ErrInvalidSpec, key, err)
}

func validateSpec[V any](key string, spec *Spec[V]) error {
	if err := Validator().Struct(spec); err != nil {
		return invalidSpec(key, err)
	}
	return nil
}

func hasField(node *yaml.Node, name string) bool {
	if node.Kind != yaml.MappingNode {
		return false
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == name {
			return true
		}
	}
	return false
}

// ParseSpecs decodes a YAML mapping of key to Spec. Keys keep their document order.
func ParseSpecs[V any](doc []byte) (*utils.OrderedMap[string, NamedConstraint[V]], error) {
	var root yaml.Node
	if err := yaml.Unmarshal(doc, &root); err != nil {
		return nil, fmt.Errorf("%w: parse: %w", ErrInvalidSpec, err)
	}

	specs := utils.NewOrderedMap[string, NamedConstraint[V]]()
	// an empty document has no content
	if len(root.Content) == 0 {
		return specs, nil
	}

	node := root.Content[0]
	if node.Kind != yaml.MappingNode {
		return nil, errors.Wrapf(ErrInvalidSpec, "line %d: expected a mapping", node.Line)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]
		key := keyNode.Value
		if _, dup := specs.Get(key); dup {
			return nil, errors.Wrapf(ErrInvalidSpec, "line %d: duplicate key %q", keyNode.Line, key)
		}

		var spec Spec[V]
		if err := valueNode.Decode(&spec); err != nil {
			return nil, invalidSpec(key, err)
		}
		if !hasField(valueNode, valueField) {
			return nil, errors.Wrapf(ErrInvalidSpec, "key %q: missing %s", key, valueField)
		}
		if err := validateSpec(key, &spec); err != nil {
			return nil, err
		}
		specs.Put(key, spec.Named())
	}

	return specs, nil
}

// DecodeSpecs decodes specs from a generic map, such as one produced by a config
// loader. Keys are returned in ascending order.
func DecodeSpecs[V any](raw map[string]any) (*utils.OrderedMap[string, NamedConstraint[V]], error) {
	specs := utils.NewOrderedMap[string, NamedConstraint[V]]()

	for key, value := range utils.OrderMap(raw) {
		var spec Spec[V]
		var md mapstructure.Metadata
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			ErrorUnused: true,
			Metadata:    &md,
			Result:      &spec,
		})
		if err != nil {
			return nil, err
		}

		if err = decoder.Decode(value); err != nil {
			return nil, invalidSpec(key, err)
		}
		if slices.Contains(md.Unset, valueField) {
			return nil, errors.Wrapf(ErrInvalidSpec, "key %q: missing %s", key, valueField)
		}
		if err = validateSpec(key, &spec); err != nil {
			return nil, err
		}
		specs.Put(key, spec.Named())
	}

	return specs, nil
}
