package loader

import (
	"errors"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tilewfc/pattern"
)

var (
	// ErrInvalidDocument indicates a document that fails structural checks.
	ErrInvalidDocument = errors.New("loader: invalid pattern document")
	// ErrBadRuleValue indicates a rule entry that is neither an integer nor a string.
	ErrBadRuleValue = errors.New("loader: rule entry must be an integer id or a string")
	// ErrInconsistentRules is returned by a strict Build when symmetry fails.
	ErrInconsistentRules = errors.New("loader: inconsistent adjacency rules")
)

// Document is the decoded pattern definition file.
type Document struct {
	ImagesFolder string      `yaml:"images_folder"`
	Patterns     []GroupSpec `yaml:"patterns" validate:"required,min=1,dive"`
}

// GroupSpec declares one pattern group.
type GroupSpec struct {
	ID       int           `yaml:"id" validate:"gte=0"`
	Name     string        `yaml:"name" validate:"required"`
	Weight   float64       `yaml:"weight" validate:"gt=0"`
	Tags     []string      `yaml:"tags" validate:"dive,required"`
	Variants []VariantSpec `yaml:"variants" validate:"required,min=1,dive"`
	Rules    RulesSpec     `yaml:"rules"`

	// Legacy spelling of Variants, folded into Variants by Parse.
	Legacy []VariantSpec `yaml:"patterns" validate:"-"`
}

// VariantSpec declares one visual variant of a group.
type VariantSpec struct {
	ImagePath string  `yaml:"image_path" validate:"required"`
	Weight    float64 `yaml:"weight" validate:"gt=0"`
}

// RulesSpec lists the allowed neighbors per side. A missing side allows
// nothing.
type RulesSpec struct {
	Up    []RuleValue `yaml:"up"`
	Down  []RuleValue `yaml:"down"`
	Left  []RuleValue `yaml:"left"`
	Right []RuleValue `yaml:"right"`
}

// Spec converts the declared lists into a pattern.RuleSpec.
func (r RulesSpec) Spec() pattern.RuleSpec {
	spec := pattern.RuleSpec{}
	for d, vals := range map[pattern.Direction][]RuleValue{
		pattern.Up:    r.Up,
		pattern.Down:  r.Down,
		pattern.Left:  r.Left,
		pattern.Right: r.Right,
	} {
		refs := make([]pattern.RuleRef, len(vals))
		for i, v := range vals {
			refs[i] = v.Ref
		}
		spec[d] = refs
	}
	return spec
}

// RuleValue is one entry of a rule list.
type RuleValue struct {
	Ref pattern.RuleRef
}

// UnmarshalYAML decodes an integer as a uid reference and a string as the
// wildcard or a tag.
func (v *RuleValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: %w", node.Line, ErrBadRuleValue)
	}
	switch node.ShortTag() {
	case "!!int":
		uid, err := strconv.Atoi(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w: %v", node.Line, ErrBadRuleValue, err)
		}
		v.Ref = pattern.UIDRef(uid)
	case "!!str":
		v.Ref = pattern.ParseTextRef(node.Value)
	default:
		return fmt.Errorf("line %d: %q: %w", node.Line, node.Value, ErrBadRuleValue)
	}
	return nil
}
