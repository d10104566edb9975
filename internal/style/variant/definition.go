package variant

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	lumerrors "github.com/alexisbeaulieu97/luminance/pkg/errors"
)

// Definition is the declarative, serialisable form of a variant specification.
// Token fields hold whitespace-separated style tokens.
type Definition struct {
	Name     string               `yaml:"name" validate:"required,identifier"`
	Base     string               `yaml:"base"`
	Axes     []AxisDefinition     `yaml:"axes" validate:"dive"`
	Compound []CompoundDefinition `yaml:"compound" validate:"dive"`
	Defaults map[string]string    `yaml:"defaults"`
}

// AxisDefinition declares one mutually exclusive choice dimension.
type AxisDefinition struct {
	Name string `yaml:"name" validate:"required,identifier"`
	// Nullable axes accept None in a Selection and then contribute no tokens.
	Nullable bool               `yaml:"nullable"`
	Options  []OptionDefinition `yaml:"options" validate:"required,min=1,dive"`
}

// OptionDefinition names one option of an axis and the tokens it contributes.
type OptionDefinition struct {
	Name   string `yaml:"name" validate:"required,identifier"`
	Tokens string `yaml:"tokens"`
}

// CompoundDefinition appends Tokens when every axis/option pair in When matches.
type CompoundDefinition struct {
	When   map[string]string `yaml:"when" validate:"required,min=1"`
	Tokens string            `yaml:"tokens"`
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	identifierPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("identifier", func(fl validator.FieldLevel) bool {
			return identifierPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Validate performs schema and cross-field validation on the definition.
func (d *Definition) Validate() error {
	if d == nil {
		return lumerrors.NewValidationError("definition", "definition is nil", nil)
	}

	if err := validatorInstance().Struct(d); err != nil {
		return convertValidationError(err)
	}

	axes := make(map[string]map[string]struct{}, len(d.Axes))
	nullable := make(map[string]bool, len(d.Axes))
	for i, axis := range d.Axes {
		if _, exists := axes[axis.Name]; exists {
			return lumerrors.NewValidationError(fieldForAxis(i, "name"), fmt.Sprintf("duplicate axis %q", axis.Name), nil)
		}
		options := make(map[string]struct{}, len(axis.Options))
		for j, opt := range axis.Options {
			if _, exists := options[opt.Name]; exists {
				return lumerrors.NewValidationError(
					fmt.Sprintf("%s.options[%d].name", fieldForAxis(i, ""), j),
					fmt.Sprintf("duplicate option %q in axis %q", opt.Name, axis.Name), nil)
			}
			options[opt.Name] = struct{}{}
		}
		axes[axis.Name] = options
		nullable[axis.Name] = axis.Nullable
	}

	for axisName := range d.Defaults {
		if _, ok := axes[axisName]; !ok {
			return lumerrors.NewValidationError("defaults."+axisName, fmt.Sprintf("default set for unknown axis %q", axisName), nil)
		}
	}

	for i, axis := range d.Axes {
		def, ok := d.Defaults[axis.Name]
		if !ok {
			return lumerrors.NewValidationError(fieldForAxis(i, "name"), fmt.Sprintf("axis %q has no default option", axis.Name), nil)
		}
		if !optionAllowed(axes[axis.Name], nullable[axis.Name], def) {
			return lumerrors.NewValidationError("defaults."+axis.Name, fmt.Sprintf("default %q is not an option of axis %q", def, axis.Name), nil)
		}
	}

	for i, rule := range d.Compound {
		for axisName, option := range rule.When {
			options, ok := axes[axisName]
			if !ok {
				return lumerrors.NewValidationError(fieldForCompound(i, axisName), fmt.Sprintf("compound rule references unknown axis %q", axisName), nil)
			}
			if !optionAllowed(options, nullable[axisName], option) {
				return lumerrors.NewValidationError(fieldForCompound(i, axisName), fmt.Sprintf("compound rule references unknown option %q of axis %q", option, axisName), nil)
			}
		}
	}

	return nil
}

func optionAllowed(options map[string]struct{}, nullable bool, option string) bool {
	if option == None {
		return nullable
	}
	_, ok := options[option]
	return ok
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return lumerrors.NewValidationError(field, msg, err)
	}

	return lumerrors.NewValidationError("definition", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

func fieldForAxis(index int, field string) string {
	if field == "" {
		return fmt.Sprintf("axes[%d]", index)
	}
	return fmt.Sprintf("axes[%d].%s", index, field)
}

func fieldForCompound(index int, axis string) string {
	return fmt.Sprintf("compound[%d].when.%s", index, axis)
}
