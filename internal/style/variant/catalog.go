package variant

import (
	"fmt"
	"os"
	"regexp"
	"sort"

	"gopkg.in/yaml.v3"

	lumerrors "github.com/alexisbeaulieu97/luminance/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Catalog is a named collection of specs, typically one per component type.
type Catalog struct {
	specs map[string]*Spec
	order []string
}

type catalogFile struct {
	Components []Definition `yaml:"components"`
}

// NewCatalog builds a catalog from already compiled specs. Later specs with the
// same name replace earlier ones.
func NewCatalog(specs ...*Spec) *Catalog {
	c := &Catalog{specs: make(map[string]*Spec, len(specs))}
	for _, spec := range specs {
		if spec == nil {
			continue
		}
		if _, exists := c.specs[spec.name]; !exists {
			c.order = append(c.order, spec.name)
		}
		c.specs[spec.name] = spec
	}
	return c
}

// LoadCatalog reads a YAML catalog file from disk.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, lumerrors.NewParseError(path, 0, err)
	}
	return ParseCatalog(data, path)
}

// ParseCatalog decodes a YAML catalog. source names the input in error messages.
//
//	components:
//	  - name: badge
//	    base: inline-flex rounded-full
//	    axes:
//	      - name: size
//	        options:
//	          - {name: sm, tokens: px-2 text-xs}
//	          - {name: lg, tokens: px-3 text-sm}
//	    defaults: {size: sm}
func ParseCatalog(data []byte, source string) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, lumerrors.NewParseError(source, extractLine(err), err)
	}

	specs := make([]*Spec, 0, len(file.Components))
	seen := make(map[string]struct{}, len(file.Components))
	for i, def := range file.Components {
		if _, dup := seen[def.Name]; dup {
			return nil, lumerrors.NewValidationError(fmt.Sprintf("components[%d].name", i), fmt.Sprintf("duplicate component %q", def.Name), nil)
		}
		seen[def.Name] = struct{}{}

		spec, err := New(def)
		if err != nil {
			return nil, fmt.Errorf("components[%d]: %w", i, err)
		}
		specs = append(specs, spec)
	}

	return NewCatalog(specs...), nil
}

// Get returns the spec registered under name.
func (c *Catalog) Get(name string) (*Spec, bool) {
	spec, ok := c.specs[name]
	return spec, ok
}

// Names returns the spec names in registration order.
func (c *Catalog) Names() []string {
	return append([]string(nil), c.order...)
}

// SortedNames returns the spec names alphabetically.
func (c *Catalog) SortedNames() []string {
	names := c.Names()
	sort.Strings(names)
	return names
}

// Merge returns a new catalog containing c's specs overlaid by other's.
func (c *Catalog) Merge(other *Catalog) *Catalog {
	specs := make([]*Spec, 0, len(c.order))
	for _, name := range c.order {
		specs = append(specs, c.specs[name])
	}
	if other != nil {
		for _, name := range other.order {
			specs = append(specs, other.specs[name])
		}
	}
	return NewCatalog(specs...)
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
