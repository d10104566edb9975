package palette

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// shadeScale is the Tailwind shade numbering, lightest first.
var shadeScale = [...]int{50, 100, 200, 300, 400, 500, 600, 700, 800, 900, 950}

const rampShadeCount = len(shadeScale)

// MainShade is the shade used when a token names a ramp without a shade.
const MainShade = 500

// Ramp is a named colour scale indexed by Tailwind shade numbers.
type Ramp struct {
	name   string
	colors [rampShadeCount]lipgloss.Color
}

// NewRamp builds a ramp from colours ordered lightest to darkest, starting at
// shade 50. Missing trailing shades stay empty.
func NewRamp(name string, colors ...lipgloss.Color) Ramp {
	r := Ramp{name: name}
	for i := 0; i < rampShadeCount && i < len(colors); i++ {
		r.colors[i] = colors[i]
	}
	return r
}

func (r Ramp) Name() string {
	return r.name
}

// Color returns the colour at shade, e.g. 500.
func (r Ramp) Color(shade int) (lipgloss.Color, bool) {
	idx := shadeIndex(shade)
	if idx < 0 || r.colors[idx] == "" {
		return "", false
	}
	return r.colors[idx], true
}

// Main returns the 500 shade.
func (r Ramp) Main() lipgloss.Color {
	c, _ := r.Color(MainShade)
	return c
}

// Shades lists the shades this ramp defines.
func (r Ramp) Shades() []int {
	out := make([]int, 0, rampShadeCount)
	for i, c := range r.colors {
		if c != "" {
			out = append(out, shadeScale[i])
		}
	}
	return out
}

func shadeIndex(shade int) int {
	for i, s := range shadeScale {
		if s == shade {
			return i
		}
	}
	return -1
}

// Registry resolves ramp identifiers to ramps.
type Registry struct {
	ramps map[string]Ramp
}

// NewRegistry returns a registry containing ramps.
func NewRegistry(ramps ...Ramp) *Registry {
	r := &Registry{ramps: make(map[string]Ramp, len(ramps))}
	for _, ramp := range ramps {
		r.ramps[ramp.name] = ramp
	}
	return r
}

// With returns a copy of the registry extended with ramps.
func (r *Registry) With(ramps ...Ramp) *Registry {
	out := NewRegistry()
	for name, ramp := range r.ramps {
		out.ramps[name] = ramp
	}
	for _, ramp := range ramps {
		out.ramps[ramp.name] = ramp
	}
	return out
}

// Ramp returns the ramp registered under name.
func (r *Registry) Ramp(name string) (Ramp, bool) {
	if r == nil {
		return Ramp{}, false
	}
	ramp, ok := r.ramps[name]
	return ramp, ok
}

// Names returns the registered ramp names sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.ramps))
	for name := range r.ramps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve maps a colour reference such as "luminance-teal-300" or
// "luminance-teal" (main shade) to a colour. An optional "/NN" opacity suffix
// is ignored since terminals have no alpha channel.
func (r *Registry) Resolve(ref string) (lipgloss.Color, bool) {
	if i := strings.IndexByte(ref, '/'); i >= 0 {
		ref = ref[:i]
	}
	if ramp, ok := r.Ramp(ref); ok {
		c := ramp.Main()
		return c, c != ""
	}

	i := strings.LastIndexByte(ref, '-')
	if i <= 0 {
		return "", false
	}
	shade, err := strconv.Atoi(ref[i+1:])
	if err != nil {
		return "", false
	}
	ramp, ok := r.Ramp(ref[:i])
	if !ok {
		return "", false
	}
	return ramp.Color(shade)
}

// Color resolves a slot of p at shade.
func (r *Registry) Color(p Palette, slot Slot, shade int) (lipgloss.Color, error) {
	name := p.Slot(slot)
	ramp, ok := r.Ramp(name)
	if !ok {
		return "", fmt.Errorf("palette slot %s: unknown ramp %q", slot, name)
	}
	c, ok := ramp.Color(shade)
	if !ok {
		return "", fmt.Errorf("ramp %s has no shade %d", name, shade)
	}
	return c, nil
}

var builtinRamps = NewRegistry(
	NewRamp("luminance-primary",
		"#E6F1FE", "#CCE3FD", "#99C7FB", "#66ABF9", "#338FF7",
		"#0073F5", "#005CC4", "#004593", "#002E62", "#001731"),
	NewRamp("luminance-teal",
		"#E6FBF9", "#CCF7F2", "#99EFE6", "#66E7D9", "#33DFCD",
		"#00D7C0", "#00AC9A", "#008173", "#00564D", "#002B26"),
	NewRamp("luminance-purple",
		"#F2E6FE", "#E5CCFD", "#CB99FB", "#B166F9", "#9733F7",
		"#7D00F5", "#6400C4", "#4B0093", "#320062", "#190031"),
	NewRamp("luminance-amber",
		"#FFF8E6", "#FFF1CC", "#FFE399", "#FFD566", "#FFC733",
		"#FFB900", "#CC9400", "#996F00", "#664A00", "#332500"),
	NewRamp("luminance-coral",
		"#FFEDE6", "#FFDACC", "#FFB599", "#FF9066", "#FF6B33",
		"#FF4600", "#CC3800", "#992A00", "#661C00", "#330E00"),
	NewRamp("luminance-mint",
		"#E6FFEE", "#CCFFDC", "#99FFB9", "#66FF96", "#33FF73",
		"#00FF50", "#00CC40", "#009930", "#006620", "#003310"),
	NewRamp("luminance-neutral",
		"#F5F7FA", "#EBEEF5", "#D8DEEA", "#C4CEDF", "#B1BDD5",
		"#9DAECA", "#7D8BA0", "#5D6876", "#3E454D", "#1E2226", "#0F1114"),
)

// Ramps returns the built-in luminance ramps.
func Ramps() *Registry {
	return builtinRamps
}
