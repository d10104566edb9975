package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/luminance/internal/palette"
)

const (
	white = lipgloss.Color("#FFFFFF")
	black = lipgloss.Color("#000000")
)

// semanticShades picks a light and dark shade of a palette slot.
type semanticShades struct {
	slot  palette.Slot
	ramp  string
	light int
	dark  int
	fixed lipgloss.TerminalColor
}

var semanticColors = map[string]semanticShades{
	"primary":                {slot: palette.SlotPrimary, light: 500, dark: 500},
	"primary-foreground":     {fixed: white},
	"secondary":              {slot: palette.SlotSecondary, light: 500, dark: 500},
	"secondary-foreground":   {fixed: white},
	"accent":                 {slot: palette.SlotAccent, light: 500, dark: 500},
	"accent-foreground":      {fixed: white},
	"muted":                  {slot: palette.SlotMuted, light: 100, dark: 800},
	"muted-foreground":       {slot: palette.SlotMuted, light: 600, dark: 400},
	"destructive":            {ramp: "luminance-coral", light: 500, dark: 600},
	"destructive-foreground": {fixed: white},
	"background":             {slot: palette.SlotMuted, light: 50, dark: 900},
	"foreground":             {slot: palette.SlotMuted, light: 900, dark: 50},
	"card":                   {slot: palette.SlotMuted, light: 50, dark: 900},
	"card-foreground":        {slot: palette.SlotMuted, light: 900, dark: 50},
	"popover":                {slot: palette.SlotMuted, light: 50, dark: 900},
	"popover-foreground":     {slot: palette.SlotMuted, light: 900, dark: 50},
	"border":                 {slot: palette.SlotMuted, light: 200, dark: 700},
	"input":                  {slot: palette.SlotMuted, light: 200, dark: 700},
	"ring":                   {slot: palette.SlotPrimary, light: 500, dark: 400},
	"white":                  {fixed: white},
	"black":                  {fixed: black},
}

// color resolves a colour reference from a utility such as "bg-primary/90",
// "text-luminance-teal-700" or "border-[#ff0000]".
func (r *Renderer) color(ref string) (lipgloss.TerminalColor, bool) {
	if i := strings.IndexByte(ref, '/'); i >= 0 && !strings.HasPrefix(ref, "[") {
		ref = ref[:i]
	}

	if strings.HasPrefix(ref, "[") && strings.HasSuffix(ref, "]") {
		value := strings.TrimSuffix(strings.TrimPrefix(ref, "["), "]")
		if strings.HasPrefix(value, "#") {
			return lipgloss.Color(value), true
		}
		return nil, false
	}

	switch ref {
	case "transparent", "inherit", "current":
		return lipgloss.NoColor{}, true
	}

	if sem, ok := semanticColors[ref]; ok {
		return r.semantic(sem)
	}

	if c, ok := r.ramps.Resolve(ref); ok {
		return c, true
	}
	return nil, false
}

func (r *Renderer) semantic(sem semanticShades) (lipgloss.TerminalColor, bool) {
	if sem.fixed != nil {
		return sem.fixed, true
	}

	name := sem.ramp
	if name == "" {
		name = r.palette.Slot(sem.slot)
	}
	ramp, ok := r.ramps.Ramp(name)
	if !ok {
		return nil, false
	}
	light, lok := ramp.Color(sem.light)
	dark, dok := ramp.Color(sem.dark)
	if !lok || !dok {
		return nil, false
	}
	return lipgloss.AdaptiveColor{Light: string(light), Dark: string(dark)}, true
}
