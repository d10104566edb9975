package render

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/luminance/internal/style/tokens"
)

type borderKind int

const (
	borderNormal borderKind = iota
	borderThick
	borderDashed
)

var dashedBorder = lipgloss.Border{
	Top:         "╌",
	Bottom:      "╌",
	Left:        "╎",
	Right:       "╎",
	TopLeft:     "┌",
	TopRight:    "┐",
	BottomLeft:  "└",
	BottomRight: "┘",
}

// side order follows CSS: top, right, bottom, left.
const (
	top = iota
	right
	bottom
	left
)

type builder struct {
	r     *Renderer
	style lipgloss.Style

	sides       [4]bool
	kind        borderKind
	rounded     bool
	borderColor lipgloss.TerminalColor
}

func newBuilder(r *Renderer) *builder {
	return &builder{r: r, style: r.lr.NewStyle()}
}

func (b *builder) apply(u tokens.Utility) {
	base := u.Base
	switch base {
	case "font-bold", "font-semibold", "font-extrabold", "font-black":
		b.style = b.style.Bold(true)
		return
	case "font-normal", "font-light", "font-thin", "font-medium":
		b.style = b.style.Bold(false)
		return
	case "italic":
		b.style = b.style.Italic(true)
		return
	case "not-italic":
		b.style = b.style.Italic(false)
		return
	case "underline":
		b.style = b.style.Underline(true)
		return
	case "no-underline":
		b.style = b.style.Underline(false)
		return
	case "line-through":
		b.style = b.style.Strikethrough(true)
		return
	case "uppercase":
		b.style = b.style.Transform(strings.ToUpper)
		return
	case "lowercase":
		b.style = b.style.Transform(strings.ToLower)
		return
	case "normal-case":
		b.style = b.style.UnsetTransform()
		return
	case "text-left":
		b.style = b.style.Align(lipgloss.Left)
		return
	case "text-center":
		b.style = b.style.Align(lipgloss.Center)
		return
	case "text-right":
		b.style = b.style.Align(lipgloss.Right)
		return
	case "border":
		b.sides = [4]bool{true, true, true, true}
		return
	case "border-0":
		b.sides = [4]bool{}
		return
	case "border-2", "border-4", "border-8":
		b.sides = [4]bool{true, true, true, true}
		b.kind = borderThick
		return
	case "border-dashed", "border-dotted":
		b.kind = borderDashed
		return
	case "border-solid":
		b.kind = borderNormal
		return
	case "border-t":
		b.sides[top] = true
		return
	case "border-r":
		b.sides[right] = true
		return
	case "border-b":
		b.sides[bottom] = true
		return
	case "border-l":
		b.sides[left] = true
		return
	case "border-x":
		b.sides[left], b.sides[right] = true, true
		return
	case "border-y":
		b.sides[top], b.sides[bottom] = true, true
		return
	case "rounded-none":
		b.rounded = false
		return
	case "rounded":
		b.rounded = true
		return
	}

	switch {
	case strings.HasPrefix(base, "rounded-"):
		b.rounded = true
	case strings.HasPrefix(base, "opacity-"):
		if n, err := strconv.Atoi(strings.TrimPrefix(base, "opacity-")); err == nil {
			b.style = b.style.Faint(n <= 60)
		}
	case strings.HasPrefix(base, "bg-"):
		if c, ok := b.r.color(strings.TrimPrefix(base, "bg-")); ok {
			b.style = b.style.Background(c)
		}
	case strings.HasPrefix(base, "text-"):
		if c, ok := b.r.color(strings.TrimPrefix(base, "text-")); ok {
			b.style = b.style.Foreground(c)
		}
	case strings.HasPrefix(base, "border-"):
		if c, ok := b.r.color(strings.TrimPrefix(base, "border-")); ok {
			b.borderColor = c
		}
	default:
		if !u.Negative {
			b.spacing(base)
		}
	}
}

// spacing handles p-*, px-*, m-*, mt-* and friends. Tailwind units become
// half a cell horizontally and a quarter of a row vertically.
func (b *builder) spacing(base string) {
	i := strings.IndexByte(base, '-')
	if i <= 0 {
		return
	}
	prefix, value := base[:i], base[i+1:]
	n, err := strconv.ParseFloat(value, 64)
	if err != nil || n < 0 {
		return
	}
	h := int(math.Round(n / 2))
	v := int(n / 4)

	switch prefix {
	case "p":
		b.style = b.style.Padding(v, h)
	case "px":
		b.style = b.style.PaddingLeft(h).PaddingRight(h)
	case "py":
		b.style = b.style.PaddingTop(v).PaddingBottom(v)
	case "pt":
		b.style = b.style.PaddingTop(v)
	case "pr":
		b.style = b.style.PaddingRight(h)
	case "pb":
		b.style = b.style.PaddingBottom(v)
	case "pl":
		b.style = b.style.PaddingLeft(h)
	case "m":
		b.style = b.style.Margin(v, h)
	case "mx":
		b.style = b.style.MarginLeft(h).MarginRight(h)
	case "my":
		b.style = b.style.MarginTop(v).MarginBottom(v)
	case "mt":
		b.style = b.style.MarginTop(v)
	case "mr":
		b.style = b.style.MarginRight(h)
	case "mb":
		b.style = b.style.MarginBottom(v)
	case "ml":
		b.style = b.style.MarginLeft(h)
	}
}

func (b *builder) build() lipgloss.Style {
	if b.sides == [4]bool{} {
		return b.style
	}

	var border lipgloss.Border
	switch {
	case b.kind == borderThick:
		border = lipgloss.ThickBorder()
	case b.kind == borderDashed:
		border = dashedBorder
	case b.rounded:
		border = lipgloss.RoundedBorder()
	default:
		border = lipgloss.NormalBorder()
	}

	style := b.style.Border(border, b.sides[top], b.sides[right], b.sides[bottom], b.sides[left])
	if b.borderColor != nil {
		style = style.BorderForeground(b.borderColor)
	}
	return style
}
