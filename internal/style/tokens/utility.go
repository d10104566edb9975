package tokens

import (
	"sort"
	"strings"
)

// UtilityClassifier returns a Classifier for atomic utility-class vocabularies:
// tokens shaped like "[modifier:]*[!][-]group-value". Modifiers such as "hover:" or
// "dark:" form the scope; their order does not matter.
func UtilityClassifier() Classifier {
	return ClassifierFunc(classifyUtility)
}

var (
	exactGroups = map[string]string{
		"block": "display", "inline-block": "display", "inline": "display", "flex": "display",
		"inline-flex": "display", "grid": "display", "inline-grid": "display", "contents": "display",
		"table": "display", "hidden": "display", "flow-root": "display", "list-item": "display",

		"static": "position", "fixed": "position", "absolute": "position", "relative": "position", "sticky": "position",

		"visible": "visibility", "invisible": "visibility", "collapse": "visibility",

		"italic": "font-style", "not-italic": "font-style",

		"underline": "text-decoration", "overline": "text-decoration", "line-through": "text-decoration", "no-underline": "text-decoration",

		"uppercase": "text-transform", "lowercase": "text-transform", "capitalize": "text-transform", "normal-case": "text-transform",

		"truncate": "text-overflow",

		"sr-only": "sr", "not-sr-only": "sr",

		"border": "border-w", "rounded": "rounded", "shadow": "shadow", "ring": "ring-w", "ring-inset": "ring-inset",
		"transition": "transition", "outline": "outline-style", "grow": "flex-grow", "shrink": "flex-shrink",

		"flex-row": "flex-direction", "flex-row-reverse": "flex-direction", "flex-col": "flex-direction", "flex-col-reverse": "flex-direction",
		"flex-wrap": "flex-wrap", "flex-wrap-reverse": "flex-wrap", "flex-nowrap": "flex-wrap",
	}

	fontSizes = setOf("xs", "sm", "base", "lg", "xl", "2xl", "3xl", "4xl", "5xl", "6xl", "7xl", "8xl", "9xl")

	textAligns = setOf("left", "center", "right", "justify", "start", "end")

	textOverflow = setOf("ellipsis", "clip")

	textWraps = setOf("wrap", "nowrap", "balance", "pretty")

	fontWeights = setOf("thin", "extralight", "light", "normal", "medium", "semibold", "bold", "extrabold", "black")

	fontFamilies = setOf("sans", "serif", "mono")

	borderStyles = setOf("solid", "dashed", "dotted", "double", "hidden", "none")

	shadowSizes = setOf("sm", "md", "lg", "xl", "2xl", "inner", "none")

	roundedSides = []string{"ss", "se", "ee", "es", "tl", "tr", "br", "bl", "t", "r", "b", "l", "s", "e"}

	borderSides = []string{"x", "y", "t", "r", "b", "l", "s", "e"}

	// prefixGroups maps a utility prefix to its group. Longer prefixes are matched first.
	prefixGroups = []struct {
		prefix string
		group  string
	}{
		{"pointer-events-", "pointer-events"},
		{"underline-offset-", "underline-offset"},
		{"whitespace-", "whitespace"},
		{"items-", "align-items"},
		{"justify-items-", "justify-items"},
		{"justify-self-", "justify-self"},
		{"justify-", "justify-content"},
		{"content-", "align-content"},
		{"self-", "align-self"},
		{"place-items-", "place-items"},
		{"place-content-", "place-content"},
		{"place-self-", "place-self"},
		{"overflow-x-", "overflow-x"},
		{"overflow-y-", "overflow-y"},
		{"overflow-", "overflow"},
		{"opacity-", "opacity"},
		{"cursor-", "cursor"},
		{"select-", "user-select"},
		{"animate-", "animation"},
		{"duration-", "duration"},
		{"ease-", "ease"},
		{"delay-", "delay"},
		{"transition-", "transition"},
		{"leading-", "leading"},
		{"tracking-", "tracking"},
		{"z-", "z"},
		{"min-w-", "min-w"},
		{"max-w-", "max-w"},
		{"min-h-", "min-h"},
		{"max-h-", "max-h"},
		{"size-", "size"},
		{"w-", "w"},
		{"h-", "h"},
		{"space-x-", "space-x"},
		{"space-y-", "space-y"},
		{"gap-x-", "gap-x"},
		{"gap-y-", "gap-y"},
		{"gap-", "gap"},
		{"basis-", "flex-basis"},
		{"flex-", "flex"},
		{"grow-", "flex-grow"},
		{"shrink-", "flex-shrink"},
		{"order-", "order"},
		{"grid-cols-", "grid-cols"},
		{"grid-rows-", "grid-rows"},
		{"col-span-", "col-span"},
		{"row-span-", "row-span"},
		{"inset-x-", "inset-x"},
		{"inset-y-", "inset-y"},
		{"inset-", "inset"},
		{"top-", "top"},
		{"right-", "right"},
		{"bottom-", "bottom"},
		{"left-", "left"},
		{"scale-x-", "scale-x"},
		{"scale-y-", "scale-y"},
		{"scale-", "scale"},
		{"rotate-", "rotate"},
		{"translate-x-", "translate-x"},
		{"translate-y-", "translate-y"},
		{"blur-", "blur"},
		{"fill-", "fill"},
		{"stroke-", "stroke"},
		{"outline-offset-", "outline-offset"},
	}

	spacingCovers = map[string][]string{
		"p":  {"px", "py", "pt", "pr", "pb", "pl", "ps", "pe"},
		"px": {"pr", "pl", "ps", "pe"},
		"py": {"pt", "pb"},
		"m":  {"mx", "my", "mt", "mr", "mb", "ml", "ms", "me"},
		"mx": {"mr", "ml", "ms", "me"},
		"my": {"mt", "mb"},
	}

	groupCovers = map[string][]string{
		"size":       {"w", "h"},
		"gap":        {"gap-x", "gap-y"},
		"inset":      {"inset-x", "inset-y", "top", "right", "bottom", "left"},
		"inset-x":    {"right", "left"},
		"inset-y":    {"top", "bottom"},
		"overflow":   {"overflow-x", "overflow-y"},
		"scale":      {"scale-x", "scale-y"},
		"border-w":   {"border-w-x", "border-w-y", "border-w-t", "border-w-r", "border-w-b", "border-w-l", "border-w-s", "border-w-e"},
		"border-w-x": {"border-w-r", "border-w-l"},
		"border-w-y": {"border-w-t", "border-w-b"},
		"rounded": {"rounded-s", "rounded-e", "rounded-t", "rounded-r", "rounded-b", "rounded-l",
			"rounded-ss", "rounded-se", "rounded-ee", "rounded-es", "rounded-tl", "rounded-tr", "rounded-br", "rounded-bl"},
		"rounded-t": {"rounded-tl", "rounded-tr"},
		"rounded-r": {"rounded-tr", "rounded-br"},
		"rounded-b": {"rounded-br", "rounded-bl"},
		"rounded-l": {"rounded-tl", "rounded-bl"},
		"rounded-s": {"rounded-ss", "rounded-es"},
		"rounded-e": {"rounded-se", "rounded-ee"},
	}
)

func setOf(values ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(values))
	for _, v := range values {
		out[v] = struct{}{}
	}
	return out
}

func classifyUtility(token string) (Class, bool) {
	u := Parse(token)
	if u.Base == "" {
		return Class{}, false
	}

	group, ok := utilityGroup(u.Base)
	if !ok {
		return Class{}, false
	}

	scope := scopeFor(u.Modifiers, u.Important)
	return Class{Scope: scope, Group: group, Covers: coversFor(group)}, true
}

// Utility is a token split into its parts.
type Utility struct {
	Modifiers []string
	Base      string
	Important bool
	Negative  bool
}

// HasModifier reports whether m is one of u's modifiers.
func (u Utility) HasModifier(m string) bool {
	for _, mod := range u.Modifiers {
		if mod == m {
			return true
		}
	}
	return false
}

// Parse splits "dark:hover:!-mt-2" into its modifiers, the important marker,
// the negative sign and the base utility "mt-2".
func Parse(token string) Utility {
	modifiers, base := splitModifiers(token)
	u := Utility{Modifiers: modifiers}

	if strings.HasPrefix(base, "!") {
		u.Important = true
		base = base[1:]
	}
	if strings.HasSuffix(base, "!") {
		u.Important = true
		base = strings.TrimSuffix(base, "!")
	}
	if strings.HasPrefix(base, "-") {
		u.Negative = true
		base = base[1:]
	}
	u.Base = base
	return u
}

// splitModifiers separates "dark:hover:bg-x" into ["dark","hover"] and "bg-x",
// ignoring colons inside arbitrary-value brackets.
func splitModifiers(token string) ([]string, string) {
	var modifiers []string
	depth := 0
	start := 0
	for i := 0; i < len(token); i++ {
		switch token[i] {
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case ':':
			if depth == 0 {
				modifiers = append(modifiers, token[start:i])
				start = i + 1
			}
		}
	}
	return modifiers, token[start:]
}

func scopeFor(modifiers []string, important bool) string {
	if len(modifiers) == 0 && !important {
		return ""
	}
	sorted := append([]string(nil), modifiers...)
	sort.Strings(sorted)
	scope := strings.Join(sorted, ":")
	if len(sorted) > 0 {
		scope += ":"
	}
	if important {
		scope += "!"
	}
	return scope
}

func coversFor(group string) []string {
	if covers, ok := spacingCovers[group]; ok {
		return covers
	}
	return groupCovers[group]
}

func utilityGroup(base string) (string, bool) {
	if group, ok := exactGroups[base]; ok {
		return group, true
	}

	// Arbitrary property: [mask-type:luminance]
	if strings.HasPrefix(base, "[") && strings.HasSuffix(base, "]") {
		inner := base[1 : len(base)-1]
		if idx := strings.IndexByte(inner, ':'); idx > 0 {
			return "arbitrary-" + inner[:idx], true
		}
		return "", false
	}

	if group, ok := spacingGroup(base); ok {
		return group, true
	}

	switch {
	case strings.HasPrefix(base, "text-"):
		return textGroup(strings.TrimPrefix(base, "text-")), true
	case strings.HasPrefix(base, "font-"):
		value := strings.TrimPrefix(base, "font-")
		if _, ok := fontWeights[value]; ok {
			return "font-weight", true
		}
		if _, ok := fontFamilies[value]; ok {
			return "font-family", true
		}
		return "", false
	case strings.HasPrefix(base, "bg-"):
		return bgGroup(strings.TrimPrefix(base, "bg-")), true
	case strings.HasPrefix(base, "border-"):
		return borderGroup(strings.TrimPrefix(base, "border-")), true
	case strings.HasPrefix(base, "rounded-"):
		return roundedGroup(strings.TrimPrefix(base, "rounded-")), true
	case strings.HasPrefix(base, "ring-offset-"):
		if isMeasure(strings.TrimPrefix(base, "ring-offset-")) {
			return "ring-offset-w", true
		}
		return "ring-offset-color", true
	case strings.HasPrefix(base, "ring-"):
		if isMeasure(strings.TrimPrefix(base, "ring-")) {
			return "ring-w", true
		}
		return "ring-color", true
	case strings.HasPrefix(base, "shadow-"):
		if _, ok := shadowSizes[strings.TrimPrefix(base, "shadow-")]; ok {
			return "shadow", true
		}
		return "shadow-color", true
	case strings.HasPrefix(base, "outline-"):
		value := strings.TrimPrefix(base, "outline-")
		if value == "none" || value == "dashed" || value == "dotted" || value == "double" {
			return "outline-style", true
		}
		if isMeasure(value) {
			return "outline-w", true
		}
		return "outline-color", true
	}

	for _, entry := range prefixGroups {
		if strings.HasPrefix(base, entry.prefix) {
			return entry.group, true
		}
	}
	return "", false
}

func spacingGroup(base string) (string, bool) {
	idx := strings.IndexByte(base, '-')
	if idx <= 0 {
		return "", false
	}
	head := base[:idx]
	if _, ok := spacingCovers[head]; ok {
		return head, true
	}
	switch head {
	case "pt", "pr", "pb", "pl", "ps", "pe", "mt", "mr", "mb", "ml", "ms", "me":
		return head, true
	}
	return "", false
}

func textGroup(value string) string {
	if strings.HasPrefix(value, "opacity-") {
		return "text-opacity"
	}
	if _, ok := fontSizes[value]; ok {
		return "font-size"
	}
	if _, ok := textAligns[value]; ok {
		return "text-align"
	}
	if _, ok := textOverflow[value]; ok {
		return "text-overflow"
	}
	if _, ok := textWraps[value]; ok {
		return "text-wrap"
	}
	if isArbitrary(value) && isMeasure(value) {
		return "font-size"
	}
	return "text-color"
}

func bgGroup(value string) string {
	switch value {
	case "fixed", "local", "scroll":
		return "bg-attachment"
	case "auto", "cover", "contain":
		return "bg-size"
	case "none":
		return "bg-image"
	}
	if strings.HasPrefix(value, "gradient-") {
		return "bg-image"
	}
	if strings.HasPrefix(value, "opacity-") {
		return "bg-opacity"
	}
	return "bg-color"
}

func borderGroup(value string) string {
	if strings.HasPrefix(value, "opacity-") {
		return "border-opacity"
	}
	if isMeasure(value) {
		return "border-w"
	}
	if _, ok := borderStyles[value]; ok {
		return "border-style"
	}
	if value == "collapse" || value == "separate" {
		return "border-collapse"
	}
	for _, side := range borderSides {
		if value == side {
			return "border-w-" + side
		}
		if strings.HasPrefix(value, side+"-") && isMeasure(strings.TrimPrefix(value, side+"-")) {
			return "border-w-" + side
		}
	}
	return "border-color"
}

func roundedGroup(value string) string {
	for _, side := range roundedSides {
		if value == side || strings.HasPrefix(value, side+"-") {
			return "rounded-" + side
		}
	}
	return "rounded"
}

// isMeasure reports whether value looks like a width/size rather than a color name.
func isMeasure(value string) bool {
	if value == "" {
		return false
	}
	if isArbitrary(value) {
		inner := value[1 : len(value)-1]
		if strings.HasPrefix(inner, "length:") {
			return true
		}
		if inner == "" {
			return false
		}
		c := inner[0]
		return c >= '0' && c <= '9' || c == '.'
	}
	if value == "px" {
		return true
	}
	for i := 0; i < len(value); i++ {
		c := value[i]
		if (c < '0' || c > '9') && c != '.' {
			return false
		}
	}
	return true
}

func isArbitrary(value string) bool {
	return len(value) >= 2 && value[0] == '[' && value[len(value)-1] == ']'
}
