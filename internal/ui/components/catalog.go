package components

import (
	"github.com/alexisbeaulieu97/luminance/internal/style/variant"
)

// Component names registered in the built-in catalog.
const (
	ButtonName = "button"
	BadgeName  = "badge"
	CardName   = "card"
)

// ButtonSpec is the variant table shared by every Button.
var ButtonSpec = variant.MustNew(variant.Definition{
	Name: ButtonName,
	Base: "inline-flex items-center justify-center whitespace-nowrap rounded-md text-sm font-medium " +
		"ring-offset-background transition-colors focus-visible:outline-none focus-visible:ring-2 " +
		"focus-visible:ring-ring focus-visible:ring-offset-2 disabled:pointer-events-none disabled:opacity-50",
	Axes: []variant.AxisDefinition{
		{
			Name: "variant",
			Options: []variant.OptionDefinition{
				{Name: "default", Tokens: "bg-primary text-primary-foreground hover:bg-primary/90"},
				{Name: "primary", Tokens: "bg-luminance-primary-500 text-white hover:bg-luminance-primary-600"},
				{Name: "secondary", Tokens: "bg-luminance-teal-500 text-white hover:bg-luminance-teal-600"},
				{Name: "accent", Tokens: "bg-luminance-purple-500 text-white hover:bg-luminance-purple-600"},
				{Name: "destructive", Tokens: "bg-destructive text-destructive-foreground hover:bg-destructive/90"},
				{Name: "outline", Tokens: "border border-input bg-background hover:bg-accent hover:text-accent-foreground"},
				{Name: "subtle", Tokens: "bg-muted hover:bg-muted/80"},
				{Name: "ghost", Tokens: "hover:bg-accent hover:text-accent-foreground"},
				{Name: "link", Tokens: "text-primary underline-offset-4 hover:underline"},
			},
		},
		{
			Name: "size",
			Options: []variant.OptionDefinition{
				{Name: "default", Tokens: "h-10 px-4 py-2"},
				{Name: "xs", Tokens: "h-8 rounded-md px-2.5 text-xs"},
				{Name: "sm", Tokens: "h-9 rounded-md px-3"},
				{Name: "lg", Tokens: "h-11 rounded-md px-8"},
				{Name: "icon", Tokens: "h-10 w-10"},
			},
		},
	},
	Defaults: map[string]string{"variant": "default", "size": "default"},
})

// BadgeSpec is the variant table shared by every Badge.
var BadgeSpec = variant.MustNew(variant.Definition{
	Name: BadgeName,
	Base: "inline-flex items-center rounded-full px-2.5 py-0.5 text-xs font-semibold transition-colors " +
		"focus:outline-none focus:ring-2 focus:ring-ring focus:ring-offset-2",
	Axes: []variant.AxisDefinition{
		{
			Name: "variant",
			Options: []variant.OptionDefinition{
				{Name: "default", Tokens: "bg-primary text-primary-foreground"},
				{Name: "primary", Tokens: "bg-luminance-primary-500 text-white"},
				{Name: "secondary", Tokens: "bg-luminance-teal-500 text-white"},
				{Name: "accent", Tokens: "bg-luminance-purple-500 text-white"},
				{Name: "outline", Tokens: "border border-input text-foreground"},
				{Name: "subtlePrimary", Tokens: "bg-luminance-primary-100 text-luminance-primary-800 " +
					"dark:bg-luminance-primary-900 dark:text-luminance-primary-200"},
				{Name: "subtleSecondary", Tokens: "bg-luminance-teal-100 text-luminance-teal-800 " +
					"dark:bg-luminance-teal-900 dark:text-luminance-teal-200"},
				{Name: "subtleAccent", Tokens: "bg-luminance-purple-100 text-luminance-purple-800 " +
					"dark:bg-luminance-purple-900 dark:text-luminance-purple-200"},
				{Name: "destructive", Tokens: "bg-destructive text-destructive-foreground"},
			},
		},
		{
			Name: "size",
			Options: []variant.OptionDefinition{
				{Name: "default", Tokens: "px-2.5 py-0.5 text-xs"},
				{Name: "sm", Tokens: "px-2 py-0.5 text-xs"},
				{Name: "lg", Tokens: "px-3 py-1 text-sm"},
			},
		},
	},
	Defaults: map[string]string{"variant": "default", "size": "default"},
})

// CardSpec is the variant table shared by every Card.
var CardSpec = variant.MustNew(variant.Definition{
	Name: CardName,
	Base: "rounded-lg border border-border shadow-sm",
	Axes: []variant.AxisDefinition{
		{
			Name: "variant",
			Options: []variant.OptionDefinition{
				{Name: "default", Tokens: "bg-card text-card-foreground"},
				{Name: "primary", Tokens: "bg-luminance-primary-50 border-luminance-primary-200 " +
					"dark:bg-luminance-primary-900/30 dark:border-luminance-primary-800"},
				{Name: "secondary", Tokens: "bg-luminance-teal-50 border-luminance-teal-200 " +
					"dark:bg-luminance-teal-900/30 dark:border-luminance-teal-800"},
				{Name: "accent", Tokens: "bg-luminance-purple-50 border-luminance-purple-200 " +
					"dark:bg-luminance-purple-900/30 dark:border-luminance-purple-800"},
			},
		},
	},
	Defaults: map[string]string{"variant": "default"},
})

// Catalog returns the built-in component specs.
func Catalog() *variant.Catalog {
	return variant.NewCatalog(ButtonSpec, BadgeSpec, CardSpec)
}

// Class strings for the card and form sub-parts, which have no variants.
const (
	cardHeaderClass      = "flex flex-col space-y-1.5 p-6"
	cardTitleClass       = "text-2xl font-semibold leading-none tracking-tight"
	cardDescriptionClass = "text-sm text-muted-foreground"
	cardContentClass     = "p-6 pt-0"
	cardFooterClass      = "flex items-center p-6 pt-0"

	formClass         = "space-y-6"
	formGroupClass    = "space-y-2"
	formLabelClass    = "text-sm font-medium leading-none"
	formControlClass  = "mt-1"
	formErrorClass    = "text-sm text-destructive mt-1"
	formHelperClass   = "text-sm text-muted-foreground mt-1"
	formActionsClass  = "flex items-center justify-end gap-4 pt-4"
	formSectionClass  = "space-y-4"
	formSectionTitle  = "text-lg font-medium"
	formSectionDetail = "text-sm text-muted-foreground"
)
