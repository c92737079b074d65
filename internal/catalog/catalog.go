// Package catalog holds the bakery's static offering data: the values each
// order field may take, per-item batching rules, and presentation labels.
// It is pure data with lookup helpers; enforcement lives in internal/order.
package catalog

import "fmt"

// Option pairs a machine value with its human label.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FrostingOption carries the extra helper copy shown next to the choice.
type FrostingOption struct {
	Value  string `json:"value"`
	Label  string `json:"label"`
	Helper string `json:"helper"`
}

// Color is a palette entry: machine value, label, and display swatch.
type Color struct {
	Value  string `json:"value"`
	Label  string `json:"label"`
	Swatch string `json:"swatch"`
}

// Unit describes the saleable increment for quantity-based items.
type Unit struct {
	Size     int    `json:"size"`
	Name     string `json:"name"`
	MaxUnits int    `json:"max_units"`
}

const (
	FrostingSMBC     = "smbc"
	FrostingAmerican = "american"
)

const (
	MaxColorChips      = 3
	MaxThemeLength     = 60
	MaxCupcakeFlavors  = 2
	MaxCupcakeFillings = 2
)

// OrderEmail is the inbox mailto links point at.
const OrderEmail = "orders@chucksbakes.com"

// SeasonalAvailability is display copy for the seasonal item.
const SeasonalAvailability = "through November"

var ItemLabels = map[string]string{
	"cake":     "Custom Cake",
	"cupcakes": "Cupcakes",
	"brownies": "Brownies",
	"cookies":  "Chocolate Chip Cookies",
	"seasonal": "Seasonal: Apple Pie Almond Scones",
}

var ItemDescriptions = map[string]string{
	"cake":     "Custom designed cake with your choice of flavors and decorations",
	"cupcakes": "A dozen or more cupcakes with your choice of flavors and fillings",
	"brownies": "Rich, fudgy brownies (minimum 16)",
	"cookies":  "Classic chocolate chip cookies (minimum 12)",
	"seasonal": "Apple Pie Almond Scones (through November, minimum 6)",
}

var CakeSizes = []Option{
	{Value: "8-round", Label: `8" round (serves 20–24)`},
	{Value: "18x12-sheet", Label: "18x12 sheet (serves 36–48)"},
}

var CakeFlavors = []Option{
	{Value: "vanilla", Label: "Vanilla"},
	{Value: "chocolate", Label: "Chocolate"},
	{Value: "orange-olive-oil", Label: "Orange Olive Oil"},
	{Value: "spice", Label: "Spice"},
	{Value: "funfetti", Label: "Funfetti"},
}

var CakeFillings = []Option{
	{Value: "raspberry-jam", Label: "Raspberry Jam"},
	{Value: "cream-cheese", Label: "Cream Cheese Frosting"},
	{Value: "dark-chocolate", Label: "Dark Chocolate Ganache"},
	{Value: "caramel", Label: "Caramel"},
}

var CupcakeFlavors = []Option{
	{Value: "vanilla", Label: "Vanilla"},
	{Value: "chocolate", Label: "Chocolate"},
	{Value: "funfetti", Label: "Funfetti"},
	{Value: "spice", Label: "Spice"},
}

var FrostingOptions = []FrostingOption{
	{
		Value:  FrostingSMBC,
		Label:  "Swiss Meringue Buttercream (SMBC)",
		Helper: "Piping decoration and writing will be Swiss Meringue Buttercream.",
	},
	{
		Value:  FrostingAmerican,
		Label:  "American Buttercream",
		Helper: "Natural frost; no piping or writing.",
	},
}

var SMBCFlavors = []Option{
	{Value: "vanilla", Label: "Vanilla"},
	{Value: "almond", Label: "Almond"},
	{Value: "coconut", Label: "Coconut"},
}

var PresetColors = []Color{
	{Value: "pink", Label: "Pink", Swatch: "#f8b4c4"},
	{Value: "white", Label: "White", Swatch: "#fffaf5"},
	{Value: "chocolate", Label: "Chocolate", Swatch: "#3b1f1e"},
	{Value: "gold", Label: "Gold", Swatch: "#d4a843"},
	{Value: "sage", Label: "Sage", Swatch: "#9caf88"},
	{Value: "sky", Label: "Sky Blue", Swatch: "#a8c8e1"},
	{Value: "lavender", Label: "Lavender", Swatch: "#c3aed6"},
	{Value: "red", Label: "Red", Swatch: "#b33a3a"},
}

// Units keys match item type values. Cakes are configured, not counted, so
// they carry no entry.
var Units = map[string]Unit{
	"cupcakes": {Size: 12, Name: "dozen", MaxUnits: 8},
	"brownies": {Size: 16, Name: "pan", MaxUnits: 4},
	"cookies":  {Size: 12, Name: "dozen", MaxUnits: 6},
	"seasonal": {Size: 6, Name: "batch", MaxUnits: 4},
}

// LabelFor resolves a value to its label within the given options, falling
// back to the raw value so summaries never render blanks.
func LabelFor(options []Option, value string) string {
	for _, opt := range options {
		if opt.Value == value {
			return opt.Label
		}
	}
	return value
}

// FrostingLabel resolves a frosting type to its display label.
func FrostingLabel(value string) string {
	for _, opt := range FrostingOptions {
		if opt.Value == value {
			return opt.Label
		}
	}
	return value
}

// HasOption reports whether value appears in options.
func HasOption(options []Option, value string) bool {
	for _, opt := range options {
		if opt.Value == value {
			return true
		}
	}
	return false
}

// HasColor reports whether value is in the preset palette.
func HasColor(value string) bool {
	for _, c := range PresetColors {
		if c.Value == value {
			return true
		}
	}
	return false
}

// QuantityOptions expands an item's unit rule into the selectable quantities,
// e.g. 12, 24, ... up to MaxUnits multiples.
func QuantityOptions(itemType string) []Option {
	unit, ok := Units[itemType]
	if !ok {
		return nil
	}
	opts := make([]Option, 0, unit.MaxUnits)
	for i := 1; i <= unit.MaxUnits; i++ {
		qty := unit.Size * i
		label := fmt.Sprintf("%d (%d %s)", qty, i, unit.Name)
		if i == 1 {
			label = fmt.Sprintf("%d (1 %s)", qty, unit.Name)
		}
		opts = append(opts, Option{Value: fmt.Sprintf("%d", qty), Label: label})
	}
	return opts
}
