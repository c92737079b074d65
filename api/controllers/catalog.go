package controllers

import (
	"net/http"

	"github.com/chucksbakes/chucks-bakes-backend/api/responses"
	"github.com/chucksbakes/chucks-bakes-backend/internal/catalog"
	"github.com/chucksbakes/chucks-bakes-backend/internal/order"
)

type catalogItem struct {
	ItemType    string `json:"item_type"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

type catalogResponse struct {
	Items              []catalogItem               `json:"items"`
	CakeSizes          []catalog.Option            `json:"cake_sizes"`
	CakeFlavors        []catalog.Option            `json:"cake_flavors"`
	CakeFillings       []catalog.Option            `json:"cake_fillings"`
	CupcakeFlavors     []catalog.Option            `json:"cupcake_flavors"`
	FrostingOptions    []catalog.FrostingOption    `json:"frosting_options"`
	SMBCFlavors        []catalog.Option            `json:"smbc_flavors"`
	PresetColors       []catalog.Color             `json:"preset_colors"`
	QuantityOptions    map[string][]catalog.Option `json:"quantity_options"`
	MaxColorChips      int                         `json:"max_color_chips"`
	MaxThemeLength     int                         `json:"max_theme_length"`
	MaxCupcakeFlavors  int                         `json:"max_cupcake_flavors"`
	MaxCupcakeFillings int                         `json:"max_cupcake_fillings"`
	SeasonalNote       string                      `json:"seasonal_note"`
}

// Catalog serves everything the order form needs to render its options.
func Catalog() http.HandlerFunc {
	items := make([]catalogItem, 0, len(order.ItemTypes))
	for _, t := range order.ItemTypes {
		items = append(items, catalogItem{
			ItemType:    string(t),
			Label:       catalog.ItemLabels[string(t)],
			Description: catalog.ItemDescriptions[string(t)],
		})
	}
	quantities := map[string][]catalog.Option{}
	for itemType := range catalog.Units {
		quantities[itemType] = catalog.QuantityOptions(itemType)
	}
	payload := catalogResponse{
		Items:              items,
		CakeSizes:          catalog.CakeSizes,
		CakeFlavors:        catalog.CakeFlavors,
		CakeFillings:       catalog.CakeFillings,
		CupcakeFlavors:     catalog.CupcakeFlavors,
		FrostingOptions:    catalog.FrostingOptions,
		SMBCFlavors:        catalog.SMBCFlavors,
		PresetColors:       catalog.PresetColors,
		QuantityOptions:    quantities,
		MaxColorChips:      catalog.MaxColorChips,
		MaxThemeLength:     catalog.MaxThemeLength,
		MaxCupcakeFlavors:  catalog.MaxCupcakeFlavors,
		MaxCupcakeFillings: catalog.MaxCupcakeFillings,
		SeasonalNote:       catalog.SeasonalAvailability,
	}

	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, payload)
	}
}
