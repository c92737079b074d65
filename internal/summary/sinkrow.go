package summary

import (
	"fmt"
	"strings"

	"github.com/chucksbakes/chucks-bakes-backend/internal/order"
)

// NotApplicable marks ledger cells that do not apply to the item's branch.
// Optional-but-applicable free text stays empty instead. Every row carries
// the full column set either way.
const NotApplicable = "N/A"

// InitialStatus is the status every accepted order starts in.
const InitialStatus = "New"

// SinkRow is the flattened column set the order ledger expects. The timestamp
// is filled in by the ledger writer, never here.
type SinkRow struct {
	Status         string `json:"status"`
	ItemType       string `json:"item_type"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	DeliveryMethod string `json:"delivery_method"`
	TargetDate     string `json:"target_date"`
	Budget         string `json:"budget"`
	Notes          string `json:"notes"`
	ReferralSource string `json:"referral_source"`
	Size           string `json:"size"`
	Quantity       string `json:"quantity"`
	Flavors        string `json:"flavors"`
	Fillings       string `json:"fillings"`
	FrostingType   string `json:"frosting_type"`
	SMBCFlavor     string `json:"smbc_flavor"`
	Theme          string `json:"theme"`
	Colors         string `json:"colors"`
}

// ToSinkRow flattens a finalized item into the uniform ledger shape.
func ToSinkRow(item order.RequestItem) SinkRow {
	row := SinkRow{
		Status:         InitialStatus,
		ItemType:       string(item.ItemType),
		Name:           item.Contact.Name,
		Email:          item.Contact.Email,
		Phone:          item.Contact.Phone,
		DeliveryMethod: item.Contact.DeliveryMethod,
		TargetDate:     item.Contact.TargetDate,
		Budget:         item.Contact.Budget,
		Notes:          item.Contact.Notes,
		ReferralSource: item.Contact.ReferralSource,
		Size:           NotApplicable,
		Quantity:       NotApplicable,
		Flavors:        NotApplicable,
		Fillings:       NotApplicable,
		FrostingType:   NotApplicable,
		SMBCFlavor:     NotApplicable,
		Theme:          NotApplicable,
		Colors:         NotApplicable,
	}
	if row.DeliveryMethod == "" {
		row.DeliveryMethod = order.DeliveryPickup
	}

	switch {
	case item.ItemType == order.ItemCake && item.Cake != nil:
		cfg := item.Cake
		row.Size = cfg.Size
		row.Quantity = "1 cake"
		row.Flavors = cfg.Flavor
		row.Fillings = cfg.Filling
		row.FrostingType = cfg.FrostingType
		row.SMBCFlavor = cfg.SMBCFlavor
		row.Theme = cfg.Theme
		row.Colors = strings.Join(cfg.Colors, ", ")
	case item.ItemType == order.ItemCupcakes && item.Cupcakes != nil:
		cfg := item.Cupcakes
		row.Quantity = fmt.Sprintf("%d", cfg.Quantity)
		row.Flavors = strings.Join(cfg.Flavors, ", ")
		row.Fillings = strings.Join(cfg.Fillings, ", ")
		row.SMBCFlavor = cfg.SMBCFlavor
		row.Theme = cfg.Theme
		row.Colors = strings.Join(cfg.Colors, ", ")
	case item.Treat != nil:
		row.Quantity = fmt.Sprintf("%d", item.Treat.Quantity)
	}
	return row
}
