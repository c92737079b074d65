// Package order defines the tagged order model and its validation rules.
// Drafts are built step by step in the wizard; a RequestItem is a finalized
// draft whose contact block is present and valid.
package order

// ItemType discriminates the order payload. The set is closed: values outside
// the five literals fail validation regardless of what the catalog carries.
type ItemType string

const (
	ItemCake     ItemType = "cake"
	ItemCupcakes ItemType = "cupcakes"
	ItemBrownies ItemType = "brownies"
	ItemCookies  ItemType = "cookies"
	ItemSeasonal ItemType = "seasonal"
)

// ItemTypes lists the valid discriminator values in display order.
var ItemTypes = []ItemType{ItemCake, ItemCupcakes, ItemBrownies, ItemCookies, ItemSeasonal}

// Known reports whether t is one of the five literal tags.
func (t ItemType) Known() bool {
	switch t {
	case ItemCake, ItemCupcakes, ItemBrownies, ItemCookies, ItemSeasonal:
		return true
	}
	return false
}

// IsTreat reports whether t is a quantity-only item.
func (t ItemType) IsTreat() bool {
	switch t {
	case ItemBrownies, ItemCookies, ItemSeasonal:
		return true
	}
	return false
}

const (
	DeliveryPickup   = "pickup"
	DeliveryDelivery = "delivery"
)

// CakeConfig is the cake branch payload. SMBCFlavor is required only when
// FrostingType is smbc; with american frosting it is unconstrained.
type CakeConfig struct {
	Size         string   `json:"size"`
	Flavor       string   `json:"flavor"`
	Filling      string   `json:"filling"`
	FrostingType string   `json:"frosting_type"`
	SMBCFlavor   string   `json:"smbc_flavor,omitempty"`
	Theme        string   `json:"theme,omitempty"`
	Colors       []string `json:"colors,omitempty"`
}

// CupcakeConfig is the cupcakes branch payload. Quantity is sold by the dozen.
type CupcakeConfig struct {
	Quantity   int      `json:"quantity"`
	Flavors    []string `json:"flavors"`
	Fillings   []string `json:"fillings,omitempty"`
	SMBCFlavor string   `json:"smbc_flavor"`
	Theme      string   `json:"theme,omitempty"`
	Colors     []string `json:"colors,omitempty"`
}

// TreatOrder is the payload for brownies, cookies and seasonal items.
type TreatOrder struct {
	Type     ItemType `json:"type"`
	Quantity int      `json:"quantity"`
}

// ContactInfo is attached at step 3. Name and Email are the only hard
// requirements; DeliveryMethod defaults to pickup during validation.
type ContactInfo struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone,omitempty"`
	DeliveryMethod string `json:"delivery_method,omitempty"`
	TargetDate     string `json:"target_date,omitempty"`
	TargetTime     string `json:"target_time,omitempty"`
	Budget         string `json:"budget,omitempty"`
	Notes          string `json:"notes,omitempty"`
	ReferralSource string `json:"referral_source,omitempty"`
}

// Draft is the in-progress order. Exactly one of Cake/Cupcakes/Treat is set,
// matching ItemType; Contact is nil until step 3 completes.
type Draft struct {
	ItemType ItemType       `json:"item_type"`
	Cake     *CakeConfig    `json:"cake,omitempty"`
	Cupcakes *CupcakeConfig `json:"cupcakes,omitempty"`
	Treat    *TreatOrder    `json:"treat,omitempty"`
	Contact  *ContactInfo   `json:"contact,omitempty"`
}

// RequestItem is a finalized draft. Contact is a value, not a pointer: a
// RequestItem without contact information cannot be constructed.
type RequestItem struct {
	ItemType ItemType       `json:"item_type"`
	Cake     *CakeConfig    `json:"cake,omitempty"`
	Cupcakes *CupcakeConfig `json:"cupcakes,omitempty"`
	Treat    *TreatOrder    `json:"treat,omitempty"`
	Contact  ContactInfo    `json:"contact"`
}

// NewDraft seeds the step-2 skeleton for the chosen item type. Treat drafts
// start at quantity 0 and stay invalid until configured.
func NewDraft(t ItemType) *Draft {
	d := &Draft{ItemType: t}
	switch {
	case t == ItemCake:
		d.Cake = &CakeConfig{}
	case t == ItemCupcakes:
		d.Cupcakes = &CupcakeConfig{}
	case t.IsTreat():
		d.Treat = &TreatOrder{Type: t, Quantity: 0}
	}
	return d
}

// Finalize converts a draft into a RequestItem. It does not validate; callers
// run ValidateRequestItem first and must not call this without a contact.
func (d *Draft) Finalize() (RequestItem, bool) {
	if d == nil || d.Contact == nil {
		return RequestItem{}, false
	}
	return RequestItem{
		ItemType: d.ItemType,
		Cake:     d.Cake,
		Cupcakes: d.Cupcakes,
		Treat:    d.Treat,
		Contact:  *d.Contact,
	}, true
}

// AsDraft views the request item through the draft shape, for shared
// validation and summarization paths.
func (r RequestItem) AsDraft() *Draft {
	contact := r.Contact
	return &Draft{
		ItemType: r.ItemType,
		Cake:     r.Cake,
		Cupcakes: r.Cupcakes,
		Treat:    r.Treat,
		Contact:  &contact,
	}
}
