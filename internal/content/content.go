// Package content reads marketing copy overrides from the external document
// store. The store is read-only from our side and best-effort: any failure
// degrades to empty overrides so pages render their built-in copy.
package content

// Homepage carries optional overrides for the marketing page. Absent fields
// mean "use the built-in copy".
type Homepage struct {
	HeroTitle            string     `json:"heroTitle,omitempty"`
	HeroSubtitle         string     `json:"heroSubtitle,omitempty"`
	HeroButtonText       string     `json:"heroButtonText,omitempty"`
	HeroImageURL         string     `json:"heroImageUrl,omitempty"`
	KitchenTitle         string     `json:"kitchenTitle,omitempty"`
	KitchenDescription   string     `json:"kitchenDescription,omitempty"`
	KitchenLinkText      string     `json:"kitchenLinkText,omitempty"`
	KitchenImageURL      string     `json:"kitchenImageUrl,omitempty"`
	WhatWeBakeTitle      string     `json:"whatWeBakeTitle,omitempty"`
	WhatWeBakeSubtitle   string     `json:"whatWeBakeSubtitle,omitempty"`
	HowItWorksTitle      string     `json:"howItWorksTitle,omitempty"`
	HowItWorksSteps      []StepCopy `json:"howItWorksSteps,omitempty"`
	FooterCtaTitle       string     `json:"footerCtaTitle,omitempty"`
	FooterCtaDescription string     `json:"footerCtaDescription,omitempty"`
	FooterCtaButtonText  string     `json:"footerCtaButtonText,omitempty"`
}

type StepCopy struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// OrderPage carries the order page copy and the enable-flagged item list.
// Disabling an item here hides it from the picker only; the order schemas
// enforce their own closed whitelist independently.
type OrderPage struct {
	ChooseItemTitle    string     `json:"chooseItemTitle,omitempty"`
	ChooseItemSubtitle string     `json:"chooseItemSubtitle,omitempty"`
	Items              []PageItem `json:"items,omitempty"`
}

type PageItem struct {
	ItemType    string `json:"itemType"`
	Label       string `json:"label,omitempty"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Enabled     bool   `json:"enabled"`
}
