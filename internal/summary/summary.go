// Package summary renders finalized orders for people: plain-text summaries,
// mailto links, and the flattened row shape the order ledger stores. All
// functions are pure; output is byte-stable for identical input.
package summary

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/chucksbakes/chucks-bakes-backend/internal/catalog"
	"github.com/chucksbakes/chucks-bakes-backend/internal/order"
)

// EmptyBatchText is returned for a batch with no items.
const EmptyBatchText = "No items in request."

const bannerWidth = 50

// Item renders the canonical plain-text summary for a draft or finalized
// item. Field ordering is fixed; optional fields are omitted entirely.
func Item(d *order.Draft) string {
	if d == nil {
		return ""
	}
	lines := []string{
		"Item: " + itemLabel(d.ItemType),
		"",
	}

	switch {
	case d.ItemType == order.ItemCake && d.Cake != nil:
		lines = append(lines, cakeLines(d.Cake)...)
	case d.ItemType == order.ItemCupcakes && d.Cupcakes != nil:
		lines = append(lines, cupcakeLines(d.Cupcakes)...)
	case d.Treat != nil:
		lines = append(lines, fmt.Sprintf("Quantity: %d", d.Treat.Quantity))
	}

	if d.Contact != nil {
		lines = append(lines, "", "Contact Information:")
		lines = append(lines, "Name: "+d.Contact.Name)
		lines = append(lines, "Email: "+d.Contact.Email)
		if d.Contact.Phone != "" {
			lines = append(lines, "Phone: "+d.Contact.Phone)
		}
		if d.Contact.TargetDate != "" {
			lines = append(lines, "Target Pickup Date: "+d.Contact.TargetDate)
		}
		if d.Contact.Notes != "" {
			lines = append(lines, "Notes: "+d.Contact.Notes)
		}
	}

	return strings.Join(lines, "\n")
}

// RequestItem renders a finalized item.
func RequestItem(item order.RequestItem) string {
	return Item(item.AsDraft())
}

// Batch joins per-item summaries under numbered banners. An empty list yields
// a fixed sentinel rather than an empty string.
func Batch(items []order.RequestItem) string {
	if len(items) == 0 {
		return EmptyBatchText
	}
	banner := strings.Repeat("=", bannerWidth)
	sections := make([]string, 0, len(items))
	for i, item := range items {
		sections = append(sections, fmt.Sprintf("%s\nITEM %d\n%s\n\n%s", banner, i+1, banner, RequestItem(item)))
	}
	return strings.Join(sections, "\n\n")
}

// Subject builds the order email subject, pluralized by item count.
func Subject(itemCount int) string {
	if itemCount == 1 {
		return "Chuck's Bakes Order Request"
	}
	return fmt.Sprintf("Chuck's Bakes Order Request (%d items)", itemCount)
}

// MailtoLink builds a mailto: URI to the order inbox carrying the batch text.
func MailtoLink(items []order.RequestItem) string {
	subject := escapeMailto(Subject(len(items)))
	body := escapeMailto(Batch(items))
	return fmt.Sprintf("mailto:%s?subject=%s&body=%s", catalog.OrderEmail, subject, body)
}

// escapeMailto percent-encodes a mailto header value. QueryEscape alone is
// form encoding, where a space becomes "+"; mail clients read that "+"
// literally, so spaces must be "%20".
func escapeMailto(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func itemLabel(t order.ItemType) string {
	if label, ok := catalog.ItemLabels[string(t)]; ok {
		return label
	}
	return string(t)
}

func cakeLines(cfg *order.CakeConfig) []string {
	lines := []string{
		"Size: " + catalog.LabelFor(catalog.CakeSizes, cfg.Size),
		"Flavor: " + catalog.LabelFor(catalog.CakeFlavors, cfg.Flavor),
		"Filling: " + catalog.LabelFor(catalog.CakeFillings, cfg.Filling),
		"Frosting: " + catalog.FrostingLabel(cfg.FrostingType),
	}
	if cfg.FrostingType == catalog.FrostingSMBC && cfg.SMBCFlavor != "" {
		lines = append(lines, "SMBC Flavor: "+catalog.LabelFor(catalog.SMBCFlavors, cfg.SMBCFlavor))
	}
	if cfg.Theme != "" {
		lines = append(lines, "Theme: "+cfg.Theme)
	}
	if len(cfg.Colors) > 0 {
		lines = append(lines, "Colors: "+strings.Join(cfg.Colors, ", "))
	}
	return lines
}

func cupcakeLines(cfg *order.CupcakeConfig) []string {
	lines := []string{fmt.Sprintf("Quantity: %d", cfg.Quantity)}
	if len(cfg.Flavors) > 0 {
		labels := make([]string, 0, len(cfg.Flavors))
		for _, flavor := range cfg.Flavors {
			labels = append(labels, catalog.LabelFor(catalog.CupcakeFlavors, flavor))
		}
		lines = append(lines, "Flavors: "+strings.Join(labels, ", "))
	}
	if len(cfg.Fillings) > 0 {
		labels := make([]string, 0, len(cfg.Fillings))
		for _, filling := range cfg.Fillings {
			labels = append(labels, catalog.LabelFor(catalog.CakeFillings, filling))
		}
		lines = append(lines, "Fillings: "+strings.Join(labels, ", "))
	}
	if cfg.SMBCFlavor != "" {
		lines = append(lines, "Buttercream: "+catalog.LabelFor(catalog.SMBCFlavors, cfg.SMBCFlavor))
	}
	if cfg.Theme != "" {
		lines = append(lines, "Theme: "+cfg.Theme)
	}
	if len(cfg.Colors) > 0 {
		lines = append(lines, "Colors: "+strings.Join(cfg.Colors, ", "))
	}
	return lines
}
