package order

import (
	"fmt"
	"net/mail"
	"sort"
	"strings"

	"github.com/chucksbakes/chucks-bakes-backend/internal/catalog"
)

// FieldErrors maps a field path to a human-readable message. Validators
// collect every failing field before returning so forms can render all
// problems at once.
type FieldErrors map[string]string

func (f FieldErrors) Add(path, message string) {
	if _, exists := f[path]; exists {
		return
	}
	f[path] = message
}

// MergePrefixed copies other into f, prefixing each path (e.g. "contact").
func (f FieldErrors) MergePrefixed(prefix string, other FieldErrors) {
	for path, msg := range other {
		f.Add(prefix+"."+path, msg)
	}
}

func (f FieldErrors) Any() bool { return len(f) > 0 }

// Error renders the map deterministically for logs and error wrapping.
func (f FieldErrors) Error() string {
	if len(f) == 0 {
		return ""
	}
	paths := make([]string, 0, len(f))
	for path := range f {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	parts := make([]string, 0, len(paths))
	for _, path := range paths {
		parts = append(parts, path+": "+f[path])
	}
	return strings.Join(parts, "; ")
}

// ValidateCake checks the cake branch, including the whole-object refinement
// that smbc frosting requires an SMBC flavor.
func ValidateCake(cfg *CakeConfig) FieldErrors {
	errs := FieldErrors{}
	if cfg == nil {
		errs.Add("cake", "cake configuration is required")
		return errs
	}
	if !catalog.HasOption(catalog.CakeSizes, cfg.Size) {
		errs.Add("size", "Please select a size")
	}
	if !catalog.HasOption(catalog.CakeFlavors, cfg.Flavor) {
		errs.Add("flavor", "Please select a flavor")
	}
	if !catalog.HasOption(catalog.CakeFillings, cfg.Filling) {
		errs.Add("filling", "Please select a filling")
	}
	switch cfg.FrostingType {
	case catalog.FrostingSMBC, catalog.FrostingAmerican:
	default:
		errs.Add("frosting_type", "Please select a frosting type")
	}
	validateTheme(errs, cfg.Theme)
	validateColors(errs, cfg.Colors)
	if errs.Any() {
		return errs
	}

	// Refinement runs only after the per-field checks pass.
	if cfg.FrostingType == catalog.FrostingSMBC {
		if cfg.SMBCFlavor == "" {
			errs.Add("smbc_flavor", "Please select an SMBC flavor")
		} else if !catalog.HasOption(catalog.SMBCFlavors, cfg.SMBCFlavor) {
			errs.Add("smbc_flavor", "Please select an SMBC flavor")
		}
	}
	return errs
}

// ValidateCupcakes checks the cupcakes branch. Quantity must be an exact
// positive multiple of the dozen unit, capped at the catalog maximum.
func ValidateCupcakes(cfg *CupcakeConfig) FieldErrors {
	errs := FieldErrors{}
	if cfg == nil {
		errs.Add("cupcakes", "cupcake configuration is required")
		return errs
	}
	validateUnitQuantity(errs, ItemCupcakes, cfg.Quantity)
	if len(cfg.Flavors) == 0 {
		errs.Add("flavors", "Please select at least one flavor")
	} else if len(cfg.Flavors) > catalog.MaxCupcakeFlavors {
		errs.Add("flavors", fmt.Sprintf("You can select up to %d flavors", catalog.MaxCupcakeFlavors))
	} else if dup, ok := firstDuplicate(cfg.Flavors); ok {
		errs.Add("flavors", fmt.Sprintf("%q is selected more than once", dup))
	} else {
		for _, flavor := range cfg.Flavors {
			if !catalog.HasOption(catalog.CupcakeFlavors, flavor) {
				errs.Add("flavors", fmt.Sprintf("%q is not an available flavor", flavor))
				break
			}
		}
	}
	if len(cfg.Fillings) > catalog.MaxCupcakeFillings {
		errs.Add("fillings", fmt.Sprintf("You can select up to %d fillings", catalog.MaxCupcakeFillings))
	} else if dup, ok := firstDuplicate(cfg.Fillings); ok {
		errs.Add("fillings", fmt.Sprintf("%q is selected more than once", dup))
	} else {
		for _, filling := range cfg.Fillings {
			if !catalog.HasOption(catalog.CakeFillings, filling) {
				errs.Add("fillings", fmt.Sprintf("%q is not an available filling", filling))
				break
			}
		}
	}
	if cfg.SMBCFlavor == "" || !catalog.HasOption(catalog.SMBCFlavors, cfg.SMBCFlavor) {
		errs.Add("smbc_flavor", "Please select a buttercream flavor")
	}
	validateTheme(errs, cfg.Theme)
	validateColors(errs, cfg.Colors)
	return errs
}

// ValidateTreat checks a quantity-only order against its enclosing item type.
func ValidateTreat(o *TreatOrder, enclosing ItemType) FieldErrors {
	errs := FieldErrors{}
	if o == nil {
		errs.Add("treat", "order details are required")
		return errs
	}
	if !o.Type.IsTreat() || o.Type != enclosing {
		errs.Add("type", "order type does not match the selected item")
	}
	validateUnitQuantity(errs, enclosing, o.Quantity)
	return errs
}

// ValidateContact checks and normalizes contact details. The delivery method
// defaults to pickup when unset.
func ValidateContact(c *ContactInfo) FieldErrors {
	errs := FieldErrors{}
	if c == nil {
		errs.Add("contact", "contact information is required")
		return errs
	}
	if strings.TrimSpace(c.Name) == "" {
		errs.Add("name", "Name is required")
	}
	if _, err := mail.ParseAddress(c.Email); err != nil {
		errs.Add("email", "Please enter a valid email address")
	}
	switch c.DeliveryMethod {
	case "":
		c.DeliveryMethod = DeliveryPickup
	case DeliveryPickup, DeliveryDelivery:
	default:
		errs.Add("delivery_method", "Please choose pickup or delivery")
	}
	return errs
}

// ValidateDraft resolves the discriminator first and then applies exactly one
// branch. Unknown item types are a hard failure even if a catalog entry
// exists for them.
func ValidateDraft(d *Draft) FieldErrors {
	errs := FieldErrors{}
	if d == nil {
		errs.Add("draft", "no draft in progress")
		return errs
	}
	if !d.ItemType.Known() {
		errs.Add("item_type", fmt.Sprintf("%q is not something we bake", string(d.ItemType)))
		return errs
	}
	switch {
	case d.ItemType == ItemCake:
		if d.Cupcakes != nil || d.Treat != nil {
			errs.Add("item_type", "conflicting order payloads")
			return errs
		}
		for path, msg := range ValidateCake(d.Cake) {
			errs.Add(path, msg)
		}
	case d.ItemType == ItemCupcakes:
		if d.Cake != nil || d.Treat != nil {
			errs.Add("item_type", "conflicting order payloads")
			return errs
		}
		for path, msg := range ValidateCupcakes(d.Cupcakes) {
			errs.Add(path, msg)
		}
	default:
		if d.Cake != nil || d.Cupcakes != nil {
			errs.Add("item_type", "conflicting order payloads")
			return errs
		}
		for path, msg := range ValidateTreat(d.Treat, d.ItemType) {
			errs.Add(path, msg)
		}
	}
	if d.Contact != nil {
		errs.MergePrefixed("contact", ValidateContact(d.Contact))
	}
	return errs
}

// ValidateRequestItem applies the draft rules plus the required contact.
func ValidateRequestItem(r *RequestItem) FieldErrors {
	if r == nil {
		errs := FieldErrors{}
		errs.Add("item", "request item is required")
		return errs
	}
	return ValidateDraft(r.AsDraft())
}

func validateTheme(errs FieldErrors, theme string) {
	if len([]rune(theme)) > catalog.MaxThemeLength {
		errs.Add("theme", fmt.Sprintf("Theme must be %d characters or fewer", catalog.MaxThemeLength))
	}
}

func validateColors(errs FieldErrors, colors []string) {
	if len(colors) > catalog.MaxColorChips {
		errs.Add("colors", fmt.Sprintf("You can select up to %d colors", catalog.MaxColorChips))
		return
	}
	if dup, ok := firstDuplicate(colors); ok {
		errs.Add("colors", fmt.Sprintf("%q is selected more than once", dup))
		return
	}
	for _, color := range colors {
		if !catalog.HasColor(color) {
			errs.Add("colors", fmt.Sprintf("%q is not in the palette", color))
			return
		}
	}
}

// validateUnitQuantity enforces the strict-multiple policy: quantities are
// sold only in whole units (dozen, pan, batch) up to the catalog cap.
func validateUnitQuantity(errs FieldErrors, itemType ItemType, quantity int) {
	unit, ok := catalog.Units[string(itemType)]
	if !ok {
		errs.Add("quantity", "this item is not sold by quantity")
		return
	}
	if quantity <= 0 {
		errs.Add("quantity", "Please select a quantity")
		return
	}
	if quantity%unit.Size != 0 {
		errs.Add("quantity", fmt.Sprintf("Quantity must be a multiple of %d (one %s)", unit.Size, unit.Name))
		return
	}
	if quantity > unit.Size*unit.MaxUnits {
		errs.Add("quantity", fmt.Sprintf("We can take at most %d per order", unit.Size*unit.MaxUnits))
	}
}

func firstDuplicate(values []string) (string, bool) {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			return v, true
		}
		seen[v] = struct{}{}
	}
	return "", false
}
