package storefront

import "github.com/hoaibao3112/Golang-webDienThoai/internal/models"

// VariantPicker drives the storage/color controls on the product page.
// Variant counts are small (tens at most), so lookups just scan the slice.
type VariantPicker struct {
	variants []models.ProductVariant
	selected int // index into variants, -1 when the list is empty
}

// NewVariantPicker defaults the selection to the first variant.
func NewVariantPicker(variants []models.ProductVariant) *VariantPicker {
	selected := -1
	if len(variants) > 0 {
		selected = 0
	}
	return &VariantPicker{variants: variants, selected: selected}
}

// Storages returns the distinct storage values in first-seen order.
func (p *VariantPicker) Storages() []string {
	return p.distinct(func(v models.ProductVariant) string { return v.Storage })
}

// Colors returns the distinct color values in first-seen order.
func (p *VariantPicker) Colors() []string {
	return p.distinct(func(v models.ProductVariant) string { return v.Color })
}

func (p *VariantPicker) distinct(key func(models.ProductVariant) string) []string {
	seen := make(map[string]bool, len(p.variants))
	var out []string
	for _, v := range p.variants {
		k := key(v)
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}

// Find returns the variant matching (storage, color), if any.
func (p *VariantPicker) Find(storage, color string) (models.ProductVariant, bool) {
	for _, v := range p.variants {
		if v.Storage == storage && v.Color == color {
			return v, true
		}
	}
	return models.ProductVariant{}, false
}

// Available reports whether the (storage, color) combination exists; the
// page disables — never hides — controls for missing combinations.
func (p *VariantPicker) Available(storage, color string) bool {
	_, ok := p.Find(storage, color)
	return ok
}

// Selected returns the current variant. ok is false only for an empty list.
func (p *VariantPicker) Selected() (models.ProductVariant, bool) {
	if p.selected < 0 {
		return models.ProductVariant{}, false
	}
	return p.variants[p.selected], true
}

// SelectStorage moves the selection to (storage, current color). When no such
// variant exists the selection stays where it is.
func (p *VariantPicker) SelectStorage(storage string) {
	cur, ok := p.Selected()
	if !ok {
		return
	}
	p.selectMatch(storage, cur.Color)
}

// SelectColor is the symmetric rule for the color axis.
func (p *VariantPicker) SelectColor(color string) {
	cur, ok := p.Selected()
	if !ok {
		return
	}
	p.selectMatch(cur.Storage, color)
}

// SelectVariant moves the selection to the variant with the given id, if present.
func (p *VariantPicker) SelectVariant(id string) {
	for i, v := range p.variants {
		if v.ID == id {
			p.selected = i
			return
		}
	}
}

func (p *VariantPicker) selectMatch(storage, color string) {
	for i, v := range p.variants {
		if v.Storage == storage && v.Color == color {
			p.selected = i
			return
		}
	}
}
