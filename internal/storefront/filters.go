package storefront

import (
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/hoaibao3112/Golang-webDienThoai/internal/api"
)

// PageSize is the fixed product-grid page size.
const PageSize = 12

// PriceBucket is one radio option in the price filter. Min/Max of 0 mean
// unbounded on that side.
type PriceBucket struct {
	Value string
	Label string
	Min   float64
	Max   float64
}

// PriceBuckets lists the selectable price ranges; "all" is the default.
func PriceBuckets() []PriceBucket {
	return []PriceBucket{
		{Value: "all", Label: "Tất cả"},
		{Value: "under-2m", Label: "Dưới 2 triệu", Max: 2_000_000},
		{Value: "2m-4m", Label: "Từ 2 - 4 triệu", Min: 2_000_000, Max: 4_000_000},
		{Value: "4m-7m", Label: "Từ 4 - 7 triệu", Min: 4_000_000, Max: 7_000_000},
		{Value: "7m-13m", Label: "Từ 7 - 13 triệu", Min: 7_000_000, Max: 13_000_000},
		{Value: "over-13m", Label: "Trên 13 triệu", Min: 13_000_000},
	}
}

// RAMOptions lists the RAM checkbox values. The listing API has no RAM
// parameter, so this facet only lives in filter state; toggling it still
// resets the page and re-fetches like every other facet.
func RAMOptions() []string {
	return []string{"4 GB", "6 GB", "8 GB", "12 GB"}
}

// SortOption is one entry of the sort dropdown.
type SortOption struct {
	Value string
	Label string
}

func SortOptions() []SortOption {
	return []SortOption{
		{Value: "newest", Label: "Mới nhất"},
		{Value: "price-asc", Label: "Giá thấp đến cao"},
		{Value: "price-desc", Label: "Giá cao đến thấp"},
		{Value: "name", Label: "Tên A-Z"},
	}
}

// Filters is the flat catalog filter state. Facets are independent; mutating
// any of them resets Page to 1 so the next fetch starts from the first page.
type Filters struct {
	Search      string
	Brands      []string
	Categories  []string
	RAM         []string
	PriceBucket string
	Sort        string
	Page        int
}

// ParseFilters rebuilds filter state from request query parameters. Missing
// or malformed values fall back to the defaults.
func ParseFilters(v url.Values) Filters {
	f := Filters{
		Search:      strings.TrimSpace(v.Get("search")),
		Brands:      splitList(v.Get("brand")),
		Categories:  splitList(v.Get("category")),
		RAM:         v["ram"],
		PriceBucket: v.Get("price"),
		Sort:        v.Get("sort"),
		Page:        1,
	}
	if f.PriceBucket == "" {
		f.PriceBucket = "all"
	}
	if f.Sort == "" {
		f.Sort = "newest"
	}
	if p, err := strconv.Atoi(v.Get("page")); err == nil && p > 1 {
		f.Page = p
	}
	return f
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ToggleBrand adds or removes a brand slug and resets the page.
func (f *Filters) ToggleBrand(slug string) {
	f.Brands = toggle(f.Brands, slug)
	f.Page = 1
}

// ToggleCategory adds or removes a category slug and resets the page.
func (f *Filters) ToggleCategory(slug string) {
	f.Categories = toggle(f.Categories, slug)
	f.Page = 1
}

// ToggleRAM adds or removes a RAM value and resets the page.
func (f *Filters) ToggleRAM(ram string) {
	f.RAM = toggle(f.RAM, ram)
	f.Page = 1
}

// SetPriceBucket selects a price range and resets the page.
func (f *Filters) SetPriceBucket(value string) {
	f.PriceBucket = value
	f.Page = 1
}

// SetSort selects a sort key and resets the page.
func (f *Filters) SetSort(value string) {
	f.Sort = value
	f.Page = 1
}

// Clear drops every facet back to its default.
func (f *Filters) Clear() {
	*f = Filters{PriceBucket: "all", Sort: "newest", Page: 1}
}

func toggle(list []string, value string) []string {
	if i := slices.Index(list, value); i >= 0 {
		return slices.Delete(slices.Clone(list), i, i+1)
	}
	return append(slices.Clone(list), value)
}

// ActiveCount is the number of non-default facets, for the filter chips row.
func (f Filters) ActiveCount() int {
	n := len(f.Brands) + len(f.Categories) + len(f.RAM)
	if f.PriceBucket != "" && f.PriceBucket != "all" {
		n++
	}
	return n
}

// Query translates the state into listing-endpoint parameters. The price
// bucket becomes a minPrice/maxPrice pair; RAM has no wire representation.
func (f Filters) Query() api.ProductQuery {
	q := api.ProductQuery{
		Search:   f.Search,
		Brand:    strings.Join(f.Brands, ","),
		Category: strings.Join(f.Categories, ","),
		Page:     f.Page,
		Limit:    PageSize,
		Sort:     f.Sort,
	}
	for _, b := range PriceBuckets() {
		if b.Value == f.PriceBucket {
			q.MinPrice = b.Min
			q.MaxPrice = b.Max
			break
		}
	}
	return q
}

// Values serializes the state back into query parameters for links. The page
// is only carried when past the first one.
func (f Filters) Values() url.Values {
	v := url.Values{}
	if f.Search != "" {
		v.Set("search", f.Search)
	}
	if len(f.Brands) > 0 {
		v.Set("brand", strings.Join(f.Brands, ","))
	}
	if len(f.Categories) > 0 {
		v.Set("category", strings.Join(f.Categories, ","))
	}
	for _, r := range f.RAM {
		v.Add("ram", r)
	}
	if f.PriceBucket != "" && f.PriceBucket != "all" {
		v.Set("price", f.PriceBucket)
	}
	if f.Sort != "" && f.Sort != "newest" {
		v.Set("sort", f.Sort)
	}
	if f.Page > 1 {
		v.Set("page", strconv.Itoa(f.Page))
	}
	return v
}

// WithPage returns a copy pointing at another page, same facets.
func (f Filters) WithPage(page int) Filters {
	f.Brands = slices.Clone(f.Brands)
	f.Categories = slices.Clone(f.Categories)
	f.RAM = slices.Clone(f.RAM)
	f.Page = page
	return f
}
