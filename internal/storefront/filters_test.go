package storefront

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFiltersDefaults(t *testing.T) {
	f := ParseFilters(url.Values{})
	assert.Equal(t, "all", f.PriceBucket)
	assert.Equal(t, "newest", f.Sort)
	assert.Equal(t, 1, f.Page)
	assert.Empty(t, f.Brands)
}

func TestParseFiltersRoundTrip(t *testing.T) {
	in := url.Values{
		"brand":  {"apple,samsung"},
		"ram":    {"8 GB", "12 GB"},
		"price":  {"4m-7m"},
		"sort":   {"price-asc"},
		"page":   {"3"},
		"search": {"iphone"},
	}
	f := ParseFilters(in)
	assert.Equal(t, []string{"apple", "samsung"}, f.Brands)
	assert.Equal(t, []string{"8 GB", "12 GB"}, f.RAM)
	assert.Equal(t, "4m-7m", f.PriceBucket)
	assert.Equal(t, 3, f.Page)

	out := ParseFilters(f.Values())
	assert.Equal(t, f, out)
}

func TestParseFiltersBadPage(t *testing.T) {
	f := ParseFilters(url.Values{"page": {"banana"}})
	assert.Equal(t, 1, f.Page)
	f = ParseFilters(url.Values{"page": {"-2"}})
	assert.Equal(t, 1, f.Page)
}

func TestMutationsResetPage(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Filters)
	}{
		{"toggle brand", func(f *Filters) { f.ToggleBrand("apple") }},
		{"toggle category", func(f *Filters) { f.ToggleCategory("phones") }},
		{"toggle ram", func(f *Filters) { f.ToggleRAM("8 GB") }},
		{"set price", func(f *Filters) { f.SetPriceBucket("under-2m") }},
		{"set sort", func(f *Filters) { f.SetSort("name") }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := Filters{PriceBucket: "all", Sort: "newest", Page: 7}
			tc.mutate(&f)
			assert.Equal(t, 1, f.Page)
		})
	}
}

func TestToggleAddsThenRemoves(t *testing.T) {
	f := Filters{PriceBucket: "all", Sort: "newest", Page: 1}
	f.ToggleBrand("apple")
	assert.Equal(t, []string{"apple"}, f.Brands)
	f.ToggleBrand("samsung")
	assert.Equal(t, []string{"apple", "samsung"}, f.Brands)
	f.ToggleBrand("apple")
	assert.Equal(t, []string{"samsung"}, f.Brands)
}

func TestClear(t *testing.T) {
	f := ParseFilters(url.Values{"brand": {"apple"}, "price": {"4m-7m"}, "page": {"5"}})
	f.Clear()
	assert.Equal(t, Filters{PriceBucket: "all", Sort: "newest", Page: 1}, f)
	assert.Equal(t, 0, f.ActiveCount())
}

func TestActiveCount(t *testing.T) {
	f := Filters{PriceBucket: "all", Sort: "newest", Page: 1}
	assert.Equal(t, 0, f.ActiveCount())
	f.ToggleBrand("apple")
	f.ToggleRAM("8 GB")
	f.SetPriceBucket("under-2m")
	assert.Equal(t, 3, f.ActiveCount())
	// Sort is not a facet.
	f.SetSort("name")
	assert.Equal(t, 3, f.ActiveCount())
}

func TestQueryMapsPriceBucket(t *testing.T) {
	f := Filters{PriceBucket: "4m-7m", Sort: "newest", Page: 2}
	q := f.Query()
	assert.Equal(t, 4_000_000.0, q.MinPrice)
	assert.Equal(t, 7_000_000.0, q.MaxPrice)
	assert.Equal(t, 2, q.Page)
	assert.Equal(t, PageSize, q.Limit)
}

func TestQueryOmitsRAM(t *testing.T) {
	f := Filters{RAM: []string{"8 GB"}, PriceBucket: "all", Sort: "newest", Page: 1}
	q := f.Query()
	// The listing API has no RAM parameter; the facet is state only.
	assert.Empty(t, q.Brand)
	assert.Zero(t, q.MinPrice)
	assert.Zero(t, q.MaxPrice)
}

func TestValuesOmitsDefaults(t *testing.T) {
	f := Filters{PriceBucket: "all", Sort: "newest", Page: 1}
	assert.Empty(t, f.Values().Encode())
}

func TestWithPageDoesNotAliasSlices(t *testing.T) {
	f := Filters{Brands: []string{"apple"}, PriceBucket: "all", Sort: "newest", Page: 1}
	g := f.WithPage(2)
	assert.Equal(t, 2, g.Page)
	g.ToggleBrand("samsung")
	assert.Equal(t, []string{"apple"}, f.Brands)
}
