package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"

	"github.com/hoaibao3112/Golang-webDienThoai/internal/api"
	"github.com/hoaibao3112/Golang-webDienThoai/internal/models"
	"github.com/hoaibao3112/Golang-webDienThoai/internal/storefront"
)

type ProductHandler struct {
	API          *api.Client
	Templates    *TemplateCache
	SessionStore *sessions.CookieStore
}

// FilterChip is one removable "Đang lọc" tag above the product grid.
type FilterChip struct {
	Label     string
	RemoveURL string
}

// FacetOption is a sidebar checkbox/radio with its toggled link.
type FacetOption struct {
	Label    string
	Value    string
	Checked  bool
	URL      string
	Count    int
}

// List renders the catalog with the filter sidebar and pagination.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, SessionName)
	filters := storefront.ParseFilters(r.URL.Query())
	ctx := r.Context()

	var products []models.Product
	totalPages := 1
	page, err := h.API.Products(ctx, filters.Query())
	if err != nil {
		slog.Error("Failed to load product listing", "error", err)
		session.AddFlash(FlashMessage{Type: "error", Message: "Không thể tải dữ liệu"})
	} else {
		products = page.Data
		if page.TotalPages > 0 {
			totalPages = page.TotalPages
		}
	}

	brands, err := h.API.Brands(ctx)
	if err != nil {
		slog.Error("Failed to load brands", "error", err)
	}
	categories, err := h.API.Categories(ctx)
	if err != nil {
		slog.Error("Failed to load categories", "error", err)
	}

	tmpl := h.Templates.Get("products.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	data := map[string]interface{}{
		"Title":       "Điện thoại di động",
		"Products":    products,
		"Filters":     filters,
		"ActiveCount": filters.ActiveCount(),
		"Chips":       h.buildChips(filters, brands),
		"BrandFacet":  h.brandFacet(filters, brands),
		"CatFacet":    h.categoryFacet(filters, categories),
		"PriceFacet":  h.priceFacet(filters),
		"RAMFacet":    h.ramFacet(filters),
		"SortFacet":   h.sortFacet(filters),
		"Pages":       storefront.PageWindow(filters.Page, totalPages),
		"TotalPages":  totalPages,
		"PrevURL":     pageURL(filters, filters.Page-1),
		"NextURL":     pageURL(filters, filters.Page+1),
		"ClearURL":    "/products",
		"LoggedIn":    CurrentToken(session) != "",
		"Flashes":     GetFlash(session),
	}
	session.Save(r, w)
	tmpl.ExecuteTemplate(w, "layout.html", data)
}

func pageURL(f storefront.Filters, page int) string {
	q := f.WithPage(page).Values().Encode()
	if q == "" {
		return "/products"
	}
	return "/products?" + q
}

func filterURL(f storefront.Filters) string {
	q := f.Values().Encode()
	if q == "" {
		return "/products"
	}
	return "/products?" + q
}

// buildChips renders one removable tag per active facet value; following a
// chip's link drops that value and lands back on page 1.
func (h *ProductHandler) buildChips(filters storefront.Filters, brands []models.Brand) []FilterChip {
	var chips []FilterChip
	for _, slug := range filters.Brands {
		label := slug
		for _, b := range brands {
			if b.Slug == slug {
				label = b.Name
				break
			}
		}
		next := filters
		next.ToggleBrand(slug)
		chips = append(chips, FilterChip{Label: "Thương hiệu: " + label, RemoveURL: filterURL(next)})
	}
	for _, ram := range filters.RAM {
		next := filters
		next.ToggleRAM(ram)
		chips = append(chips, FilterChip{Label: "RAM: " + ram, RemoveURL: filterURL(next)})
	}
	if filters.PriceBucket != "" && filters.PriceBucket != "all" {
		next := filters
		next.SetPriceBucket("all")
		for _, b := range storefront.PriceBuckets() {
			if b.Value == filters.PriceBucket {
				chips = append(chips, FilterChip{Label: "Giá: " + b.Label, RemoveURL: filterURL(next)})
				break
			}
		}
	}
	return chips
}

func (h *ProductHandler) brandFacet(filters storefront.Filters, brands []models.Brand) []FacetOption {
	var opts []FacetOption
	for _, b := range brands {
		next := filters
		next.ToggleBrand(b.Slug)
		opts = append(opts, FacetOption{
			Label:   b.Name,
			Value:   b.Slug,
			Checked: contains(filters.Brands, b.Slug),
			URL:     filterURL(next),
		})
	}
	return opts
}

func (h *ProductHandler) categoryFacet(filters storefront.Filters, categories []models.Category) []FacetOption {
	var opts []FacetOption
	for _, c := range categories {
		next := filters
		next.ToggleCategory(c.Slug)
		opts = append(opts, FacetOption{
			Label:   c.Name,
			Value:   c.Slug,
			Checked: contains(filters.Categories, c.Slug),
			URL:     filterURL(next),
		})
	}
	return opts
}

func (h *ProductHandler) priceFacet(filters storefront.Filters) []FacetOption {
	var opts []FacetOption
	for _, b := range storefront.PriceBuckets() {
		next := filters
		next.SetPriceBucket(b.Value)
		opts = append(opts, FacetOption{
			Label:   b.Label,
			Value:   b.Value,
			Checked: filters.PriceBucket == b.Value,
			URL:     filterURL(next),
		})
	}
	return opts
}

func (h *ProductHandler) sortFacet(filters storefront.Filters) []FacetOption {
	var opts []FacetOption
	for _, s := range storefront.SortOptions() {
		next := filters
		next.SetSort(s.Value)
		opts = append(opts, FacetOption{
			Label:   s.Label,
			Value:   s.Value,
			Checked: filters.Sort == s.Value,
			URL:     filterURL(next),
		})
	}
	return opts
}

func (h *ProductHandler) ramFacet(filters storefront.Filters) []FacetOption {
	var opts []FacetOption
	for _, ram := range storefront.RAMOptions() {
		next := filters
		next.ToggleRAM(ram)
		opts = append(opts, FacetOption{
			Label:   ram,
			Value:   ram,
			Checked: contains(filters.RAM, ram),
			URL:     filterURL(next),
		})
	}
	return opts
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

// VariantOption is one storage/color button on the detail page. Unavailable
// combinations render disabled, never hidden.
type VariantOption struct {
	Value     string
	URL       string
	Available bool
	Selected  bool
}

// Detail renders a product page with the storage × color picker.
func (h *ProductHandler) Detail(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, SessionName)
	slug := r.PathValue("slug")

	detail, err := h.API.ProductBySlug(r.Context(), slug)
	if err != nil {
		slog.Error("Failed to load product", "slug", slug, "error", err)
		session.AddFlash(FlashMessage{Type: "error", Message: "Không thể tải thông tin sản phẩm"})
		session.Save(r, w)
		http.Redirect(w, r, "/products", http.StatusSeeOther)
		return
	}

	picker := storefront.NewVariantPicker(detail.Variants)
	if id := r.URL.Query().Get("variant"); id != "" {
		picker.SelectVariant(id)
	}

	selected, hasVariant := picker.Selected()

	var storageOpts, colorOpts []VariantOption
	for _, storage := range picker.Storages() {
		variant, ok := picker.Find(storage, selected.Color)
		opt := VariantOption{Value: storage, Available: ok, Selected: storage == selected.Storage}
		if ok {
			opt.URL = "/products/" + slug + "?variant=" + variant.ID
		}
		storageOpts = append(storageOpts, opt)
	}
	for _, color := range picker.Colors() {
		variant, ok := picker.Find(selected.Storage, color)
		opt := VariantOption{Value: color, Available: ok, Selected: color == selected.Color}
		if ok {
			opt.URL = "/products/" + slug + "?variant=" + variant.ID
		}
		colorOpts = append(colorOpts, opt)
	}

	tmpl := h.Templates.Get("product.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	data := map[string]interface{}{
		"Title":       detail.Name,
		"Product":     detail,
		"Selected":    selected,
		"HasVariant":  hasVariant,
		"StorageOpts": storageOpts,
		"ColorOpts":   colorOpts,
		"CsrfField":   csrf.TemplateField(r),
		"LoggedIn":    CurrentToken(session) != "",
		"Flashes":     GetFlash(session),
	}
	session.Save(r, w)
	tmpl.ExecuteTemplate(w, "layout.html", data)
}
