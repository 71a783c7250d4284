package handlers

import (
	"html/template"
	"log/slog"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
)

// TemplateCache holds parsed templates
type TemplateCache struct {
	cache map[string]*template.Template
	mu    sync.RWMutex
	funcs template.FuncMap
}

func NewTemplateCache() *TemplateCache {
	return &TemplateCache{
		cache: make(map[string]*template.Template),
		funcs: make(template.FuncMap),
	}
}

func (tc *TemplateCache) AddFunc(name string, fn interface{}) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	tc.funcs[name] = fn
}

// Load parses all templates in the templates/ dir
func (tc *TemplateCache) Load(dir string) error {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	// Add global template functions
	tc.funcs["formatPrice"] = FormatPrice
	tc.funcs["formatDate"] = func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("02/01/2006 15:04")
	}
	tc.funcs["statusLabel"] = StatusLabel
	tc.funcs["pageLink"] = pageURL
	tc.funcs["prevPage"] = func(currentPage int) int { return currentPage - 1 }
	tc.funcs["nextPage"] = func(currentPage int) int { return currentPage + 1 }

	// Find all HTML files
	files, err := filepath.Glob(filepath.Join(dir, "*.html"))
	if err != nil {
		return err
	}
	layout := filepath.Join(dir, "layout.html")
	for _, file := range files {
		name := filepath.Base(file)
		if name == "layout.html" {
			continue
		}
		tmpl, err := template.New(name).Funcs(tc.funcs).ParseFiles(layout, file)
		if err != nil {
			slog.Error("Failed to parse template", "file", file, "error", err)
			return err
		}
		tc.cache[name] = tmpl
		slog.Debug("Cached template", "name", name)
	}
	return nil
}

func (tc *TemplateCache) Get(name string) *template.Template {
	tc.mu.RLock()
	defer tc.mu.RUnlock()
	return tc.cache[name]
}

// FormatPrice renders a VND amount with dot thousand separators,
// e.g. 25000000 -> "25.000.000 ₫".
func FormatPrice(price float64) string {
	n := int64(math.Round(price))
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	digits := strconv.FormatInt(n, 10)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)
	return sign + strings.Join(groups, ".") + " ₫"
}

var statusLabels = map[string]string{
	"PENDING":   "Chờ xác nhận",
	"PAID":      "Đã thanh toán",
	"SHIPPING":  "Đang giao hàng",
	"COMPLETED": "Hoàn thành",
	"CANCELED":  "Đã hủy",
}

// StatusLabel translates an order status for display; unknown statuses pass
// through untouched.
func StatusLabel(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status
}
