package models

// User is the authenticated customer as returned by /auth/me.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

type Brand struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
	Logo string `json:"logo"`
}

type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Image string `json:"image"`
}

// Product is read-only from the storefront's perspective; the catalog is
// maintained by an external admin process.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	Brand       Brand    `json:"brand"`
	Category    Category `json:"category"`
	Images      []string `json:"images"`
	MinPrice    float64  `json:"minPrice"`
	MaxPrice    float64  `json:"maxPrice"`
	IsActive    bool     `json:"isActive"`
	IsFeatured  bool     `json:"isFeatured"`
}

// ProductVariant is one purchasable configuration (color + storage) of a
// product, with its own price and stock.
type ProductVariant struct {
	ID       string  `json:"id"`
	SKU      string  `json:"sku"`
	Color    string  `json:"color"`
	Storage  string  `json:"storage"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	IsActive bool    `json:"isActive"`
}

type ProductDetail struct {
	Product
	Variants []ProductVariant `json:"variants"`
}

// CartItem is one cart line, keyed by variant id. Product fields are
// denormalized display copies supplied by the cart endpoint.
type CartItem struct {
	VariantID   string  `json:"variantId"`
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	SKU         string  `json:"sku"`
	Color       string  `json:"color"`
	Storage     string  `json:"storage"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Quantity    int     `json:"quantity"`
	Image       string  `json:"image"`
}

type Cart struct {
	ID    string     `json:"id"`
	Items []CartItem `json:"items"`
}

type ShippingAddress struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	District string `json:"district"`
	Ward     string `json:"ward"`
}

// Paginated is the envelope the listing endpoints wrap their results in.
type Paginated[T any] struct {
	Data       []T   `json:"data"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}
