package client

// Wire types mirror the storefront API's JSON records. Timestamps stay as
// strings: the server emits bare ISO 8601 without a zone designator, which
// time.Time refuses to parse.

// User is the authenticated profile record.
type User struct {
	ID            int64   `json:"id"`
	Username      string  `json:"username"`
	Email         string  `json:"email"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	FullName      string  `json:"full_name"`
	AvatarURL     string  `json:"avatar_url"`
	Role          string  `json:"role"`
	IsVerified    bool    `json:"is_verified"`
	Phone         string  `json:"phone,omitempty"`
	WalletBalance float64 `json:"wallet_balance,omitempty"`
	CreatedAt     string  `json:"created_at,omitempty"`
	LastLogin     string  `json:"last_login,omitempty"`
}

// Product is the catalog record snapshotted into cart line entries.
type Product struct {
	ID                 int64          `json:"id"`
	Name               string         `json:"name"`
	Slug               string         `json:"slug"`
	SKU                string         `json:"sku"`
	ShortDescription   string         `json:"short_description"`
	Description        string         `json:"description,omitempty"`
	Price              float64        `json:"price"`
	ComparePrice       float64        `json:"compare_price,omitempty"`
	DiscountPercentage float64        `json:"discount_percentage,omitempty"`
	ThumbnailURL       string         `json:"thumbnail_url"`
	InStock            bool           `json:"in_stock"`
	StockQuantity      *int           `json:"stock_quantity"`
	AverageRating      float64        `json:"average_rating"`
	ReviewCount        int            `json:"review_count"`
	Brand              string         `json:"brand"`
	IsFeatured         bool           `json:"is_featured"`
	IsNew              bool           `json:"is_new"`
	Categories         []Category     `json:"categories,omitempty"`
	Specifications     map[string]any `json:"specifications,omitempty"`
}

type Category struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Description  string `json:"description"`
	ImageURL     string `json:"image_url"`
	Icon         string `json:"icon"`
	IsActive     bool   `json:"is_active"`
	ProductCount int    `json:"product_count"`
}

// ServerCartItem is a cart line entry as the server stores it.
type ServerCartItem struct {
	ID        int64   `json:"id"`
	ProductID int64   `json:"product_id"`
	Product   Product `json:"product"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

// CartSummary is the server's derived cart totals.
type CartSummary struct {
	ItemCount int     `json:"item_count"`
	Subtotal  float64 `json:"subtotal"`
	Shipping  float64 `json:"shipping"`
	Tax       float64 `json:"tax"`
	Total     float64 `json:"total"`
}

// ServerCart is the server-side cart, read back only on explicit sync.
type ServerCart struct {
	Items   []ServerCartItem `json:"items"`
	Summary CartSummary      `json:"summary"`
}

type Order struct {
	ID              int64       `json:"id"`
	OrderNumber     string      `json:"order_number"`
	Status          string      `json:"status"`
	Subtotal        float64     `json:"subtotal"`
	DiscountAmount  float64     `json:"discount_amount"`
	ShippingCost    float64     `json:"shipping_cost"`
	TaxAmount       float64     `json:"tax_amount"`
	TotalAmount     float64     `json:"total_amount"`
	PaymentMethod   string      `json:"payment_method"`
	PaymentStatus   string      `json:"payment_status"`
	ShippingAddress string      `json:"shipping_address"`
	ItemCount       int         `json:"item_count"`
	Items           []OrderItem `json:"items,omitempty"`
	CreatedAt       string      `json:"created_at"`
	ShippedAt       string      `json:"shipped_at,omitempty"`
	DeliveredAt     string      `json:"delivered_at,omitempty"`
}

type OrderItem struct {
	ID           int64   `json:"id"`
	ProductID    int64   `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductSKU   string  `json:"product_sku"`
	ProductImage string  `json:"product_image"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unit_price"`
	Discount     float64 `json:"discount"`
	Subtotal     float64 `json:"subtotal"`
}

type Address struct {
	ID           int64  `json:"id,omitempty"`
	AddressType  string `json:"address_type"`
	FullName     string `json:"full_name"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country"`
	IsDefault    bool   `json:"is_default"`
}

type Wallet struct {
	Balance          float64 `json:"balance"`
	FormattedBalance string  `json:"formatted_balance"`
}

type Review struct {
	ID                 int64       `json:"id"`
	Rating             int         `json:"rating"`
	Title              string      `json:"title"`
	Comment            string      `json:"comment"`
	IsVerifiedPurchase bool        `json:"is_verified_purchase"`
	HelpfulCount       int         `json:"helpful_count"`
	User               *ReviewUser `json:"user"`
	CreatedAt          string      `json:"created_at"`
}

type ReviewUser struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
}

type WishlistItem struct {
	ID        int64   `json:"id"`
	ProductID int64   `json:"product_id"`
	Product   Product `json:"product"`
	CreatedAt string  `json:"created_at"`
}

// Pagination is the server's page metadata for list endpoints.
type Pagination struct {
	Page       int  `json:"page"`
	PerPage    int  `json:"per_page"`
	TotalPages int  `json:"total_pages"`
	TotalItems int  `json:"total_items"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}
