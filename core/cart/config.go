package cart

// Config holds the pricing policy used to derive totals.
type Config struct {
	// ShippingFee is the flat shipping charge in currency units.
	ShippingFee float64 `env:"CART_SHIPPING_FEE" envDefault:"9.99"`
	// FreeShippingThreshold waives shipping once the subtotal reaches it.
	FreeShippingThreshold float64 `env:"CART_FREE_SHIPPING_THRESHOLD" envDefault:"100"`
	// TaxRate is the flat tax fraction applied to the subtotal.
	TaxRate float64 `env:"CART_TAX_RATE" envDefault:"0.08"`
}

func defaultConfig() Config {
	return Config{
		ShippingFee:           9.99,
		FreeShippingThreshold: 100,
		TaxRate:               0.08,
	}
}
