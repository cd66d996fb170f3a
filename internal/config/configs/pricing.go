package configs

// Pricing configures the marketplace platform fee applied on top of every
// order subtotal.
type Pricing struct {
	// FeeRate is the platform fee as a fraction of the subtotal. The fee
	// is rounded half up to the nearest minor currency unit.
	FeeRate float64 `env:"FEE_RATE" envDefault:"0.15"`
}
