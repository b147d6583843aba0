package configs

// Pricing holds the request bounds accepted by the campaign builder. The
// pricing rules themselves are code, not configuration, so a stored price
// can always be traced to a policy version.
type Pricing struct {
	MaxReach    int `env:"MAX_REACH" envDefault:"100000"`
	MaxDuration int `env:"MAX_DURATION" envDefault:"365"`
}
