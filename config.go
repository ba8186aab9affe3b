package checkoutkit

import "github.com/dmitrymomot/checkoutkit/pkg/config"

// Config carries the environment-backed defaults of a checkout form.
type Config struct {
	// SubmitText is the label of the submit affordance.
	SubmitText string `env:"CHECKOUT_SUBMIT_TEXT" envDefault:"Submit"`

	// TimeLocation names the IANA location the expiry month boundary is
	// evaluated in. A card valid through August is accepted until August
	// ends in this location.
	TimeLocation string `env:"CHECKOUT_TIME_LOCATION" envDefault:"UTC"`
}

// LoadConfig reads Config from the environment, consulting a .env file
// first if one exists. The result is cached per process.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
