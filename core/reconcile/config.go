package reconcile

import "time"

// Config holds reconciliation settings.
type Config struct {
	// Threshold is the minimum acceptable stock level. Items strictly below it are replenished.
	Threshold int `mapstructure:"threshold" default:"10"`
	// PassTimeoutSeconds bounds one pass (snapshot fetch plus inserts). Zero disables the bound.
	PassTimeoutSeconds int `mapstructure:"pass_timeout_seconds" default:"60"`
}

// PassTimeout returns the pass bound as a duration.
func (c Config) PassTimeout() time.Duration {
	if c.PassTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.PassTimeoutSeconds) * time.Second
}
