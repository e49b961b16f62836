package server

import "time"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables the check.
	ApiKey string `mapstructure:"api_key" default:""`
	// RunIntervalSeconds schedules a reconciliation pass every N seconds. Zero disables the schedule.
	RunIntervalSeconds int `mapstructure:"run_interval_seconds" default:"0"`
}

// ScheduleEnabled reports whether periodic reconciliation passes are configured.
func (c Config) ScheduleEnabled() bool {
	return c.RunIntervalSeconds > 0
}

// RunInterval returns the configured schedule interval.
func (c Config) RunInterval() time.Duration {
	if c.RunIntervalSeconds <= 0 {
		return 0
	}
	return time.Duration(c.RunIntervalSeconds) * time.Second
}
