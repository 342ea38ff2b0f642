package retry

import (
	"fmt"
	"time"
)

// Config holds the backoff timing of the scheduler.
type Config struct {
	// SuccessInterval is the wait after an attempt that returned without error.
	SuccessInterval time.Duration `mapstructure:"success_interval" default:"3s"`
	// FailureInterval is the wait after an attempt that failed.
	FailureInterval time.Duration `mapstructure:"failure_interval" default:"12s"`
}

// Validate checks that both intervals are positive.
func (c Config) Validate() error {
	if c.SuccessInterval <= 0 {
		return fmt.Errorf("success interval must be positive, got %s", c.SuccessInterval)
	}
	if c.FailureInterval <= 0 {
		return fmt.Errorf("failure interval must be positive, got %s", c.FailureInterval)
	}
	return nil
}
