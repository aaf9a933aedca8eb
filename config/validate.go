package config

import (
	"fmt"
	"time"
)

// Validate checks required settings and applies queue-engine defaults.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.TimeoutSeconds <= 0 {
		c.Server.TimeoutSeconds = 30
	}
	if c.Database.Host == "" {
		return fmt.Errorf("database.host is required")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("database.dbname is required")
	}

	q := &c.Queue
	if q.CutOffMinutes <= 0 {
		q.CutOffMinutes = 15
	}
	if q.NoShowMinutes <= 0 {
		q.NoShowMinutes = 15
	}
	if q.AdvanceLeadMinutes <= 0 {
		q.AdvanceLeadMinutes = 60
	}
	if q.ReservationTTLSeconds <= 0 {
		q.ReservationTTLSeconds = 120
	}
	if q.BookingRetryAttempts <= 0 {
		q.BookingRetryAttempts = 3
	}
	if q.DelayTickSeconds <= 0 {
		q.DelayTickSeconds = 60
	}
	if q.SweepTickSeconds <= 0 {
		q.SweepTickSeconds = 30
	}
	if q.ReaperTickSeconds <= 0 {
		q.ReaperTickSeconds = 30
	}

	return nil
}

// ReservationTTL returns the reservation time-to-live as a duration.
func (q QueueConfig) ReservationTTL() time.Duration {
	return time.Duration(q.ReservationTTLSeconds) * time.Second
}

// CutOff returns the confirmation cutoff window as a duration.
func (q QueueConfig) CutOff() time.Duration {
	return time.Duration(q.CutOffMinutes) * time.Minute
}

// NoShow returns the no-show window as a duration.
func (q QueueConfig) NoShow() time.Duration {
	return time.Duration(q.NoShowMinutes) * time.Minute
}

// AdvanceLead returns the minimum advance-booking lead time as a duration.
func (q QueueConfig) AdvanceLead() time.Duration {
	return time.Duration(q.AdvanceLeadMinutes) * time.Minute
}
