package config

import "time"

// Defaults returns the built-in configuration used for any field no other
// source has set.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			RequestTimeout: 15 * time.Second,
		},
		Workers: Workers{
			SyncInterval:  15 * time.Minute,
			OnDemandDelay: 2 * time.Second,
			IdleAfter:     30 * time.Second,
			BackoffMin:    10 * time.Second,
			BackoffMax:    5 * time.Minute,
			MaxRetries:    5,
		},
	}
}
