// Package lifecycle holds shared start and stop tuning.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of each long-lived component.
const DefaultTimeout = 10 * time.Second
