// Package lifecycle holds the donation state machine and the shared start/stop timeout
// used by infrastructure hooks.
package lifecycle

import "time"

// DefaultTimeout bounds fx start and stop hooks.
const DefaultTimeout = 10 * time.Second
