// Package lifecycle holds shared timing constants for component startup
// and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of long-running components.
const DefaultTimeout = 10 * time.Second
