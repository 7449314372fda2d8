package browser

import (
	"fmt"

	"tinta/internal/ports"
)

// Unavailable implements ports.URLOpener where no local browser can be
// reached, such as an SSH session. Open always fails with reason.
type Unavailable struct {
	reason string
}

// Verify interface compliance at compile time
var _ ports.URLOpener = (*Unavailable)(nil)

// NewUnavailable creates an opener that refuses every URL
func NewUnavailable(reason string) *Unavailable {
	return &Unavailable{reason: reason}
}

// Open implements ports.URLOpener
func (u *Unavailable) Open(rawURL string) error {
	return fmt.Errorf("cannot open %s: %s", rawURL, u.reason)
}
