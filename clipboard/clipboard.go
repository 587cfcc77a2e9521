// Package clipboard provides system clipboard access.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/fwojciec/gistview"
)

// Ensure System implements the Clipboard interface.
var _ gistview.Clipboard = (*System)(nil)

// System implements Clipboard using the platform clipboard
// (pbcopy, xclip/xsel/wl-copy, or the Windows clipboard API).
type System struct{}

// NewSystem returns a new System clipboard.
func NewSystem() *System {
	return &System{}
}

// Available reports whether a clipboard utility was found on this system.
func (s *System) Available() bool {
	return !clipboard.Unsupported
}

// Copy writes content to the system clipboard.
func (s *System) Copy(content string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard: no clipboard utility available")
	}
	if err := clipboard.WriteAll(content); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	return nil
}
