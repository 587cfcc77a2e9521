package mock

import "github.com/fwojciec/gistview"

// Compile-time interface verification.
var _ gistview.Clipboard = (*Clipboard)(nil)

// Clipboard is a mock implementation of gistview.Clipboard.
type Clipboard struct {
	CopyFn func(content string) error
}

func (c *Clipboard) Copy(content string) error {
	return c.CopyFn(content)
}
