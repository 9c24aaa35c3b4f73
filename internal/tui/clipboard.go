package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// CopyToClipboard writes text to the system clipboard. It fails on hosts
// without a clipboard provider (xclip, xsel, wl-copy and friends).
func CopyToClipboard(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}
