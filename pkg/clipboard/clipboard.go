// Package clipboard copies emoji glyphs to the system clipboard, falling
// back to an OSC 52 escape written to the terminal when no native
// clipboard utility is available (remote shells, minimal containers).
package clipboard

import (
	"os"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

func Copy(text string) error {
	if err := clipboard.WriteAll(text); err == nil {
		return nil
	}
	_, err := osc52.New(text).WriteTo(os.Stderr)
	return err
}
