// Package clipboard gives access to the system clipboard.
package clipboard

import (
	"github.com/atotto/clipboard"
)

// Clipboard can read text from and write text to a clipboard.
type Clipboard interface {
	Read() (string, error)
	Write(text string) error
}

// System is the system clipboard.
type System struct{}

// Read returns the text currently in the clipboard.
func (System) Read() (string, error) {
	return clipboard.ReadAll()
}

// Write replaces the clipboard's contents with text.
func (System) Write(text string) error {
	return clipboard.WriteAll(text)
}

// Supported reports whether a clipboard utility is available on this system.
func Supported() bool {
	return !clipboard.Unsupported
}
