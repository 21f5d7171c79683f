package cli

import (
	"fmt"
	"io"
)

// For proper builds, these variables should be set via ldflags.
var version = "development"
var hash = "unknown"

func showVersion(w io.Writer) {
	fmt.Fprintf(w, "%s (%s)\n", version, hash)
}
