//go:build !statsview

package statsview

import "io"

const Address = ""

// Launch does nothing without the statsview build tag.
func Launch(_ io.Writer) {}

// Available reports whether the stats server was compiled in.
func Available() bool { return false }
