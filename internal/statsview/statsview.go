//go:build statsview

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

const Address = "localhost:12620"
const path = "/debug/statsview"

// Launch starts the stats server on its own goroutine.
func Launch(output io.Writer) {
	go func() {
		viewer.SetConfiguration(viewer.WithAddr(Address))
		statsview.New().Start()
	}()
	fmt.Fprintf(output, "statsview: serving at http://%s%s\n", Address, path)
}

// Available reports whether the stats server was compiled in.
func Available() bool { return true }
