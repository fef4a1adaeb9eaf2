// GraphDrawer - Measurement Log Plotter
//
// GraphDrawer reads the text logs written by bench instruments, plots their
// channels as PNG images and converts them to CSV or XLSX.
package main

import (
	"os"

	"github.com/ccollicutt/graphdrawer/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
