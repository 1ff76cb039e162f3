// Command scaledemo exercises the scaledraw engine on image files.
package main

import (
	"fmt"
	"os"

	"github.com/gogpu/scaledraw/cmd/scaledemo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
