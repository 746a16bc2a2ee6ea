// Command rxpipe-manpage writes the rxpipe man pages, one per command, to
// the directory given as its argument or to stdout for the root page.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/rxpipe/cmd/rxpipe"
	"github.com/arthur-debert/rxpipe/internal/version"
)

func main() {
	rootCmd := rxpipe.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "RXPIPE",
		Section: "1",
		Source:  "rxpipe " + version.Version,
		Manual:  "rxpipe manual",
	}

	var err error
	if len(os.Args) > 1 {
		if err = os.MkdirAll(os.Args[1], 0755); err == nil {
			err = doc.GenManTree(rootCmd, header, os.Args[1])
		}
	} else {
		err = doc.GenMan(rootCmd, header, os.Stdout)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
