package main

import (
	"github.com/arthur-debert/rxpipe/cmd/rxpipe"
)

func main() {
	rxpipe.Execute()
}
