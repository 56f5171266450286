package main

import (
	"context"
	"fmt"
	"os"

	"github.com/arklib/hstore/errx"
)

func main() {
	err := newRootCmd().ExecuteContext(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", errx.Wrap(err).FullError())
		os.Exit(errx.Code(err))
	}
}
