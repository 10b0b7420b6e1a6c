// Command bondctl prices UMOA securities offline and drives the bonds API.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
