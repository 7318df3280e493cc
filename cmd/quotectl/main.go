// Command quotectl runs the quote pipeline offline: extraction, status
// derivation and the logo pricing cross-check, without a server or a store.
package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
