// keypair-to-base58 prints the base58 form of a Solana keypair
// JSON file (an array of byte values, as written by solana-keygen).
//
// Usage:
//
//	keypair-to-base58 <path_to_keypair.json>
package main

import (
	"os"

	"github.com/solkit/solkey/internal/convert"
)

func main() {
	os.Exit(convert.Run(os.Args[1:], os.Stdout, os.Stderr))
}
