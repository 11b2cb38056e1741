// Package convert implements the keypair-file-to-base58 conversion
// flow behind the keypair-to-base58 command.
package convert

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/solkit/solkey/pkg/keypair"
)

// Usage is printed to stdout when the argument count is wrong.
const Usage = "Usage: keypair-to-base58 <path_to_keypair.json>"

// Sentinel errors for the failure classes that get dedicated
// messages. Everything else is reported with its own text.
var (
	ErrFileNotFound = errors.New("file not found")
	ErrInvalidJSON  = errors.New("invalid JSON")
)

// Convert reads the keypair JSON file at path and returns its
// base58-encoded form.
func Convert(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	if !json.Valid(data) {
		return "", fmt.Errorf("%w in %s", ErrInvalidJSON, path)
	}
	kp, err := keypair.FromJSON(data)
	if err != nil {
		return "", err
	}
	return kp.Base58(), nil
}

// Run drives the full CLI contract: argument validation, conversion,
// and error reporting. It returns the process exit code. The first
// error aborts the run; nothing is retried.
func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(stdout, Usage)
		return 1
	}
	path := args[0]

	encoded, err := Convert(path)
	if err != nil {
		switch {
		case errors.Is(err, ErrFileNotFound):
			fmt.Fprintf(stderr, "Error: File not found: %s\n", path)
		case errors.Is(err, ErrInvalidJSON):
			fmt.Fprintf(stderr, "Error: Invalid JSON in %s\n", path)
		default:
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}

	fmt.Fprintln(stdout, encoded)
	return 0
}
