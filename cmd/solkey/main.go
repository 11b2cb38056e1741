// solkey is a command-line toolkit for Solana keypair files.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/solkit/solkey/internal/convert"
	"github.com/solkit/solkey/internal/log"
	"github.com/solkit/solkey/pkg/keypair"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	// Parse global flags that appear before the subcommand.
	verbose := false
	jsonLogs := false

	args := os.Args[1:]
	for len(args) > 0 {
		switch {
		case args[0] == "--verbose" || args[0] == "-v":
			verbose = true
			args = args[1:]
		case args[0] == "--json-logs":
			jsonLogs = true
			args = args[1:]
		default:
			goto dispatch
		}
	}

dispatch:

	if verbose {
		log.Init("debug", jsonLogs)
	} else {
		log.Init("error", jsonLogs)
	}

	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	cmd := args[0]
	args = args[1:]

	switch cmd {
	case "encode":
		cmdEncode(args)
	case "decode":
		cmdDecode(args)
	case "inspect":
		cmdInspect(args)
	case "generate":
		cmdGenerate(args)
	case "fingerprint":
		cmdFingerprint(args)
	case "help", "--help", "-h":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: solkey [global flags] <command> [flags]

Global flags:
  --verbose, -v       Enable debug logging (stderr)
  --json-logs         Emit logs as JSON lines

Commands:
  encode <file>               Print the base58 form of a keypair JSON file
  decode <base58> [-o file]   Convert a base58 key back to a JSON byte array
  inspect <file>              Show length, public key, and fingerprint
  generate [-o file]          Generate a new keypair as a JSON byte array
  fingerprint <file>          Print the keypair fingerprint
  help                        Show this help
`)
}

func cmdEncode(args []string) {
	if len(args) != 1 {
		fatal("encode takes exactly one file argument")
	}
	encoded, err := convert.Convert(args[0])
	if err != nil {
		fatal("%v", err)
	}
	fmt.Println(encoded)
}

func cmdDecode(args []string) {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	out := fs.String("o", "", "write the JSON array to a file instead of stdout")
	fs.Parse(args)
	if fs.NArg() != 1 {
		fatal("decode takes exactly one base58 argument")
	}

	kp, err := keypair.FromBase58(strings.TrimSpace(fs.Arg(0)))
	if err != nil {
		fatal("%v", err)
	}
	logger := log.WithComponent("decode")
	logger.Debug().Int("bytes", len(kp)).Str("fingerprint", kp.Fingerprint()).Msg("decoded keypair")

	if *out != "" {
		if _, err := os.Stat(*out); err == nil {
			fatal("refusing to overwrite %s", *out)
		}
		if err := kp.WriteFile(*out); err != nil {
			fatal("%v", err)
		}
		return
	}
	data, err := kp.ToJSON()
	if err != nil {
		fatal("%v", err)
	}
	fmt.Println(string(data))
}

func cmdInspect(args []string) {
	if len(args) != 1 {
		fatal("inspect takes exactly one file argument")
	}
	kp, err := keypair.ReadFile(args[0])
	if err != nil {
		fatal("%v", err)
	}

	fmt.Printf("Length:       %d bytes\n", len(kp))
	fmt.Printf("Fingerprint:  %s\n", kp.Fingerprint())
	if pub, err := kp.PublicKey(); err == nil {
		fmt.Printf("Public key:   %s\n", keypair.Keypair(pub).Base58())
	} else {
		fmt.Printf("Public key:   n/a (%v)\n", err)
	}
}

func cmdGenerate(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	out := fs.String("o", "", "write the keypair to a file instead of stdout")
	fs.Parse(args)
	if fs.NArg() != 0 {
		fatal("generate takes no positional arguments")
	}

	kp, err := keypair.Generate(nil)
	if err != nil {
		fatal("%v", err)
	}
	logger := log.WithComponent("generate")
	logger.Debug().Str("fingerprint", kp.Fingerprint()).Msg("generated keypair")

	if *out != "" {
		if _, err := os.Stat(*out); err == nil {
			fatal("refusing to overwrite %s", *out)
		}
		if err := kp.WriteFile(*out); err != nil {
			fatal("%v", err)
		}
		fmt.Printf("Wrote %s (fingerprint %s)\n", *out, kp.Fingerprint())
		return
	}
	data, err := kp.ToJSON()
	if err != nil {
		fatal("%v", err)
	}
	fmt.Println(string(data))
}

func cmdFingerprint(args []string) {
	if len(args) != 1 {
		fatal("fingerprint takes exactly one file argument")
	}
	kp, err := keypair.ReadFile(args[0])
	if err != nil {
		fatal("%v", err)
	}
	fmt.Println(kp.Fingerprint())
}

// ── Error helper ────────────────────────────────────────────────────────

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
