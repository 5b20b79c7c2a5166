// Command strkey encodes, decodes, and validates strkey identifier strings,
// and manages a small local store of Ed25519 keys rendered as strkeys.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/future-tense/stellar-strkey/cidlink"
	"github.com/future-tense/stellar-strkey/keys"
	"github.com/future-tense/stellar-strkey/strkey"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, in io.Reader, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printUsage(errOut)
		return 2
	}

	switch args[0] {
	case "encode":
		return cmdEncode(args[1:], in, out, errOut)
	case "decode":
		return cmdDecode(args[1:], in, out, errOut)
	case "validate":
		return cmdValidate(args[1:], out, errOut)
	case "key":
		return cmdKey(args[1:], out, errOut)
	case "hash-cid":
		return cmdHashCID(args[1:], out, errOut)
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown command: %s\n\n", args[0])
		printUsage(errOut)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "strkey: checksummed base32 identifier CLI")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  strkey encode --type <t> [--hex <bytes>]")
	fmt.Fprintln(w, "  strkey decode --type <t> [<STRKEY>]")
	fmt.Fprintln(w, "  strkey validate --type <t> <STRKEY>")
	fmt.Fprintln(w, "  strkey key init --name <name> [--seed <strkey-or-hex>] [--force]")
	fmt.Fprintln(w, "  strkey key derive --from <name> --child <child> [--force]")
	fmt.Fprintln(w, "  strkey key list")
	fmt.Fprintln(w, "  strkey key export --name <name> [--child <child>]")
	fmt.Fprintln(w, "  strkey hash-cid <file>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - <t> is one of: ed25519_public_key, ed25519_secret_seed, pre_auth_tx, sha256_hash")
	fmt.Fprintln(w, "  - key init without --seed generates a fresh random seed")
	fmt.Fprintln(w, "  - keys are stored under ~/.strkey/keys/<name> (0600 seed files)")
	fmt.Fprintln(w, "  - hash-cid prints the file's X... strkey and its CIDv1 (raw, sha2-256)")
	fmt.Fprintln(w, "  - validate exits 0 for a valid strkey, 1 otherwise")
	fmt.Fprintln(w, "  - encode and decode read their input from stdin when it is not given as a flag or argument")
}

func parseKeyType(name string, errOut io.Writer) (strkey.KeyType, bool) {
	kt, err := strkey.KeyTypeFromString(name)
	if err != nil {
		fmt.Fprintf(errOut, "invalid --type: %v\n", err)
		return 0, false
	}
	return kt, true
}

// readInput drains in and trims surrounding whitespace, so piped input may
// carry a trailing newline.
func readInput(in io.Reader) (string, error) {
	b, err := io.ReadAll(in)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

func cmdEncode(args []string, in io.Reader, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var typeName string
	var hexData string
	fs.StringVar(&typeName, "type", "", "Key type name")
	fs.StringVar(&hexData, "hex", "", "Identifier bytes as hex")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if typeName == "" {
		fmt.Fprintln(errOut, "usage: strkey encode --type <t> [--hex <bytes>]")
		return 2
	}
	kt, ok := parseKeyType(typeName, errOut)
	if !ok {
		return 2
	}
	if hexData == "" {
		var err error
		hexData, err = readInput(in)
		if err != nil {
			fmt.Fprintf(errOut, "read stdin: %v\n", err)
			return 1
		}
	}
	data, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(hexData), "0x"))
	if err != nil {
		fmt.Fprintf(errOut, "invalid hex input: %v\n", err)
		return 2
	}
	encoded, err := strkey.Encode(kt, data)
	if err != nil {
		fmt.Fprintf(errOut, "encode: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintln(out, encoded)
	return 0
}

func cmdDecode(args []string, in io.Reader, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var typeName string
	fs.StringVar(&typeName, "type", "", "Key type name")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if typeName == "" || fs.NArg() > 1 {
		fmt.Fprintln(errOut, "usage: strkey decode --type <t> [<STRKEY>]")
		return 2
	}
	kt, ok := parseKeyType(typeName, errOut)
	if !ok {
		return 2
	}
	var input any
	if fs.NArg() == 1 {
		input = fs.Arg(0)
	} else {
		s, err := readInput(in)
		if err != nil {
			fmt.Fprintf(errOut, "read stdin: %v\n", err)
			return 1
		}
		input = s
	}
	data, err := strkey.DecodeAny(kt, input)
	if err != nil {
		if id := strkey.RuleID(err); id != "" {
			fmt.Fprintf(errOut, "decode: %v (%s)\n", err, id)
		} else {
			fmt.Fprintf(errOut, "decode: %v\n", err)
		}
		return 1
	}
	_, _ = fmt.Fprintln(out, hex.EncodeToString(data))
	return 0
}

func cmdValidate(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var typeName string
	fs.StringVar(&typeName, "type", "", "Key type name")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if typeName == "" || fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: strkey validate --type <t> <STRKEY>")
		return 2
	}
	kt, ok := parseKeyType(typeName, errOut)
	if !ok {
		return 2
	}
	if !strkey.IsValid(kt, fs.Arg(0)) {
		_, _ = fmt.Fprintln(out, "invalid")
		return 1
	}
	_, _ = fmt.Fprintln(out, "valid")
	return 0
}

func cmdKey(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "usage: strkey key <subcommand> ...")
		fmt.Fprintln(errOut, "subcommands: init, derive, list, export")
		return 2
	}
	switch args[0] {
	case "init":
		return cmdKeyInit(args[1:], out, errOut)
	case "derive":
		return cmdKeyDerive(args[1:], out, errOut)
	case "list":
		return cmdKeyList(args[1:], out, errOut)
	case "export":
		return cmdKeyExport(args[1:], out, errOut)
	default:
		fmt.Fprintf(errOut, "unknown key subcommand: %s\n", args[0])
		return 2
	}
}

func cmdKeyInit(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("key init", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var name string
	var seedString string
	var force bool
	fs.StringVar(&name, "name", "", "Key identifier")
	fs.StringVar(&seedString, "seed", "", "Seed as S... strkey or 64 hex chars (random if omitted)")
	fs.BoolVar(&force, "force", false, "Overwrite an existing key")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if name == "" {
		fmt.Fprintln(errOut, "usage: strkey key init --name <name> [--seed <strkey-or-hex>] [--force]")
		return 2
	}

	var seed []byte
	if seedString == "" {
		seed = make([]byte, 32)
		if _, err := rand.Read(seed); err != nil {
			fmt.Fprintf(errOut, "generate seed: %v\n", err)
			return 1
		}
	} else {
		var err error
		seed, err = keys.ParseSeed(seedString)
		if err != nil {
			fmt.Fprintf(errOut, "invalid --seed: %v\n", err)
			return 2
		}
	}

	ks, err := keys.CreateKeyStore("")
	if err != nil {
		fmt.Fprintf(errOut, "open key store: %v\n", err)
		return 1
	}
	address, path, err := ks.InitializeRootKey(name, seed, force)
	if err != nil {
		fmt.Fprintf(errOut, "init key: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintf(out, "%s\t%s\n", address, path)
	return 0
}

func cmdKeyDerive(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("key derive", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var from string
	var child string
	var force bool
	fs.StringVar(&from, "from", "", "Root key identifier")
	fs.StringVar(&child, "child", "", "Child key name")
	fs.BoolVar(&force, "force", false, "Overwrite an existing child key")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if from == "" || child == "" {
		fmt.Fprintln(errOut, "usage: strkey key derive --from <name> --child <child> [--force]")
		return 2
	}

	ks, err := keys.CreateKeyStore("")
	if err != nil {
		fmt.Fprintf(errOut, "open key store: %v\n", err)
		return 1
	}
	address, path, err := ks.DeriveChildKey(from, child, force)
	if err != nil {
		fmt.Fprintf(errOut, "derive key: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintf(out, "%s\t%s\n", address, path)
	return 0
}

func cmdKeyList(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("key list", flag.ContinueOnError)
	fs.SetOutput(errOut)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	ks, err := keys.CreateKeyStore("")
	if err != nil {
		fmt.Fprintf(errOut, "open key store: %v\n", err)
		return 1
	}
	entries, err := ks.ListKeys()
	if err != nil {
		fmt.Fprintf(errOut, "list keys: %v\n", err)
		return 1
	}
	for _, entry := range entries {
		_, _ = fmt.Fprintln(out, entry.Identifier)
		for _, child := range entry.Children {
			_, _ = fmt.Fprintf(out, "  %s\n", child)
		}
	}
	return 0
}

func cmdKeyExport(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("key export", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var name string
	var child string
	fs.StringVar(&name, "name", "", "Key identifier")
	fs.StringVar(&child, "child", "", "Child key name (root key if omitted)")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if name == "" {
		fmt.Fprintln(errOut, "usage: strkey key export --name <name> [--child <child>]")
		return 2
	}

	ks, err := keys.CreateKeyStore("")
	if err != nil {
		fmt.Fprintf(errOut, "open key store: %v\n", err)
		return 1
	}
	address, err := ks.ExportKey(name, child)
	if err != nil {
		fmt.Fprintf(errOut, "export key: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintln(out, address)
	return 0
}

func cmdHashCID(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("hash-cid", flag.ContinueOnError)
	fs.SetOutput(errOut)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: strkey hash-cid <file>")
		return 2
	}

	b, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "read file: %v\n", err)
		return 1
	}
	s, err := cidlink.StrkeyForData(b)
	if err != nil {
		fmt.Fprintf(errOut, "hash: %v\n", err)
		return 1
	}
	c, err := cidlink.CIDForData(b)
	if err != nil {
		fmt.Fprintf(errOut, "cid: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintf(out, "%s\t%s\n", s, c)
	return 0
}
