// Command bindump decodes a binary file against one of the registered sample
// schemas and prints the decoded mapping as text or JSON. With no file
// argument it decodes the schema's built in sample message, which makes
// "bindump -schema license" a quick way to see what a format looks like.
package main

import (
	"bytes"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	osfs "github.com/gopherfs/fs/io/os"
	"github.com/pkg/errors"

	"github.com/bytefield/binform/dump"
	"github.com/bytefield/binform/samples"
)

var (
	schemaName = flag.String("schema", "", "name of the registered schema to decode with")
	format     = flag.String("format", "text", "output format: text or json")
	indent     = flag.Bool("indent", false, "indent JSON output")
	hexIn      = flag.Bool("hex", false, "treat the input file as hex text, whitespace ignored")
	roundtrip  = flag.Bool("roundtrip", false, "re-encode the decoded mapping and compare it against the input")
	list       = flag.Bool("list", false, "list the registered schemas and exit")
)

func main() {
	flag.Parse()

	if *list {
		for _, name := range samples.Names() {
			s, _ := samples.Get(name)
			fmt.Printf("%-12s %s\n", name, s.Doc)
		}
		return
	}

	if *schemaName == "" {
		exitf("usage: bindump -schema <name> [-format text|json] [-indent] [-hex] [-roundtrip] [file]")
	}
	sample, ok := samples.Get(*schemaName)
	if !ok {
		exitf("unknown schema %q, -list shows the registered ones", *schemaName)
	}

	data := sample.Wire
	if flag.NArg() > 0 {
		var err error
		data, err = readInput(flag.Arg(0), *hexIn)
		if err != nil {
			exitf("problem reading input: %s", err)
		}
	}

	m, err := sample.Schema.Parse(data)
	if err != nil {
		exitf("problem decoding as %s: %s", *schemaName, err)
	}

	switch *format {
	case "text":
		if err := dump.TextWriter(os.Stdout, m); err != nil {
			exitf("problem writing dump: %s", err)
		}
	case "json":
		var opts []dump.MarshalOption
		if *indent {
			opts = append(opts, dump.WithIndent("  "))
		}
		if err := dump.JSONWriter(os.Stdout, m, opts...); err != nil {
			exitf("problem writing dump: %s", err)
		}
	default:
		exitf("unknown format %q, want text or json", *format)
	}

	if *roundtrip {
		out, err := sample.Schema.Build(m)
		if err != nil {
			exitf("roundtrip: problem re-encoding: %s", err)
		}
		if !bytes.Equal(out, data) {
			exitf("roundtrip: re-encoded %d bytes differ from the %d byte input", len(out), len(data))
		}
		fmt.Fprintf(os.Stderr, "roundtrip ok, %d bytes\n", len(out))
	}
}

// readInput reads path from the OS filesystem, decoding it from hex text
// when asked.
func readInput(path string, hexText bool) ([]byte, error) {
	fsys, err := osfs.New()
	if err != nil {
		panic("can't access OS: " + err.Error())
	}
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read")
	}
	if !hexText {
		return data, nil
	}
	decoded, err := hex.DecodeString(strings.Join(strings.Fields(string(data)), ""))
	if err != nil {
		return nil, errors.Wrap(err, "decoding hex input")
	}
	return decoded, nil
}

func exitf(s string, i ...any) {
	fmt.Printf(s+"\n", i...)
	os.Exit(1)
}
