// Package samples holds ready made schemas, each paired with one canonical
// wire message that parses against it. The bindump command uses them as
// selectable schemas and the tests use them as end to end coverage of every
// field variant the layout engine offers.
package samples

import (
	"fmt"
	"sort"

	"github.com/bytefield/binform"
	"github.com/bytefield/binform/compress"
)

// Sample is a registered schema with a canonical message.
type Sample struct {
	// Name is the registry key, what bindump's -schema flag takes.
	Name string
	// Doc is a one line description for listings.
	Doc string
	// Schema decodes and encodes the format.
	Schema *binform.Struct
	// Wire is a well formed message in the format. Parsing it succeeds and
	// building the parse result reproduces it byte for byte.
	Wire []byte
}

var registry = map[string]Sample{}

func register(s Sample) {
	if _, ok := registry[s.Name]; ok {
		panic(fmt.Sprintf("samples: duplicate sample %q", s.Name))
	}
	registry[s.Name] = s
}

// Get returns the sample registered under name.
func Get(name string) (Sample, bool) {
	s, ok := registry[name]
	return s, ok
}

// Names returns the registered sample names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func init() {
	register(license())
	register(chunkfile())
	register(tlv())
	register(archive())
}

// license is a fixed size product license header: big endian scalars, a
// UTF-16 licensee name, an optional vendor tag and a key whose width depends
// on a flag.
func license() Sample {
	schema := binform.New("license",
		binform.Magic([]byte("LIC\x01")),
		binform.UInt16BE("version"),
		binform.UInt64BE("issued"),
		binform.UInt64BE("expires"),
		binform.UInt8("nameLen"),
		binform.Text("name", binform.Ref("nameLen"), binform.UTF16BE),
		binform.UInt8("hasVendor"),
		binform.If("vendor", binform.Ref("hasVendor"),
			binform.Text("vendor", binform.Lit(6), binform.ASCII)),
		binform.UInt8("longKey"),
		binform.IfElse("key", binform.Ref("longKey"),
			binform.Bytes("key", binform.Lit(8)),
			binform.Bytes("key", binform.Lit(4))),
		binform.UInt32BE("features"),
		binform.Const("sig", []byte{0xCA, 0xFE}),
	)

	wire := []byte{
		'L', 'I', 'C', 0x01,
		0x00, 0x02, // version 2
		0x00, 0x00, 0x00, 0x00, 0x65, 0x53, 0xF1, 0x00, // issued 1700000000
		0x00, 0x00, 0x00, 0x00, 0x6B, 0x49, 0xD2, 0x00, // expires 1800000000
		0x08,
		0x00, 'A', 0x00, 'c', 0x00, 'm', 0x00, 'e', // "Acme" in UTF-16
		0x01,
		'G', 'L', 'O', 'B', 'E', 'X',
		0x01,
		0xDE, 0xAD, 0xBE, 0xEF, 0x01, 0x02, 0x03, 0x04,
		0x00, 0x00, 0x00, 0x2A, // features
		0xCA, 0xFE,
	}

	return Sample{
		Name:   "license",
		Doc:    "product license header with optional vendor tag and variable width key",
		Schema: schema,
		Wire:   wire,
	}
}

// chunkfile is a chunked container in the PNG mold: a magic marker followed
// by as many kind/length/payload chunks as the input holds.
func chunkfile() Sample {
	chunk := binform.New("chunk",
		binform.Text("kind", binform.Lit(4), binform.ASCII),
		binform.UInt32BE("length"),
		binform.Bytes("payload", binform.Ref("length")),
	)
	schema := binform.New("chunkfile",
		binform.Magic([]byte{0x89, 'B', 'F', '\r', '\n'}),
		binform.GreedyRange("chunks", binform.Child("chunk", chunk)),
	)

	wire := []byte{
		0x89, 'B', 'F', '\r', '\n',
		'H', 'E', 'A', 'D', 0x00, 0x00, 0x00, 0x04, 0x01, 0x02, 0x03, 0x04,
		'D', 'A', 'T', 'A', 0x00, 0x00, 0x00, 0x02, 0xAB, 0xCD,
		'S', 'T', 'O', 'P', 0x00, 0x00, 0x00, 0x00,
	}

	return Sample{
		Name:   "chunkfile",
		Doc:    "chunked container, kind/length/payload until end of input",
		Schema: schema,
		Wire:   wire,
	}
}

// tlv is a counted record stream where a type byte selects each record's
// value shape: a little endian integer or a length prefixed string.
func tlv() Sample {
	str := binform.New("str",
		binform.UInt8("len"),
		binform.Text("text", binform.Ref("len"), binform.UTF8),
	)
	record := binform.New("record",
		binform.UInt8("type"),
		binform.Switch("value", binform.Ref("type"), binform.Cases(map[int64]binform.Field{
			1: binform.UInt32LE("value"),
			2: binform.Child("value", str),
		})),
	)
	schema := binform.New("tlv",
		binform.UInt8("count"),
		binform.Array("records", binform.Child("record", record), binform.Ref("count")),
	)

	wire := []byte{
		0x03,
		0x01, 0x07, 0x00, 0x00, 0x00, // int record, 7
		0x02, 0x05, 'h', 'e', 'l', 'l', 'o', // string record
		0x01, 0xFF, 0x00, 0x00, 0x00, // int record, 255
	}

	return Sample{
		Name:   "tlv",
		Doc:    "counted type/value records, type byte selects the value shape",
		Schema: schema,
		Wire:   wire,
	}
}

// entrySchema is self referential (directories hold entries), so it is
// assigned in archive() and reached through a deferred supplier.
var entrySchema *binform.Struct

// archive is a snappy compressed directory table: a tree of named entries
// where a directory entry holds a counted list of children and a file entry
// holds its size.
func archive() Sample {
	dirMeta := binform.New("dirMeta",
		binform.UInt8("ccount"),
		binform.Array("children",
			binform.Deferred("child", func() *binform.Struct { return entrySchema }),
			binform.Ref("ccount")),
	)
	entrySchema = binform.New("entry",
		binform.UInt8("nlen"),
		binform.Text("name", binform.Ref("nlen"), binform.UTF8),
		binform.UInt8("isDir"),
		binform.IfElse("meta", binform.Ref("isDir"),
			binform.Child("meta", dirMeta),
			binform.UInt32LE("meta")),
	)
	schema := binform.New("archive",
		binform.Magic([]byte("AR01")),
		binform.UInt16BE("tableLen"),
		binform.Compressed("table", binform.Ref("tableLen"), binform.AlgSnappy,
			binform.Range("table", binform.Child("entry", entrySchema),
				binform.Lit(1), binform.Lit(16))),
		binform.Pass("reserved"),
	)

	// bin/ holding sh, plus a readme. The table length is the compressed
	// size, so the wire is assembled through the codec.
	table := []byte{
		0x03, 'b', 'i', 'n', 0x01,
		0x01,
		0x02, 's', 'h', 0x00, 0x00, 0x04, 0x00, 0x00,
		0x06, 'r', 'e', 'a', 'd', 'm', 'e', 0x00, 0x2A, 0x00, 0x00, 0x00,
	}
	blob, err := compress.Compress(compress.AlgSnappy, table)
	if err != nil {
		panic(fmt.Sprintf("samples: compressing archive table: %v", err))
	}
	wire := append([]byte("AR01"), byte(len(blob)>>8), byte(len(blob)))
	wire = append(wire, blob...)

	return Sample{
		Name:   "archive",
		Doc:    "snappy compressed directory table with nested entries",
		Schema: schema,
		Wire:   wire,
	}
}
