// Command bytehuff compresses and decompresses files with a byte-oriented
// Huffman code.
//
// Usage:
//
//	bytehuff [-v] encode IN OUT   writes OUT (text) and OUT_compressed (packed)
//	bytehuff [-v] decode IN OUT   decodes the packed file IN into OUT
//	bytehuff dump IN              prints the tree and code table for IN
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/chronos-tachyon/bytehuff"
)

var flagVerbose = flag.Bool("v", false, "print a summary of each file processed")

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-v] encode|decode IN OUT\n       %s dump IN\n", os.Args[0], os.Args[0])
	flag.PrintDefaults()
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("bytehuff: ")
	flag.Usage = usage
	flag.Parse()

	var err error
	switch cmd := flag.Arg(0); {
	case cmd == "encode" && flag.NArg() == 3:
		err = encode(flag.Arg(1), flag.Arg(2))
	case cmd == "decode" && flag.NArg() == 3:
		err = decode(flag.Arg(1), flag.Arg(2))
	case cmd == "dump" && flag.NArg() == 2:
		err = dump(flag.Arg(1))
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatal(err)
	}
}

func encode(in, out string) error {
	if err := bytehuff.EncodeFile(in, out); err != nil {
		return err
	}
	if !*flagVerbose {
		return nil
	}

	freqs, err := bytehuff.CountFileFrequencies(in)
	if err != nil {
		return err
	}
	var e bytehuff.Encoder
	e.Init(&freqs)
	codes := e.Codes()
	log.Printf("%s: %d bytes, %d distinct, %d payload bits, code lengths %d..%d",
		in, freqs.Total(), freqs.NumDistinct(), codes.EncodedSize(&freqs), codes.MinSize(), codes.MaxSize())
	log.Printf("wrote %s and %s", out, bytehuff.CompressedName(out))
	return nil
}

func decode(in, out string) error {
	if err := bytehuff.DecodeFile(in, out); err != nil {
		return err
	}
	if *flagVerbose {
		log.Printf("decoded %s into %s", in, out)
	}
	return nil
}

func dump(in string) error {
	freqs, err := bytehuff.CountFileFrequencies(in)
	if err != nil {
		return err
	}
	var e bytehuff.Encoder
	e.Init(&freqs)
	fmt.Printf("Header = %q\n", e.Header())
	if _, err := e.Tree().Dump(os.Stdout); err != nil {
		return err
	}
	_, err = e.Codes().Dump(os.Stdout)
	return err
}
