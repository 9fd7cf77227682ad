package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cowwoc/lumina/decode"
	"github.com/cowwoc/lumina/ir"
)

// getObjFile reads and decodes a document from a file path, or from
// stdin when the path is "-".
func getObjFile(file string, opts ...decode.Option) (*ir.Node, error) {
	var r io.Reader
	if file == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", file, err)
	}
	node, err := decode.Parse(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", file, err)
	}
	return node, nil
}

func orStdin(files []string) []string {
	if len(files) == 0 {
		return []string{"-"}
	}
	return files
}
