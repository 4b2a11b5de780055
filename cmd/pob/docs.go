package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/pathobj/pathobj"
	"github.com/pathobj/pathobj/encode"
)

// loadDoc reads a document from file ("-" for stdin) in the configured or
// suffix-implied format.
func loadDoc(cfg *MainConfig, cc *cli.Context, file string) (*pathobj.Object, error) {
	var r io.Reader = cc.In
	if file != "-" {
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
	var obj *pathobj.Object
	if cfg.inFormat(file).IsYAML() {
		obj, err = pathobj.FromYAML(d)
	} else {
		obj, err = pathobj.FromJSON(d)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", file, err)
	}
	return obj, nil
}

// writeDoc encodes obj on w in the configured output format.
func writeDoc(cfg *MainConfig, w io.Writer, obj *pathobj.Object) error {
	if cfg.outFormat().IsYAML() {
		d, err := yaml.Marshal(obj.ToPlain())
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	}
	return encode.Encode(obj.Node(), w, cfg.encOpts(w)...)
}

// docFiles normalizes a trailing file argument list: no files means stdin.
func docFiles(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

func writeSep(w io.Writer, i, n int) {
	if i < n-1 {
		w.Write([]byte("---\n"))
	}
}
