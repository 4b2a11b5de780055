package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: set requires a dotted path and a value", cli.ErrUsage)
	}
	path, raw := args[0], args[1]
	value := parseValue(raw, cfg.String)
	files := docFiles(args[2:])
	for i, file := range files {
		obj, err := loadDoc(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		if err := obj.Set(path, value); err != nil {
			return fmt.Errorf("error setting %q in %s: %w", path, file, err)
		}
		if err := writeDoc(cfg.MainConfig, cc.Out, obj); err != nil {
			return err
		}
		writeSep(cc.Out, i, len(files))
	}
	return nil
}

// parseValue reads a command line value as a JSON document, falling back
// to a literal string when it does not parse (or when -s forces it).
func parseValue(raw string, literal bool) any {
	if literal {
		return raw
	}
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return raw
	}
	return v
}
