package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func keys(cfg *KeysConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Keys.Parse(cc, args)
	if err != nil {
		cfg.Keys.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	files := docFiles(args)
	for i, file := range files {
		obj, err := loadDoc(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		for _, k := range obj.Keys() {
			fmt.Fprintln(cc.Out, k)
		}
		writeSep(cc.Out, i, len(files))
	}
	return nil
}
