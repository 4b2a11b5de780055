package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/pathobj/pathobj"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a dotted path", cli.ErrUsage)
	}
	path := args[0]
	files := docFiles(args[1:])
	for i, file := range files {
		obj, err := loadDoc(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		v, err := obj.Get(path)
		if err != nil {
			return fmt.Errorf("error querying %s with %q: %w", file, path, err)
		}
		if v == nil {
			fmt.Fprintln(cc.Out, "null")
		} else if err := writeDoc(cfg.MainConfig, cc.Out, pathobj.New(v)); err != nil {
			return err
		}
		writeSep(cc.Out, i, len(files))
	}
	return nil
}
