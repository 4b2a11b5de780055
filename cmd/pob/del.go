package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func del(cfg *DelConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Del.Parse(cc, args)
	if err != nil {
		cfg.Del.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: del requires one argument, a dotted path", cli.ErrUsage)
	}
	path := args[0]
	files := docFiles(args[1:])
	for i, file := range files {
		obj, err := loadDoc(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		if err := obj.Delete(path); err != nil {
			return fmt.Errorf("error deleting %q in %s: %w", path, file, err)
		}
		if err := writeDoc(cfg.MainConfig, cc.Out, obj); err != nil {
			return err
		}
		writeSep(cc.Out, i, len(files))
	}
	return nil
}
