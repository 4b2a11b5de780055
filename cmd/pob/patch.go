package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file argument", cli.ErrUsage)
	}
	pd, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("could not read patch %q: %w", args[0], err)
	}
	files := docFiles(args[1:])
	for i, file := range files {
		obj, err := loadDoc(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		if cfg.Merge {
			err = obj.MergePatch(pd)
		} else {
			err = obj.Patch(pd)
		}
		if err != nil {
			return fmt.Errorf("error patching %s: %w", file, err)
		}
		if err := writeDoc(cfg.MainConfig, cc.Out, obj); err != nil {
			return err
		}
		writeSep(cc.Out, i, len(files))
	}
	return nil
}
