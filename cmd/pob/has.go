package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func has(cfg *HasConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Has.Parse(cc, args)
	if err != nil {
		cfg.Has.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: has requires one argument, a dotted path", cli.ErrUsage)
	}
	path := args[0]
	files := docFiles(args[1:])
	for _, file := range files {
		obj, err := loadDoc(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		fmt.Fprintln(cc.Out, obj.Contains(path))
	}
	return nil
}
