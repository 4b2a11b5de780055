package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/pathobj/pathobj"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two document arguments", cli.ErrUsage)
	}
	a, err := loadDoc(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	b, err := loadDoc(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	_, err = io.WriteString(cc.Out, pathobj.Diff(a, b))
	return err
}
