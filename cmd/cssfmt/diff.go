package main

import (
	"fmt"
	"io"

	"github.com/css-format/cssfmt/cssdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two stylesheet files", cli.ErrUsage)
	}
	a, err := readArg(cc, args[0])
	if err != nil {
		return err
	}
	b, err := readArg(cc, args[1])
	if err != nil {
		return err
	}
	opts, err := cfg.formatOpts()
	if err != nil {
		return err
	}
	res, err := cssdiff.Diff(string(a), string(b), opts...)
	if err != nil {
		return err
	}
	if res.Equal {
		return nil
	}
	out := res.Text()
	if cfg.useColor(cc) {
		out = res.Colored()
	}
	if _, err := io.WriteString(cc.Out, out); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
