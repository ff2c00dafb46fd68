package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/css-format/cssfmt"

	"github.com/scott-cotton/cli"
)

func cssfmtMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		if sub := cfg.Main.FindSub(cc, args[0]); sub != nil {
			err := sub.Run(cc, args[1:])
			if errors.Is(err, cli.ErrUsage) {
				sub.Usage(cc, err)
				os.Exit(sub.Exit(cc, err))
			}
			return err
		}
	}
	opts, err := cfg.formatOpts()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		src, err := readArg(cc, arg)
		if err != nil {
			return err
		}
		out, err := cssfmt.Format(string(src), opts...)
		if err != nil {
			return fmt.Errorf("error formatting %s: %w", arg, err)
		}
		out = strings.TrimRight(out, "\n") + "\n"
		if _, err := io.WriteString(cc.Out, out); err != nil {
			return err
		}
	}
	return nil
}

func readArg(cc *cli.Context, arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(cc.In)
	}
	d, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", arg, err)
	}
	return d, nil
}
