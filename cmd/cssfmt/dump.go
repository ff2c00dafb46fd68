package main

import (
	"encoding/json"
	"fmt"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		cfg.Dump.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	p := cfg.parser()
	for _, arg := range args {
		src, err := readArg(cc, arg)
		if err != nil {
			return err
		}
		raws, err := p.Parse(src)
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", arg, err)
		}
		enc := json.NewEncoder(cc.Out)
		enc.SetIndent("", "  ")
		tree := map[string]any{
			"stylesheet": map[string]any{"rules": raws},
		}
		if err := enc.Encode(tree); err != nil {
			return err
		}
	}
	return nil
}
