package main

import (
	"os"

	"github.com/css-format/cssfmt"
	"github.com/css-format/cssfmt/config"
	"github.com/css-format/cssfmt/nodeparse"
	"github.com/css-format/cssfmt/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

type MainConfig struct {
	IgnoreCharset    bool `cli:"name=ignore-charset desc='drop @charset rules'"`
	IgnoreComments   bool `cli:"name=ignore-comments desc='drop comments'"`
	IgnoreEmptyRules bool `cli:"name=ignore-empty-rules desc='drop rules with no declarations'"`
	Node             bool `cli:"name=node desc='parse with the npm css parser in a node subprocess'"`
	Verbose          bool `cli:"name=v desc='log parser events to stderr'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

// formatOpts merges .cssfmt.yaml defaults with the command line, the
// command line winning. Bool flags can only enable a suppression, so
// the merge is an or.
func (cfg *MainConfig) formatOpts() ([]cssfmt.Option, error) {
	fileCfg, err := config.Load(".")
	if err != nil {
		return nil, err
	}
	opts := []cssfmt.Option{
		cssfmt.IgnoreCharset(fileCfg.IgnoreCharset || cfg.IgnoreCharset),
		cssfmt.IgnoreComments(fileCfg.IgnoreComments || cfg.IgnoreComments),
		cssfmt.IgnoreEmptyRules(fileCfg.IgnoreEmptyRules || cfg.IgnoreEmptyRules),
	}
	if cfg.Node || fileCfg.Parser == "node" {
		opts = append(opts, cssfmt.WithParser(nodeparse.New(cfg.logger(), "")))
	} else if cfg.Verbose {
		opts = append(opts, cssfmt.WithParser(parse.New(cfg.logger())))
	}
	return opts, nil
}

func (cfg *MainConfig) parser() parse.Parser {
	if cfg.Node {
		return nodeparse.New(cfg.logger(), "")
	}
	return parse.New(cfg.logger())
}

func (cfg *MainConfig) logger() *zap.Logger {
	if !cfg.Verbose {
		return nil
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return nil
	}
	return log
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

type DiffConfig struct {
	*MainConfig
	Color bool `cli:"name=color desc='color the diff'"`

	Diff *cli.Command
}

// useColor follows the -color flag when given, otherwise colors only
// when writing to a terminal.
func (cfg *DiffConfig) useColor(cc *cli.Context) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Diff.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := cc.Out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type DumpConfig struct {
	*MainConfig

	Dump *cli.Command
}
