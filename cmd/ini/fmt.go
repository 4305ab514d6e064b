package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func format(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		if cfg.Write {
			return fmt.Errorf("%w: -w requires file arguments", cli.ErrUsage)
		}
		args = []string{"-"}
	}
	for _, file := range args {
		doc, err := cfg.load(cc, file)
		if err != nil {
			return err
		}
		if cfg.Write && file != "-" {
			if err := doc.Save(file); err != nil {
				return err
			}
			continue
		}
		if err := doc.Encode(cc.Out); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}
