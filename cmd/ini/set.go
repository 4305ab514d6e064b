package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/scott-cotton/cli"

	"github.com/KimNorgaard/go-ini"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 4 {
		return fmt.Errorf("%w: set requires a section, a key, a value and a file", cli.ErrUsage)
	}
	section, key, value, file := args[0], args[1], args[2], args[3]

	opts, err := cfg.options()
	if err != nil {
		return err
	}
	doc, err := ini.NewDocument(opts...)
	if err != nil {
		return err
	}
	if err := doc.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error loading %s: %w", file, err)
	}
	if err := doc.Set(section, key, value); err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return doc.Save(file)
}
