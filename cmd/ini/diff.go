package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := cfg.load(cc, args[0])
	if err != nil {
		return err
	}
	b, err := cfg.load(cc, args[1])
	if err != nil {
		return err
	}
	differs, err := lineDiff(cc.Out, newPalette(cfg.colored(cc.Out)), a.EncodeToString(), b.EncodeToString())
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// lineDiff writes a line-oriented diff of a and b to w and reports whether
// they differ. Nothing is written for equal inputs.
func lineDiff(w io.Writer, p *palette, a, b string) (bool, error) {
	dmp := diffmatchpatch.New()
	ra, rb, lines := dmp.DiffLinesToRunes(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(ra, rb, false), lines)

	differs := false
	for _, d := range diffs {
		if d.Type != diffmatchpatch.DiffEqual {
			differs = true
			break
		}
	}
	if !differs {
		return false, nil
	}

	for _, d := range diffs {
		prefix, c := " ", p.faint
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix, c = "-", p.del
		case diffmatchpatch.DiffInsert:
			prefix, c = "+", p.add
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			if _, err := fmt.Fprintln(w, c.Sprint(prefix+strings.TrimSuffix(line, "\n"))); err != nil {
				return true, err
			}
		}
	}
	return true, nil
}
