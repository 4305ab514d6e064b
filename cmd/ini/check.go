package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/KimNorgaard/go-ini"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	opts, err := cfg.options()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}

	p := newPalette(cfg.colored(cc.Out))
	failed := false
	for _, file := range args {
		ok, err := checkFile(cc, p, file, opts)
		if err != nil {
			return err
		}
		failed = failed || !ok
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func checkFile(cc *cli.Context, p *palette, file string, opts []ini.Option) (bool, error) {
	if file == "-" {
		return checkReader(cc.Out, p, file, cc.In, opts)
	}
	f, err := os.Open(file)
	if err != nil {
		return false, fmt.Errorf("error opening %s: %w", file, err)
	}
	defer f.Close()
	return checkReader(cc.Out, p, file, f, opts)
}

// checkReader decodes r and reports the outcome for name on w.
func checkReader(w io.Writer, p *palette, name string, r io.Reader, opts []ini.Option) (bool, error) {
	if name == "-" {
		name = "stdin"
	}
	doc, err := ini.NewDocument(opts...)
	if err != nil {
		return false, err
	}
	res := doc.TryDecode(r)
	if res.OK() {
		_, err := fmt.Fprintf(w, "%s: %s\n", name, p.ok.Sprint("ok"))
		return true, err
	}
	_, err = fmt.Fprintf(w, "%s: %s\n", name, p.bad.Sprint(res.Err()))
	return false, err
}
