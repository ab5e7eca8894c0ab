// SPDX-FileCopyrightText: © 2026 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Command iupacpal finds inverted repeats in a nucleotide sequence.
//
// The input file contains the raw sequence using the IUPAC nucleotide codes.
// White space is ignored. The palindromes are written to the output file in
// the text format of IUPACpal or as JSON lines.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
	"unicode"

	"github.com/dustin/go-humanize"
	"github.com/ulikunitz/iupacpal"
	"github.com/ulikunitz/iupacpal/iupac"
	"github.com/ulikunitz/iupacpal/report"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// Exit codes.
const (
	exitOK          = 0
	exitFailure     = 1
	exitUsage       = 2
	exitInterrupted = 130
)

const usageText = `Usage: iupacpal -f FILE [options]

Finds inverted repeats in the sequence of FILE. Use - for standard input.

Options:
`

type options struct {
	file       string
	name       string
	minLen     int
	maxLen     int
	maxGap     int
	mismatches int
	workers    int
	output     string
	format     report.Format
	config     string
	check      bool
	exact      bool
	progress   bool
	verbose    bool
}

func parseFlags(argv []string, stderr io.Writer) (opts options, set map[string]bool, err error) {
	fs := flag.NewFlagSet("iupacpal", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usageText)
		fs.PrintDefaults()
	}
	opts.format = report.Text
	fs.StringVar(&opts.file, "f", "", "input `file` with the sequence")
	fs.StringVar(&opts.name, "name", "",
		"sequence `name` for the report (default file name)")
	fs.IntVar(&opts.minLen, "m", 10, "minimum length of an arm")
	fs.IntVar(&opts.maxLen, "M", 100, "maximum length of an arm")
	fs.IntVar(&opts.maxGap, "g", 100, "maximum gap between the arms")
	fs.IntVar(&opts.mismatches, "x", 0, "number of mismatches allowed")
	fs.IntVar(&opts.workers, "workers", 1,
		"number of goroutines sweeping the centres")
	fs.StringVar(&opts.output, "o", "IUPACpal.out",
		"output `file`; - for standard output")
	fs.TextVar(&opts.format, "format", report.Text,
		"output format: text or jsonl")
	fs.StringVar(&opts.config, "config", "",
		"JSON `file` with the search parameters; flags override it")
	fs.BoolVar(&opts.check, "check", false,
		"verify every palindrome against the sequence")
	fs.BoolVar(&opts.exact, "exact", false,
		"ambiguity codes pair only with the same code")
	fs.BoolVar(&opts.progress, "progress", false,
		"show a progress bar")
	fs.BoolVar(&opts.verbose, "v", false, "verbose logging")
	if err = fs.Parse(argv); err != nil {
		return opts, nil, err
	}
	if fs.NArg() > 0 {
		return opts, nil, fmt.Errorf("unexpected arguments %q", fs.Args())
	}
	if opts.file == "" {
		return opts, nil, errors.New("no input file; use -f")
	}
	set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return opts, set, nil
}

// config combines the configuration file with the flags. Flags given on the
// command line take precedence over the file. Parameters neither in the file
// nor on the command line get the flag defaults.
func config(opts options, set map[string]bool) (iupacpal.Config, error) {
	cfg := iupacpal.Config{
		MinLen:     opts.minLen,
		MaxLen:     opts.maxLen,
		MaxGap:     opts.maxGap,
		Mismatches: opts.mismatches,
		Workers:    opts.workers,
	}
	if opts.config == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(opts.config)
	if err != nil {
		return cfg, err
	}
	fcfg := cfg
	if err = fcfg.Decode(data); err != nil {
		return cfg, err
	}
	fcfg.SetDefaults()
	if set["m"] {
		fcfg.MinLen = cfg.MinLen
	}
	if set["M"] {
		fcfg.MaxLen = cfg.MaxLen
	}
	if set["g"] {
		fcfg.MaxGap = cfg.MaxGap
	}
	if set["x"] {
		fcfg.Mismatches = cfg.Mismatches
	}
	if set["workers"] {
		fcfg.Workers = cfg.Workers
	}
	return fcfg, nil
}

// readSequence reads the sequence and removes all white space.
func readSequence(name string, stdin io.Reader) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if name == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, err
	}
	return bytes.Join(bytes.FieldsFunc(data, unicode.IsSpace), nil), nil
}

func writeReport(opts options, h report.Header, seq []byte,
	ps []iupacpal.Palindrome, stdout io.Writer) error {
	if opts.output == "-" {
		return report.Write(stdout, opts.format, h, seq, ps)
	}
	f, err := os.Create(opts.output)
	if err != nil {
		return err
	}
	if err = report.Write(f, opts.format, h, seq, ps); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func run(ctx context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, set, err := parseFlags(argv, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "iupacpal: %s\n", err)
		return exitUsage
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr,
		&slog.HandlerOptions{Level: level}))

	cfg, err := config(opts, set)
	if err == nil {
		err = cfg.Verify()
	}
	if err != nil {
		log.Error("invalid configuration", "err", err)
		return exitUsage
	}

	seq, err := readSequence(opts.file, stdin)
	if err != nil {
		log.Error("can't read sequence", "err", err)
		return exitFailure
	}
	if err = iupac.Normalize(seq); err != nil {
		log.Error("invalid sequence", "file", opts.file, "err", err)
		return exitFailure
	}
	name := opts.name
	if name == "" {
		name = opts.file
	}
	log.Info("sequence loaded", "name", name,
		"length", humanize.Comma(int64(len(seq))))
	log.Debug("configuration", "min_len", cfg.MinLen,
		"max_len", cfg.MaxLen, "max_gap", cfg.MaxGap,
		"mismatches", cfg.Mismatches, "workers", cfg.Workers)

	f := &iupacpal.Finder{Config: cfg}
	if opts.exact {
		f.Matcher = iupac.NewExactMatcher()
	}
	var (
		pbs *mpb.Progress
		bar *mpb.Bar
	)
	if opts.progress {
		pbs = mpb.New(mpb.WithWidth(40), mpb.WithOutput(stderr))
		bar = pbs.AddBar(int64(iupacpal.Centres(len(seq))),
			mpb.PrependDecorators(
				decor.Name("centres: ", decor.WC{W: len("centres: "), C: decor.DindentRight}),
				decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
			),
			mpb.AppendDecorators(
				decor.Percentage(decor.WC{W: 5}),
				decor.Name(" "),
				decor.Elapsed(decor.ET_STYLE_GO),
				decor.OnComplete(decor.Name(""), ". done"),
			),
		)
		f.Progress = func(k int) { bar.IncrBy(k) }
	}

	start := time.Now()
	ps, err := f.Find(ctx, seq)
	if pbs != nil {
		if err != nil {
			bar.Abort(false)
		}
		pbs.Wait()
	}
	if err != nil {
		if ctx.Err() != nil {
			log.Warn("interrupted", "err", err)
			return exitInterrupted
		}
		log.Error("search failed", "err", err)
		return exitFailure
	}
	log.Info("search finished",
		"palindromes", humanize.Comma(int64(len(ps))),
		"duration", time.Since(start).Round(time.Millisecond))

	if opts.check {
		for _, p := range ps {
			if err = iupacpal.Check(seq, p, cfg, f.Matcher); err != nil {
				log.Error("check failed", "err", err)
				return exitFailure
			}
		}
		log.Debug("check passed", "palindromes", len(ps))
	}

	h := report.Header{Name: name, Config: cfg, Matcher: f.Matcher}
	if err = writeReport(opts, h, seq, ps, stdout); err != nil {
		if report.IsBrokenPipe(err) {
			return exitOK
		}
		log.Error("can't write report", "err", err)
		return exitFailure
	}
	if opts.output != "-" {
		log.Info("report written", "file", opts.output,
			"format", opts.format)
	}
	return exitOK
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if ctx.Err() != nil && code == exitOK {
		code = exitInterrupted
	}
	stop()
	os.Exit(code)
}
