// Command stringhash feeds keys through a string hash table and prints the encoded result of each set.
//
// Keys are taken from the command line, or one per line from stdin when no key is given. Every key is
// copied into one reusable staging buffer before it is handed to the table, longer keys are truncated
// to the buffer size.
//
// Usage:
//
//	stringhash [flags] [key...]
//
// Each set prints "result: <code>" where a positive code is the identity of a newly inserted key, a
// negative code is the negated identity of a key already present and 0 signals an error.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gostonefire/stringhash"
	"github.com/gostonefire/stringhash/crt"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	flag "github.com/spf13/pflag"
)

func main() {
	if err := mainImpl(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "stringhash: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	capacity     int64
	maxKeyLength int64
	probing      string
	seed         uint64
	logLevel     string
	stat         bool
}

func parseFlags(args []string, stderr io.Writer) (opts options, keys []string, err error) {
	fs := flag.NewFlagSet("stringhash", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Int64VarP(&opts.capacity, "capacity", "c", 100000, "Maximum number of distinct keys")
	fs.Int64VarP(&opts.maxKeyLength, "max-key-length", "m", 64, "Size of the staging buffer and maximum key length")
	fs.StringVarP(&opts.probing, "probing", "p", "linear", "Probing technique (linear, quadratic)")
	fs.Uint64Var(&opts.seed, "seed", 0, "Hash seed")
	fs.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	fs.BoolVarP(&opts.stat, "stat", "s", false, "Print table statistics after the last key")

	if err = fs.Parse(args); err != nil {
		return
	}
	if opts.maxKeyLength <= 0 {
		err = fmt.Errorf("max key length must be a positive value higher than 0 (zero)")
		return
	}

	keys = fs.Args()
	return
}

func newLogger(level string, w io.Writer, noColor bool) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      l,
		TimeFormat: "15:04:05.000",
		NoColor:    noColor,
	})), nil
}

func mainImpl(args []string, stdin io.Reader, stdout io.Writer, stderr *os.File) error {
	opts, keys, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	logger, err := newLogger(opts.logLevel, colorable.NewColorable(stderr), !isatty.IsTerminal(stderr.Fd()))
	if err != nil {
		return err
	}

	return run(opts, keys, stdin, stdout, logger)
}

func run(opts options, keys []string, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	technique, ok := crt.FromName(opts.probing)
	if !ok {
		return fmt.Errorf("unknown probing technique %q", opts.probing)
	}

	sht, info, err := stringhash.NewStringHashTable(opts.capacity, stringhash.Conf{
		MaxKeyLength:                 opts.maxKeyLength,
		CollisionResolutionTechnique: technique,
		Seed:                         opts.seed,
		Logger:                       logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	logger.Info("table created",
		"capacity", info.Capacity,
		"slots", info.NumberOfSlots,
		"probing", crt.Name(info.CollisionResolutionTechnique))

	staging := make([]byte, opts.maxKeyLength)
	set := func(key string) {
		n := copy(staging, key)
		if n < len(key) {
			logger.Warn("key truncated", "length", len(key), "kept", n)
		}
		result, err := sht.Set(staging[:n])
		if err != nil {
			logger.Error("set failed", "err", err)
			fmt.Fprintln(stdout, "result: 0")
			return
		}
		fmt.Fprintf(stdout, "result: %d\n", result.Code())
	}

	if len(keys) > 0 {
		for _, key := range keys {
			set(key)
		}
	} else {
		scanner := bufio.NewScanner(stdin)
		for scanner.Scan() {
			set(strings.TrimRight(scanner.Text(), "\r"))
		}
		if err = scanner.Err(); err != nil {
			return fmt.Errorf("failed to read keys: %w", err)
		}
	}

	if opts.stat {
		stat, err := sht.Stat(false)
		if err != nil {
			return fmt.Errorf("failed to get table statistics: %w", err)
		}
		fmt.Fprintf(stdout, "records: %d\nrejected: %d\nload factor: %.5f\nmax probe length: %d\n",
			stat.Records, stat.Rejected, stat.LoadFactor, stat.MaxProbeLength)
	}

	return nil
}
