// nhview runs NetHack under a pseudo terminal, relays its screen to the
// terminal it was started from and reads the game's windows and status line
// out of the output. With -replay it reads a captured session instead.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"golang.org/x/exp/slog"
)

// readSize is the size of each read from the child or capture
const readSize = 4096

type options struct {
	replay  string
	logFile string
	verbose bool
	every   int
	width   int
	height  int
	method  widthMethod
	command []string
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "nhview: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		return err
	}

	var logOut io.Writer = io.Discard
	switch {
	case opts.logFile != "":
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		logOut = f
	case opts.replay != "":
		// nothing is relayed to the terminal when replaying
		logOut = os.Stderr
	}
	log := newLogger(logOut, opts.verbose)

	if opts.replay != "" {
		f, err := os.Open(opts.replay)
		if err != nil {
			return err
		}
		defer f.Close()
		return replay(f, os.Stdout, opts, log)
	}
	return live(opts, log)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := tint.NewHandler(w, &tint.Options{
		AddSource:  verbose,
		Level:      level,
		TimeFormat: "15:04:05.000",
	})
	return slog.New(handler)
}

func parseFlags(args []string) (options, error) {
	opts := options{}
	var (
		size   string
		method string
	)
	flags := flag.NewFlagSet("nhview", flag.ContinueOnError)
	flags.StringVar(&opts.replay, "replay", "", "read a captured session from `file` instead of running a command")
	flags.StringVar(&opts.logFile, "log", os.Getenv("NHVIEW_LOG"), "write logs to `file`")
	flags.BoolVar(&opts.verbose, "v", false, "log at debug level")
	flags.IntVar(&opts.every, "every", 4, "extract windows every `n` reads")
	flags.StringVar(&size, "size", "80x24", "screen size of a replayed session")
	flags.StringVar(&method, "width", "wcwidth", "width measurement for printed windows: wcwidth, unicode or nozwj")
	if err := flags.Parse(args); err != nil {
		return opts, err
	}

	if opts.every < 1 {
		return opts, fmt.Errorf("-every must be at least 1, got %d", opts.every)
	}
	var err error
	opts.width, opts.height, err = parseSize(size)
	if err != nil {
		return opts, err
	}
	opts.method, err = parseWidthMethod(method)
	if err != nil {
		return opts, err
	}

	opts.command = flags.Args()
	if len(opts.command) == 0 {
		opts.command = strings.Fields(os.Getenv("NHVIEW_CMD"))
	}
	if len(opts.command) == 0 {
		opts.command = []string{"nethack"}
	}
	return opts, nil
}

// parseSize parses a WIDTHxHEIGHT size
func parseSize(s string) (int, int, error) {
	w, h, found := strings.Cut(s, "x")
	if !found {
		return 0, 0, fmt.Errorf("invalid size %q: expected WIDTHxHEIGHT", s)
	}
	width, err := strconv.Atoi(w)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid width %q: %w", w, err)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid height %q: %w", h, err)
	}
	if width < 1 || height < 1 {
		return 0, 0, fmt.Errorf("invalid size %q: must be at least 1x1", s)
	}
	return width, height, nil
}
