package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
)

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

// run is the whole program. It returns the process exit code: 1 for a
// usage error, 0 otherwise.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(stderr)
	configFlag := fs.String("c", "", "configuration file")
	promptFlag := fs.String("p", "", "use `prompt` instead of the configured one, \"\" for none")
	silentFlag := fs.Bool("s", false, "suppress byte counts")
	debugFlag := fs.Bool("d", false, "log debugging information to stderr")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: %s [-c config] [-p prompt] [-s] [-d] [file]\n", fs.Name())
		fs.PrintDefaults()
	}
	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	diag := newDiagnostics(stdout)
	if fs.NArg() > 1 {
		diag.error(errors.New("too many arguments"))
		fs.Usage()
		return 1
	}

	log.SetOutput(io.Discard)
	cfg := loadConfig(diag, *configFlag)
	if cfg.Debug || *debugFlag {
		log.SetOutput(stderr)
		log.SetPrefix("lined: ")
		log.SetFlags(log.Ltime | log.Lmicroseconds | log.Lshortfile)
	}

	if useColor(cfg.Color, stdout) {
		if err := diag.colorize(cfg.Colors.Error, cfg.Colors.Warning); err != nil {
			diag.warn(err.Error())
		}
	}

	var promptSet bool
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "p" {
			promptSet = true
		}
	})

	ed := NewEditor(
		WithStdin(stdin),
		WithStdout(stdout),
		WithDiagnostics(diag),
		WithPrompt(choosePrompt(*promptFlag, promptSet, cfg.Prompt, isTerminal(stdin))),
		WithSilent(cfg.Silent || *silentFlag),
	)
	if path := fs.Arg(0); path != "" {
		if err := ed.Open(path); err != nil {
			diag.error(err)
		}
	}
	ed.Run()
	return 0
}

// choosePrompt picks the prompt: an explicit -p wins, even when empty.
// Otherwise the configured prompt is shown to interactive users only.
func choosePrompt(flagPrompt string, flagSet bool, configured string, interactive bool) string {
	switch {
	case flagSet:
		return flagPrompt
	case interactive:
		return configured
	}
	return ""
}

// loadConfig never fails: problems are reported as warnings and the
// defaults fill in. An empty path means the default location.
func loadConfig(diag *diagnostics, path string) Config {
	cfg := DefaultConfig()
	if path == "" {
		var err error
		if path, err = DefaultConfigPath(); err != nil {
			log.Printf("config: %v\n", err)
		}
	}
	if path != "" {
		var err error
		if cfg, err = LoadConfig(path); err != nil {
			diag.warn(err.Error())
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		diag.warn(err.Error())
	}
	return cfg
}
