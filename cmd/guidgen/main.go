// Command guidgen mints, validates and records GUIDs.
//
//	guidgen -n 5                      # five random GUIDs
//	guidgen -format hex -hash         # 32 digit form plus FNV-1a hash
//	guidgen -parse 00112233445566778899AABBCCDDEEFF
//	echo "..." | guidgen -parse -strict
//	guidgen -n 100 -record -tag orders -config ledger.yaml
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("guidgen: ")

	cfg, args, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := &app{cfg: cfg, stdin: os.Stdin, stdout: os.Stdout, logger: log.Default()}
	if err := app.run(ctx, args); err != nil {
		log.Fatal(err)
	}
}

func parseFlags(args []string) (*Config, []string, error) {
	fs := flag.NewFlagSet("guidgen", flag.ContinueOnError)

	configPath := fs.String("config", "", "YAML config file")
	count := fs.Int("n", 1, "number of GUIDs to generate")
	format := fs.String("format", formatCanonical, "output format: canonical, hex, base64, base64std")
	source := fs.String("source", sourceRandom, "generation source: random, crypto")
	hash := fs.Bool("hash", false, "print the FNV-1a hash next to each GUID")
	parse := fs.Bool("parse", false, "normalize GUIDs given as arguments or on stdin")
	strict := fs.Bool("strict", false, "with -parse, fail on malformed input")
	record := fs.Bool("record", false, "record generated GUIDs in the MySQL ledger")
	tag := fs.String("tag", "default", "ledger tag for recorded GUIDs")
	addr := fs.String("mysql", "", "MySQL address host:port for the ledger")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	cfg := DefaultConfig()
	if *configPath != "" {
		loaded, err := LoadConfig(*configPath)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
	}

	// only flags given explicitly override the file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "n":
			cfg.Count = *count
		case "format":
			cfg.Format = *format
		case "source":
			cfg.Source = *source
		case "hash":
			cfg.Hash = *hash
		case "parse":
			if *parse {
				cfg.Mode = modeParse
			} else {
				cfg.Mode = modeGenerate
			}
		case "strict":
			cfg.Strict = *strict
		case "record":
			cfg.Record = *record
		case "tag":
			cfg.Tag = *tag
		case "mysql":
			cfg.Ledger.Addr = *addr
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, fs.Args(), nil
}
