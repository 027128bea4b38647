package main

import (
	"bufio"
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/Lzww0608/guid"
	"github.com/Lzww0608/guid/sqlstore"
)

const (
	formatCanonical = "canonical"
	formatHex       = "hex"
	formatBase64    = "base64"
	formatBase64Std = "base64std"

	sourceRandom = "random"
	sourceCrypto = "crypto"
)

var formatters = map[string]func(guid.GUID) string{
	formatCanonical: guid.GUID.String,
	formatHex:       guid.GUID.EncodeToHex,
	formatBase64:    guid.GUID.EncodeToBase64,
	formatBase64Std: guid.GUID.EncodeToBase64Std,
}

var sources = map[string]func() *guid.Generator{
	sourceRandom: guid.NewGenerator,
	sourceCrypto: func() *guid.Generator { return guid.NewGeneratorWithReader(rand.Reader) },
}

// recorder is the part of the ledger guidgen needs
type recorder interface {
	EnsureSchema(ctx context.Context) error
	RecordBatch(ctx context.Context, tag string, ids []guid.GUID) error
	Close() error
}

type app struct {
	cfg    *Config
	stdin  io.Reader
	stdout io.Writer
	logger *log.Logger

	// openLedger is replaced in tests
	openLedger func(sqlstore.Config) (recorder, error)
}

func (a *app) run(ctx context.Context, args []string) error {
	switch a.cfg.Mode {
	case modeParse:
		return a.parse(args)
	default:
		return a.generate(ctx)
	}
}

func (a *app) generate(ctx context.Context) error {
	gen := sources[a.cfg.Source]()

	ids := make([]guid.GUID, 0, a.cfg.Count)
	for i := 0; i < a.cfg.Count; i++ {
		id, err := gen.New()
		if err != nil {
			return err
		}
		ids = append(ids, id)
		a.print(id)
	}

	if !a.cfg.Record {
		return nil
	}
	return a.record(ctx, ids)
}

func (a *app) record(ctx context.Context, ids []guid.GUID) error {
	open := a.openLedger
	if open == nil {
		open = func(cfg sqlstore.Config) (recorder, error) { return sqlstore.Open(cfg) }
	}
	ledger, err := open(a.cfg.Ledger)
	if err != nil {
		return err
	}
	defer ledger.Close()

	ctx, cancel := context.WithTimeout(ctx, a.cfg.Timeout)
	defer cancel()

	if err := ledger.EnsureSchema(ctx); err != nil {
		return err
	}
	if err := ledger.RecordBatch(ctx, a.cfg.Tag, ids); err != nil {
		return err
	}
	a.logger.Printf("recorded %d GUIDs under tag %q", len(ids), a.cfg.Tag)
	return nil
}

// parse normalizes each argument, or each stdin line when there are no
// arguments. Lenient mode prints the invalid GUID for malformed input;
// strict mode stops at the first malformed value.
func (a *app) parse(args []string) error {
	if len(args) > 0 {
		for _, s := range args {
			if err := a.parseOne(s); err != nil {
				return err
			}
		}
		return nil
	}

	scanner := bufio.NewScanner(a.stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := a.parseOne(line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func (a *app) parseOne(s string) error {
	if !a.cfg.Strict {
		id := guid.FromString(s)
		if !id.Valid() {
			a.logger.Printf("invalid GUID %q", s)
		}
		a.print(id)
		return nil
	}

	id, err := guid.Parse(s)
	if err != nil {
		return fmt.Errorf("%q: %w", s, err)
	}
	a.print(id)
	return nil
}

func (a *app) print(id guid.GUID) {
	out := formatters[a.cfg.Format](id)
	if a.cfg.Hash {
		fmt.Fprintf(a.stdout, "%s %016x\n", out, id.Hash())
		return
	}
	fmt.Fprintln(a.stdout, out)
}
