// Command migrate applies db/schema.sql to the configured database with Atlas.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"field-booking/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "migrate:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		schemaPath string
		devURL     string
		atlasBin   string
		dryRun     bool
		timeout    time.Duration
	)

	flagSet := pflag.NewFlagSet("migrate", pflag.ContinueOnError)
	flagSet.StringVar(&schemaPath, "schema", "db/schema.sql", "desired schema file")
	flagSet.StringVar(&devURL, "dev-url", "docker://postgres/17/dev", "scratch database Atlas uses to normalise the schema")
	flagSet.StringVar(&atlasBin, "atlas", "atlas", "atlas binary")
	flagSet.BoolVar(&dryRun, "dry-run", false, "print the planned statements without applying them")
	flagSet.DurationVar(&timeout, "timeout", 2*time.Minute, "overall timeout")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		return err
	}

	client, err := atlasexec.NewClient(".", atlasBin)
	if err != nil {
		return fmt.Errorf("init atlas client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	res, err := client.SchemaApply(ctx, &atlasexec.SchemaApplyParams{
		URL:         dbCfg.BuildDSN(),
		To:          "file://" + schemaPath,
		DevURL:      devURL,
		DryRun:      dryRun,
		AutoApprove: true,
	})
	if err != nil {
		return fmt.Errorf("schema apply: %w", err)
	}

	stmts := res.Changes.Applied
	verb := "applied"
	if dryRun {
		stmts = res.Changes.Pending
		verb = "pending"
	}
	if len(stmts) == 0 {
		fmt.Println("schema is up to date")
		return nil
	}
	for _, stmt := range stmts {
		fmt.Println(stmt)
	}
	fmt.Printf("%d statement(s) %s\n", len(stmts), verb)
	return nil
}
