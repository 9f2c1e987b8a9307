// Command migrate applies the declarative schema in migrations/ to the
// configured database through the Atlas engine. It is the same schema
// the e2e harness loads directly, kept in one place.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"consultbook/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/kelseyhightower/envconfig"
)

func main() {
	var (
		schemaFile = flag.String("schema", "migrations/001_initial_schema.sql", "schema file to apply")
		devURL     = flag.String("dev-url", "docker://postgres/17/dev", "scratch database Atlas uses to compute the diff")
		dryRun     = flag.Bool("dry-run", false, "print the planned statements without applying them")
	)
	flag.Parse()

	var dbCfg config.DBConfig
	if err := envconfig.Process("", &dbCfg); err != nil {
		slog.Error("failed to load database config", "error", err.Error())
		os.Exit(1)
	}

	client, err := atlasexec.NewClient(".", "atlas")
	if err != nil {
		slog.Error("failed to initialize the atlas client", "error", err.Error())
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	res, err := client.SchemaApply(ctx, &atlasexec.SchemaApplyParams{
		URL:    dbCfg.BuildDSN(),
		To:     "file://" + *schemaFile,
		DevURL: *devURL,
		DryRun: *dryRun,
	})
	if err != nil {
		slog.Error("schema apply failed", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("schema apply finished",
		"applied", len(res.Changes.Applied),
		"pending", len(res.Changes.Pending),
		"dry_run", *dryRun)
}
