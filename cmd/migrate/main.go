// Command migrate applies the SQL migrations in migrations/ to the
// configured database using the atlas CLI.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/joho/godotenv"

	"tripslot/internal/pkg/config"
)

func main() {
	_ = godotenv.Load()

	var (
		dir    = flag.String("dir", "file://migrations", "migration directory URL")
		binary = flag.String("atlas", "atlas", "path to the atlas binary")
	)
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	workdir, err := os.Getwd()
	if err != nil {
		slog.Error("failed to resolve working directory", "error", err)
		os.Exit(1)
	}

	client, err := atlasexec.NewClient(workdir, *binary)
	if err != nil {
		slog.Error("failed to create atlas client", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    cfg.DB.BuildDSN(),
		DirURL: *dir,
	})
	if err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	slog.Info("migrations applied",
		"target", res.Target,
		"applied", len(res.Applied),
	)
}
