package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/vladislavdragonenkov/sales/internal/storage/postgres"
)

const defaultTimeout = 30 * time.Second

func main() {
	var (
		direction string
		steps     int
		dsn       string
	)

	flag.StringVar(&direction, "direction", "up", "up, down or status")
	flag.IntVar(&steps, "steps", 0, "how many migrations to run (0 means all on up; down defaults to 1)")
	flag.StringVar(&dsn, "dsn", "", "postgres connection string (defaults to SALES_POSTGRES_DSN)")
	flag.Parse()

	if strings.TrimSpace(dsn) == "" {
		dsn = strings.TrimSpace(os.Getenv("SALES_POSTGRES_DSN"))
	}
	if dsn == "" {
		fail("no DSN: pass -dsn or set SALES_POSTGRES_DSN")
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	store, err := postgres.Open(ctx, dsn)
	if err != nil {
		fail("connect to postgres: %v", err)
	}
	defer store.Close()

	switch strings.ToLower(strings.TrimSpace(direction)) {
	case "up":
		if err := store.MigrateUp(ctx, steps); err != nil {
			fail("apply migrations: %v", err)
		}
		printStatus(ctx, store, "up complete")
	case "down":
		if steps <= 0 {
			steps = 1
		}
		if err := store.MigrateDown(ctx, steps); err != nil {
			fail("roll back migrations: %v", err)
		}
		printStatus(ctx, store, "down complete")
	case "status":
		printStatus(ctx, store, "current state")
	default:
		fail("unknown direction %q, expected up, down or status", direction)
	}
}

// printStatus печатает версию схемы и число применённых миграций.
func printStatus(ctx context.Context, store *postgres.Store, label string) {
	version, count, err := store.MigrationStatus(ctx)
	if err != nil {
		fail("read migration status: %v", err)
	}
	fmt.Printf("%s: schema version %d, %d migration(s) applied\n", label, version, count)
}

func fail(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
