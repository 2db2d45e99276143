package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/AlexisDongMariano/aws-orphans/service/storage"
	"github.com/AlexisDongMariano/aws-orphans/service/web"
)

func runStorageCommand(cmd string, args []string) error {
	switch cmd {
	case "serve":
		return runServeCommand(args)
	case "db":
		return runDBCommand(args)
	case "history":
		return runHistoryCommand(args)
	default:
		return fmt.Errorf("unsupported command: %s", cmd)
	}
}

// runServeCommand serves the last stored scan over HTTP. It never talks to
// AWS; it only reads the local database.
func runServeCommand(args []string) error {
	fs := pflag.NewFlagSet("serve", pflag.ContinueOnError)
	dbPath := fs.String("db-path", "", "SQLite database path")
	port := fs.Int("port", 8080, "HTTP listen port")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store, err := storage.NewService(*dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	logger := newLogger().Level(zerolog.InfoLevel)
	return web.NewServer(store, &logger).ListenAndServe(*port)
}

func runDBCommand(args []string) error {
	fs := pflag.NewFlagSet("db", pflag.ContinueOnError)
	dbPath := fs.String("db-path", "", "SQLite database path")
	olderThan := fs.Int("older-than", 30, "Purge scans older than N days")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) == 0 {
		return fmt.Errorf("usage: aws-orphans db <vacuum|purge> [--db-path ...]")
	}

	store, err := storage.NewService(*dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	switch sub := rest[0]; sub {
	case "vacuum":
		return store.Vacuum(context.Background())
	case "purge":
		count, err := store.PurgeOlderThan(context.Background(), *olderThan)
		if err != nil {
			return err
		}
		fmt.Printf("Purged %d scans\n", count)
		return nil
	default:
		return fmt.Errorf("unsupported db command: %s", sub)
	}
}

func runHistoryCommand(args []string) error {
	fs := pflag.NewFlagSet("history", pflag.ContinueOnError)
	dbPath := fs.String("db-path", "", "SQLite database path")
	limit := fs.Int("limit", 20, "Number of scans to list")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store, err := storage.NewService(*dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	scans, err := store.GetRecentScans(*limit)
	if err != nil {
		return err
	}
	if len(scans) == 0 {
		fmt.Println("No scans stored yet. Run a scan with --store first.")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"ID", "Timestamp (UTC)", "Account", "SGs", "EIPs", "EBS", "Failed", "Duration", "Version"})
	for _, s := range scans {
		t.AppendRow(table.Row{
			s.ScanID,
			s.ScanTimestamp.UTC().Format("2006-01-02 15:04:05"),
			s.AccountID,
			s.SGCount,
			s.EIPCount,
			s.EBSCount,
			s.FailedRegions,
			fmt.Sprintf("%ds", s.DurationSec),
			s.Version,
		})
	}
	t.Render()
	return nil
}
