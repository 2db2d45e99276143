package main

import (
	"path/filepath"
	"testing"
)

func TestRunStorageCommandUnsupported(t *testing.T) {
	if err := runStorageCommand("bogus", nil); err == nil {
		t.Fatal("expected error for unsupported command")
	}
}

func TestRunDBCommandRequiresSubcommand(t *testing.T) {
	if err := runDBCommand(nil); err == nil {
		t.Fatal("expected usage error")
	}
}

func TestRunDBCommandVacuum(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "orphans.db")

	err := runDBCommand([]string{"vacuum", "--db-path", dbPath})
	if err != nil {
		t.Fatalf("vacuum failed: %v", err)
	}
}

func TestRunDBCommandPurge(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "orphans.db")

	err := runDBCommand([]string{"purge", "--db-path", dbPath, "--older-than", "7"})
	if err != nil {
		t.Fatalf("purge failed: %v", err)
	}
}

func TestRunDBCommandUnsupportedSub(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "orphans.db")

	if err := runDBCommand([]string{"reindex", "--db-path", dbPath}); err == nil {
		t.Fatal("expected error for unsupported db command")
	}
}

func TestRunHistoryCommandEmpty(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "orphans.db")

	if err := runHistoryCommand([]string{"--db-path", dbPath}); err != nil {
		t.Fatalf("history failed: %v", err)
	}
}
