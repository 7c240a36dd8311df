package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

func resetBibFlags() {
	bibTitle, bibDate, bibPublisher = "", "", ""
	bibLink, bibLongLink, bibIssueLink, bibAuthor = "", "", "", ""
}

func TestBibAddListRemoveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	configPath = writeTestConfig(t, dir)

	resetBibFlags()
	bibTitle = "Structured Programming with go to Statements"
	bibAuthor = "Knuth"
	if err := runBibAdd(&cobra.Command{}, []string{"knuth74"}); err != nil {
		t.Fatalf("runBibAdd: %v", err)
	}

	store, err := openBibStore()
	if err != nil {
		t.Fatalf("openBibStore: %v", err)
	}
	entries, err := store.List()
	store.Close()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != "knuth74" {
		t.Fatalf("got %+v", entries)
	}

	if err := runBibRemove(&cobra.Command{}, []string{"knuth74"}); err != nil {
		t.Fatalf("runBibRemove: %v", err)
	}

	store, err = openBibStore()
	if err != nil {
		t.Fatalf("openBibStore: %v", err)
	}
	entries, _ = store.List()
	store.Close()
	if len(entries) != 0 {
		t.Errorf("expected no citations after removal, got %+v", entries)
	}
}

func TestBibAddDuplicateIDFails(t *testing.T) {
	dir := t.TempDir()
	configPath = writeTestConfig(t, dir)

	resetBibFlags()
	bibTitle = "First"
	if err := runBibAdd(&cobra.Command{}, []string{"dup"}); err != nil {
		t.Fatalf("runBibAdd: %v", err)
	}
	if err := runBibAdd(&cobra.Command{}, []string{"dup"}); err == nil {
		t.Fatal("expected an error adding a duplicate ID")
	}
}

func TestBibRemoveMissingIDFails(t *testing.T) {
	dir := t.TempDir()
	configPath = writeTestConfig(t, dir)

	if err := runBibRemove(&cobra.Command{}, []string{"does-not-exist"}); err == nil {
		t.Fatal("expected an error removing a missing citation")
	}
}

func TestOpenBibStoreHonorsConfigPath(t *testing.T) {
	dir := t.TempDir()
	configPath = writeTestConfig(t, dir)

	store, err := openBibStore()
	if err != nil {
		t.Fatalf("openBibStore: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(dir, "bib.db")); err != nil {
		t.Fatalf("expected the store at the configured database_path: %v", err)
	}
}
