package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteAndReadCSV(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "paises.csv")

	header := []string{"id_pais", "code", "nome"}
	records := [][]string{
		{"1", "BRA", "Brazil"},
		{"2", "", "Name, with comma"},
	}
	err := WriteCSV(fileName, header, records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	readHeader, readRecords, err := ReadCSV(fileName)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(readHeader) != 3 || readHeader[2] != "nome" {
		t.Errorf("unexpected header: %v", readHeader)
	}
	if len(readRecords) != 2 {
		t.Fatalf("expected 2 records, got %d", len(readRecords))
	}
	if readRecords[1][2] != "Name, with comma" {
		t.Errorf("quoting was not preserved: %q", readRecords[1][2])
	}
}

func TestReadCSVMissingFile(t *testing.T) {
	_, _, err := ReadCSV(filepath.Join(t.TempDir(), "missing.csv"))
	if err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestRenameFiles(t *testing.T) {
	folder := t.TempDir()

	for _, name := range []string{"1_query.tmp", "2_query.tmp", "other.csv"} {
		err := os.WriteFile(filepath.Join(folder, name), []byte("data"), 0644)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	filenames, err := RenameFiles(folder, ".tmp", ".csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(filenames) != 2 {
		t.Fatalf("expected 2 renamed files, got %d", len(filenames))
	}
	for _, name := range []string{"1_query.csv", "2_query.csv", "other.csv"} {
		if _, err := os.Stat(filepath.Join(folder, name)); err != nil {
			t.Errorf("expected %s to exist: %v", name, err)
		}
	}
	leftovers, err := filepath.Glob(filepath.Join(folder, "*.tmp"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(leftovers) != 0 {
		t.Errorf("expected no tmp files left, found %v", leftovers)
	}
}

func TestRemoveFiles(t *testing.T) {
	folder := t.TempDir()

	for _, name := range []string{"stale.tmp", "keep.csv"} {
		err := os.WriteFile(filepath.Join(folder, name), []byte("data"), 0644)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	err := RemoveFiles(folder, ".tmp")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(folder, "stale.tmp")); !os.IsNotExist(err) {
		t.Error("expected stale.tmp to be removed")
	}
	if _, err := os.Stat(filepath.Join(folder, "keep.csv")); err != nil {
		t.Errorf("expected keep.csv to survive: %v", err)
	}
}
