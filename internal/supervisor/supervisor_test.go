package supervisor

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCleanConfigFile_RemovesInvalidSymbols(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trade.json")
	original := `{"symbols":["btcusdt","xyz!","ethusdt"],"postgres":"postgres://localhost/db","batch_size":100}`
	if err := os.WriteFile(path, []byte(original), 0644); err != nil {
		t.Fatalf("write original: %v", err)
	}

	cleanConfigFile(path, []string{"xyz!"}, slog.Default())

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read cleaned file: %v", err)
	}

	if string(got) == original {
		t.Fatal("expected file contents to change")
	}
	for _, want := range []string{"btcusdt", "ethusdt"} {
		if !strings.Contains(string(got), want) {
			t.Errorf("cleaned file %q missing %q", got, want)
		}
	}
	if strings.Contains(string(got), "xyz!") {
		t.Errorf("cleaned file %q still contains invalid symbol", got)
	}
}

func TestCleanConfigFile_MissingFileIsNonFatal(t *testing.T) {
	cleanConfigFile(filepath.Join(t.TempDir(), "missing.json"), []string{"xyz!"}, slog.Default())
}
