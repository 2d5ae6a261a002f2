package cert

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Adinayykka/Space-Weather/internal/engine"
)

var testPlayer = engine.PlayerInfo{Name: "Ada", Surname: "Lovelace", Gender: "female"}

func TestRenderContainsPlayerAndScore(t *testing.T) {
	doc, err := Render(testPlayer, 9, time.Date(2025, 10, 4, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"Ada Lovelace", "9/10", "10/4/2025", "CERTIFICATE OF COMPLETION"} {
		if !strings.Contains(doc, want) {
			t.Fatalf("certificate missing %q", want)
		}
	}
}

func TestRenderEscapesPlayerInput(t *testing.T) {
	doc, err := Render(engine.PlayerInfo{Name: "<script>", Surname: "x", Gender: "other"}, 0, time.Now())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(doc, "<script>") {
		t.Fatal("player input must be HTML-escaped")
	}
}

func TestFilename(t *testing.T) {
	if got := Filename(testPlayer); got != "Space_Weather_Certificate_Ada.html" {
		t.Fatalf("unexpected filename: %q", got)
	}
}

func TestExportWritesFile(t *testing.T) {
	dir := t.TempDir()
	path, err := Export(dir, testPlayer, 7, time.Now())
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Fatalf("certificate written outside dir: %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read exported certificate: %v", err)
	}
	if !strings.Contains(string(data), "7/10") {
		t.Fatal("exported certificate missing score")
	}
}
