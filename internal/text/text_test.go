package text

import (
	"strings"
	"testing"

	"github.com/Adinayykka/Space-Weather/internal/engine"
)

func TestResultsMessageTiers(t *testing.T) {
	perfect := ResultsMessage(10)
	high := ResultsMessage(engine.PassHigh)
	mid := ResultsMessage(engine.PassMid)
	low := ResultsMessage(5)
	if perfect != high {
		t.Fatal("scores in the top tier should share a message")
	}
	if high == mid || mid == low || high == low {
		t.Fatal("result tiers must have distinct messages")
	}
	if !strings.Contains(high, "Excellent") {
		t.Fatalf("top tier message changed: %q", high)
	}
}

func TestSceneNarrativeBounds(t *testing.T) {
	for scene := 1; scene <= engine.SceneCount; scene++ {
		if SceneNarrative(scene) == "" {
			t.Fatalf("scene %d has no narrative", scene)
		}
	}
	if SceneNarrative(0) != "" || SceneNarrative(engine.SceneCount+1) != "" {
		t.Fatal("out-of-range scenes must yield empty narrative")
	}
}
