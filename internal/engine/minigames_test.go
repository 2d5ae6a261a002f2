package engine

import "testing"

func TestParticleGameStagedFeedbackAndCompletion(t *testing.T) {
	p := NewParticleGame()
	if _, ok := p.Interact(0); ok {
		t.Fatal("first atom must not resolve the game")
	}
	if p.Feedback() == "" {
		t.Fatal("expected staged feedback after first atom")
	}
	p.Interact(1)
	first := p.Feedback()
	p.Interact(2)
	if p.Feedback() == first {
		t.Fatal("expected new feedback at third atom")
	}
	p.Interact(3)
	fact, ok := p.Interact(4)
	if !ok {
		t.Fatal("fifth atom must resolve the game")
	}
	if fact.Title != "Solar Flare Effects" {
		t.Fatalf("unexpected fact title: %q", fact.Title)
	}
	if !p.Impact() {
		t.Fatal("impact flag should be set on completion")
	}
	if p.Status() != StatusSucceeded {
		t.Fatalf("expected succeeded, got %s", p.Status())
	}
}

func TestParticleGameIgnoresRepeatClicks(t *testing.T) {
	p := NewParticleGame()
	p.Interact(0)
	p.Interact(0)
	p.Interact(0)
	if p.Count() != 1 {
		t.Fatalf("repeat clicks must not count, got %d", p.Count())
	}
}

func TestRadioGameSuccessCancelsTimeout(t *testing.T) {
	r := NewRadioGame()
	for i := 0; i < RadioThreshold-1; i++ {
		if _, ok := r.Interact(i); ok {
			t.Fatalf("line %d must not resolve", i)
		}
	}
	fact, ok := r.Interact(RadioThreshold - 1)
	if !ok || fact.Title != "Communication Restoration" {
		t.Fatalf("expected restoration fact, got %+v ok=%v", fact, ok)
	}
	// advancing the clock far past the deadline must not produce the
	// disruption entry
	for i := 0; i < RadioTimeout*2; i++ {
		if _, ok := r.Tick(); ok {
			t.Fatal("resolved game fired again on tick")
		}
	}
	if r.Status() != StatusSucceeded {
		t.Fatalf("status flipped after success: %s", r.Status())
	}
}

func TestRadioGameTimeoutCancelsSuccess(t *testing.T) {
	r := NewRadioGame()
	var fact Fact
	var fired bool
	for i := 0; i < RadioTimeout; i++ {
		fact, fired = r.Tick()
	}
	if !fired || fact.Title != "Communication Disruption" {
		t.Fatalf("expected disruption at expiry, got %+v fired=%v", fact, fired)
	}
	if r.Status() != StatusTimedOut {
		t.Fatalf("expected timed_out, got %s", r.Status())
	}
	if _, ok := r.Interact(0); ok {
		t.Fatal("clicks after timeout must not resolve")
	}
}

func TestPowerGameAllCircuitsAboveThreshold(t *testing.T) {
	p := NewPowerGame()
	// circuits start at 20; three clicks bring one to 80
	for c := 0; c < PowerCircuits-1; c++ {
		for i := 0; i < 3; i++ {
			if _, ok := p.Interact(c); ok {
				t.Fatalf("circuit %d resolved early", c)
			}
		}
	}
	p.Interact(PowerCircuits - 1)
	p.Interact(PowerCircuits - 1)
	fact, ok := p.Interact(PowerCircuits - 1)
	if !ok || fact.Title != "Power Grid Restoration" {
		t.Fatalf("expected restoration when all circuits >= %d, got %+v ok=%v", PowerThreshold, fact, ok)
	}
}

func TestPowerGameLevelCap(t *testing.T) {
	p := NewPowerGame()
	for i := 0; i < 20; i++ {
		p.Interact(0)
	}
	if p.Levels()[0] != PowerCap {
		t.Fatalf("level must cap at %d, got %d", PowerCap, p.Levels()[0])
	}
}

func TestGPSGameTimeoutRace(t *testing.T) {
	g := NewGPSGame()
	g.Interact(0)
	g.Interact(1)
	for i := 0; i < GPSTimeout-1; i++ {
		g.Tick()
	}
	fact, ok := g.Tick()
	if !ok || fact.Title != "GPS Disruption" {
		t.Fatalf("expected disruption at expiry, got %+v ok=%v", fact, ok)
	}
	if _, ok := g.Interact(2); ok {
		t.Fatal("alignment after timeout must not resolve")
	}
}

func TestAuroraSelectThenPlace(t *testing.T) {
	a := NewAuroraGame()
	if _, ok := a.Interact(0); ok {
		t.Fatal("placing with no selection must do nothing")
	}
	if !a.Select(2) {
		t.Fatal("selecting a fresh photo should succeed")
	}
	// selecting another photo replaces the previous selection
	a.Select(1)
	if a.Selected() != 1 {
		t.Fatalf("expected selection 1, got %d", a.Selected())
	}
	if _, ok := a.Interact(0); ok {
		t.Fatal("first placement must not complete the game")
	}
	if a.Slots()[0] != 1 {
		t.Fatalf("slot 0 should hold photo 1, got %d", a.Slots()[0])
	}
	if a.Select(1) {
		t.Fatal("a consumed photo cannot be reselected")
	}
	// a filled slot refuses another photo
	a.Select(0)
	if _, ok := a.Interact(0); ok {
		t.Fatal("filled slot accepted a second photo")
	}
	a.Interact(1)
	a.Select(2)
	a.Interact(2)
	a.Select(3)
	fact, ok := a.Interact(3)
	if !ok || fact.Title != "Aurora Photography" {
		t.Fatalf("expected aurora fact when all slots filled, got %+v ok=%v", fact, ok)
	}
}

func TestNewMiniGamePerScene(t *testing.T) {
	for scene := 1; scene <= SceneCount; scene++ {
		mg := NewMiniGame(scene)
		if mg == nil {
			t.Fatalf("no mini-game for scene %d", scene)
		}
		if mg.Scene() != scene {
			t.Fatalf("scene mismatch: want %d got %d", scene, mg.Scene())
		}
		if mg.Status() != StatusActive {
			t.Fatalf("fresh tracker must be active, got %s", mg.Status())
		}
	}
	if NewMiniGame(6) != nil {
		t.Fatal("scene 6 does not exist")
	}
}
