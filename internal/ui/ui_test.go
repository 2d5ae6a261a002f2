package ui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Adinayykka/Space-Weather/internal/engine"
	"github.com/Adinayykka/Space-Weather/internal/util"
)

func testModel() model {
	return initialModel(context.Background(), nil, util.Config{Theme: "catppuccin"})
}

func press(t *testing.T, m model, keys ...string) model {
	t.Helper()
	for _, k := range keys {
		var key tea.KeyMsg
		switch k {
		case "enter":
			key = tea.KeyMsg{Type: tea.KeyEnter}
		case "tab":
			key = tea.KeyMsg{Type: tea.KeyTab}
		case "right":
			key = tea.KeyMsg{Type: tea.KeyRight}
		default:
			key = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(key)
		m = next.(model)
	}
	return m
}

func TestStartsOnSplash(t *testing.T) {
	m := testModel()
	if got := m.game.Screen(); got != engine.ScreenSplash {
		t.Fatalf("initial screen = %s, want %s", got, engine.ScreenSplash)
	}
	if !strings.Contains(m.View(), "Press any key") {
		t.Fatalf("splash view missing prompt:\n%s", m.View())
	}
}

func TestAnyKeyLeavesSplash(t *testing.T) {
	m := press(t, testModel(), "x")
	if got := m.game.Screen(); got != engine.ScreenIntro {
		t.Fatalf("screen after keypress = %s, want %s", got, engine.ScreenIntro)
	}
}

func TestRegistrationFlow(t *testing.T) {
	m := press(t, testModel(), "x", "enter") // splash, intro
	if got := m.game.Screen(); got != engine.ScreenRegister {
		t.Fatalf("screen = %s, want %s", got, engine.ScreenRegister)
	}
	m = press(t, m, "A", "d", "a", "tab", "L", "tab", "right", "enter")
	if got := m.game.Screen(); got != engine.ScreenMenu {
		t.Fatalf("screen after submit = %s, want %s", got, engine.ScreenMenu)
	}
	p := m.game.Player()
	if p.Name != "Ada" || p.Surname != "L" || p.Gender == "" {
		t.Fatalf("registered player = %+v", p)
	}
}

func TestEmptyRegistrationShowsError(t *testing.T) {
	m := press(t, testModel(), "x", "enter", "tab", "tab", "enter")
	if got := m.game.Screen(); got != engine.ScreenRegister {
		t.Fatalf("screen = %s, want %s", got, engine.ScreenRegister)
	}
	n := m.game.Notice()
	if n == nil || n.Severity != engine.SeverityError {
		t.Fatalf("notice = %+v, want error notice", n)
	}
	if !strings.Contains(m.View(), n.Message) {
		t.Fatalf("view does not surface the notice:\n%s", m.View())
	}
}

func TestDigitIndex(t *testing.T) {
	if idx, ok := digitIndex("3", 4); !ok || idx != 2 {
		t.Fatalf("digitIndex(3) = %d, %v", idx, ok)
	}
	if _, ok := digitIndex("5", 4); ok {
		t.Fatal("digit beyond limit accepted")
	}
	if _, ok := digitIndex("enter", 4); ok {
		t.Fatal("non-digit accepted")
	}
}

func TestDismissClearsNotice(t *testing.T) {
	m := press(t, testModel(), "x", "enter")
	m = press(t, m, "tab", "tab", "enter") // empty submit -> error notice
	if m.game.Notice() == nil {
		t.Fatal("expected a notice")
	}
	next, _ := m.Update(dismissMsg{})
	m = next.(model)
	if m.game.Notice() != nil {
		t.Fatal("notice survived dismiss")
	}
}
