package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"github.com/Adinayykka/Space-Weather/internal/store"
	"github.com/Adinayykka/Space-Weather/internal/util"
)

// Run drives the terminal game until the player quits. db may be nil; the
// archive is simply skipped then.
func Run(ctx context.Context, db *store.DB, cfg util.Config) error {
	p := tea.NewProgram(
		initialModel(ctx, db, cfg),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "run ui")
	}
	return nil
}
