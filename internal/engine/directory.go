package engine

import "time"

// DirectoryEntry is one collected fact. Entries are append-only within a
// playthrough; only a full restart clears them.
type DirectoryEntry struct {
	Title    string
	Content  string
	LoggedAt time.Time
}

// Directory is the in-session log of facts unlocked by mini-game
// completions. Insertion order is preserved, duplicates are allowed.
type Directory struct {
	entries []DirectoryEntry
	now     func() time.Time
}

func NewDirectory() *Directory {
	return &Directory{now: time.Now}
}

// NewDirectoryAt uses a custom clock for timestamps.
func NewDirectoryAt(now func() time.Time) *Directory {
	if now == nil {
		now = time.Now
	}
	return &Directory{now: now}
}

func (d *Directory) Append(title, content string) {
	d.entries = append(d.entries, DirectoryEntry{Title: title, Content: content, LoggedAt: d.now()})
}

// List returns the entries oldest first.
func (d *Directory) List() []DirectoryEntry {
	return append([]DirectoryEntry{}, d.entries...)
}

func (d *Directory) Len() int { return len(d.entries) }

// Clear is used only by restart.
func (d *Directory) Clear() { d.entries = nil }
