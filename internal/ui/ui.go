package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/Adinayykka/Space-Weather/internal/cert"
	"github.com/Adinayykka/Space-Weather/internal/engine"
	"github.com/Adinayykka/Space-Weather/internal/store"
	"github.com/Adinayykka/Space-Weather/internal/text"
	"github.com/Adinayykka/Space-Weather/internal/util"
)

// tickMsg is the 1 Hz clock pulse feeding every countdown.
type tickMsg time.Time

// dismissMsg hides the notification. Every notice schedules its own
// dismiss timer; a timer fires unconditionally, so a burst of notices can
// dismiss the newest one early (last-writer-wins display, independent
// re-timing).
type dismissMsg struct{}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func dismissCmd() tea.Cmd {
	return tea.Tick(engine.NoticeDismiss, func(time.Time) tea.Msg { return dismissMsg{} })
}

var genderOptions = []string{"female", "male", "other"}

// regForm is the hand-rolled registration form: three fields, one focus.
type regForm struct {
	name    string
	surname string
	gender  int // index into genderOptions, -1 unset
	focus   int // 0 name, 1 surname, 2 gender
}

func newRegForm() regForm { return regForm{gender: -1} }

func (f regForm) genderValue() string {
	if f.gender < 0 || f.gender >= len(genderOptions) {
		return ""
	}
	return genderOptions[f.gender]
}

type model struct {
	ctx  context.Context
	game *engine.Game
	db   *store.DB // nil when the archive is disabled
	cfg  util.Config

	styles styles
	md     *glamour.TermRenderer
	width  int
	height int

	form      regForm
	noticeSeq int
	startedAt time.Time

	exportStatus  string
	archiveStatus string
	archived      bool
	pastMissions  []store.MissionRecord
}

func initialModel(ctx context.Context, db *store.DB, cfg util.Config) model {
	renderer, _ := glamour.NewTermRenderer(glamour.WithAutoStyle())
	return model{
		ctx:    ctx,
		game:   engine.New(),
		db:     db,
		cfg:    cfg,
		styles: newStyles(paletteFor(cfg.Theme)),
		md:     renderer,
		form:   newRegForm(),
	}
}

func (m model) Init() tea.Cmd { return tickCmd() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		m.game.Tick()
		cmds := []tea.Cmd{tickCmd()}
		if cmd := m.noticeTimer(); cmd != nil {
			cmds = append(cmds, cmd)
		}
		m.maybeFinish()
		return m, tea.Batch(cmds...)
	case dismissMsg:
		m.game.ClearNotice()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// dispatch routes a gesture into the engine and schedules a dismiss timer
// when it produced a fresh notification.
func (m *model) dispatch(a engine.Action) tea.Cmd {
	m.game.Dispatch(a)
	cmd := m.noticeTimer()
	m.maybeFinish()
	return cmd
}

func (m *model) noticeTimer() tea.Cmd {
	if n := m.game.Notice(); n != nil && n.Seq != m.noticeSeq {
		m.noticeSeq = n.Seq
		return dismissCmd()
	}
	return nil
}

// maybeFinish archives the playthrough the first time the results screen
// is reached. Archive failures degrade to a status line; the game itself
// never depends on the database.
func (m *model) maybeFinish() {
	if m.game.Screen() != engine.ScreenResults || m.archived {
		return
	}
	m.archived = true
	if m.db == nil {
		return
	}
	player := m.game.Player()
	rec := store.MissionRecord{
		PlayerName:    player.Name,
		PlayerSurname: player.Surname,
		Gender:        player.Gender,
		Score:         m.game.Score(),
		QuizLength:    engine.QuizLength,
		StartedAt:     m.startedAt,
		FinishedAt:    time.Now(),
	}
	if _, err := m.db.SaveMission(m.ctx, rec, m.game.Directory().List()); err != nil {
		m.archiveStatus = "archive failed: " + err.Error()
		return
	}
	m.archiveStatus = "mission archived"
	if recent, err := store.NewMissionRepo(m.db).ListRecent(m.ctx, 5); err == nil {
		m.pastMissions = recent
	}
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()
	if k == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.game.Screen() {
	case engine.ScreenSplash:
		return m, m.dispatch(engine.Action{Kind: engine.ActionAnyInput})
	case engine.ScreenIntro:
		if k == "enter" || k == " " {
			return m, m.dispatch(engine.Action{Kind: engine.ActionContinue})
		}
	case engine.ScreenRegister:
		return m.handleRegisterKey(k)
	case engine.ScreenMenu:
		switch k {
		case "1":
			return m, m.dispatch(engine.Action{Kind: engine.ActionMenuStart})
		case "2":
			return m, m.dispatch(engine.Action{Kind: engine.ActionOpenDirectory})
		case "3":
			return m, m.dispatch(engine.Action{Kind: engine.ActionMenuInformation})
		case "t":
			m.cfg.Theme = nextThemeName(m.cfg.Theme)
			m.styles = newStyles(paletteFor(m.cfg.Theme))
			return m, nil
		case "q":
			return m, tea.Quit
		}
	case engine.ScreenVideo:
		if k == "enter" || k == "s" {
			return m, m.dispatch(engine.Action{Kind: engine.ActionSkipVideo})
		}
	case engine.ScreenStory:
		return m.handleStoryKey(k)
	case engine.ScreenDirectory:
		if k == "esc" || k == "l" || k == "q" {
			return m, m.dispatch(engine.Action{Kind: engine.ActionCloseDirectory})
		}
	case engine.ScreenQuiz:
		return m.handleQuizKey(k)
	case engine.ScreenResults:
		switch k {
		case "c":
			m.exportCertificate()
			return m, nil
		case "r":
			m.form = newRegForm()
			m.archived = false
			m.archiveStatus = ""
			m.exportStatus = ""
			m.pastMissions = nil
			return m, m.dispatch(engine.Action{Kind: engine.ActionRestart})
		case "q":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) handleRegisterKey(k string) (tea.Model, tea.Cmd) {
	f := &m.form
	switch k {
	case "tab", "down":
		f.focus = (f.focus + 1) % 3
	case "shift+tab", "up":
		f.focus = (f.focus + 2) % 3
	case "left", "right":
		if f.focus == 2 {
			step := 1
			if k == "left" {
				step = len(genderOptions) - 1
			}
			f.gender = ((f.gender + step) + len(genderOptions)) % len(genderOptions)
		}
	case "backspace":
		switch f.focus {
		case 0:
			if len(f.name) > 0 {
				f.name = f.name[:len(f.name)-1]
			}
		case 1:
			if len(f.surname) > 0 {
				f.surname = f.surname[:len(f.surname)-1]
			}
		}
	case "enter":
		if f.focus < 2 {
			f.focus++
			return m, nil
		}
		cmd := m.dispatch(engine.Action{
			Kind: engine.ActionSubmitRegistration,
			Player: engine.PlayerInfo{
				Name:    f.name,
				Surname: f.surname,
				Gender:  f.genderValue(),
			},
		})
		if m.game.Screen() != engine.ScreenRegister {
			m.startedAt = time.Now()
		}
		return m, cmd
	default:
		if isRuneInput(k) && f.focus < 2 {
			if f.focus == 0 {
				f.name += k
			} else {
				f.surname += k
			}
		}
	}
	return m, nil
}

func (m model) handleStoryKey(k string) (tea.Model, tea.Cmd) {
	switch k {
	case "n":
		return m, m.dispatch(engine.Action{Kind: engine.ActionNextScene})
	case "l":
		return m, m.dispatch(engine.Action{Kind: engine.ActionOpenDirectory})
	}
	if _, ok := m.game.MiniGame().(*engine.AuroraGame); ok {
		if idx, ok := digitIndex(k, engine.AuroraSlots); ok {
			return m, m.dispatch(engine.Action{Kind: engine.ActionSelectPhoto, Target: idx})
		}
		if idx := strings.Index("asdf", k); idx >= 0 && len(k) == 1 {
			return m, m.dispatch(engine.Action{Kind: engine.ActionPlacePhoto, Target: idx})
		}
		return m, nil
	}
	if idx, ok := digitIndex(k, 9); ok {
		return m, m.dispatch(engine.Action{Kind: engine.ActionInteract, Target: idx})
	}
	return m, nil
}

func (m model) handleQuizKey(k string) (tea.Model, tea.Cmd) {
	if idx, ok := digitIndex(k, 4); ok {
		return m, m.dispatch(engine.Action{Kind: engine.ActionSelectAnswer, Target: idx})
	}
	if k == "n" || k == "enter" {
		return m, m.dispatch(engine.Action{Kind: engine.ActionNextQuestion})
	}
	return m, nil
}

func (m *model) exportCertificate() {
	path, err := cert.Export(m.cfg.CertDir, m.game.Player(), m.game.Score(), time.Now())
	if err != nil {
		m.exportStatus = "export failed: " + err.Error()
		return
	}
	m.exportStatus = path
}

// View ----------------------------------------------------------------------

func (m model) View() string {
	var body string
	switch m.game.Screen() {
	case engine.ScreenSplash:
		body = m.renderSplash()
	case engine.ScreenIntro:
		body = m.renderIntro()
	case engine.ScreenRegister:
		body = m.renderRegister()
	case engine.ScreenMenu:
		body = m.renderMenu()
	case engine.ScreenVideo:
		body = m.renderVideo()
	case engine.ScreenStory:
		body = m.renderStory()
	case engine.ScreenDirectory:
		body = m.renderDirectory()
	case engine.ScreenQuiz:
		body = m.renderQuiz()
	case engine.ScreenResults:
		body = m.renderResults()
	}
	if n := m.game.Notice(); n != nil {
		return m.renderNotice(*n) + "\n" + body
	}
	return body
}

func (m model) renderNotice(n engine.Notice) string {
	style := m.styles.success
	switch n.Severity {
	case engine.SeverityError:
		style = m.styles.errs
	case engine.SeverityInfo:
		style = m.styles.info
	}
	return style.Render("▌ " + n.Message)
}

func (m model) markdown(src string) string {
	if m.md == nil {
		return src
	}
	out, err := m.md.Render(src)
	if err != nil {
		return src
	}
	return out
}

func (m model) renderSplash() string {
	content := m.styles.title.Render(text.Title) + "\n\n" +
		"A journey through solar storms\n\n" +
		m.styles.muted.Render("Press any key to begin")
	return m.styles.box.Render(content)
}

func (m model) renderIntro() string {
	return m.markdown(text.Intro()) + "\n" + m.styles.muted.Render("[Enter] Continue")
}

func (m model) renderRegister() string {
	f := m.form
	cursor := func(i int) string {
		if f.focus == i {
			return "> "
		}
		return "  "
	}
	gender := f.genderValue()
	if gender == "" {
		gender = "(left/right to choose)"
	}
	content := m.styles.title.Render("CREW REGISTRATION") + "\n\n" +
		fmt.Sprintf("%sName:    %s\n", cursor(0), f.name) +
		fmt.Sprintf("%sSurname: %s\n", cursor(1), f.surname) +
		fmt.Sprintf("%sGender:  %s\n", cursor(2), gender) +
		"\n" + m.styles.muted.Render("[Tab] next field  [Enter] submit")
	return m.styles.box.Render(content)
}

func (m model) renderMenu() string {
	content := m.styles.title.Render(text.Title+" — MAIN MENU") + "\n\n" +
		"[1] Start Mission\n[2] Directory\n[3] Information\n\n" +
		m.styles.muted.Render("T Theme ("+m.cfg.Theme+")  Q Quit")
	return m.styles.box.Render(content)
}

func (m model) renderVideo() string {
	// No video surface in a terminal; the briefing is the static fallback.
	return m.markdown(text.Briefing()) + "\n" + m.styles.muted.Render("[Enter] Continue  [S] Skip briefing")
}

func (m model) renderStory() string {
	scene := m.game.Scene()
	top := m.styles.title.Render(fmt.Sprintf("%s — Scene %d/%d", text.Title, scene, engine.SceneCount))
	narrative := m.markdown(text.SceneNarrative(scene))
	panel := m.renderMiniGame()
	bottom := m.styles.muted.Render("[N] next scene  [L] directory")
	return lipgloss.JoinVertical(lipgloss.Left, top, narrative, panel, bottom)
}

func (m model) renderMiniGame() string {
	mg := m.game.MiniGame()
	if mg == nil {
		return ""
	}
	var b strings.Builder
	if t := mg.TimeLeft(); t >= 0 {
		b.WriteString(fmt.Sprintf("Time left: %2ds\n", t))
	}
	switch g := mg.(type) {
	case *engine.ParticleGame:
		b.WriteString(fmt.Sprintf("Particles accelerated: %d/%d\n", g.Count(), engine.ParticleThreshold))
		b.WriteString(m.checkRow("Atom", g.Atoms()))
		b.WriteString(m.bar(g.Count() * 100 / engine.ParticleThreshold))
		b.WriteString("\n")
		if fb := g.Feedback(); fb != "" {
			b.WriteString(m.styles.accent.Render(fb) + "\n")
		}
		if g.Impact() {
			b.WriteString(m.styles.errs.Render("⚠ Impact zone: Earth") + "\n")
		}
		b.WriteString(m.styles.muted.Render("[1-5] accelerate a particle"))
	case *engine.RadioGame:
		b.WriteString(fmt.Sprintf("Lines reconnected: %d/%d\n", g.Count(), engine.RadioThreshold))
		b.WriteString(m.checkRow("Line", g.Lines()))
		b.WriteString(m.styles.muted.Render("[1-4] reconnect a frequency line"))
	case *engine.PowerGame:
		for i, level := range g.Levels() {
			b.WriteString(fmt.Sprintf("Circuit %d %s %3d%%\n", i+1, m.bar(level), level))
		}
		b.WriteString(m.styles.muted.Render("[1-4] boost a circuit"))
	case *engine.GPSGame:
		b.WriteString(fmt.Sprintf("Signals aligned: %d/%d\n", g.Count(), engine.GPSThreshold))
		b.WriteString(m.checkRow("Signal", g.Signals()))
		b.WriteString(m.styles.muted.Render("[1-4] align a satellite signal"))
	case *engine.AuroraGame:
		b.WriteString("Photos: ")
		for i, used := range g.Used() {
			label := fmt.Sprintf("[%d]", i+1)
			switch {
			case used:
				label = m.styles.muted.Render(fmt.Sprintf("(%d)", i+1))
			case g.Selected() == i:
				label = m.styles.accent.Render(fmt.Sprintf("[%d]", i+1))
			}
			b.WriteString(label + " ")
		}
		b.WriteString("\nSlots:  ")
		for i, photo := range g.Slots() {
			if photo == engine.AuroraNoPhoto {
				b.WriteString(fmt.Sprintf("[%c]_ ", 'A'+i))
			} else {
				b.WriteString(m.styles.success.Render(fmt.Sprintf("[%c]%d ", 'A'+i, photo+1)))
			}
		}
		b.WriteString("\n" + m.styles.muted.Render("[1-4] select a photo, then [A-D] place it"))
	}
	status := mg.Status()
	if status.Resolved() {
		line := m.styles.success.Render("Station secured.")
		if status == engine.StatusTimedOut {
			line = m.styles.errs.Render("Too late — the storm won this one.")
		}
		b.WriteString("\n" + line)
	}
	return m.styles.box.Render(b.String())
}

func (m model) checkRow(label string, states []bool) string {
	var b strings.Builder
	for i, done := range states {
		mark := "·"
		if done {
			mark = "✓"
		}
		b.WriteString(fmt.Sprintf("%s %d %s  ", label, i+1, mark))
	}
	b.WriteString("\n")
	return b.String()
}

func (m model) renderDirectory() string {
	entries := m.game.Directory().List()
	var b strings.Builder
	b.WriteString(m.styles.title.Render("DIRECTORY") + "\n\n")
	if len(entries) == 0 {
		b.WriteString(text.DirectoryEmpty + "\n")
	}
	for _, e := range entries {
		b.WriteString(m.styles.accent.Render(e.Title) + m.styles.muted.Render("  "+e.LoggedAt.Format("15:04:05")) + "\n")
		b.WriteString(e.Content + "\n\n")
	}
	b.WriteString(m.styles.muted.Render("[Esc] back"))
	return b.String()
}

func (m model) renderQuiz() string {
	q := m.game.Quiz()
	if q == nil {
		return ""
	}
	cur, ok := q.Current()
	if !ok {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.styles.title.Render(fmt.Sprintf("BRIEFING QUIZ — Question %d/%d", q.Index()+1, q.Length())))
	b.WriteString(m.styles.muted.Render(fmt.Sprintf("   %ds remaining", q.TimeLeft())) + "\n\n")
	b.WriteString(cur.Prompt + "\n\n")
	for i, choice := range cur.Choices {
		line := fmt.Sprintf("[%d] %s", i+1, choice)
		if q.Selected() == i {
			line = m.styles.accent.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
	if q.CanAdvance() {
		b.WriteString(m.styles.muted.Render("[1-4] change answer  [Enter] next question"))
	} else {
		b.WriteString(m.styles.muted.Render("[1-4] select an answer"))
	}
	return b.String()
}

func (m model) renderResults() string {
	score := m.game.Score()
	var b strings.Builder
	b.WriteString(m.styles.title.Render("MISSION COMPLETE") + "\n\n")
	b.WriteString(fmt.Sprintf("%s, your final score: %d/%d\n\n", m.game.Player().Name, score, engine.QuizLength))
	msg := text.ResultsMessage(score)
	switch {
	case score >= engine.PassHigh:
		b.WriteString(m.styles.success.Render(msg))
	case score >= engine.PassMid:
		b.WriteString(m.styles.info.Render(msg))
	default:
		b.WriteString(m.styles.errs.Render(msg))
	}
	b.WriteString("\n\n")
	if m.exportStatus != "" {
		b.WriteString("Certificate: " + m.exportStatus + "\n")
	}
	if m.archiveStatus != "" {
		b.WriteString(m.styles.muted.Render(m.archiveStatus) + "\n")
	}
	if len(m.pastMissions) > 0 {
		b.WriteString("\nRecent missions:\n")
		for _, rec := range m.pastMissions {
			b.WriteString(fmt.Sprintf("  %s %s — %d/%d — %s\n",
				rec.PlayerName, rec.PlayerSurname, rec.Score, rec.QuizLength,
				rec.FinishedAt.Format("2006-01-02")))
		}
	}
	b.WriteString("\n" + m.styles.muted.Render("[C] download certificate  [R] restart  [Q] quit"))
	return m.styles.box.Render(b.String())
}

// Helpers --------------------------------------------------------------------

// bar renders a ten-cell progress bar for a 0-100 value.
func (m model) bar(v int) string {
	width := 10
	fill := int((float64(v)/100.0)*float64(width) + 0.5)
	if fill > width {
		fill = width
	}
	return m.styles.barFill.Render(strings.Repeat("█", fill)) +
		m.styles.barRest.Render(strings.Repeat("·", width-fill))
}

// digitIndex maps keys "1".."9" to a zero-based index below limit.
func digitIndex(k string, limit int) (int, bool) {
	if len(k) != 1 || k[0] < '1' || k[0] > '9' {
		return 0, false
	}
	idx := int(k[0] - '1')
	if idx >= limit {
		return 0, false
	}
	return idx, true
}

func isRuneInput(s string) bool {
	runes := []rune(s)
	return len(runes) == 1 && runes[0] >= 32 && runes[0] < 127
}
