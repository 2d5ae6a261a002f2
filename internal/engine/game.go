package engine

import (
	"fmt"
	"strings"
	"time"
)

// PlayerInfo is captured once at registration and immutable until restart.
type PlayerInfo struct {
	Name    string
	Surname string
	Gender  string
}

func (p PlayerInfo) Empty() bool {
	return p.Name == "" && p.Surname == "" && p.Gender == ""
}

func (p PlayerInfo) FullName() string {
	return strings.TrimSpace(p.Name + " " + p.Surname)
}

// Action is one user gesture routed through Dispatch. Target carries the
// clicked item, answer or slot index where the kind needs one.
type Action struct {
	Kind   ActionKind
	Target int
	Player PlayerInfo
}

// Notice is the transient notification. A new notice fully replaces the
// current one; Seq lets the caller distinguish notices when scheduling
// dismiss timers.
type Notice struct {
	Message  string
	Severity Severity
	Seq      int
}

const directoryNoticeText = "New information added to your Directory ✅"

// Game is the single state holder: which screen is active, the story
// scene, the directory, the quiz session and the live mini-game. All
// mutation goes through Dispatch and Tick; exactly one screen is active
// at any time.
type Game struct {
	screen     Screen
	scene      int
	player     PlayerInfo
	directory  *Directory
	quiz       *QuizSession
	minigame   MiniGame
	notice     *Notice
	noticeSeq  int
	returnTo   Screen
	splashLeft int
	bank       []Question
}

func New() *Game {
	return &Game{
		screen:     ScreenSplash,
		scene:      1,
		directory:  NewDirectory(),
		splashLeft: SplashAutoAdvance,
		bank:       QuizQuestions(),
	}
}

// NewAt builds a game whose directory timestamps come from a custom clock.
func NewAt(now func() time.Time) *Game {
	g := New()
	g.directory = NewDirectoryAt(now)
	return g
}

func (g *Game) Screen() Screen        { return g.screen }
func (g *Game) Scene() int            { return g.scene }
func (g *Game) Player() PlayerInfo    { return g.player }
func (g *Game) Directory() *Directory { return g.directory }
func (g *Game) Quiz() *QuizSession    { return g.quiz }
func (g *Game) MiniGame() MiniGame    { return g.minigame }
func (g *Game) Notice() *Notice       { return g.notice }

// Score is the final quiz score; zero until a quiz session exists.
func (g *Game) Score() int {
	if g.quiz == nil {
		return 0
	}
	return g.quiz.Score()
}

// ClearNotice hides the current notification. Called by the dismiss timer;
// timers from rapid successive notices each fire independently, so a newer
// notice can be dismissed early by an older timer (replace-and-retime).
func (g *Game) ClearNotice() { g.notice = nil }

func (g *Game) notify(message string, severity Severity) {
	g.noticeSeq++
	g.notice = &Notice{Message: message, Severity: severity, Seq: g.noticeSeq}
}

// Dispatch routes one user gesture into the state machine. Gestures that
// do not apply to the active screen are ignored, which is what keeps the
// game in a valid navigable state no matter what arrives.
func (g *Game) Dispatch(a Action) {
	switch g.screen {
	case ScreenSplash:
		if a.Kind == ActionAnyInput {
			g.screen = ScreenIntro
		}
	case ScreenIntro:
		if a.Kind == ActionContinue || a.Kind == ActionAnyInput {
			g.screen = ScreenRegister
		}
	case ScreenRegister:
		if a.Kind == ActionSubmitRegistration {
			g.register(a.Player)
		}
	case ScreenMenu:
		g.dispatchMenu(a)
	case ScreenVideo:
		if a.Kind == ActionContinue || a.Kind == ActionSkipVideo {
			g.enterStory()
		}
	case ScreenStory:
		g.dispatchStory(a)
	case ScreenQuiz:
		g.dispatchQuiz(a)
	case ScreenDirectory:
		if a.Kind == ActionCloseDirectory {
			g.screen = g.returnTo
		}
	case ScreenResults:
		if a.Kind == ActionRestart {
			g.Restart()
		}
	}
}

func (g *Game) register(p PlayerInfo) {
	name := strings.TrimSpace(p.Name)
	surname := strings.TrimSpace(p.Surname)
	gender := strings.TrimSpace(p.Gender)
	if name == "" || surname == "" || gender == "" {
		g.notify("Please fill in all fields!", SeverityError)
		return
	}
	g.player = PlayerInfo{Name: name, Surname: surname, Gender: gender}
	g.directory.Append("Player Information", fmt.Sprintf("Name: %s %s, Gender: %s", name, surname, gender))
	g.screen = ScreenMenu
	g.notify("Registration saved ✅", SeveritySuccess)
}

func (g *Game) dispatchMenu(a Action) {
	switch a.Kind {
	case ActionMenuStart:
		g.screen = ScreenVideo
	case ActionOpenDirectory:
		g.enterDirectory()
	case ActionMenuInformation:
		g.notify("Space Weather: investigate and collect info to pass the quiz!", SeverityInfo)
	}
}

func (g *Game) enterDirectory() {
	g.returnTo = g.screen
	g.screen = ScreenDirectory
}

func (g *Game) enterStory() {
	g.screen = ScreenStory
	g.scene = 1
	g.minigame = NewMiniGame(1)
}

func (g *Game) dispatchStory(a Action) {
	switch a.Kind {
	case ActionNextScene:
		g.advanceScene()
	case ActionOpenDirectory:
		g.enterDirectory()
	case ActionInteract:
		if g.minigame != nil {
			g.resolve(g.minigame.Interact(a.Target))
		}
	case ActionSelectPhoto:
		if aurora, ok := g.minigame.(*AuroraGame); ok {
			aurora.Select(a.Target)
		}
	case ActionPlacePhoto:
		if aurora, ok := g.minigame.(*AuroraGame); ok {
			g.resolve(aurora.Interact(a.Target))
		}
	}
}

// advanceScene moves forward only; scene 5 hands off to the quiz. The
// departed scene's tracker is dropped with its countdown, so a stale
// timeout can never fire into a later scene.
func (g *Game) advanceScene() {
	if g.scene < SceneCount {
		g.scene++
		g.minigame = NewMiniGame(g.scene)
		return
	}
	g.minigame = nil
	g.quiz = NewQuizSession(g.bank)
	g.screen = ScreenQuiz
}

func (g *Game) dispatchQuiz(a Action) {
	if g.quiz == nil {
		return
	}
	switch a.Kind {
	case ActionSelectAnswer:
		g.quiz.Select(a.Target)
	case ActionNextQuestion:
		if g.quiz.Advance() && g.quiz.Done() {
			g.screen = ScreenResults
		}
	}
}

// resolve applies a mini-game resolution: one directory entry plus one
// notification, at most once per tracker instance.
func (g *Game) resolve(fact Fact, ok bool) {
	if !ok {
		return
	}
	g.directory.Append(fact.Title, fact.Content)
	g.notify(directoryNoticeText, SeveritySuccess)
}

// Tick is the 1 Hz clock pulse. Countdowns only run for the screen that
// owns them: a scene countdown pauses while the directory overlays the
// story, and a finished quiz absorbs late ticks.
func (g *Game) Tick() {
	switch g.screen {
	case ScreenSplash:
		g.splashLeft--
		if g.splashLeft <= 0 {
			g.screen = ScreenIntro
		}
	case ScreenStory:
		if g.minigame != nil {
			g.resolve(g.minigame.Tick())
		}
	case ScreenQuiz:
		if g.quiz != nil {
			g.quiz.Tick()
			if g.quiz.Done() {
				g.screen = ScreenResults
			}
		}
	}
}

// Restart resets every piece of session state and returns to the intro.
func (g *Game) Restart() {
	g.player = PlayerInfo{}
	g.directory.Clear()
	g.quiz = nil
	g.minigame = nil
	g.notice = nil
	g.scene = 1
	g.returnTo = ""
	g.screen = ScreenIntro
}
