package engine

// String backed enums so screens and actions serialize cleanly in logs
// and the mission archive.

type Screen string
type ActionKind string
type Severity string
type MiniGameStatus string

const (
	ScreenSplash    Screen = "splash"
	ScreenIntro     Screen = "intro"
	ScreenRegister  Screen = "register"
	ScreenMenu      Screen = "menu"
	ScreenVideo     Screen = "video"
	ScreenStory     Screen = "story"
	ScreenQuiz      Screen = "quiz"
	ScreenResults   Screen = "results"
	ScreenDirectory Screen = "directory"
)

var AllScreens = []Screen{ScreenSplash, ScreenIntro, ScreenRegister, ScreenMenu, ScreenVideo, ScreenStory, ScreenQuiz, ScreenResults, ScreenDirectory}

const (
	// ActionAnyInput is the splash screen's any-click/any-key trigger.
	ActionAnyInput           ActionKind = "any_input"
	ActionContinue           ActionKind = "continue"
	ActionSubmitRegistration ActionKind = "submit_registration"
	ActionMenuStart          ActionKind = "menu_start"
	ActionMenuInformation    ActionKind = "menu_information"
	ActionOpenDirectory      ActionKind = "open_directory"
	ActionCloseDirectory     ActionKind = "close_directory"
	ActionSkipVideo          ActionKind = "skip_video"
	ActionNextScene          ActionKind = "next_scene"
	ActionInteract           ActionKind = "interact"
	ActionSelectPhoto        ActionKind = "select_photo"
	ActionPlacePhoto         ActionKind = "place_photo"
	ActionSelectAnswer       ActionKind = "select_answer"
	ActionNextQuestion       ActionKind = "next_question"
	ActionRestart            ActionKind = "restart"
)

var AllActionKinds = []ActionKind{
	ActionAnyInput, ActionContinue, ActionSubmitRegistration,
	ActionMenuStart, ActionMenuInformation,
	ActionOpenDirectory, ActionCloseDirectory,
	ActionSkipVideo, ActionNextScene,
	ActionInteract, ActionSelectPhoto, ActionPlacePhoto,
	ActionSelectAnswer, ActionNextQuestion, ActionRestart,
}

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

var AllSeverities = []Severity{SeveritySuccess, SeverityError, SeverityInfo}

const (
	StatusActive    MiniGameStatus = "active"
	StatusSucceeded MiniGameStatus = "succeeded"
	StatusTimedOut  MiniGameStatus = "timed_out"
)

var AllMiniGameStatuses = []MiniGameStatus{StatusActive, StatusSucceeded, StatusTimedOut}

func contains[T ~string](list []T, v T) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func (s Screen) Validate() bool         { return contains(AllScreens, s) }
func (a ActionKind) Validate() bool     { return contains(AllActionKinds, a) }
func (s Severity) Validate() bool       { return contains(AllSeverities, s) }
func (m MiniGameStatus) Validate() bool { return contains(AllMiniGameStatuses, m) }

// Resolved reports whether a mini-game reached a terminal state.
func (m MiniGameStatus) Resolved() bool { return m == StatusSucceeded || m == StatusTimedOut }
