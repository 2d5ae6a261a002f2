package engine

import "time"

// Gameplay tuning. Timer values are whole seconds because every countdown
// is driven by a 1 Hz clock pulse from the UI loop.
const (
	SceneCount = 5

	ParticleThreshold = 5

	RadioTimeout   = 30
	RadioThreshold = 4

	PowerTimeout   = 45
	PowerCircuits  = 4
	PowerStep      = 20
	PowerCap       = 100
	PowerThreshold = 80

	GPSTimeout   = 40
	GPSThreshold = 4

	AuroraSlots = 4

	QuizTimeout = 300
	QuizLength  = 10
	PassHigh    = 8
	PassMid     = 6

	// Splash auto-advances after 5s unless any input arrives first.
	SplashAutoAdvance = 5
)

// NoticeDismiss is how long a notification stays up before auto-dismissing.
// Each notification re-times independently; a newer notification does not
// extend the display of an older timer.
const NoticeDismiss = 3 * time.Second
