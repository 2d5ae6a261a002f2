// Package text holds the mission's narrative copy: markdown briefings per
// screen and scene, and the results messaging. Rendering (glamour, styles)
// is the UI's job; this package only produces the words.
package text

import (
	"fmt"

	"github.com/Adinayykka/Space-Weather/internal/engine"
)

// Title is the program title printed on the splash screen and the
// certificate.
const Title = "SPACE WEATHER MISSION"

// Intro is the markdown shown on the intro screen before registration.
func Intro() string {
	return `# SPACE WEATHER MISSION

The Sun is far more than a steady light in the sky. Flares, coronal mass
ejections and streams of charged particles wash over Earth every day —
**space weather** — and they can knock out radio links, blind GPS
receivers and overload power grids.

You are about to join a mission across five stations. At each one you
will repair what the storm has broken and log what you learn into your
mission **Directory**. At the end, a briefing quiz stands between you and
your certificate.
`
}

// Briefing is the markdown shown on the cinematic briefing screen in
// place of the mission video.
func Briefing() string {
	return `## MISSION BRIEFING

A powerful solar storm has erupted and is racing toward Earth.

Satellites are drifting, radio channels are drowning in static, and grid
operators are watching their transformers hum. Agencies like **NASA** and
**NOAA** track these storms around the clock — today, so do you.

Five stations need your attention. Keep your Directory close: everything
you log there will help you pass the final briefing quiz.
`
}

var sceneNarratives = [engine.SceneCount]struct {
	Title string
	Body  string
}{
	{
		Title: "Scene 1: The Sun Awakens",
		Body: "Deep inside the Sun, magnetic field lines twist and snap. " +
			"Energize the particles caught in the flare — accelerate all five " +
			"and watch the coronal mass ejection launch toward Earth.",
	},
	{
		Title: "Scene 2: Radio Blackout",
		Body: "The storm's X-rays have ionized the upper atmosphere and " +
			"shortwave channels are gone. Reconnect the four frequency lines " +
			"before the backup window closes.",
	},
	{
		Title: "Scene 3: The Grid Strains",
		Body: "Geomagnetically induced currents are creeping into the " +
			"transmission network. Raise every circuit into the safe band " +
			"before the breakers trip.",
	},
	{
		Title: "Scene 4: Lost Signals",
		Body: "GPS receivers across the region are reporting positions " +
			"hundreds of meters off. Align the four satellite signals to " +
			"bring navigation back before pilots and farmers lose it for good.",
	},
	{
		Title: "Scene 5: Lights in the North",
		Body: "The storm has one gift left: aurora. Match each photograph " +
			"to its observation slot to complete the mission record.",
	},
}

// SceneNarrative returns the markdown story block for a scene in 1..5.
func SceneNarrative(scene int) string {
	if scene < 1 || scene > engine.SceneCount {
		return ""
	}
	n := sceneNarratives[scene-1]
	return fmt.Sprintf("## %s\n\n%s\n", n.Title, n.Body)
}

// ResultsMessage grades the final score into the three result tiers.
func ResultsMessage(score int) string {
	switch {
	case score >= engine.PassHigh:
		return "Excellent! You have mastered space weather knowledge!"
	case score >= engine.PassMid:
		return "Good job! You have a solid understanding of space weather."
	default:
		return "Keep learning! Review the directory for more information."
	}
}

// DirectoryEmpty is shown when no facts have been collected yet.
const DirectoryEmpty = "No information collected yet. Complete the story to gather information!"
