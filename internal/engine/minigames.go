package engine

// Fact is the payload a resolved mini-game pushes into the directory.
type Fact struct {
	Title   string
	Content string
}

// MiniGame is the shared capability of the five per-scene interactions:
// accept an interaction, accept a clock tick, and resolve at most once to
// a Fact. Status makes the success-vs-timeout race explicit: whichever
// path resolves first flips the status, and the other path becomes a
// no-op from then on.
type MiniGame interface {
	Scene() int
	Status() MiniGameStatus
	// TimeLeft returns remaining seconds, or -1 for untimed games.
	TimeLeft() int
	// Interact handles a click on item target. The Fact is non-zero only
	// on the tick the game resolves.
	Interact(target int) (Fact, bool)
	// Tick advances the countdown by one second; resolves on expiry for
	// timed games.
	Tick() (Fact, bool)
}

// NewMiniGame builds a fresh tracker for a scene. Trackers are rebuilt on
// every scene entry, which is what keeps completion effects at most once
// per visit.
func NewMiniGame(scene int) MiniGame {
	switch scene {
	case 1:
		return NewParticleGame()
	case 2:
		return NewRadioGame()
	case 3:
		return NewPowerGame()
	case 4:
		return NewGPSGame()
	case 5:
		return NewAuroraGame()
	default:
		return nil
	}
}

// ---------------------------------------------------------------------------
// Scene 1: particle acceleration. Click five atoms; no timer.

type ParticleGame struct {
	atoms    []bool
	count    int
	feedback string
	impact   bool
	status   MiniGameStatus
}

func NewParticleGame() *ParticleGame {
	return &ParticleGame{atoms: make([]bool, ParticleThreshold), status: StatusActive}
}

func (p *ParticleGame) Scene() int             { return 1 }
func (p *ParticleGame) Status() MiniGameStatus { return p.status }
func (p *ParticleGame) TimeLeft() int          { return -1 }
func (p *ParticleGame) Count() int             { return p.count }
func (p *ParticleGame) Atoms() []bool          { return append([]bool{}, p.atoms...) }

// Feedback is the staged in-scene message; informational only, it never
// gates completion.
func (p *ParticleGame) Feedback() string { return p.feedback }

// Impact reports the "storm heading toward Earth" visual flag set on
// completion.
func (p *ParticleGame) Impact() bool { return p.impact }

func (p *ParticleGame) Interact(target int) (Fact, bool) {
	if p.status.Resolved() || target < 0 || target >= len(p.atoms) || p.atoms[target] {
		return Fact{}, false
	}
	p.atoms[target] = true
	p.count++
	switch p.count {
	case 1:
		p.feedback = "First particle accelerated! The Sun is getting active..."
	case 3:
		p.feedback = "Solar wind is building up! CME forming..."
	case ParticleThreshold:
		p.feedback = "CME launched! Solar storm heading toward Earth!"
		p.impact = true
		p.status = StatusSucceeded
		return Fact{
			Title:   "Solar Flare Effects",
			Content: "Solar flares can accelerate particles and create CMEs that damage satellites and expose astronauts to radiation.",
		}, true
	}
	return Fact{}, false
}

func (p *ParticleGame) Tick() (Fact, bool) { return Fact{}, false }

// ---------------------------------------------------------------------------
// Scene 2: radio repair. Reconnect four frequency lines before 30s run out.

type RadioGame struct {
	lines    []bool
	count    int
	timeLeft int
	status   MiniGameStatus
}

func NewRadioGame() *RadioGame {
	return &RadioGame{lines: make([]bool, RadioThreshold), timeLeft: RadioTimeout, status: StatusActive}
}

func (r *RadioGame) Scene() int             { return 2 }
func (r *RadioGame) Status() MiniGameStatus { return r.status }
func (r *RadioGame) TimeLeft() int          { return r.timeLeft }
func (r *RadioGame) Count() int             { return r.count }
func (r *RadioGame) Lines() []bool          { return append([]bool{}, r.lines...) }

func (r *RadioGame) Interact(target int) (Fact, bool) {
	if r.status.Resolved() || target < 0 || target >= len(r.lines) || r.lines[target] {
		return Fact{}, false
	}
	r.lines[target] = true
	r.count++
	if r.count == RadioThreshold {
		r.status = StatusSucceeded
		return Fact{
			Title:   "Communication Restoration",
			Content: "Radio communications can be restored by reconnecting frequency lines and using backup systems.",
		}, true
	}
	return Fact{}, false
}

func (r *RadioGame) Tick() (Fact, bool) {
	if r.status.Resolved() {
		return Fact{}, false
	}
	r.timeLeft--
	if r.timeLeft > 0 {
		return Fact{}, false
	}
	r.timeLeft = 0
	r.status = StatusTimedOut
	return Fact{
		Title:   "Communication Disruption",
		Content: "Space weather can disrupt radio communications and GPS signals, affecting aviation and navigation.",
	}, true
}

// ---------------------------------------------------------------------------
// Scene 3: power grid balancing. Each click raises a circuit by a fixed
// step; success when every circuit sits at or above the threshold.

type PowerGame struct {
	levels   []int
	timeLeft int
	status   MiniGameStatus
}

func NewPowerGame() *PowerGame {
	levels := make([]int, PowerCircuits)
	for i := range levels {
		levels[i] = PowerStep
	}
	return &PowerGame{levels: levels, timeLeft: PowerTimeout, status: StatusActive}
}

func (p *PowerGame) Scene() int             { return 3 }
func (p *PowerGame) Status() MiniGameStatus { return p.status }
func (p *PowerGame) TimeLeft() int          { return p.timeLeft }
func (p *PowerGame) Levels() []int          { return append([]int{}, p.levels...) }

func (p *PowerGame) Interact(target int) (Fact, bool) {
	if p.status.Resolved() || target < 0 || target >= len(p.levels) {
		return Fact{}, false
	}
	level := p.levels[target] + PowerStep
	if level > PowerCap {
		level = PowerCap
	}
	p.levels[target] = level
	for _, l := range p.levels {
		if l < PowerThreshold {
			return Fact{}, false
		}
	}
	p.status = StatusSucceeded
	return Fact{
		Title:   "Power Grid Restoration",
		Content: "Power grids can be restored by balancing circuits and monitoring space weather conditions.",
	}, true
}

func (p *PowerGame) Tick() (Fact, bool) {
	if p.status.Resolved() {
		return Fact{}, false
	}
	p.timeLeft--
	if p.timeLeft > 0 {
		return Fact{}, false
	}
	p.timeLeft = 0
	p.status = StatusTimedOut
	return Fact{
		Title:   "Power Grid Effects",
		Content: "Geomagnetic storms can induce currents in power lines, causing blackouts and damaging transformers.",
	}, true
}

// ---------------------------------------------------------------------------
// Scene 4: GPS alignment. Align four satellite signals before 40s run out.

type GPSGame struct {
	signals  []bool
	count    int
	timeLeft int
	status   MiniGameStatus
}

func NewGPSGame() *GPSGame {
	return &GPSGame{signals: make([]bool, GPSThreshold), timeLeft: GPSTimeout, status: StatusActive}
}

func (g *GPSGame) Scene() int             { return 4 }
func (g *GPSGame) Status() MiniGameStatus { return g.status }
func (g *GPSGame) TimeLeft() int          { return g.timeLeft }
func (g *GPSGame) Count() int             { return g.count }
func (g *GPSGame) Signals() []bool        { return append([]bool{}, g.signals...) }

func (g *GPSGame) Interact(target int) (Fact, bool) {
	if g.status.Resolved() || target < 0 || target >= len(g.signals) || g.signals[target] {
		return Fact{}, false
	}
	g.signals[target] = true
	g.count++
	if g.count == GPSThreshold {
		g.status = StatusSucceeded
		return Fact{
			Title:   "GPS Calibration",
			Content: "GPS systems can be calibrated by aligning satellite signals and using backup navigation methods.",
		}, true
	}
	return Fact{}, false
}

func (g *GPSGame) Tick() (Fact, bool) {
	if g.status.Resolved() {
		return Fact{}, false
	}
	g.timeLeft--
	if g.timeLeft > 0 {
		return Fact{}, false
	}
	g.timeLeft = 0
	g.status = StatusTimedOut
	return Fact{
		Title:   "GPS Disruption",
		Content: "Space weather can disrupt GPS signals, affecting precision farming and navigation systems.",
	}, true
}

// ---------------------------------------------------------------------------
// Scene 5: aurora photo matching. Select a photo, place it into an empty
// slot; done when every slot is filled. No timer.

// AuroraNoPhoto marks an empty slot or no current selection.
const AuroraNoPhoto = -1

type AuroraGame struct {
	used     []bool
	slots    []int
	selected int
	filled   int
	status   MiniGameStatus
}

func NewAuroraGame() *AuroraGame {
	slots := make([]int, AuroraSlots)
	for i := range slots {
		slots[i] = AuroraNoPhoto
	}
	return &AuroraGame{
		used:     make([]bool, AuroraSlots),
		slots:    slots,
		selected: AuroraNoPhoto,
		status:   StatusActive,
	}
}

func (a *AuroraGame) Scene() int             { return 5 }
func (a *AuroraGame) Status() MiniGameStatus { return a.status }
func (a *AuroraGame) TimeLeft() int          { return -1 }
func (a *AuroraGame) Selected() int          { return a.selected }
func (a *AuroraGame) Filled() int            { return a.filled }
func (a *AuroraGame) Used() []bool           { return append([]bool{}, a.used...) }
func (a *AuroraGame) Slots() []int           { return append([]int{}, a.slots...) }

// Select marks a source photo as the current selection. Selecting another
// photo replaces the previous selection with no side effects; consumed
// photos cannot be reselected.
func (a *AuroraGame) Select(photo int) bool {
	if a.status.Resolved() || photo < 0 || photo >= len(a.used) || a.used[photo] {
		return false
	}
	a.selected = photo
	return true
}

// Interact places the current selection into slot target. A filled slot
// never accepts another photo.
func (a *AuroraGame) Interact(target int) (Fact, bool) {
	if a.status.Resolved() || a.selected == AuroraNoPhoto {
		return Fact{}, false
	}
	if target < 0 || target >= len(a.slots) || a.slots[target] != AuroraNoPhoto {
		return Fact{}, false
	}
	a.slots[target] = a.selected
	a.used[a.selected] = true
	a.selected = AuroraNoPhoto
	a.filled++
	if a.filled == len(a.slots) {
		a.status = StatusSucceeded
		return Fact{
			Title:   "Aurora Photography",
			Content: "Space weather creates beautiful auroras when charged particles from the Sun interact with Earth's magnetic field.",
		}, true
	}
	return Fact{}, false
}

func (a *AuroraGame) Tick() (Fact, bool) { return Fact{}, false }
