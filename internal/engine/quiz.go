package engine

// NoSelection marks a question with no recorded answer yet.
const NoSelection = -1

// QuizSession walks the fixed question sequence under one overall countdown.
// The timer spans the whole quiz, not a single question. Ending is terminal:
// once done, further ticks, selections and advances are no-ops.
type QuizSession struct {
	questions []Question
	index     int
	selected  int
	score     int
	timeLeft  int
	done      bool
}

func NewQuizSession(questions []Question) *QuizSession {
	return &QuizSession{
		questions: questions,
		selected:  NoSelection,
		timeLeft:  QuizTimeout,
	}
}

// Current returns the question on display. ok is false once the session
// has ended or the index ran past the bank.
func (q *QuizSession) Current() (Question, bool) {
	if q.done || q.index >= len(q.questions) {
		return Question{}, false
	}
	return q.questions[q.index], true
}

func (q *QuizSession) Index() int    { return q.index }
func (q *QuizSession) Length() int   { return len(q.questions) }
func (q *QuizSession) Score() int    { return q.score }
func (q *QuizSession) TimeLeft() int { return q.timeLeft }
func (q *QuizSession) Done() bool    { return q.done }

// Selected returns the recorded answer for the current question, or
// NoSelection.
func (q *QuizSession) Selected() int { return q.selected }

// Select records an answer for the current question, overwriting any
// previous selection.
func (q *QuizSession) Select(choice int) bool {
	cur, ok := q.Current()
	if !ok || choice < 0 || choice >= len(cur.Choices) {
		return false
	}
	q.selected = choice
	return true
}

// CanAdvance reports whether the "next" control is enabled.
func (q *QuizSession) CanAdvance() bool {
	return !q.done && q.selected != NoSelection
}

// Advance grades the recorded selection, moves to the next question and
// clears the selection. Moving past the last question ends the session.
func (q *QuizSession) Advance() bool {
	if !q.CanAdvance() {
		return false
	}
	if q.selected == q.questions[q.index].Correct {
		q.score++
	}
	q.index++
	q.selected = NoSelection
	if q.index >= len(q.questions) {
		q.finish()
	}
	return true
}

// Tick advances the countdown by one second. Expiry ends the session
// immediately; unanswered questions score as incorrect.
func (q *QuizSession) Tick() {
	if q.done {
		return
	}
	q.timeLeft--
	if q.timeLeft <= 0 {
		q.timeLeft = 0
		q.finish()
	}
}

func (q *QuizSession) finish() {
	if q.done {
		return
	}
	q.done = true
}
