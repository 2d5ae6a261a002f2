package engine

import "testing"

func TestQuizPerfectScore(t *testing.T) {
	q := NewQuizSession(QuizQuestions())
	for i := 0; i < QuizLength; i++ {
		cur, ok := q.Current()
		if !ok {
			t.Fatalf("no current question at index %d", i)
		}
		if !q.Select(cur.Correct) {
			t.Fatalf("select failed at index %d", i)
		}
		if !q.Advance() {
			t.Fatalf("advance failed at index %d", i)
		}
	}
	if !q.Done() {
		t.Fatal("session should end after last question")
	}
	if q.Score() != QuizLength {
		t.Fatalf("expected score %d, got %d", QuizLength, q.Score())
	}
}

func TestQuizScoreCountsExactMatches(t *testing.T) {
	q := NewQuizSession(QuizQuestions())
	for i := 0; i < QuizLength; i++ {
		cur, _ := q.Current()
		pick := cur.Correct
		if i%2 == 1 {
			pick = (cur.Correct + 1) % len(cur.Choices)
		}
		q.Select(pick)
		q.Advance()
	}
	if q.Score() != 5 {
		t.Fatalf("expected 5 correct, got %d", q.Score())
	}
}

func TestQuizAdvanceGatedOnSelection(t *testing.T) {
	q := NewQuizSession(QuizQuestions())
	if q.CanAdvance() {
		t.Fatal("next control must be disabled before a selection")
	}
	if q.Advance() {
		t.Fatal("advance must fail without a selection")
	}
	q.Select(0)
	if !q.CanAdvance() {
		t.Fatal("next control should enable after selection")
	}
}

func TestQuizSelectionOverwrites(t *testing.T) {
	q := NewQuizSession(QuizQuestions())
	q.Select(0)
	q.Select(2)
	if q.Selected() != 2 {
		t.Fatalf("expected latest selection 2, got %d", q.Selected())
	}
	q.Advance()
	if q.Selected() != NoSelection {
		t.Fatal("selection must clear when the next question displays")
	}
}

func TestQuizTimerExpiryEndsWithPartialScore(t *testing.T) {
	q := NewQuizSession(QuizQuestions())
	// answer the first 3 correctly
	for i := 0; i < 3; i++ {
		cur, _ := q.Current()
		q.Select(cur.Correct)
		q.Advance()
	}
	for i := 0; i < QuizTimeout; i++ {
		q.Tick()
	}
	if !q.Done() {
		t.Fatal("session must end when the timer reaches 0")
	}
	if q.Score() != 3 {
		t.Fatalf("expected score 3 at expiry, got %d", q.Score())
	}
	// late activity is absorbed
	if q.Select(1) {
		t.Fatal("select after end should be rejected")
	}
	if q.Advance() {
		t.Fatal("advance after end should be rejected")
	}
	q.Tick()
	if q.TimeLeft() != 0 {
		t.Fatalf("timer must stay cancelled at 0, got %d", q.TimeLeft())
	}
}

func TestQuizBankShape(t *testing.T) {
	qs := QuizQuestions()
	if len(qs) != QuizLength {
		t.Fatalf("expected %d questions, got %d", QuizLength, len(qs))
	}
	for i, q := range qs {
		if len(q.Choices) != 4 {
			t.Fatalf("question %d: expected 4 choices, got %d", i, len(q.Choices))
		}
		if q.Correct < 0 || q.Correct > 3 {
			t.Fatalf("question %d: correct index out of range: %d", i, q.Correct)
		}
	}
}
