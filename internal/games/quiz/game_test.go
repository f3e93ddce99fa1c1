package quiz

import (
	"testing"

	"github.com/vovakirdan/minigame-arcade/internal/config"
	"github.com/vovakirdan/minigame-arcade/internal/games/gametest"
	"github.com/vovakirdan/minigame-arcade/internal/lifecycle"
)

func bank() config.QuizConfig {
	return config.QuizConfig{Questions: []config.Question{
		{Text: "2 + 2?", Options: []string{"3", "4", "5", "6"}, Answer: 1},
		{Text: "Largest ocean?", Options: []string{"Atlantic", "Pacific"}, Answer: 1},
	}}
}

func TestCorrectAnswer(t *testing.T) {
	h := gametest.Start(t, Definition(bank()), 1)
	h.Click(roleOption, 1)

	if got := h.Status(); got != "Correct!" {
		t.Errorf("status = %q", got)
	}
	if !h.Container().At(roleOption, 1).HasClass(classCorrect) {
		t.Error("chosen option not marked correct")
	}
	if got := h.Text(roleScore); got != "1 / 1" {
		t.Errorf("score = %q", got)
	}
}

func TestWrongAnswerHighlightsCorrect(t *testing.T) {
	h := gametest.Start(t, Definition(bank()), 1)
	h.Click(roleOption, 3)

	if got := h.Status(); got != "Wrong!" {
		t.Errorf("status = %q", got)
	}
	if !h.Container().At(roleOption, 3).HasClass(classWrong) {
		t.Error("chosen option not marked wrong")
	}
	if !h.Container().At(roleOption, 1).HasClass(classCorrect) {
		t.Error("correct option not highlighted")
	}
	if got := h.Text(roleScore); got != "0 / 1" {
		t.Errorf("score = %q", got)
	}
}

func TestOneAnswerPerQuestion(t *testing.T) {
	h := gametest.Start(t, Definition(bank()), 1)
	h.Click(roleOption, 0)
	h.Frozen(func() { h.Click(roleOption, 1) })
}

func TestNextCyclesAndClearsMarks(t *testing.T) {
	h := gametest.Start(t, Definition(bank()), 1)
	h.Click(roleOption, 1)

	h.Click(roleNext, 0)
	if got := h.Text(roleQuestion); got != "Largest ocean?" {
		t.Errorf("question = %q", got)
	}
	if h.Container().At(roleOption, 1).HasClass(classCorrect) {
		t.Error("marks survived the next question")
	}
	// The second question has two options; the rest are disabled.
	if !h.Container().At(roleOption, 2).Disabled() {
		t.Error("unused option is clickable")
	}

	h.Click(roleNext, 0)
	if got := h.Text(roleQuestion); got != "2 + 2?" {
		t.Errorf("question = %q, want wrap-around", got)
	}
	if got := h.Text(roleScore); got != "0 / 0" {
		t.Errorf("score = %q, want a fresh tally after wrap-around", got)
	}
}

func TestRoundReportedOnWrap(t *testing.T) {
	var reported []int
	h := gametest.Start(t, Definition(bank()), 1,
		lifecycle.WithScores(func(score int) { reported = append(reported, score) }, nil))

	h.Click(roleOption, 1)
	h.Click(roleNext, 0)
	h.Click(roleOption, 1)
	if len(reported) != 0 {
		t.Fatalf("reported %v before the round ended", reported)
	}
	if got := h.Text(roleScore); got != "2 / 2" {
		t.Errorf("score = %q", got)
	}

	h.Click(roleNext, 0)
	// A round without a correct answer saves nothing.
	h.Click(roleOption, 0)
	h.Click(roleNext, 0)
	h.Click(roleNext, 0)

	if len(reported) != 1 || reported[0] != 2 {
		t.Errorf("reported = %v, want [2]", reported)
	}
}

func TestDefaultBank(t *testing.T) {
	cfg := config.Default().Quiz
	h := gametest.Start(t, Definition(cfg), 1)
	if got := h.Text(roleQuestion); got != cfg.Questions[0].Text {
		t.Errorf("question = %q", got)
	}
	h.Dispose()
}
