package scoring

import (
	"testing"

	"github.com/google/uuid"
	"github.com/provado/provado-backend/internal/model"
)

func answer(qID uuid.UUID, chosen string, correct bool) model.Answer {
	return model.Answer{
		ID:           uuid.New(),
		QuestionID:   qID,
		ChosenOption: chosen,
		Correct:      correct,
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		correct    int
		wrong      int
		threshold  int
		percent    int
		unanswered int
		passed     *bool
	}{
		{name: "all correct", total: 4, correct: 4, wrong: 0, threshold: 70, percent: 100, unanswered: 0, passed: boolPtr(true)},
		{name: "three of four", total: 4, correct: 3, wrong: 1, threshold: 70, percent: 75, unanswered: 0, passed: boolPtr(true)},
		{name: "exactly at threshold", total: 10, correct: 7, wrong: 3, threshold: 70, percent: 70, unanswered: 0, passed: boolPtr(true)},
		{name: "just below threshold", total: 10, correct: 6, wrong: 4, threshold: 70, percent: 60, unanswered: 0, passed: boolPtr(false)},
		{name: "rounding up", total: 3, correct: 2, wrong: 1, threshold: 70, percent: 67, unanswered: 0, passed: boolPtr(false)},
		{name: "unanswered count as missing", total: 5, correct: 2, wrong: 0, threshold: 70, percent: 40, unanswered: 3, passed: boolPtr(false)},
		{name: "nothing answered", total: 5, correct: 0, wrong: 0, threshold: 70, percent: 0, unanswered: 5, passed: boolPtr(false)},
		{name: "empty set cannot be graded", total: 0, correct: 0, wrong: 0, threshold: 70, percent: 0, unanswered: 0, passed: nil},
		{name: "custom threshold", total: 2, correct: 1, wrong: 1, threshold: 50, percent: 50, unanswered: 0, passed: boolPtr(true)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var answers []model.Answer
			for i := 0; i < tc.correct; i++ {
				answers = append(answers, answer(uuid.New(), model.OptionA, true))
			}
			for i := 0; i < tc.wrong; i++ {
				answers = append(answers, answer(uuid.New(), model.OptionB, false))
			}

			got := Score(tc.total, answers, tc.threshold)

			if got.Total != tc.total {
				t.Errorf("Total = %d, want %d", got.Total, tc.total)
			}
			if got.Answered != tc.correct+tc.wrong {
				t.Errorf("Answered = %d, want %d", got.Answered, tc.correct+tc.wrong)
			}
			if got.Correct != tc.correct {
				t.Errorf("Correct = %d, want %d", got.Correct, tc.correct)
			}
			if got.Unanswered != tc.unanswered {
				t.Errorf("Unanswered = %d, want %d", got.Unanswered, tc.unanswered)
			}
			if got.Percent != tc.percent {
				t.Errorf("Percent = %d, want %d", got.Percent, tc.percent)
			}
			if (got.Passed == nil) != (tc.passed == nil) {
				t.Fatalf("Passed = %v, want %v", got.Passed, tc.passed)
			}
			if got.Passed != nil && *got.Passed != *tc.passed {
				t.Errorf("Passed = %t, want %t", *got.Passed, *tc.passed)
			}
		})
	}
}

func TestScorePercentMonotonicInCorrectCount(t *testing.T) {
	const total = 7
	prev := -1
	for correct := 0; correct <= total; correct++ {
		var answers []model.Answer
		for i := 0; i < correct; i++ {
			answers = append(answers, answer(uuid.New(), model.OptionA, true))
		}
		got := Score(total, answers, 70)
		if got.Percent < prev {
			t.Fatalf("percent dropped from %d to %d at correct=%d", prev, got.Percent, correct)
		}
		prev = got.Percent
	}
}

func TestScoreEmptySetNeverFails(t *testing.T) {
	got := Score(0, nil, 70)
	if got.Passed != nil {
		t.Errorf("empty set must not be graded, got passed=%t", *got.Passed)
	}
}

func TestReview(t *testing.T) {
	q1 := model.Question{ID: uuid.New(), Subject: "Matemática", CorrectOption: model.OptionA}
	q2 := model.Question{ID: uuid.New(), Subject: "Matemática", CorrectOption: model.OptionB}
	q3 := model.Question{ID: uuid.New(), Subject: "Direito", CorrectOption: model.OptionC}
	q4 := model.Question{ID: uuid.New(), Subject: "Direito", CorrectOption: model.OptionD}
	questions := []model.Question{q1, q2, q3, q4}

	// q1 right, q2 wrong, q3 right, q4 unanswered.
	answers := []model.Answer{
		answer(q1.ID, model.OptionA, true),
		answer(q2.ID, model.OptionE, false),
		answer(q3.ID, model.OptionC, true),
	}

	t.Run("no filter returns everything in order", func(t *testing.T) {
		items := Review(questions, answers, ReviewFilter{})
		if len(items) != 4 {
			t.Fatalf("len = %d, want 4", len(items))
		}
		for i, item := range items {
			if item.Position != i+1 {
				t.Errorf("items[%d].Position = %d, want %d", i, item.Position, i+1)
			}
			if item.Question.ID != questions[i].ID {
				t.Errorf("items[%d] out of order", i)
			}
		}
		if items[3].ChosenOption != nil {
			t.Errorf("unanswered question must have nil chosen option")
		}
	})

	t.Run("only wrong includes unanswered", func(t *testing.T) {
		items := Review(questions, answers, ReviewFilter{OnlyWrong: true})
		if len(items) != 2 {
			t.Fatalf("len = %d, want 2", len(items))
		}
		if items[0].Question.ID != q2.ID || items[1].Question.ID != q4.ID {
			t.Errorf("wrong questions selected: got %v and %v", items[0].Question.ID, items[1].Question.ID)
		}
		if !items[1].Wrong {
			t.Errorf("unanswered question must be classified wrong")
		}
	})

	t.Run("subject filter keeps stable positions", func(t *testing.T) {
		items := Review(questions, answers, ReviewFilter{Subject: "Direito"})
		if len(items) != 2 {
			t.Fatalf("len = %d, want 2", len(items))
		}
		if items[0].Position != 3 || items[1].Position != 4 {
			t.Errorf("positions = %d,%d, want 3,4", items[0].Position, items[1].Position)
		}
	})

	t.Run("combined filters", func(t *testing.T) {
		items := Review(questions, answers, ReviewFilter{OnlyWrong: true, Subject: "Direito"})
		if len(items) != 1 {
			t.Fatalf("len = %d, want 1", len(items))
		}
		if items[0].Question.ID != q4.ID {
			t.Errorf("expected the unanswered Direito question")
		}
	})

	t.Run("scenario three correct one wrong", func(t *testing.T) {
		full := []model.Answer{
			answer(q1.ID, model.OptionA, true),
			answer(q2.ID, model.OptionB, true),
			answer(q3.ID, model.OptionC, true),
			answer(q4.ID, model.OptionE, false),
		}
		res := Score(len(questions), full, 70)
		if res.Correct != 3 || res.Percent != 75 || res.Passed == nil || !*res.Passed {
			t.Errorf("Score = %+v, want correct=3 percent=75 passed=true", res)
		}
		wrong := Review(questions, full, ReviewFilter{OnlyWrong: true})
		if len(wrong) != 1 {
			t.Errorf("only-wrong review len = %d, want 1", len(wrong))
		}
	})
}

func boolPtr(b bool) *bool { return &b }
