// Package scoring implements the pure scoring and review engine. Every
// function here is deterministic over its inputs: the caller loads the
// attempt's question set and answer ledger, scoring never touches storage.
package scoring

import (
	"math"

	"github.com/google/uuid"
	"github.com/provado/provado-backend/internal/model"
)

// Result summarizes a finished (or about-to-finish) attempt.
type Result struct {
	Total      int   `json:"total"`
	Answered   int   `json:"answered"`
	Correct    int   `json:"correct"`
	Unanswered int   `json:"unanswered"`
	Percent    int   `json:"percent"`
	Passed     *bool `json:"passed"` // nil when the question set is empty
}

// Score grades an attempt from its effective question set size and answer
// ledger. thresholdPercent is the policy cutoff (e.g. 70); an empty set
// cannot be graded, so Passed stays nil and Percent stays 0.
func Score(total int, answers []model.Answer, thresholdPercent int) Result {
	res := Result{Total: total, Answered: len(answers)}

	for _, a := range answers {
		if a.Correct {
			res.Correct++
		}
	}

	res.Unanswered = total - res.Answered
	if res.Unanswered < 0 {
		res.Unanswered = 0
	}

	if total == 0 {
		return res
	}

	res.Percent = int(math.Round(100 * float64(res.Correct) / float64(total)))
	passed := res.Percent >= thresholdPercent
	res.Passed = &passed

	return res
}

// ReviewFilter narrows the review listing. Zero value means "everything".
type ReviewFilter struct {
	// OnlyWrong keeps questions that were answered incorrectly or not
	// answered at all. An unanswered question is always wrong.
	OnlyWrong bool
	// Subject keeps questions of one subject. Ignored when empty. The
	// caller must not set it for attempts that already carry a subject
	// filter — their question set is pre-narrowed.
	Subject string
}

// ReviewItem is the per-question comparison shown after finish.
type ReviewItem struct {
	// Position is the 1-based index of the question within the attempt's
	// full ordered question set, stable across filters.
	Position      int            `json:"position"`
	Question      model.Question `json:"question"`
	ChosenOption  *string        `json:"chosen_option"` // nil = unanswered
	CorrectOption string         `json:"correct_option"`
	Wrong         bool           `json:"wrong"`
}

// Review builds the per-question comparison for a finished attempt.
// questions must be the attempt's full effective set in stable order.
func Review(questions []model.Question, answers []model.Answer, filter ReviewFilter) []ReviewItem {
	byQuestion := make(map[uuid.UUID]model.Answer, len(answers))
	for _, a := range answers {
		byQuestion[a.QuestionID] = a
	}

	items := make([]ReviewItem, 0, len(questions))
	for i, q := range questions {
		if filter.Subject != "" && q.Subject != filter.Subject {
			continue
		}

		item := ReviewItem{
			Position:      i + 1,
			Question:      q,
			CorrectOption: q.CorrectOption,
			Wrong:         true,
		}
		if a, ok := byQuestion[q.ID]; ok {
			chosen := a.ChosenOption
			item.ChosenOption = &chosen
			item.Wrong = !a.Correct
		}

		if filter.OnlyWrong && !item.Wrong {
			continue
		}
		items = append(items, item)
	}
	return items
}
