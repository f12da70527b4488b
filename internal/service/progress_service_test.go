package service

import (
	"reflect"
	"testing"

	"github.com/provado/provado-backend/internal/repository"
)

func strPtr(s string) *string { return &s }

func TestAggregateBySubject(t *testing.T) {
	tests := []struct {
		name string
		rows []repository.AnswerSubject
		want []SubjectStats
	}{
		{
			name: "empty ledger",
			rows: nil,
			want: []SubjectStats{},
		},
		{
			name: "perfect subject sorts before larger partial one",
			rows: []repository.AnswerSubject{
				{Correct: true, Subject: strPtr("Matemática")},
				{Correct: true, Subject: strPtr("Matemática")},
				{Correct: false, Subject: strPtr("Matemática")},
				{Correct: true, Subject: strPtr("Direito")},
			},
			want: []SubjectStats{
				{Subject: "Direito", Total: 1, Correct: 1, Percent: 100},
				{Subject: "Matemática", Total: 3, Correct: 2, Percent: 67},
			},
		},
		{
			name: "equal percent ties break on subject name",
			rows: []repository.AnswerSubject{
				{Correct: true, Subject: strPtr("Português")},
				{Correct: false, Subject: strPtr("Português")},
				{Correct: true, Subject: strPtr("Informática")},
				{Correct: false, Subject: strPtr("Informática")},
			},
			want: []SubjectStats{
				{Subject: "Informática", Total: 2, Correct: 1, Percent: 50},
				{Subject: "Português", Total: 2, Correct: 1, Percent: 50},
			},
		},
		{
			name: "unresolvable subject lands in sentinel bucket",
			rows: []repository.AnswerSubject{
				{Correct: false, Subject: nil},
				{Correct: true, Subject: strPtr("Direito")},
				{Correct: true, Subject: nil},
			},
			want: []SubjectStats{
				{Subject: "Direito", Total: 1, Correct: 1, Percent: 100},
				{Subject: UnspecifiedSubject, Total: 2, Correct: 1, Percent: 50},
			},
		},
		{
			name: "percent rounds half up",
			rows: []repository.AnswerSubject{
				{Correct: true, Subject: strPtr("Direito")},
				{Correct: false, Subject: strPtr("Direito")},
				{Correct: false, Subject: strPtr("Direito")},
				{Correct: false, Subject: strPtr("Direito")},
				{Correct: false, Subject: strPtr("Direito")},
				{Correct: false, Subject: strPtr("Direito")},
				{Correct: false, Subject: strPtr("Direito")},
			},
			want: []SubjectStats{
				{Subject: "Direito", Total: 7, Correct: 1, Percent: 14},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := aggregateBySubject(tt.rows)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("aggregateBySubject() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPercentOf(t *testing.T) {
	tests := []struct {
		correct int
		total   int
		want    int
	}{
		{0, 0, 0},
		{0, 5, 0},
		{5, 5, 100},
		{2, 3, 67},
		{1, 3, 33},
		{1, 2, 50},
	}

	for _, tt := range tests {
		if got := percentOf(tt.correct, tt.total); got != tt.want {
			t.Errorf("percentOf(%d, %d) = %d, want %d", tt.correct, tt.total, got, tt.want)
		}
	}
}
