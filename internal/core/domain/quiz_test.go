package domain

import (
	"reflect"
	"testing"
)

func TestScoreQuiz_PartialScore(t *testing.T) {
	questions := []Question{{Answer: 2}, {Answer: 1}}
	result, err := ScoreQuiz(questions, []int{2, 0})
	if err != nil {
		t.Fatalf("ScoreQuiz returned error: %v", err)
	}
	if result.Score != 1 {
		t.Fatalf("expected score 1, got %d", result.Score)
	}
	if result.Percentage != 50 {
		t.Fatalf("expected percentage 50, got %v", result.Percentage)
	}
}

func TestScoreQuiz_PerfectScore(t *testing.T) {
	questions := []Question{{Answer: 0}, {Answer: 3}, {Answer: 1}}
	result, err := ScoreQuiz(questions, []int{0, 3, 1})
	if err != nil {
		t.Fatalf("ScoreQuiz returned error: %v", err)
	}
	if result.Score != 3 || result.Percentage != 100 {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestScoreQuiz_Unanswered(t *testing.T) {
	questions := []Question{{Answer: 2}, {Answer: 1}}
	if _, err := ScoreQuiz(questions, []int{2, NoAnswer}); err != ErrQuizIncomplete {
		t.Fatalf("expected ErrQuizIncomplete, got %v", err)
	}
}

func TestScoreQuiz_CountMismatch(t *testing.T) {
	questions := []Question{{Answer: 2}, {Answer: 1}}
	if _, err := ScoreQuiz(questions, []int{2}); err != ErrAnswerCountMismatch {
		t.Fatalf("expected ErrAnswerCountMismatch, got %v", err)
	}
}

func TestScoreQuiz_Idempotent(t *testing.T) {
	questions := []Question{{Answer: 2}, {Answer: 1}, {Answer: 0}}
	answers := []int{2, 1, 3}

	first, err := ScoreQuiz(questions, answers)
	if err != nil {
		t.Fatalf("first call failed: %v", err)
	}
	second, err := ScoreQuiz(questions, answers)
	if err != nil {
		t.Fatalf("second call failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("results differ: %+v vs %+v", first, second)
	}
}
