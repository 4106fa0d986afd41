package domain

import "errors"

// NoAnswer is the sentinel value for a question the user has not answered.
const NoAnswer = -1

var ErrQuizIncomplete = errors.New("quiz has unanswered questions")
var ErrAnswerCountMismatch = errors.New("answer count does not match question count")

// QuizResult is the outcome of scoring one quiz submission.
type QuizResult struct {
	Score      int     `json:"score"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// ScoreQuiz computes the score for a quiz submission: one point per answer
// matching the question's correct-option index. Answers must be the same
// length as questions, and every entry must be a real selection (not
// NoAnswer). Pure function: no state, same inputs always score the same.
func ScoreQuiz(questions []Question, answers []int) (QuizResult, error) {
	if len(answers) != len(questions) {
		return QuizResult{}, ErrAnswerCountMismatch
	}
	for _, a := range answers {
		if a == NoAnswer {
			return QuizResult{}, ErrQuizIncomplete
		}
	}

	score := 0
	for i, q := range questions {
		if answers[i] == q.Answer {
			score++
		}
	}

	result := QuizResult{Score: score, Total: len(questions)}
	if result.Total > 0 {
		result.Percentage = float64(score) / float64(result.Total) * 100
	}
	return result, nil
}
