package domain

import "errors"

var ErrTutorialNotFound = errors.New("tutorial not found")

// Tutorial is static, read-only content: metadata, ordered sections of
// markdown, and an optional quiz. Tutorials are referenced by identifier
// only; user data never mutates them.
type Tutorial struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Duration    string     `json:"duration"`
	Level       string     `json:"level"`
	Sections    []Section  `json:"sections"`
	Quiz        []Question `json:"quiz,omitempty"`
}

// Section is one unit of tutorial content.
type Section struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Question is a single multiple-choice quiz question. Answer is the index
// of the correct option and must never be exposed to clients before
// submission.
type Question struct {
	Prompt  string   `json:"question"`
	Options []string `json:"options"`
	Answer  int      `json:"answer"`
}
