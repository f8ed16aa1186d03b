package types

import "fmt"

// ActionKind represents the kind of a reported activity on a question
type ActionKind string

const (
	ActionAsked           ActionKind = "asked"
	ActionRevisedQuestion ActionKind = "revised-question"
	ActionRevisedAnswer   ActionKind = "revised-answer"
	ActionAnswerAccepted  ActionKind = "answer-accepted"
	ActionPostedComment   ActionKind = "posted-comment"
	ActionPostedAnswer    ActionKind = "posted-answer"
)

// AllActionKinds returns all valid action kinds
func AllActionKinds() []ActionKind {
	return []ActionKind{
		ActionAsked,
		ActionRevisedQuestion,
		ActionRevisedAnswer,
		ActionAnswerAccepted,
		ActionPostedComment,
		ActionPostedAnswer,
	}
}

// IsValid checks if the action kind is valid
func (k ActionKind) IsValid() bool {
	switch k {
	case ActionAsked,
		ActionRevisedQuestion,
		ActionRevisedAnswer,
		ActionAnswerAccepted,
		ActionPostedComment,
		ActionPostedAnswer:
		return true
	default:
		return false
	}
}

// Description returns the human-readable description rendered in the digest
func (k ActionKind) Description() string {
	switch k {
	case ActionAsked:
		return "asked this question."
	case ActionRevisedQuestion:
		return "revised the question."
	case ActionRevisedAnswer:
		return "revised an answer."
	case ActionAnswerAccepted:
		return "answer was accepted."
	case ActionPostedComment:
		return "made a comment."
	case ActionPostedAnswer:
		return "posted an answer."
	default:
		return string(k)
	}
}

// String returns the string representation of the action kind
func (k ActionKind) String() string {
	return string(k)
}

// ParseActionKind parses a string into an ActionKind
func ParseActionKind(s string) (ActionKind, error) {
	kind := ActionKind(s)
	if !kind.IsValid() {
		return "", fmt.Errorf("invalid action kind: %s", s)
	}
	return kind, nil
}
