package model

import "github.com/ldez/stackoverflow-slack-bot/pkg/domain/types"

// Question is a single item of the tagged question list, already converted
// from the wire format at the ingestion boundary. Title may still contain
// HTML entities; they are decoded exactly once when the ledger is built.
type Question struct {
	ID               types.QuestionID
	Title            string
	LastActivityDate int64
	CreationDate     int64
	Link             string
}

// QuestionList is the result of a tagged question fetch. Quota values are
// informational only and are logged, never enforced.
type QuestionList struct {
	Items          []Question
	QuotaMax       int
	QuotaRemaining int
}

// TimelineEntry is a single question timeline event. Actor is already
// resolved from the wire format's user/owner ambiguity and entity-decoded.
type TimelineEntry struct {
	Type         types.TimelineType
	QuestionID   types.QuestionID
	PostID       types.PostID
	CommentID    types.CommentID
	CreationDate int64
	Actor        string
}

// Answer is a single item of an answers-by-date-range fetch. Owner is the
// entity-decoded display name of the answerer.
type Answer struct {
	AnswerID     types.AnswerID
	QuestionID   types.QuestionID
	CreationDate int64
	Owner        string
}
