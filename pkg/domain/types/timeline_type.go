package types

// TimelineType represents the kind of a question timeline entry as reported
// by the StackExchange API. The API may introduce new kinds at any time, so
// unknown values are tolerated and classified as uninteresting.
type TimelineType string

const (
	TimelineQuestion         TimelineType = "question"
	TimelineRevision         TimelineType = "revision"
	TimelineAnswer           TimelineType = "answer"
	TimelineComment          TimelineType = "comment"
	TimelineAcceptedAnswer   TimelineType = "accepted_answer"
	TimelineUnacceptedAnswer TimelineType = "unaccepted_answer"
	TimelinePostStateChanged TimelineType = "post_state_changed"
	TimelineVoteAggregate    TimelineType = "vote_aggregate"
)

// IsKnown reports whether the timeline type is one the classifier recognizes.
// Unknown types are not an error; they are simply never reported.
func (t TimelineType) IsKnown() bool {
	switch t {
	case TimelineQuestion,
		TimelineRevision,
		TimelineAnswer,
		TimelineComment,
		TimelineAcceptedAnswer,
		TimelineUnacceptedAnswer,
		TimelinePostStateChanged,
		TimelineVoteAggregate:
		return true
	default:
		return false
	}
}

// String returns the string representation of the timeline type
func (t TimelineType) String() string {
	return string(t)
}
