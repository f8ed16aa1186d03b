package model

import "github.com/ldez/stackoverflow-slack-bot/pkg/domain/types"

// IconSet maps digest elements to the emoji rendered in front of them.
// The zero value renders no icons; DefaultIconSet returns the stock set.
type IconSet struct {
	NewActivity     string `toml:"new_activity"`
	Topic           string `toml:"topic"`
	AskedQuestion   string `toml:"asked_question"`
	RevisedQuestion string `toml:"revised_question"`
	RevisedAnswer   string `toml:"revised_answer"`
	AnswerAccepted  string `toml:"answer_accepted"`
	Comment         string `toml:"comment"`
	PostedAnswer    string `toml:"posted_answer"`
}

// DefaultIconSet returns the stock emoji set
func DefaultIconSet() IconSet {
	return IconSet{
		NewActivity:     ":loudspeaker:",
		Topic:           ":question:",
		AskedQuestion:   ":grey_question:",
		RevisedQuestion: ":pencil2:",
		RevisedAnswer:   ":pencil:",
		AnswerAccepted:  ":white_check_mark:",
		Comment:         ":speech_balloon:",
		PostedAnswer:    ":memo:",
	}
}

// ForKind returns the icon associated with an action kind
func (s IconSet) ForKind(kind types.ActionKind) string {
	switch kind {
	case types.ActionAsked:
		return s.AskedQuestion
	case types.ActionRevisedQuestion:
		return s.RevisedQuestion
	case types.ActionRevisedAnswer:
		return s.RevisedAnswer
	case types.ActionAnswerAccepted:
		return s.AnswerAccepted
	case types.ActionPostedComment:
		return s.Comment
	case types.ActionPostedAnswer:
		return s.PostedAnswer
	default:
		return ""
	}
}
