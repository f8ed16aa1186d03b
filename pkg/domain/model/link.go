package model

import (
	"strings"

	"github.com/ldez/stackoverflow-slack-bot/pkg/domain/types"
)

// AnswerLink builds the short permalink to an answer
func AnswerLink(baseURL string, answerID types.AnswerID) string {
	return baseURL + "/a/" + answerID.String()
}

// CommentLink builds the permalink to a comment, anchored to the post the
// comment was made on. postID equals the question ID for comments on the
// question itself.
func CommentLink(baseURL string, questionID types.QuestionID, postID types.PostID, commentID types.CommentID) string {
	return baseURL + "/questions/" + questionID.String() + "/" + postID.String() +
		"#comment" + commentID.String() + "_" + postID.String()
}

// TaggedQuestionsLink builds the link to the tagged question list. Multiple
// tags separated by ";" in the watch filter are joined with "|" in the URL.
func TaggedQuestionsLink(baseURL string, tags string) string {
	return baseURL + "/questions/tagged/" + strings.ReplaceAll(tags, ";", "|")
}
