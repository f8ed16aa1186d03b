package types

import "strconv"

// QuestionID identifies a question on the Q&A site
type QuestionID int64

// String returns the decimal representation used in API paths and links
func (id QuestionID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// PostID identifies any post (question or answer) on the Q&A site.
// A timeline entry's post ID equals its question ID when the entry
// concerns the question itself.
type PostID int64

// String returns the decimal representation used in API paths and links
func (id PostID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// AnswerID identifies an answer on the Q&A site
type AnswerID int64

// String returns the decimal representation used in API paths and links
func (id AnswerID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// CommentID identifies a comment on the Q&A site
type CommentID int64

// String returns the decimal representation used in API paths and links
func (id CommentID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
