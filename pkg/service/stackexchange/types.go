package stackexchange

import (
	"context"

	"github.com/ldez/stackoverflow-slack-bot/pkg/domain/model"
	"github.com/ldez/stackoverflow-slack-bot/pkg/domain/types"
)

// Service provides the three StackExchange API views the pipeline joins:
// the tagged question list, the unified question timeline, and answers by
// date range. Each call fetches a single page.
type Service interface {
	// FetchQuestions retrieves the most recently active questions carrying
	// the given tags ("tag1;tag2" form).
	FetchQuestions(ctx context.Context, tags string) (*model.QuestionList, error)

	// FetchTimeline retrieves the combined timeline of the given questions.
	// Entries carry a resolved Actor regardless of whether the API reported
	// a "user" or an "owner".
	FetchTimeline(ctx context.Context, ids []types.QuestionID) ([]model.TimelineEntry, error)

	// FetchAnswers retrieves answers to the given questions created inside
	// the [fromDate, toDate] epoch-second window.
	FetchAnswers(ctx context.Context, ids []types.QuestionID, fromDate, toDate int64) ([]model.Answer, error)
}

// wire formats returned by the StackExchange API 2.x

type shallowUser struct {
	DisplayName string `json:"display_name"`
}

type questionsResponse struct {
	Items []struct {
		QuestionID       int64  `json:"question_id"`
		Title            string `json:"title"`
		LastActivityDate int64  `json:"last_activity_date"`
		CreationDate     int64  `json:"creation_date"`
		Link             string `json:"link"`
	} `json:"items"`
	QuotaMax       int `json:"quota_max"`
	QuotaRemaining int `json:"quota_remaining"`
}

type timelineResponse struct {
	Items []struct {
		TimelineType string       `json:"timeline_type"`
		QuestionID   int64        `json:"question_id"`
		PostID       int64        `json:"post_id"`
		CommentID    int64        `json:"comment_id"`
		CreationDate int64        `json:"creation_date"`
		User         *shallowUser `json:"user"`
		Owner        *shallowUser `json:"owner"`
	} `json:"items"`
}

type answersResponse struct {
	Items []struct {
		AnswerID     int64        `json:"answer_id"`
		QuestionID   int64        `json:"question_id"`
		CreationDate int64        `json:"creation_date"`
		Owner        *shallowUser `json:"owner"`
	} `json:"items"`
}
