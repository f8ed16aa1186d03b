package usecase

import (
	"html"

	"github.com/ldez/stackoverflow-slack-bot/pkg/domain/model"
	"github.com/ldez/stackoverflow-slack-bot/pkg/domain/types"
)

// buildLedger turns the raw question list into the per-run activity ledger,
// keeping only questions with activity after the watermark. HTML entities in
// titles are decoded here and nowhere else.
func buildLedger(items []model.Question, watermark int64) model.Ledger {
	ledger := model.Ledger{}
	for _, q := range items {
		if q.LastActivityDate <= watermark {
			continue
		}
		ledger.Add(&model.QuestionActivity{
			ID:           q.ID,
			Title:        html.UnescapeString(q.Title),
			CreationDate: q.CreationDate,
			Link:         q.Link,
		})
	}
	return ledger
}

// classifyTimeline walks the combined timeline, appends renderable events to
// the matching ledger entries and collects "answer" signals for
// reconciliation. Timeline "answer" entries lack the answerer identity and
// permalink, so they cannot be rendered directly.
func classifyTimeline(ledger model.Ledger, entries []model.TimelineEntry, watermark int64, siteURL string) model.PendingAnswers {
	pending := model.PendingAnswers{}

	for _, e := range entries {
		if e.CreationDate <= watermark {
			continue
		}

		activity := ledger.Get(e.QuestionID)
		if activity == nil {
			// The fetch is scoped to ledger IDs, so this should not happen;
			// an unknown question is skipped rather than failing the run.
			continue
		}

		switch e.Type {
		case types.TimelineQuestion:
			activity.AddAction(model.ActionEvent{
				When: e.CreationDate,
				Who:  e.Actor,
				Kind: types.ActionAsked,
			})

		case types.TimelineRevision:
			if int64(e.PostID) == int64(e.QuestionID) {
				activity.AddAction(model.ActionEvent{
					When: e.CreationDate,
					Who:  e.Actor,
					Kind: types.ActionRevisedQuestion,
				})
			} else {
				activity.AddAction(model.ActionEvent{
					When: e.CreationDate,
					Who:  e.Actor,
					Kind: types.ActionRevisedAnswer,
					Link: model.AnswerLink(siteURL, types.AnswerID(e.PostID)),
				})
			}

		case types.TimelineAcceptedAnswer:
			activity.AddAction(model.ActionEvent{
				When: e.CreationDate,
				Who:  e.Actor,
				Kind: types.ActionAnswerAccepted,
				Link: model.AnswerLink(siteURL, types.AnswerID(e.PostID)),
			})

		case types.TimelineComment:
			activity.AddAction(model.ActionEvent{
				When: e.CreationDate,
				Who:  e.Actor,
				Kind: types.ActionPostedComment,
				Link: model.CommentLink(siteURL, e.QuestionID, e.PostID, e.CommentID),
			})

		case types.TimelineAnswer:
			pending.Add(e.QuestionID, e.CreationDate)

		default:
			// unaccepted_answer, post_state_changed, vote_aggregate and any
			// kind introduced by the API later are deliberately not reported
		}
	}

	return pending
}

// reconcileAnswers resolves pending "answer" signals against the answers
// fetched for the [watermark, now] window. The match is an exact equality on
// (question ID, creation timestamp); answers without a matching signal are
// dropped.
func reconcileAnswers(ledger model.Ledger, pending model.PendingAnswers, answers []model.Answer, siteURL string) {
	for _, ans := range answers {
		if !pending.Match(ans.QuestionID, ans.CreationDate) {
			continue
		}

		activity := ledger.Get(ans.QuestionID)
		if activity == nil {
			continue
		}

		activity.AddAction(model.ActionEvent{
			When: ans.CreationDate,
			Who:  ans.Owner,
			Kind: types.ActionPostedAnswer,
			Link: model.AnswerLink(siteURL, ans.AnswerID),
		})
	}
}
