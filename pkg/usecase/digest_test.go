package usecase_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/ldez/stackoverflow-slack-bot/pkg/domain/model"
	"github.com/ldez/stackoverflow-slack-bot/pkg/domain/types"
	"github.com/ldez/stackoverflow-slack-bot/pkg/usecase"
)

const siteURL = "https://stackoverflow.com"

func TestBuildLedger_FiltersByWatermark(t *testing.T) {
	items := []model.Question{
		{ID: 1, Title: "old", LastActivityDate: 100, CreationDate: 50, Link: "https://stackoverflow.com/q/1"},
		{ID: 2, Title: "boundary", LastActivityDate: 200, CreationDate: 60, Link: "https://stackoverflow.com/q/2"},
		{ID: 3, Title: "fresh", LastActivityDate: 201, CreationDate: 70, Link: "https://stackoverflow.com/q/3"},
	}

	ledger := usecase.BuildLedger(items, 200)
	gt.V(t, len(ledger)).Equal(1)
	gt.V(t, ledger.Get(3).Title).Equal("fresh")
	gt.V(t, ledger.Get(1)).Nil()
	gt.V(t, ledger.Get(2)).Nil()
}

func TestBuildLedger_DecodesTitleOnce(t *testing.T) {
	items := []model.Question{
		{ID: 1, Title: "Tom &amp; Jerry", LastActivityDate: 300, CreationDate: 50},
	}

	ledger := usecase.BuildLedger(items, 0)
	gt.V(t, ledger.Get(1).Title).Equal("Tom & Jerry")
}

func TestBuildLedger_Empty(t *testing.T) {
	ledger := usecase.BuildLedger(nil, 100)
	gt.V(t, len(ledger)).Equal(0)
}

func TestClassifyTimeline(t *testing.T) {
	ledger := model.Ledger{}
	ledger.Add(&model.QuestionActivity{ID: 42, Title: "q"})

	entries := []model.TimelineEntry{
		{Type: types.TimelineQuestion, QuestionID: 42, PostID: 42, CreationDate: 110, Actor: "alice"},
		{Type: types.TimelineComment, QuestionID: 42, PostID: 50, CommentID: 7, CreationDate: 120, Actor: "bob"},
		{Type: types.TimelineAcceptedAnswer, QuestionID: 42, PostID: 50, CreationDate: 130, Actor: "alice"},
		// gated by watermark
		{Type: types.TimelineComment, QuestionID: 42, PostID: 50, CommentID: 3, CreationDate: 100, Actor: "carol"},
	}

	pending := usecase.ClassifyTimeline(ledger, entries, 100, siteURL)
	gt.V(t, len(pending)).Equal(0)

	actions := ledger.Get(42).Actions
	gt.A(t, actions).Length(3)

	gt.V(t, actions[0].Kind).Equal(types.ActionAsked)
	gt.V(t, actions[0].Who).Equal("alice")
	gt.V(t, actions[0].Link).Equal("")

	gt.V(t, actions[1].Kind).Equal(types.ActionPostedComment)
	gt.V(t, actions[1].Link).Equal("https://stackoverflow.com/questions/42/50#comment7_50")

	gt.V(t, actions[2].Kind).Equal(types.ActionAnswerAccepted)
	gt.V(t, actions[2].Link).Equal("https://stackoverflow.com/a/50")
}

func TestClassifyTimeline_RevisionDisambiguation(t *testing.T) {
	ledger := model.Ledger{}
	ledger.Add(&model.QuestionActivity{ID: 42})

	entries := []model.TimelineEntry{
		{Type: types.TimelineRevision, QuestionID: 42, PostID: 42, CreationDate: 110, Actor: "alice"},
		{Type: types.TimelineRevision, QuestionID: 42, PostID: 99, CreationDate: 120, Actor: "bob"},
	}

	usecase.ClassifyTimeline(ledger, entries, 100, siteURL)

	actions := ledger.Get(42).Actions
	gt.A(t, actions).Length(2)

	gt.V(t, actions[0].Kind).Equal(types.ActionRevisedQuestion)
	gt.V(t, actions[0].Link).Equal("")

	gt.V(t, actions[1].Kind).Equal(types.ActionRevisedAnswer)
	gt.V(t, actions[1].Link).Equal("https://stackoverflow.com/a/99")
}

func TestClassifyTimeline_AnswerOnlySignalsReconciliation(t *testing.T) {
	ledger := model.Ledger{}
	ledger.Add(&model.QuestionActivity{ID: 42})

	entries := []model.TimelineEntry{
		{Type: types.TimelineAnswer, QuestionID: 42, PostID: 77, CreationDate: 1000, Actor: ""},
	}

	pending := usecase.ClassifyTimeline(ledger, entries, 100, siteURL)

	gt.A(t, ledger.Get(42).Actions).Length(0)
	gt.B(t, pending.Match(42, 1000)).True()
}

func TestClassifyTimeline_IgnoresUninterestingKinds(t *testing.T) {
	ledger := model.Ledger{}
	ledger.Add(&model.QuestionActivity{ID: 42})

	entries := []model.TimelineEntry{
		{Type: types.TimelineUnacceptedAnswer, QuestionID: 42, PostID: 50, CreationDate: 110},
		{Type: types.TimelinePostStateChanged, QuestionID: 42, PostID: 42, CreationDate: 120},
		{Type: types.TimelineVoteAggregate, QuestionID: 42, PostID: 42, CreationDate: 130},
		{Type: types.TimelineType("bounty_started"), QuestionID: 42, PostID: 42, CreationDate: 140},
	}

	pending := usecase.ClassifyTimeline(ledger, entries, 100, siteURL)
	gt.V(t, len(pending)).Equal(0)
	gt.A(t, ledger.Get(42).Actions).Length(0)
}

func TestClassifyTimeline_UnknownQuestionIgnored(t *testing.T) {
	ledger := model.Ledger{}
	ledger.Add(&model.QuestionActivity{ID: 42})

	entries := []model.TimelineEntry{
		{Type: types.TimelineComment, QuestionID: 999, PostID: 999, CommentID: 1, CreationDate: 110, Actor: "ghost"},
	}

	pending := usecase.ClassifyTimeline(ledger, entries, 100, siteURL)
	gt.V(t, len(pending)).Equal(0)
	gt.A(t, ledger.Get(42).Actions).Length(0)
}

func TestReconcileAnswers_ExactTimestampMatch(t *testing.T) {
	ledger := model.Ledger{}
	ledger.Add(&model.QuestionActivity{ID: 42})

	pending := model.PendingAnswers{}
	pending.Add(42, 1000)

	answers := []model.Answer{
		{AnswerID: 777, QuestionID: 42, CreationDate: 1000, Owner: "bob"},
		// off by one second: dropped
		{AnswerID: 778, QuestionID: 42, CreationDate: 999, Owner: "carol"},
		// not pending: dropped
		{AnswerID: 779, QuestionID: 7, CreationDate: 1000, Owner: "dave"},
	}

	usecase.ReconcileAnswers(ledger, pending, answers, siteURL)

	actions := ledger.Get(42).Actions
	gt.A(t, actions).Length(1)
	gt.V(t, actions[0].Kind).Equal(types.ActionPostedAnswer)
	gt.V(t, actions[0].Who).Equal("bob")
	gt.V(t, actions[0].Link).Equal("https://stackoverflow.com/a/777")
}
