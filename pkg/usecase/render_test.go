package usecase_test

import (
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/ldez/stackoverflow-slack-bot/pkg/domain/model"
	"github.com/ldez/stackoverflow-slack-bot/pkg/domain/types"
	"github.com/ldez/stackoverflow-slack-bot/pkg/repository/memory"
	"github.com/ldez/stackoverflow-slack-bot/pkg/service/stackexchange"
	"github.com/ldez/stackoverflow-slack-bot/pkg/usecase"
)

func newRenderUseCases(t *testing.T) *usecase.UseCases {
	t.Helper()
	return usecase.New(memory.New(), stackexchange.New(), "traefik;docker")
}

func TestRenderDigest_Header(t *testing.T) {
	uc := newRenderUseCases(t)

	ledger := model.Ledger{}
	ledger.Add(&model.QuestionActivity{ID: 1, Title: "q", Link: "https://stackoverflow.com/q/1"})

	digest := uc.RenderDigest(ledger)
	gt.B(t, strings.HasPrefix(digest, ":loudspeaker: New StackOverflow activity on the <https://stackoverflow.com/questions/tagged/traefik|docker|Tag>:")).True()
}

func TestRenderDigest_ActionsAscendingByTime(t *testing.T) {
	uc := newRenderUseCases(t)

	activity := &model.QuestionActivity{ID: 1, Title: "q", Link: "https://stackoverflow.com/q/1"}
	activity.AddAction(model.ActionEvent{When: 5, Who: "late", Kind: types.ActionPostedComment, Link: "https://stackoverflow.com/questions/1/1#comment3_1"})
	activity.AddAction(model.ActionEvent{When: 1, Who: "early", Kind: types.ActionAsked})
	activity.AddAction(model.ActionEvent{When: 3, Who: "middle", Kind: types.ActionRevisedQuestion})

	ledger := model.Ledger{}
	ledger.Add(activity)

	digest := uc.RenderDigest(ledger)

	early := strings.Index(digest, "early")
	middle := strings.Index(digest, "middle")
	late := strings.Index(digest, "late")
	gt.B(t, early >= 0 && middle >= 0 && late >= 0).True()
	gt.B(t, early < middle).True()
	gt.B(t, middle < late).True()
}

func TestRenderDigest_LinkedAndPlainActions(t *testing.T) {
	uc := newRenderUseCases(t)

	activity := &model.QuestionActivity{ID: 1, Title: "q", Link: "https://stackoverflow.com/q/1"}
	activity.AddAction(model.ActionEvent{When: 1, Who: "alice", Kind: types.ActionAsked})
	activity.AddAction(model.ActionEvent{When: 2, Who: "bob", Kind: types.ActionPostedAnswer, Link: "https://stackoverflow.com/a/7"})

	ledger := model.Ledger{}
	ledger.Add(activity)

	digest := uc.RenderDigest(ledger)
	gt.S(t, digest).Contains("alice asked this question.")
	gt.S(t, digest).Contains("bob <https://stackoverflow.com/a/7|posted an answer.>")
}

func TestRenderDigest_QuestionOrderByID(t *testing.T) {
	uc := newRenderUseCases(t)

	ledger := model.Ledger{}
	ledger.Add(&model.QuestionActivity{ID: 20, Title: "second", Link: "https://stackoverflow.com/q/20"})
	ledger.Add(&model.QuestionActivity{ID: 10, Title: "first", Link: "https://stackoverflow.com/q/10"})

	digest := uc.RenderDigest(ledger)
	gt.B(t, strings.Index(digest, "first") < strings.Index(digest, "second")).True()
}

func TestRenderDigest_ZeroActionQuestionKeepsHeader(t *testing.T) {
	uc := newRenderUseCases(t)

	ledger := model.Ledger{}
	ledger.Add(&model.QuestionActivity{ID: 1, Title: "lonely", Link: "https://stackoverflow.com/q/1"})

	digest := uc.RenderDigest(ledger)
	gt.S(t, digest).Contains("<https://stackoverflow.com/q/1|lonely>")
}

func TestRenderDigest_DecodedTitleRenderedAsIs(t *testing.T) {
	uc := newRenderUseCases(t)

	ledger := usecase.BuildLedger([]model.Question{
		{ID: 1, Title: "Tom &amp; Jerry", LastActivityDate: 10, CreationDate: 5, Link: "https://stackoverflow.com/q/1"},
	}, 0)

	digest := uc.RenderDigest(ledger)
	gt.S(t, digest).Contains("Tom & Jerry")
	gt.B(t, strings.Contains(digest, "&amp;")).False()
}

func TestRenderDigest_TimestampsInLocalZone(t *testing.T) {
	uc := newRenderUseCases(t)

	const epoch = int64(1136214245)
	ledger := model.Ledger{}
	ledger.Add(&model.QuestionActivity{ID: 1, Title: "q", CreationDate: epoch, Link: "https://stackoverflow.com/q/1"})

	digest := uc.RenderDigest(ledger)

	want := time.Unix(epoch, 0).Local().Format("Mon, 02 Jan 2006 15:04:05 MST")
	gt.S(t, digest).Contains("_" + want + "_")
}
