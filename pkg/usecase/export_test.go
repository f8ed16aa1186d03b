package usecase

import "github.com/ldez/stackoverflow-slack-bot/pkg/domain/model"

var (
	BuildLedger      = buildLedger
	ClassifyTimeline = classifyTimeline
	ReconcileAnswers = reconcileAnswers
)

func (uc *UseCases) RenderDigest(ledger model.Ledger) string {
	return uc.renderDigest(ledger)
}
