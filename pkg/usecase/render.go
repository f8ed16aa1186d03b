package usecase

import (
	"strings"
	"time"

	"github.com/ldez/stackoverflow-slack-bot/pkg/domain/model"
)

const timestampFormat = "Mon, 02 Jan 2006 15:04:05 MST"

// renderDigest assembles the Slack mrkdwn digest for a non-empty ledger.
// Questions are ordered by ascending ID and actions by ascending timestamp,
// so the same ledger always renders to the same text.
func (uc *UseCases) renderDigest(ledger model.Ledger) string {
	var b strings.Builder

	b.WriteString(uc.icons.NewActivity)
	b.WriteString(" New StackOverflow activity on the <")
	b.WriteString(model.TaggedQuestionsLink(uc.siteURL, uc.tags))
	b.WriteString("|Tag>:\n\n")

	for _, id := range ledger.IDs() {
		activity := ledger.Get(id)

		b.WriteString(uc.icons.Topic)
		b.WriteString(" <")
		b.WriteString(activity.Link)
		b.WriteString("|")
		b.WriteString(activity.Title)
		b.WriteString(">: _")
		b.WriteString(formatTimestamp(activity.CreationDate))
		b.WriteString("_")

		// A question whose only signal was an answer that reconciliation
		// matched nothing for still renders its header line.
		for _, action := range activity.SortedActions() {
			b.WriteString("\n\t\t\t ")
			b.WriteString(uc.icons.ForKind(action.Kind))
			b.WriteString(" ")
			b.WriteString(action.Who)
			b.WriteString(" ")
			if action.Link != "" {
				b.WriteString("<")
				b.WriteString(action.Link)
				b.WriteString("|")
				b.WriteString(action.What())
				b.WriteString(">")
			} else {
				b.WriteString(action.What())
			}
			b.WriteString(" _")
			b.WriteString(formatTimestamp(action.When))
			b.WriteString("_")
		}

		b.WriteString("\n\n")
	}

	return b.String()
}

// formatTimestamp renders in the process-local zone, the zone the bot
// operator reads the channel in.
func formatTimestamp(epoch int64) string {
	return time.Unix(epoch, 0).Local().Format(timestampFormat)
}
