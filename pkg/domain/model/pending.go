package model

import (
	"sort"

	"github.com/ldez/stackoverflow-slack-bot/pkg/domain/types"
)

// PendingAnswers records timeline "answer" signals awaiting reconciliation.
// The timeline reports that an answer was posted but not by whom, so only the
// question ID and the answer's creation timestamp are kept. The set lives for
// a single run and is discarded after reconciliation.
type PendingAnswers map[types.QuestionID][]int64

// Add records an answer signal for the given question
func (p PendingAnswers) Add(id types.QuestionID, creationDate int64) {
	p[id] = append(p[id], creationDate)
}

// Match reports whether an answer with the given creation timestamp was
// signaled for the question. The match is an exact timestamp equality; the
// timeline's timestamp is trusted as the correlation key, so an answer
// reported with a differently-rounded timestamp would not match.
func (p PendingAnswers) Match(id types.QuestionID, creationDate int64) bool {
	for _, ts := range p[id] {
		if ts == creationDate {
			return true
		}
	}
	return false
}

// QuestionIDs returns the pending question IDs in ascending order
func (p PendingAnswers) QuestionIDs() []types.QuestionID {
	ids := make([]types.QuestionID, 0, len(p))
	for id := range p {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
