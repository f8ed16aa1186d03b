package model

import (
	"sort"

	"github.com/ldez/stackoverflow-slack-bot/pkg/domain/types"
)

// ActionEvent is one reported occurrence on a question. Link is empty for
// question-level events (asked, question revised).
type ActionEvent struct {
	When int64
	Who  string
	Kind types.ActionKind
	Link string
}

// What returns the human-readable description of the event
func (e ActionEvent) What() string {
	return e.Kind.Description()
}

// QuestionActivity is the per-run activity record of a single question.
// Actions are appended in arrival order and only ordered at render time.
type QuestionActivity struct {
	ID           types.QuestionID
	Title        string
	CreationDate int64
	Link         string
	Actions      []ActionEvent
}

// AddAction appends an event to the activity record
func (a *QuestionActivity) AddAction(event ActionEvent) {
	a.Actions = append(a.Actions, event)
}

// SortedActions returns the events ordered ascending by timestamp. The sort
// is stable: events sharing a timestamp keep their arrival order.
func (a *QuestionActivity) SortedActions() []ActionEvent {
	actions := make([]ActionEvent, len(a.Actions))
	copy(actions, a.Actions)
	sort.SliceStable(actions, func(i, j int) bool {
		return actions[i].When < actions[j].When
	})
	return actions
}

// Ledger maps question IDs to their activity records for a single run.
// It is rebuilt from scratch each run and never merges data across runs.
type Ledger map[types.QuestionID]*QuestionActivity

// Add registers an activity record, replacing any previous one for the same ID
func (l Ledger) Add(activity *QuestionActivity) {
	l[activity.ID] = activity
}

// Get returns the activity record for the given question ID, or nil
func (l Ledger) Get(id types.QuestionID) *QuestionActivity {
	return l[id]
}

// IDs returns the question IDs in ascending order. Rendering iterates this
// so that a given ledger always produces the same digest.
func (l Ledger) IDs() []types.QuestionID {
	ids := make([]types.QuestionID, 0, len(l))
	for id := range l {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
