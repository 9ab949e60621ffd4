// Package funding decides whether a project's pledges are kept or returned.
package funding

import (
	"time"

	"github.com/shopspring/decimal"
)

type State int

const (
	// Pending means the deadline has not been reached yet.
	Pending State = iota
	// Failed means the deadline passed below the goal; pledges are refunded with a bonus.
	Failed
	// Succeeded means the goal was met by the deadline; pledges are kept.
	Succeeded
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Failed:
		return "failed"
	case Succeeded:
		return "succeeded"
	}
	return "unknown"
}

// Evaluate is a pure function of the ledger total, the project terms and the
// current time. The deadline instant itself already counts as passed.
func Evaluate(total, goal decimal.Decimal, deadline, now time.Time) State {
	if now.Before(deadline) {
		return Pending
	}
	if total.LessThan(goal) {
		return Failed
	}
	return Succeeded
}
