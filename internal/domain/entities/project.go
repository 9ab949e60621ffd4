package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	DefaultRefundBonusPercent = 20
	DefaultPaymentAmount      = 89
	ISOTimeLayout             = "2006-01-02T15:04:05.000Z07:00"
	ProjectResourcePrefix     = "/projects/"
)

// Project is the crowdfunding campaign metadata.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Publication rules:
//   - A project that was never stored is a draft.
//   - Once IsDraft is false, FundingGoal, FundingDeadline and RefundBonusPercent
//     are frozen and the project cannot return to draft.
type Project struct {
	ID                   string
	FundingGoal          decimal.Decimal
	FundingDeadline      time.Time
	RefundBonusPercent   decimal.Decimal
	DefaultPaymentAmount decimal.Decimal
	FormHeading          string
	Description          string
	AuthorName           string
	AuthorImageURL       string
	AuthorDescription    string
	IsDraft              bool
}

// Resource returns the ACL resource guarding this project.
func (p Project) Resource() string {
	return ProjectResource(p.ID)
}

func ProjectResource(projectID string) string {
	return ProjectResourcePrefix + projectID
}

// SameTerms reports whether the frozen funding terms are identical.
func (p Project) SameTerms(other Project) bool {
	return p.FundingGoal.Equal(other.FundingGoal) &&
		p.FundingDeadline.Equal(other.FundingDeadline) &&
		p.RefundBonusPercent.Equal(other.RefundBonusPercent)
}

func FormatISOTime(t time.Time) string {
	return t.UTC().Format(ISOTimeLayout)
}
