package request

import (
	"errors"
	"strings"
	"time"

	"dominant_assurance/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidFundingDeadline = errors.New("invalid fundingDeadline")
)

// ProjectRequest mirrors the project JSON used by the frontend. Missing
// refundBonusPercent, defaultPaymentAmount and isDraft take their defaults.
type ProjectRequest struct {
	FundingGoal          decimal.Decimal  `json:"fundingGoal"`
	FundingDeadline      string           `json:"fundingDeadline"`
	RefundBonusPercent   *decimal.Decimal `json:"refundBonusPercent"`
	DefaultPaymentAmount *decimal.Decimal `json:"defaultPaymentAmount"`
	FormHeading          string           `json:"formHeading"`
	Description          string           `json:"description"`
	AuthorName           string           `json:"authorName"`
	AuthorImageURL       string           `json:"authorImageUrl"`
	AuthorDescription    string           `json:"authorDescription"`
	IsDraft              *bool            `json:"isDraft"`
}

type PutProjectRequest struct {
	Project *ProjectRequest `json:"project" binding:"required"`
}

func (r ProjectRequest) ToEntity(projectID string) (entities.Project, error) {
	p := entities.Project{
		ID:                   strings.TrimSpace(projectID),
		FundingGoal:          r.FundingGoal,
		RefundBonusPercent:   decimal.NewFromInt(entities.DefaultRefundBonusPercent),
		DefaultPaymentAmount: decimal.NewFromInt(entities.DefaultPaymentAmount),
		FormHeading:          r.FormHeading,
		Description:          r.Description,
		AuthorName:           r.AuthorName,
		AuthorImageURL:       r.AuthorImageURL,
		AuthorDescription:    r.AuthorDescription,
	}
	if r.RefundBonusPercent != nil {
		p.RefundBonusPercent = *r.RefundBonusPercent
	}
	if r.DefaultPaymentAmount != nil {
		p.DefaultPaymentAmount = *r.DefaultPaymentAmount
	}
	if r.IsDraft != nil {
		p.IsDraft = *r.IsDraft
	}
	if v := strings.TrimSpace(r.FundingDeadline); v != "" {
		deadline, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return entities.Project{}, ErrInvalidFundingDeadline
		}
		p.FundingDeadline = deadline.UTC()
	}
	return p, nil
}
