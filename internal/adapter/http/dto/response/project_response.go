package response

import (
	"dominant_assurance/internal/domain/entities"
)

type ProjectDTO struct {
	FundingGoal          string  `json:"fundingGoal"`
	FundingDeadline      string  `json:"fundingDeadline"`
	RefundBonusPercent   float64 `json:"refundBonusPercent"`
	DefaultPaymentAmount float64 `json:"defaultPaymentAmount"`
	FormHeading          string  `json:"formHeading"`
	Description          string  `json:"description"`
	AuthorName           string  `json:"authorName"`
	AuthorImageURL       string  `json:"authorImageUrl"`
	AuthorDescription    string  `json:"authorDescription"`
	IsDraft              bool    `json:"isDraft"`
}

type ProjectResponse struct {
	Project ProjectDTO `json:"project"`
}

func FromProject(p entities.Project) ProjectResponse {
	dto := ProjectDTO{
		FundingGoal:          p.FundingGoal.String(),
		RefundBonusPercent:   p.RefundBonusPercent.InexactFloat64(),
		DefaultPaymentAmount: p.DefaultPaymentAmount.InexactFloat64(),
		FormHeading:          p.FormHeading,
		Description:          p.Description,
		AuthorName:           p.AuthorName,
		AuthorImageURL:       p.AuthorImageURL,
		AuthorDescription:    p.AuthorDescription,
		IsDraft:              p.IsDraft,
	}
	if !p.FundingDeadline.IsZero() {
		dto.FundingDeadline = entities.FormatISOTime(p.FundingDeadline)
	}
	return ProjectResponse{Project: dto}
}
