package repository

import (
	"context"
	"sort"
	"time"

	"dominant_assurance/internal/domain/entities"
	"dominant_assurance/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/shopspring/decimal"
)

type projectItem struct {
	ID                   string `dynamodbav:"id"`
	FundingGoal          string `dynamodbav:"funding_goal,omitempty"`
	FundingDeadline      string `dynamodbav:"funding_deadline,omitempty"`
	RefundBonusPercent   string `dynamodbav:"refund_bonus_percent,omitempty"`
	DefaultPaymentAmount string `dynamodbav:"default_payment_amount,omitempty"`
	FormHeading          string `dynamodbav:"form_heading,omitempty"`
	Description          string `dynamodbav:"description,omitempty"`
	AuthorName           string `dynamodbav:"author_name,omitempty"`
	AuthorImageURL       string `dynamodbav:"author_image_url,omitempty"`
	AuthorDescription    string `dynamodbav:"author_description,omitempty"`
	IsDraft              bool   `dynamodbav:"is_draft"`
}

// ProjectDynamoRepository persists Project metadata in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Missing percent and default amount attributes read back as the defaults.
type ProjectDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb DynamoAPI, tableName string) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ProjectDynamoRepository) Get(ctx context.Context, id string) (entities.Project, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Project{}, err
	}
	if len(out.Item) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func (r *ProjectDynamoRepository) Put(ctx context.Context, p entities.Project) error {
	av, err := attributevalue.MarshalMap(toProjectItem(p))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *ProjectDynamoRepository) ListIDs(ctx context.Context) ([]string, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:                aws.String(r.tableName),
		ProjectionExpression:     aws.String("#id"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})

	var ids []string
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []projectItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			ids = append(ids, it.ID)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func toProjectItem(p entities.Project) projectItem {
	it := projectItem{
		ID:                   p.ID,
		FundingGoal:          p.FundingGoal.String(),
		RefundBonusPercent:   p.RefundBonusPercent.String(),
		DefaultPaymentAmount: p.DefaultPaymentAmount.String(),
		FormHeading:          p.FormHeading,
		Description:          p.Description,
		AuthorName:           p.AuthorName,
		AuthorImageURL:       p.AuthorImageURL,
		AuthorDescription:    p.AuthorDescription,
		IsDraft:              p.IsDraft,
	}
	if !p.FundingDeadline.IsZero() {
		it.FundingDeadline = p.FundingDeadline.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromProjectItem(it projectItem) entities.Project {
	var deadline time.Time
	if it.FundingDeadline != "" {
		deadline, _ = time.Parse(time.RFC3339Nano, it.FundingDeadline)
	}
	return entities.Project{
		ID:                   it.ID,
		FundingGoal:          parseDecimal(it.FundingGoal, decimal.Zero),
		FundingDeadline:      deadline,
		RefundBonusPercent:   parseDecimal(it.RefundBonusPercent, decimal.NewFromInt(entities.DefaultRefundBonusPercent)),
		DefaultPaymentAmount: parseDecimal(it.DefaultPaymentAmount, decimal.NewFromInt(entities.DefaultPaymentAmount)),
		FormHeading:          it.FormHeading,
		Description:          it.Description,
		AuthorName:           it.AuthorName,
		AuthorImageURL:       it.AuthorImageURL,
		AuthorDescription:    it.AuthorDescription,
		IsDraft:              it.IsDraft,
	}
}
