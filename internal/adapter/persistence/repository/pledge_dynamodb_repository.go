package repository

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strconv"
	"time"

	"dominant_assurance/internal/domain/entities"
	"dominant_assurance/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	batchWriteLimit    = 25
	batchWriteAttempts = 5
)

type pledgeItem struct {
	ProjectID     string `dynamodbav:"project_id"`
	OrderID       string `dynamodbav:"order_id"`
	ReturnAddress string `dynamodbav:"return_address"`
	CaptureID     string `dynamodbav:"capture_id"`
	Amount        string `dynamodbav:"amount"`
	ProcessorFee  string `dynamodbav:"processor_fee,omitempty"`
	Name          string `dynamodbav:"name"`
	Time          string `dynamodbav:"time"`
	Refunded      bool   `dynamodbav:"refunded"`
	BonusAmount   string `dynamodbav:"bonus_amount,omitempty"`
	BonusRefunded bool   `dynamodbav:"bonus_refunded"`
	Seq           int    `dynamodbav:"seq"`
}

// PledgeDynamoRepository persists ledger records in DynamoDB.
//
// Table requirements:
//   - PK: project_id (string)
//   - SK: order_id (string)
//
// Records written before schema v1 have no bonus_amount and seq 0.
type PledgeDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPledgeRepository = (*PledgeDynamoRepository)(nil)

func NewPledgeDynamoRepository(ddb DynamoAPI, tableName string) *PledgeDynamoRepository {
	return &PledgeDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PledgeDynamoRepository) Insert(ctx context.Context, projectID string, rec entities.PledgeRecord) (bool, error) {
	av, err := attributevalue.MarshalMap(toPledgeItem(projectID, rec))
	if err != nil {
		return false, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#order_id)"),
		ExpressionAttributeNames: map[string]string{
			"#order_id": "order_id",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *PledgeDynamoRepository) ListByProject(ctx context.Context, projectID string) ([]entities.PledgeRecord, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#project_id = :project_id"),
		ExpressionAttributeNames: map[string]string{
			"#project_id": "project_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":project_id": &types.AttributeValueMemberS{Value: projectID},
		},
		ConsistentRead: aws.Bool(true),
	})

	var out []entities.PledgeRecord
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []pledgeItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromPledgeItem(it))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Seq != out[j].Seq {
			return out[i].Seq < out[j].Seq
		}
		return out[i].Time.Before(out[j].Time)
	})
	return out, nil
}

func (r *PledgeDynamoRepository) UpdateFlags(ctx context.Context, projectID string, rec entities.PledgeRecord) error {
	key := map[string]types.AttributeValue{
		"project_id": &types.AttributeValueMemberS{Value: projectID},
		"order_id":   &types.AttributeValueMemberS{Value: rec.OrderID},
	}
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 key,
		ConditionExpression: aws.String("attribute_exists(#order_id)"),
		UpdateExpression:    aws.String("SET #refunded = :refunded, #bonus_refunded = :bonus_refunded"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":refunded":       &types.AttributeValueMemberBOOL{Value: rec.Refunded},
			":bonus_refunded": &types.AttributeValueMemberBOOL{Value: rec.Bonus.Refunded},
		},
		ExpressionAttributeNames: mergeNames(
			map[string]string{"#refunded": "refunded", "#bonus_refunded": "bonus_refunded"},
			map[string]string{"#order_id": "order_id"},
		),
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return fmt.Errorf("%w: project_id=%s order_id=%s", ErrItemNotFound, projectID, rec.OrderID)
		}
		return err
	}
	return nil
}

// ReplaceAll overwrites the given records in batches. Migration never drops
// records, so no deletes are issued.
func (r *PledgeDynamoRepository) ReplaceAll(ctx context.Context, projectID string, recs []entities.PledgeRecord) error {
	for start := 0; start < len(recs); start += batchWriteLimit {
		end := start + batchWriteLimit
		if end > len(recs) {
			end = len(recs)
		}
		writes := make([]types.WriteRequest, 0, end-start)
		for _, rec := range recs[start:end] {
			av, err := attributevalue.MarshalMap(toPledgeItem(projectID, rec))
			if err != nil {
				return err
			}
			writes = append(writes, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
		}
		if err := r.batchWrite(ctx, writes); err != nil {
			return err
		}
	}
	log.Printf("[ledger][repository] replace-all success project_id=%s records=%d", projectID, len(recs))
	return nil
}

func (r *PledgeDynamoRepository) batchWrite(ctx context.Context, writes []types.WriteRequest) error {
	pending := map[string][]types.WriteRequest{r.tableName: writes}
	for attempt := 0; attempt < batchWriteAttempts && len(pending[r.tableName]) > 0; attempt++ {
		out, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{RequestItems: pending})
		if err != nil {
			return err
		}
		pending = out.UnprocessedItems
		if len(pending[r.tableName]) > 0 {
			time.Sleep(time.Duration(attempt+1) * 50 * time.Millisecond)
		}
	}
	if n := len(pending[r.tableName]); n > 0 {
		return fmt.Errorf("batch write left %d unprocessed items", n)
	}
	return nil
}

func toPledgeItem(projectID string, rec entities.PledgeRecord) pledgeItem {
	return pledgeItem{
		ProjectID:     projectID,
		OrderID:       rec.OrderID,
		ReturnAddress: rec.ReturnAddress,
		CaptureID:     rec.CaptureID,
		Amount:        rec.Amount.String(),
		ProcessorFee:  rec.ProcessorFee.String(),
		Name:          rec.Name,
		Time:          rec.Time.UTC().Format(time.RFC3339Nano),
		Refunded:      rec.Refunded,
		BonusAmount:   rec.Bonus.Amount.String(),
		BonusRefunded: rec.Bonus.Refunded,
		Seq:           rec.Seq,
	}
}

func fromPledgeItem(it pledgeItem) entities.PledgeRecord {
	at, _ := time.Parse(time.RFC3339Nano, it.Time)
	return entities.PledgeRecord{
		OrderID:       it.OrderID,
		ReturnAddress: it.ReturnAddress,
		CaptureID:     it.CaptureID,
		Amount:        parseDecimal(it.Amount, decimal.Zero),
		ProcessorFee:  parseDecimal(it.ProcessorFee, decimal.Zero),
		Name:          it.Name,
		Time:          at,
		Refunded:      it.Refunded,
		Bonus: entities.PledgeBonus{
			Amount:   parseDecimal(it.BonusAmount, decimal.Zero),
			Refunded: it.BonusRefunded,
		},
		Seq: it.Seq,
	}
}

type ledgerSchemaItem struct {
	ProjectID string `dynamodbav:"project_id"`
	Version   int    `dynamodbav:"version"`
}

// LedgerSchemaDynamoRepository keeps one version marker per project.
//
// Table requirements:
//   - PK: project_id (string)
type LedgerSchemaDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ILedgerSchemaRepository = (*LedgerSchemaDynamoRepository)(nil)

func NewLedgerSchemaDynamoRepository(ddb DynamoAPI, tableName string) *LedgerSchemaDynamoRepository {
	return &LedgerSchemaDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *LedgerSchemaDynamoRepository) GetVersion(ctx context.Context, projectID string) (int, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("project_id", projectID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return 0, err
	}
	if len(out.Item) == 0 {
		return 0, nil
	}
	var it ledgerSchemaItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return 0, err
	}
	return it.Version, nil
}

func (r *LedgerSchemaDynamoRepository) SetVersion(ctx context.Context, projectID string, version int) error {
	_, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item: map[string]types.AttributeValue{
			"project_id": &types.AttributeValueMemberS{Value: projectID},
			"version":    &types.AttributeValueMemberN{Value: strconv.Itoa(version)},
		},
	})
	return err
}
