package repository

import (
	"context"
	"strconv"

	"dominant_assurance/internal/domain/entities"
	"dominant_assurance/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type aclItem struct {
	Resource string              `dynamodbav:"resource"`
	Grants   map[string][]string `dynamodbav:"grants"`
	Version  int64               `dynamodbav:"version"`
}

// AclDynamoRepository stores one grant map per resource.
//
// Table requirements:
//   - PK: resource (string)
//
// Writes are conditional on the version read by the caller.
type AclDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IAclRepository = (*AclDynamoRepository)(nil)

func NewAclDynamoRepository(ddb DynamoAPI, tableName string) *AclDynamoRepository {
	return &AclDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *AclDynamoRepository) Get(ctx context.Context, resource string) (entities.Acl, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("resource", resource),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Acl{}, err
	}
	if len(out.Item) == 0 {
		return entities.Acl{Resource: resource, Grants: map[string][]entities.Permission{}}, nil
	}
	var it aclItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Acl{}, err
	}
	return fromAclItem(it), nil
}

func (r *AclDynamoRepository) CompareAndSwap(ctx context.Context, acl entities.Acl, expected int64) (entities.Acl, error) {
	acl.Version = expected + 1
	av, err := attributevalue.MarshalMap(toAclItem(acl))
	if err != nil {
		return entities.Acl{}, err
	}

	in := &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}
	if expected == 0 {
		in.ConditionExpression = aws.String("attribute_not_exists(#resource)")
		in.ExpressionAttributeNames = map[string]string{"#resource": "resource"}
	} else {
		in.ConditionExpression = aws.String("#version = :version")
		in.ExpressionAttributeNames = map[string]string{"#version": "version"}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":version": &types.AttributeValueMemberN{Value: strconv.FormatInt(expected, 10)},
		}
	}

	if _, err := r.ddb.PutItem(ctx, in); err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Acl{}, interfaces.ErrAclVersionConflict
		}
		return entities.Acl{}, err
	}
	return acl, nil
}

func toAclItem(acl entities.Acl) aclItem {
	grants := make(map[string][]string, len(acl.Grants))
	for user, perms := range acl.Grants {
		list := make([]string, 0, len(perms))
		for _, p := range perms {
			list = append(list, string(p))
		}
		grants[user] = list
	}
	return aclItem{Resource: acl.Resource, Grants: grants, Version: acl.Version}
}

func fromAclItem(it aclItem) entities.Acl {
	grants := make(map[string][]entities.Permission, len(it.Grants))
	for user, perms := range it.Grants {
		list := make([]entities.Permission, 0, len(perms))
		for _, p := range perms {
			list = append(list, entities.Permission(p))
		}
		grants[user] = list
	}
	return entities.Acl{Resource: it.Resource, Grants: grants, Version: it.Version}
}
