package repository

import (
	"context"
	"time"

	"meraki_estimator/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"
)

const defaultKVTableName = "estimator_kv"

type kvItem struct {
	Key       string `dynamodbav:"key"`
	Value     string `dynamodbav:"value"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// DynamoDBAPI is the slice of the DynamoDB client the KV store calls.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// DynamoKVRepository persists keys in a DynamoDB table.
//
// Table requirements:
//   - PK: key (string)
type DynamoKVRepository struct {
	ddb       DynamoDBAPI
	tableName string
	now       func() time.Time
}

var (
	_ interfaces.IKeyValueStore = (*DynamoKVRepository)(nil)
	_ DynamoDBAPI               = (*dynamodb.Client)(nil)
)

func NewDynamoKVRepository(ddb DynamoDBAPI, tableName string) *DynamoKVRepository {
	if tableName == "" {
		tableName = defaultKVTableName
	}
	return &DynamoKVRepository{ddb: ddb, tableName: tableName, now: time.Now}
}

func (r *DynamoKVRepository) Get(ctx context.Context, key string) (string, bool, error) {
	if !validKey(key) {
		return "", false, ErrEmptyKey
	}
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            r.key(key),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return "", false, errors.Wrapf(err, "get %q", key)
	}
	if len(out.Item) == 0 {
		return "", false, nil
	}

	var it kvItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return "", false, errors.Wrapf(err, "decode %q", key)
	}
	return it.Value, true, nil
}

// Set upserts the value; last writer wins.
func (r *DynamoKVRepository) Set(ctx context.Context, key, value string) error {
	if !validKey(key) {
		return ErrEmptyKey
	}
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(r.tableName),
		Key:              r.key(key),
		UpdateExpression: aws.String("SET #value = :value, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":value":      &types.AttributeValueMemberS{Value: value},
			":updated_at": &types.AttributeValueMemberS{Value: stamp(r.now())},
		},
		ExpressionAttributeNames: map[string]string{
			"#value":      "value",
			"#updated_at": "updated_at",
		},
	})
	return errors.Wrapf(err, "set %q", key)
}

func (r *DynamoKVRepository) Delete(ctx context.Context, key string) error {
	if !validKey(key) {
		return ErrEmptyKey
	}
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       r.key(key),
	})
	return errors.Wrapf(err, "delete %q", key)
}

func (r *DynamoKVRepository) key(key string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"key": &types.AttributeValueMemberS{Value: key},
	}
}
