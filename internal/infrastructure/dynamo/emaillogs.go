package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/job-board-api/internal/domain"
)

// EmailLogRepo appends to the email_logs table. Log records are write-once;
// there is deliberately no update or delete here.
type EmailLogRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewEmailLogRepo(client *dynamodb.Client, tableName string) *EmailLogRepo {
	return &EmailLogRepo{client: client, tableName: tableName}
}

func (r *EmailLogRepo) Put(ctx context.Context, l *domain.EmailLog) error {
	item, err := attributevalue.MarshalMap(l)
	if err != nil {
		return fmt.Errorf("marshal email log: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(log_id)"),
	})
	return err
}

// ListByJob queries the job_id GSI for all emails logged against a job.
func (r *EmailLogRepo) ListByJob(ctx context.Context, jobID string) ([]domain.EmailLog, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("job_id-index"),
		KeyConditionExpression: aws.String("job_id = :jid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":jid": &types.AttributeValueMemberS{Value: jobID},
		},
	})
	if err != nil {
		return nil, err
	}
	var logs []domain.EmailLog
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}
