package dynamo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/job-board-api/internal/domain"
)

// CompanyRepo provides typed DynamoDB operations for the companies table.
type CompanyRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewCompanyRepo(client *dynamodb.Client, tableName string) *CompanyRepo {
	return &CompanyRepo{client: client, tableName: tableName}
}

func (r *CompanyRepo) Put(ctx context.Context, c *domain.Company) error {
	item, err := attributevalue.MarshalMap(c)
	if err != nil {
		return fmt.Errorf("marshal company: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *CompanyRepo) Get(ctx context.Context, companyID string) (*domain.Company, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("company_id", companyID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("company not found: %w", domain.ErrNotFound)
	}
	var c domain.Company
	if err := attributevalue.UnmarshalMap(out.Item, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CompanyRepo) GetByEmail(ctx context.Context, email string) (*domain.Company, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String("email-index"),
		KeyConditionExpression:    aws.String("email = :e"),
		ExpressionAttributeValues: map[string]types.AttributeValue{":e": &types.AttributeValueMemberS{Value: email}},
		Limit:                     aws.Int32(1),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Items) == 0 {
		return nil, fmt.Errorf("company not found: %w", domain.ErrNotFound)
	}
	var c domain.Company
	if err := attributevalue.UnmarshalMap(out.Items[0], &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CompanyRepo) Update(ctx context.Context, companyID string, updates map[string]interface{}) error {
	ue, err := buildUpdateExpr(withUpdatedAt(updates, time.Now().UTC()))
	if err != nil {
		return err
	}
	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       strKey("company_id", companyID),
		UpdateExpression:          aws.String(ue.Expr),
		ExpressionAttributeNames:  ue.Names,
		ExpressionAttributeValues: ue.Values,
	})
	return err
}

// SetVerificationCode stores a new OTP for the medium, overwriting any
// outstanding code. Latest issuance always wins.
func (r *CompanyRepo) SetVerificationCode(ctx context.Context, companyID, medium, code string, expiresAt int64) error {
	attr, err := verificationAttr(medium)
	if err != nil {
		return err
	}
	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 strKey("company_id", companyID),
		UpdateExpression:    aws.String("SET #m.#c = :code, #m.#e = :exp"),
		ConditionExpression: aws.String("attribute_exists(company_id)"),
		ExpressionAttributeNames: map[string]string{
			"#m": attr,
			"#c": fieldCode,
			"#e": fieldExpiresAt,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":code": &types.AttributeValueMemberS{Value: code},
			":exp":  &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", expiresAt)},
		},
	})
	if isConditionFailed(err) {
		return fmt.Errorf("company not found: %w", domain.ErrNotFound)
	}
	return err
}

// ClearVerificationCode removes an outstanding OTP only while it still
// matches code. Used to roll back an issuance whose dispatch failed without
// clobbering a newer code issued in the meantime.
func (r *CompanyRepo) ClearVerificationCode(ctx context.Context, companyID, medium, code string) error {
	attr, err := verificationAttr(medium)
	if err != nil {
		return err
	}
	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 strKey("company_id", companyID),
		UpdateExpression:    aws.String("REMOVE #m.#c, #m.#e"),
		ConditionExpression: aws.String("#m.#c = :code"),
		ExpressionAttributeNames: map[string]string{
			"#m": attr,
			"#c": fieldCode,
			"#e": fieldExpiresAt,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":code": &types.AttributeValueMemberS{Value: code},
		},
	})
	if isConditionFailed(err) {
		// A newer code replaced it; nothing to roll back.
		return nil
	}
	return err
}

// ConsumeVerificationCode is a single conditional write: the submitted code
// must match the stored one and must not have reached its expiry. On success
// the medium is marked verified and the code is cleared, making the OTP
// single-use. A failed condition leaves the document untouched; a follow-up
// read distinguishes a missing company from an invalid or expired code.
func (r *CompanyRepo) ConsumeVerificationCode(ctx context.Context, companyID, medium, code string, now time.Time) error {
	attr, err := verificationAttr(medium)
	if err != nil {
		return err
	}
	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 strKey("company_id", companyID),
		UpdateExpression:    aws.String("SET #m.#v = :t REMOVE #m.#c, #m.#e"),
		ConditionExpression: aws.String("#m.#c = :code AND #m.#e > :now"),
		ExpressionAttributeNames: map[string]string{
			"#m": attr,
			"#v": fieldVerified,
			"#c": fieldCode,
			"#e": fieldExpiresAt,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":t":    &types.AttributeValueMemberBOOL{Value: true},
			":code": &types.AttributeValueMemberS{Value: code},
			":now":  &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", now.Unix())},
		},
	})
	if isConditionFailed(err) {
		if _, getErr := r.Get(ctx, companyID); getErr != nil {
			return getErr
		}
		return fmt.Errorf("invalid or expired OTP for %s: %w", medium, domain.ErrBadRequest)
	}
	return err
}

func verificationAttr(medium string) (string, error) {
	switch medium {
	case domain.MediumEmail:
		return fieldEmailVerification, nil
	case domain.MediumPhone:
		return fieldPhoneVerification, nil
	default:
		return "", fmt.Errorf("medium must be either %q or %q: %w", domain.MediumEmail, domain.MediumPhone, domain.ErrBadRequest)
	}
}

func isConditionFailed(err error) bool {
	var ccfe *types.ConditionalCheckFailedException
	return errors.As(err, &ccfe)
}
