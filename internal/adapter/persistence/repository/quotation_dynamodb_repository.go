package repository

import (
	"context"
	"strconv"

	"rrportal/internal/domain/entities"
	"rrportal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotationsTableName = "quotations"
	quotationsUserIDIndex      = "user_id-index"
	quotationsNumberIndex      = "quotation_no-index"
)

type quotationItem struct {
	ID              string   `dynamodbav:"id"`
	UserID          string   `dynamodbav:"user_id"`
	SessionID       string   `dynamodbav:"session_id,omitempty"`
	QuotationNo     string   `dynamodbav:"quotation_no"`
	StudyType       string   `dynamodbav:"study_type"`
	Category        string   `dynamodbav:"category,omitempty"`
	Guidelines      []string `dynamodbav:"selected_guidelines,omitempty"`
	Studies         []string `dynamodbav:"selected_studies,omitempty"`
	Amount          string   `dynamodbav:"amount"`
	NumberOfSamples int      `dynamodbav:"number_of_samples"`
	Status          string   `dynamodbav:"status"`
	CreatedOn       string   `dynamodbav:"created_on"`
	ValidTill       string   `dynamodbav:"valid_till,omitempty"`
	UpdatedAt       string   `dynamodbav:"updated_at,omitempty"`
	CustomerName    string   `dynamodbav:"customer_name,omitempty"`
	CustomerEmail   string   `dynamodbav:"customer_email,omitempty"`
	CustomerPhone   string   `dynamodbav:"customer_phone,omitempty"`
	CustomerCompany string   `dynamodbav:"customer_company,omitempty"`
}

// QuotationDynamoRepository persists quotation line items in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
//   - GSI: quotation_no-index (PK: quotation_no)

type QuotationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuotationRepository = (*QuotationDynamoRepository)(nil)

func NewQuotationDynamoRepository(ddb *dynamodb.Client) *QuotationDynamoRepository {
	return &QuotationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTATIONS_TABLE", defaultQuotationsTableName),
	}
}

func (r *QuotationDynamoRepository) CreateMany(ctx context.Context, items []entities.Quotation) ([]entities.Quotation, error) {
	for _, q := range items {
		av, err := attributevalue.MarshalMap(toQuotationItem(q))
		if err != nil {
			return nil, err
		}
		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		})
		if err != nil {
			return nil, err
		}
	}
	return items, nil
}

func (r *QuotationDynamoRepository) ListByUserID(ctx context.Context, userID string, status entities.QuotationStatus) ([]entities.Quotation, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotationsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	}
	if status != "" {
		in.FilterExpression = aws.String("#status = :status")
		in.ExpressionAttributeNames = map[string]string{"#status": "status"}
		in.ExpressionAttributeValues[":status"] = &types.AttributeValueMemberS{Value: string(status)}
	}

	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, err
	}
	return unmarshalQuotations(out.Items)
}

func (r *QuotationDynamoRepository) ListByQuotationNo(ctx context.Context, quotationNo string) ([]entities.Quotation, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotationsNumberIndex),
		KeyConditionExpression: aws.String("quotation_no = :qno"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qno": &types.AttributeValueMemberS{Value: quotationNo},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalQuotations(out.Items)
}

func (r *QuotationDynamoRepository) DeleteByQuotationNo(ctx context.Context, quotationNo string) (int, error) {
	items, err := r.ListByQuotationNo(ctx, quotationNo)
	if err != nil {
		return 0, err
	}

	deleted := 0
	for _, q := range items {
		_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: q.ID},
			},
		})
		if err != nil {
			return deleted, err
		}
		deleted++
	}
	return deleted, nil
}

func unmarshalQuotations(raw []map[string]types.AttributeValue) ([]entities.Quotation, error) {
	items := make([]entities.Quotation, 0, len(raw))
	for _, m := range raw {
		var it quotationItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromQuotationItem(it))
	}
	return items, nil
}

func toQuotationItem(q entities.Quotation) quotationItem {
	return quotationItem{
		ID:              q.ID,
		UserID:          q.UserID,
		SessionID:       q.SessionID,
		QuotationNo:     q.QuotationNo,
		StudyType:       q.StudyType,
		Category:        q.Category,
		Guidelines:      q.Guidelines,
		Studies:         q.Studies,
		Amount:          floatToString(q.Amount),
		NumberOfSamples: q.NumberOfSamples,
		Status:          string(q.Status),
		CreatedOn:       q.CreatedOn,
		ValidTill:       q.ValidTill,
		UpdatedAt:       q.UpdatedAt,
		CustomerName:    q.Customer.Name,
		CustomerEmail:   q.Customer.Email,
		CustomerPhone:   q.Customer.Phone,
		CustomerCompany: q.Customer.Company,
	}
}

func fromQuotationItem(it quotationItem) entities.Quotation {
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	return entities.Quotation{
		ID:              it.ID,
		UserID:          it.UserID,
		SessionID:       it.SessionID,
		QuotationNo:     it.QuotationNo,
		StudyType:       it.StudyType,
		Category:        it.Category,
		Guidelines:      it.Guidelines,
		Studies:         it.Studies,
		Amount:          amount,
		NumberOfSamples: it.NumberOfSamples,
		Status:          entities.QuotationStatus(it.Status),
		CreatedOn:       it.CreatedOn,
		ValidTill:       it.ValidTill,
		UpdatedAt:       it.UpdatedAt,
		Customer: entities.CustomerSnapshot{
			Name:    it.CustomerName,
			Email:   it.CustomerEmail,
			Phone:   it.CustomerPhone,
			Company: it.CustomerCompany,
		},
	}
}
