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
	defaultOrdersTableName = "orders"
	ordersUserIDIndex      = "user_id-index"
)

type orderItem struct {
	ID              string   `dynamodbav:"id"`
	UserID          string   `dynamodbav:"user_id"`
	SessionID       string   `dynamodbav:"session_id,omitempty"`
	OrderNo         string   `dynamodbav:"order_no"`
	QuotationNo     string   `dynamodbav:"quotation_no"`
	StudyType       string   `dynamodbav:"study_type"`
	Category        string   `dynamodbav:"category,omitempty"`
	Guidelines      []string `dynamodbav:"selected_guidelines,omitempty"`
	Studies         []string `dynamodbav:"selected_studies,omitempty"`
	Amount          string   `dynamodbav:"amount"`
	NumberOfSamples int      `dynamodbav:"number_of_samples"`
	RawStatus       string   `dynamodbav:"status"`
	CreatedOn       string   `dynamodbav:"created_on"`
	ValidTill       string   `dynamodbav:"valid_till,omitempty"`
	UpdatedAt       string   `dynamodbav:"updated_at,omitempty"`
	CustomerName    string   `dynamodbav:"customer_name,omitempty"`
	CustomerEmail   string   `dynamodbav:"customer_email,omitempty"`
	CustomerPhone   string   `dynamodbav:"customer_phone,omitempty"`
	CustomerCompany string   `dynamodbav:"customer_company,omitempty"`
}

// OrderDynamoRepository persists converted orders in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) CreateMany(ctx context.Context, orders []entities.Order) ([]entities.Order, error) {
	for _, o := range orders {
		av, err := attributevalue.MarshalMap(toOrderItem(o))
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
	return orders, nil
}

func (r *OrderDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}

	orders := make([]entities.Order, 0, len(out.Items))
	for _, raw := range out.Items {
		var it orderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		orders = append(orders, fromOrderItem(it))
	}
	return orders, nil
}

func toOrderItem(o entities.Order) orderItem {
	return orderItem{
		ID:              o.ID,
		UserID:          o.UserID,
		SessionID:       o.SessionID,
		OrderNo:         o.OrderNo,
		QuotationNo:     o.QuotationNo,
		StudyType:       o.StudyType,
		Category:        o.Category,
		Guidelines:      o.Guidelines,
		Studies:         o.Studies,
		Amount:          floatToString(o.Amount),
		NumberOfSamples: o.NumberOfSamples,
		RawStatus:       o.RawStatus,
		CreatedOn:       o.CreatedOn,
		ValidTill:       o.ValidTill,
		UpdatedAt:       o.UpdatedAt,
		CustomerName:    o.Customer.Name,
		CustomerEmail:   o.Customer.Email,
		CustomerPhone:   o.Customer.Phone,
		CustomerCompany: o.Customer.Company,
	}
}

func fromOrderItem(it orderItem) entities.Order {
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	return entities.Order{
		ID:              it.ID,
		UserID:          it.UserID,
		SessionID:       it.SessionID,
		OrderNo:         it.OrderNo,
		QuotationNo:     it.QuotationNo,
		StudyType:       it.StudyType,
		Category:        it.Category,
		Guidelines:      it.Guidelines,
		Studies:         it.Studies,
		Amount:          amount,
		NumberOfSamples: it.NumberOfSamples,
		RawStatus:       it.RawStatus,
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
