package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"rrportal/internal/domain/entities"
	"rrportal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsQuotationIndex   = "quotation_no-index"
)

type paymentItem struct {
	ID                string `dynamodbav:"id"`
	QuotationNo       string `dynamodbav:"quotation_no"`
	GatewayOrderID    string `dynamodbav:"gateway_order_id"`
	GatewayPaymentID  string `dynamodbav:"gateway_payment_id,omitempty"`
	Amount            string `dynamodbav:"amount"`
	Currency          string `dynamodbav:"currency"`
	Receipt           string `dynamodbav:"receipt"`
	ConvertedOrderNo  string `dynamodbav:"converted_order_no,omitempty"`
	Status            string `dynamodbav:"status"`
	Date              string `dynamodbav:"date"`
	GatewayPayloadRaw string `dynamodbav:"gateway_payload_raw,omitempty"`
}

// PaymentDynamoRepository persists gateway payment attempts in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quotation_no-index (PK: quotation_no)

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
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
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) ListByQuotationNo(ctx context.Context, quotationNo string) ([]entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsQuotationIndex),
		KeyConditionExpression: aws.String("quotation_no = :qno"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qno": &types.AttributeValueMemberS{Value: quotationNo},
		},
	})
	if err != nil {
		return nil, err
	}

	payments := make([]entities.Payment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		payments = append(payments, fromPaymentItem(it))
	}
	return payments, nil
}

func (r *PaymentDynamoRepository) MarkCaptured(ctx context.Context, id, gatewayPaymentID, convertedOrderNo string) (entities.Payment, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #gpid = :gpid, #order_no = :order_no"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":   &types.AttributeValueMemberS{Value: string(entities.PaymentStatusCaptured)},
			":gpid":     &types.AttributeValueMemberS{Value: gatewayPaymentID},
			":order_no": &types.AttributeValueMemberS{Value: convertedOrderNo},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":       "id",
			"#status":   "status",
			"#gpid":     "gateway_payment_id",
			"#order_no": "converted_order_no",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Payment{}, nil
		}
		return entities.Payment{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:                p.ID,
		QuotationNo:       p.QuotationNo,
		GatewayOrderID:    p.GatewayOrderID,
		GatewayPaymentID:  p.GatewayPaymentID,
		Amount:            floatToString(p.Amount),
		Currency:          p.Currency,
		Receipt:           p.Receipt,
		ConvertedOrderNo:  p.ConvertedOrderNo,
		Status:            string(p.Status),
		Date:              p.Date.UTC().Format(time.RFC3339Nano),
		GatewayPayloadRaw: p.GatewayPayloadRaw,
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	date, _ := time.Parse(time.RFC3339Nano, it.Date)
	return entities.Payment{
		ID:                it.ID,
		QuotationNo:       it.QuotationNo,
		GatewayOrderID:    it.GatewayOrderID,
		GatewayPaymentID:  it.GatewayPaymentID,
		Amount:            amount,
		Currency:          it.Currency,
		Receipt:           it.Receipt,
		ConvertedOrderNo:  it.ConvertedOrderNo,
		Status:            entities.PaymentStatus(it.Status),
		Date:              date,
		GatewayPayloadRaw: it.GatewayPayloadRaw,
	}
}
