package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultInvoicesTableName = "invoices"

// IDynamoDBAPI is the subset of the DynamoDB client used by the invoice
// repository.
type IDynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

type invoiceLineItem struct {
	Source      string `dynamodbav:"source"`
	Description string `dynamodbav:"description"`
	Quantity    string `dynamodbav:"quantity"`
	UnitPrice   string `dynamodbav:"unit_price"`
	Total       string `dynamodbav:"total"`
}

type invoiceItem struct {
	JobKey         string            `dynamodbav:"job_key"`
	ID             string            `dynamodbav:"id"`
	OrgID          string            `dynamodbav:"org_id"`
	OriginalJobID  string            `dynamodbav:"original_job_id"`
	CompletedJobID string            `dynamodbav:"completed_job_id"`
	CustomerID     string            `dynamodbav:"customer_id"`
	CustomerName   string            `dynamodbav:"customer_name"`
	Status         string            `dynamodbav:"status"`
	Lines          []invoiceLineItem `dynamodbav:"lines"`
	Total          string            `dynamodbav:"total"`
	CreatedBy      string            `dynamodbav:"created_by"`
	CreatedAt      string            `dynamodbav:"created_at"`
}

// InvoiceDynamoRepository persists Invoice entities in DynamoDB.
//
// Table requirements:
//   - PK: job_key (string) = "<org_id>#<original_job_id>"
//
// Keying by the original job makes conversion idempotent: the conditional
// put fails for a second invoice and the stored one is returned instead.

type InvoiceDynamoRepository struct {
	ddb       IDynamoDBAPI
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb IDynamoDBAPI) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
	}
}

func (r *InvoiceDynamoRepository) GetByOriginalJob(ctx context.Context, orgID, originalJobID string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"job_key": &types.AttributeValueMemberS{Value: entities.InvoiceJobKey(orgID, originalJobID)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) CreateIfAbsent(ctx context.Context, inv entities.Invoice) (entities.Invoice, bool, error) {
	av, err := attributevalue.MarshalMap(toInvoiceItem(inv))
	if err != nil {
		return entities.Invoice{}, false, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#job_key)"),
		ExpressionAttributeNames: map[string]string{
			"#job_key": "job_key",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if !errors.As(err, &cfe) {
			return entities.Invoice{}, false, err
		}
		// Lost the race to a concurrent conversion of the same job.
		existing, getErr := r.GetByOriginalJob(ctx, inv.OrgID, inv.OriginalJobID)
		if getErr != nil {
			return entities.Invoice{}, false, getErr
		}
		return existing, false, nil
	}
	return inv, true, nil
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	lines := make([]invoiceLineItem, 0, len(inv.Lines))
	for _, l := range inv.Lines {
		lines = append(lines, invoiceLineItem{
			Source:      string(l.Source),
			Description: l.Description,
			Quantity:    floatToString(l.Quantity),
			UnitPrice:   floatToString(l.UnitPrice),
			Total:       floatToString(l.Total),
		})
	}
	return invoiceItem{
		JobKey:         entities.InvoiceJobKey(inv.OrgID, inv.OriginalJobID),
		ID:             inv.ID,
		OrgID:          inv.OrgID,
		OriginalJobID:  inv.OriginalJobID,
		CompletedJobID: inv.CompletedJobID,
		CustomerID:     inv.CustomerID,
		CustomerName:   inv.CustomerName,
		Status:         string(inv.Status),
		Lines:          lines,
		Total:          floatToString(inv.Total),
		CreatedBy:      inv.CreatedBy,
		CreatedAt:      inv.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	total, _ := strconv.ParseFloat(it.Total, 64)
	lines := make([]entities.InvoiceLine, 0, len(it.Lines))
	for _, l := range it.Lines {
		qty, _ := strconv.ParseFloat(l.Quantity, 64)
		unit, _ := strconv.ParseFloat(l.UnitPrice, 64)
		lineTotal, _ := strconv.ParseFloat(l.Total, 64)
		lines = append(lines, entities.InvoiceLine{
			Source:      entities.InvoiceLineSource(l.Source),
			Description: l.Description,
			Quantity:    qty,
			UnitPrice:   unit,
			Total:       lineTotal,
		})
	}
	return entities.Invoice{
		ID:             it.ID,
		OrgID:          it.OrgID,
		OriginalJobID:  it.OriginalJobID,
		CompletedJobID: it.CompletedJobID,
		CustomerID:     it.CustomerID,
		CustomerName:   it.CustomerName,
		Status:         entities.InvoiceStatus(it.Status),
		Lines:          lines,
		Total:          total,
		CreatedBy:      it.CreatedBy,
		CreatedAt:      createdAt,
	}
}
