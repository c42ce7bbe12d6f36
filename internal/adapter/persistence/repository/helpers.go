package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"

	"github.com/greikol4321-hub/Restaurante/internal/domain/entities"
	"github.com/greikol4321-hub/Restaurante/internal/usecase/interfaces"
)

// dynamoAPI is the subset of *dynamodb.Client used by the repositories.
type dynamoAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, in *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ dynamoAPI = (*dynamodb.Client)(nil)

// lineItemAttr is the stored shape of an order line. Prices are kept as decimal strings.
type lineItemAttr struct {
	ProductID string `dynamodbav:"producto_id"`
	Quantity  int    `dynamodbav:"cantidad"`
	UnitPrice string `dynamodbav:"precio_unitario"`
}

func toLineItemAttrs(items []entities.LineItem) []lineItemAttr {
	out := make([]lineItemAttr, 0, len(items))
	for _, it := range items {
		out = append(out, lineItemAttr{ProductID: it.ProductID, Quantity: it.Quantity, UnitPrice: it.UnitPrice.String()})
	}
	return out
}

func fromLineItemAttrs(attrs []lineItemAttr) ([]entities.LineItem, error) {
	out := make([]entities.LineItem, 0, len(attrs))
	for i, a := range attrs {
		price, err := parseDecimal("precio_unitario", a.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
		out = append(out, entities.LineItem{ProductID: a.ProductID, Quantity: a.Quantity, UnitPrice: price})
	}
	return out, nil
}

func parseDecimal(field, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%s %q: %w", field, s, err)
	}
	return d, nil
}

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

func stringValue(s string) *types.AttributeValueMemberS {
	return &types.AttributeValueMemberS{Value: s}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(field, s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s %q: %w", field, s, err)
	}
	return t, nil
}

// parseStamps reads the created_at/updated_at pair every mutable item carries.
func parseStamps(createdAt, updatedAt string) (time.Time, time.Time, error) {
	c, err := parseTime("created_at", createdAt)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	u, err := parseTime("updated_at", updatedAt)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return c, u, nil
}

// translateConditionErr maps lost conditional writes, single or transactional, to
// interfaces.ErrConditionFailed.
func translateConditionErr(err error) error {
	if err == nil {
		return nil
	}
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return interfaces.ErrConditionFailed
	}
	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) {
		for _, r := range tce.CancellationReasons {
			if r.Code != nil && *r.Code == "ConditionalCheckFailed" {
				return interfaces.ErrConditionFailed
			}
		}
	}
	return err
}

func queryAll(ctx context.Context, ddb dynamoAPI, in *dynamodb.QueryInput) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	for {
		out, err := ddb.Query(ctx, in)
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func scanAll(ctx context.Context, ddb dynamoAPI, in *dynamodb.ScanInput) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	for {
		out, err := ddb.Scan(ctx, in)
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

// unmarshalAll decodes raw items into T and maps them with conv, oldest first.
func unmarshalAll[T any, E any](raw []map[string]types.AttributeValue, conv func(T) (E, error), createdAt func(E) time.Time) ([]E, error) {
	out := make([]E, 0, len(raw))
	for _, r := range raw {
		var it T
		if err := attributevalue.UnmarshalMap(r, &it); err != nil {
			return nil, err
		}
		e, err := conv(it)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool { return createdAt(out[i]).Before(createdAt(out[j])) })
	return out, nil
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
