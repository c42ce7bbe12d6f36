package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/greikol4321-hub/Restaurante/internal/domain/entities"
	"github.com/greikol4321-hub/Restaurante/internal/usecase/interfaces"
)

const (
	pedidosUserIDIndex = "usuario_id-index"
	pedidosStatusIndex = "estado-index"
)

type pedidoItem struct {
	ID        string         `dynamodbav:"id"`
	UserID    string         `dynamodbav:"usuario_id"`
	Status    string         `dynamodbav:"estado"`
	Items     []lineItemAttr `dynamodbav:"items"`
	PaymentID string         `dynamodbav:"payment_id,omitempty"`
	CreatedAt string         `dynamodbav:"created_at"`
	UpdatedAt string         `dynamodbav:"updated_at"`
}

// PedidoDynamoRepository persists app orders in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: usuario_id-index (PK: usuario_id)
//   - GSI: estado-index (PK: estado)
//
// Line items are stored inline, so deleting the item removes its lines too.

type PedidoDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IPedidoRepository = (*PedidoDynamoRepository)(nil)

func NewPedidoDynamoRepository(ddb dynamoAPI, tableName string) *PedidoDynamoRepository {
	return &PedidoDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PedidoDynamoRepository) Create(ctx context.Context, p entities.Pedido) (entities.Pedido, error) {
	av, err := attributevalue.MarshalMap(toPedidoItem(p))
	if err != nil {
		return entities.Pedido{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Pedido{}, translateConditionErr(err)
	}
	return p, nil
}

func (r *PedidoDynamoRepository) GetByID(ctx context.Context, id string) (entities.Pedido, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Pedido{}, err
	}
	if len(out.Item) == 0 {
		return entities.Pedido{}, nil
	}
	var it pedidoItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Pedido{}, err
	}
	return fromPedidoItem(it)
}

func (r *PedidoDynamoRepository) List(ctx context.Context) ([]entities.Pedido, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	return unmarshalPedidos(raw)
}

func (r *PedidoDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Pedido, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(pedidosUserIDIndex),
		KeyConditionExpression: aws.String("usuario_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": stringValue(userID),
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalPedidos(raw)
}

func (r *PedidoDynamoRepository) ListByStatus(ctx context.Context, statuses ...entities.PedidoStatus) ([]entities.Pedido, error) {
	var raw []map[string]types.AttributeValue
	for _, s := range statuses {
		items, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
			TableName:                aws.String(r.tableName),
			IndexName:                aws.String(pedidosStatusIndex),
			KeyConditionExpression:   aws.String("#estado = :estado"),
			ExpressionAttributeNames: map[string]string{"#estado": "estado"},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":estado": stringValue(string(s)),
			},
		})
		if err != nil {
			return nil, err
		}
		raw = append(raw, items...)
	}
	return unmarshalPedidos(raw)
}

func (r *PedidoDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.PedidoStatus) (entities.Pedido, error) {
	return r.update(ctx, id, from, false, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #estado = :to, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":to":         stringValue(string(to)),
			":updated_at": stringValue(now),
		}
		return expr, vals, map[string]string{"#updated_at": "updated_at"}
	})
}

func (r *PedidoDynamoRepository) ReplaceItems(ctx context.Context, id string, expected entities.PedidoStatus, items []entities.LineItem) (entities.Pedido, error) {
	lines, err := attributevalue.Marshal(toLineItemAttrs(items))
	if err != nil {
		return entities.Pedido{}, err
	}
	return r.update(ctx, id, expected, true, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #items = :items, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":items":      lines,
			":updated_at": stringValue(now),
		}
		return expr, vals, map[string]string{"#items": "items", "#updated_at": "updated_at"}
	})
}

// update applies a conditional UpdateItem guarded by the observed status. unpaid additionally
// requires that no payment is linked.
func (r *PedidoDynamoRepository) update(
	ctx context.Context,
	id string,
	expected entities.PedidoStatus,
	unpaid bool,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Pedido, error) {
	updateExpr, values, names := build(formatTime(time.Now()))
	values[":expected"] = stringValue(string(expected))

	cond := "attribute_exists(#id) AND #estado = :expected"
	condNames := map[string]string{"#id": "id", "#estado": "estado"}
	if unpaid {
		cond += " AND attribute_not_exists(#payment_id)"
		condNames["#payment_id"] = "payment_id"
	}
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       idKey(id),
		ConditionExpression:       aws.String(cond),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, condNames),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Pedido{}, translateConditionErr(err)
	}
	var it pedidoItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Pedido{}, err
	}
	return fromPedidoItem(it)
}

func (r *PedidoDynamoRepository) Delete(ctx context.Context, id string, expected entities.PedidoStatus) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:                aws.String(r.tableName),
		Key:                      idKey(id),
		ConditionExpression:      aws.String("#estado = :expected AND attribute_not_exists(#payment_id)"),
		ExpressionAttributeNames: map[string]string{"#estado": "estado", "#payment_id": "payment_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": stringValue(string(expected)),
		},
	})
	return translateConditionErr(err)
}

func unmarshalPedidos(raw []map[string]types.AttributeValue) ([]entities.Pedido, error) {
	return unmarshalAll(raw, fromPedidoItem, func(p entities.Pedido) time.Time { return p.CreatedAt })
}

func toPedidoItem(p entities.Pedido) pedidoItem {
	return pedidoItem{
		ID:        p.ID,
		UserID:    p.UserID,
		Status:    string(p.Status),
		Items:     toLineItemAttrs(p.Items),
		PaymentID: p.PaymentID,
		CreatedAt: formatTime(p.CreatedAt),
		UpdatedAt: formatTime(p.UpdatedAt),
	}
}

func fromPedidoItem(it pedidoItem) (entities.Pedido, error) {
	items, err := fromLineItemAttrs(it.Items)
	if err != nil {
		return entities.Pedido{}, fmt.Errorf("pedido %s: %w", it.ID, err)
	}
	createdAt, updatedAt, err := parseStamps(it.CreatedAt, it.UpdatedAt)
	if err != nil {
		return entities.Pedido{}, fmt.Errorf("pedido %s: %w", it.ID, err)
	}
	return entities.Pedido{
		ID:        it.ID,
		UserID:    it.UserID,
		Status:    entities.PedidoStatus(it.Status),
		Items:     items,
		PaymentID: it.PaymentID,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}
