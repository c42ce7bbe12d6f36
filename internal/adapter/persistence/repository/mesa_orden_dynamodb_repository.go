package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/greikol4321-hub/Restaurante/internal/domain/entities"
	"github.com/greikol4321-hub/Restaurante/internal/usecase/interfaces"
)

const mesasWaiterIDIndex = "mesero_id-index"

type mesaOrdenItem struct {
	ID          string         `dynamodbav:"id"`
	TableNumber int            `dynamodbav:"numero_mesa"`
	WaiterID    string         `dynamodbav:"mesero_id"`
	Status      string         `dynamodbav:"estado"`
	Items       []lineItemAttr `dynamodbav:"items"`
	PaymentID   string         `dynamodbav:"payment_id,omitempty"`
	CreatedAt   string         `dynamodbav:"created_at"`
	UpdatedAt   string         `dynamodbav:"updated_at"`
}

// MesaOrdenDynamoRepository persists table orders in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: mesero_id-index (PK: mesero_id)

type MesaOrdenDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IMesaOrdenRepository = (*MesaOrdenDynamoRepository)(nil)

func NewMesaOrdenDynamoRepository(ddb dynamoAPI, tableName string) *MesaOrdenDynamoRepository {
	return &MesaOrdenDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *MesaOrdenDynamoRepository) Create(ctx context.Context, m entities.MesaOrden) (entities.MesaOrden, error) {
	av, err := attributevalue.MarshalMap(toMesaOrdenItem(m))
	if err != nil {
		return entities.MesaOrden{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.MesaOrden{}, translateConditionErr(err)
	}
	return m, nil
}

func (r *MesaOrdenDynamoRepository) GetByID(ctx context.Context, id string) (entities.MesaOrden, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.MesaOrden{}, err
	}
	if len(out.Item) == 0 {
		return entities.MesaOrden{}, nil
	}
	var it mesaOrdenItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.MesaOrden{}, err
	}
	return fromMesaOrdenItem(it)
}

func (r *MesaOrdenDynamoRepository) List(ctx context.Context) ([]entities.MesaOrden, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	return unmarshalMesasOrdenes(raw)
}

func (r *MesaOrdenDynamoRepository) ListByWaiterID(ctx context.Context, waiterID string) ([]entities.MesaOrden, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(mesasWaiterIDIndex),
		KeyConditionExpression: aws.String("mesero_id = :wid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":wid": stringValue(waiterID),
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalMesasOrdenes(raw)
}

func (r *MesaOrdenDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.MesaOrdenStatus) (entities.MesaOrden, error) {
	return r.update(ctx, id, from, false, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #estado = :to, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":to":         stringValue(string(to)),
			":updated_at": stringValue(now),
		}
		return expr, vals, map[string]string{"#updated_at": "updated_at"}
	})
}

func (r *MesaOrdenDynamoRepository) Update(ctx context.Context, m entities.MesaOrden, expected entities.MesaOrdenStatus) (entities.MesaOrden, error) {
	lines, err := attributevalue.Marshal(toLineItemAttrs(m.Items))
	if err != nil {
		return entities.MesaOrden{}, err
	}
	return r.update(ctx, m.ID, expected, true, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #numero_mesa = :numero_mesa, #items = :items, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":numero_mesa": &types.AttributeValueMemberN{Value: strconv.Itoa(m.TableNumber)},
			":items":       lines,
			":updated_at":  stringValue(now),
		}
		names := map[string]string{
			"#numero_mesa": "numero_mesa",
			"#items":       "items",
			"#updated_at":  "updated_at",
		}
		return expr, vals, names
	})
}

func (r *MesaOrdenDynamoRepository) update(
	ctx context.Context,
	id string,
	expected entities.MesaOrdenStatus,
	unpaid bool,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.MesaOrden, error) {
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
		return entities.MesaOrden{}, translateConditionErr(err)
	}
	var it mesaOrdenItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.MesaOrden{}, err
	}
	return fromMesaOrdenItem(it)
}

func (r *MesaOrdenDynamoRepository) Delete(ctx context.Context, id string, expected entities.MesaOrdenStatus) error {
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

func unmarshalMesasOrdenes(raw []map[string]types.AttributeValue) ([]entities.MesaOrden, error) {
	return unmarshalAll(raw, fromMesaOrdenItem, func(m entities.MesaOrden) time.Time { return m.CreatedAt })
}

func toMesaOrdenItem(m entities.MesaOrden) mesaOrdenItem {
	return mesaOrdenItem{
		ID:          m.ID,
		TableNumber: m.TableNumber,
		WaiterID:    m.WaiterID,
		Status:      string(m.Status),
		Items:       toLineItemAttrs(m.Items),
		PaymentID:   m.PaymentID,
		CreatedAt:   formatTime(m.CreatedAt),
		UpdatedAt:   formatTime(m.UpdatedAt),
	}
}

func fromMesaOrdenItem(it mesaOrdenItem) (entities.MesaOrden, error) {
	items, err := fromLineItemAttrs(it.Items)
	if err != nil {
		return entities.MesaOrden{}, fmt.Errorf("mesa orden %s: %w", it.ID, err)
	}
	createdAt, updatedAt, err := parseStamps(it.CreatedAt, it.UpdatedAt)
	if err != nil {
		return entities.MesaOrden{}, fmt.Errorf("mesa orden %s: %w", it.ID, err)
	}
	return entities.MesaOrden{
		ID:          it.ID,
		TableNumber: it.TableNumber,
		WaiterID:    it.WaiterID,
		Status:      entities.MesaOrdenStatus(it.Status),
		Items:       items,
		PaymentID:   it.PaymentID,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}
