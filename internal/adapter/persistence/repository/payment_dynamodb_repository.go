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
	paymentsPedidoIDIndex    = "pedido_id-index"
	paymentsMesaOrdenIDIndex = "mesa_orden_id-index"
)

type paymentItem struct {
	ID          string `dynamodbav:"id"`
	PedidoID    string `dynamodbav:"pedido_id,omitempty"`
	MesaOrdenID string `dynamodbav:"mesa_orden_id,omitempty"`
	Amount      string `dynamodbav:"monto"`
	Method      string `dynamodbav:"metodo_pago"`
	PaidAt      string `dynamodbav:"fecha_pago"`
}

// PaymentDynamoRepository is the payment ledger in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: pedido_id-index (PK: pedido_id)
//   - GSI: mesa_orden_id-index (PK: mesa_orden_id)
//
// The payment_id attribute on the order item is the uniqueness guard: it is written in the same
// transaction as the payment and the write is conditional on its absence.

type PaymentDynamoRepository struct {
	ddb          dynamoAPI
	tableName    string
	pedidosTable string
	mesasTable   string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb dynamoAPI, tableName, pedidosTable, mesasTable string) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:          ddb,
		tableName:    tableName,
		pedidosTable: pedidosTable,
		mesasTable:   mesasTable,
	}
}

func (r *PaymentDynamoRepository) orderTable(kind entities.OrderKind) (string, error) {
	switch kind {
	case entities.OrderKindPedido:
		return r.pedidosTable, nil
	case entities.OrderKindMesaOrden:
		return r.mesasTable, nil
	}
	return "", fmt.Errorf("unknown order kind %q", kind)
}

func (r *PaymentDynamoRepository) Record(ctx context.Context, p entities.Payment, charge interfaces.StatusChange) (entities.Payment, error) {
	in, err := r.recordTx(p, charge, formatTime(time.Now()))
	if err != nil {
		return entities.Payment{}, err
	}
	if _, err := r.ddb.TransactWriteItems(ctx, in); err != nil {
		return entities.Payment{}, translateConditionErr(err)
	}
	return p, nil
}

// recordTx inserts the payment and charges its order in one transaction.
func (r *PaymentDynamoRepository) recordTx(p entities.Payment, charge interfaces.StatusChange, now string) (*dynamodb.TransactWriteItemsInput, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	orderTable, err := r.orderTable(p.Kind())
	if err != nil {
		return nil, err
	}
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return nil, err
	}
	return &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:                aws.String(r.tableName),
					Item:                     av,
					ConditionExpression:      aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{"#id": "id"},
				},
			},
			{
				Update: &types.Update{
					TableName:           aws.String(orderTable),
					Key:                 idKey(p.OrderID()),
					ConditionExpression: aws.String("attribute_exists(#id) AND #estado = :from AND attribute_not_exists(#payment_id)"),
					UpdateExpression:    aws.String("SET #estado = :to, #payment_id = :payment_id, #updated_at = :updated_at"),
					ExpressionAttributeNames: map[string]string{
						"#id":         "id",
						"#estado":     "estado",
						"#payment_id": "payment_id",
						"#updated_at": "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":from":       stringValue(charge.From),
						":to":         stringValue(charge.To),
						":payment_id": stringValue(p.ID),
						":updated_at": stringValue(now),
					},
				},
			},
		},
	}, nil
}

func (r *PaymentDynamoRepository) Delete(ctx context.Context, p entities.Payment, revert interfaces.StatusChange) error {
	in, err := r.deleteTx(p, revert, formatTime(time.Now()))
	if err != nil {
		return err
	}
	_, err = r.ddb.TransactWriteItems(ctx, in)
	return translateConditionErr(err)
}

// deleteTx removes the payment and, unless revert is zero, unlinks and reverts its order.
func (r *PaymentDynamoRepository) deleteTx(p entities.Payment, revert interfaces.StatusChange, now string) (*dynamodb.TransactWriteItemsInput, error) {
	items := []types.TransactWriteItem{
		{
			Delete: &types.Delete{
				TableName:                aws.String(r.tableName),
				Key:                      idKey(p.ID),
				ConditionExpression:      aws.String("attribute_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			},
		},
	}
	if revert != (interfaces.StatusChange{}) {
		orderTable, err := r.orderTable(p.Kind())
		if err != nil {
			return nil, err
		}
		items = append(items, types.TransactWriteItem{
			Update: &types.Update{
				TableName:           aws.String(orderTable),
				Key:                 idKey(p.OrderID()),
				ConditionExpression: aws.String("#estado = :from AND #payment_id = :payment_id"),
				UpdateExpression:    aws.String("SET #estado = :to, #updated_at = :updated_at REMOVE #payment_id"),
				ExpressionAttributeNames: map[string]string{
					"#estado":     "estado",
					"#payment_id": "payment_id",
					"#updated_at": "updated_at",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":from":       stringValue(revert.From),
					":to":         stringValue(revert.To),
					":payment_id": stringValue(p.ID),
					":updated_at": stringValue(now),
				},
			},
		})
	}
	return &dynamodb.TransactWriteItemsInput{TransactItems: items}, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}
	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it)
}

func (r *PaymentDynamoRepository) List(ctx context.Context) ([]entities.Payment, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	return unmarshalPayments(raw)
}

func (r *PaymentDynamoRepository) ListByPedidoID(ctx context.Context, pedidoID string) ([]entities.Payment, error) {
	return r.listByIndex(ctx, paymentsPedidoIDIndex, "pedido_id", pedidoID)
}

func (r *PaymentDynamoRepository) ListByMesaOrdenID(ctx context.Context, mesaOrdenID string) ([]entities.Payment, error) {
	return r.listByIndex(ctx, paymentsMesaOrdenIDIndex, "mesa_orden_id", mesaOrdenID)
}

func (r *PaymentDynamoRepository) listByIndex(ctx context.Context, index, attr, value string) ([]entities.Payment, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(attr + " = :v"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": stringValue(value),
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalPayments(raw)
}

func (r *PaymentDynamoRepository) ExistsForOrder(ctx context.Context, kind entities.OrderKind, orderID string) (bool, error) {
	index, attr := paymentsPedidoIDIndex, "pedido_id"
	if kind == entities.OrderKindMesaOrden {
		index, attr = paymentsMesaOrdenIDIndex, "mesa_orden_id"
	}
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(attr + " = :v"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": stringValue(orderID),
		},
		Select: types.SelectCount,
		Limit:  aws.Int32(1),
	})
	if err != nil {
		return false, err
	}
	return out.Count > 0, nil
}

func unmarshalPayments(raw []map[string]types.AttributeValue) ([]entities.Payment, error) {
	return unmarshalAll(raw, fromPaymentItem, func(p entities.Payment) time.Time { return p.PaidAt })
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:          p.ID,
		PedidoID:    p.PedidoID,
		MesaOrdenID: p.MesaOrdenID,
		Amount:      p.Amount.String(),
		Method:      string(p.Method),
		PaidAt:      formatTime(p.PaidAt),
	}
}

func fromPaymentItem(it paymentItem) (entities.Payment, error) {
	amount, err := parseDecimal("monto", it.Amount)
	if err != nil {
		return entities.Payment{}, fmt.Errorf("pago %s: %w", it.ID, err)
	}
	paidAt, err := parseTime("fecha_pago", it.PaidAt)
	if err != nil {
		return entities.Payment{}, fmt.Errorf("pago %s: %w", it.ID, err)
	}
	return entities.Payment{
		ID:          it.ID,
		PedidoID:    it.PedidoID,
		MesaOrdenID: it.MesaOrdenID,
		Amount:      amount,
		Method:      entities.PaymentMethod(it.Method),
		PaidAt:      paidAt,
	}, nil
}
