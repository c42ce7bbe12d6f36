package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/greikol4321-hub/Restaurante/internal/domain/entities"
	"github.com/greikol4321-hub/Restaurante/internal/usecase/interfaces"
)

const activeCartPrefix = "ACTIVE#"

type cartItemAttr struct {
	ID        string `dynamodbav:"id"`
	ProductID string `dynamodbav:"producto_id"`
	Quantity  int    `dynamodbav:"cantidad"`
}

type cartItem struct {
	ID        string         `dynamodbav:"id"`
	UserID    string         `dynamodbav:"usuario_id"`
	Items     []cartItemAttr `dynamodbav:"items"`
	Active    bool           `dynamodbav:"activo"`
	CreatedAt string         `dynamodbav:"created_at"`
	UpdatedAt string         `dynamodbav:"updated_at"`
}

// activeCartMarker pins the single active cart of a user.
type activeCartMarker struct {
	ID     string `dynamodbav:"id"`
	CartID string `dynamodbav:"cart_id"`
	UserID string `dynamodbav:"usuario_id"`
}

// CartDynamoRepository persists carts in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Besides carts the table holds one marker item per user with an active cart, keyed
// "ACTIVE#<usuario_id>". Creating the marker with attribute_not_exists is the one-active-cart
// constraint; conversion deletes it in the same transaction that closes the cart. A marker left
// pointing at a closed or missing cart is taken over by the next Create.
type CartDynamoRepository struct {
	ddb          dynamoAPI
	tableName    string
	pedidosTable string
}

var _ interfaces.ICartRepository = (*CartDynamoRepository)(nil)

func NewCartDynamoRepository(ddb dynamoAPI, tableName, pedidosTable string) *CartDynamoRepository {
	return &CartDynamoRepository{ddb: ddb, tableName: tableName, pedidosTable: pedidosTable}
}

func activeCartKey(userID string) string {
	return activeCartPrefix + userID
}

func (r *CartDynamoRepository) Create(ctx context.Context, c entities.Cart) (entities.Cart, error) {
	err := r.put(ctx, c, "")
	if errors.Is(err, interfaces.ErrConditionFailed) {
		stale, serr := r.staleMarker(ctx, c.UserID)
		if serr != nil {
			return entities.Cart{}, serr
		}
		if stale != "" {
			err = r.put(ctx, c, stale)
		}
	}
	if err != nil {
		return entities.Cart{}, err
	}
	return c, nil
}

func (r *CartDynamoRepository) put(ctx context.Context, c entities.Cart, staleCartID string) error {
	in, err := r.createTx(c, staleCartID)
	if err != nil {
		return err
	}
	_, err = r.ddb.TransactWriteItems(ctx, in)
	return translateConditionErr(err)
}

// staleMarker returns the cart id held by the user's marker when that cart is closed or gone,
// and "" when there is no marker or it still guards an active cart.
func (r *CartDynamoRepository) staleMarker(ctx context.Context, userID string) (string, error) {
	marker, err := r.marker(ctx, userID)
	if err != nil || marker.CartID == "" {
		return "", err
	}
	c, err := r.GetByID(ctx, marker.CartID)
	if err != nil {
		return "", err
	}
	if c.Active {
		return "", nil
	}
	return marker.CartID, nil
}

// createTx inserts the cart and claims the marker. With staleCartID set the marker is only
// overwritten while it still points at that cart.
func (r *CartDynamoRepository) createTx(c entities.Cart, staleCartID string) (*dynamodb.TransactWriteItemsInput, error) {
	marker, err := attributevalue.MarshalMap(activeCartMarker{ID: activeCartKey(c.UserID), CartID: c.ID, UserID: c.UserID})
	if err != nil {
		return nil, err
	}
	cart, err := attributevalue.MarshalMap(toCartItem(c))
	if err != nil {
		return nil, err
	}
	claim := &types.Put{
		TableName:                aws.String(r.tableName),
		Item:                     marker,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	}
	if staleCartID != "" {
		claim.ConditionExpression = aws.String("#cart_id = :stale")
		claim.ExpressionAttributeNames = map[string]string{"#cart_id": "cart_id"}
		claim.ExpressionAttributeValues = map[string]types.AttributeValue{":stale": stringValue(staleCartID)}
	}
	return &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: claim},
			{
				Put: &types.Put{
					TableName:                aws.String(r.tableName),
					Item:                     cart,
					ConditionExpression:      aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{"#id": "id"},
				},
			},
		},
	}, nil
}

func (r *CartDynamoRepository) GetByID(ctx context.Context, id string) (entities.Cart, error) {
	if strings.HasPrefix(id, activeCartPrefix) {
		return entities.Cart{}, nil
	}
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Cart{}, err
	}
	if len(out.Item) == 0 {
		return entities.Cart{}, nil
	}
	var it cartItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Cart{}, err
	}
	return fromCartItem(it)
}

func (r *CartDynamoRepository) GetActiveByUserID(ctx context.Context, userID string) (entities.Cart, error) {
	marker, err := r.marker(ctx, userID)
	if err != nil || marker.CartID == "" {
		return entities.Cart{}, err
	}
	c, err := r.GetByID(ctx, marker.CartID)
	if err != nil {
		return entities.Cart{}, err
	}
	if !c.Active {
		return entities.Cart{}, nil
	}
	return c, nil
}

func (r *CartDynamoRepository) marker(ctx context.Context, userID string) (activeCartMarker, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(activeCartKey(userID)),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil || len(out.Item) == 0 {
		return activeCartMarker{}, err
	}
	var m activeCartMarker
	if err := attributevalue.UnmarshalMap(out.Item, &m); err != nil {
		return activeCartMarker{}, err
	}
	return m, nil
}

func (r *CartDynamoRepository) SaveItems(ctx context.Context, c entities.Cart) (entities.Cart, error) {
	items, err := attributevalue.Marshal(toCartItemAttrs(c.Items))
	if err != nil {
		return entities.Cart{}, err
	}
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(c.ID),
		ConditionExpression: aws.String("#activo = :true"),
		UpdateExpression:    aws.String("SET #items = :items, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#activo":     "activo",
			"#items":      "items",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true":       &types.AttributeValueMemberBOOL{Value: true},
			":items":      items,
			":updated_at": stringValue(formatTime(c.UpdatedAt)),
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Cart{}, translateConditionErr(err)
	}
	var it cartItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Cart{}, err
	}
	return fromCartItem(it)
}

func (r *CartDynamoRepository) ConvertToPedido(ctx context.Context, c entities.Cart, p entities.Pedido) (entities.Pedido, error) {
	in, err := r.convertTx(c, p)
	if err != nil {
		return entities.Pedido{}, err
	}
	if _, err := r.ddb.TransactWriteItems(ctx, in); err != nil {
		return entities.Pedido{}, translateConditionErr(err)
	}
	return p, nil
}

// convertTx closes the cart, releases the user's active-cart marker and inserts the pedido.
func (r *CartDynamoRepository) convertTx(c entities.Cart, p entities.Pedido) (*dynamodb.TransactWriteItemsInput, error) {
	pedido, err := attributevalue.MarshalMap(toPedidoItem(p))
	if err != nil {
		return nil, err
	}
	return &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName:           aws.String(r.tableName),
					Key:                 idKey(c.ID),
					ConditionExpression: aws.String("#activo = :true"),
					UpdateExpression:    aws.String("SET #activo = :false, #updated_at = :updated_at"),
					ExpressionAttributeNames: map[string]string{
						"#activo":     "activo",
						"#updated_at": "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":true":       &types.AttributeValueMemberBOOL{Value: true},
						":false":      &types.AttributeValueMemberBOOL{Value: false},
						":updated_at": stringValue(formatTime(c.UpdatedAt)),
					},
				},
			},
			{
				Delete: &types.Delete{
					TableName:                 aws.String(r.tableName),
					Key:                       idKey(activeCartKey(c.UserID)),
					ConditionExpression:       aws.String("#cart_id = :cart_id"),
					ExpressionAttributeNames:  map[string]string{"#cart_id": "cart_id"},
					ExpressionAttributeValues: map[string]types.AttributeValue{":cart_id": stringValue(c.ID)},
				},
			},
			{
				Put: &types.Put{
					TableName:                aws.String(r.pedidosTable),
					Item:                     pedido,
					ConditionExpression:      aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{"#id": "id"},
				},
			},
		},
	}, nil
}

func toCartItemAttrs(items []entities.CartItem) []cartItemAttr {
	out := make([]cartItemAttr, 0, len(items))
	for _, it := range items {
		out = append(out, cartItemAttr{ID: it.ID, ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return out
}

func toCartItem(c entities.Cart) cartItem {
	return cartItem{
		ID:        c.ID,
		UserID:    c.UserID,
		Items:     toCartItemAttrs(c.Items),
		Active:    c.Active,
		CreatedAt: formatTime(c.CreatedAt),
		UpdatedAt: formatTime(c.UpdatedAt),
	}
}

func fromCartItem(it cartItem) (entities.Cart, error) {
	items := make([]entities.CartItem, 0, len(it.Items))
	for _, a := range it.Items {
		items = append(items, entities.CartItem{ID: a.ID, ProductID: a.ProductID, Quantity: a.Quantity})
	}
	createdAt, updatedAt, err := parseStamps(it.CreatedAt, it.UpdatedAt)
	if err != nil {
		return entities.Cart{}, fmt.Errorf("carrito %s: %w", it.ID, err)
	}
	return entities.Cart{
		ID:        it.ID,
		UserID:    it.UserID,
		Items:     items,
		Active:    it.Active,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}
