package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/shopspring/decimal"

	"github.com/greikol4321-hub/Restaurante/internal/domain/entities"
	"github.com/greikol4321-hub/Restaurante/internal/usecase/interfaces"
)

type productItem struct {
	ID    string `dynamodbav:"id"`
	Name  string `dynamodbav:"nombre"`
	Price string `dynamodbav:"precio"`
}

type userItem struct {
	ID   string `dynamodbav:"id"`
	Name string `dynamodbav:"nombre"`
	Role string `dynamodbav:"rol"`
}

// ProductDynamoRepository reads the product catalog. The table is owned by the catalog service.
type ProductDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IProductCatalog = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb dynamoAPI, tableName string) *ProductDynamoRepository {
	return &ProductDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ProductDynamoRepository) GetByID(ctx context.Context, id string) (entities.Product, error) {
	var it productItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Product{}, err
	}
	price, err := decimal.NewFromString(it.Price)
	if err != nil {
		return entities.Product{}, err
	}
	return entities.Product{ID: it.ID, Name: it.Name, Price: price}, nil
}

// UserDynamoRepository reads the user directory.
type UserDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IUserDirectory = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb dynamoAPI, tableName string) *UserDynamoRepository {
	return &UserDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *UserDynamoRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	var it userItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.User{}, err
	}
	return entities.User{ID: it.ID, Name: it.Name, Role: entities.UserRole(it.Role)}, nil
}

func getByID(ctx context.Context, ddb dynamoAPI, table, id string, out any) (bool, error) {
	res, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key:       idKey(id),
	})
	if err != nil {
		return false, err
	}
	if len(res.Item) == 0 {
		return false, nil
	}
	return true, attributevalue.UnmarshalMap(res.Item, out)
}
