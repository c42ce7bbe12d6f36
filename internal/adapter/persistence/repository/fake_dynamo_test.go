package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo records every request and answers with the configured hooks.
type fakeDynamo struct {
	getItem  func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error)
	update   func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error)
	query    func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error)
	scan     func(in *dynamodb.ScanInput) (*dynamodb.ScanOutput, error)
	transact func(in *dynamodb.TransactWriteItemsInput) error
	txErr    error
	writeErr error

	gets    []*dynamodb.GetItemInput
	puts    []*dynamodb.PutItemInput
	updates []*dynamodb.UpdateItemInput
	deletes []*dynamodb.DeleteItemInput
	queries []*dynamodb.QueryInput
	txs     []*dynamodb.TransactWriteItemsInput
}

var _ dynamoAPI = (*fakeDynamo)(nil)

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.gets = append(f.gets, in)
	if f.getItem == nil {
		return &dynamodb.GetItemOutput{}, nil
	}
	return f.getItem(in)
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.puts = append(f.puts, in)
	return &dynamodb.PutItemOutput{}, f.writeErr
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.updates = append(f.updates, in)
	if f.update == nil {
		return &dynamodb.UpdateItemOutput{}, f.writeErr
	}
	return f.update(in)
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.deletes = append(f.deletes, in)
	return &dynamodb.DeleteItemOutput{}, f.writeErr
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	cp := *in
	f.queries = append(f.queries, &cp)
	if f.query == nil {
		return &dynamodb.QueryOutput{}, nil
	}
	return f.query(in)
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	if f.scan == nil {
		return &dynamodb.ScanOutput{}, nil
	}
	return f.scan(in)
}

func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.txs = append(f.txs, in)
	if f.transact != nil {
		return &dynamodb.TransactWriteItemsOutput{}, f.transact(in)
	}
	return &dynamodb.TransactWriteItemsOutput{}, f.txErr
}

var placeholderRe = regexp.MustCompile(`#[a-z_]+`)

// assertNamesUsed fails when an expression attribute name is declared but not referenced, or
// referenced but not declared. DynamoDB rejects both.
func assertNamesUsed(t *testing.T, names map[string]string, exprs ...string) {
	t.Helper()
	used := map[string]bool{}
	for _, e := range exprs {
		for _, m := range placeholderRe.FindAllString(e, -1) {
			used[m] = true
		}
	}
	for n := range names {
		if !used[n] {
			t.Fatalf("attribute name %s declared but unused in %v", n, exprs)
		}
	}
	for n := range used {
		if _, ok := names[n]; !ok {
			t.Fatalf("attribute name %s used but not declared", n)
		}
	}
}

func stringAttr(t *testing.T, av types.AttributeValue) string {
	t.Helper()
	s, ok := av.(*types.AttributeValueMemberS)
	if !ok {
		t.Fatalf("expected string attribute, got %T", av)
	}
	return s.Value
}
