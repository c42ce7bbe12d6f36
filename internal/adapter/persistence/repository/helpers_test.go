package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/greikol4321-hub/Restaurante/internal/usecase/interfaces"
)

func TestTranslateConditionErr(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		if err := translateConditionErr(nil); err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
	})

	t.Run("conditional check failed", func(t *testing.T) {
		err := translateConditionErr(&types.ConditionalCheckFailedException{Message: aws.String("nope")})
		if !errors.Is(err, interfaces.ErrConditionFailed) {
			t.Fatalf("expected ErrConditionFailed, got %v", err)
		}
	})

	t.Run("transaction cancelled by a condition", func(t *testing.T) {
		err := translateConditionErr(&types.TransactionCanceledException{
			CancellationReasons: []types.CancellationReason{
				{Code: aws.String("None")},
				{Code: aws.String("ConditionalCheckFailed")},
			},
		})
		if !errors.Is(err, interfaces.ErrConditionFailed) {
			t.Fatalf("expected ErrConditionFailed, got %v", err)
		}
	})

	t.Run("transaction cancelled for another reason", func(t *testing.T) {
		in := &types.TransactionCanceledException{
			CancellationReasons: []types.CancellationReason{{Code: aws.String("TransactionConflict")}},
		}
		err := translateConditionErr(in)
		if errors.Is(err, interfaces.ErrConditionFailed) {
			t.Fatalf("expected raw error, got %v", err)
		}
	})

	t.Run("other errors pass through", func(t *testing.T) {
		boom := errors.New("boom")
		if err := translateConditionErr(boom); !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
	})
}

func TestQueryAll_FollowsPagination(t *testing.T) {
	page := 0
	fake := &fakeDynamo{
		query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			page++
			if page == 1 {
				return &dynamodb.QueryOutput{
					Items:            []map[string]types.AttributeValue{idKey("a")},
					LastEvaluatedKey: idKey("a"),
				}, nil
			}
			if in.ExclusiveStartKey == nil {
				t.Fatalf("expected ExclusiveStartKey on second page")
			}
			return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{idKey("b")}}, nil
		},
	}

	items, err := queryAll(context.Background(), fake, &dynamodb.QueryInput{TableName: aws.String("t")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 || page != 2 {
		t.Fatalf("expected 2 items over 2 pages, got %d items over %d pages", len(items), page)
	}
}

func TestFormatTime_RoundTripsUTC(t *testing.T) {
	loc := time.FixedZone("UTC-6", -6*60*60)
	in := time.Date(2025, 3, 1, 12, 30, 0, 123, loc)

	out, err := parseTime("created_at", formatTime(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Equal(in) {
		t.Fatalf("expected %v, got %v", in, out)
	}
	if out.Location() != time.UTC {
		t.Fatalf("expected UTC, got %v", out.Location())
	}
}

func TestParseStoredValues_RejectsCorruptData(t *testing.T) {
	t.Run("time", func(t *testing.T) {
		_, err := parseTime("fecha_pago", "yesterday")
		if err == nil || !strings.Contains(err.Error(), "fecha_pago") {
			t.Fatalf("expected error naming fecha_pago, got %v", err)
		}
	})

	t.Run("empty time", func(t *testing.T) {
		if _, _, err := parseStamps("", "2025-05-10T17:00:00Z"); err == nil {
			t.Fatalf("expected error for empty created_at")
		}
	})

	t.Run("line price", func(t *testing.T) {
		_, err := fromLineItemAttrs([]lineItemAttr{
			{ProductID: "prod-a", Quantity: 1, UnitPrice: "5.00"},
			{ProductID: "prod-b", Quantity: 1, UnitPrice: "tres"},
		})
		if err == nil || !strings.Contains(err.Error(), "line 1") || !strings.Contains(err.Error(), "precio_unitario") {
			t.Fatalf("expected error naming line 1 precio_unitario, got %v", err)
		}
	})
}

func TestMergeNames(t *testing.T) {
	a := map[string]string{"#a": "a"}
	b := map[string]string{"#b": "b"}

	got := mergeNames(a, b)
	if len(got) != 2 || got["#a"] != "a" || got["#b"] != "b" {
		t.Fatalf("unexpected merge: %v", got)
	}
	if len(a) != 1 {
		t.Fatalf("expected inputs untouched, got %v", a)
	}
}
