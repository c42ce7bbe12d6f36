package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/greikol4321-hub/Restaurante/internal/domain/entities"
)

var fixedNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func newTestLogger() (*logrus.Logger, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return logger, hook
}

func sequentialIDs(ids ...string) func() string {
	i := 0
	return func() string {
		id := ids[i%len(ids)]
		i++
		return id
	}
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func productA() entities.Product {
	return entities.Product{ID: "prod-a", Name: "Casado", Price: price("5.00")}
}

func productB() entities.Product {
	return entities.Product{ID: "prod-b", Name: "Fresco", Price: price("3.00")}
}

// priceBook is an in-memory catalog whose prices can change between calls.
type priceBook map[string]entities.Product

func (b priceBook) GetByID(_ context.Context, id string) (entities.Product, error) {
	return b[id], nil
}

func (b priceBook) reprice(id, amount string) {
	p := b[id]
	p.Price = price(amount)
	b[id] = p
}
