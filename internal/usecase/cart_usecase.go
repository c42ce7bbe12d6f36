package usecase

//go:generate mockgen -source=cart_usecase.go -destination=../adapter/http/handlers/mocks/cart_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/greikol4321-hub/Restaurante/internal/domain/entities"
	"github.com/greikol4321-hub/Restaurante/internal/usecase/interfaces"
)

// ICartUseCase manages the active cart of each user and turns it into a Pedido.
//
// Requested behavior:
//   - One active cart per user; adding a product already in the cart merges quantities.
//   - Conversion deactivates the cart and creates the Pedido in one write.

type ICartUseCase interface {
	GetOrCreate(ctx context.Context, userID string) (entities.Cart, error)
	GetActive(ctx context.Context, userID string) (entities.Cart, error)
	ListItems(ctx context.Context, cartID string) ([]entities.CartItem, error)
	AddItem(ctx context.Context, cartID, productID string, quantity int) (entities.Cart, error)
	UpdateItemQuantity(ctx context.Context, cartID, itemID string, quantity int) (entities.Cart, error)
	RemoveItem(ctx context.Context, cartID, itemID string) (entities.Cart, error)
	Clear(ctx context.Context, cartID string) (entities.Cart, error)
	ConvertToPedido(ctx context.Context, cartID string) (entities.Pedido, error)
}

type CartUseCase struct {
	repo  interfaces.ICartRepository
	lines lineBuilder
	log   *logrus.Logger
	newID func() string
	now   func() time.Time
}

var _ ICartUseCase = (*CartUseCase)(nil)

func NewCartUseCase(
	repo interfaces.ICartRepository,
	users interfaces.IUserDirectory,
	catalog interfaces.IProductCatalog,
	logger *logrus.Logger,
) *CartUseCase {
	return &CartUseCase{
		repo:  repo,
		lines: lineBuilder{users: users, catalog: catalog},
		log:   logger,
		newID: uuid.NewString,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (u *CartUseCase) GetOrCreate(ctx context.Context, userID string) (entities.Cart, error) {
	user, err := u.lines.resolveUser(ctx, userID)
	if err != nil {
		return entities.Cart{}, err
	}
	c, err := u.repo.GetActiveByUserID(ctx, user.ID)
	if err != nil {
		return entities.Cart{}, err
	}
	if c.ID != "" {
		return c, nil
	}

	now := u.now()
	created, err := u.repo.Create(ctx, entities.Cart{
		ID:        u.newID(),
		UserID:    user.ID,
		Items:     []entities.CartItem{},
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if errors.Is(err, interfaces.ErrConditionFailed) {
		// another request opened the cart first
		return u.GetActive(ctx, user.ID)
	}
	if err != nil {
		return entities.Cart{}, err
	}
	u.log.WithFields(logrus.Fields{"cart_id": created.ID, "user_id": user.ID}).Info("cart opened")
	return created, nil
}

func (u *CartUseCase) GetActive(ctx context.Context, userID string) (entities.Cart, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Cart{}, fmt.Errorf("%w: empty user id", ErrInvalidID)
	}
	c, err := u.repo.GetActiveByUserID(ctx, userID)
	if err != nil {
		return entities.Cart{}, err
	}
	if c.ID == "" {
		return entities.Cart{}, fmt.Errorf("%w: no active cart for user %s", ErrCartNotFound, userID)
	}
	return c, nil
}

func (u *CartUseCase) get(ctx context.Context, cartID string) (entities.Cart, error) {
	cartID = strings.TrimSpace(cartID)
	if cartID == "" {
		return entities.Cart{}, fmt.Errorf("%w: empty cart id", ErrInvalidID)
	}
	c, err := u.repo.GetByID(ctx, cartID)
	if err != nil {
		return entities.Cart{}, err
	}
	if c.ID == "" {
		return entities.Cart{}, fmt.Errorf("%w %s", ErrCartNotFound, cartID)
	}
	return c, nil
}

func (u *CartUseCase) getActive(ctx context.Context, cartID string) (entities.Cart, error) {
	c, err := u.get(ctx, cartID)
	if err != nil {
		return entities.Cart{}, err
	}
	if !c.Active {
		return entities.Cart{}, fmt.Errorf("%w: %s", ErrCartInactive, c.ID)
	}
	return c, nil
}

func (u *CartUseCase) save(ctx context.Context, c entities.Cart) (entities.Cart, error) {
	c.UpdatedAt = u.now()
	saved, err := u.repo.SaveItems(ctx, c)
	if errors.Is(err, interfaces.ErrConditionFailed) {
		return entities.Cart{}, fmt.Errorf("%w: %s", ErrCartInactive, c.ID)
	}
	return saved, err
}

func (u *CartUseCase) ListItems(ctx context.Context, cartID string) ([]entities.CartItem, error) {
	c, err := u.get(ctx, cartID)
	if err != nil {
		return nil, err
	}
	return c.Items, nil
}

func (u *CartUseCase) AddItem(ctx context.Context, cartID, productID string, quantity int) (entities.Cart, error) {
	if quantity <= 0 {
		return entities.Cart{}, fmt.Errorf("%w: product %s quantity %d", ErrInvalidQuantity, productID, quantity)
	}
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return entities.Cart{}, fmt.Errorf("%w: empty product id", ErrInvalidID)
	}
	c, err := u.getActive(ctx, cartID)
	if err != nil {
		return entities.Cart{}, err
	}
	product, err := u.lines.catalog.GetByID(ctx, productID)
	if err != nil {
		return entities.Cart{}, err
	}
	if product.ID == "" {
		return entities.Cart{}, fmt.Errorf("%w %s", ErrProductNotFound, productID)
	}
	c.AddItem(product.ID, quantity, u.newID)
	return u.save(ctx, c)
}

func (u *CartUseCase) UpdateItemQuantity(ctx context.Context, cartID, itemID string, quantity int) (entities.Cart, error) {
	if quantity <= 0 {
		return entities.Cart{}, fmt.Errorf("%w: item %s quantity %d", ErrInvalidQuantity, itemID, quantity)
	}
	c, err := u.getActive(ctx, cartID)
	if err != nil {
		return entities.Cart{}, err
	}
	i := c.FindItem(strings.TrimSpace(itemID))
	if i < 0 {
		return entities.Cart{}, fmt.Errorf("%w: %s", ErrCartItemNotFound, itemID)
	}
	c.Items[i].Quantity = quantity
	return u.save(ctx, c)
}

func (u *CartUseCase) RemoveItem(ctx context.Context, cartID, itemID string) (entities.Cart, error) {
	c, err := u.getActive(ctx, cartID)
	if err != nil {
		return entities.Cart{}, err
	}
	i := c.FindItem(strings.TrimSpace(itemID))
	if i < 0 {
		return entities.Cart{}, fmt.Errorf("%w: %s", ErrCartItemNotFound, itemID)
	}
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
	return u.save(ctx, c)
}

func (u *CartUseCase) Clear(ctx context.Context, cartID string) (entities.Cart, error) {
	c, err := u.getActive(ctx, cartID)
	if err != nil {
		return entities.Cart{}, err
	}
	c.Items = []entities.CartItem{}
	return u.save(ctx, c)
}

// ConvertToPedido snapshots current prices into a new Pedido and closes the cart.
func (u *CartUseCase) ConvertToPedido(ctx context.Context, cartID string) (entities.Pedido, error) {
	c, err := u.getActive(ctx, cartID)
	if err != nil {
		return entities.Pedido{}, err
	}
	if len(c.Items) == 0 {
		return entities.Pedido{}, fmt.Errorf("%w: %s", ErrCartEmpty, c.ID)
	}
	user, err := u.lines.resolveUser(ctx, c.UserID)
	if err != nil {
		return entities.Pedido{}, err
	}
	items, err := u.lines.snapshot(ctx, c.LineSpecs())
	if err != nil {
		return entities.Pedido{}, err
	}

	now := u.now()
	p := newPendingPedido(u.newID(), user.ID, items, now)
	c.Active = false
	c.UpdatedAt = now

	created, err := u.repo.ConvertToPedido(ctx, c, p)
	if errors.Is(err, interfaces.ErrConditionFailed) {
		return entities.Pedido{}, fmt.Errorf("%w: %s", ErrCartInactive, c.ID)
	}
	if err != nil {
		return entities.Pedido{}, err
	}
	u.log.WithFields(logrus.Fields{"cart_id": c.ID, "pedido_id": created.ID, "user_id": created.UserID}).
		Info("cart converted to pedido")
	return created, nil
}
