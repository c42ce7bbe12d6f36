package gormrepository

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/greikol4321-hub/Restaurante/internal/domain/entities"
	"github.com/greikol4321-hub/Restaurante/internal/usecase/interfaces"
)

type cartItemJSON struct {
	ID         string `json:"id"`
	ProductoID string `json:"producto_id"`
	Cantidad   int    `json:"cantidad"`
}

type CartGormRepository struct {
	db *gorm.DB
}

var _ interfaces.ICartRepository = (*CartGormRepository)(nil)

func NewCartGormRepository(db *gorm.DB) *CartGormRepository {
	return &CartGormRepository{db: db}
}

func (r *CartGormRepository) Create(ctx context.Context, c entities.Cart) (entities.Cart, error) {
	m, err := toCarritoModel(c)
	if err != nil {
		return entities.Cart{}, err
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.Cart{}, translateErr(err)
	}
	return c, nil
}

func (r *CartGormRepository) GetByID(ctx context.Context, id string) (entities.Cart, error) {
	return r.first(r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *CartGormRepository) GetActiveByUserID(ctx context.Context, userID string) (entities.Cart, error) {
	return r.first(r.db.WithContext(ctx).Where("active_user_id = ? AND activo = ?", userID, true))
}

func (r *CartGormRepository) first(q *gorm.DB) (entities.Cart, error) {
	var m CarritoModel
	err := q.First(&m).Error
	if isNotFound(err) {
		return entities.Cart{}, nil
	}
	if err != nil {
		return entities.Cart{}, err
	}
	return fromCarritoModel(m)
}

func (r *CartGormRepository) SaveItems(ctx context.Context, c entities.Cart) (entities.Cart, error) {
	items, err := marshalCartItems(c.Items)
	if err != nil {
		return entities.Cart{}, err
	}
	res := r.db.WithContext(ctx).Model(&CarritoModel{}).
		Where("id = ? AND activo = ?", c.ID, true).
		Updates(map[string]any{"items": items, "updated_at": c.UpdatedAt})
	if err := guarded(res); err != nil {
		return entities.Cart{}, err
	}
	return r.GetByID(ctx, c.ID)
}

// ConvertToPedido closes the cart, frees the user's active slot and inserts the pedido.
func (r *CartGormRepository) ConvertToPedido(ctx context.Context, c entities.Cart, p entities.Pedido) (entities.Pedido, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&CarritoModel{}).
			Where("id = ? AND activo = ?", c.ID, true).
			Updates(map[string]any{"activo": false, "active_user_id": nil, "updated_at": time.Now().UTC()})
		if err := guarded(res); err != nil {
			return err
		}
		m := toPedidoModel(p)
		return translateErr(tx.Create(&m).Error)
	})
	if err != nil {
		return entities.Pedido{}, err
	}
	return p, nil
}

func marshalCartItems(items []entities.CartItem) (datatypes.JSON, error) {
	out := make([]cartItemJSON, 0, len(items))
	for _, it := range items {
		out = append(out, cartItemJSON{ID: it.ID, ProductoID: it.ProductID, Cantidad: it.Quantity})
	}
	raw, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

func toCarritoModel(c entities.Cart) (CarritoModel, error) {
	items, err := marshalCartItems(c.Items)
	if err != nil {
		return CarritoModel{}, err
	}
	m := CarritoModel{
		ID:        c.ID,
		UsuarioID: c.UserID,
		Items:     items,
		Activo:    c.Active,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if c.Active {
		m.ActiveUserID = optional(c.UserID)
	}
	return m, nil
}

func fromCarritoModel(m CarritoModel) (entities.Cart, error) {
	var raw []cartItemJSON
	if len(m.Items) > 0 {
		if err := json.Unmarshal(m.Items, &raw); err != nil {
			return entities.Cart{}, err
		}
	}
	items := make([]entities.CartItem, 0, len(raw))
	for _, it := range raw {
		items = append(items, entities.CartItem{ID: it.ID, ProductID: it.ProductoID, Quantity: it.Cantidad})
	}
	return entities.Cart{
		ID:        m.ID,
		UserID:    m.UsuarioID,
		Items:     items,
		Active:    m.Activo,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}, nil
}
