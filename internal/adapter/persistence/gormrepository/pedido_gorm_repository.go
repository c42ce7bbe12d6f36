package gormrepository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/greikol4321-hub/Restaurante/internal/domain/entities"
	"github.com/greikol4321-hub/Restaurante/internal/usecase/interfaces"
)

// PedidoGormRepository persists app orders in MySQL.
type PedidoGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IPedidoRepository = (*PedidoGormRepository)(nil)

func NewPedidoGormRepository(db *gorm.DB) *PedidoGormRepository {
	return &PedidoGormRepository{db: db}
}

func (r *PedidoGormRepository) Create(ctx context.Context, p entities.Pedido) (entities.Pedido, error) {
	m := toPedidoModel(p)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.Pedido{}, translateErr(err)
	}
	return p, nil
}

func (r *PedidoGormRepository) GetByID(ctx context.Context, id string) (entities.Pedido, error) {
	var m PedidoModel
	err := r.db.WithContext(ctx).Preload("Items", linesByPosition).First(&m, "id = ?", id).Error
	if isNotFound(err) {
		return entities.Pedido{}, nil
	}
	if err != nil {
		return entities.Pedido{}, err
	}
	return fromPedidoModel(m), nil
}

func (r *PedidoGormRepository) List(ctx context.Context) ([]entities.Pedido, error) {
	return r.find(r.db.WithContext(ctx))
}

func (r *PedidoGormRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Pedido, error) {
	return r.find(r.db.WithContext(ctx).Where("usuario_id = ?", userID))
}

func (r *PedidoGormRepository) ListByStatus(ctx context.Context, statuses ...entities.PedidoStatus) ([]entities.Pedido, error) {
	if len(statuses) == 0 {
		return []entities.Pedido{}, nil
	}
	return r.find(r.db.WithContext(ctx).Where("estado IN ?", statuses))
}

func (r *PedidoGormRepository) find(q *gorm.DB) ([]entities.Pedido, error) {
	var models []PedidoModel
	if err := q.Preload("Items", linesByPosition).Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Pedido, 0, len(models))
	for _, m := range models {
		out = append(out, fromPedidoModel(m))
	}
	return out, nil
}

func (r *PedidoGormRepository) UpdateStatus(ctx context.Context, id string, from, to entities.PedidoStatus) (entities.Pedido, error) {
	res := r.db.WithContext(ctx).Model(&PedidoModel{}).
		Where("id = ? AND estado = ?", id, from).
		Updates(map[string]any{"estado": to, "updated_at": time.Now().UTC()})
	if err := guarded(res); err != nil {
		return entities.Pedido{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *PedidoGormRepository) ReplaceItems(ctx context.Context, id string, expected entities.PedidoStatus, items []entities.LineItem) (entities.Pedido, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&PedidoModel{}).
			Where("id = ? AND estado = ? AND payment_id IS NULL", id, expected).
			Update("updated_at", time.Now().UTC())
		if err := guarded(res); err != nil {
			return err
		}
		return replaceLines(tx, ownerPedido, id, items)
	})
	if err != nil {
		return entities.Pedido{}, err
	}
	return r.GetByID(ctx, id)
}

// Delete relies on the lineas_orden foreign key cascade to drop the lines.
func (r *PedidoGormRepository) Delete(ctx context.Context, id string, expected entities.PedidoStatus) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND estado = ? AND payment_id IS NULL", id, expected).
		Delete(&PedidoModel{})
	return guarded(res)
}

func toPedidoModel(p entities.Pedido) PedidoModel {
	return PedidoModel{
		ID:        p.ID,
		UsuarioID: p.UserID,
		Estado:    string(p.Status),
		PaymentID: optional(p.PaymentID),
		Items:     toLineItemModels(ownerPedido, p.ID, p.Items),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func fromPedidoModel(m PedidoModel) entities.Pedido {
	return entities.Pedido{
		ID:        m.ID,
		UserID:    m.UsuarioID,
		Status:    entities.PedidoStatus(m.Estado),
		Items:     fromLineItemModels(m.Items),
		PaymentID: deref(m.PaymentID),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
