package gormrepository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/greikol4321-hub/Restaurante/internal/domain/entities"
	"github.com/greikol4321-hub/Restaurante/internal/usecase/interfaces"
)

type MesaOrdenGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IMesaOrdenRepository = (*MesaOrdenGormRepository)(nil)

func NewMesaOrdenGormRepository(db *gorm.DB) *MesaOrdenGormRepository {
	return &MesaOrdenGormRepository{db: db}
}

func (r *MesaOrdenGormRepository) Create(ctx context.Context, m entities.MesaOrden) (entities.MesaOrden, error) {
	model := toMesaOrdenModel(m)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return entities.MesaOrden{}, translateErr(err)
	}
	return m, nil
}

func (r *MesaOrdenGormRepository) GetByID(ctx context.Context, id string) (entities.MesaOrden, error) {
	var m MesaOrdenModel
	err := r.db.WithContext(ctx).Preload("Items", linesByPosition).First(&m, "id = ?", id).Error
	if isNotFound(err) {
		return entities.MesaOrden{}, nil
	}
	if err != nil {
		return entities.MesaOrden{}, err
	}
	return fromMesaOrdenModel(m), nil
}

func (r *MesaOrdenGormRepository) List(ctx context.Context) ([]entities.MesaOrden, error) {
	return r.find(r.db.WithContext(ctx))
}

func (r *MesaOrdenGormRepository) ListByWaiterID(ctx context.Context, waiterID string) ([]entities.MesaOrden, error) {
	return r.find(r.db.WithContext(ctx).Where("mesero_id = ?", waiterID))
}

func (r *MesaOrdenGormRepository) find(q *gorm.DB) ([]entities.MesaOrden, error) {
	var models []MesaOrdenModel
	if err := q.Preload("Items", linesByPosition).Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]entities.MesaOrden, 0, len(models))
	for _, m := range models {
		out = append(out, fromMesaOrdenModel(m))
	}
	return out, nil
}

func (r *MesaOrdenGormRepository) UpdateStatus(ctx context.Context, id string, from, to entities.MesaOrdenStatus) (entities.MesaOrden, error) {
	res := r.db.WithContext(ctx).Model(&MesaOrdenModel{}).
		Where("id = ? AND estado = ?", id, from).
		Updates(map[string]any{"estado": to, "updated_at": time.Now().UTC()})
	if err := guarded(res); err != nil {
		return entities.MesaOrden{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *MesaOrdenGormRepository) Update(ctx context.Context, m entities.MesaOrden, expected entities.MesaOrdenStatus) (entities.MesaOrden, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&MesaOrdenModel{}).
			Where("id = ? AND estado = ? AND payment_id IS NULL", m.ID, expected).
			Updates(map[string]any{"numero_mesa": m.TableNumber, "updated_at": time.Now().UTC()})
		if err := guarded(res); err != nil {
			return err
		}
		return replaceLines(tx, ownerMesaOrden, m.ID, m.Items)
	})
	if err != nil {
		return entities.MesaOrden{}, err
	}
	return r.GetByID(ctx, m.ID)
}

func (r *MesaOrdenGormRepository) Delete(ctx context.Context, id string, expected entities.MesaOrdenStatus) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND estado = ? AND payment_id IS NULL", id, expected).
		Delete(&MesaOrdenModel{})
	return guarded(res)
}

func toMesaOrdenModel(m entities.MesaOrden) MesaOrdenModel {
	return MesaOrdenModel{
		ID:         m.ID,
		NumeroMesa: m.TableNumber,
		MeseroID:   m.WaiterID,
		Estado:     string(m.Status),
		PaymentID:  optional(m.PaymentID),
		Items:      toLineItemModels(ownerMesaOrden, m.ID, m.Items),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func fromMesaOrdenModel(m MesaOrdenModel) entities.MesaOrden {
	return entities.MesaOrden{
		ID:          m.ID,
		TableNumber: m.NumeroMesa,
		WaiterID:    m.MeseroID,
		Status:      entities.MesaOrdenStatus(m.Estado),
		Items:       fromLineItemModels(m.Items),
		PaymentID:   deref(m.PaymentID),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
