package gormrepository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/greikol4321-hub/Restaurante/internal/domain/entities"
	"github.com/greikol4321-hub/Restaurante/internal/usecase/interfaces"
)

func linesByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("posicion ASC")
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// guarded turns a conditional write that touched no row into interfaces.ErrConditionFailed.
func guarded(res *gorm.DB) error {
	if res.Error != nil {
		return translateErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return interfaces.ErrConditionFailed
	}
	return nil
}

// translateErr maps unique-key violations to interfaces.ErrConditionFailed. It needs the
// connection opened with TranslateError.
func translateErr(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return interfaces.ErrConditionFailed
	}
	return err
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// lineOwner names the foreign key column of a line item.
type lineOwner string

const (
	ownerPedido    lineOwner = "pedido_id"
	ownerMesaOrden lineOwner = "mesa_orden_id"
)

func toLineItemModels(owner lineOwner, orderID string, items []entities.LineItem) []LineItemModel {
	out := make([]LineItemModel, 0, len(items))
	for i, it := range items {
		m := LineItemModel{
			Posicion:       i,
			ProductoID:     it.ProductID,
			Cantidad:       it.Quantity,
			PrecioUnitario: it.UnitPrice,
		}
		if owner == ownerPedido {
			m.PedidoID = &orderID
		} else {
			m.MesaOrdenID = &orderID
		}
		out = append(out, m)
	}
	return out
}

func fromLineItemModels(models []LineItemModel) []entities.LineItem {
	out := make([]entities.LineItem, 0, len(models))
	for _, m := range models {
		out = append(out, entities.LineItem{ProductID: m.ProductoID, Quantity: m.Cantidad, UnitPrice: m.PrecioUnitario})
	}
	return out
}

// replaceLines swaps the stored lines of an order inside tx.
func replaceLines(tx *gorm.DB, owner lineOwner, orderID string, items []entities.LineItem) error {
	if err := tx.Where(string(owner)+" = ?", orderID).Delete(&LineItemModel{}).Error; err != nil {
		return err
	}
	models := toLineItemModels(owner, orderID, items)
	if len(models) == 0 {
		return nil
	}
	return tx.Create(&models).Error
}
