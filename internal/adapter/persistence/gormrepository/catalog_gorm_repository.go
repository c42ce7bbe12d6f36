package gormrepository

import (
	"context"

	"gorm.io/gorm"

	"github.com/greikol4321-hub/Restaurante/internal/domain/entities"
	"github.com/greikol4321-hub/Restaurante/internal/usecase/interfaces"
)

type ProductGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IProductCatalog = (*ProductGormRepository)(nil)

func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

func (r *ProductGormRepository) GetByID(ctx context.Context, id string) (entities.Product, error) {
	var m ProductoModel
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if isNotFound(err) {
		return entities.Product{}, nil
	}
	if err != nil {
		return entities.Product{}, err
	}
	return entities.Product{ID: m.ID, Name: m.Nombre, Price: m.Precio}, nil
}

type UserGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IUserDirectory = (*UserGormRepository)(nil)

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	var m UsuarioModel
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if isNotFound(err) {
		return entities.User{}, nil
	}
	if err != nil {
		return entities.User{}, err
	}
	return entities.User{ID: m.ID, Name: m.Nombre, Role: entities.UserRole(m.Rol)}, nil
}
