package jsonstore

import (
	"errors"

	"github.com/tu-usuario/kiosco-stock/internal/domain"
	"github.com/tu-usuario/kiosco-stock/internal/domain/entity"
)

const productsKey = "products"

// ProductRepository catálogo de productos sobre el blob "products".
type ProductRepository struct {
	store *Store
}

// NewProductRepository construye el repositorio.
func NewProductRepository(store *Store) *ProductRepository {
	return &ProductRepository{store: store}
}

// GetAll devuelve el catálogo completo; si el blob no existe siembra los
// datos iniciales.
func (r *ProductRepository) GetAll() ([]entity.Product, error) {
	var products []entity.Product
	err := r.store.Read(productsKey, &products)
	if errors.Is(err, domain.ErrNotFound) {
		products = SeedProducts()
		if err := r.store.Write(productsKey, products); err != nil {
			return nil, err
		}
		return products, nil
	}
	if err != nil {
		return nil, err
	}
	return products, nil
}

// SaveAll reemplaza el catálogo completo.
func (r *ProductRepository) SaveAll(products []entity.Product) error {
	return r.store.Write(productsKey, products)
}
