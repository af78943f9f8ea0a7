package validation_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/kiosco-stock/internal/domain/entity"
	"github.com/tu-usuario/kiosco-stock/internal/domain/validation"
)

func productoValido() entity.Product {
	return entity.Product{
		ID:       "p1",
		Name:     "Agua 500ml",
		SKU:      "AGUA-500",
		Category: "Bebidas",
		Cost:     decimal.NewFromInt(350),
		Price:    decimal.NewFromInt(700),
		MinStock: decimal.NewFromInt(10),
	}
}

func TestValidateProduct_ProductoValidoSinErrores(t *testing.T) {
	errs := validation.ValidateProduct(productoValido(), nil)
	assert.Empty(t, errs)
}

func TestValidateProduct_CamposRequeridos(t *testing.T) {
	p := entity.Product{Name: "  ", SKU: "", Category: "\t"}

	errs := validation.ValidateProduct(p, nil)

	require.Len(t, errs, 3)
	assert.Contains(t, errs[0], "nombre")
	assert.Contains(t, errs[1], "SKU")
	assert.Contains(t, errs[2], "categoría")
}

func TestValidateProduct_NumerosNegativos(t *testing.T) {
	p := productoValido()
	p.Cost = decimal.NewFromInt(-1)
	p.Price = decimal.NewFromInt(-5)
	p.MinStock = decimal.NewFromInt(-2)

	errs := validation.ValidateProduct(p, nil)

	require.Len(t, errs, 3)
	assert.Contains(t, errs[0], "Costo")
	assert.Contains(t, errs[1], "Precio")
	assert.Contains(t, errs[2], "Stock mínimo")
}

func TestValidateProduct_SKUDuplicadoSinDistinguirMayusculas(t *testing.T) {
	existente := productoValido()
	existente.ID = "otro"
	existente.SKU = "aaa"

	candidato := productoValido()
	candidato.SKU = "AAA"

	errs := validation.ValidateProduct(candidato, []entity.Product{existente})

	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "SKU")
}

func TestValidateProduct_SKUConEspaciosTambienColisiona(t *testing.T) {
	existente := productoValido()
	existente.ID = "otro"
	existente.SKU = "  aGuA-500  "

	errs := validation.ValidateProduct(productoValido(), []entity.Product{existente})

	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "SKU")
}

func TestValidateProduct_ElPropioRegistroNoColisiona(t *testing.T) {
	p := productoValido()

	// Editar un producto contra un set que lo contiene no es colisión.
	errs := validation.ValidateProduct(p, []entity.Product{p})

	assert.Empty(t, errs)
}

func TestValidateProduct_SKUDuplicadoConProductoInactivo(t *testing.T) {
	inactivo := productoValido()
	inactivo.ID = "otro"
	inactivo.Active = entity.Bool(false)

	errs := validation.ValidateProduct(productoValido(), []entity.Product{inactivo})

	// La unicidad cubre activos e inactivos.
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "SKU")
}

func movimientoValido(tipo string, qty int64) entity.Movement {
	return entity.Movement{
		ID:        "m1",
		ProductID: "p1",
		Type:      tipo,
		Qty:       decimal.NewFromInt(qty),
	}
}

func catalogo() []entity.Product {
	return []entity.Product{productoValido()}
}

func TestValidateMovement_SalidaValida(t *testing.T) {
	errs := validation.ValidateMovement(movimientoValido(entity.MovementTypeOUT, 1), catalogo())
	assert.Empty(t, errs)
}

func TestValidateMovement_AjusteACeroEsValido(t *testing.T) {
	errs := validation.ValidateMovement(movimientoValido(entity.MovementTypeADJUST, 0), catalogo())
	assert.Empty(t, errs)
}

func TestValidateMovement_SalidaConCantidadCeroSeRechaza(t *testing.T) {
	errs := validation.ValidateMovement(movimientoValido(entity.MovementTypeOUT, 0), catalogo())

	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "mayor a 0")
}

func TestValidateMovement_AjusteNegativoSeRechaza(t *testing.T) {
	errs := validation.ValidateMovement(movimientoValido(entity.MovementTypeADJUST, -1), catalogo())

	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "negativo")
}

func TestValidateMovement_ProductoRequeridoYExistente(t *testing.T) {
	m := movimientoValido(entity.MovementTypeIN, 5)
	m.ProductID = ""

	errs := validation.ValidateMovement(m, catalogo())

	// Vacío dispara las dos reglas: requerido y no encontrado.
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0], "requerido")
	assert.Contains(t, errs[1], "no encontrado")
}

func TestValidateMovement_ProductoInexistente(t *testing.T) {
	m := movimientoValido(entity.MovementTypeIN, 5)
	m.ProductID = "fantasma"

	errs := validation.ValidateMovement(m, catalogo())

	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "no encontrado")
}

func TestValidateMovement_TipoInvalido(t *testing.T) {
	m := movimientoValido("TRANSFER", 5)

	errs := validation.ValidateMovement(m, catalogo())

	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "Tipo de movimiento")
}
