package inventory

import "github.com/shopspring/decimal"

// RequiredQuantity calcula el consumo de un ingrediente al vender soldQty porciones
// de una receta (servicio de dominio).
//
//	requerido = cantidadPorLote * porcionesVendidas / porcionesPorLote
//
// cantidadPorLote es el consumo del ingrediente por UN lote completo de la receta
// (que rinde servings porciones). Omitir la división entre servings sobreconsume
// el inventario por un factor de servings.
func RequiredQuantity(quantityPerBatch decimal.Decimal, soldQuantity int, servings int) decimal.Decimal {
	if servings <= 0 {
		servings = 1
	}
	return quantityPerBatch.
		Mul(decimal.NewFromInt(int64(soldQuantity))).
		Div(decimal.NewFromInt(int64(servings)))
}
