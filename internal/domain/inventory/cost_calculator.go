package inventory

import "github.com/shopspring/decimal"

// WeightedAverageCost implementa la lógica de costo promedio ponderado (servicio de dominio),
// usada al recibir órdenes de compra:
//
//	NuevoCosto = ((StockActual * CostoActual) + (CantEntrada * CostoEntrada)) / (StockActual + CantEntrada)
func WeightedAverageCost(currentStock, currentCost, incomingQty, incomingCost decimal.Decimal) decimal.Decimal {
	sum := currentStock.Add(incomingQty)
	if sum.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	num := currentStock.Mul(currentCost).Add(incomingQty.Mul(incomingCost))
	return num.Div(sum)
}
