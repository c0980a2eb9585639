package inventory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRequiredQuantity_DividePorPorciones(t *testing.T) {
	// Receta que rinde 4 porciones y consume 2 kg por lote:
	// vender 2 porciones consume 2*2/4 = 1 kg, no 4 kg.
	got := RequiredQuantity(decimal.NewFromInt(2), 2, 4)
	assert.True(t, got.Equal(decimal.NewFromInt(1)), "esperado 1, fue %s", got)
}

func TestRequiredQuantity_LoteCompleto(t *testing.T) {
	got := RequiredQuantity(decimal.NewFromInt(2), 4, 4)
	assert.True(t, got.Equal(decimal.NewFromInt(2)))
}

func TestRequiredQuantity_FraccionExacta(t *testing.T) {
	// 0.5 kg por lote de 4 porciones, 3 vendidas: 0.5*3/4 = 0.375
	got := RequiredQuantity(decimal.NewFromFloat(0.5), 3, 4)
	assert.True(t, got.Equal(decimal.NewFromFloat(0.375)), "esperado 0.375, fue %s", got)
}

func TestRequiredQuantity_ServingsInvalidoUsaUno(t *testing.T) {
	// Porciones <= 0 se trata como 1 para no dividir por cero.
	got := RequiredQuantity(decimal.NewFromInt(2), 3, 0)
	assert.True(t, got.Equal(decimal.NewFromInt(6)))
}

func TestWeightedAverageCost_PromedioPonderado(t *testing.T) {
	// 10 unidades a 5 + 10 unidades a 7 = promedio 6.
	got := WeightedAverageCost(
		decimal.NewFromInt(10), decimal.NewFromInt(5),
		decimal.NewFromInt(10), decimal.NewFromInt(7),
	)
	assert.True(t, got.Equal(decimal.NewFromInt(6)), "esperado 6, fue %s", got)
}

func TestWeightedAverageCost_SinStockPrevio(t *testing.T) {
	// Sin existencia previa el costo es el de la entrada.
	got := WeightedAverageCost(
		decimal.Zero, decimal.Zero,
		decimal.NewFromInt(5), decimal.NewFromFloat(3.5),
	)
	assert.True(t, got.Equal(decimal.NewFromFloat(3.5)))
}

func TestWeightedAverageCost_SumaCeroDevuelveCero(t *testing.T) {
	got := WeightedAverageCost(decimal.Zero, decimal.NewFromInt(5), decimal.Zero, decimal.NewFromInt(7))
	assert.True(t, got.Equal(decimal.Zero))
}

func TestWeightedAverageCost_StockNegativoPermitido(t *testing.T) {
	// Con stock negativo (política laxa) la suma puede quedar <= 0: se devuelve 0
	// en vez de un costo sin sentido.
	got := WeightedAverageCost(decimal.NewFromInt(-5), decimal.NewFromInt(4), decimal.NewFromInt(5), decimal.NewFromInt(6))
	assert.True(t, got.Equal(decimal.Zero))
}
