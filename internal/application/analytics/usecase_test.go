package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gastrosmart/gastrosmart-api/internal/application/ports"
	"github.com/gastrosmart/gastrosmart-api/internal/domain/repository"
)

type memCache struct {
	values map[string]string
	gets   int
	sets   int
}

func newMemCache() *memCache { return &memCache{values: map[string]string{}} }

func (c *memCache) Get(ctx context.Context, key string) (string, error) {
	c.gets++
	v, ok := c.values[key]
	if !ok {
		return "", ports.ErrCacheMiss
	}
	return v, nil
}

func (c *memCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	c.sets++
	c.values[key] = value
	return nil
}

func (c *memCache) Delete(ctx context.Context, key string) error {
	delete(c.values, key)
	return nil
}

type stubAnalyticsRepo struct {
	daily      repository.DailySalesResult
	critical   int
	top        []*repository.TopRecipeResult
	dailyCalls int
}

func (s *stubAnalyticsRepo) GetDailySales(locationID string, day time.Time) (*repository.DailySalesResult, error) {
	s.dailyCalls++
	cp := s.daily
	return &cp, nil
}

func (s *stubAnalyticsRepo) GetTopRecipes(locationID string, from, to time.Time, limit int) ([]*repository.TopRecipeResult, error) {
	if limit < len(s.top) {
		return s.top[:limit], nil
	}
	return s.top, nil
}

func (s *stubAnalyticsRepo) CountCriticalStock(locationID string) (int, error) {
	return s.critical, nil
}

func statsUseCase(repo *stubAnalyticsRepo, cache ports.Cache) *UseCase {
	return NewUseCase(repo, cache, zerolog.Nop())
}

func TestTodayStats_CalculaTicketPromedio(t *testing.T) {
	repo := &stubAnalyticsRepo{
		daily: repository.DailySalesResult{
			TotalSales: decimal.NewFromInt(350),
			SaleCount:  3,
			DishesSold: 9,
		},
		critical: 2,
	}
	uc := statsUseCase(repo, newMemCache())

	stats, err := uc.TodayStats(context.Background(), "loc-1")
	require.NoError(t, err)

	// 350 / 3 = 116.67 redondeado a 2 decimales.
	assert.True(t, stats.AverageTicket.Equal(decimal.NewFromFloat(116.67)),
		"ticket promedio esperado 116.67, fue %s", stats.AverageTicket)
	assert.Equal(t, 3, stats.SaleCount)
	assert.Equal(t, 9, stats.DishesSold)
	assert.Equal(t, 2, stats.CriticalStockCount)
}

func TestTodayStats_SinVentasTicketCero(t *testing.T) {
	repo := &stubAnalyticsRepo{daily: repository.DailySalesResult{TotalSales: decimal.Zero}}
	uc := statsUseCase(repo, newMemCache())

	stats, err := uc.TodayStats(context.Background(), "loc-1")
	require.NoError(t, err)
	assert.True(t, stats.AverageTicket.IsZero())
}

func TestTodayStats_SegundaLecturaVieneDeCache(t *testing.T) {
	repo := &stubAnalyticsRepo{
		daily:    repository.DailySalesResult{TotalSales: decimal.NewFromInt(100), SaleCount: 1},
		critical: 0,
	}
	cache := newMemCache()
	uc := statsUseCase(repo, cache)

	first, err := uc.TodayStats(context.Background(), "loc-1")
	require.NoError(t, err)
	assert.Equal(t, 1, repo.dailyCalls)
	assert.Equal(t, 1, cache.sets)

	second, err := uc.TodayStats(context.Background(), "loc-1")
	require.NoError(t, err)
	assert.Equal(t, 1, repo.dailyCalls, "la segunda lectura no debe golpear la BD")
	assert.True(t, first.TotalSales.Equal(second.TotalSales))
}

func TestTodayStats_CachePorSucursal(t *testing.T) {
	repo := &stubAnalyticsRepo{daily: repository.DailySalesResult{TotalSales: decimal.NewFromInt(100), SaleCount: 1}}
	uc := statsUseCase(repo, newMemCache())

	_, err := uc.TodayStats(context.Background(), "loc-1")
	require.NoError(t, err)
	_, err = uc.TodayStats(context.Background(), "loc-2")
	require.NoError(t, err)

	assert.Equal(t, 2, repo.dailyCalls, "sucursales distintas no comparten caché")
}

func TestTopRecipes_NormalizaParametros(t *testing.T) {
	repo := &stubAnalyticsRepo{top: []*repository.TopRecipeResult{
		{RecipeID: "r1", RecipeName: "Bandeja Paisa", UnitsSold: 12, Revenue: decimal.NewFromInt(480)},
		{RecipeID: "r2", RecipeName: "Ajiaco", UnitsSold: 7, Revenue: decimal.NewFromInt(210)},
	}}
	uc := statsUseCase(repo, newMemCache())

	// days y limit fuera de rango caen a los defaults (7 días, top 10).
	top, err := uc.TopRecipes(context.Background(), "loc-1", -1, 0)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "Bandeja Paisa", top[0].RecipeName)
	assert.Equal(t, 12, top[0].UnitsSold)
}
