package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/gastrosmart/gastrosmart-api/internal/application/dto"
	"github.com/gastrosmart/gastrosmart-api/internal/application/ports"
	"github.com/gastrosmart/gastrosmart-api/internal/domain/repository"
)

// TTLs de caché del dashboard. Las métricas del día toleran 1 minuto de rezago;
// el ranking de platos cambia más lento.
const (
	todayStatsTTL = time.Minute
	topRecipesTTL = 5 * time.Minute
)

// UseCase arma las métricas del dashboard. Las consultas pesadas pasan por la
// caché; un fallo de caché nunca tumba la consulta, solo la encarece.
type UseCase struct {
	analyticsRepo repository.AnalyticsRepository
	cache         ports.Cache
	log           zerolog.Logger
	now           func() time.Time
}

func NewUseCase(analyticsRepo repository.AnalyticsRepository, cache ports.Cache, log zerolog.Logger) *UseCase {
	return &UseCase{analyticsRepo: analyticsRepo, cache: cache, log: log, now: time.Now}
}

// TodayStats devuelve las métricas del día de la sucursal.
func (uc *UseCase) TodayStats(ctx context.Context, locationID string) (*dto.TodayStatsDTO, error) {
	day := uc.now()
	key := "dashboard:today:" + locationID + ":" + day.Format("2006-01-02")

	if cached, err := uc.cache.Get(ctx, key); err == nil {
		var stats dto.TodayStatsDTO
		if err := json.Unmarshal([]byte(cached), &stats); err == nil {
			return &stats, nil
		}
	} else if !errors.Is(err, ports.ErrCacheMiss) {
		uc.log.Warn().Err(err).Str("key", key).Msg("fallo leyendo caché del dashboard")
	}

	daily, err := uc.analyticsRepo.GetDailySales(locationID, day)
	if err != nil {
		return nil, err
	}
	critical, err := uc.analyticsRepo.CountCriticalStock(locationID)
	if err != nil {
		return nil, err
	}

	avgTicket := decimal.Zero
	if daily.SaleCount > 0 {
		avgTicket = daily.TotalSales.Div(decimal.NewFromInt(int64(daily.SaleCount))).Round(2)
	}
	stats := &dto.TodayStatsDTO{
		TotalSales:         daily.TotalSales,
		SaleCount:          daily.SaleCount,
		DishesSold:         daily.DishesSold,
		AverageTicket:      avgTicket,
		CriticalStockCount: critical,
	}
	uc.cacheSet(ctx, key, stats, todayStatsTTL)
	return stats, nil
}

// TopRecipes devuelve los platos más vendidos de los últimos `days` días.
func (uc *UseCase) TopRecipes(ctx context.Context, locationID string, days, limit int) ([]dto.TopRecipeDTO, error) {
	if days <= 0 {
		days = 7
	}
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	to := uc.now()
	from := to.AddDate(0, 0, -days)
	key := "dashboard:top:" + locationID + ":" + to.Format("2006-01-02")

	if cached, err := uc.cache.Get(ctx, key); err == nil {
		var top []dto.TopRecipeDTO
		if err := json.Unmarshal([]byte(cached), &top); err == nil {
			return top, nil
		}
	}

	results, err := uc.analyticsRepo.GetTopRecipes(locationID, from, to, limit)
	if err != nil {
		return nil, err
	}
	top := make([]dto.TopRecipeDTO, 0, len(results))
	for _, r := range results {
		top = append(top, dto.TopRecipeDTO{
			RecipeID:   r.RecipeID,
			RecipeName: r.RecipeName,
			UnitsSold:  r.UnitsSold,
			Revenue:    r.Revenue,
		})
	}
	uc.cacheSet(ctx, key, top, topRecipesTTL)
	return top, nil
}

func (uc *UseCase) cacheSet(ctx context.Context, key string, v any, ttl time.Duration) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := uc.cache.Set(ctx, key, string(raw), ttl); err != nil {
		uc.log.Warn().Err(err).Str("key", key).Msg("fallo escribiendo caché del dashboard")
	}
}
