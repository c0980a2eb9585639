package chatbot

import (
	"context"
	"fmt"
	"strings"

	"github.com/gastrosmart/gastrosmart-api/internal/application/analytics"
	"github.com/gastrosmart/gastrosmart-api/internal/application/dto"
	"github.com/gastrosmart/gastrosmart-api/internal/application/ports"
	"github.com/gastrosmart/gastrosmart-api/internal/domain"
	"github.com/gastrosmart/gastrosmart-api/internal/domain/repository"
)

const systemPrompt = `Eres el asesor de gestión de GastroSmart, un asistente para dueños y
administradores de restaurantes. Respondes en español, de forma breve y accionable,
basándote ÚNICAMENTE en los datos del negocio que se te entregan como contexto.
Si la pregunta no puede responderse con esos datos, dilo explícitamente.
Cierra con una lista corta de acciones concretas cuando aplique, cada una en una
línea que empiece con "- ".`

// UseCase responde preguntas de gestión usando el LLM con un contexto armado
// a partir de los datos reales del negocio (ventas del día, stock crítico,
// platos más vendidos).
type UseCase struct {
	llm       ports.LLM
	dashboard *analytics.UseCase
	itemRepo  repository.InventoryItemRepository
}

func NewUseCase(llm ports.LLM, dashboard *analytics.UseCase, itemRepo repository.InventoryItemRepository) *UseCase {
	return &UseCase{llm: llm, dashboard: dashboard, itemRepo: itemRepo}
}

// Ask arma el contexto del negocio y consulta al asesor.
func (uc *UseCase) Ask(ctx context.Context, locationID string, in dto.ChatRequest) (*dto.AIAdviceDTO, error) {
	if strings.TrimSpace(in.Message) == "" {
		return nil, domain.ErrInvalidInput
	}
	businessCtx, err := uc.buildContext(ctx, locationID)
	if err != nil {
		return nil, err
	}
	answer, err := uc.llm.Complete(ctx, systemPrompt, businessCtx+"\n\nPregunta: "+in.Message)
	if err != nil {
		return nil, err
	}
	return parseAdvice(answer), nil
}

// buildContext resume el estado del negocio en texto plano para el prompt.
func (uc *UseCase) buildContext(ctx context.Context, locationID string) (string, error) {
	var b strings.Builder
	b.WriteString("Contexto del negocio:\n")

	stats, err := uc.dashboard.TodayStats(ctx, locationID)
	if err != nil {
		return "", err
	}
	fmt.Fprintf(&b, "Ventas de hoy: %s (%d ventas, %d platos, ticket promedio %s)\n",
		stats.TotalSales.StringFixed(2), stats.SaleCount, stats.DishesSold, stats.AverageTicket.StringFixed(2))

	critical, err := uc.itemRepo.ListCritical(locationID)
	if err != nil {
		return "", err
	}
	if len(critical) > 0 {
		b.WriteString("Insumos en stock crítico:\n")
		for _, item := range critical {
			fmt.Fprintf(&b, "- %s: %s%s (mínimo %s%s)\n",
				item.Name, item.Quantity.Round(2), item.Unit, item.MinStock.Round(2), item.Unit)
		}
	} else {
		b.WriteString("Sin insumos en stock crítico.\n")
	}

	top, err := uc.dashboard.TopRecipes(ctx, locationID, 7, 5)
	if err != nil {
		return "", err
	}
	if len(top) > 0 {
		b.WriteString("Platos más vendidos (últimos 7 días):\n")
		for _, r := range top {
			fmt.Fprintf(&b, "- %s: %d unidades, %s en ventas\n", r.RecipeName, r.UnitsSold, r.Revenue.StringFixed(2))
		}
	}
	return b.String(), nil
}

// parseAdvice separa el cuerpo del consejo de las líneas de acción ("- ...").
func parseAdvice(answer string) *dto.AIAdviceDTO {
	var adviceLines, actions []string
	for _, line := range strings.Split(answer, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "- ") {
			actions = append(actions, strings.TrimPrefix(trimmed, "- "))
			continue
		}
		adviceLines = append(adviceLines, line)
	}
	return &dto.AIAdviceDTO{
		Advice:      strings.TrimSpace(strings.Join(adviceLines, "\n")),
		ActionItems: actions,
	}
}
