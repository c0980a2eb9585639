package cash

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gastrosmart/gastrosmart-api/internal/application/dto"
	"github.com/gastrosmart/gastrosmart-api/internal/domain"
	"github.com/gastrosmart/gastrosmart-api/internal/domain/entity"
	"github.com/gastrosmart/gastrosmart-api/internal/domain/repository"
)

// UseCase maneja el ciclo de vida de las sesiones de caja: apertura, cierre
// con cuadre contra ventas del sistema, y consulta de estado.
type UseCase struct {
	cashRepo repository.CashSessionRepository
	saleRepo repository.SaleRepository
	now      func() time.Time
}

func NewUseCase(cashRepo repository.CashSessionRepository, saleRepo repository.SaleRepository) *UseCase {
	return &UseCase{cashRepo: cashRepo, saleRepo: saleRepo, now: time.Now}
}

// Open abre una sesión de caja para el operador en la sucursal.
// A lo sumo una sesión OPEN por (usuario, sucursal).
func (uc *UseCase) Open(userID string, in dto.OpenCashSessionRequest) (*dto.CashSessionResponse, error) {
	if in.OpeningAmount.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.cashRepo.GetOpen(userID, in.LocationID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrRegisterOpen
	}
	session := &entity.CashSession{
		ID:            uuid.New().String(),
		LocationID:    in.LocationID,
		UserID:        userID,
		State:         entity.CashSessionOpen,
		OpeningAmount: in.OpeningAmount,
		Comments:      in.Comments,
		OpenedAt:      uc.now(),
	}
	if err := uc.cashRepo.Create(session); err != nil {
		return nil, err
	}
	return toResponse(session), nil
}

// Close cierra la sesión cuadrando el monto declarado contra el del sistema:
// sistema = apertura + Σ totales de ventas COMPLETED del operador en la sucursal
// dentro de la ventana [opened_at, ahora]; varianza = declarado - sistema.
// Solo el operador que abrió la caja puede cerrarla.
func (uc *UseCase) Close(userID, sessionID string, in dto.CloseCashSessionRequest) (*dto.CashSessionResponse, error) {
	if in.ClosingAmount.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	session, err := uc.cashRepo.GetByID(sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrNotFound
	}
	if session.UserID != userID {
		return nil, domain.ErrForbidden
	}
	if session.State != entity.CashSessionOpen {
		return nil, domain.ErrRegisterClosed
	}

	closedAt := uc.now()
	salesTotal, err := uc.saleRepo.SumCompletedTotals(session.UserID, session.LocationID, session.OpenedAt, closedAt)
	if err != nil {
		return nil, err
	}
	systemAmount := session.OpeningAmount.Add(salesTotal)
	variance := in.ClosingAmount.Sub(systemAmount)

	session.State = entity.CashSessionClosed
	session.ClosingAmount = &in.ClosingAmount
	session.SystemAmount = &systemAmount
	session.Variance = &variance
	session.ClosedAt = &closedAt
	if in.Comments != "" {
		session.Comments = in.Comments
	}
	if err := uc.cashRepo.Update(session); err != nil {
		return nil, err
	}
	return toResponse(session), nil
}

// Status devuelve la sesión OPEN del operador en la sucursal, o ErrNoOpenRegister.
func (uc *UseCase) Status(userID, locationID string) (*dto.CashSessionResponse, error) {
	session, err := uc.cashRepo.GetOpen(userID, locationID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrNoOpenRegister
	}
	return toResponse(session), nil
}

// List devuelve el historial de sesiones de una sucursal.
func (uc *UseCase) List(locationID string, page dto.PageRequest) ([]dto.CashSessionResponse, error) {
	sessions, err := uc.cashRepo.List(locationID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CashSessionResponse, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, *toResponse(s))
	}
	return out, nil
}

func toResponse(s *entity.CashSession) *dto.CashSessionResponse {
	return &dto.CashSessionResponse{
		ID:            s.ID,
		LocationID:    s.LocationID,
		UserID:        s.UserID,
		State:         s.State,
		OpeningAmount: s.OpeningAmount,
		ClosingAmount: s.ClosingAmount,
		SystemAmount:  s.SystemAmount,
		Variance:      s.Variance,
		Comments:      s.Comments,
		OpenedAt:      s.OpenedAt,
		ClosedAt:      s.ClosedAt,
	}
}
