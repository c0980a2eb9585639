package cash

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gastrosmart/gastrosmart-api/internal/application/dto"
	"github.com/gastrosmart/gastrosmart-api/internal/domain"
	"github.com/gastrosmart/gastrosmart-api/internal/domain/entity"
)

type memCashRepo struct {
	sessions map[string]*entity.CashSession
}

func newMemCashRepo() *memCashRepo {
	return &memCashRepo{sessions: map[string]*entity.CashSession{}}
}

func (m *memCashRepo) GetOpen(userID, locationID string) (*entity.CashSession, error) {
	for _, s := range m.sessions {
		if s.UserID == userID && s.LocationID == locationID && s.State == entity.CashSessionOpen {
			return s, nil
		}
	}
	return nil, nil
}

func (m *memCashRepo) GetByID(id string) (*entity.CashSession, error) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, nil
	}
	return s, nil
}

func (m *memCashRepo) Create(session *entity.CashSession) error {
	m.sessions[session.ID] = session
	return nil
}

func (m *memCashRepo) Update(session *entity.CashSession) error {
	m.sessions[session.ID] = session
	return nil
}

func (m *memCashRepo) List(locationID string, limit, offset int) ([]*entity.CashSession, error) {
	var out []*entity.CashSession
	for _, s := range m.sessions {
		if s.LocationID == locationID {
			out = append(out, s)
		}
	}
	return out, nil
}

// stubSaleRepo solo implementa el cuadre; el resto no se usa en este paquete.
type stubSaleRepo struct {
	completedTotal decimal.Decimal
}

func (s *stubSaleRepo) Create(*entity.Sale) error            { return nil }
func (s *stubSaleRepo) CreateItem(*entity.SaleItem) error    { return nil }
func (s *stubSaleRepo) GetByID(string) (*entity.Sale, error) { return nil, nil }
func (s *stubSaleRepo) List(string, *time.Time, *time.Time, int, int) ([]*entity.Sale, error) {
	return nil, nil
}
func (s *stubSaleRepo) Delete(string) error { return nil }
func (s *stubSaleRepo) SumCompletedTotals(userID, locationID string, from, to time.Time) (decimal.Decimal, error) {
	return s.completedTotal, nil
}

const (
	testUser     = "user-1"
	testLocation = "loc-1"
)

func newTestUseCase(salesTotal float64) (*UseCase, *memCashRepo) {
	repo := newMemCashRepo()
	uc := NewUseCase(repo, &stubSaleRepo{completedTotal: decimal.NewFromFloat(salesTotal)})
	return uc, repo
}

func openSession(t *testing.T, uc *UseCase, opening float64) *dto.CashSessionResponse {
	t.Helper()
	resp, err := uc.Open(testUser, dto.OpenCashSessionRequest{
		LocationID:    testLocation,
		OpeningAmount: decimal.NewFromFloat(opening),
	})
	require.NoError(t, err)
	return resp
}

func TestOpen_CreaSesionAbierta(t *testing.T) {
	uc, _ := newTestUseCase(0)
	resp := openSession(t, uc, 100)

	assert.Equal(t, entity.CashSessionOpen, resp.State)
	assert.True(t, resp.OpeningAmount.Equal(decimal.NewFromInt(100)))
	assert.Nil(t, resp.SystemAmount, "el monto del sistema no existe hasta el cierre")
	assert.Nil(t, resp.Variance)
}

func TestOpen_MontoNegativo(t *testing.T) {
	uc, _ := newTestUseCase(0)
	_, err := uc.Open(testUser, dto.OpenCashSessionRequest{
		LocationID:    testLocation,
		OpeningAmount: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOpen_SegundaCajaDelMismoUsuario(t *testing.T) {
	uc, _ := newTestUseCase(0)
	openSession(t, uc, 100)

	_, err := uc.Open(testUser, dto.OpenCashSessionRequest{
		LocationID:    testLocation,
		OpeningAmount: decimal.NewFromInt(50),
	})
	assert.ErrorIs(t, err, domain.ErrRegisterOpen)
}

func TestClose_CuadreConFaltante(t *testing.T) {
	// Apertura 100 + ventas 250 = sistema 350; declarado 340 → varianza -10.
	uc, _ := newTestUseCase(250)
	session := openSession(t, uc, 100)

	resp, err := uc.Close(testUser, session.ID, dto.CloseCashSessionRequest{
		ClosingAmount: decimal.NewFromInt(340),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.CashSessionClosed, resp.State)
	require.NotNil(t, resp.SystemAmount)
	require.NotNil(t, resp.Variance)
	assert.True(t, resp.SystemAmount.Equal(decimal.NewFromInt(350)),
		"sistema debe ser 350, fue %s", resp.SystemAmount)
	assert.True(t, resp.Variance.Equal(decimal.NewFromInt(-10)),
		"varianza debe ser -10, fue %s", resp.Variance)
	assert.NotNil(t, resp.ClosedAt)
}

func TestClose_CuadreExacto(t *testing.T) {
	uc, _ := newTestUseCase(250)
	session := openSession(t, uc, 100)

	resp, err := uc.Close(testUser, session.ID, dto.CloseCashSessionRequest{
		ClosingAmount: decimal.NewFromInt(350),
	})
	require.NoError(t, err)
	assert.True(t, resp.Variance.Equal(decimal.Zero))
}

func TestClose_SoloElOperadorQueAbrio(t *testing.T) {
	uc, _ := newTestUseCase(0)
	session := openSession(t, uc, 100)

	_, err := uc.Close("otro-usuario", session.ID, dto.CloseCashSessionRequest{
		ClosingAmount: decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestClose_SesionYaCerrada(t *testing.T) {
	uc, _ := newTestUseCase(0)
	session := openSession(t, uc, 100)

	_, err := uc.Close(testUser, session.ID, dto.CloseCashSessionRequest{ClosingAmount: decimal.NewFromInt(100)})
	require.NoError(t, err)

	_, err = uc.Close(testUser, session.ID, dto.CloseCashSessionRequest{ClosingAmount: decimal.NewFromInt(100)})
	assert.ErrorIs(t, err, domain.ErrRegisterClosed)
}

func TestClose_SesionInexistente(t *testing.T) {
	uc, _ := newTestUseCase(0)
	_, err := uc.Close(testUser, "sesion-fantasma", dto.CloseCashSessionRequest{
		ClosingAmount: decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStatus_SinCajaAbierta(t *testing.T) {
	uc, _ := newTestUseCase(0)
	_, err := uc.Status(testUser, testLocation)
	assert.ErrorIs(t, err, domain.ErrNoOpenRegister)
}

func TestStatus_DevuelveLaSesionAbierta(t *testing.T) {
	uc, _ := newTestUseCase(0)
	session := openSession(t, uc, 80)

	resp, err := uc.Status(testUser, testLocation)
	require.NoError(t, err)
	assert.Equal(t, session.ID, resp.ID)
	assert.Equal(t, entity.CashSessionOpen, resp.State)
}
