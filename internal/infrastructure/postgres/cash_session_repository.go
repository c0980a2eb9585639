package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gastrosmart/gastrosmart-api/internal/domain/entity"
	"github.com/gastrosmart/gastrosmart-api/internal/domain/repository"
)

var _ repository.CashSessionRepository = (*CashSessionRepo)(nil)

// CashSessionRepo implementación de CashSessionRepository sobre PostgreSQL.
type CashSessionRepo struct {
	q Querier
}

// NewCashSessionRepository construye el adaptador de sesiones de caja.
func NewCashSessionRepository(q Querier) *CashSessionRepo {
	return &CashSessionRepo{q: q}
}

const cashSessionColumns = `id, location_id, user_id, state, opening_amount, closing_amount, system_amount, variance, comments, opened_at, closed_at`

// GetOpen devuelve la sesión OPEN del usuario en la sucursal, o nil si no hay.
func (r *CashSessionRepo) GetOpen(userID, locationID string) (*entity.CashSession, error) {
	query := `
		SELECT ` + cashSessionColumns + `
		FROM cash_sessions
		WHERE user_id = $1 AND location_id = $2 AND state = $3`
	s, err := scanCashSession(r.q.QueryRow(context.Background(), query, userID, locationID, entity.CashSessionOpen))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get open cash session: %w", err)
	}
	return s, nil
}

// GetByID obtiene una sesión por ID, o nil si no existe.
func (r *CashSessionRepo) GetByID(id string) (*entity.CashSession, error) {
	query := `SELECT ` + cashSessionColumns + ` FROM cash_sessions WHERE id = $1`
	s, err := scanCashSession(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cash session: %w", err)
	}
	return s, nil
}

// Create persiste una sesión nueva. El índice único parcial sobre
// (user_id, location_id) WHERE state = 'OPEN' respalda la regla de una sola
// caja abierta por operador y sucursal.
func (r *CashSessionRepo) Create(session *entity.CashSession) error {
	query := `
		INSERT INTO cash_sessions (` + cashSessionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		session.ID, session.LocationID, session.UserID, session.State,
		session.OpeningAmount, session.ClosingAmount, session.SystemAmount,
		session.Variance, session.Comments, session.OpenedAt, session.ClosedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create cash session: ya hay una caja abierta: %w", err)
		}
		return fmt.Errorf("create cash session: %w", err)
	}
	return nil
}

// Update persiste el cierre (montos, varianza, estado, closed_at).
func (r *CashSessionRepo) Update(session *entity.CashSession) error {
	query := `
		UPDATE cash_sessions
		SET state = $2, closing_amount = $3, system_amount = $4, variance = $5,
		    comments = $6, closed_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		session.ID, session.State, session.ClosingAmount, session.SystemAmount,
		session.Variance, session.Comments, session.ClosedAt,
	)
	if err != nil {
		return fmt.Errorf("update cash session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update cash session: sesión %s no existe", session.ID)
	}
	return nil
}

// List lista las sesiones de una sucursal, más recientes primero.
func (r *CashSessionRepo) List(locationID string, limit, offset int) ([]*entity.CashSession, error) {
	query := `
		SELECT ` + cashSessionColumns + `
		FROM cash_sessions WHERE location_id = $1
		ORDER BY opened_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, locationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list cash sessions: %w", err)
	}
	defer rows.Close()
	var list []*entity.CashSession
	for rows.Next() {
		s, err := scanCashSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cash session: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func scanCashSession(row pgx.Row) (*entity.CashSession, error) {
	var s entity.CashSession
	var comments *string
	err := row.Scan(
		&s.ID, &s.LocationID, &s.UserID, &s.State,
		&s.OpeningAmount, &s.ClosingAmount, &s.SystemAmount, &s.Variance,
		&comments, &s.OpenedAt, &s.ClosedAt,
	)
	if err != nil {
		return nil, err
	}
	if comments != nil {
		s.Comments = *comments
	}
	return &s, nil
}
