package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
)

const (
	goalProgressTable = "goal_progress gp"
)

type GoalProgressRepository interface {
	GetByGoalID(goalID int) (*domain.GoalProgress, error)
	SaveOrUpdate(progress *domain.GoalProgress) error
}

type goalProgressRepository struct {
	conn *postgres.Connection
}

func NewGoalProgressRepository(conn *postgres.Connection) GoalProgressRepository {
	return &goalProgressRepository{
		conn: conn,
	}
}

func (r *goalProgressRepository) GetByGoalID(goalID int) (*domain.GoalProgress, error) {
	query, args, err := squirrel.
		Select("gp.goal_id, gp.attained_quantity, gp.attained_amount, gp.computed_at").
		From(goalProgressTable).
		Where(squirrel.Eq{"gp.goal_id": goalID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	progress := &domain.GoalProgress{}
	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(
		&progress.GoalID,
		&progress.AttainedQuantity,
		&progress.AttainedAmount,
		&progress.ComputedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear avanço de meta: %w", err)
	}

	return progress, nil
}

func (r *goalProgressRepository) SaveOrUpdate(progress *domain.GoalProgress) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("goal_progress").
		Columns("goal_id", "attained_quantity", "attained_amount").
		Values(progress.GoalID, progress.AttainedQuantity, progress.AttainedAmount).
		Suffix(`
			ON CONFLICT (goal_id) DO UPDATE SET
				attained_quantity = EXCLUDED.attained_quantity,
				attained_amount = EXCLUDED.attained_amount,
				computed_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
