package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
)

const (
	goalsTable   = "goals g"
	goalsColumns = "g.id, g.period_start, g.period_end, g.target_quantity, g.target_amount, g.weight, g.executive_id, g.category_id"
)

type GoalRepository interface {
	ListGoals(limit uint64) ([]*domain.Goal, error)
	GetGoalByID(id int) (*domain.Goal, error)
	FindCoveringGoal(executiveID, categoryID int, date domain.Date) (*domain.Goal, error)
	ListGoalsOverlapping(start, end domain.Date) ([]*domain.Goal, error)
	CreateGoal(goal *domain.Goal) (*domain.Goal, error)
	UpdateGoal(goal *domain.Goal) (*domain.Goal, error)
	DeleteGoal(id int) (bool, error)
}

type goalRepository struct {
	conn *postgres.Connection
}

func NewGoalRepository(conn *postgres.Connection) GoalRepository {
	return &goalRepository{
		conn: conn,
	}
}

func (r *goalRepository) ListGoals(limit uint64) ([]*domain.Goal, error) {
	query, args, err := squirrel.
		Select(goalsColumns).
		From(goalsTable).
		OrderBy("g.period_start DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryGoals(query, args...)
}

func (r *goalRepository) GetGoalByID(id int) (*domain.Goal, error) {
	query, args, err := squirrel.
		Select(goalsColumns).
		From(goalsTable).
		Where(squirrel.Eq{"g.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	goal, err := r.scanGoal(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear meta: %w", err)
	}

	return goal, nil
}

// FindCoveringGoal busca a meta do executivo e categoria cujo período contém
// a data. Quando períodos se sobrepõem, vence o período mais curto e, em
// empate, a meta criada por último (id maior) — desempate determinístico.
func (r *goalRepository) FindCoveringGoal(executiveID, categoryID int, date domain.Date) (*domain.Goal, error) {
	query, args, err := squirrel.
		Select(goalsColumns).
		From(goalsTable).
		Where(squirrel.Eq{"g.executive_id": executiveID, "g.category_id": categoryID}).
		Where(squirrel.LtOrEq{"g.period_start": date}).
		Where(squirrel.GtOrEq{"g.period_end": date}).
		OrderBy("(g.period_end - g.period_start) ASC", "g.id DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	goal, err := r.scanGoal(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear meta: %w", err)
	}

	return goal, nil
}

// ListGoalsOverlapping lista as metas cujo período toca o intervalo [start, end]
func (r *goalRepository) ListGoalsOverlapping(start, end domain.Date) ([]*domain.Goal, error) {
	query, args, err := squirrel.
		Select(goalsColumns).
		From(goalsTable).
		Where(squirrel.LtOrEq{"g.period_start": end}).
		Where(squirrel.GtOrEq{"g.period_end": start}).
		OrderBy("g.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryGoals(query, args...)
}

func (r *goalRepository) CreateGoal(goal *domain.Goal) (*domain.Goal, error) {
	query, args, err := squirrel.StatementBuilder.
		Insert("goals").
		Columns("period_start", "period_end", "target_quantity", "target_amount", "weight", "executive_id", "category_id").
		Values(
			goal.PeriodStart,
			goal.PeriodEnd,
			goal.TargetQuantity,
			goal.TargetAmount,
			goal.Weight,
			goal.ExecutiveID,
			goal.CategoryID,
		).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRow(query, args...).Scan(&goal.ID); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao inserir meta: %w", err)
	}

	return goal, nil
}

func (r *goalRepository) UpdateGoal(goal *domain.Goal) (*domain.Goal, error) {
	query, args, err := squirrel.StatementBuilder.
		Update("goals").
		Set("period_start", goal.PeriodStart).
		Set("period_end", goal.PeriodEnd).
		Set("target_quantity", goal.TargetQuantity).
		Set("target_amount", goal.TargetAmount).
		Set("weight", goal.Weight).
		Set("executive_id", goal.ExecutiveID).
		Set("category_id", goal.CategoryID).
		Where(squirrel.Eq{"id": goal.ID}).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRow(query, args...).Scan(&goal.ID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao atualizar meta: %w", err)
	}

	return goal, nil
}

func (r *goalRepository) DeleteGoal(id int) (bool, error) {
	query, args, err := squirrel.
		Delete("goals").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *goalRepository) queryGoals(query string, args ...interface{}) ([]*domain.Goal, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	goals := make([]*domain.Goal, 0)
	for rows.Next() {
		goal := &domain.Goal{}
		if err := rows.Scan(
			&goal.ID,
			&goal.PeriodStart,
			&goal.PeriodEnd,
			&goal.TargetQuantity,
			&goal.TargetAmount,
			&goal.Weight,
			&goal.ExecutiveID,
			&goal.CategoryID,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear meta: %w", err)
		}
		goals = append(goals, goal)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return goals, nil
}

func (r *goalRepository) scanGoal(row *sql.Row) (*domain.Goal, error) {
	goal := &domain.Goal{}

	if err := row.Scan(
		&goal.ID,
		&goal.PeriodStart,
		&goal.PeriodEnd,
		&goal.TargetQuantity,
		&goal.TargetAmount,
		&goal.Weight,
		&goal.ExecutiveID,
		&goal.CategoryID,
	); err != nil {
		return nil, err
	}

	return goal, nil
}
