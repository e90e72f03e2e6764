package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
)

const (
	executivesTable = "executives e"
)

type ExecutiveRepository interface {
	ListExecutives() ([]*domain.Executive, error)
}

type executiveRepository struct {
	conn *postgres.Connection
}

func NewExecutiveRepository(conn *postgres.Connection) ExecutiveRepository {
	return &executiveRepository{
		conn: conn,
	}
}

func (r *executiveRepository) ListExecutives() ([]*domain.Executive, error) {
	query, args, err := squirrel.
		Select("e.id, e.name").
		From(executivesTable).
		OrderBy("e.name ASC").
		Limit(1000).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	executives := make([]*domain.Executive, 0)
	for rows.Next() {
		executive := &domain.Executive{}
		if err := rows.Scan(&executive.ID, &executive.Name); err != nil {
			return nil, fmt.Errorf("erro ao escanear executivo: %w", err)
		}
		executives = append(executives, executive)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return executives, nil
}
