package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
)

const (
	clientsTable = "clients c"
)

type ClientRepository interface {
	ListClients(limit uint64) ([]*domain.Client, error)
	GetClientByID(id int) (*domain.Client, error)
	CreateClient(client *domain.Client) (*domain.Client, error)
	UpdateClient(client *domain.Client) (*domain.Client, error)
	DeleteClient(id int) (bool, error)
}

type clientRepository struct {
	conn *postgres.Connection
}

func NewClientRepository(conn *postgres.Connection) ClientRepository {
	return &clientRepository{
		conn: conn,
	}
}

func (r *clientRepository) ListClients(limit uint64) ([]*domain.Client, error) {
	query, args, err := squirrel.
		Select("c.id, c.name, c.tax_id, c.executive_id").
		From(clientsTable).
		OrderBy("c.id ASC").
		Limit(limit).
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

	clients := make([]*domain.Client, 0)
	for rows.Next() {
		client := &domain.Client{}
		if err := rows.Scan(&client.ID, &client.Name, &client.TaxID, &client.ExecutiveID); err != nil {
			return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
		}
		clients = append(clients, client)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return clients, nil
}

func (r *clientRepository) GetClientByID(id int) (*domain.Client, error) {
	query, args, err := squirrel.
		Select("c.id, c.name, c.tax_id, c.executive_id").
		From(clientsTable).
		Where(squirrel.Eq{"c.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	client := &domain.Client{}
	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&client.ID, &client.Name, &client.TaxID, &client.ExecutiveID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
	}

	return client, nil
}

func (r *clientRepository) CreateClient(client *domain.Client) (*domain.Client, error) {
	query, args, err := squirrel.StatementBuilder.
		Insert("clients").
		Columns("name", "tax_id", "executive_id").
		Values(client.Name, client.TaxID, client.ExecutiveID).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRow(query, args...).Scan(&client.ID); err != nil {
		return nil, fmt.Errorf("erro ao inserir cliente: %w", err)
	}

	return client, nil
}

func (r *clientRepository) UpdateClient(client *domain.Client) (*domain.Client, error) {
	query, args, err := squirrel.StatementBuilder.
		Update("clients").
		Set("name", client.Name).
		Set("tax_id", client.TaxID).
		Set("executive_id", client.ExecutiveID).
		Where(squirrel.Eq{"id": client.ID}).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRow(query, args...).Scan(&client.ID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao atualizar cliente: %w", err)
	}

	return client, nil
}

func (r *clientRepository) DeleteClient(id int) (bool, error) {
	query, args, err := squirrel.
		Delete("clients").
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
