package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
)

const (
	salesTable = "sales s"
)

type SaleRepository interface {
	ListSales(filter domain.SaleFilter) ([]*domain.SaleRecord, error)
	GetSaleByID(id int) (*domain.Sale, error)
	CreateSale(sale *domain.Sale) (*domain.Sale, error)
	DeleteSale(id int) (bool, error)
	SumSalesByCategory(executiveID, categoryID int, start, end domain.Date) (int, float64, error)
}

type saleRepository struct {
	conn *postgres.Connection
}

func NewSaleRepository(conn *postgres.Connection) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

// ListSales lista vendas com os nomes relacionados resolvidos por LEFT JOIN
// e filtros opcionais de cliente, produto, executivo, intervalo de datas e
// busca textual por nome de cliente ou produto.
func (r *saleRepository) ListSales(filter domain.SaleFilter) ([]*domain.SaleRecord, error) {
	queryBuilder := squirrel.
		Select(
			"s.id, s.date, s.amount",
			"s.client_id, c.name AS client_name",
			"s.product_id, p.name AS product_name",
			"s.executive_id, e.name AS executive_name",
			"s.channel_id, ch.name AS channel_name",
		).
		From(salesTable).
		LeftJoin("clients c ON c.id = s.client_id").
		LeftJoin("products p ON p.id = s.product_id").
		LeftJoin("executives e ON e.id = s.executive_id").
		LeftJoin("channels ch ON ch.id = s.channel_id").
		OrderBy("s.date DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		PlaceholderFormat(squirrel.Dollar)

	if filter.ClientID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"s.client_id": *filter.ClientID})
	}
	if filter.ProductID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"s.product_id": *filter.ProductID})
	}
	if filter.ExecutiveID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"s.executive_id": *filter.ExecutiveID})
	}
	if filter.DateFrom != nil {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"s.date": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"s.date": *filter.DateTo})
	}
	if filter.Query != "" {
		pattern := "%" + strings.ToLower(filter.Query) + "%"
		queryBuilder = queryBuilder.Where(
			squirrel.Or{
				squirrel.Like{"LOWER(c.name)": pattern},
				squirrel.Like{"LOWER(p.name)": pattern},
			},
		)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	sales := make([]*domain.SaleRecord, 0)
	for rows.Next() {
		record := &domain.SaleRecord{}
		if err := rows.Scan(
			&record.ID,
			&record.Date,
			&record.Amount,
			&record.ClientID,
			&record.ClientName,
			&record.ProductID,
			&record.ProductName,
			&record.ExecutiveID,
			&record.ExecutiveName,
			&record.ChannelID,
			&record.ChannelName,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}
		sales = append(sales, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sales, nil
}

func (r *saleRepository) GetSaleByID(id int) (*domain.Sale, error) {
	query, args, err := squirrel.
		Select("s.id, s.date, s.amount, s.client_id, s.product_id, s.executive_id, s.channel_id").
		From(salesTable).
		Where(squirrel.Eq{"s.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	sale := &domain.Sale{}
	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(
		&sale.ID,
		&sale.Date,
		&sale.Amount,
		&sale.ClientID,
		&sale.ProductID,
		&sale.ExecutiveID,
		&sale.ChannelID,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear venda: %w", err)
	}

	return sale, nil
}

func (r *saleRepository) CreateSale(sale *domain.Sale) (*domain.Sale, error) {
	query, args, err := squirrel.StatementBuilder.
		Insert("sales").
		Columns("date", "amount", "client_id", "product_id", "executive_id", "channel_id").
		Values(
			sale.Date,
			sale.Amount,
			sale.ClientID,
			sale.ProductID,
			sale.ExecutiveID,
			sale.ChannelID,
		).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRow(query, args...).Scan(&sale.ID); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao inserir venda: %w", err)
	}

	return sale, nil
}

func (r *saleRepository) DeleteSale(id int) (bool, error) {
	query, args, err := squirrel.
		Delete("sales").
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

// SumSalesByCategory soma quantidade e valor das vendas de um executivo em
// uma categoria de produto dentro do intervalo fechado [start, end].
func (r *saleRepository) SumSalesByCategory(executiveID, categoryID int, start, end domain.Date) (int, float64, error) {
	query, args, err := squirrel.
		Select("COUNT(s.id)", "COALESCE(SUM(s.amount), 0)").
		From(salesTable).
		Join("products p ON p.id = s.product_id").
		Where(squirrel.Eq{"s.executive_id": executiveID, "p.category_id": categoryID}).
		Where(squirrel.GtOrEq{"s.date": start}).
		Where(squirrel.LtOrEq{"s.date": end}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var quantity int
	var amount float64
	if err := r.conn.QueryRow(query, args...).Scan(&quantity, &amount); err != nil {
		return 0, 0, fmt.Errorf("erro ao apurar vendas: %w", err)
	}

	return quantity, amount, nil
}
