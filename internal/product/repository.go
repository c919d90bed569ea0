package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/smartretail/product-api/internal/platform/db"
)

var (
	ErrNotFound    = errors.New("product repository: product not found")
	ErrQueryFailed = errors.New("product repository: query failed")
)

const tableName = "PRODUCT_EMBEDDINGS"

type SQLRepository struct {
	db    *sql.DB
	table string
}

var _ Repository = (*SQLRepository)(nil)

func NewRepository(conn *sql.DB, schema string) *SQLRepository {
	return &SQLRepository{
		db:    conn,
		table: quoteIdent(schema) + "." + quoteIdent(tableName),
	}
}

// executor returns the transaction from the context when one is open,
// otherwise the pool. A nil pool means the database was never configured.
func (r *SQLRepository) executor(ctx context.Context) (db.Executor, error) {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx, nil
	}
	if r.db == nil {
		return nil, db.ErrUnavailable
	}
	return r.db, nil
}

func (r *SQLRepository) List(ctx context.Context) ([]Product, error) {
	exec, err := r.executor(ctx)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT PRODUCT_ID, NAME, DESCRIPTION FROM %s ORDER BY PRODUCT_ID", r.table)
	rows, err := exec.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: list products: %v", ErrQueryFailed, err)
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		var description sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &description); err != nil {
			return nil, fmt.Errorf("product repository: scan row: %w", err)
		}
		p.Description = description.String
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("product repository: iterate over product rows: %w", err)
	}

	return products, nil
}

func (r *SQLRepository) FindByName(ctx context.Context, name string) (*Product, error) {
	exec, err := r.executor(ctx)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT PRODUCT_ID, NAME, DESCRIPTION FROM %s WHERE NAME = ? LIMIT 1", r.table)
	row := exec.QueryRowContext(ctx, query, name)

	var p Product
	var description sql.NullString
	if err := row.Scan(&p.ID, &p.Name, &description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: find product %s: %v", ErrQueryFailed, name, err)
	}
	p.Description = description.String

	return &p, nil
}

func (r *SQLRepository) MaxID(ctx context.Context) (int64, error) {
	exec, err := r.executor(ctx)
	if err != nil {
		return 0, err
	}

	query := fmt.Sprintf("SELECT COALESCE(MAX(PRODUCT_ID), 0) FROM %s", r.table)
	var maxID int64
	if err := exec.QueryRowContext(ctx, query).Scan(&maxID); err != nil {
		return 0, fmt.Errorf("%w: max product id: %v", ErrQueryFailed, err)
	}

	return maxID, nil
}

func (r *SQLRepository) Insert(ctx context.Context, p Product) error {
	exec, err := r.executor(ctx)
	if err != nil {
		return err
	}

	// VECTOR is written as NULL; the embedding pipeline fills it later.
	query := fmt.Sprintf("INSERT INTO %s (PRODUCT_ID, NAME, DESCRIPTION, VECTOR) VALUES (?, ?, ?, NULL)", r.table)
	if _, err := exec.ExecContext(ctx, query, p.ID, p.Name, p.Description); err != nil {
		return fmt.Errorf("%w: insert product %s: %v", ErrQueryFailed, p.Name, err)
	}

	return nil
}

func (r *SQLRepository) UpdateDescription(ctx context.Context, name, description string) (int64, error) {
	exec, err := r.executor(ctx)
	if err != nil {
		return 0, err
	}

	query := fmt.Sprintf("UPDATE %s SET DESCRIPTION = ? WHERE NAME = ?", r.table)
	res, err := exec.ExecContext(ctx, query, description, name)
	if err != nil {
		return 0, fmt.Errorf("%w: update product %s: %v", ErrQueryFailed, name, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("product repository: get rows affected: %w", err)
	}

	return rows, nil
}

func (r *SQLRepository) DeleteByName(ctx context.Context, name string) (int64, error) {
	exec, err := r.executor(ctx)
	if err != nil {
		return 0, err
	}

	query := fmt.Sprintf("DELETE FROM %s WHERE NAME = ?", r.table)
	res, err := exec.ExecContext(ctx, query, name)
	if err != nil {
		return 0, fmt.Errorf("%w: delete product %s: %v", ErrQueryFailed, name, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("product repository: get rows affected: %w", err)
	}

	return rows, nil
}

// quoteIdent renders a HANA identifier as a quoted literal, doubling any
// embedded quotes.
func quoteIdent(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}
