package product

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/Samu0104/loucura-total/model"
)

type SQL struct {
	conn *sqlx.DB
}

// ProductRepository reads the external catalog table. Nothing here writes
// to it; the catalog is owned by a separate process.
type ProductRepository interface {
	GetByIDTx(ctx context.Context, tx *sqlx.Tx, id int64) (*model.ProductEntity, error)
	Search(ctx context.Context, term string) ([]model.ProductEntity, error)
	List(ctx context.Context) ([]model.ProductEntity, error)
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

const (
	getProductByIDQuery = `SELECT id, name, price FROM product WHERE id = ?`
	searchProductsQuery = `SELECT id, name, price FROM product WHERE name LIKE ?`
	listProductsQuery   = `SELECT id, name, price FROM product`
)

func (s *SQL) GetByIDTx(ctx context.Context, tx *sqlx.Tx, id int64) (*model.ProductEntity, error) {
	var entity model.ProductEntity
	if err := tx.QueryRowxContext(ctx, getProductByIDQuery, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// Search matches the term as a substring of the product name. Result order
// is whatever the engine returns.
func (s *SQL) Search(ctx context.Context, term string) ([]model.ProductEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, searchProductsQuery, "%"+term+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ProductEntity, 0)
	for rows.Next() {
		var it model.ProductEntity
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *SQL) List(ctx context.Context) ([]model.ProductEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, listProductsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ProductEntity, 0)
	for rows.Next() {
		var it model.ProductEntity
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
