package purchase

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/Samu0104/loucura-total/model"
)

type SQL struct {
	conn *sqlx.DB
}

type PurchaseRepository interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, req *model.PurchaseEntity) (uint64, error)
}

func NewPurchaseRepository(conn *sqlx.DB) PurchaseRepository {
	return &SQL{conn: conn}
}

const insertPurchaseQuery = `INSERT INTO purchase (customer_name, email, phone, postal_code, house_number, product_id, quantity) VALUES (?, ?, ?, ?, ?, ?, ?)`

func (s *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, data *model.PurchaseEntity) (uint64, error) {
	res, err := tx.ExecContext(ctx, insertPurchaseQuery,
		data.CustomerName, data.Email, data.Phone, data.PostalCode, data.HouseNumber, data.ProductID, data.Quantity)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}
