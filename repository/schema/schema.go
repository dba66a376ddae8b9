package schema

import (
	"context"

	"github.com/jmoiron/sqlx"
)

const (
	createAccountTable = `CREATE TABLE IF NOT EXISTS account (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	full_name TEXT NOT NULL,
	birth_date TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL
)`

	// product is the external catalog table; the reference is declared but
	// not enforced (sqlite leaves foreign_keys off by default).
	createPurchaseTable = `CREATE TABLE IF NOT EXISTS purchase (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	customer_name TEXT NOT NULL,
	email TEXT NOT NULL,
	phone TEXT NOT NULL,
	postal_code TEXT NOT NULL,
	house_number TEXT NOT NULL,
	product_id INTEGER NOT NULL,
	quantity INTEGER NOT NULL,
	FOREIGN KEY (product_id) REFERENCES product(id)
)`
)

// Init ensures the account and purchase tables exist. Safe to run on every
// process start; existing tables are left untouched.
func Init(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, createAccountTable); err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, createPurchaseTable); err != nil {
		return err
	}
	return nil
}
