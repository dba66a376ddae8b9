package account

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/jmoiron/sqlx"
	gosqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/Samu0104/loucura-total/constant"
	"github.com/Samu0104/loucura-total/model"
	"github.com/Samu0104/loucura-total/utils/errors"
)

type SQL struct {
	conn *sqlx.DB
}

type AccountRepository interface {
	Create(ctx context.Context, req *model.AccountEntity) (*model.AccountEntity, error)
	Get(ctx context.Context, filter *model.AccountFilter) (*model.AccountEntity, error)
	DeleteByEmail(ctx context.Context, email string) (int64, error)
}

func NewAccountRepository(conn *sqlx.DB) AccountRepository {
	return &SQL{conn: conn}
}

const (
	insertAccountQuery = `INSERT INTO account (full_name, birth_date, email, password_hash) VALUES (?, ?, ?, ?)`
	getAccountBase     = `SELECT id, full_name, birth_date, email, password_hash FROM account WHERE true`
	deleteByEmailQuery = `DELETE FROM account WHERE email = ?`
)

// Create inserts the account and relies on the UNIQUE constraint on email
// to reject duplicates. There is deliberately no existence pre-check: the
// constraint violation is the race-free enforcement mechanism.
func (s *SQL) Create(ctx context.Context, data *model.AccountEntity) (*model.AccountEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertAccountQuery, data.FullName, data.BirthDate, data.Email, data.PasswordHash)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, errors.SetCustomError(constant.ErrEmailExists)
		}
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) Get(ctx context.Context, filter *model.AccountFilter) (*model.AccountEntity, error) {
	query := getAccountBase
	args := make([]any, 0, 3)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.FullName != "" {
		query += " AND full_name = ?"
		args = append(args, filter.FullName)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}

	var entity model.AccountEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// DeleteByEmail removes every account row with the given email and returns
// the number of rows deleted. Email carries a UNIQUE constraint, so the
// value-match delete of the original contract collapses to one row.
func (s *SQL) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	result, err := s.conn.ExecContext(ctx, deleteByEmailQuery, email)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func isUniqueViolation(err error) bool {
	var serr *gosqlite.Error
	if !stderrors.As(err, &serr) {
		return false
	}
	return serr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE ||
		serr.Code() == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
}
