package account_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"

	dbclient "github.com/Samu0104/loucura-total/cmd/db"
	"github.com/Samu0104/loucura-total/constant"
	"github.com/Samu0104/loucura-total/model"
	accountrepo "github.com/Samu0104/loucura-total/repository/account"
	"github.com/Samu0104/loucura-total/repository/schema"
	cerr "github.com/Samu0104/loucura-total/utils/errors"
)

func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := dbclient.Connect(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := schema.Init(context.Background(), db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return db
}

func accountCount(t *testing.T, db *sqlx.DB) int64 {
	t.Helper()
	var n int64
	if err := db.Get(&n, "SELECT COUNT(*) FROM account"); err != nil {
		t.Fatalf("count accounts: %v", err)
	}
	return n
}

func TestAccountRepository_Create_DuplicateEmail(t *testing.T) {
	db := openTestDB(t)
	repo := accountrepo.NewAccountRepository(db)
	ctx := context.Background()

	first, err := repo.Create(ctx, &model.AccountEntity{
		FullName:     "Maria Silva",
		BirthDate:    "1999-04-12",
		Email:        "maria@example.com",
		PasswordHash: "hash-1",
	})
	if err != nil {
		t.Fatalf("first Create() error = %v", err)
	}
	if first.ID == 0 {
		t.Fatalf("first Create() assigned no id")
	}

	_, err = repo.Create(ctx, &model.AccountEntity{
		FullName:     "Other Person",
		BirthDate:    "1985-01-01",
		Email:        "maria@example.com",
		PasswordHash: "hash-2",
	})
	if err == nil {
		t.Fatalf("second Create() with duplicate email succeeded, want constraint error")
	}
	if err.Error() != cerr.SetCustomError(constant.ErrEmailExists).Error() {
		t.Fatalf("second Create() error = %v, want %v", err, cerr.SetCustomError(constant.ErrEmailExists))
	}

	if got := accountCount(t, db); got != 1 {
		t.Fatalf("account count = %d, want 1", got)
	}
}

func TestAccountRepository_Get(t *testing.T) {
	db := openTestDB(t)
	repo := accountrepo.NewAccountRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, &model.AccountEntity{
		FullName:     "Maria Silva",
		BirthDate:    "1999-04-12",
		Email:        "maria@example.com",
		PasswordHash: "hash-1",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := repo.Get(ctx, &model.AccountFilter{Email: "maria@example.com"})
	if err != nil {
		t.Fatalf("Get() by email error = %v", err)
	}
	if got == nil || got.ID != created.ID || got.FullName != "Maria Silva" {
		t.Fatalf("Get() by email = %+v, want entity with id %d", got, created.ID)
	}

	got, err = repo.Get(ctx, &model.AccountFilter{FullName: "Maria Silva", Email: "maria@example.com"})
	if err != nil {
		t.Fatalf("Get() by name+email error = %v", err)
	}
	if got == nil {
		t.Fatalf("Get() by name+email returned nil for existing account")
	}

	// name matches a different account's email: no row
	got, err = repo.Get(ctx, &model.AccountFilter{FullName: "Other Person", Email: "maria@example.com"})
	if err != nil {
		t.Fatalf("Get() mismatch error = %v", err)
	}
	if got != nil {
		t.Fatalf("Get() mismatch = %+v, want nil", got)
	}
}

func TestAccountRepository_DeleteByEmail(t *testing.T) {
	db := openTestDB(t)
	repo := accountrepo.NewAccountRepository(db)
	ctx := context.Background()

	if _, err := repo.Create(ctx, &model.AccountEntity{
		FullName:     "Maria Silva",
		BirthDate:    "1999-04-12",
		Email:        "maria@example.com",
		PasswordHash: "hash-1",
	}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	deleted, err := repo.DeleteByEmail(ctx, "maria@example.com")
	if err != nil {
		t.Fatalf("DeleteByEmail() error = %v", err)
	}
	if deleted != 1 {
		t.Fatalf("DeleteByEmail() = %d rows, want 1", deleted)
	}

	got, err := repo.Get(ctx, &model.AccountFilter{Email: "maria@example.com"})
	if err != nil {
		t.Fatalf("Get() after delete error = %v", err)
	}
	if got != nil {
		t.Fatalf("Get() after delete = %+v, want nil", got)
	}

	deleted, err = repo.DeleteByEmail(ctx, "maria@example.com")
	if err != nil {
		t.Fatalf("DeleteByEmail() second call error = %v", err)
	}
	if deleted != 0 {
		t.Fatalf("DeleteByEmail() second call = %d rows, want 0", deleted)
	}
}
