package dbclient

import (
	"fmt"
	"sync"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

var bindOnce sync.Once

// Connect opens the file-backed sqlite store at the given path and verifies
// connectivity. The modernc driver is pure Go and registers as "sqlite".
func Connect(path string) (*sqlx.DB, error) {
	bindOnce.Do(func() {
		sqlx.BindDriver("sqlite", sqlx.QUESTION)
	})

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)
	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to open sqlite store at %s: %w", path, err)
	}

	return db, nil
}
