package database

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"capquote/internal/config"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

// OpenSQLite opens (creating the directory if needed) a SQLite database in WAL mode.
func OpenSQLite(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}
	log.Printf("[database][sqlite] opened path=%s", path)
	return db, nil
}

// MySQLDSN builds the go-sql-driver DSN, e.g. root:pwd@tcp(localhost:3306)/capquote?parseTime=true.
func MySQLDSN(c config.MySQLConfig) string {
	return fmt.Sprintf("%s:%s@%s/%s?parseTime=true", c.User, c.Password, c.Host, c.Database)
}

func OpenMySQL(c config.MySQLConfig) (*sql.DB, error) {
	db, err := sql.Open("mysql", MySQLDSN(c))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to mysql: %w", err)
	}
	log.Printf("[database][mysql] connected host=%s database=%s", c.Host, c.Database)
	return db, nil
}
