package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	// Registers the pure-Go "sqlite" database/sql driver used below.
	_ "modernc.org/sqlite"
)

// Connect opens the process-wide storage handle. A postgres:// DSN selects
// PostgreSQL; anything else is treated as an embedded SQLite file path.
// SQLite connections are opened with foreign-key enforcement turned on.
func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using embedded SQLite:", dsn)

	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        sqliteDSN(dsn),
		}),
		&gorm.Config{},
	)
	if err != nil {
		return nil, err
	}

	if strings.Contains(dsn, ":memory:") {
		// Every pooled connection would otherwise get its own empty
		// in-memory database.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

func sqliteDSN(dsn string) string {
	const fkPragma = "_pragma=foreign_keys(1)"
	if strings.Contains(dsn, "_pragma=foreign_keys") {
		return dsn
	}
	if dsn == ":memory:" {
		return "file::memory:?" + fkPragma
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + fkPragma
}
