package repository

import (
	"database/sql"

	"github.com/mattn/go-sqlite3"
	"golang.org/x/text/cases"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// driverName is mattn/go-sqlite3 with the journal's SQL functions attached
// to every connection.
const driverName = "sqlite3_journal"

func init() {
	sql.Register(driverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc("fold", foldText, true)
		},
	})
}

// foldText is the Unicode case fold used by search. SQLite's LOWER only
// folds ASCII.
func foldText(s string) string {
	return cases.Fold().String(s)
}

func dialector(dsn string) gorm.Dialector {
	return sqlite.New(sqlite.Config{DriverName: driverName, DSN: dsn})
}
