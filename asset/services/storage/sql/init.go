/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package sql

import (
	"database/sql"
	"fmt"
	"regexp"
	"runtime/debug"
	"strings"
	"time"

	"github.com/hyperledger-labs/fabric-asset-registry/asset/services/logging"
	"github.com/pkg/errors"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

var logger = logging.MustGetLogger("storage", "sql")

const (
	// SQLite is the driver name registered by modernc.org/sqlite
	SQLite = "sqlite"
	// Postgres is the driver name registered by github.com/jackc/pgx/v5/stdlib
	Postgres = "pgx"
)

var tablePrefixRegexp = regexp.MustCompile("^[a-zA-Z_]+$")

// Opts configures how a Store opens its database
type Opts struct {
	Driver          string
	DataSource      string
	TablePrefix     string
	MaxOpenConns    int
	MaxIdleConns    int
	MaxIdleTime     time.Duration
	SkipCreateTable bool
}

type tableNames struct {
	State   string
	History string
}

func getTableNames(prefix string) (tableNames, error) {
	if prefix != "" {
		if !tablePrefixRegexp.MatchString(prefix) {
			return tableNames{}, errors.New("illegal character in table prefix, only letters and underscores allowed")
		}
		prefix = strings.ToLower(prefix) + "_"
	}
	return tableNames{
		State:   fmt.Sprintf("%sstate", prefix),
		History: fmt.Sprintf("%shistory", prefix),
	}, nil
}

// OpenDB opens the database described by opts and applies the pool settings
func OpenDB(opts Opts) (*sql.DB, error) {
	switch opts.Driver {
	case SQLite, Postgres:
	default:
		return nil, errors.Errorf("unsupported driver [%s]", opts.Driver)
	}
	if len(opts.DataSource) == 0 {
		return nil, errors.New("data source must be set")
	}
	db, err := sql.Open(opts.Driver, opts.DataSource)
	if err != nil {
		return nil, errors.Wrapf(err, "failed opening [%s] database", opts.Driver)
	}
	db.SetMaxOpenConns(opts.MaxOpenConns)
	db.SetMaxIdleConns(opts.MaxIdleConns)
	db.SetConnMaxIdleTime(opts.MaxIdleTime)
	if err := db.Ping(); err != nil {
		return nil, errors.Wrapf(err, "failed connecting to [%s] database", opts.Driver)
	}
	return db, nil
}

func initSchema(db *sql.DB, schemas ...string) (err error) {
	logger.Info("creating tables")
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil && tx != nil {
			if err := tx.Rollback(); err != nil {
				logger.Errorf("failed to rollback [%s][%s]", err, debug.Stack())
			}
		}
	}()
	for _, schema := range schemas {
		logger.Debug(schema)
		if _, err = tx.Exec(schema); err != nil {
			return errors.Wrap(err, "error creating schema")
		}
	}
	return tx.Commit()
}
