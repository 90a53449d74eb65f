/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package sql

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/hashicorp/go-uuid"
	"github.com/hyperledger-labs/fabric-asset-registry/asset/services/storage/selector"
	"github.com/hyperledger/fabric-chaincode-go/v2/shim"
	"github.com/pkg/errors"
)

// Store keeps the current state and the full history of every key in two SQL tables.
// Each write runs in its own database transaction, under a fresh transaction id.
type Store struct {
	db    *sql.DB
	table tableNames
}

// Open opens the database described by opts and returns a Store on top of it
func Open(opts Opts) (*Store, error) {
	db, err := OpenDB(opts)
	if err != nil {
		return nil, err
	}
	s, err := NewStore(db, opts.TablePrefix, !opts.SkipCreateTable)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func NewStore(db *sql.DB, tablePrefix string, createSchema bool) (*Store, error) {
	tables, err := getTableNames(tablePrefix)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get table names")
	}
	s := &Store{db: db, table: tables}
	if createSchema {
		if err := initSchema(db, s.GetSchema()...); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Store) GetState(key string) ([]byte, error) {
	query := fmt.Sprintf("SELECT payload FROM %s WHERE id = $1", s.table.State)
	logger.Debug(query, key)

	var value []byte
	err := s.db.QueryRow(query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed getting state [%s]", key)
	}
	return value, nil
}

func (s *Store) PutState(key string, value []byte) error {
	if len(key) == 0 {
		return errors.New("key must not be an empty string")
	}
	if value == nil {
		value = []byte{}
	}
	return s.write(key, func(tx *sql.Tx) (bool, error) {
		query := fmt.Sprintf("INSERT INTO %s (id, payload) VALUES ($1, $2) ON CONFLICT (id) DO UPDATE SET payload = excluded.payload", s.table.State)
		logger.Debug(query, key)
		if _, err := tx.Exec(query, key, value); err != nil {
			return false, errors.Wrapf(err, "failed putting state [%s]", key)
		}
		return false, nil
	}, value, false)
}

func (s *Store) DelState(key string) error {
	return s.write(key, func(tx *sql.Tx) (bool, error) {
		query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", s.table.State)
		logger.Debug(query, key)
		res, err := tx.Exec(query, key)
		if err != nil {
			return false, errors.Wrapf(err, "failed deleting state [%s]", key)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return false, errors.Wrapf(err, "failed deleting state [%s]", key)
		}
		return n == 0, nil
	}, nil, true)
}

// write runs update and appends a new version of key to the history, in one transaction.
// If update reports that nothing changed, the transaction is rolled back.
func (s *Store) write(key string, update func(tx *sql.Tx) (bool, error), value []byte, isDelete bool) (err error) {
	txID, err := uuid.GenerateUUID()
	if err != nil {
		return errors.Wrap(err, "failed generating transaction id")
	}
	tx, err := s.db.Begin()
	if err != nil {
		return errors.Wrap(err, "failed starting transaction")
	}
	commit := false
	defer func() {
		if commit {
			return
		}
		if rerr := tx.Rollback(); rerr != nil {
			logger.Errorf("[%s] failed to rollback [%s]", txID, rerr)
		}
	}()

	unchanged, err := update(tx)
	if err != nil || unchanged {
		return err
	}

	query := fmt.Sprintf("SELECT COALESCE(MAX(version), 0) FROM %s WHERE id = $1", s.table.History)
	logger.Debug(query, key)
	var version int64
	if err := tx.QueryRow(query, key).Scan(&version); err != nil {
		return errors.Wrapf(err, "failed getting version of [%s]", key)
	}

	query = fmt.Sprintf("INSERT INTO %s (id, version, tx_id, payload, is_delete, stored_at) VALUES ($1, $2, $3, $4, $5, $6)", s.table.History)
	logger.Debug(query, key, version+1, txID)
	if _, err := tx.Exec(query, key, version+1, txID, value, isDelete, time.Now().UnixNano()); err != nil {
		return errors.Wrapf(err, "failed appending history of [%s]", key)
	}
	if err := tx.Commit(); err != nil {
		return errors.Wrapf(err, "failed committing [%s]", txID)
	}
	commit = true
	return nil
}

// GetHistoryForKey returns the versions of key from the newest to the oldest, as Fabric does
func (s *Store) GetHistoryForKey(key string) (shim.HistoryQueryIteratorInterface, error) {
	query := fmt.Sprintf("SELECT tx_id, payload, is_delete, stored_at FROM %s WHERE id = $1 ORDER BY version DESC", s.table.History)
	logger.Debug(query, key)
	rows, err := s.db.Query(query, key)
	if err != nil {
		return nil, errors.Wrapf(err, "failed querying history of [%s]", key)
	}
	return &historyIterator{rows: rows}, nil
}

// GetQueryResult returns the entries matching the given rich query in key order.
// The selector is evaluated on the stored values while iterating.
func (s *Store) GetQueryResult(q string) (shim.StateQueryIteratorInterface, error) {
	sel, err := selector.Parse(q)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf("SELECT id, payload FROM %s ORDER BY id", s.table.State)
	logger.Debug(query)
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, errors.Wrap(err, "failed querying state")
	}
	return &stateIterator{rows: rows, selector: sel}, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) GetSchema() []string {
	return []string{
		fmt.Sprintf(`
		-- State
		CREATE TABLE IF NOT EXISTS %s (
			id TEXT NOT NULL PRIMARY KEY,
			payload BYTEA NOT NULL
		);`,
			s.table.State,
		),
		fmt.Sprintf(`
		-- History
		CREATE TABLE IF NOT EXISTS %s (
			id TEXT NOT NULL,
			version BIGINT NOT NULL,
			tx_id TEXT NOT NULL,
			payload BYTEA,
			is_delete BOOLEAN NOT NULL,
			stored_at BIGINT NOT NULL,
			PRIMARY KEY (id, version)
		);`,
			s.table.History,
		),
	}
}
