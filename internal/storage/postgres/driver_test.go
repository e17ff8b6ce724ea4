package postgres

import (
	"database/sql"
	"database/sql/driver"
	"errors"
)

// errResultDriver accepts every statement and fails to report affected rows.
type errResultDriver struct{}

var errRowsAffected = errors.New("rows affected unavailable")

func init() {
	sql.Register("postgres-err-result", errResultDriver{})
}

func (errResultDriver) Open(string) (driver.Conn, error) { return errResultConn{}, nil }

type errResultConn struct{}

func (errResultConn) Prepare(string) (driver.Stmt, error) { return errResultStmt{}, nil }
func (errResultConn) Close() error                        { return nil }
func (errResultConn) Begin() (driver.Tx, error)           { return nil, errors.New("not supported") }

type errResultStmt struct{}

func (errResultStmt) Close() error                               { return nil }
func (errResultStmt) NumInput() int                              { return -1 }
func (errResultStmt) Exec([]driver.Value) (driver.Result, error) { return errResult{}, nil }
func (errResultStmt) Query([]driver.Value) (driver.Rows, error) {
	return nil, errors.New("not supported")
}

type errResult struct{}

func (errResult) LastInsertId() (int64, error) { return 0, errors.New("not supported") }
func (errResult) RowsAffected() (int64, error) { return 0, errRowsAffected }
