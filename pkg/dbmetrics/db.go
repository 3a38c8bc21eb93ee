// Package dbmetrics wraps database/sql with prometheus instrumentation and
// carries active transactions through context so repositories can join a
// transaction without knowing about it.
package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/haeum-studio/booking-service/pkg/metrics"
)

// DBExecutor is the query surface shared by *sql.DB, *sql.Tx and *DB
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TxExecutor is a transaction that can also run queries
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

// DB instruments *sql.DB query methods with latency and status metrics
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
}

// Wrap instruments db with the given collectors
func Wrap(db *sql.DB, m *metrics.Metrics) *DB {
	return &DB{db: db, metrics: m}
}

// WrapWithDefault instruments db and starts a goroutine publishing connection
// pool stats every 15 seconds until stopCh is closed.
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, poolName string, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, m)

	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				stats := db.Stats()
				m.DBConnectionsOpen.WithLabelValues(poolName).Set(float64(stats.OpenConnections))
				m.DBConnectionsInUse.WithLabelValues(poolName).Set(float64(stats.InUse))
				m.DBConnectionsIdle.WithLabelValues(poolName).Set(float64(stats.Idle))
			}
		}
	}()

	return wrapped
}

// ExecContext runs an instrumented Exec
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	result, err := d.db.ExecContext(ctx, query, args...)
	d.observe("exec", start, err)
	return result, err
}

// QueryContext runs an instrumented Query
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observe("query", start, err)
	return rows, err
}

// QueryRowContext runs an instrumented QueryRow.
// Errors surface at Scan time, so only latency is recorded here.
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.observe("query_row", start, nil)
	return row
}

// BeginTx starts a transaction on the underlying pool
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	return d.db.BeginTx(ctx, opts)
}

func (d *DB) observe(operation string, start time.Time, err error) {
	if d.metrics == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	d.metrics.ObserveDBQuery(operation, status, time.Since(start))
}

type txContextKey struct{}

// WithTx returns a context carrying tx for nested repository calls
func WithTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txContextKey{}, tx)
}

// GetExecutor returns the transaction carried by ctx, or fallback when
// no transaction is active.
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txContextKey{}).(TxExecutor); ok {
		return tx
	}
	return fallback
}

// IsInTransaction reports whether ctx carries an active transaction
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txContextKey{}).(TxExecutor)
	return ok
}
