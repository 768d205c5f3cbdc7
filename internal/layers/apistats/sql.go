package apistats

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// DefaultTable is the table SQL sinks write to when none is configured.
const DefaultTable = "cl_api_stats"

// Dialect selects placeholder syntax.
type Dialect int

const (
	// SQLite uses ? placeholders.
	SQLite Dialect = iota
	// Postgres uses $n placeholders.
	Postgres
)

// ErrUnknownDriver is returned by OpenSQLSink for driver names it has no
// dialect for.
var ErrUnknownDriver = errors.New("apistats: unknown sql driver")

// DialectFor maps a database/sql driver name to its dialect.
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case "sqlite3":
		return SQLite, nil
	case "pgx", "postgres":
		return Postgres, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
}

func (d Dialect) placeholder(n int) string {
	if d == Postgres {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

// SQLSink stores snapshots in a table keyed by implementation and entry point.
type SQLSink struct {
	db      *sql.DB
	dialect Dialect
	table   string
}

// OpenSQLSink opens a database with one of the registered drivers
// ("sqlite3", "pgx" or "postgres") and returns a sink over it.
func OpenSQLSink(driver, dsn, table string) (*SQLSink, error) {
	dialect, err := DialectFor(driver)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open stats database: %w", err)
	}
	if dialect == SQLite {
		// every connection to ":memory:" is a separate database
		db.SetMaxOpenConns(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to stats database: %w", err)
	}

	return NewSQLSink(db, dialect, table), nil
}

// NewSQLSink wraps an existing connection pool.
func NewSQLSink(db *sql.DB, dialect Dialect, table string) *SQLSink {
	if table == "" {
		table = DefaultTable
	}
	return &SQLSink{db: db, dialect: dialect, table: table}
}

// EnsureSchema creates the stats table if it does not exist.
func (s *SQLSink) EnsureSchema(ctx context.Context) error {
	query := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	implementation TEXT NOT NULL,
	entry_point TEXT NOT NULL,
	calls BIGINT NOT NULL,
	duration_ns BIGINT NOT NULL,
	updated_at TIMESTAMP NOT NULL,
	PRIMARY KEY (implementation, entry_point)
)`, pq.QuoteIdentifier(s.table))

	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create stats table: %w", err)
	}
	return nil
}

func (s *SQLSink) upsertQuery() string {
	ph := make([]string, 5)
	for i := range ph {
		ph[i] = s.dialect.placeholder(i + 1)
	}
	return fmt.Sprintf(
		"INSERT INTO %s (implementation, entry_point, calls, duration_ns, updated_at) VALUES (%s) "+
			"ON CONFLICT (implementation, entry_point) DO UPDATE SET "+
			"calls = excluded.calls, duration_ns = excluded.duration_ns, updated_at = excluded.updated_at",
		pq.QuoteIdentifier(s.table), strings.Join(ph, ", "))
}

// Write implements Sink. All rows are written in one transaction.
func (s *SQLSink) Write(ctx context.Context, stats []Stat) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	query := s.upsertQuery()
	now := time.Now().UTC()
	for _, st := range stats {
		if _, err = tx.ExecContext(ctx, query,
			st.Implementation, st.EntryPoint, int64(st.Calls), int64(st.Duration), now); err != nil {
			return fmt.Errorf("failed to write %s/%s: %w", st.Implementation, st.EntryPoint, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit stats: %w", err)
	}
	return nil
}

// Read returns the stored rows in snapshot order.
func (s *SQLSink) Read(ctx context.Context) ([]Stat, error) {
	query := fmt.Sprintf(
		"SELECT implementation, entry_point, calls, duration_ns FROM %s ORDER BY implementation, entry_point",
		pq.QuoteIdentifier(s.table))

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query stats: %w", err)
	}
	defer rows.Close()

	var stats []Stat
	for rows.Next() {
		var (
			st    Stat
			calls int64
			nanos int64
		)
		if err := rows.Scan(&st.Implementation, &st.EntryPoint, &calls, &nanos); err != nil {
			return nil, fmt.Errorf("failed to scan stats row: %w", err)
		}
		st.Calls = uint64(calls)
		st.Duration = time.Duration(nanos)
		stats = append(stats, st)
	}
	return stats, rows.Err()
}

// Close closes the underlying database.
func (s *SQLSink) Close() error {
	return s.db.Close()
}
