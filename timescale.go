package basia

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	_ "github.com/lib/pq"
)

func NewTimescaleStorage(dbUrl string) (*timescaleStorage, error) {

	const version = "v1"

	db, err := sql.Open("postgres", dbUrl)
	if err != nil {
		return nil, err
	}

	tableName := "basia_checks_" + version

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	var tableExists = func() (bool, error) {

		query := fmt.Sprintf("select exists (select 1 from %s)", tableName)

		_, err := db.QueryContext(ctx, query)
		if err == nil || strings.Contains(err.Error(), "does not exist") {
			return err == nil, nil
		}

		return false, err
	}

	var tableInit = func() error {

		query := fmt.Sprintf(`create table %s (
			time timestamp with time zone not null,
			run_id text not null,
			label text not null,
			variant text not null,
			status text not null,
			elapsed_ms int8 not null,
			failure text,
			excerpt text
		)`, tableName)

		_, err := db.ExecContext(ctx, query)
		return err
	}

	if exists, _ := tableExists(); !exists {

		slog.Info("TIMESCALE: Setting up",
			slog.String("table", tableName))

		if err := tableInit(); err != nil {
			db.Close()
			return nil, err
		}
	}

	return &timescaleStorage{
		db:      db,
		version: version,
		table:   tableName,
	}, nil
}

type timescaleStorage struct {
	db      *sql.DB
	version string
	table   string
}

func (this *timescaleStorage) Type() string {
	return "timescale"
}

func (this *timescaleStorage) Version() string {
	return this.version
}

func (this *timescaleStorage) Close() error {
	return this.db.Close()
}

func (this *timescaleStorage) Ping() error {
	return this.db.Ping()
}

func (this *timescaleStorage) WriteResult(ctx context.Context, entry ResultEntry) error {

	if entry.Label == "" {
		return errors.New("empty entry label")
	}

	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	var failure *string
	if entry.Failure != FailureNone {
		val := entry.Failure.String()
		failure = &val
	}

	var excerpt *string
	if entry.Excerpt != "" {
		excerpt = &entry.Excerpt
	}

	query := fmt.Sprintf(`insert into %s
		(time, run_id, label, variant, status, elapsed_ms, failure, excerpt)
		values ($1, $2, $3, $4, $5, $6, $7, $8)`, this.table)

	_, err := this.db.ExecContext(ctx, query,
		entry.Timestamp,
		entry.RunID,
		entry.Label,
		entry.Variant.String(),
		entry.Status.String(),
		entry.Elapsed.Milliseconds(),
		failure,
		excerpt)

	return err
}
