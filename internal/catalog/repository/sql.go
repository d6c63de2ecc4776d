package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"library-management/backend/internal/catalog/domain"
)

// Dialect holds the slot queries for one SQL engine.
type Dialect struct {
	Name   string
	load   string
	upsert string
}

var (
	// Postgres stores the document as JSONB; the table comes from internal/db/migrations.
	Postgres = Dialect{
		Name: "postgres",
		load: `SELECT document::text FROM catalog_documents WHERE key = $1`,
		upsert: `INSERT INTO catalog_documents (key, document, updated_at)
			VALUES ($1, $2::jsonb, now())
			ON CONFLICT (key) DO UPDATE
			SET document = EXCLUDED.document,
				updated_at = EXCLUDED.updated_at`,
	}
	// SQLite stores the document as TEXT; the table is created by db.OpenSQLite.
	SQLite = Dialect{
		Name: "sqlite",
		load: `SELECT document FROM catalog_documents WHERE key = ?`,
		upsert: `INSERT INTO catalog_documents (key, document, updated_at)
			VALUES (?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT (key) DO UPDATE
			SET document = excluded.document,
				updated_at = excluded.updated_at`,
	}
)

// SQLRepository keeps the catalog in one row of catalog_documents, keyed by slot name.
type SQLRepository struct {
	db      *sql.DB
	key     string
	dialect Dialect
}

// NewSQLRepository returns a repository that reads and writes the row for key.
func NewSQLRepository(db *sql.DB, dialect Dialect, key string) *SQLRepository {
	return &SQLRepository{db: db, key: key, dialect: dialect}
}

// Load returns the catalog stored under the slot key, or nil if the row does not exist.
// It returns an error only for database or decode failures, not for a missing row.
func (r *SQLRepository) Load(ctx context.Context) (*domain.Catalog, error) {
	var doc string
	err := r.db.QueryRowContext(ctx, r.dialect.load, r.key).Scan(&doc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: load catalog: %w", r.dialect.Name, err)
	}
	return decode([]byte(doc))
}

// Save upserts the document under the slot key.
func (r *SQLRepository) Save(ctx context.Context, c *domain.Catalog) error {
	b, err := encode(c)
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, r.dialect.upsert, r.key, string(b)); err != nil {
		return fmt.Errorf("%s: save catalog: %w", r.dialect.Name, err)
	}
	return nil
}
