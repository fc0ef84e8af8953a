package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/rubenbuitrago80014213re-art/Seguimiento-Contratos-BYS/internal/contract"
)

// TableName is the single table holding contract records.
const TableName = "contratos"

type ContractStore struct {
	db *sqlx.DB
}

// Statements are derived from the field catalog so the schema, inserts and
// updates can never drift apart.
var (
	createTableQuery = func() string {
		cols := make([]string, 0, len(contract.Fields))
		for _, c := range contract.Columns() {
			cols = append(cols, fmt.Sprintf("%s TEXT NOT NULL DEFAULT ''", c))
		}
		return fmt.Sprintf(
			"CREATE TABLE IF NOT EXISTS %s (id INTEGER PRIMARY KEY AUTOINCREMENT, %s)",
			TableName, strings.Join(cols, ", "),
		)
	}()

	insertQuery = func() string {
		cols := contract.Columns()
		params := make([]string, len(cols))
		for i, c := range cols {
			params[i] = ":" + c
		}
		return fmt.Sprintf(
			"INSERT INTO %s (%s) VALUES (%s)",
			TableName, strings.Join(cols, ", "), strings.Join(params, ", "),
		)
	}()

	updateQuery = func() string {
		assignments := make([]string, 0, len(contract.Fields))
		for _, c := range contract.Columns() {
			assignments = append(assignments, fmt.Sprintf("%s = :%s", c, c))
		}
		return fmt.Sprintf(
			"UPDATE %s SET %s WHERE id = :id",
			TableName, strings.Join(assignments, ", "),
		)
	}()
)

// EnsureSchema creates the contracts table if it does not exist yet. It is
// safe to call on every startup; the schema is never migrated afterwards.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, createTableQuery); err != nil {
		return fmt.Errorf("failed to create %s table: %w", TableName, err)
	}
	return nil
}

func (cs *ContractStore) GetAll(ctx context.Context) ([]contract.Record, error) {
	records := []contract.Record{}
	query := fmt.Sprintf("SELECT * FROM %s ORDER BY id", TableName)
	if err := cs.db.SelectContext(ctx, &records, query); err != nil {
		return nil, fmt.Errorf("failed to scan contracts table: %w", err)
	}
	return records, nil
}

func (cs *ContractStore) GetByID(ctx context.Context, id int64) (*contract.Record, error) {
	var r contract.Record
	query := fmt.Sprintf("SELECT * FROM %s WHERE id = ?", TableName)
	if err := cs.db.GetContext(ctx, &r, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch contract %d: %w", id, err)
	}
	return &r, nil
}

// Insert stores a new record and fills in the assigned id.
func (cs *ContractStore) Insert(ctx context.Context, r *contract.Record) error {
	result, err := cs.db.NamedExecContext(ctx, insertQuery, r)
	if err != nil {
		return fmt.Errorf("failed to insert contract: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read assigned id: %w", err)
	}
	r.ID = id
	return nil
}

// Update rewrites every field of an existing record. There is no
// partial-field update.
func (cs *ContractStore) Update(ctx context.Context, r *contract.Record) error {
	result, err := cs.db.NamedExecContext(ctx, updateQuery, r)
	if err != nil {
		return fmt.Errorf("failed to update contract %d: %w", r.ID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (cs *ContractStore) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = ?", TableName)
	result, err := cs.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete contract %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
