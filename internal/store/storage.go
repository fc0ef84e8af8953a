package store

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/rubenbuitrago80014213re-art/Seguimiento-Contratos-BYS/internal/contract"
)

// ErrNotFound reports an update or delete aimed at an id that is not in the
// table.
var ErrNotFound = errors.New("record not found")

type Storage struct {
	Contracts interface {
		GetAll(ctx context.Context) ([]contract.Record, error)
		GetByID(ctx context.Context, id int64) (*contract.Record, error)
		Insert(ctx context.Context, r *contract.Record) error
		Update(ctx context.Context, r *contract.Record) error
		Delete(ctx context.Context, id int64) error
	}
}

func NewStorage(db *sqlx.DB) *Storage {
	return &Storage{
		Contracts: &ContractStore{db: db},
	}
}
