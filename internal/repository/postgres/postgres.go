package postgres

import (
	"context"
	"database/sql"
	"errors"

	"timing-rental-backend/internal/domain"
	"timing-rental-backend/internal/logger"
	"timing-rental-backend/internal/repository"

	"github.com/lib/pq"
)

// DBTX is the subset of database/sql methods the repositories use. Both
// *sql.DB and *sql.Tx satisfy it, so the same repository code serves plain
// calls and calls inside a unit of work.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db   *sql.DB // nil when the store is bound to a transaction
	dbtx DBTX

	users        repository.UserRepository
	clients      repository.ClientRepository
	devices      repository.DeviceRepository
	products     repository.ProductRepository
	productUnits repository.ProductUnitRepository
	chipTypes    repository.ChipTypeRepository
	rentals      repository.RentalRepository
}

func NewStore(db *sql.DB) *Store {
	s := newStore(db)
	s.db = db
	return s
}

func newStore(dbtx DBTX) *Store {
	return &Store{
		dbtx:         dbtx,
		users:        NewUserRepository(dbtx),
		clients:      NewClientRepository(dbtx),
		devices:      NewDeviceRepository(dbtx),
		products:     NewProductRepository(dbtx),
		productUnits: NewProductUnitRepository(dbtx),
		chipTypes:    NewChipTypeRepository(dbtx),
		rentals:      NewRentalRepository(dbtx),
	}
}

func (s *Store) Users() repository.UserRepository               { return s.users }
func (s *Store) Clients() repository.ClientRepository           { return s.clients }
func (s *Store) Devices() repository.DeviceRepository           { return s.devices }
func (s *Store) Products() repository.ProductRepository         { return s.products }
func (s *Store) ProductUnits() repository.ProductUnitRepository { return s.productUnits }
func (s *Store) ChipTypes() repository.ChipTypeRepository       { return s.chipTypes }
func (s *Store) Rentals() repository.RentalRepository           { return s.rentals }

// WithinTx runs fn against a registry bound to a single serializable
// transaction. A store already bound to a transaction runs fn in place, so
// nested units of work join the enclosing transaction.
func (s *Store) WithinTx(ctx context.Context, fn func(repository.Registry) error) error {
	if s.db == nil {
		return fn(s)
	}

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return err
	}

	if err := fn(newStore(tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			logger.Error("Transaction rollback failed", "error", rbErr)
		}
		return mapPQError(err)
	}

	if err := tx.Commit(); err != nil {
		return mapPQError(err)
	}
	return nil
}

// mapPQError translates storage-level failures the caller is expected to act
// on. Serialization failures surface as a retryable conflict rather than
// being retried internally: a retry would need to re-validate availability.
func mapPQError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "40001": // serialization_failure
			return domain.ErrSerializationConflict
		case "40P01": // deadlock_detected
			return domain.ErrSerializationConflict
		}
	}
	return err
}

// isUniqueViolation reports whether err is a violation of the named unique
// constraint. The unique index is the authoritative race guard; service-level
// pre-checks only produce friendlier ordering of errors.
func isUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505" && pqErr.Constraint == constraint
	}
	return false
}

// int64Array adapts id slices for ANY($1) queries.
func int64Array(ids []int64) any {
	return pq.Array(ids)
}
