package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Contract is an AI-drafted or manually composed contract document. Section
// content keeps its [variable] bracket placeholders in storage so edits to
// Variables propagate on every render.
type Contract struct {
	ID        string           `db:"id"`
	OwnerID   string           `db:"owner_id"`
	Title     string           `db:"title"`
	Sections  ContractSections `db:"sections"`
	Variables Variables        `db:"variables"`
	CreatedAt time.Time        `db:"created_at"`
	UpdatedAt time.Time        `db:"updated_at"`
}

type ContractStore struct {
	db *sqlx.DB
}

func NewContractStore(db *sqlx.DB) *ContractStore {
	return &ContractStore{db: db}
}

func (s *ContractStore) q(query string) string { return s.db.Rebind(query) }

func (s *ContractStore) Create(ctx context.Context, ownerID, title string, sections []ContractSection, variables map[string]string) (*Contract, error) {
	id := uuid.New().String()
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx, s.q(`
		INSERT INTO contracts (id, owner_id, title, sections, variables, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`), id, ownerID, title, ContractSections(sections), Variables(variables), now, now)
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *ContractStore) GetByID(ctx context.Context, id string) (*Contract, error) {
	var c Contract
	err := s.db.GetContext(ctx, &c, s.q(`SELECT * FROM contracts WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *ContractStore) ListByOwner(ctx context.Context, ownerID string) ([]*Contract, error) {
	var contracts []*Contract
	err := s.db.SelectContext(ctx, &contracts, s.q(`
		SELECT * FROM contracts WHERE owner_id = ? ORDER BY updated_at DESC
	`), ownerID)
	if err != nil {
		return nil, err
	}
	return contracts, nil
}

// Update replaces a contract's title, sections, and variables. Last write wins.
func (s *ContractStore) Update(ctx context.Context, id, title string, sections []ContractSection, variables map[string]string) (*Contract, error) {
	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx, s.q(`
		UPDATE contracts SET title = ?, sections = ?, variables = ?, updated_at = ?
		WHERE id = ?
	`), title, ContractSections(sections), Variables(variables), now, id)
	if err != nil {
		return nil, err
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return nil, ErrNotFound
	}
	return s.GetByID(ctx, id)
}

func (s *ContractStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, s.q(`DELETE FROM contracts WHERE id = ?`), id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
