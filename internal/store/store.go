package store

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("not found")
)

// TemplateStoreIface exposes all template data operations.
// Handlers never query the DB directly; all access goes through this interface.
type TemplateStoreIface interface {
	Create(ctx context.Context, ownerID, title, description string, sections []Section, htmlTemplate, source string) (*Template, error)
	GetByID(ctx context.Context, id string) (*Template, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*Template, error)
	Update(ctx context.Context, id, title, description string, sections []Section, htmlTemplate string) (*Template, error)
	Delete(ctx context.Context, id string) error
}

// ContractStoreIface exposes all contract data operations.
type ContractStoreIface interface {
	Create(ctx context.Context, ownerID, title string, sections []ContractSection, variables map[string]string) (*Contract, error)
	GetByID(ctx context.Context, id string) (*Contract, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*Contract, error)
	Update(ctx context.Context, id, title string, sections []ContractSection, variables map[string]string) (*Contract, error)
	Delete(ctx context.Context, id string) error
}
