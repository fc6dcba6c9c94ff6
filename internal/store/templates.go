package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Template source values.
const (
	SourceManual   = "manual"
	SourceAI       = "ai"
	SourceDocument = "document"
)

// Template is a user-authored (or AI/document-generated) string template:
// section/field declarations plus an HTML body with {{field_id}} placeholders.
// A placeholder without a matching field declaration is legal; the compiler
// treats it as a missing value.
type Template struct {
	ID           string    `db:"id"`
	OwnerID      string    `db:"owner_id"`
	Title        string    `db:"title"`
	Description  string    `db:"description"`
	Sections     Sections  `db:"sections"`
	HTMLTemplate string    `db:"html_template"`
	Source       string    `db:"source"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// Fields flattens the template's section declarations into a single list.
func (t *Template) Fields() []Field {
	var fields []Field
	for _, s := range t.Sections {
		fields = append(fields, s.Fields...)
	}
	return fields
}

type TemplateStore struct {
	db *sqlx.DB
}

func NewTemplateStore(db *sqlx.DB) *TemplateStore {
	return &TemplateStore{db: db}
}

func (s *TemplateStore) q(query string) string { return s.db.Rebind(query) }

func (s *TemplateStore) Create(ctx context.Context, ownerID, title, description string, sections []Section, htmlTemplate, source string) (*Template, error) {
	id := uuid.New().String()
	now := time.Now().UTC()
	if source == "" {
		source = SourceManual
	}
	_, err := s.db.ExecContext(ctx, s.q(`
		INSERT INTO templates (id, owner_id, title, description, sections, html_template, source, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`), id, ownerID, title, description, Sections(sections), htmlTemplate, source, now, now)
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *TemplateStore) GetByID(ctx context.Context, id string) (*Template, error) {
	var t Template
	err := s.db.GetContext(ctx, &t, s.q(`SELECT * FROM templates WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *TemplateStore) ListByOwner(ctx context.Context, ownerID string) ([]*Template, error) {
	var templates []*Template
	err := s.db.SelectContext(ctx, &templates, s.q(`
		SELECT * FROM templates WHERE owner_id = ? ORDER BY updated_at DESC
	`), ownerID)
	if err != nil {
		return nil, err
	}
	return templates, nil
}

// Update replaces the editable parts of a template. Last write wins; there is
// no version check.
func (s *TemplateStore) Update(ctx context.Context, id, title, description string, sections []Section, htmlTemplate string) (*Template, error) {
	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx, s.q(`
		UPDATE templates SET title = ?, description = ?, sections = ?, html_template = ?, updated_at = ?
		WHERE id = ?
	`), title, description, Sections(sections), htmlTemplate, now, id)
	if err != nil {
		return nil, err
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return nil, ErrNotFound
	}
	return s.GetByID(ctx, id)
}

func (s *TemplateStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, s.q(`DELETE FROM templates WHERE id = ?`), id)
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
