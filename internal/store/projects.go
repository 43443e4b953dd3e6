package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/supabase-community/postgrest-go"

	"aptos-hunt-backend/internal/models"
)

const projectsTable = "projects"

// ProjectStore is the record store client for the projects table. All reads
// and writes in this service go through PostgREST; the store itself owns ids
// and enforces nothing about status, so callers gate mutability before
// calling Update.
type ProjectStore struct {
	client *Client
}

func NewProjectStore(client *Client) *ProjectStore {
	return &ProjectStore{client: client}
}

// ListApproved returns approved records, newest submission first, capped at
// limit rows. Ties on submitted_at are broken by id so the order is stable.
func (s *ProjectStore) ListApproved(ctx context.Context, limit int) ([]models.Project, error) {
	const op = "list approved projects"

	data, _, err := s.client.Supabase.From(projectsTable).
		Select("*", "", false).
		Eq("status", string(models.StatusApproved)).
		Order("submitted_at", &postgrest.OrderOpts{Ascending: false}).
		Order("id", &postgrest.OrderOpts{Ascending: false}).
		Limit(limit, "").
		ExecuteWithContext(ctx)
	if err != nil {
		return nil, wrapErr(op, err)
	}

	return decodeProjects(op, data)
}

// ListByWallet returns every record submitted by the given wallet address,
// any status, newest submission first.
func (s *ProjectStore) ListByWallet(ctx context.Context, wallet string, limit int) ([]models.Project, error) {
	const op = "list wallet projects"

	data, _, err := s.client.Supabase.From(projectsTable).
		Select("*", "", false).
		Eq("wallet_address", wallet).
		Order("submitted_at", &postgrest.OrderOpts{Ascending: false}).
		Order("id", &postgrest.OrderOpts{Ascending: false}).
		Limit(limit, "").
		ExecuteWithContext(ctx)
	if err != nil {
		return nil, wrapErr(op, err)
	}

	return decodeProjects(op, data)
}

// GetBySlugOrID resolves a detail page key: the slug when one matches,
// otherwise the raw record id (records submitted before slugs existed).
// Slugs are treated as unique; the first match wins.
func (s *ProjectStore) GetBySlugOrID(ctx context.Context, key string) (*models.Project, error) {
	project, err := s.getOne(ctx, "slug", key)
	if err == nil || !errors.Is(err, ErrNotFound) {
		return project, err
	}

	id, parseErr := uuid.Parse(key)
	if parseErr != nil {
		return nil, ErrNotFound
	}
	return s.getOne(ctx, "id", id.String())
}

// GetByID fetches a single record by its opaque identifier.
func (s *ProjectStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	return s.getOne(ctx, "id", id.String())
}

func (s *ProjectStore) getOne(ctx context.Context, column, value string) (*models.Project, error) {
	op := "get project by " + column

	data, _, err := s.client.Supabase.From(projectsTable).
		Select("*", "", false).
		Eq(column, value).
		Limit(1, "").
		ExecuteWithContext(ctx)
	if err != nil {
		return nil, wrapErr(op, err)
	}

	projects, err := decodeProjects(op, data)
	if err != nil {
		return nil, err
	}
	if len(projects) == 0 {
		return nil, ErrNotFound
	}
	return &projects[0], nil
}

// SlugExists reports whether any record already carries the given slug.
func (s *ProjectStore) SlugExists(ctx context.Context, slug string) (bool, error) {
	const op = "check slug"

	data, _, err := s.client.Supabase.From(projectsTable).
		Select("id", "", false).
		Eq("slug", slug).
		Limit(1, "").
		ExecuteWithContext(ctx)
	if err != nil {
		return false, wrapErr(op, err)
	}

	var rows []struct {
		ID uuid.UUID `json:"id"`
	}
	if err := json.Unmarshal(data, &rows); err != nil {
		return false, wrapErr(op, err)
	}
	return len(rows) > 0, nil
}

// Create inserts a new record and returns it as persisted, id included.
// The whole insert fails on validation rejection by the store. Transient
// failures are retried.
func (s *ProjectStore) Create(ctx context.Context, p *models.Project) (*models.Project, error) {
	const op = "create project"

	row := map[string]interface{}{
		"slug":           p.Slug,
		"name":           p.Name,
		"tagline":        p.Tagline,
		"description":    p.Description,
		"repo_url":       p.RepoURL,
		"demo_url":       p.DemoURL,
		"social_url":     p.SocialURL,
		"wallet_address": p.WalletAddress,
		"network":        p.Network,
		"balance_apt":    p.BalanceAPT,
		"submitted_at":   p.SubmittedAt,
		"status":         string(p.Status),
	}

	var created *models.Project
	err := withRetry(ctx, func() error {
		data, _, err := s.client.Supabase.From(projectsTable).
			Insert(row, false, "", "representation", "").
			ExecuteWithContext(ctx)
		if err != nil {
			return wrapErr(op, err)
		}

		projects, err := decodeProjects(op, data)
		if err != nil {
			return err
		}
		if len(projects) == 0 {
			return wrapErr(op, fmt.Errorf("store returned no representation"))
		}
		created = &projects[0]
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// Update applies a partial-field update to one record and returns it as
// persisted. Unspecified fields are left untouched by the store. Transient
// failures are retried; the update is idempotent for a fixed field map.
func (s *ProjectStore) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*models.Project, error) {
	const op = "update project"

	var updated *models.Project
	err := withRetry(ctx, func() error {
		data, _, err := s.client.Supabase.From(projectsTable).
			Update(fields, "representation", "").
			Eq("id", id.String()).
			ExecuteWithContext(ctx)
		if err != nil {
			return wrapErr(op, err)
		}

		projects, err := decodeProjects(op, data)
		if err != nil {
			return err
		}
		if len(projects) == 0 {
			return ErrNotFound
		}
		updated = &projects[0]
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func decodeProjects(op string, data []byte) ([]models.Project, error) {
	var projects []models.Project
	if err := json.Unmarshal(data, &projects); err != nil {
		return nil, wrapErr(op, fmt.Errorf("failed to decode response: %w", err))
	}
	return projects, nil
}
