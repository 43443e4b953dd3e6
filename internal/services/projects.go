package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"aptos-hunt-backend/internal/models"
	"aptos-hunt-backend/internal/store"
)

var (
	// ErrProjectNotFound covers both genuinely absent records and records
	// owned by a different wallet, so ownership is never leaked.
	ErrProjectNotFound = errors.New("project not found")

	// ErrNotEditable is returned when a save targets a record whose status
	// is no longer Pending.
	ErrNotEditable = errors.New("project is no longer editable")
)

// RecordStore is the slice of the record store the project workflows need.
type RecordStore interface {
	ListApproved(ctx context.Context, limit int) ([]models.Project, error)
	ListByWallet(ctx context.Context, wallet string, limit int) ([]models.Project, error)
	GetBySlugOrID(ctx context.Context, key string) (*models.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, p *models.Project) (*models.Project, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*models.Project, error)
}

// BalanceReader reads an account's APT balance in octas.
type BalanceReader interface {
	AccountBalance(ctx context.Context, address string) (uint64, error)
}

// LogoStore persists project logo images.
type LogoStore interface {
	UploadLogo(wallet string, projectID uuid.UUID, filename, contentType string, data []byte) (string, error)
}

// ProjectService owns the project record workflows: public listing and
// lookup, submission, and the owner-scoped edit path. It is the only
// component that both reads and writes the record store, and the only place
// the Pending-only mutability rule is enforced.
type ProjectService struct {
	store       RecordStore
	chain       BalanceReader
	logos       LogoStore
	maxListRows int
	logger      zerolog.Logger
}

func NewProjectService(recordStore RecordStore, chain BalanceReader, logos LogoStore, maxListRows int) *ProjectService {
	return &ProjectService{
		store:       recordStore,
		chain:       chain,
		logos:       logos,
		maxListRows: maxListRows,
		logger:      log.With().Str("service", "projects").Logger(),
	}
}

// MaxListRows is the row cap applied to list queries against the store.
func (s *ProjectService) MaxListRows() int {
	return s.maxListRows
}

// ListApproved returns the public listing: approved records only, newest
// first, capped at the store query limit.
func (s *ProjectService) ListApproved(ctx context.Context) ([]models.Project, error) {
	return s.store.ListApproved(ctx, s.maxListRows)
}

// Lookup resolves a detail page key (slug or record id) to one record.
func (s *ProjectService) Lookup(ctx context.Context, key string) (*models.Project, error) {
	project, err := s.store.GetBySlugOrID(ctx, key)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return project, nil
}

// Submit creates a new record for the session wallet. The slug is derived
// from the name, the balance is snapshotted from the chain at this moment,
// and status and network are forced to Pending and Testnet. A chain read
// failure degrades to a zero snapshot rather than blocking the submission.
func (s *ProjectService) Submit(ctx context.Context, wallet string, req models.SubmitProjectRequest) (*models.Project, error) {
	slug, err := s.uniqueSlug(ctx, req.Name)
	if err != nil {
		return nil, err
	}

	var balanceAPT float64
	octas, err := s.chain.AccountBalance(ctx, wallet)
	if err != nil {
		s.logger.Warn().Err(err).Str("wallet", wallet).
			Msg("balance snapshot failed, submitting with zero balance")
	} else {
		balanceAPT = float64(octas) / models.OctasPerAPT
	}

	project := &models.Project{
		Slug:          slug,
		Name:          req.Name,
		Tagline:       req.Tagline,
		Description:   req.Description,
		RepoURL:       req.RepoURL,
		DemoURL:       req.DemoURL,
		SocialURL:     req.SocialURL,
		WalletAddress: wallet,
		Network:       models.NetworkTestnet,
		BalanceAPT:    balanceAPT,
		SubmittedAt:   time.Now().UTC(),
		Status:        models.StatusPending,
	}

	created, err := s.store.Create(ctx, project)
	if err != nil {
		return nil, fmt.Errorf("failed to submit project: %w", err)
	}

	s.logger.Info().Str("project_id", created.ID.String()).
		Str("slug", created.Slug).Str("wallet", wallet).
		Msg("project submitted")
	return created, nil
}

// uniqueSlug derives the slug and disambiguates collisions at write time by
// appending a short random suffix. An all-symbol name, which derives to an
// empty slug, gets the suffix form as well.
func (s *ProjectService) uniqueSlug(ctx context.Context, name string) (string, error) {
	slug := models.Slugify(name)
	if slug == "" {
		return suffixSlug("project"), nil
	}

	exists, err := s.store.SlugExists(ctx, slug)
	if err != nil {
		return "", fmt.Errorf("failed to check slug: %w", err)
	}
	if !exists {
		return slug, nil
	}
	return suffixSlug(slug), nil
}

func suffixSlug(base string) string {
	return base + "-" + uuid.New().String()[:6]
}

// MyProjects returns every record owned by the wallet, any status, newest
// first.
func (s *ProjectService) MyProjects(ctx context.Context, wallet string) ([]models.Project, error) {
	return s.store.ListByWallet(ctx, wallet, s.maxListRows)
}

// mutableColumns are the only record store columns a save may touch.
// Everything else (wallet, network, balance snapshot, submission time,
// status, slug, id) is fixed at creation.
var mutableColumns = map[string]bool{
	"name":        true,
	"tagline":     true,
	"description": true,
	"repo_url":    true,
	"demo_url":    true,
	"social_url":  true,
}

// SaveEdit applies an edit to one of the wallet's records and returns the
// wallet's full record set refetched from the store. The refetch is the
// synchronization point that reconciles out-of-band changes, such as a
// status transition between the client's fetch and its save. The write is
// issued only when the record is still Pending and owned by the caller.
func (s *ProjectService) SaveEdit(ctx context.Context, wallet string, id uuid.UUID, req models.UpdateProjectRequest) ([]models.Project, error) {
	if err := s.authorizeEdit(ctx, wallet, id); err != nil {
		return nil, err
	}

	fields := updateFields(req)
	if len(fields) > 0 {
		if _, err := s.store.Update(ctx, id, fields); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, ErrProjectNotFound
			}
			return nil, fmt.Errorf("failed to save project: %w", err)
		}
		s.logger.Info().Str("project_id", id.String()).Str("wallet", wallet).
			Msg("project updated")
	}

	return s.store.ListByWallet(ctx, wallet, s.maxListRows)
}

// AttachLogo stores a logo image for one of the wallet's records and
// persists its public URL. Gated like field edits: owner and Pending only.
func (s *ProjectService) AttachLogo(ctx context.Context, wallet string, id uuid.UUID, filename, contentType string, data []byte) (*models.Project, error) {
	if err := s.authorizeEdit(ctx, wallet, id); err != nil {
		return nil, err
	}

	logoURL, err := s.logos.UploadLogo(wallet, id, filename, contentType, data)
	if err != nil {
		return nil, fmt.Errorf("failed to store logo: %w", err)
	}

	updated, err := s.store.Update(ctx, id, map[string]interface{}{"logo_url": logoURL})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to save logo url: %w", err)
	}

	s.logger.Info().Str("project_id", id.String()).Str("wallet", wallet).
		Msg("project logo updated")
	return updated, nil
}

func (s *ProjectService) authorizeEdit(ctx context.Context, wallet string, id uuid.UUID) error {
	current, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrProjectNotFound
		}
		return err
	}
	if current.WalletAddress != wallet {
		return ErrProjectNotFound
	}
	if !current.Editable() {
		return ErrNotEditable
	}
	return nil
}

func updateFields(req models.UpdateProjectRequest) map[string]interface{} {
	fields := make(map[string]interface{})
	set := func(column string, value *string) {
		if value != nil && mutableColumns[column] {
			fields[column] = *value
		}
	}
	set("name", req.Name)
	set("tagline", req.Tagline)
	set("description", req.Description)
	set("repo_url", req.RepoURL)
	set("demo_url", req.DemoURL)
	set("social_url", req.SocialURL)
	return fields
}

// BalanceAPT reads the wallet's current balance and converts octas to APT.
func (s *ProjectService) BalanceAPT(ctx context.Context, wallet string) (float64, error) {
	octas, err := s.chain.AccountBalance(ctx, wallet)
	if err != nil {
		return 0, fmt.Errorf("failed to read balance: %w", err)
	}
	return float64(octas) / models.OctasPerAPT, nil
}
