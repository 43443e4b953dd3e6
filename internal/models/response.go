package models

import "time"

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type SessionResponse struct {
	Token     string    `json:"token"`
	Address   string    `json:"address"`
	Network   string    `json:"network"`
	ExpiresAt time.Time `json:"expires_at"`
}

type BalanceResponse struct {
	Address    string  `json:"address"`
	BalanceAPT float64 `json:"balance_apt"`
	Network    string  `json:"network"`
}

type ProjectResponse struct {
	ID            string    `json:"id"`
	Slug          string    `json:"slug"`
	Name          string    `json:"name"`
	Tagline       string    `json:"tagline"`
	Description   string    `json:"description,omitempty"`
	RepoURL       string    `json:"repo_url,omitempty"`
	DemoURL       string    `json:"demo_url,omitempty"`
	SocialURL     string    `json:"social_url,omitempty"`
	LogoURL       string    `json:"logo_url,omitempty"`
	WalletAddress string    `json:"wallet_address,omitempty"`
	Network       string    `json:"network,omitempty"`
	BalanceAPT    float64   `json:"balance_apt,omitempty"`
	SubmittedAt   time.Time `json:"submitted_at"`
	Status        string    `json:"status"`
	Editable      bool      `json:"editable"`
}

type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
	// Row cap applied to the store query; a full page may mean truncation
	Limit int `json:"limit,omitempty"`
}

// ProjectSummary is the card shape of the public listing: no description,
// no wallet, no balance.
type ProjectSummary struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	Tagline     string    `json:"tagline"`
	DemoURL     string    `json:"demo_url,omitempty"`
	LogoURL     string    `json:"logo_url,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type ExploreResponse struct {
	Projects []ProjectSummary `json:"projects"`
	Limit    int              `json:"limit,omitempty"`
}

type DonateResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type LogoUploadResponse struct {
	ProjectID string `json:"project_id"`
	LogoURL   string `json:"logo_url"`
}

// NewProjectResponse builds the full record view used by owner-scoped and
// detail routes.
func NewProjectResponse(p *Project) ProjectResponse {
	return ProjectResponse{
		ID:            p.ID.String(),
		Slug:          p.LookupKey(),
		Name:          p.Name,
		Tagline:       p.Tagline,
		Description:   p.Description,
		RepoURL:       p.RepoURL,
		DemoURL:       p.DemoURL,
		SocialURL:     p.SocialURL,
		LogoURL:       p.LogoURL,
		WalletAddress: p.WalletAddress,
		Network:       p.Network,
		BalanceAPT:    p.BalanceAPT,
		SubmittedAt:   p.SubmittedAt,
		Status:        string(p.Status),
		Editable:      p.Editable(),
	}
}

// NewProjectSummary builds the public card view.
func NewProjectSummary(p *Project) ProjectSummary {
	return ProjectSummary{
		ID:          p.ID.String(),
		Slug:        p.LookupKey(),
		Name:        p.Name,
		Tagline:     p.Tagline,
		DemoURL:     p.DemoURL,
		LogoURL:     p.LogoURL,
		SubmittedAt: p.SubmittedAt,
	}
}
