package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status is the curation state of a project record. Transitions happen
// out-of-band in the record store; no route in this service changes it.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// NetworkTestnet is the only network this deployment submits against.
const NetworkTestnet = "Testnet"

// OctasPerAPT converts the chain's 8-decimal base units to whole APT.
const OctasPerAPT = 100_000_000

type Project struct {
	ID            uuid.UUID `json:"id"`
	Slug          string    `json:"slug"`
	Name          string    `json:"name"`
	Tagline       string    `json:"tagline"`
	Description   string    `json:"description"`
	RepoURL       string    `json:"repo_url"`
	DemoURL       string    `json:"demo_url"`
	SocialURL     string    `json:"social_url"`
	LogoURL       string    `json:"logo_url"`
	WalletAddress string    `json:"wallet_address"`
	Network       string    `json:"network"`
	BalanceAPT    float64   `json:"balance_apt"`
	SubmittedAt   time.Time `json:"submitted_at"`
	Status        Status    `json:"status"`
}

// Editable reports whether the record can still be changed by its owner.
func (p *Project) Editable() bool {
	return p.Status == StatusPending
}

// LookupKey is the human-facing identifier for detail pages: the slug when
// present, the record id otherwise (records submitted before slugs existed).
func (p *Project) LookupKey() string {
	if p.Slug != "" {
		return p.Slug
	}
	return p.ID.String()
}

// Slugify derives a URL-safe key from a project name: lowercase, runs of
// non-alphanumeric characters collapsed to a single hyphen, no leading or
// trailing hyphen. May return "" for all-symbol input.
func Slugify(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	pendingHyphen := false
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		} else {
			pendingHyphen = true
		}
	}
	return b.String()
}
