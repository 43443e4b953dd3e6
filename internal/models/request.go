package models

type ConnectRequest struct {
	// Wallet account address, 0x-prefixed hex
	Address string `json:"address" binding:"required" example:"0xabcd1234"`
	// Name of the wallet application (Petra, Martian, ...)
	WalletName string `json:"wallet_name,omitempty" example:"Petra"`
	// Network reported by the wallet; defaults to Testnet
	Network string `json:"network,omitempty" example:"Testnet"`
}

type SubmitProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Tagline     string `json:"tagline" binding:"required"`
	Description string `json:"description" binding:"required"`
	RepoURL     string `json:"repo_url,omitempty" binding:"omitempty,url"`
	DemoURL     string `json:"demo_url,omitempty" binding:"omitempty,url"`
	SocialURL   string `json:"social_url,omitempty" binding:"omitempty,url"`
}

// UpdateProjectRequest carries only the user-editable fields. Pointers
// distinguish "not sent" from "cleared"; unspecified fields are left
// untouched by the store.
type UpdateProjectRequest struct {
	Name        *string `json:"name,omitempty"`
	Tagline     *string `json:"tagline,omitempty"`
	Description *string `json:"description,omitempty"`
	RepoURL     *string `json:"repo_url,omitempty"`
	DemoURL     *string `json:"demo_url,omitempty"`
	SocialURL   *string `json:"social_url,omitempty"`
}

type DonateRequest struct {
	// Intended donation in APT; informational, no transaction is built
	Amount float64 `json:"amount,omitempty" example:"2.5"`
}
