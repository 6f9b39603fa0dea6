package domain

// LoginPath is the fixed redirect target for anonymous visitors.
const LoginPath = "/login"

// GuardDecision is the outcome of a single navigation attempt.
type GuardDecision struct {
	Allowed    bool   `json:"allowed"`
	RedirectTo string `json:"redirect_to,omitempty"`
}

// NavItem is one entry of the role-conditioned menu.
type NavItem struct {
	Label  string `json:"label"`
	Path   string `json:"path"`
	Icon   string `json:"icon"`
	Active bool   `json:"active"`
}
