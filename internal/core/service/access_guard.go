package service

import (
	"context"
	"strings"

	"github.com/glamslot/booking/internal/core/domain"
	"github.com/glamslot/booking/internal/core/ports"
	"github.com/glamslot/booking/internal/pkg/metrics"
)

// ProtectedViews are the view roots that require a signed-in visitor. Sub-paths of a
// root are protected as well.
var ProtectedViews = []string{
	"/dashboard",
	"/appointments",
	"/book",
	"/favorites",
	"/payment-methods",
	"/settings",
	"/profile",
	"/salon",
}

// AccessGuard decides whether a view may render for the current session.
//
// The guard only checks that someone is signed in. It does not look at the role, so a
// client identity reaches salon views too; role differences are presentation only.
type AccessGuard struct {
	session ports.SessionReader
}

func NewAccessGuard(session ports.SessionReader) *AccessGuard {
	return &AccessGuard{session: session}
}

// Check evaluates a navigation to path. Public paths are always allowed; protected
// ones redirect anonymous visitors to the login view without remembering the target.
func (g *AccessGuard) Check(ctx context.Context, path string) domain.GuardDecision {
	if !IsProtected(path) {
		return domain.GuardDecision{Allowed: true}
	}
	if g.session.IsAuthenticated(ctx) {
		metrics.GuardDecisionsTotal.WithLabelValues("allowed").Inc()
		return domain.GuardDecision{Allowed: true}
	}
	metrics.GuardDecisionsTotal.WithLabelValues("redirected").Inc()
	return domain.GuardDecision{Allowed: false, RedirectTo: domain.LoginPath}
}

// IsProtected reports whether path is, or lies under, a protected view.
func IsProtected(path string) bool {
	for _, root := range ProtectedViews {
		if matchesPath(path, root) {
			return true
		}
	}
	return false
}

// matchesPath is true for root itself and for strict sub-paths of root.
func matchesPath(path, root string) bool {
	return path == root || strings.HasPrefix(path, root+"/")
}
