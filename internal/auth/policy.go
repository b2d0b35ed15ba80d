package auth

import (
	"github.com/sarjithrm/quoraUpgradProject/internal/apperr"
	"github.com/sarjithrm/quoraUpgradProject/internal/models"
)

// Policy names the authorization rule a protected operation applies after
// the session has been resolved and the target resource has been found.
type Policy int

const (
	// AuthenticatedOnly allows any resolved session.
	AuthenticatedOnly Policy = iota
	// OwnerOnly allows only the resource owner.
	OwnerOnly
	// OwnerOrAdmin allows the resource owner or any admin.
	OwnerOrAdmin
	// AdminOnly allows any admin, regardless of ownership.
	AdminOnly
)

// Authorize is a pure decision: it compares the acting user against the
// resource owner under the given policy and returns an ATHR-003 failure
// with the operation's message on deny.
func Authorize(acting *models.User, ownerID int64, policy Policy, denyMessage string) error {
	switch policy {
	case AuthenticatedOnly:
		return nil
	case OwnerOnly:
		if acting.ID == ownerID {
			return nil
		}
	case OwnerOrAdmin:
		if acting.ID == ownerID || acting.Role == models.UserRoleAdmin {
			return nil
		}
	case AdminOnly:
		if acting.Role == models.UserRoleAdmin {
			return nil
		}
	}
	return apperr.AuthorizationFailed(apperr.CodeAccessDenied, denyMessage)
}
