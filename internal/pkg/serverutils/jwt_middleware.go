package serverutils

import (
	"errors"
	"strings"

	"noteboard-be/internal/pkg/apperror"
	"noteboard-be/internal/pkg/security"

	"github.com/gofiber/fiber/v2"
)

const claimsLocalKey = "claims"

// RequireRoles guards a route with a role set. Public routes still parse a
// token when one is sent so handlers can see who is calling.
func RequireRoles(verifier security.TokenVerifier, required security.RoleSet) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		claims, err := bearerClaims(ctx, verifier)
		if err != nil && !required.IsPublic() {
			return err
		}
		if err := security.Authorize(claims, required); err != nil {
			return err
		}
		if claims != nil {
			ctx.Locals(claimsLocalKey, claims)
		}
		return ctx.Next()
	}
}

// bearerClaims returns nil claims and no error when no token was sent.
func bearerClaims(ctx *fiber.Ctx, verifier security.TokenVerifier) (*security.Claims, error) {
	header := ctx.Get(fiber.HeaderAuthorization)
	if header == "" {
		return nil, nil
	}
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		return nil, apperror.Unauthenticated("Authorization header must be 'Bearer <token>'.")
	}

	claims, err := verifier.Verify(strings.TrimSpace(token))
	if errors.Is(err, security.ErrTokenExpired) {
		return nil, apperror.Unauthenticated("Access token has expired.")
	}
	if err != nil {
		return nil, apperror.Unauthenticated("Invalid access token.")
	}
	return claims, nil
}

// CurrentClaims returns the verified claims of the request, or nil.
func CurrentClaims(ctx *fiber.Ctx) *security.Claims {
	claims, _ := ctx.Locals(claimsLocalKey).(*security.Claims)
	return claims
}

// CurrentUsername is the subject of the verified token, or "".
func CurrentUsername(ctx *fiber.Ctx) string {
	if claims := CurrentClaims(ctx); claims != nil {
		return claims.Username()
	}
	return ""
}
