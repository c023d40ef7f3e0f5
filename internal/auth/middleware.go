package auth

import (
	"fmt"
	"net/http"
	"slices"

	"github.com/ferdiebergado/thinkbox/internal/pkg/message"
	"github.com/ferdiebergado/thinkbox/internal/pkg/security"
	"github.com/ferdiebergado/thinkbox/internal/pkg/web"
	"github.com/ferdiebergado/thinkbox/internal/platform/jwt"
)

// RequireToken admits requests carrying a valid access token and stores the
// player ID in the request context.
func RequireToken(signer jwt.Signer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := security.ExtractBearerToken(r)
			if err != nil {
				web.RespondUnauthorized(w, err, message.InvalidUser, nil)
				return
			}

			claims, err := signer.Verify(token)
			if err != nil {
				web.RespondUnauthorized(w, err, message.InvalidUser, nil)
				return
			}

			if !slices.Contains(claims.Audience, AudienceAccess) {
				web.RespondUnauthorized(w, fmt.Errorf("%w: audience %v", ErrInvalidToken, claims.Audience), message.InvalidUser, nil)
				return
			}

			ctx := ContextWithUser(r.Context(), claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
