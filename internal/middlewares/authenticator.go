package middlewares

import (
	"context"
	"errors"
	"net/http"

	apierrors "analytics-api/internal/errors"
	"analytics-api/internal/helpers"
	"analytics-api/internal/models"
)

func Authenticate(jwtSecret string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			userClaims, err := helpers.ParseAccessToken(jwtSecret, r.Header.Get("Authorization"))
			if err != nil {
				helpers.RespondWithError(w, http.StatusUnauthorized, []string{authErrorCode(err)})
				return
			}

			ctx := context.WithValue(r.Context(), models.UserClaimKey{}, userClaims)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(fn)
	}
}

func authErrorCode(err error) string {
	switch {
	case errors.Is(err, helpers.ErrNoTokenProvided):
		return apierrors.ErrNoTokenProvided
	case errors.Is(err, helpers.ErrInvalidTokenFormat):
		return apierrors.ErrInvalidTokenFormat
	default:
		return apierrors.ErrUnauthorized
	}
}
