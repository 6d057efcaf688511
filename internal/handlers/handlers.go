package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	apierrors "analytics-api/internal/errors"
	h "analytics-api/internal/helpers"
	"analytics-api/internal/models"

	"go.uber.org/zap"
)

type QueryHandlerFunc[R any] func(
	ctx context.Context,
	logger *zap.Logger,
	claims models.UserClaims,
	query url.Values,
) (R, error)

// GetOneWithQueryHandler adapts fn to an http.HandlerFunc. The raw query
// string is passed through untouched so fn decides when to validate it.
func GetOneWithQueryHandler[R any](message string, fn QueryHandlerFunc[R]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := h.GetLogger(r.Context())

		claims, err := h.GetUserClaims(r.Context())
		if err != nil {
			h.RespondWithError(w, http.StatusUnauthorized, []string{apierrors.ErrUnauthorized})
			return
		}

		response, err := fn(r.Context(), logger, claims, r.URL.Query())
		if err != nil {
			RespondWithAPIError(w, logger, err)
			return
		}

		h.RespondWithJSON(w, http.StatusOK, models.Response[R]{Message: message, Data: response})
	}
}

// RespondWithAPIError writes err as a JSON error body. Only APIError details
// reach the client; anything else is logged and reported as a 500.
func RespondWithAPIError(w http.ResponseWriter, logger *zap.Logger, err error) {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		h.RespondWithError(w, apiErr.Code, apiErr.Messages)
		return
	}

	logger.Error("Unhandled error", zap.Error(err))
	h.RespondWithError(w, http.StatusInternalServerError, []string{apierrors.ErrInternalServer})
}
