package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	app_errors "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/errors"
	ratelimit "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/ratelimit"
)

func RateLimitMiddleware(limiter *ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":   string(app_errors.CodeRateLimited),
				"message": "too many requests",
			})
			return
		}

		c.Next()
	}
}

// abortWithError maps the service error taxonomy onto stable HTTP statuses.
// Internal detail never leaves the process, the response carries only the
// code and its message.
func abortWithError(c *gin.Context, err error) {
	code := app_errors.CodeOf(err)

	message := "internal error"
	var serviceError *app_errors.ServiceError
	if errors.As(err, &serviceError) && code != app_errors.CodeInternal {
		message = serviceError.Message
	}

	c.AbortWithStatusJSON(statusForCode(code), gin.H{
		"error":   string(code),
		"message": message,
	})
}

func statusForCode(code app_errors.Code) int {
	switch code {
	case app_errors.CodeInvalidSignature, app_errors.CodeNotAuthorized:
		return http.StatusUnauthorized
	case app_errors.CodeAlreadyVoted, app_errors.CodeAlreadyRegistered, app_errors.CodeInvalidTransition:
		return http.StatusConflict
	case app_errors.CodeElectionNotActive, app_errors.CodeCandidateNotEligible, app_errors.CodeVoterNotRegistered:
		return http.StatusForbidden
	case app_errors.CodeElectionNotFound, app_errors.CodeCandidateNotFound:
		return http.StatusNotFound
	case app_errors.CodeInvalidInput:
		return http.StatusBadRequest
	case app_errors.CodeRateLimited:
		return http.StatusTooManyRequests
	case app_errors.CodeLedgerSubmissionFailed:
		return http.StatusBadGateway
	case app_errors.CodeDuplicateVotePostLedger:
		return http.StatusConflict
	}

	return http.StatusInternalServerError
}
