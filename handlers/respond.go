package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"roamify/backend"
	"roamify/middleware"
	"roamify/session"
)

// PageError is the page-level error state: a user-visible message plus a
// retry affordance (the client re-invokes the same fetch). 401s never take
// this shape; they are handled globally below.
type PageError struct {
	Error     string `json:"error"`
	Retryable bool   `json:"retryable"`
}

// apiCtx returns the request context with the session's bearer token
// attached, so every backend call made for this page carries it.
func apiCtx(c *gin.Context) context.Context {
	ctx := c.Request.Context()
	if sess := middleware.CurrentSession(c); sess != nil {
		ctx = backend.WithToken(ctx, sess.Token)
	}
	return ctx
}

// failPage translates an operation failure into the page's error state.
// A 401 tears the session down and forces navigation to /login instead.
func failPage(c *gin.Context, sessions *session.Manager, err error) {
	logger := getLogger(c)

	if errors.Is(err, backend.ErrUnauthorized) {
		if sess := middleware.CurrentSession(c); sess != nil {
			sessions.Teardown(c.Request.Context(), sess.ID)
		}
		clearSessionCookie(c)
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}

	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		status := apiErr.Status
		if status >= 500 {
			status = http.StatusBadGateway
		}
		c.JSON(status, PageError{Error: apiErr.UserMessage(), Retryable: true})
		return
	}

	if backend.IsTimeout(err) {
		logger.Warn("Page fetch timed out", zap.Error(err))
		c.JSON(http.StatusGatewayTimeout, PageError{
			Error:     "The request took too long. Please try again.",
			Retryable: true,
		})
		return
	}

	logger.Error("Page fetch failed", zap.Error(err))
	c.JSON(http.StatusBadGateway, PageError{
		Error:     backend.GenericFailureMessage,
		Retryable: true,
	})
}

func clearSessionCookie(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
}
