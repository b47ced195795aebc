package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Biffle-Ltd/biffle-chat-web/domain"
	"github.com/Biffle-Ltd/biffle-chat-web/internal/http/middleware"
)

// CallbackHandlers serves the return leg from the payment provider.
type CallbackHandlers struct {
	reconcileSvc domain.ReconcileService
}

// NewCallbackHandlers creates new payment callback handlers
func NewCallbackHandlers(reconcileSvc domain.ReconcileService) *CallbackHandlers {
	return &CallbackHandlers{reconcileSvc: reconcileSvc}
}

// Handle runs the reconciler and renders the acknowledgment page with its
// timed redirect. PayU returns via both GET (query params) and POST (form
// fields); every provider-supplied parameter is forwarded as-is.
func (h *CallbackHandlers) Handle(c *gin.Context) {
	params := map[string]string{}
	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}
	if c.Request.Method == http.MethodPost {
		if err := c.Request.ParseForm(); err == nil {
			for key, values := range c.Request.PostForm {
				if len(values) > 0 {
					params[key] = values[0]
				}
			}
		}
	}

	sessionID := ""
	if session, ok := middleware.SessionFrom(c); ok {
		sessionID = session.ID
	}

	outcome := h.reconcileSvc.Reconcile(c.Request.Context(), sessionID, params)

	heading := "Payment Successful"
	if outcome.State == domain.CallbackFailed {
		heading = "Payment Failed"
	}

	view := struct {
		Heading      string
		Message      string
		DelaySeconds float64
		RedirectURL  string
	}{
		Heading:      heading,
		Message:      outcome.Message,
		DelaySeconds: outcome.Delay.Seconds(),
		RedirectURL:  outcome.Redirect.Path(),
	}

	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := callbackTmpl.Execute(c.Writer, view); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}
