package http

import (
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/users-proxy/internal/app"
	"github.com/MKhiriev/users-proxy/internal/logger"
	"github.com/MKhiriev/users-proxy/internal/utils"
	"github.com/MKhiriev/users-proxy/models"
)

// panicResponse is returned for any panic raised by a handler. The panic
// value and stack are logged, never sent to the client.
var panicResponse = models.ErrorResponse{
	Error:   app.MsgInternalServerError,
	Message: app.MsgSomethingWentWrong,
}

func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Interface("panic", rec).
				Str("stack", string(debug.Stack())).
				Str("uri", r.RequestURI).
				Msg("recovered from panic")

			_, _ = utils.WriteJSON(w, panicResponse, http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
