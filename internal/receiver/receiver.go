// Package receiver is the webhook delivery sink: it logs every inbound POST
// and always answers 200, for manual inspection of what a server sends.
package receiver

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// SignatureHeader carries the sender's delivery signature. The receiver logs
// it but does not verify it against the agent secret; verification is a
// known gap carried over from the original debugging tool.
const SignatureHeader = "X-RCRT-Signature"

// NewRouter returns the receiver's HTTP handler: a single POST catch-all on
// every path. Other methods get chi's stock 405; there are no other routes.
func NewRouter(logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Post("/*", handle(logger))
	return r
}

func handle(logger *zap.Logger) http.HandlerFunc {
	sugar := logger.Sugar()
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			// Partial reads still get acknowledged; the sender is
			// never told about receiver-side trouble.
			sugar.Warnf("webhook body read failed: %v", err)
		}

		sig := r.Header.Get(SignatureHeader)
		sugar.Infof("webhook received: sig=%s body=%s", sig, string(body))

		w.WriteHeader(http.StatusOK)
	}
}
