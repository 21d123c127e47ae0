package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	"github.com/xero1ghost/arcania-backend/internal/utils"
)

// Recover converts panics into the uniform JSON 500 body. The full panic
// value and stack are logged server-side only; clients never see internals
// or an HTML error page.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("Internal Server Error: %s %s: %v\n%s", r.Method, r.URL.Path, rec, debug.Stack())
				utils.JSONError(w, http.StatusInternalServerError, "Internal server error")
			}
		}()

		next.ServeHTTP(w, r)
	})
}
