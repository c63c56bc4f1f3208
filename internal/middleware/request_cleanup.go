package middleware

import (
	"io"
	"net/http"
)

// DrainAndCloseRequest consumes whatever is left of the request body
// after the handler ran and closes it, so the connection stays reusable
// for keep-alive.
func DrainAndCloseRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			if r.Body == nil {
				return
			}
			_, _ = io.Copy(io.Discard, r.Body)
			_ = r.Body.Close()
		})
	}
}
