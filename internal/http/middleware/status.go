package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// TrackStatus hands the next handler a writer that remembers the status it
// sent, unless an outer middleware already did.
func TrackStatus() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := w.(middleware.WrapResponseWriter); ok {
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(middleware.NewWrapResponseWriter(w, r.ProtoMajor), r)
		})
	}
}

// HeaderWritten reports whether a status line has already gone out on w.
func HeaderWritten(w http.ResponseWriter) bool {
	ww, ok := w.(middleware.WrapResponseWriter)
	return ok && ww.Status() != 0
}
