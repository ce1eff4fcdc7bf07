package symbols

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/skybi/symbolist/internal/api/schema"
)

// MiddlewareVerifyAdmin makes sure that the requesting client has provided the configured admin token.
// If no admin token is configured, every request is rejected.
func (service *Service) MiddlewareVerifyAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		if service.Config.AdminToken == "" {
			service.writer.WriteErrors(writer, http.StatusForbidden, schema.ErrForbidden)
			return
		}

		// Try to read the 'Authorization' header and verify it is of type 'Bearer'
		header := request.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer") {
			service.writer.WriteErrors(writer, http.StatusUnauthorized, schema.ErrUnauthorized)
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer"))
		if subtle.ConstantTimeCompare([]byte(token), []byte(service.Config.AdminToken)) != 1 {
			service.writer.WriteErrors(writer, http.StatusUnauthorized, schema.ErrUnauthorized)
			return
		}

		next(writer, request)
	}
}
