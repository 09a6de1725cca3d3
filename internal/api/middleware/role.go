package middleware

import (
	"net/http"

	"github.com/kmosk/space-reservation-service/internal/api/handlers"
	"github.com/kmosk/space-reservation-service/internal/domain"
)

const msgAdminOnly = "операция доступна только администратору"

// RequireAdmin пропускает только пользователей с ролью администратора.
// Должен стоять после Auth.
func RequireAdmin(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRoleID(r.Context())
			if !ok || role != domain.RoleAdmin {
				logger.Warn("RequireAdmin: access denied: %s %s", r.Method, r.URL.Path)
				handlers.RespondForbidden(w, msgAdminOnly)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
