package middlewares

import (
	"context"
	"fmt"
	"mindwell-service/internal/app/models"
	"mindwell-service/internal/pkg/constvars"
	"mindwell-service/internal/pkg/exceptions"
	"mindwell-service/internal/pkg/utils"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
)

// Authentication resolves the bearer token into a redis-backed session and
// stores the user and session ids on the request context. A token whose
// session no longer exists is treated as expired.
func (m *Middlewares) Authentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, constvars.BearerTokenPrefix)
		sessionID, err := utils.ParseSessionJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		sessionKey := fmt.Sprintf(constvars.RedisSessionKeyFormat, sessionID)
		sessionData, err := m.RedisRepository.Get(r.Context(), sessionKey)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if sessionData == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidSession(nil))
			return
		}

		var session models.Session
		err = json.Unmarshal([]byte(sessionData), &session)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrCannotUnmarshalJSON(err))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_USER_ID_KEY, session.UserID)
		ctx = context.WithValue(ctx, constvars.CONTEXT_SESSION_ID_KEY, sessionID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
