package app

import "net/http"

type sessionKey string

const (
	SessionKeyAdminId = sessionKey("adminID")
	SessionKeyGuest   = sessionKey("guest")
)

func (s sessionKey) String() string {
	return string(s)
}

func (app *Application) contextGetAdminId(r *http.Request) int {
	adminId, ok := r.Context().Value(SessionKeyAdminId).(int)
	if !ok {
		panic("missing admin id from context")
	}

	return adminId
}

// wizardSessionId identifies the anonymous booking wizard session. The
// selection held in Redis and the idempotency guard on booking creation
// both key off this token.
func (app *Application) wizardSessionId(r *http.Request) string {
	return app.sessionManager.Token(r.Context())
}
