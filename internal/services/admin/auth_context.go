package admin

import "context"

// sessionContextKey is the context key for the authenticated operator session.
type sessionContextKey struct{}

// withSession returns a context carrying the authenticated operator session.
func withSession(ctx context.Context, session operatorSession) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, session)
}

// sessionFromContext extracts the operator session from the context.
func sessionFromContext(ctx context.Context) (operatorSession, bool) {
	if ctx == nil {
		return operatorSession{}, false
	}
	session, ok := ctx.Value(sessionContextKey{}).(operatorSession)
	return session, ok
}
