package session

import "context"

type ctxKey struct{}

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(Session)
	return s, ok
}

// UserIDFromContext returns the signed in user id, or "" for anonymous requests.
func UserIDFromContext(ctx context.Context) string {
	s, _ := FromContext(ctx)
	return s.UserID
}
