package httpserver

import (
	"context"

	"github.com/avolchek/gamevault/internal/auth"
)

type ctxKey string

const subjectKey ctxKey = "gv.subject"

// WithSubject stores the request's derived subject in context.
func WithSubject(ctx context.Context, sub auth.Subject) context.Context {
	return context.WithValue(ctx, subjectKey, sub)
}

// SubjectFromCtx fetches the subject from context; a request that never went
// through the authenticate middleware is anonymous.
func SubjectFromCtx(ctx context.Context) auth.Subject {
	if sub, ok := ctx.Value(subjectKey).(auth.Subject); ok {
		return sub
	}
	return auth.Anonymous()
}
