package employee

import "context"

type actorKey struct{}

// WithActor records the employee acting on a request.
func WithActor(ctx context.Context, employeeID int64) context.Context {
	return context.WithValue(ctx, actorKey{}, employeeID)
}

// ActorFromContext returns the acting employee, if one was recorded.
func ActorFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(actorKey{}).(int64)
	return id, ok
}
