package auth

import (
	"context"

	"fleet/internal/entities"
)

type actorKey struct{}

// WithActor кладёт актора в контекст запроса.
func WithActor(ctx context.Context, actor entities.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFromContext достаёт актора, вторым значением признак наличия.
func ActorFromContext(ctx context.Context) (entities.Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(entities.Actor)
	return actor, ok
}
