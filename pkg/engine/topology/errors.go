package topology

import (
	"context"
	"fmt"
	"log/slog"

	"lintang/mapagent/pkg/datastructure"
	"lintang/mapagent/pkg/server"
)

// backendError keeps a code already attached by the repository, otherwise classifies err as unavailable.
func backendError(ctx context.Context, err error, op string) error {
	if server.CodeOf(err) != server.ErrUnknown {
		return fmt.Errorf("%s: %w", op, err)
	}
	return server.WrapContextErr(ctx, err, server.ErrUnavailable, "%s", op)
}

func integrityError(logger *slog.Logger, edge *datastructure.StoredEdge, err error) error {
	logger.Error("edge integrity fault", "edge_id", edge.ID, "meta", edge.Meta, "error", err)
	return server.WrapErrorf(err, server.ErrInternalServerError, "corrupt edge %d", edge.ID)
}

func contextError(ctx context.Context) error {
	if ctx.Err() == nil {
		return nil
	}
	return server.WrapContextErr(ctx, ctx.Err(), server.ErrUnavailable, "request aborted")
}
