package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"lintang/mapagent/pkg/datastructure"
	"lintang/mapagent/pkg/geo"
	"lintang/mapagent/pkg/server"
)

const edgeColumns = `id, meta, fow, frc, flowdir, from_int, to_int, len, geometry`

const createEdgesTable = `
CREATE TABLE IF NOT EXISTS edges (
	id       BIGINT           NOT NULL,
	meta     TEXT             NOT NULL DEFAULT '',
	fow      SMALLINT         NOT NULL,
	frc      SMALLINT         NOT NULL,
	flowdir  SMALLINT         NOT NULL,
	from_int BIGINT           NOT NULL,
	to_int   BIGINT           NOT NULL,
	len      BIGINT           NOT NULL,
	geometry TEXT             NOT NULL,
	min_lat  DOUBLE PRECISION NOT NULL,
	min_lon  DOUBLE PRECISION NOT NULL,
	max_lat  DOUBLE PRECISION NOT NULL,
	max_lon  DOUBLE PRECISION NOT NULL,
	PRIMARY KEY (id, meta)
);
CREATE INDEX IF NOT EXISTS edges_from_int_idx ON edges (from_int);
CREATE INDEX IF NOT EXISTS edges_to_int_idx ON edges (to_int);
CREATE INDEX IF NOT EXISTS edges_bbox_idx ON edges (min_lat, max_lat, min_lon, max_lon);
`

// PostgresRepository edge store in a postgres "edges" table, geometry kept as WKT.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository. connection acquisition blocks once maxConns are in use.
func NewPostgresRepository(ctx context.Context, databaseURL string, maxConns int32) (*PostgresRepository, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database url: %w", err)
	}
	if maxConns > 0 {
		cfg.MaxConns = maxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{pool: pool}, nil
}

func (r *PostgresRepository) Close() {
	r.pool.Close()
}

func (r *PostgresRepository) Migrate(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, createEdgesTable); err != nil {
		return fmt.Errorf("failed to create edges table: %w", err)
	}
	return nil
}

// InsertEdges bulk loads edges with COPY.
func (r *PostgresRepository) InsertEdges(ctx context.Context, edges []datastructure.StoredEdge) (int64, error) {
	rows := make([][]any, 0, len(edges))
	for _, e := range edges {
		bb := geo.EdgeBound(e.Geometry)
		rows = append(rows, []any{
			int64(e.ID), e.Meta, int16(e.Fow), int16(e.Frc), int16(e.Flow), e.FromInt, e.ToInt, int64(e.Length),
			marshalGeometry(e.Geometry), bb.Edges[0][0], bb.Edges[1][0], bb.Edges[0][1], bb.Edges[1][1],
		})
	}

	n, err := r.pool.CopyFrom(ctx, pgx.Identifier{"edges"},
		[]string{"id", "meta", "fow", "frc", "flowdir", "from_int", "to_int", "len", "geometry",
			"min_lat", "min_lon", "max_lat", "max_lon"},
		pgx.CopyFromRows(rows))
	if err != nil {
		return n, fmt.Errorf("failed to copy edges: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) LoadAll(ctx context.Context) ([]datastructure.StoredEdge, error) {
	return r.queryEdges(ctx, `SELECT `+edgeColumns+` FROM edges ORDER BY id, meta`)
}

func (r *PostgresRepository) FindByID(ctx context.Context, id uint64, meta string) (datastructure.StoredEdge, bool, error) {
	edges, err := r.queryEdges(ctx, `SELECT `+edgeColumns+` FROM edges WHERE id = $1 AND meta = $2`, int64(id), meta)
	if err != nil {
		return datastructure.StoredEdge{}, false, err
	}
	if len(edges) == 0 {
		return datastructure.StoredEdge{}, false, nil
	}
	return edges[0], true, nil
}

func (r *PostgresRepository) SpatialCandidates(ctx context.Context, point datastructure.Coordinate, radius float64) ([]datastructure.StoredEdge, error) {
	bounds := geo.SearchBounds(point, radius)

	var (
		sb   strings.Builder
		args []any
	)
	sb.WriteString(`SELECT ` + edgeColumns + ` FROM edges WHERE `)
	for i, b := range bounds {
		if i > 0 {
			sb.WriteString(" OR ")
		}
		n := len(args)
		fmt.Fprintf(&sb, "(min_lat <= $%d AND max_lat >= $%d AND min_lon <= $%d AND max_lon >= $%d)",
			n+1, n+2, n+3, n+4)
		args = append(args, b.Edges[0][1], b.Edges[0][0], b.Edges[1][1], b.Edges[1][0])
	}
	sb.WriteString(" ORDER BY id, meta")

	return r.queryEdges(ctx, sb.String(), args...)
}

func (r *PostgresRepository) EdgesAtNode(ctx context.Context, node int64) ([]datastructure.StoredEdge, error) {
	return r.queryEdges(ctx, `SELECT `+edgeColumns+` FROM edges WHERE from_int = $1 OR to_int = $1 ORDER BY id, meta`, node)
}

func (r *PostgresRepository) queryEdges(ctx context.Context, query string, args ...any) ([]datastructure.StoredEdge, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query edges: %w", err)
	}
	defer rows.Close()

	edges := make([]datastructure.StoredEdge, 0)
	for rows.Next() {
		var (
			id, length     int64
			fow, frc, flow int16
			e              datastructure.StoredEdge
			geometryWKT    string
		)
		if err := rows.Scan(&id, &e.Meta, &fow, &frc, &flow, &e.FromInt, &e.ToInt, &length, &geometryWKT); err != nil {
			return nil, fmt.Errorf("failed to scan edge row: %w", err)
		}
		e.ID = uint64(id)
		e.Fow = datastructure.FOW(fow)
		e.Frc = datastructure.FRC(frc)
		e.Flow = datastructure.Flow(flow)
		e.Length = uint32(length)

		e.Geometry, err = unmarshalGeometry(geometryWKT)
		if err != nil {
			return nil, server.WrapErrorf(err, server.ErrInternalServerError, "edge %d has unreadable geometry", id)
		}
		edges = append(edges, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating edge rows: %w", err)
	}
	return edges, nil
}
