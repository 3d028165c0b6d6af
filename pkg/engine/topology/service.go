package topology

import (
	"context"
	"log/slog"
	"math"
	"time"

	"golang.org/x/sync/semaphore"

	"lintang/mapagent/pkg/concurrent"
	"lintang/mapagent/pkg/datastructure"
	"lintang/mapagent/pkg/server"
)

type ServiceOptions struct {
	// MaxInFlight requests resolved concurrently, further requests wait.
	MaxInFlight int64
	// BatchWorkers goroutines per batch radius search.
	BatchWorkers int
	// RequestTimeout upper bound of a single request, 0 = client deadline only.
	RequestTimeout time.Duration
}

func DefaultServiceOptions() ServiceOptions {
	return ServiceOptions{
		MaxInFlight:    64,
		BatchWorkers:   8,
		RequestTimeout: 10 * time.Second,
	}
}

// PointResult outcome of one point of a batch radius search.
type PointResult struct {
	EdgeSet datastructure.EdgeSet
	Err     error
}

type Service struct {
	nearby    *NearbyResolver
	successor *SuccessorResolver
	sem       *semaphore.Weighted
	opts      ServiceOptions
	logger    *slog.Logger
}

func NewService(repo EdgeRepository, opts ServiceOptions, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.MaxInFlight < 1 {
		opts.MaxInFlight = 1
	}
	if opts.BatchWorkers < 1 {
		opts.BatchWorkers = 1
	}
	return &Service{
		nearby:    NewNearbyResolver(repo, logger),
		successor: NewSuccessorResolver(repo, logger),
		sem:       semaphore.NewWeighted(opts.MaxInFlight),
		opts:      opts,
		logger:    logger,
	}
}

func (s *Service) begin(ctx context.Context) (context.Context, func(), error) {
	cancel := func() {}
	if s.opts.RequestTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, s.opts.RequestTimeout)
	}
	if err := s.sem.Acquire(ctx, 1); err != nil {
		cancel()
		return ctx, nil, server.WrapContextErr(ctx, err, server.ErrUnavailable, "waiting for a free slot")
	}
	return ctx, func() {
		s.sem.Release(1)
		cancel()
	}, nil
}

func validateRadius(radius float64) error {
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius < 0 {
		return server.NewErrorf(server.ErrBadParamInput, "radius must be a finite non-negative number of meters, got %v", radius)
	}
	return nil
}

func validatePoint(i int, p datastructure.Coordinate) error {
	if !p.Valid() {
		return server.NewErrorf(server.ErrBadParamInput, "point %d out of range: lat=%v lon=%v", i, p.Lat, p.Lon)
	}
	return nil
}

// FindNearby directed edges within radius meters of a single point.
func (s *Service) FindNearby(ctx context.Context, point datastructure.Coordinate, radius float64) (datastructure.EdgeSet, error) {
	if err := validatePoint(0, point); err != nil {
		return datastructure.EdgeSet{}, err
	}
	if err := validateRadius(radius); err != nil {
		return datastructure.EdgeSet{}, err
	}

	ctx, done, err := s.begin(ctx)
	if err != nil {
		return datastructure.EdgeSet{}, err
	}
	defer done()

	return s.nearby.FindNearby(ctx, point, radius)
}

// RadiusSearch one result per point, in input order. a failing point never aborts the others.
// the returned error covers request level faults only (bad input, no free slot).
func (s *Service) RadiusSearch(ctx context.Context, points []datastructure.Coordinate, radius float64) ([]PointResult, error) {
	if len(points) == 0 {
		return nil, server.NewErrorf(server.ErrBadParamInput, "points must not be empty")
	}
	for i, p := range points {
		if err := validatePoint(i, p); err != nil {
			return nil, err
		}
	}
	if err := validateRadius(radius); err != nil {
		return nil, err
	}

	ctx, done, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer done()

	start := time.Now()
	workers := concurrent.NewWorkerPool[concurrent.RadiusSearchParam, PointResult](min(s.opts.BatchWorkers, len(points)),
		len(points))
	for i, p := range points {
		workers.AddJob(concurrent.NewRadiusSearchParam(i, p, radius))
	}
	workers.Close()
	workers.Start(func(job concurrent.RadiusSearchParam) PointResult {
		set, err := s.nearby.FindNearby(ctx, job.Point, job.Radius)
		if err != nil {
			s.logger.Debug("radius search point failed", "index", job.Index, "error", err)
		}
		return PointResult{EdgeSet: set, Err: err}
	})
	workers.Wait()
	results := workers.CollectOrdered()

	s.logger.Debug("radius search done", "points", len(points), "radius", radius, "took", time.Since(start))
	return results, nil
}

// FirstError error of the lowest index failing point, nil if every point succeeded.
func FirstError(results []PointResult) error {
	for _, res := range results {
		if res.Err != nil {
			return res.Err
		}
	}
	return nil
}

// NextEdges directed edges enterable right after ref.
func (s *Service) NextEdges(ctx context.Context, ref datastructure.EdgeRef) (datastructure.EdgeSet, error) {
	if ref.ID == math.MinInt64 {
		return datastructure.EdgeSet{}, server.NewErrorf(server.ErrBadParamInput, "edge id %d has no stored counterpart", ref.ID)
	}

	ctx, done, err := s.begin(ctx)
	if err != nil {
		return datastructure.EdgeSet{}, err
	}
	defer done()

	return s.successor.FindSuccessors(ctx, ref)
}
