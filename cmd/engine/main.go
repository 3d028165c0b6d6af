package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"runtime/pprof"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"lintang/mapagent/pkg/config"
	"lintang/mapagent/pkg/engine/topology"
	"lintang/mapagent/pkg/kv"
	"lintang/mapagent/pkg/logger"
	"lintang/mapagent/pkg/repository"
	"lintang/mapagent/pkg/server"
	"lintang/mapagent/pkg/server/grpcserver"
	"lintang/mapagent/pkg/server/rest"
)

func main() {
	os.Exit(run(os.Args))
}

// run returns the process exit code so deferred cleanup runs before exit.
func run(args []string) int {
	config.LoadDotEnv()
	cfg, err := config.Load(args[0], args[1:])
	if err != nil {
		log.Print(err)
		return 2
	}
	lg := logger.Setup(cfg.LogLevel, cfg.LogJSON)

	if cfg.CPUProfile != "" {
		f, err := os.Create(cfg.CPUProfile)
		if err != nil {
			lg.Error("create cpu profile", "file", cfg.CPUProfile, "error", err)
			return 1
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			lg.Error("start cpu profile", "error", err)
			return 1
		}
		defer pprof.StopCPUProfile()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := openRepository(ctx, cfg, lg)
	if err != nil {
		lg.Error("open edge store", "backend", cfg.Backend, "error", err)
		return 1
	}
	defer closeRepo()
	recordMemProfile(&cfg.MemProfile, "load_edges", lg)

	svc := topology.NewService(repo, cfg.ServiceOptions(), lg)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := server.NewMetrics(reg)

	g, gctx := errgroup.WithContext(ctx)

	if cfg.ListenAddr != "" {
		srv := &http.Server{
			Addr:    cfg.ListenAddr,
			Handler: newRouter(cfg, svc, m, reg, lg),
		}
		g.Go(func() error {
			lg.Info("rest server started", "addr", cfg.ListenAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("rest server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	if cfg.GRPCAddr != "" {
		grpcSrv := grpcserver.NewServer(svc, m, lg)
		g.Go(func() error {
			lis, err := net.Listen("tcp", cfg.GRPCAddr)
			if err != nil {
				return fmt.Errorf("grpc listen: %w", err)
			}
			lg.Info("grpc server started", "addr", cfg.GRPCAddr, "service", grpcserver.ServiceName)
			return grpcSrv.Serve(lis)
		})
		g.Go(func() error {
			<-gctx.Done()
			grpcSrv.GracefulStop()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		lg.Error("server stopped", "error", err)
		return 1
	}
	lg.Info("server stopped")
	return 0
}

func newRouter(cfg *config.Config, svc *topology.Service, m *server.Metrics, reg *prometheus.Registry,
	lg *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(rest.PromeHttpMiddleware(m)) // prometheus http middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-Request-Id"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	if cfg.RateLimit {
		r.Use(rest.Throttle(cfg.MaxInFlight, cfg.MaxInFlight*4, cfg.RequestTimeout))
	}

	r.Mount("/debug", middleware.Profiler())

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Get("/health", rest.Health)

	rest.MapRouter(r, svc, m, lg)
	return r
}

// openRepository edge store selected by cfg.Backend. the returned func releases it.
func openRepository(ctx context.Context, cfg *config.Config, lg *slog.Logger) (topology.EdgeRepository, func(), error) {
	switch cfg.Backend {
	case config.BackendFile:
		start := time.Now()
		snap, err := repository.NewSnapshotFromFile(cfg.EdgeFile)
		if err != nil {
			return nil, nil, err
		}
		lg.Info("edge file loaded", "file", cfg.EdgeFile, "edges", snap.Len(), "took", time.Since(start))
		return snap, func() {}, nil

	case config.BackendKV:
		store, err := kv.OpenStore(cfg.KVEngine, cfg.KVDir)
		if err != nil {
			return nil, nil, err
		}
		kvDB := kv.NewKVDB(store)
		lg.Info("kv edge store opened", "engine", cfg.KVEngine, "dir", cfg.KVDir)
		return kvDB, func() {
			if err := kvDB.Close(); err != nil {
				lg.Warn("close kv store", "error", err)
			}
		}, nil

	case config.BackendPostgres:
		pg, err := repository.NewPostgresRepository(ctx, cfg.PGURL, int32(cfg.PGMaxConns))
		if err != nil {
			return nil, nil, err
		}
		lg.Info("postgres edge store connected", "max_conns", cfg.PGMaxConns)
		return pg, pg.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown backend %q", cfg.Backend)
}

func recordMemProfile(memprofile *string, name string, lg *slog.Logger) {
	if *memprofile != "" {
		*memprofile = strings.Replace(*memprofile, ".mprof", fmt.Sprintf("%s.mprof", name), -1)
		f, err := os.Create(*memprofile)
		if err != nil {
			lg.Warn("create mem profile", "file", *memprofile, "error", err)
			return
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			lg.Warn("write mem profile", "error", err)
		}
		f.Close()
	}
}
