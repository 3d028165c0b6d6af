package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"runtime/pprof"
	"time"

	"lintang/mapagent/pkg/config"
	"lintang/mapagent/pkg/kv"
	"lintang/mapagent/pkg/logger"
	"lintang/mapagent/pkg/osmparser"
	"lintang/mapagent/pkg/repository"
)

var (
	mapFile    = flag.String("f", "solo_jogja.osm.pbf", "openstreetmap pbf file of the road network")
	outFile    = flag.String("out", "edges.txt", "edge file to write, empty to skip")
	kvDir      = flag.String("kvdir", "", "kv store directory to fill, empty to skip")
	kvEngine   = flag.String("kvengine", "badger", "kv engine: badger or pebble")
	pgURL      = flag.String("pgurl", "", "postgres url to fill, empty to skip")
	logLevel   = flag.String("loglevel", "info", "debug, info, warn or error")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
)

func main() {
	config.LoadDotEnv()
	flag.Parse()
	lg := logger.Setup(*logLevel, false)

	if *cpuprofile != "" {
		// ./bin/mapagent-preprocessing -cpuprofile=mapagentcpu.prof
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()

		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, lg); err != nil {
		lg.Error("preprocessing failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, lg *slog.Logger) error {
	start := time.Now()
	lg.Info("reading osm file", "file", *mapFile)
	edges, err := osmparser.NewOSMParser().ParseFile(ctx, *mapFile)
	if err != nil {
		return err
	}
	lg.Info("osm file parsed", "edges", len(edges), "took", time.Since(start))

	if *outFile != "" {
		if err := repository.WriteEdgeFile(*outFile, edges); err != nil {
			return err
		}
		lg.Info("edge file written", "file", *outFile)
	}

	if *kvDir != "" {
		store, err := kv.OpenStore(*kvEngine, *kvDir)
		if err != nil {
			return err
		}
		kvDB := kv.NewKVDB(store)
		defer kvDB.Close()

		start = time.Now()
		if err := kvDB.BuildEdgeStore(ctx, edges); err != nil {
			return fmt.Errorf("build kv edge store: %w", err)
		}
		lg.Info("kv edge store built", "engine", *kvEngine, "dir", *kvDir, "took", time.Since(start))
	}

	if *pgURL != "" {
		pg, err := repository.NewPostgresRepository(ctx, *pgURL, 4)
		if err != nil {
			return err
		}
		defer pg.Close()

		if err := pg.Migrate(ctx); err != nil {
			return err
		}
		n, err := pg.InsertEdges(ctx, edges)
		if err != nil {
			return err
		}
		lg.Info("postgres edge table filled", "rows", n)
	}
	return nil
}
