// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2025 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//   This file is part of CONMAP.
//
//  CONMAP is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  CONMAP is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with CONMAP.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"embed"
	"fmt"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"conmap/cnf"
	"conmap/docs"
	"conmap/general"
	"conmap/handlers"
	"conmap/hearst"
	"conmap/lexicon"
	"conmap/monitoring"
	monitoringActions "conmap/monitoring/handlers"
	"conmap/pipeline"
	"conmap/rdb"
	"conmap/render"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type apiServer struct {
	server    *http.Server
	conf      *cnf.Conf
	version   general.VersionInfo
	radapter  *rdb.Adapter
	lex       *lexicon.Lexicon
	jobLogger *monitoring.WorkerJobLogger
}

//go:embed docs/swagger.json
var swaggerJSON embed.FS

func (api *apiServer) Start(ctx context.Context) {
	if !api.conf.Logging.Level.IsDebugMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(additionalLogEvents())
	engine.Use(logging.GinMiddleware())
	engine.Use(CORSMiddleware(api.conf))
	engine.NoMethod(uniresp.NoMethodHandler)
	engine.NoRoute(uniresp.NotFoundHandler)

	protected := engine.Group("/tools").Use(AuthRequired(api.conf))

	var artifactsDir string
	if api.conf.Render.Format != render.FormatNone {
		artifactsDir = api.conf.Render.OutputDir
	}
	actions := handlers.NewActions(
		handlers.ActionsConf{
			ArtifactsDir:  artifactsDir,
			PublicURL:     api.conf.PublicURL,
			MaxTextLength: api.conf.MaxTextLength,
			JobTimeout:    api.conf.JobTimeout(),
		},
		api.radapter,
		hearst.NewDefaultMatcher(),
		api.lex,
		pipeline.NewValidator(api.lex, api.conf.Lexicon),
		api.jobLogger,
	)

	engine.GET("/", mkServerInfo(api.conf, api.version))

	docs.SwaggerInfo.Version = api.version.Version
	engine.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// also serve the JSON variant of the docs:
	engine.GET(
		"/openapi",
		func(ctx *gin.Context) {
			jsonFile, err := swaggerJSON.ReadFile("docs/swagger.json")
			if err != nil {
				err = fmt.Errorf("failed to read Swagger file: %w", err)
				uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
				return
			}
			uniresp.WriteRawJSONResponse(ctx.Writer, jsonFile)
		},
	)

	engine.POST(
		"/extract", actions.Extract)

	engine.GET(
		"/patterns", actions.Patterns)

	if artifactsDir != "" {
		engine.GET(
			"/artifacts/*path", actions.Artifact)

	} else {
		log.Warn().Msg("rendering disabled, endpoint /artifacts will be disabled")
	}

	protected.GET(
		"/lexicon-lookup", actions.LexiconLookup)

	monActions := monitoringActions.NewActions(api.jobLogger)

	engine.GET(
		"/monitoring/workers-load", monActions.WorkersLoad)

	engine.GET(
		"/monitoring/workers-load/:workerId", monActions.SingleWorkerLoad)

	engine.GET(
		"/monitoring/recent-records", monActions.RecentRecords)

	log.Info().Msgf("starting to listen at %s:%d", api.conf.ListenAddress, api.conf.ListenPort)
	api.server = &http.Server{
		Handler:      engine,
		Addr:         fmt.Sprintf("%s:%d", api.conf.ListenAddress, api.conf.ListenPort),
		WriteTimeout: time.Duration(api.conf.ServerWriteTimeoutSecs) * time.Second,
		ReadTimeout:  time.Duration(api.conf.ServerReadTimeoutSecs) * time.Second,
	}
	go func() {
		if err := api.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()
}

func (api *apiServer) Stop(ctx context.Context) error {
	log.Warn().Msg("shutting down CONMAP HTTP API server")
	return api.server.Shutdown(ctx)
}

func runApiServer(
	conf *cnf.Conf,
	ver general.VersionInfo,
) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	radapter := rdb.NewAdapter(conf.Redis, ctx)
	err := radapter.TestConnection(redisConnectionTestTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
		return
	}
	lex, err := lexicon.Open(conf.Lexicon)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load lexicon")
		return
	}

	services := make([]service, 0, 3)
	var statusWriter monitoring.StatusWriter = &monitoring.NullStatusWriter{}
	if conf.Monitoring.IsEnabled() {
		tsWriter, err := monitoring.NewTimescaleDBWriter(
			ctx, *conf.Monitoring.DB, conf.TimezoneLocation())
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize monitoring database")
			return
		}
		statusWriter = tsWriter
		services = append(services, tsWriter)
	}
	jobLogger := monitoring.NewWorkerJobLogger(statusWriter, conf.TimezoneLocation())
	server := &apiServer{
		conf:      conf,
		version:   ver,
		radapter:  radapter,
		lex:       lex,
		jobLogger: jobLogger,
	}
	services = append(services, jobLogger, server)
	for _, m := range services {
		m.Start(ctx)
	}
	<-ctx.Done()
	log.Warn().Msg("shutdown signal received")
	shutdownServices(services)
	if err := radapter.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close Redis connection")
	}
}

func shutdownServices(services []service) {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var wg sync.WaitGroup
	for _, s := range services {
		wg.Add(1)
		go func(srv service) {
			defer wg.Done()
			if err := srv.Stop(shutdownCtx); err != nil {
				log.Error().Err(err).Type("service", srv).Msg("Error shutting down service")
			}
		}(s)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info().Msg("Graceful shutdown completed")
	case <-shutdownCtx.Done():
		log.Warn().Msg("Shutdown timed out")
	}
}
