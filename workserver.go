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
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"conmap/cnf"
	"conmap/lexicon"
	"conmap/pipeline"
	"conmap/rdb"
	"conmap/worker"

	"github.com/rs/zerolog/log"
)

func getWorkerID() (workerID string) {
	workerID = getEnv("WORKER_ID")
	if workerID == "" {
		workerID = strconv.Itoa(os.Getpid())
	}
	return
}

func runWorker(conf *cnf.Conf) {
	workerID := getWorkerID()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	radapter := rdb.NewAdapter(conf.Redis, ctx)
	err := radapter.TestConnection(redisConnectionTestTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}

	lex, err := lexicon.Open(conf.Lexicon)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load lexicon")
	}
	pl, err := pipeline.NewFromConf(lex, conf.Lexicon, conf.Extract, conf.Render)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize extraction pipeline")
	}

	ch := radapter.Subscribe()
	wrk := worker.NewWorker(workerID, radapter, ch, pl, conf.JobTimeout())

	services := []service{wrk}
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
