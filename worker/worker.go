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

package worker

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"conmap/merror"
	"conmap/pipeline"
	"conmap/rdb"
	"conmap/results"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	DefaultTickerInterval = 2 * time.Second
	DefaultJobTimeout     = 60 * time.Second
)

type Worker struct {
	ID         string
	messages   <-chan *redis.Message
	radapter   *rdb.Adapter
	ticker     *time.Ticker
	pipeline   *pipeline.Pipeline
	jobTimeout time.Duration
	done       chan struct{}
}

func (w *Worker) publishResult(
	res results.SerializableResult,
	query rdb.Query,
	begin time.Time,
	userError bool,
) error {
	ans, err := rdb.CreateWorkerResult(res)
	if err != nil {
		return err
	}
	ans.WorkerID = w.ID
	ans.ProcBegin = begin
	ans.ProcEnd = time.Now()
	ans.HasUserError = userError
	return w.radapter.PublishResult(query.Channel, ans)
}

func (w *Worker) publishError(query rdb.Query, err error, begin time.Time) error {
	var inputErr merror.InputError
	return w.publishResult(
		&results.ErrorResult{Func: query.Func, Error: err.Error()},
		query,
		begin,
		errors.As(err, &inputErr),
	)
}

func (w *Worker) runQueryProtected(ctx context.Context, query rdb.Query, begin time.Time) (ansErr error) {
	defer func() {
		if r := recover(); r != nil {
			ansErr = merror.RecoveredError{Msg: merror.PanicValueToErr(r).Error()}
			return
		}
	}()
	switch query.Func {
	case rdb.FuncExtract:
		var args rdb.ExtractArgs
		if err := query.DecodeArgs(&args); err != nil {
			return w.publishError(query, merror.InputError{Msg: err.Error()}, begin)
		}
		ans, err := w.extract(ctx, args)
		if err != nil {
			return w.publishError(query, err, begin)
		}
		return w.publishResult(ans, query, begin, false)
	default:
		return w.publishError(
			query,
			merror.InternalError{Msg: fmt.Sprintf("unknown query function: %s", query.Func)},
			begin,
		)
	}
}

func (w *Worker) tryNextQuery(ctx context.Context) error {
	time.Sleep(time.Duration(rand.Intn(40)) * time.Millisecond)
	query, err := w.radapter.DequeueQuery()
	if err == rdb.ErrorEmptyQueue {
		return nil

	} else if err != nil {
		return err
	}
	log.Debug().
		Str("channel", query.Channel).
		Str("func", query.Func).
		Msg("received query")

	isActive, err := w.radapter.SomeoneListens(query)
	if err != nil {
		return err
	}
	if !isActive {
		log.Warn().
			Str("func", query.Func).
			Str("channel", query.Channel).
			Msg("worker found an inactive query")
		return nil
	}

	begin := time.Now()
	err = w.runQueryProtected(ctx, query, begin)
	var rcvErr merror.RecoveredError
	if errors.As(err, &rcvErr) {
		log.Error().Err(err).Str("func", query.Func).Msg("worker panicked")
		ans := &results.ErrorResult{
			Error: fmt.Sprintf("worker panicked: %s", rcvErr.Error()),
			Func:  query.Func,
		}
		return w.publishResult(ans, query, begin, false)
	}
	return err
}

func (w *Worker) Listen(ctx context.Context) {
	defer close(w.done)
	for {
		select {
		case <-w.ticker.C:
			if err := w.tryNextQuery(ctx); err != nil {
				log.Error().Err(err).Msg("failed to process query")
			}
		case <-ctx.Done():
			log.Info().Msg("worker exiting")
			return
		case msg, ok := <-w.messages:
			if !ok {
				log.Warn().Msg("query notification channel closed, worker exiting")
				return
			}
			if msg.Payload == rdb.MsgNewQuery {
				if err := w.tryNextQuery(ctx); err != nil {
					log.Error().Err(err).Msg("failed to process query")
				}
			}
		}
	}
}

func (w *Worker) Start(ctx context.Context) {
	log.Info().Str("workerId", w.ID).Msg("starting worker")
	go w.Listen(ctx)
}

func (w *Worker) Stop(ctx context.Context) error {
	w.ticker.Stop()
	select {
	case <-w.done:
		log.Info().Str("workerId", w.ID).Msg("worker stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("failed to stop worker %s: %w", w.ID, ctx.Err())
	}
}

func NewWorker(
	workerID string,
	radapter *rdb.Adapter,
	messages <-chan *redis.Message,
	pl *pipeline.Pipeline,
	jobTimeout time.Duration,
) *Worker {
	if jobTimeout <= 0 {
		jobTimeout = DefaultJobTimeout
	}
	return &Worker{
		ID:         workerID,
		radapter:   radapter,
		messages:   messages,
		ticker:     time.NewTicker(DefaultTickerInterval),
		pipeline:   pl,
		jobTimeout: jobTimeout,
		done:       make(chan struct{}),
	}
}
