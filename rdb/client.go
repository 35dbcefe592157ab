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

package rdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"conmap/results"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	MsgNewQuery                = "newQuery"
	DefaultQueueKey            = "conmapQueue"
	DefaultResultChannelPrefix = "conmapResults"
	DefaultQueryChannel        = "conmapQueries"

	connTestInterval = 2 * time.Second
)

var (
	ErrorEmptyQueue = errors.New("no queries in the queue")
)

type Query struct {
	Channel string          `json:"channel"`
	Func    string          `json:"func"`
	Args    json.RawMessage `json:"args"`
}

func (q Query) ToJSON() (string, error) {
	ans, err := sonic.Marshal(q)
	if err != nil {
		return "", err
	}
	return string(ans), nil
}

// DecodeArgs deserializes query arguments into the target
func (q Query) DecodeArgs(target any) error {
	if err := sonic.Unmarshal(q.Args, target); err != nil {
		return fmt.Errorf("failed to decode arguments of %s: %w", q.Func, err)
	}
	return nil
}

func NewQuery(fn string, args any) (Query, error) {
	data, err := sonic.Marshal(args)
	if err != nil {
		return Query{}, fmt.Errorf("failed to encode arguments of %s: %w", fn, err)
	}
	return Query{Func: fn, Args: data}, nil
}

func DecodeQuery(q string) (Query, error) {
	var ans Query
	err := sonic.Unmarshal([]byte(q), &ans)
	return ans, err
}

// ----

// Adapter provides a Redis-based job queue. The API server
// publishes queries and waits for results, workers dequeue
// queries and publish results.
type Adapter struct {
	ctx                 context.Context
	c                   *redis.Client
	queueKey            string
	channelQuery        string
	channelResultPrefix string
	resultExpiration    time.Duration
	querySub            *redis.PubSub
}

// TestConnection pings Redis repeatedly until it responds
// or the timeout is reached.
func (a *Adapter) TestConnection(timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		err := a.c.Ping(a.ctx).Err()
		if err == nil {
			log.Info().Msg("connection to Redis OK")
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("failed to connect to Redis: %w", err)
		}
		log.Warn().Err(err).Msg("Redis not ready, will try again")
		select {
		case <-a.ctx.Done():
			return a.ctx.Err()
		case <-time.After(connTestInterval):
		}
	}
}

func (a *Adapter) SomeoneListens(query Query) (bool, error) {
	cmd := a.c.PubSubNumSub(a.ctx, query.Channel)
	if cmd.Err() != nil {
		return false, fmt.Errorf("failed to check channel listeners: %w", cmd.Err())
	}
	return cmd.Val()[query.Channel] > 0, nil
}

func (a *Adapter) fetchResult(key string) *WorkerResult {
	result := new(WorkerResult)
	cmd := a.c.Get(a.ctx, key)
	if cmd.Err() != nil {
		result.AttachValue(&results.ErrorResult{Error: cmd.Err().Error()})
		return result
	}
	if err := sonic.Unmarshal([]byte(cmd.Val()), result); err != nil {
		result.AttachValue(&results.ErrorResult{Error: err.Error()})
	}
	return result
}

// PublishQuery enqueues a new query and returns a channel where
// the result will be sent once a worker finishes the job. In case
// the ctx is done before a result arrives, an ErrorResult is sent.
// The channel is always closed after sending a single value.
func (a *Adapter) PublishQuery(ctx context.Context, query Query) (<-chan *WorkerResult, error) {
	query.Channel = fmt.Sprintf("%s:%s", a.channelResultPrefix, uuid.New().String())
	log.Debug().
		Str("channel", query.Channel).
		Str("func", query.Func).
		Msg("publishing query")

	msg, err := query.ToJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to publish query: %w", err)
	}
	// we must subscribe before the query is enqueued, otherwise
	// a fast worker could send its result to nobody
	sub := a.c.Subscribe(a.ctx, query.Channel)
	if _, err := sub.Receive(ctx); err != nil {
		sub.Close()
		return nil, fmt.Errorf("failed to subscribe for result: %w", err)
	}
	if err := a.c.LPush(a.ctx, a.queueKey, msg).Err(); err != nil {
		sub.Close()
		return nil, fmt.Errorf("failed to publish query: %w", err)
	}
	ans := make(chan *WorkerResult, 1)

	go func() {
		defer close(ans)
		defer sub.Close()
		select {
		case item, ok := <-sub.Channel():
			if !ok {
				result := new(WorkerResult)
				result.AttachValue(
					&results.ErrorResult{Func: query.Func, Error: "result channel closed"})
				ans <- result
				return
			}
			ans <- a.fetchResult(item.Payload)
		case <-ctx.Done():
			result := new(WorkerResult)
			result.AttachValue(
				&results.ErrorResult{Func: query.Func, Error: ctx.Err().Error()})
			ans <- result
		}
	}()
	return ans, a.c.Publish(a.ctx, a.channelQuery, MsgNewQuery).Err()
}

func (a *Adapter) DequeueQuery() (Query, error) {
	cmd := a.c.RPop(a.ctx, a.queueKey)
	if cmd.Err() == redis.Nil {
		return Query{}, ErrorEmptyQueue

	} else if cmd.Err() != nil {
		return Query{}, fmt.Errorf("failed to dequeue query: %w", cmd.Err())
	}
	q, err := DecodeQuery(cmd.Val())
	if err != nil {
		return Query{}, fmt.Errorf("failed to deserialize query: %w", err)
	}
	return q, nil
}

// PublishResult stores the result under the channel name key
// and notifies the waiting client.
func (a *Adapter) PublishResult(channelName string, value *WorkerResult) error {
	log.Debug().
		Str("channel", channelName).
		Str("resultType", value.ResultType.String()).
		Msg("publishing result")
	data, err := sonic.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize result: %w", err)
	}
	if err := a.c.Set(a.ctx, channelName, string(data), a.resultExpiration).Err(); err != nil {
		return fmt.Errorf("failed to store result: %w", err)
	}
	return a.c.Publish(a.ctx, channelName, channelName).Err()
}

// Subscribe provides notifications about new queries
func (a *Adapter) Subscribe() <-chan *redis.Message {
	a.querySub = a.c.Subscribe(a.ctx, a.channelQuery)
	return a.querySub.Channel()
}

func (a *Adapter) Close() error {
	if a.querySub != nil {
		if err := a.querySub.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close query subscription")
		}
	}
	return a.c.Close()
}

func NewAdapter(conf *Conf, ctx context.Context) *Adapter {
	expiration := time.Duration(conf.ResultExpirationSecs) * time.Second
	if expiration == 0 {
		expiration = time.Duration(dfltResultExpirationSecs) * time.Second
	}
	queueKey := conf.QueueKey
	if queueKey == "" {
		queueKey = DefaultQueueKey
	}
	chRes := conf.ChannelResultPrefix
	if chRes == "" {
		chRes = DefaultResultChannelPrefix
	}
	chQuery := conf.ChannelQuery
	if chQuery == "" {
		chQuery = DefaultQueryChannel
	}
	return &Adapter{
		c: redis.NewClient(&redis.Options{
			Addr:     conf.ServerInfo(),
			Password: conf.Password,
			DB:       conf.DB,
		}),
		ctx:                 ctx,
		queueKey:            queueKey,
		channelQuery:        chQuery,
		channelResultPrefix: chRes,
		resultExpiration:    expiration,
	}
}
