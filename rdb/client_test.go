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
	"strconv"
	"testing"
	"time"

	"conmap/results"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T) (*Adapter, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)
	conf := &Conf{Host: mr.Host(), Port: port}
	require.NoError(t, conf.ValidateAndDefaults("redis"))
	a := NewAdapter(conf, context.Background())
	t.Cleanup(func() { a.Close() })
	return a, mr
}

func TestConfDefaults(t *testing.T) {
	conf := &Conf{}
	require.NoError(t, conf.ValidateAndDefaults("redis"))
	assert.Equal(t, "localhost:6379", conf.ServerInfo())
	assert.Equal(t, DefaultQueueKey, conf.QueueKey)
	assert.Equal(t, DefaultQueryChannel, conf.ChannelQuery)
	assert.Equal(t, DefaultResultChannelPrefix, conf.ChannelResultPrefix)

	conf = &Conf{ResultExpirationSecs: -1}
	assert.Error(t, conf.ValidateAndDefaults("redis"))
}

func TestTestConnection(t *testing.T) {
	a, _ := newTestAdapter(t)
	assert.NoError(t, a.TestConnection(time.Second))
}

func TestDequeueEmptyQueue(t *testing.T) {
	a, _ := newTestAdapter(t)
	_, err := a.DequeueQuery()
	assert.ErrorIs(t, err, ErrorEmptyQueue)
}

func TestQueryArgs(t *testing.T) {
	q, err := NewQuery(FuncExtract, ExtractArgs{Text: "Fruits such as apples", RunID: "r1"})
	require.NoError(t, err)
	data, err := q.ToJSON()
	require.NoError(t, err)
	q2, err := DecodeQuery(data)
	require.NoError(t, err)
	var args ExtractArgs
	require.NoError(t, q2.DecodeArgs(&args))
	assert.Equal(t, "Fruits such as apples", args.Text)
	assert.Equal(t, "r1", args.RunID)
}

func TestPublishQueryRoundTrip(t *testing.T) {
	a, _ := newTestAdapter(t)
	q, err := NewQuery(FuncExtract, ExtractArgs{Text: "Dogs are kinds of animals"})
	require.NoError(t, err)
	wait, err := a.PublishQuery(context.Background(), q)
	require.NoError(t, err)

	dq, err := a.DequeueQuery()
	require.NoError(t, err)
	assert.Equal(t, FuncExtract, dq.Func)
	assert.NotEmpty(t, dq.Channel)
	listens, err := a.SomeoneListens(dq)
	require.NoError(t, err)
	assert.True(t, listens)

	wr, err := CreateWorkerResult(&results.Extraction{Status: "noRelations"})
	require.NoError(t, err)
	wr.WorkerID = "w1"
	require.NoError(t, a.PublishResult(dq.Channel, wr))

	select {
	case res := <-wait:
		require.NotNil(t, res)
		assert.Equal(t, "w1", res.WorkerID)
		assert.Equal(t, results.ResultTypeExtraction, res.ResultType)
		assert.NoError(t, res.Err())
		var ext results.Extraction
		require.NoError(t, res.DecodeValue(&ext))
		assert.Equal(t, "noRelations", string(ext.Status))
	case <-time.After(5 * time.Second):
		t.Fatal("result not received")
	}
}

func TestPublishQueryCancelled(t *testing.T) {
	a, _ := newTestAdapter(t)
	q, err := NewQuery(FuncExtract, ExtractArgs{Text: "foo"})
	require.NoError(t, err)
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	wait, err := a.PublishQuery(ctx, q)
	require.NoError(t, err)
	res := <-wait
	assert.Equal(t, results.ResultTypeError, res.ResultType)
	assert.ErrorContains(t, res.Err(), "deadline exceeded")
}

func TestSomeoneListensAbandoned(t *testing.T) {
	a, _ := newTestAdapter(t)
	listens, err := a.SomeoneListens(Query{Channel: "conmapResults:foo"})
	require.NoError(t, err)
	assert.False(t, listens)
}

func TestWorkerResultErrors(t *testing.T) {
	wr, err := CreateWorkerResult(&results.ErrorResult{Func: FuncExtract, Error: "worker panicked"})
	require.NoError(t, err)
	assert.EqualError(t, wr.Err(), "worker panicked")
	var ext results.Extraction
	assert.Error(t, wr.DecodeValue(&ext))

	wr, err = CreateWorkerResult(&results.Extraction{Error: "failed"})
	require.NoError(t, err)
	assert.EqualError(t, wr.Err(), "failed")

	begin := time.Now()
	wr.ProcBegin = begin
	wr.ProcEnd = begin.Add(time.Second)
	wr.WorkerID = "w2"
	jl := wr.JobLog(FuncExtract)
	assert.Equal(t, "w2", jl.WorkerID)
	assert.Equal(t, time.Second, jl.TimeSpent())
	assert.Error(t, jl.Err)
}
