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

package handlers

import (
	"conmap/monitoring"
	"conmap/results"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := monitoring.NewWorkerJobLogger(nil, time.UTC)
	t0 := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	logger.Log(results.JobLog{
		WorkerID: "w1", Func: "extract", Begin: t0, End: t0.Add(time.Second)})
	logger.Log(results.JobLog{
		WorkerID: "w1", Func: "extract", Begin: t0.Add(time.Second), End: t0.Add(3 * time.Second)})
	actions := NewActions(logger)
	engine := gin.New()
	engine.GET("/monitoring/workers-load", actions.WorkersLoad)
	engine.GET("/monitoring/workers-load/:workerId", actions.SingleWorkerLoad)
	engine.GET("/monitoring/recent-records", actions.RecentRecords)
	return engine
}

func doGet(engine *gin.Engine, url string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	engine.ServeHTTP(w, req)
	return w
}

func TestWorkersLoad(t *testing.T) {
	engine := newTestEngine()
	for _, span := range []string{"recent", "total"} {
		w := doGet(engine, "/monitoring/workers-load?span="+span)
		require.Equal(t, http.StatusOK, w.Code)
		var ans map[string]any
		require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &ans))
		assert.Equal(t, 2.0, ans["numJobs"])
		assert.Equal(t, 1.0, ans["numWorkers"])
	}
}

func TestWorkersLoadInvalidSpan(t *testing.T) {
	w := doGet(newTestEngine(), "/monitoring/workers-load?span=yesterday")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSingleWorkerLoad(t *testing.T) {
	engine := newTestEngine()
	w := doGet(engine, "/monitoring/workers-load/w1?span=total")
	require.Equal(t, http.StatusOK, w.Code)
	var ans map[string]any
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &ans))
	assert.Equal(t, 2.0, ans["numJobs"])
	assert.InDelta(t, 3.0, ans["totalTimeSecs"], 0.0001)

	w = doGet(engine, "/monitoring/workers-load/w7")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRecentRecords(t *testing.T) {
	w := doGet(newTestEngine(), "/monitoring/recent-records")
	require.Equal(t, http.StatusOK, w.Code)
	var ans []map[string]any
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &ans))
	require.Len(t, ans, 2)
	assert.Equal(t, "w1", ans[0]["workerId"])
	assert.NotContains(t, ans[0], "error")
}
