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
	"net/http"
	"net/http/httptest"
	"testing"

	"conmap/cnf"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newMiddlewareEngine(conf *cnf.Conf) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(CORSMiddleware(conf))
	engine.GET("/patterns", func(ctx *gin.Context) { ctx.String(http.StatusOK, "ok") })
	protected := engine.Group("/tools").Use(AuthRequired(conf))
	protected.GET("/lexicon-lookup", func(ctx *gin.Context) { ctx.String(http.StatusOK, "ok") })
	return engine
}

func TestCORSMiddleware(t *testing.T) {
	engine := newMiddlewareEngine(&cnf.Conf{CorsAllowedOrigins: []string{"https://example.org"}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/patterns", nil)
	req.Header.Set("Origin", "https://example.org")
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://example.org", w.Header().Get("Access-Control-Allow-Origin"))

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/patterns", nil)
	req.Header.Set("Origin", "https://elsewhere.org")
	engine.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodOptions, "/patterns", nil)
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestAuthRequired(t *testing.T) {
	engine := newMiddlewareEngine(&cnf.Conf{
		AuthHeaderName: "X-Api-Key",
		AuthTokens:     []string{"secret"},
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tools/lexicon-lookup", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tools/lexicon-lookup", nil)
	req.Header.Set("X-Api-Key", "secret")
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthNotConfigured(t *testing.T) {
	engine := newMiddlewareEngine(&cnf.Conf{})
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tools/lexicon-lookup", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
