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
	"conmap/extract"
	"conmap/hearst"
	"conmap/lexicon"
	"conmap/monitoring"
	"conmap/rdb"
	"strings"
	"time"
)

const (
	DefaultMaxTextLength = 100000
	DefaultJobTimeout    = 60 * time.Second
)

// Actions wraps all the HTTP actions of the CONMAP API.
// The extraction itself is performed by workers, the API server
// only enqueues jobs and waits for their results.
type Actions struct {
	radapter      *rdb.Adapter
	matcher       *hearst.Matcher
	lex           *lexicon.Lexicon
	validator     extract.Validator
	jobLogger     *monitoring.WorkerJobLogger
	artifactsDir  string
	publicURL     string
	maxTextLength int
	jobTimeout    time.Duration
}

// ActionsConf gathers values required by Actions which
// come from the application configuration
type ActionsConf struct {
	ArtifactsDir  string
	PublicURL     string
	MaxTextLength int
	JobTimeout    time.Duration
}

func NewActions(
	conf ActionsConf,
	radapter *rdb.Adapter,
	matcher *hearst.Matcher,
	lex *lexicon.Lexicon,
	validator extract.Validator,
	jobLogger *monitoring.WorkerJobLogger,
) *Actions {
	if conf.MaxTextLength <= 0 {
		conf.MaxTextLength = DefaultMaxTextLength
	}
	if conf.JobTimeout <= 0 {
		conf.JobTimeout = DefaultJobTimeout
	}
	return &Actions{
		radapter:      radapter,
		matcher:       matcher,
		lex:           lex,
		validator:     validator,
		jobLogger:     jobLogger,
		artifactsDir:  conf.ArtifactsDir,
		publicURL:     strings.TrimRight(conf.PublicURL, "/"),
		maxTextLength: conf.MaxTextLength,
		jobTimeout:    conf.JobTimeout,
	}
}
