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

package pipeline

import (
	"fmt"

	"conmap/cgraph"
	"conmap/extract"
	"conmap/hearst"
	"conmap/lexicon"
	"conmap/render"

	"github.com/rs/zerolog/log"
)

// NewValidator chooses between the local lexicon and a remote
// lexical service based on the configuration.
func NewValidator(lex *lexicon.Lexicon, lexConf *lexicon.Conf) extract.Validator {
	if lexConf.RemoteValidatorURL != "" {
		log.Info().
			Str("url", lexConf.RemoteValidatorURL).
			Msg("using remote relation validator")
		return lexicon.NewHTTPValidator(lexConf.RemoteValidatorURL, lexConf.RemoteTimeoutSecs)
	}
	return lexicon.NewValidator(lex, lexConf)
}

// NewFromConf builds the complete pipeline with the default
// pattern table on top of an already loaded lexicon.
func NewFromConf(
	lex *lexicon.Lexicon,
	lexConf *lexicon.Conf,
	extractConf *extract.Conf,
	renderConf *render.Conf,
) (*Pipeline, error) {
	matcher, err := hearst.NewMatcher(hearst.DefaultPatterns())
	if err != nil {
		return nil, fmt.Errorf("failed to create pipeline: %w", err)
	}
	normalizer := lexicon.NewNormalizer(lex, lexConf)
	validator := NewValidator(lex, lexConf)
	opts := []extract.Option{extract.WithReservedTerms(cgraph.RootLabel)}
	if extractConf.UseHypernymLemma() {
		opts = append(opts, extract.WithLemmatizer(normalizer))
	}
	renderer, err := render.NewRenderer(renderConf)
	if err != nil {
		return nil, fmt.Errorf("failed to create pipeline: %w", err)
	}
	return New(
		extract.NewExtractor(matcher, normalizer, validator, opts...),
		renderer,
		Options{
			DedupHyponyms: extractConf.DedupHyponyms,
			Concurrency:   renderConf.Concurrency,
		},
	), nil
}
