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

package extract

import (
	"context"
	"strings"

	"conmap/hearst"
	"conmap/merror"

	"github.com/rs/zerolog/log"
)

// Normalizer turns a span of hyponym candidates into a set of
// candidate terms (unique, in the order of first occurrence)
type Normalizer interface {
	Normalize(span string) ([]string, error)
}

// Validator answers whether a hypernym-hyponym pair is confirmed
// by a lexical knowledge base. Unknown terms yield false.
type Validator interface {
	IsHypernymOf(hypernym, hyponym string) bool
}

// Lemmatizer provides a base form of a single word
type Lemmatizer interface {
	Lemma(word string) string
}

// ValidatedPair is a hypernym-hyponym relation confirmed by a Validator
type ValidatedPair struct {
	Hypernym string `json:"hypernym"`
	Hyponym  string `json:"hyponym"`
}

type Result struct {
	Matches []hearst.RawMatch `json:"matches"`
	Pairs   []ValidatedPair   `json:"pairs"`

	// NumFailures counts matches and candidates skipped due
	// to a failing collaborator
	NumFailures int `json:"numFailures"`
}

// ---------------------------------

type Option func(ex *Extractor)

// WithLemmatizer makes the extractor reduce hypernyms
// to their base forms (e.g. fruits -> fruit).
func WithLemmatizer(lm Lemmatizer) Option {
	return func(ex *Extractor) {
		ex.lemmatizer = lm
	}
}

// WithReservedTerms removes any pair where at least one side
// equals (case-insensitively) to one of the provided terms.
func WithReservedTerms(terms ...string) Option {
	return func(ex *Extractor) {
		for _, t := range terms {
			ex.reserved[strings.ToLower(strings.TrimSpace(t))] = true
		}
	}
}

// ---------------------------------

// Extractor turns pattern matches into validated
// hypernym-hyponym pairs.
type Extractor struct {
	matcher    *hearst.Matcher
	normalizer Normalizer
	validator  Validator
	lemmatizer Lemmatizer
	reserved   map[string]bool
}

func (ex *Extractor) Matcher() *hearst.Matcher {
	return ex.matcher
}

func (ex *Extractor) normalize(span string) (ans []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = merror.PanicValueToErr(r)
		}
	}()
	ans, err = ex.normalizer.Normalize(span)
	return
}

func (ex *Extractor) validate(hypernym, hyponym string) (ans bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = merror.PanicValueToErr(r)
		}
	}()
	ans = ex.validator.IsHypernymOf(hypernym, hyponym)
	return
}

func (ex *Extractor) hypernymTerm(span string) (ans string, err error) {
	ans = strings.ToLower(strings.TrimSpace(span))
	if ex.lemmatizer == nil || ans == "" {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			err = merror.PanicValueToErr(r)
		}
	}()
	ans = ex.lemmatizer.Lemma(ans)
	return
}

func (ex *Extractor) isReserved(term string) bool {
	return ex.reserved[strings.ToLower(term)]
}

// ExtractMatches validates already obtained matches. The function
// never fails because of a collaborator - failing matches or candidates
// are skipped. Only a cancelled context returns an error.
func (ex *Extractor) ExtractMatches(ctx context.Context, matches []hearst.RawMatch) (Result, error) {
	ans := Result{
		Matches: matches,
		Pairs:   make([]ValidatedPair, 0, len(matches)),
	}
	for _, match := range matches {
		if err := ctx.Err(); err != nil {
			return ans, err
		}
		hypernym, err := ex.hypernymTerm(match.HypernymSpan)
		if err != nil {
			log.Warn().
				Err(err).
				Int("patternId", match.PatternID).
				Str("span", match.HypernymSpan).
				Msg("failed to process hypernym, skipping match")
			ans.NumFailures++
			continue
		}
		if hypernym == "" || ex.isReserved(hypernym) {
			continue
		}
		candidates, err := ex.normalize(match.HyponymsSpan)
		if err != nil {
			log.Warn().
				Err(err).
				Int("patternId", match.PatternID).
				Int("start", match.Start).
				Msg("failed to normalize hyponyms, skipping match")
			ans.NumFailures++
			continue
		}
		for _, hyponym := range candidates {
			if hyponym == hypernym || ex.isReserved(hyponym) {
				continue
			}
			ok, err := ex.validate(hypernym, hyponym)
			if err != nil {
				log.Warn().
					Err(err).
					Str("hypernym", hypernym).
					Str("hyponym", hyponym).
					Msg("failed to validate pair, skipping")
				ans.NumFailures++
				continue
			}
			if ok {
				ans.Pairs = append(ans.Pairs, ValidatedPair{Hypernym: hypernym, Hyponym: hyponym})
			}
		}
	}
	log.Debug().
		Int("numMatches", len(ans.Matches)).
		Int("numPairs", len(ans.Pairs)).
		Int("numFailures", ans.NumFailures).
		Msg("extracted relations")
	return ans, nil
}

// ExtractContext finds all the pattern matches in text and
// validates them.
func (ex *Extractor) ExtractContext(ctx context.Context, text string) (Result, error) {
	return ex.ExtractMatches(ctx, ex.matcher.Match(text))
}

func (ex *Extractor) Extract(text string) Result {
	ans, _ := ex.ExtractContext(context.Background(), text)
	return ans
}

func NewExtractor(
	matcher *hearst.Matcher,
	normalizer Normalizer,
	validator Validator,
	opts ...Option,
) *Extractor {
	ans := &Extractor{
		matcher:    matcher,
		normalizer: normalizer,
		validator:  validator,
		reserved:   make(map[string]bool),
	}
	for _, opt := range opts {
		opt(ans)
	}
	return ans
}
