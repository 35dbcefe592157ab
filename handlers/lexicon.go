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
	"conmap/hearst"
	"conmap/lexicon"
	"errors"
	"net/http"
	"strings"

	"github.com/czcorpus/cnc-gokit/unireq"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
)

const (
	dfltMaxSynsets = 10
)

type patternInfo struct {
	hearst.Pattern
	Compiled string `json:"compiled"`
}

type patternsResponse struct {
	Patterns []patternInfo `json:"patterns"`
} // @name PatternsResponse

// Patterns godoc
// @Summary      Patterns
// @Description  Lists the ordered table of lexico-syntactic patterns used to find relations.
// @Produce      json
// @Success      200 {object} patternsResponse
// @Router       /patterns [get]
func (a *Actions) Patterns(ctx *gin.Context) {
	patterns := a.matcher.Patterns()
	ans := patternsResponse{Patterns: make([]patternInfo, len(patterns))}
	for i, p := range patterns {
		ans.Patterns[i] = patternInfo{Pattern: p, Compiled: p.Expanded()}
	}
	uniresp.WriteJSONResponse(ctx.Writer, ans)
}

type synsetRef struct {
	ID    string   `json:"id"`
	Words []string `json:"words"`
}

type synsetInfo struct {
	ID                string      `json:"id"`
	Words             []string    `json:"words"`
	Gloss             string      `json:"gloss,omitempty"`
	Hypernyms         []synsetRef `json:"hypernyms"`
	InstanceHypernyms []synsetRef `json:"instanceHypernyms,omitempty"`
}

type lookupResponse struct {
	Word         string       `json:"word"`
	Lemma        string       `json:"lemma,omitempty"`
	Synsets      []synsetInfo `json:"synsets"`
	Hypernym     string       `json:"hypernym,omitempty"`
	IsHypernymOf *bool        `json:"isHypernymOf,omitempty"`
} // @name LexiconLookupResponse

func (a *Actions) synsetRefs(ids []string) []synsetRef {
	ans := make([]synsetRef, 0, len(ids))
	for _, id := range ids {
		if s, ok := a.lex.Synset(id); ok {
			ans = append(ans, synsetRef{ID: s.ID, Words: s.Words})
		}
	}
	return ans
}

// LexiconLookup godoc
// @Summary      LexiconLookup
// @Description  Looks up a noun in the lexicon the relations are validated against. With the `hypernym` argument, it also tells whether the word is a direct hyponym of the hypernym.
// @Produce      json
// @Param        word query string true "a noun to look up"
// @Param        hypernym query string false "a possible hypernym of the word"
// @Param        maxSynsets query int false "max. number of synsets in the response" default(10)
// @Success      200 {object} lookupResponse
// @Failure      400 {object} any
// @Router       /tools/lexicon-lookup [get]
func (a *Actions) LexiconLookup(ctx *gin.Context) {
	word := strings.TrimSpace(ctx.Query("word"))
	if word == "" {
		uniresp.RespondWithErrorJSON(
			ctx, errors.New("missing `word` argument"), http.StatusBadRequest)
		return
	}
	maxSynsets, ok := unireq.GetURLIntArgOrFail(ctx, "maxSynsets", dfltMaxSynsets)
	if !ok {
		return
	}
	ans := lookupResponse{
		Word:    word,
		Synsets: []synsetInfo{},
	}
	if a.lex != nil {
		if lemma, ok := a.lex.Lemma(strings.ToLower(word)); ok {
			ans.Lemma = lemma
		}
		for i, s := range a.lex.Synsets(strings.ToLower(word)) {
			if i >= maxSynsets {
				break
			}
			ans.Synsets = append(ans.Synsets, a.mkSynsetInfo(s))
		}
	}
	if hypernym := strings.TrimSpace(ctx.Query("hypernym")); hypernym != "" && a.validator != nil {
		ans.Hypernym = hypernym
		isHyp := a.validator.IsHypernymOf(strings.ToLower(hypernym), strings.ToLower(word))
		ans.IsHypernymOf = &isHyp
	}
	uniresp.WriteJSONResponse(ctx.Writer, ans)
}

func (a *Actions) mkSynsetInfo(s *lexicon.Synset) synsetInfo {
	return synsetInfo{
		ID:                s.ID,
		Words:             s.Words,
		Gloss:             s.Gloss,
		Hypernyms:         a.synsetRefs(s.Hypernyms),
		InstanceHypernyms: a.synsetRefs(s.InstanceHypernyms),
	}
}
