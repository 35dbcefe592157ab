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
	"fmt"

	"github.com/rs/zerolog/log"
)

type Conf struct {

	// HypernymLemma enables reducing hypernyms to their base form
	// using the configured lexicon. Default is true.
	HypernymLemma *bool `json:"hypernymLemma"`

	// DedupHyponyms removes repeated hyponyms within a hypernym
	// (e.g. when two patterns match the same text).
	DedupHyponyms bool `json:"dedupHyponyms"`
}

func (conf *Conf) UseHypernymLemma() bool {
	return conf.HypernymLemma == nil || *conf.HypernymLemma
}

func (conf *Conf) ValidateAndDefaults(confContext string) error {
	if conf == nil {
		return fmt.Errorf("missing configuration section `%s`", confContext)
	}
	if conf.HypernymLemma == nil {
		v := true
		conf.HypernymLemma = &v
		log.Warn().
			Bool("value", v).
			Msgf("`%s.hypernymLemma` not set, using default", confContext)
	}
	return nil
}
