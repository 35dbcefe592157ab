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

package lexicon

import (
	"fmt"

	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/rs/zerolog/log"
)

const (
	SourceEmbedded = "embedded"
	SourceWordNet  = "wordnet"
	SourceYAML     = "yaml"
	SourceJSON     = "json"

	dfltRemoteTimeoutSecs = 10
)

// Conf configures both the lexical database and the way
// candidate terms are normalized and validated.
type Conf struct {

	// Source specifies the lexicon format (embedded, wordnet, yaml, json)
	Source string `json:"source"`

	// Path is either a WordNet `dict` directory (for the `wordnet` source)
	// or a path to a lexicon file.
	Path string `json:"path"`

	// InstanceHypernyms allows relations like Paris -> city where
	// the hyponym is an instance rather than a kind.
	InstanceHypernyms bool `json:"instanceHypernyms"`

	// AcceptUnknownTokens makes the normalizer keep lowercase words
	// not found in the lexicon. By default, only capitalized unknown
	// words (proper nouns) are kept.
	AcceptUnknownTokens bool `json:"acceptUnknownTokens"`

	// RemoteValidatorURL (if set) makes the service ask a remote
	// lexical service instead of the local lexicon when validating relations.
	RemoteValidatorURL string `json:"remoteValidatorUrl"`

	RemoteTimeoutSecs int `json:"remoteTimeoutSecs"`
}

func (conf *Conf) ValidateAndDefaults(confContext string) error {
	if conf == nil {
		return fmt.Errorf("missing configuration section `%s`", confContext)
	}
	if conf.Source == "" {
		conf.Source = SourceEmbedded
		log.Warn().
			Str("value", SourceEmbedded).
			Msgf("`%s.source` not set, using default", confContext)
	}
	switch conf.Source {
	case SourceEmbedded:
	case SourceWordNet:
		isDir, err := fs.IsDir(conf.Path)
		if err != nil {
			return fmt.Errorf("failed to test `%s.path`: %w", confContext, err)
		}
		if !isDir {
			return fmt.Errorf("`%s.path` must be a WordNet dict directory", confContext)
		}
	case SourceYAML, SourceJSON:
		isFile, err := fs.IsFile(conf.Path)
		if err != nil {
			return fmt.Errorf("failed to test `%s.path`: %w", confContext, err)
		}
		if !isFile {
			return fmt.Errorf("`%s.path` does not point to a file", confContext)
		}
	default:
		return fmt.Errorf("unknown `%s.source` value: %s", confContext, conf.Source)
	}
	if conf.RemoteValidatorURL != "" && conf.RemoteTimeoutSecs == 0 {
		conf.RemoteTimeoutSecs = dfltRemoteTimeoutSecs
		log.Warn().
			Int("value", dfltRemoteTimeoutSecs).
			Msgf("`%s.remoteTimeoutSecs` not set, using default", confContext)
	}
	return nil
}

// Open loads a lexicon based on the configuration.
// It is expected to be called once when the process starts.
func Open(conf *Conf) (*Lexicon, error) {
	var lex *Lexicon
	var err error
	switch conf.Source {
	case SourceEmbedded, "":
		lex, err = LoadEmbedded()
	case SourceWordNet:
		lex, err = LoadWordNetDir(conf.Path)
	case SourceYAML:
		lex, err = LoadYAML(conf.Path)
	case SourceJSON:
		lex, err = LoadJSON(conf.Path)
	default:
		err = fmt.Errorf("unknown lexicon source %s", conf.Source)
	}
	if err != nil {
		return nil, err
	}
	log.Info().
		Str("source", conf.Source).
		Str("path", conf.Path).
		Int("synsets", lex.Size()).
		Int("lemmas", lex.NumLemmas()).
		Msg("lexicon loaded")
	return lex, nil
}
