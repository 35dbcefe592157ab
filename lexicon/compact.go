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
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"

	"github.com/bytedance/sonic"
	"gopkg.in/yaml.v3"
)

//go:embed data/basic.yaml
var embeddedData embed.FS

const embeddedLexiconPath = "data/basic.yaml"

// compactLexicon is a serialization format for small hand-made
// lexicons. It is available both as YAML and JSON.
type compactLexicon struct {
	Synsets    []Synset            `json:"synsets" yaml:"synsets"`
	Exceptions map[string][]string `json:"exceptions" yaml:"exceptions"`
}

func (cl *compactLexicon) toLexicon() (*Lexicon, error) {
	lex := NewLexicon()
	for _, s := range cl.Synsets {
		if s.ID == "" {
			return nil, fmt.Errorf("synset with words %v has no ID", s.Words)
		}
		lex.AddSynset(s)
	}
	for form, bases := range cl.Exceptions {
		lex.AddException(form, bases...)
	}
	if err := lex.Validate(); err != nil {
		return nil, err
	}
	return lex, nil
}

// ReadYAML reads a lexicon in the compact YAML format
func ReadYAML(r io.Reader) (*Lexicon, error) {
	var data compactLexicon
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode YAML lexicon: %w", err)
	}
	return data.toLexicon()
}

// ReadJSON reads a lexicon in the compact JSON format
func ReadJSON(r io.Reader) (*Lexicon, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read JSON lexicon: %w", err)
	}
	var data compactLexicon
	if err := sonic.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to decode JSON lexicon: %w", err)
	}
	return data.toLexicon()
}

func LoadYAML(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open lexicon %s: %w", path, err)
	}
	defer f.Close()
	return ReadYAML(f)
}

func LoadJSON(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open lexicon %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

// LoadEmbedded loads a small built-in English lexicon. It is
// intended for testing and for deployments without a WordNet
// installation.
func LoadEmbedded() (*Lexicon, error) {
	data, err := embeddedData.ReadFile(embeddedLexiconPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded lexicon: %w", err)
	}
	return ReadYAML(bytes.NewReader(data))
}
