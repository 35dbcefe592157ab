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
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"conmap/cnf"
	"conmap/lexicon"
	"conmap/pipeline"
)

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// writeOutcome prints a human readable summary of a pipeline run
func writeOutcome(w io.Writer, outcome *pipeline.Outcome) {
	switch outcome.Status() {
	case pipeline.StatusEmpty:
		fmt.Fprintln(w, "Please provide a text to analyze.")
		return
	case pipeline.StatusNoRelations:
		fmt.Fprintln(w, "No hypernym/hyponym relations found.")
		return
	}
	fmt.Fprintf(w, "Relations found: %d\n", outcome.Grouped.Len())
	outcome.Grouped.Each(func(hypernym string, hyponyms []string) {
		fmt.Fprintf(w, "%s → %s\n", capitalize(hypernym), strings.Join(hyponyms, ", "))
	})
	if len(outcome.Artifacts) > 0 {
		fmt.Fprintln(w, "\nGenerated concept maps:")
		for _, art := range outcome.Artifacts {
			fmt.Fprintf(w, "%s (%s)\n", art.Path, art.Title)
		}
	}
}

func loadExtractConf(confPath string) (*cnf.Conf, error) {
	if confPath == "" || confPath == "-" {
		return cnf.ParseConfig([]byte("{}"), "")
	}
	rawData, err := os.ReadFile(confPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cnf.ParseConfig(rawData, confPath)
}

func readInput(inputPath, text string) (string, error) {
	if text != "" {
		return text, nil
	}
	var data []byte
	var err error
	if inputPath == "" || inputPath == "-" {
		data, err = io.ReadAll(os.Stdin)

	} else {
		data, err = os.ReadFile(inputPath)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read input text: %w", err)
	}
	return string(data), nil
}

// runExtract processes a single text within the current process
// (i.e. without Redis and workers) and prints the results.
func runExtract(w io.Writer, confPath, inputPath, text string) error {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.WarnLevel)
	conf, err := loadExtractConf(confPath)
	if err != nil {
		return err
	}
	if err := cnf.Validate(conf); err != nil {
		return err
	}
	lex, err := lexicon.Open(conf.Lexicon)
	if err != nil {
		return err
	}
	pl, err := pipeline.NewFromConf(lex, conf.Lexicon, conf.Extract, conf.Render)
	if err != nil {
		return err
	}
	input, err := readInput(inputPath, text)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	outcome, err := pl.Run(ctx, input)
	if err != nil {
		return err
	}
	writeOutcome(w, outcome)
	return nil
}
