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
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/rs/zerolog/log"
)

const (
	WordNetNounData       = "data.noun"
	WordNetNounExceptions = "noun.exc"

	ptrHypernym         = "@"
	ptrInstanceHypernym = "@i"
)

// parseDataLine parses a single line of a WordNet `data.noun` file.
// Format:
// offset lex_filenum ss_type w_cnt [word lex_id]... p_cnt [ptr offset pos src_trg]... | gloss
func parseDataLine(line string) (Synset, error) {
	var ans Synset
	data, gloss, _ := strings.Cut(line, "|")
	ans.Gloss = strings.TrimSpace(gloss)
	items := strings.Fields(data)
	if len(items) < 4 {
		return ans, fmt.Errorf("too few fields in synset record")
	}
	ans.ID = items[0]
	wCnt, err := strconv.ParseInt(items[3], 16, 32)
	if err != nil {
		return ans, fmt.Errorf("invalid word count `%s`: %w", items[3], err)
	}
	pos := 4
	ans.Words = make([]string, 0, wCnt)
	for i := 0; i < int(wCnt); i++ {
		if pos+1 >= len(items) {
			return ans, fmt.Errorf("truncated word list in synset %s", ans.ID)
		}
		ans.Words = append(ans.Words, items[pos])
		pos += 2
	}
	if pos >= len(items) {
		return ans, fmt.Errorf("missing pointer count in synset %s", ans.ID)
	}
	pCnt, err := strconv.Atoi(items[pos])
	if err != nil {
		return ans, fmt.Errorf("invalid pointer count in synset %s: %w", ans.ID, err)
	}
	pos++
	for i := 0; i < pCnt; i++ {
		if pos+3 >= len(items) {
			return ans, fmt.Errorf("truncated pointer list in synset %s", ans.ID)
		}
		symbol, target, targetPOS := items[pos], items[pos+1], items[pos+2]
		if targetPOS == "n" {
			switch symbol {
			case ptrHypernym:
				ans.Hypernyms = append(ans.Hypernyms, target)
			case ptrInstanceHypernym:
				ans.InstanceHypernyms = append(ans.InstanceHypernyms, target)
			}
		}
		pos += 4
	}
	return ans, nil
}

// ReadWordNetData reads synsets from a WordNet data file. License
// lines (starting with spaces) are skipped.
func ReadWordNetData(r io.Reader, lex *Lexicon) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var lineNum int
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, " ") {
			continue
		}
		synset, err := parseDataLine(line)
		if err != nil {
			return fmt.Errorf("failed to parse line %d: %w", lineNum, err)
		}
		lex.AddSynset(synset)
	}
	return scanner.Err()
}

// ReadWordNetExceptions reads a morphological exception list
// (e.g. `noun.exc`) where each line contains an inflected form
// followed by one or more base forms.
func ReadWordNetExceptions(r io.Reader, lex *Lexicon) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		items := strings.Fields(scanner.Text())
		if len(items) < 2 {
			continue
		}
		lex.AddException(items[0], items[1:]...)
	}
	return scanner.Err()
}

// LoadWordNetDir loads nouns from a WordNet `dict` directory.
// The `data.noun` file is required, the `noun.exc` is optional.
func LoadWordNetDir(dir string) (*Lexicon, error) {
	lex := NewLexicon()
	dataPath := filepath.Join(dir, WordNetNounData)
	isFile, err := fs.IsFile(dataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to test WordNet data file: %w", err)
	}
	if !isFile {
		return nil, fmt.Errorf("WordNet data file %s not found", dataPath)
	}
	f, err := os.Open(dataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open WordNet data: %w", err)
	}
	defer f.Close()
	if err := ReadWordNetData(f, lex); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dataPath, err)
	}

	excPath := filepath.Join(dir, WordNetNounExceptions)
	if !fs.PathExists(excPath) {
		log.Warn().
			Str("path", excPath).
			Msg("WordNet exception list not found, irregular plurals will not be resolved")
		return lex, nil
	}
	fexc, err := os.Open(excPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open WordNet exceptions: %w", err)
	}
	defer fexc.Close()
	if err := ReadWordNetExceptions(fexc, lex); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", excPath, err)
	}
	return lex, nil
}
