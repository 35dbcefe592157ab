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

package render

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/rs/zerolog/log"
)

const (
	FormatPNG  = "png"
	FormatDOT  = "dot"
	FormatNone = "none"

	DefaultLayoutSeed       = 42
	dfltLayoutIterations    = 50
	dfltOutputDir           = "concept_maps"
	dfltLabelFontSizePoints = 10
)

type Conf struct {

	// Format is one of `png`, `dot`, `none`
	Format string `json:"format"`

	// OutputDir is a directory where all the artifacts are stored.
	// In the server mode, each job writes to its own subdirectory.
	OutputDir string `json:"outputDir"`

	// Concurrency limits the number of graphs rendered in parallel.
	Concurrency int `json:"concurrency"`

	LayoutSeed int64 `json:"layoutSeed"`

	LayoutIterations int `json:"layoutIterations"`

	// FontPath is an optional TrueType font used for labels. If empty,
	// a built-in bitmap font is used.
	FontPath string `json:"fontPath"`
}

func (conf *Conf) ValidateAndDefaults(confContext string) error {
	if conf == nil {
		return fmt.Errorf("missing configuration section `%s`", confContext)
	}
	if conf.Format == "" {
		conf.Format = FormatPNG
		log.Warn().
			Str("value", conf.Format).
			Msgf("`%s.format` not set, using default", confContext)
	}
	switch conf.Format {
	case FormatPNG, FormatDOT, FormatNone:
	default:
		return fmt.Errorf("invalid `%s.format`: %s", confContext, conf.Format)
	}
	if conf.Format == FormatNone {
		return nil
	}
	if conf.OutputDir == "" {
		conf.OutputDir = filepath.Join(os.TempDir(), dfltOutputDir)
		log.Warn().
			Str("value", conf.OutputDir).
			Msgf("`%s.outputDir` not set, using default", confContext)
	}
	if !fs.PathExists(conf.OutputDir) {
		if err := os.MkdirAll(conf.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create `%s.outputDir`: %w", confContext, err)
		}
		log.Info().Str("path", conf.OutputDir).Msg("created output directory for artifacts")

	} else {
		isDir, err := fs.IsDir(conf.OutputDir)
		if err != nil {
			return fmt.Errorf("failed to test `%s.outputDir`: %w", confContext, err)
		}
		if !isDir {
			return fmt.Errorf("`%s.outputDir` is not a directory", confContext)
		}
	}
	if conf.Concurrency <= 0 {
		conf.Concurrency = runtime.NumCPU()
		log.Warn().
			Int("value", conf.Concurrency).
			Msgf("`%s.concurrency` not set, using default", confContext)
	}
	if conf.LayoutSeed == 0 {
		conf.LayoutSeed = DefaultLayoutSeed
	}
	if conf.LayoutIterations <= 0 {
		conf.LayoutIterations = dfltLayoutIterations
	}
	if conf.FontPath != "" {
		isFile, err := fs.IsFile(conf.FontPath)
		if err != nil {
			return fmt.Errorf("failed to test `%s.fontPath`: %w", confContext, err)
		}
		if !isFile {
			return fmt.Errorf("`%s.fontPath` does not point to a file", confContext)
		}
	}
	return nil
}
