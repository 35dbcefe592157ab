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

package results

import (
	"errors"

	"conmap/extract"
	"conmap/hearst"
	"conmap/pipeline"
	"conmap/render"
)

type ErrorResult struct {
	Func  string `json:"func"`
	Error string `json:"error"`
}

func (res *ErrorResult) Err() error {
	if res.Error != "" {
		return errors.New(res.Error)
	}
	return nil
}

func (res *ErrorResult) Type() ResultType {
	return ResultTypeError
}

// ----

// Extraction is a serializable outcome of a single
// pipeline run.
type Extraction struct {
	Status      pipeline.Status           `json:"status"`
	Matches     []hearst.RawMatch         `json:"matches"`
	Pairs       []extract.ValidatedPair   `json:"pairs"`
	Relations   *extract.GroupedRelations `json:"relations"`
	Artifacts   []render.Artifact         `json:"artifacts"`
	NumFailures int                       `json:"numFailures"`

	// ProcTimeSecs is the time spent within the pipeline
	ProcTimeSecs float64 `json:"procTimeSecs"`

	Error string `json:"error,omitempty"`
} // @name Extraction

func (res *Extraction) Err() error {
	if res.Error != "" {
		return errors.New(res.Error)
	}
	return nil
}

func (res *Extraction) Type() ResultType {
	return ResultTypeExtraction
}

func NewExtraction(outcome *pipeline.Outcome) *Extraction {
	return &Extraction{
		Status:       outcome.Status(),
		Matches:      outcome.Matches,
		Pairs:        outcome.Pairs,
		Relations:    outcome.Grouped,
		Artifacts:    outcome.Artifacts,
		NumFailures:  outcome.NumFailures,
		ProcTimeSecs: NormRound(outcome.ProcTime.Seconds()),
	}
}
