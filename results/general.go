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
	"math"
	"time"

	"github.com/bytedance/sonic"
)

const (
	ResultTypeExtraction ResultType = "extraction"
	ResultTypeError      ResultType = "error"
)

type ResultType string // @name ResultType

func (rt ResultType) String() string {
	return string(rt)
}

// SerializableResult is a result of a worker job which
// can be sent back to the API server.
type SerializableResult interface {
	Err() error
	Type() ResultType
}

// ----

type JobLog struct {
	WorkerID string    `json:"workerId"`
	Func     string    `json:"func"`
	Begin    time.Time `json:"begin"`
	End      time.Time `json:"end"`
	Err      error     `json:"error"`
}

func (jl JobLog) TimeSpent() time.Duration {
	return jl.End.Sub(jl.Begin)
}

func (jl JobLog) MarshalJSON() ([]byte, error) {
	var errStr string
	if jl.Err != nil {
		errStr = jl.Err.Error()
	}
	return sonic.Marshal(
		struct {
			WorkerID string    `json:"workerId"`
			Func     string    `json:"func"`
			Begin    time.Time `json:"begin"`
			End      time.Time `json:"end"`
			Err      string    `json:"error,omitempty"`
		}{
			WorkerID: jl.WorkerID,
			Func:     jl.Func,
			Begin:    jl.Begin,
			End:      jl.End,
			Err:      errStr,
		},
	)
}

// NormRound performs a normalized rounding to
// the three decimal places so we can provide
// consistent rounding across all the results
func NormRound(val float64) float64 {
	return math.Round(val*1000) / 1000
}
