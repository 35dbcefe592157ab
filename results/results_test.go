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
	"testing"
	"time"

	"conmap/extract"
	"conmap/pipeline"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobLogMarshalJSON(t *testing.T) {
	t0 := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	jl := JobLog{
		WorkerID: "w1",
		Func:     "extract",
		Begin:    t0,
		End:      t0.Add(1500 * time.Millisecond),
		Err:      errors.New("lexicon not available"),
	}
	assert.Equal(t, 1500*time.Millisecond, jl.TimeSpent())
	data, err := sonic.Marshal(jl)
	require.NoError(t, err)
	var ans map[string]any
	require.NoError(t, sonic.Unmarshal(data, &ans))
	assert.Equal(t, "w1", ans["workerId"])
	assert.Equal(t, "lexicon not available", ans["error"])

	jl.Err = nil
	data, err = sonic.Marshal(jl)
	require.NoError(t, err)
	ans = map[string]any{}
	require.NoError(t, sonic.Unmarshal(data, &ans))
	assert.NotContains(t, ans, "error")
}

func TestErrorResult(t *testing.T) {
	res := &ErrorResult{Func: "extract", Error: "failed"}
	assert.EqualError(t, res.Err(), "failed")
	assert.Equal(t, ResultTypeError, res.Type())
	assert.NoError(t, (&ErrorResult{}).Err())
}

func TestNewExtraction(t *testing.T) {
	grouped := extract.Group([]extract.ValidatedPair{
		{Hypernym: "fruit", Hyponym: "apple"},
		{Hypernym: "fruit", Hyponym: "banana"},
	})
	outcome := &pipeline.Outcome{
		Pairs:       []extract.ValidatedPair{{Hypernym: "fruit", Hyponym: "apple"}},
		Grouped:     grouped,
		NumFailures: 1,
		ProcTime:    1234567 * time.Microsecond,
	}
	ext := NewExtraction(outcome)
	assert.Equal(t, pipeline.StatusOK, ext.Status)
	assert.Equal(t, 1.235, ext.ProcTimeSecs)
	assert.Equal(t, ResultTypeExtraction, ext.Type())
	assert.NoError(t, ext.Err())

	data, err := sonic.Marshal(ext)
	require.NoError(t, err)
	var decoded Extraction
	require.NoError(t, sonic.Unmarshal(data, &decoded))
	assert.Equal(t, []string{"apple", "banana"}, decoded.Relations.Hyponyms("fruit"))
	assert.Equal(t, 1, decoded.NumFailures)
}

func TestNormRound(t *testing.T) {
	assert.Equal(t, 0.333, NormRound(1.0/3.0))
	assert.Equal(t, 2.0, NormRound(1.9999))
}
