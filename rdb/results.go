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

package rdb

import (
	"encoding/json"
	"fmt"
	"time"

	"conmap/results"

	"github.com/bytedance/sonic"
)

// WorkerResult wraps a job result together with information
// about the worker and processing times.
type WorkerResult struct {
	ID           string             `json:"id"`
	WorkerID     string             `json:"workerId"`
	ResultType   results.ResultType `json:"resultType"`
	Value        json.RawMessage    `json:"value"`
	HasUserError bool               `json:"hasUserError"`
	ProcBegin    time.Time          `json:"procBegin"`
	ProcEnd      time.Time          `json:"procEnd"`
}

// AttachValue serializes the value and stores it
// along with its type.
func (wr *WorkerResult) AttachValue(value results.SerializableResult) error {
	data, err := sonic.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to attach result value: %w", err)
	}
	wr.Value = data
	wr.ResultType = value.Type()
	return nil
}

// DecodeValue deserializes the value into the provided target
// (typically a pointer to a concrete result type).
func (wr *WorkerResult) DecodeValue(target results.SerializableResult) error {
	if wr.ResultType != target.Type() {
		return fmt.Errorf(
			"unexpected result type %s (expected %s)", wr.ResultType, target.Type())
	}
	if err := sonic.Unmarshal(wr.Value, target); err != nil {
		return fmt.Errorf("failed to decode result value: %w", err)
	}
	return nil
}

// Err returns an error in case the result is an ErrorResult
// or a result with its own error.
func (wr *WorkerResult) Err() error {
	var errRes results.ErrorResult
	if wr.ResultType == results.ResultTypeError {
		if err := sonic.Unmarshal(wr.Value, &errRes); err != nil {
			return fmt.Errorf("failed to decode error result: %w", err)
		}
		if err := errRes.Err(); err != nil {
			return err
		}
		return fmt.Errorf("unspecified worker error")
	}
	if err := sonic.Unmarshal(wr.Value, &errRes); err == nil && errRes.Error != "" {
		return errRes.Err()
	}
	return nil
}

// JobLog creates a monitoring record out of the result
func (wr *WorkerResult) JobLog(fn string) results.JobLog {
	return results.JobLog{
		WorkerID: wr.WorkerID,
		Func:     fn,
		Begin:    wr.ProcBegin,
		End:      wr.ProcEnd,
		Err:      wr.Err(),
	}
}

func CreateWorkerResult(value results.SerializableResult) (*WorkerResult, error) {
	ans := new(WorkerResult)
	if err := ans.AttachValue(value); err != nil {
		return nil, err
	}
	return ans, nil
}
