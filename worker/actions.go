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

package worker

import (
	"context"
	"errors"
	"fmt"

	"conmap/merror"
	"conmap/rdb"
	"conmap/results"

	"github.com/google/uuid"
)

func (w *Worker) extract(ctx context.Context, args rdb.ExtractArgs) (*results.Extraction, error) {
	if args.RunID != "" {
		if _, err := uuid.Parse(args.RunID); err != nil {
			return nil, merror.InputError{Msg: fmt.Sprintf("invalid run ID: %s", args.RunID)}
		}
	}
	jctx, cancel := context.WithTimeout(ctx, w.jobTimeout)
	defer cancel()
	outcome, err := w.pipeline.RunInto(jctx, args.Text, args.RunID)
	if errors.Is(err, context.DeadlineExceeded) {
		return nil, merror.TimeoutError{Msg: fmt.Sprintf("extraction not finished within %s", w.jobTimeout)}

	} else if err != nil {
		return nil, merror.InternalError{Msg: err.Error()}
	}
	return results.NewExtraction(outcome), nil
}
