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

package handlers

import (
	"conmap/extract"
	"conmap/merror"
	"conmap/pipeline"
	"conmap/rdb"
	"conmap/render"
	"conmap/results"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"unicode/utf8"

	"github.com/bytedance/sonic"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type extractRequest struct {
	Text string `json:"text"`
}

type artifactInfo struct {
	render.Artifact
	URL string `json:"url"`
}

type extractResponse struct {
	RunID        string                    `json:"runId"`
	Status       pipeline.Status           `json:"status"`
	Relations    *extract.GroupedRelations `json:"relations"`
	Pairs        []extract.ValidatedPair   `json:"pairs"`
	NumMatches   int                       `json:"numMatches"`
	NumFailures  int                       `json:"numFailures"`
	Artifacts    []artifactInfo            `json:"artifacts"`
	ProcTimeSecs float64                   `json:"procTimeSecs"`
} // @name ExtractResponse

// bytesPerChar bounds the encoded size of a single character,
// i.e. raw UTF-8 (max. 4 bytes) or a JSON `\uXXXX` escape
const bytesPerChar = 6

// bodyOverhead is a room for the JSON envelope
const bodyOverhead = 1024

func maxBodySize(maxTextLength int) int64 {
	return int64(maxTextLength)*bytesPerChar + bodyOverhead
}

// readText obtains the input text either from a JSON
// object `{"text": "..."}` or from a plain text body.
// Bodies which cannot fit maxTextLength characters are
// rejected without being read completely.
func readText(ctx *gin.Context, maxTextLength int) (string, error) {
	body, err := io.ReadAll(http.MaxBytesReader(
		ctx.Writer, ctx.Request.Body, maxBodySize(maxTextLength)))
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return "", merror.TextTooLongError{
				Msg: fmt.Sprintf(
					"request body too large (max. %d bytes for %d characters)",
					maxBytesErr.Limit, maxTextLength),
			}
		}
		return "", merror.InputError{Msg: fmt.Sprintf("failed to read request body: %s", err)}
	}
	var text string
	switch ctx.ContentType() {
	case gin.MIMEJSON:
		var req extractRequest
		if err := sonic.Unmarshal(body, &req); err != nil {
			return "", merror.InputError{Msg: fmt.Sprintf("failed to decode request: %s", err)}
		}
		text = req.Text
	case gin.MIMEPlain, "":
		text = string(body)
	default:
		return "", merror.InputError{
			Msg: fmt.Sprintf("unsupported content type %s", ctx.ContentType())}
	}
	if !utf8.ValidString(text) {
		return "", merror.InputError{Msg: "text is not a valid UTF-8 string"}
	}
	return text, nil
}

func (a *Actions) artifactURL(name string) string {
	return fmt.Sprintf("%s/artifacts/%s", a.publicURL, name)
}

// Extract godoc
// @Summary      Extract
// @Description  Extracts hypernym-hyponym relations from a text and builds concept maps out of them. The text can be sent either as a JSON object `{"text": "..."}` or as a plain text.
// @Accept       json
// @Accept       plain
// @Produce      json
// @Param        request body extractRequest true "text to process"
// @Success      200 {object} extractResponse
// @Failure      400 {object} any
// @Failure      422 {object} any
// @Failure      500 {object} any
// @Failure      504 {object} any
// @Router       /extract [post]
func (a *Actions) Extract(ctx *gin.Context) {
	text, err := readText(ctx, a.maxTextLength)
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, merror.HTTPStatus(err))
		return
	}
	if n := utf8.RuneCountInString(text); n > a.maxTextLength {
		err := merror.TextTooLongError{
			Msg: fmt.Sprintf("text too long (%d characters, max. %d)", n, a.maxTextLength)}
		uniresp.RespondWithErrorJSON(ctx, err, merror.HTTPStatus(err))
		return
	}
	runID := uuid.New().String()
	query, err := rdb.NewQuery(rdb.FuncExtract, rdb.ExtractArgs{Text: text, RunID: runID})
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
		return
	}
	jctx, cancel := context.WithTimeout(ctx.Request.Context(), a.jobTimeout)
	defer cancel()
	wait, err := a.radapter.PublishQuery(jctx, query)
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
		return
	}
	result := <-wait
	if errors.Is(jctx.Err(), context.DeadlineExceeded) && result.WorkerID == "" {
		log.Error().Str("runId", runID).Msg("extraction job timed out")
		uniresp.RespondWithErrorJSON(
			ctx,
			merror.TimeoutError{Msg: "extraction job timed out"},
			http.StatusGatewayTimeout,
		)
		return
	}
	if result.WorkerID != "" && a.jobLogger != nil {
		a.jobLogger.Log(result.JobLog(rdb.FuncExtract))
	}
	if err := result.Err(); err != nil {
		status := http.StatusInternalServerError
		if result.HasUserError {
			status = http.StatusBadRequest
		}
		uniresp.WriteJSONErrorResponse(ctx.Writer, uniresp.NewActionErrorFrom(err), status)
		return
	}
	var extraction results.Extraction
	if err := result.DecodeValue(&extraction); err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, a.mkResponse(runID, &extraction))
}

func (a *Actions) mkResponse(runID string, extraction *results.Extraction) *extractResponse {
	ans := &extractResponse{
		RunID:        runID,
		Status:       extraction.Status,
		Relations:    extraction.Relations,
		Pairs:        extraction.Pairs,
		NumMatches:   len(extraction.Matches),
		NumFailures:  extraction.NumFailures,
		Artifacts:    make([]artifactInfo, len(extraction.Artifacts)),
		ProcTimeSecs: extraction.ProcTimeSecs,
	}
	if ans.Relations == nil {
		ans.Relations = extract.NewGroupedRelations()
	}
	if ans.Pairs == nil {
		ans.Pairs = []extract.ValidatedPair{}
	}
	for i, art := range extraction.Artifacts {
		ans.Artifacts[i] = artifactInfo{Artifact: art, URL: a.artifactURL(art.Name)}
	}
	return ans
}
