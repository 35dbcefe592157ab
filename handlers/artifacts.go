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
	"errors"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
)

var (
	errArtifactNotFound = errors.New("artifact not found")

	artifactContentTypes = map[string]string{
		".png": "image/png",
		".gv":  "text/vnd.graphviz; charset=utf-8",
	}
)

// resolveArtifact maps a public artifact name to a file within
// the artifacts directory. Names escaping the directory or
// with an unknown extension are rejected.
func (a *Actions) resolveArtifact(name string) (string, string, error) {
	cleanName := path.Clean("/" + name)
	contentType, ok := artifactContentTypes[path.Ext(cleanName)]
	if !ok || a.artifactsDir == "" {
		return "", "", errArtifactNotFound
	}
	root := filepath.Clean(a.artifactsDir)
	fullPath := filepath.Join(root, filepath.FromSlash(cleanName))
	if !strings.HasPrefix(fullPath, root+string(filepath.Separator)) {
		return "", "", errArtifactNotFound
	}
	isFile, err := fs.IsFile(fullPath)
	if err != nil || !isFile {
		return "", "", errArtifactNotFound
	}
	return fullPath, contentType, nil
}

// Artifact godoc
// @Summary      Artifact
// @Description  Provides a rendered concept map (PNG image or a Graphviz DOT file) as referred by the `url` of an extraction artifact.
// @Produce      png
// @Produce      plain
// @Param        path path string true "artifact name (including the run ID directory)"
// @Success      200 {file} file
// @Failure      404 {object} any
// @Router       /artifacts/{path} [get]
func (a *Actions) Artifact(ctx *gin.Context) {
	fullPath, contentType, err := a.resolveArtifact(ctx.Param("path"))
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusNotFound)
		return
	}
	f, err := os.Open(fullPath)
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, errArtifactNotFound, http.StatusNotFound)
		return
	}
	defer f.Close()
	stat, err := f.Stat()
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
		return
	}
	ctx.Writer.Header().Set("Content-Type", contentType)
	http.ServeContent(ctx.Writer, ctx.Request, filepath.Base(fullPath), stat.ModTime(), f)
}
