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

package cnf

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"conmap/lexicon"
	"conmap/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	outDir := t.TempDir()
	conf, err := ParseConfig([]byte(`{
		"listenAddress": "0.0.0.0",
		"listenPort": 8080,
		"corsAllowedOrigins": ["https://example.org"],
		"redis": {"host": "redis.local", "port": 6380, "db": 2},
		"timeZone": "UTC",
		"maxTextLength": 5000,
		"lexicon": {"source": "embedded", "instanceHypernyms": true},
		"extract": {"hypernymLemma": false, "dedupHyponyms": true},
		"render": {"format": "dot", "outputDir": "`+outDir+`", "concurrency": 2}
	}`), "conmap.json")
	require.NoError(t, err)
	require.NoError(t, Validate(conf))

	assert.Equal(t, "http://0.0.0.0:8080", conf.PublicURL)
	assert.Equal(t, "redis.local", conf.Redis.Host)
	assert.Equal(t, 2, conf.Redis.DB)
	assert.True(t, conf.Lexicon.InstanceHypernyms)
	assert.False(t, conf.Extract.UseHypernymLemma())
	assert.True(t, conf.Extract.DedupHyponyms)
	assert.Equal(t, render.FormatDOT, conf.Render.Format)
	assert.Equal(t, 2, conf.Render.Concurrency)
	assert.Equal(t, 5000, conf.MaxTextLength)
	assert.Equal(t, time.UTC, conf.TimezoneLocation())
	assert.Equal(t, 60*time.Second, conf.JobTimeout())
}

func TestValidateDefaults(t *testing.T) {
	conf, err := ParseConfig([]byte(`{"render": {"format": "none"}}`), "conmap.json")
	require.NoError(t, err)
	require.NoError(t, Validate(conf))

	assert.Equal(t, dfltListenAddress, conf.ListenAddress)
	assert.Equal(t, dfltListenPort, conf.ListenPort)
	assert.Equal(t, dfltServerWriteTimeoutSecs, conf.ServerWriteTimeoutSecs)
	assert.Equal(t, dfltTimeZone, conf.TimeZone)
	assert.Equal(t, dfltMaxTextLength, conf.MaxTextLength)
	assert.Equal(t, dfltJobTimeoutSecs, conf.JobTimeoutSecs)
	assert.Equal(t, "localhost", conf.Redis.Host)
	assert.Equal(t, lexicon.SourceEmbedded, conf.Lexicon.Source)
	assert.True(t, conf.Extract.UseHypernymLemma())
	assert.False(t, conf.Monitoring.IsEnabled())
}

func TestValidateInvalidValues(t *testing.T) {
	for _, raw := range []string{
		`{"timeZone": "Mars/Olympus_Mons"}`,
		`{"maxTextLength": -1}`,
		`{"jobTimeoutSecs": -5}`,
		`{"lexicon": {"source": "thesaurus"}}`,
		`{"render": {"format": "svg"}}`,
	} {
		conf, err := ParseConfig([]byte(raw), "conmap.json")
		require.NoError(t, err)
		assert.Error(t, Validate(conf), raw)
	}
}

func TestParseConfigInvalidJSON(t *testing.T) {
	_, err := ParseConfig([]byte(`{"listenPort": "x"`), "conmap.json")
	assert.Error(t, err)
}

func TestGetSourcePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conmap.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0644))
	conf := LoadConfig(path)
	assert.Equal(t, path, conf.GetSourcePath())
}
