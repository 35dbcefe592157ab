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
	"conmap/extract"
	"conmap/lexicon"
	"conmap/monitoring"
	"conmap/rdb"
	"conmap/render"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bytedance/sonic"
	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/rs/zerolog/log"
)

const (
	dfltServerWriteTimeoutSecs = 30
	dfltServerReadTimeoutSecs  = 30
	dfltListenAddress          = "127.0.0.1"
	dfltListenPort             = 8989
	dfltTimeZone               = "Europe/Prague"
	dfltMaxTextLength          = 100000
	dfltJobTimeoutSecs         = 60
)

// Conf is a global configuration of the app
type Conf struct {
	ListenAddress          string              `json:"listenAddress"`
	PublicURL              string              `json:"publicUrl"`
	ListenPort             int                 `json:"listenPort"`
	ServerReadTimeoutSecs  int                 `json:"serverReadTimeoutSecs"`
	ServerWriteTimeoutSecs int                 `json:"serverWriteTimeoutSecs"`
	CorsAllowedOrigins     []string            `json:"corsAllowedOrigins"`
	AuthHeaderName         string              `json:"authHeaderName"`
	AuthTokens             []string            `json:"authTokens"`
	Redis                  *rdb.Conf           `json:"redis"`
	Logging                logging.LoggingConf `json:"logging"`
	TimeZone               string              `json:"timeZone"`

	// MaxTextLength is the max. number of characters of a text
	// accepted by the `extract` endpoint
	MaxTextLength int `json:"maxTextLength"`

	// JobTimeoutSecs limits both the time the API server waits
	// for a worker and the time a worker spends on a single job
	JobTimeoutSecs int `json:"jobTimeoutSecs"`

	Lexicon    *lexicon.Conf    `json:"lexicon"`
	Extract    *extract.Conf    `json:"extract"`
	Render     *render.Conf     `json:"render"`
	Monitoring *monitoring.Conf `json:"monitoring"`

	srcPath string
}

func (conf *Conf) TimezoneLocation() *time.Location {
	// we can ignore the error here as we always call ValidateAndDefaults
	// first (which also tries to load the location and report possible
	// error)
	loc, _ := time.LoadLocation(conf.TimeZone)
	return loc
}

func (conf *Conf) JobTimeout() time.Duration {
	return time.Duration(conf.JobTimeoutSecs) * time.Second
}

// GetSourcePath returns an absolute path of a file
// the config was loaded from.
func (conf *Conf) GetSourcePath() string {
	if filepath.IsAbs(conf.srcPath) {
		return conf.srcPath
	}
	var cwd string
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "[failed to get working dir]"
	}
	return filepath.Join(cwd, conf.srcPath)
}

// ParseConfig decodes raw JSON configuration. The srcPath
// is only stored for reference.
func ParseConfig(rawData []byte, srcPath string) (*Conf, error) {
	var conf Conf
	conf.srcPath = srcPath
	if err := sonic.Unmarshal(rawData, &conf); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &conf, nil
}

func LoadConfig(path string) *Conf {
	if path == "" {
		log.Fatal().Msg("Cannot load config - path not specified")
	}
	rawData, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	conf, err := ParseConfig(rawData, path)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	return conf
}

// Validate fills in default values and checks the configuration.
// In contrast to ValidateAndDefaults, it does not stop the process
// in case of an error.
func Validate(conf *Conf) error {
	if conf.ListenAddress == "" {
		conf.ListenAddress = dfltListenAddress
		log.Warn().Str("value", dfltListenAddress).Msg("listenAddress not specified, using default")
	}
	if conf.ListenPort == 0 {
		conf.ListenPort = dfltListenPort
		log.Warn().Int("value", dfltListenPort).Msg("listenPort not specified, using default")
	}
	if conf.ServerWriteTimeoutSecs == 0 {
		conf.ServerWriteTimeoutSecs = dfltServerWriteTimeoutSecs
		log.Warn().Msgf(
			"serverWriteTimeoutSecs not specified, using default: %d",
			dfltServerWriteTimeoutSecs,
		)
	}
	if conf.ServerReadTimeoutSecs == 0 {
		conf.ServerReadTimeoutSecs = dfltServerReadTimeoutSecs
		log.Warn().Msgf(
			"serverReadTimeoutSecs not specified, using default: %d",
			dfltServerReadTimeoutSecs,
		)
	}
	if conf.PublicURL == "" {
		conf.PublicURL = fmt.Sprintf("http://%s:%d", conf.ListenAddress, conf.ListenPort)
		log.Warn().Str("address", conf.PublicURL).Msg("publicUrl not set, using listenAddress")
	}
	if conf.TimeZone == "" {
		conf.TimeZone = dfltTimeZone
		log.Warn().
			Str("timeZone", dfltTimeZone).
			Msg("time zone not specified, using default")
	}
	if _, err := time.LoadLocation(conf.TimeZone); err != nil {
		return fmt.Errorf("invalid time zone: %w", err)
	}
	if conf.MaxTextLength < 0 {
		return fmt.Errorf("invalid maxTextLength: %d", conf.MaxTextLength)

	} else if conf.MaxTextLength == 0 {
		conf.MaxTextLength = dfltMaxTextLength
		log.Warn().Int("value", dfltMaxTextLength).Msg("maxTextLength not specified, using default")
	}
	if conf.JobTimeoutSecs < 0 {
		return fmt.Errorf("invalid jobTimeoutSecs: %d", conf.JobTimeoutSecs)

	} else if conf.JobTimeoutSecs == 0 {
		conf.JobTimeoutSecs = dfltJobTimeoutSecs
		log.Warn().Int("value", dfltJobTimeoutSecs).Msg("jobTimeoutSecs not specified, using default")
	}
	if conf.Redis == nil {
		conf.Redis = &rdb.Conf{}
	}
	if err := conf.Redis.ValidateAndDefaults("redis"); err != nil {
		return err
	}
	if conf.Lexicon == nil {
		conf.Lexicon = &lexicon.Conf{}
	}
	if err := conf.Lexicon.ValidateAndDefaults("lexicon"); err != nil {
		return err
	}
	if conf.Extract == nil {
		conf.Extract = &extract.Conf{}
	}
	if err := conf.Extract.ValidateAndDefaults("extract"); err != nil {
		return err
	}
	if conf.Render == nil {
		conf.Render = &render.Conf{}
	}
	if err := conf.Render.ValidateAndDefaults("render"); err != nil {
		return err
	}
	if !conf.Monitoring.IsEnabled() {
		log.Warn().Msg("monitoring database not configured, job statistics will be kept in memory only")
	}
	return nil
}

func ValidateAndDefaults(conf *Conf) {
	if err := Validate(conf); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
}
