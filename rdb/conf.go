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
	"fmt"

	"github.com/rs/zerolog/log"
)

const (
	dfltHost                 = "localhost"
	dfltPort                 = 6379
	dfltResultExpirationSecs = 600
)

type Conf struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	DB       int    `json:"db"`
	Password string `json:"password"`

	// QueueKey is a Redis list used as a job queue
	QueueKey string `json:"queueKey"`

	// ChannelQuery is a pub/sub channel used to notify
	// workers about new jobs
	ChannelQuery string `json:"channelQuery"`

	// ChannelResultPrefix is a prefix for per-job channels
	// where results are announced
	ChannelResultPrefix string `json:"channelResultPrefix"`

	ResultExpirationSecs int `json:"resultExpirationSecs"`
}

func (conf *Conf) ServerInfo() string {
	return fmt.Sprintf("%s:%d", conf.Host, conf.Port)
}

func (conf *Conf) ValidateAndDefaults(confContext string) error {
	if conf == nil {
		return fmt.Errorf("missing configuration section `%s`", confContext)
	}
	if conf.Host == "" {
		conf.Host = dfltHost
		log.Warn().
			Str("value", conf.Host).
			Msgf("`%s.host` not set, using default", confContext)
	}
	if conf.Port == 0 {
		conf.Port = dfltPort
		log.Warn().
			Int("value", conf.Port).
			Msgf("`%s.port` not set, using default", confContext)
	}
	if conf.QueueKey == "" {
		conf.QueueKey = DefaultQueueKey
		log.Warn().
			Str("value", conf.QueueKey).
			Msgf("`%s.queueKey` not set, using default", confContext)
	}
	if conf.ChannelQuery == "" {
		conf.ChannelQuery = DefaultQueryChannel
		log.Warn().
			Str("value", conf.ChannelQuery).
			Msgf("`%s.channelQuery` not set, using default", confContext)
	}
	if conf.ChannelResultPrefix == "" {
		conf.ChannelResultPrefix = DefaultResultChannelPrefix
		log.Warn().
			Str("value", conf.ChannelResultPrefix).
			Msgf("`%s.channelResultPrefix` not set, using default", confContext)
	}
	if conf.ResultExpirationSecs == 0 {
		conf.ResultExpirationSecs = dfltResultExpirationSecs

	} else if conf.ResultExpirationSecs < 0 {
		return fmt.Errorf("`%s.resultExpirationSecs` must be positive", confContext)
	}
	return nil
}
