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

package lexicon

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/czcorpus/cnc-gokit/httpclient"
	"github.com/rs/zerolog/log"
)

type remoteAnswer struct {
	Result bool   `json:"result"`
	Error  string `json:"error,omitempty"`
}

type pairKey struct {
	hypernym string
	hyponym  string
}

// HTTPValidator asks a remote lexical service whether a relation
// holds. The service is expected to respond to
// `GET <url>?hypernym=...&hyponym=...` with `{"result": true|false}`.
// Answers are cached for the lifetime of the validator, failed requests
// are not.
type HTTPValidator struct {
	serviceURL string
	client     *http.Client
	cache      map[pairKey]bool
	cacheLock  sync.RWMutex
}

func (v *HTTPValidator) fetch(hypernym, hyponym string) (bool, error) {
	req, err := http.NewRequest(http.MethodGet, v.serviceURL, nil)
	if err != nil {
		return false, err
	}
	q := url.Values{}
	q.Add("hypernym", hypernym)
	q.Add("hyponym", hyponym)
	req.URL.RawQuery = q.Encode()
	resp, err := v.client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, err
	}
	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("lexical service responded with status %d", resp.StatusCode)
	}
	var ans remoteAnswer
	if err := sonic.Unmarshal(body, &ans); err != nil {
		return false, fmt.Errorf("failed to decode lexical service response: %w", err)
	}
	if ans.Error != "" {
		return false, fmt.Errorf("lexical service error: %s", ans.Error)
	}
	return ans.Result, nil
}

// IsHypernymOf implements the same contract as Validator.IsHypernymOf.
// Any failure of the remote service is reported as "not related".
func (v *HTTPValidator) IsHypernymOf(hypernym, hyponym string) bool {
	key := pairKey{hypernym: hypernym, hyponym: hyponym}
	v.cacheLock.RLock()
	ans, ok := v.cache[key]
	v.cacheLock.RUnlock()
	if ok {
		return ans
	}
	ans, err := v.fetch(hypernym, hyponym)
	if err != nil {
		log.Warn().
			Err(err).
			Str("hypernym", hypernym).
			Str("hyponym", hyponym).
			Msg("failed to validate relation remotely, treating as unrelated")
		return false
	}
	v.cacheLock.Lock()
	v.cache[key] = ans
	v.cacheLock.Unlock()
	return ans
}

func NewHTTPValidator(serviceURL string, timeoutSecs int) *HTTPValidator {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConns = httpclient.TransportMaxIdleConns
	transport.MaxConnsPerHost = httpclient.TransportMaxConnsPerHost
	transport.MaxIdleConnsPerHost = httpclient.TransportMaxIdleConnsPerHost
	transport.IdleConnTimeout = 60 * time.Second
	return &HTTPValidator{
		serviceURL: serviceURL,
		client: &http.Client{
			Timeout:   time.Duration(timeoutSecs) * time.Second,
			Transport: transport,
		},
		cache: make(map[pairKey]bool),
	}
}
