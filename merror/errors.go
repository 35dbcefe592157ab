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

package merror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/bytedance/sonic"
)

func marshalMsg(msg string) ([]byte, error) {
	if msg != "" {
		return sonic.Marshal(msg)
	}
	return sonic.Marshal(nil)
}

// InputError is caused by invalid user input (text, arguments)
type InputError struct {
	Msg string
}

func (err InputError) Error() string {
	return err.Msg
}

func (err InputError) MarshalJSON() ([]byte, error) {
	return marshalMsg(err.Msg)
}

// ----------------------------

type InternalError struct {
	Msg string
}

func (err InternalError) Error() string {
	return err.Msg
}

func (err InternalError) MarshalJSON() ([]byte, error) {
	return marshalMsg(err.Msg)
}

// ---------------------------

// RecoveredError wraps a recovered panic
type RecoveredError struct {
	Msg string
}

func (err RecoveredError) Error() string {
	return err.Msg
}

func (err RecoveredError) MarshalJSON() ([]byte, error) {
	return marshalMsg(err.Msg)
}

// ---------------------------

type TimeoutError struct {
	Msg string
}

func (err TimeoutError) Error() string {
	return err.Msg
}

func (err TimeoutError) MarshalJSON() ([]byte, error) {
	return marshalMsg(err.Msg)
}

// -----------------

// TextTooLongError reports input exceeding the configured limit
type TextTooLongError struct {
	Msg string
}

func (err TextTooLongError) Error() string {
	return err.Msg
}

func (err TextTooLongError) MarshalJSON() ([]byte, error) {
	return marshalMsg(err.Msg)
}

// -----------------

func PanicValueToErr(v any) (err error) {
	switch tr := v.(type) {
	case error:
		err = fmt.Errorf("recovered panic: %w", tr)
	case string:
		err = fmt.Errorf("recovered panic: %s", tr)
	default:
		err = fmt.Errorf("recovered panic from an error of type %T", v)
	}
	return
}

// HTTPStatus maps an error to a proper HTTP status code
func HTTPStatus(err error) int {
	var inputErr InputError
	var timeoutErr TimeoutError
	var tooLongErr TextTooLongError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &inputErr):
		return http.StatusBadRequest
	case errors.As(err, &tooLongErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &timeoutErr):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
