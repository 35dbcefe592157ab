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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsHypernymOf(t *testing.T) {
	v := NewValidator(loadEmbedded(t), nil)
	assert.True(t, v.IsHypernymOf("fruit", "apple"))
	assert.True(t, v.IsHypernymOf("fruits", "apples"))
	assert.True(t, v.IsHypernymOf("mammal", "dogs"))
	assert.True(t, v.IsHypernymOf("domestic_animal", "cat"))
	assert.True(t, v.IsHypernymOf("color", "orange"))
	assert.True(t, v.IsHypernymOf("fruit", "orange"))
}

func TestIsHypernymOfDirectOnly(t *testing.T) {
	v := NewValidator(loadEmbedded(t), nil)
	// animal -> mammal -> dog
	assert.False(t, v.IsHypernymOf("animal", "dog"))
	assert.False(t, v.IsHypernymOf("animal", "apple"))
	assert.False(t, v.IsHypernymOf("apple", "fruit"))
	assert.False(t, v.IsHypernymOf("fruit", "fruit"))
}

func TestIsHypernymOfUnknownWords(t *testing.T) {
	v := NewValidator(loadEmbedded(t), nil)
	assert.False(t, v.IsHypernymOf("gizmo", "apple"))
	assert.False(t, v.IsHypernymOf("fruit", "gizmo"))
	assert.False(t, v.IsHypernymOf("", ""))
}

func TestIsHypernymOfInstances(t *testing.T) {
	lex := loadEmbedded(t)
	v := NewValidator(lex, &Conf{})
	assert.False(t, v.IsHypernymOf("city", "Paris"))
	assert.False(t, v.IsHypernymOf("planet", "mars"))

	v = NewValidator(lex, &Conf{InstanceHypernyms: true})
	assert.True(t, v.IsHypernymOf("city", "Paris"))
	assert.True(t, v.IsHypernymOf("planet", "mars"))
	assert.False(t, v.IsHypernymOf("country", "Paris"))
}
