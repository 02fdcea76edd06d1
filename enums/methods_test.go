// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

// it is much easier to test with an independent enum mock
type enum int64

var enumMap = map[enum]string{5: "Apple", 7: "Orange"}
var enumValueMap = map[string]enum{"Apple": 5, "Orange": 7}

func (e enum) String() string               { return String(e, enumMap) }
func (e enum) Int64() int64                 { return int64(e) }
func (e enum) Desc() string                 { return Desc(e, map[enum]string{5: "A red fruit"}) }
func (e enum) Values() []Enum               { return Values([]enum{5, 7}) }
func (e *enum) SetInt64(i int64)            { *e = enum(i) }
func (e *enum) SetString(s string) error    { return SetString(e, s, enumValueMap, "Fruits") }
func (e enum) MarshalText() ([]byte, error) { return []byte(e.String()), nil }
func (e *enum) UnmarshalText(text []byte) error {
	return UnmarshalText(e, text, "Fruits")
}

func TestString(t *testing.T) {
	assert.Equal(t, "Apple", String(enum(5), enumMap))
	assert.Equal(t, "3", String(enum(3), enumMap))
}

func TestSetString(t *testing.T) {
	valueMap := map[string]enum{"apple": 5}

	i := enum(0)
	assert.NoError(t, SetString(&i, "apple", valueMap, "Fruits"))
	assert.Equal(t, enum(5), i)
	i = enum(4)
	err := SetString(&i, "Apple", valueMap, "Fruits")
	if assert.Error(t, err) {
		assert.Equal(t, "Apple is not a valid value for type Fruits", err.Error())
	}
	assert.Equal(t, enum(4), i)

	assert.NoError(t, SetStringLower(&i, "Apple", valueMap, "Fruits"))
	assert.Equal(t, enum(5), i)
	i = enum(4)
	err = SetStringLower(&i, "Orange", valueMap, "Fruits")
	if assert.Error(t, err) {
		assert.Equal(t, "Orange is not a valid value for type Fruits", err.Error())
	}
	assert.Equal(t, enum(4), i)
}

func TestDesc(t *testing.T) {
	assert.Equal(t, "A red fruit", enum(5).Desc())
	assert.Equal(t, "Orange", enum(7).Desc())
}

func TestValues(t *testing.T) {
	assert.Equal(t, []Enum{enum(7), enum(4)}, Values([]enum{7, 4}))
	assert.True(t, IsValid(enum(7), []enum{5, 7}))
	assert.False(t, IsValid(enum(6), []enum{5, 7}))
}

func TestUnmarshal(t *testing.T) {
	i := enum(0)

	assert.NoError(t, UnmarshalText(&i, []byte("Orange"), "Fruits"))
	assert.Equal(t, enum(7), i)
	i = 4
	assert.NoError(t, UnmarshalText(&i, []byte("Pear"), "Fruits"))
	assert.Equal(t, enum(4), i)
}

func TestYAML(t *testing.T) {
	type basket struct {
		Fruit enum
	}
	b, err := yaml.Marshal(basket{Fruit: 5})
	assert.NoError(t, err)
	assert.Equal(t, "fruit: Apple\n", string(b))

	var bk basket
	assert.NoError(t, yaml.Unmarshal([]byte("fruit: Orange\n"), &bk))
	assert.Equal(t, enum(7), bk.Fruit)
}
