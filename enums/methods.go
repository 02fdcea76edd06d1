// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enums

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"

	lerrors "cogentcore.org/geom/base/errors"
)

// String returns the string representation of the given
// enum value with the given map.
func String[T EnumConstraint](i T, m map[T]string) string {
	if str, ok := m[i]; ok {
		return str
	}
	return strconv.FormatInt(int64(i), 10)
}

// SetString sets the given enum value from its string representation, the map from
// enum names to values, and the name of the enum type, which is used for the error message.
func SetString[T constraints.Integer](i *T, s string, valueMap map[string]T, typeName string) error {
	if val, ok := valueMap[s]; ok {
		*i = val
		return nil
	}
	return errors.New(s + " is not a valid value for type " + typeName)
}

// SetStringLower sets the given enum value from its string representation, the map from
// enum names to values, and the name of the enum type, which is used for the error message.
// It also tries the lowercase version of the given string if the original version fails.
func SetStringLower[T constraints.Integer](i *T, s string, valueMap map[string]T, typeName string) error {
	if val, ok := valueMap[s]; ok {
		*i = val
		return nil
	}
	if val, ok := valueMap[strings.ToLower(s)]; ok {
		*i = val
		return nil
	}
	return errors.New(s + " is not a valid value for type " + typeName)
}

// Desc returns the description of the given enum value.
func Desc[T EnumConstraint](i T, descMap map[T]string) string {
	if str, ok := descMap[i]; ok {
		return str
	}
	return i.String()
}

// Values returns the given values as [Enum]s.
func Values[T EnumConstraint](in []T) []Enum {
	res := make([]Enum, len(in))
	for i, v := range in {
		res[i] = v
	}
	return res
}

// IsValid returns whether the given value is one of the given values.
func IsValid[T EnumConstraint](i T, values []T) bool {
	for _, v := range values {
		if v == i {
			return true
		}
	}
	return false
}

// UnmarshalText loads the enum from the given text.
// It logs any error instead of returning it to prevent
// one modified enum from tanking an entire object loading operation.
func UnmarshalText(i EnumSetter, text []byte, typeName string) error {
	if err := i.SetString(string(text)); err != nil {
		lerrors.Log(fmt.Errorf("error unmarshaling %s: %w", typeName, err))
	}
	return nil
}
