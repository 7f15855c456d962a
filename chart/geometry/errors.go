// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package geometry

import "fmt"

// ConfigurationError is returned when the grid cannot be laid out with the given parameters, e.g. fewer than two
// columns would require dividing by zero.
type ConfigurationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid chart configuration %s=%v: %s", e.Field, e.Value, e.Reason)
}

func configErr(field string, value any, reason string) *ConfigurationError {
	return &ConfigurationError{Field: field, Value: value, Reason: reason}
}
