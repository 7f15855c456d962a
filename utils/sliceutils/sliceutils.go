// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2024-2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package sliceutils

import "github.com/Lexer747/linechart/utils/numeric"

func Map[IN, OUT any, S ~[]IN](slice S, f func(IN) OUT) []OUT {
	ret := make([]OUT, len(slice))
	for i, in := range slice {
		ret[i] = f(in)
	}
	return ret
}

// TryMap is [Map] for a fallible f, it stops at the first error and returns it with no results.
func TryMap[IN, OUT any, S ~[]IN](slice S, f func(IN) (OUT, error)) ([]OUT, error) {
	ret := make([]OUT, len(slice))
	for i, in := range slice {
		out, err := f(in)
		if err != nil {
			return nil, err
		}
		ret[i] = out
	}
	return ret, nil
}

// SumFunc adds up f of every element.
func SumFunc[IN any, N numeric.Number, S ~[]IN](slice S, f func(IN) N) N {
	var total N
	for _, in := range slice {
		total += f(in)
	}
	return total
}
