// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2024-2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package numeric

import (
	"math"

	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

func Abs[N constraints.Signed | constraints.Float](n N) N {
	if n < 0 {
		return -n
	}
	return n
}

// Within reports whether a and b are no more than tolerance apart, the bound is inclusive.
func Within[N constraints.Signed | constraints.Float](a, b, tolerance N) bool {
	return Abs(a-b) <= tolerance
}

// Lerp linearly interpolates from start to end, t=0 is start and t=1 is end. t is not clamped.
func Lerp(start, end, t float64) float64 {
	return start + t*(end-start)
}

// Clamp restricts n to the closed range [lo, hi].
func Clamp[N Number](n, lo, hi N) N {
	return max(lo, min(n, hi))
}

// NormalizeToRange maps input from the range [min, max] onto [newMin, newMax]. Inputs outside the original range
// are extrapolated, not clamped.
func NormalizeToRange(input, min, max, newMin, newMax float64) float64 {
	return newMin + ((input-min)*(newMax-newMin))/(max-min)
}

func RoundToNearestSigFig(input float64, sigFig int) float64 {
	if input == 0 {
		return 0
	}
	power := float64(sigFig) - Exponent(input)
	magnitude := math.Pow(10.0, power)
	shifted := input * magnitude
	rounded := math.Round(shifted)
	return rounded / magnitude
}

func Exponent(input float64) float64 {
	return math.Ceil(math.Log10(math.Abs(input)))
}

// TruncateToNearestSigFigInt drops every digit of input after the first sigFig, rounding towards zero.
func TruncateToNearestSigFigInt(input int, sigFig int) int {
	digits := 0
	for n := Abs(input); n > 0; n /= 10 {
		digits++
	}
	if digits <= sigFig {
		return input
	}
	p := 1
	for range digits - sigFig {
		p *= 10
	}
	return input / p * p
}
