package main

import (
	"fmt"
	"strconv"
	"strings"
)

// parseDimensions parses a WIDTHxHEIGHT argument.
func parseDimensions(s string) (int, int, error) {
	left, right, ok := strings.Cut(s, "x")
	if !ok {
		return 0, 0, fmt.Errorf("parsing dimensions %q: expected WIDTHxHEIGHT", s)
	}
	w, err := strconv.Atoi(left)
	if err != nil {
		return 0, 0, fmt.Errorf("parsing dimensions %q: %w", s, err)
	}
	h, err := strconv.Atoi(right)
	if err != nil {
		return 0, 0, fmt.Errorf("parsing dimensions %q: %w", s, err)
	}
	return w, h, nil
}

// parseFloatPair parses two floats joined by sep. Both components may be
// negative; only the first occurrence of sep splits, so "-1.5:-2" works
// with sep ":".
func parseFloatPair(s, sep string) (float64, float64, error) {
	left, right, ok := strings.Cut(s, sep)
	if !ok {
		return 0, 0, fmt.Errorf("parsing pair %q: expected two values joined by %q", s, sep)
	}
	a, err := strconv.ParseFloat(left, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("parsing pair %q: %w", s, err)
	}
	b, err := strconv.ParseFloat(right, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("parsing pair %q: %w", s, err)
	}
	return a, b, nil
}

// parseComplexArg parses a RE,IM complex number argument.
func parseComplexArg(s string) (complex128, error) {
	re, im, err := parseFloatPair(s, ",")
	if err != nil {
		return 0, fmt.Errorf("parsing complex number: %w", err)
	}
	return complex(re, im), nil
}
