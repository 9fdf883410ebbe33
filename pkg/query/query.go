// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package query parses optional URL query parameters.
//
// Every helper distinguishes "absent" (nil) from a present value, and reports
// malformed input as an error so handlers can answer with a validation error.
package query

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// String returns a trimmed pointer to the parameter, or nil when it is empty.
func String(values url.Values, key string) *string {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return nil
	}
	return &raw
}

// Float parses an optional floating point parameter.
func Float(values url.Values, key string) (*float64, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be a number", key)
	}
	return &n, nil
}

// Bool parses an optional boolean parameter ("true", "1", "false", "0").
func Bool(values url.Values, key string) (*bool, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be a boolean", key)
	}
	return &b, nil
}

// StringSlice collects every occurrence of key, splitting each one on commas.
// Both "?flavor=a,b" and "?flavor=a&flavor=b" yield ["a", "b"].
func StringSlice(values url.Values, key string) []string {
	var res []string
	for _, val := range values[key] {
		for _, v := range strings.Split(val, ",") {
			clean := strings.TrimSpace(v)
			if clean != "" {
				res = append(res, clean)
			}
		}
	}
	return res
}
