// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package serial

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/elliotchance/phpserialize"
)

// DecodeIDs extracts the term ids from a serialized array. Entries are read
// in key order: integer keys ascending, then string keys.
//
// Array values are accepted as native integers, numeric strings, or nested
// arrays/objects carrying a "term_id" key. Anything else is skipped. Ids
// that are not positive are dropped.
func DecodeIDs(data string) (ids []int64, err error) {
	if !strings.HasPrefix(data, "a:") {
		return nil, fmt.Errorf("%w: not an array", ErrMalformed)
	}

	// the decoder indexes into the input without bounds checks of its own
	defer func() {
		if r := recover(); r != nil {
			ids, err = nil, fmt.Errorf("%w: %v", ErrMalformed, r)
		}
	}()

	arr, err := phpserialize.UnmarshalAssociativeArray([]byte(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	ids = make([]int64, 0, len(arr))
	for _, key := range sortedKeys(arr) {
		if id, ok := idOf(arr[key]); ok && id > 0 {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// Contains reports whether the serialized array data holds id. Malformed
// input holds nothing.
func Contains(data string, id int64) bool {
	ids, err := DecodeIDs(data)
	if err != nil {
		return false
	}
	return slices.Contains(ids, id)
}

func idOf(v any) (int64, bool) {
	switch v := v.(type) {
	case int64:
		return v, true
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		return n, err == nil
	case map[any]any:
		if termID, ok := v["term_id"]; ok {
			return idOf(termID)
		}
	}
	return 0, false
}

func sortedKeys(arr map[any]any) []any {
	keys := make([]any, 0, len(arr))
	for k := range arr {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b any) int {
		ai, aInt := a.(int64)
		bi, bInt := b.(int64)
		switch {
		case aInt && bInt:
			return cmp.Compare(ai, bi)
		case aInt:
			return -1
		case bInt:
			return 1
		}
		return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
	})
	return keys
}
