// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package serial

import (
	"fmt"
	"strconv"

	"github.com/elliotchance/phpserialize"
)

// EncodeIDs serializes ids as an array of native integers.
func EncodeIDs(ids []int64) (string, error) {
	if ids == nil {
		ids = []int64{}
	}
	out, err := phpserialize.Marshal(ids, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return string(out), nil
}

// IntPattern is the native-integer encoding of id as a value, as it appears
// inside an encoded array.
func IntPattern(id int64) string {
	return "i:" + strconv.FormatInt(id, 10) + ";"
}

// StringPattern is the length-prefixed string encoding of id.
func StringPattern(id int64) string {
	s := strconv.FormatInt(id, 10)
	return "s:" + strconv.Itoa(len(s)) + ":\"" + s + "\""
}

// TermIDPattern is the encoding of id under a "term_id" key of a nested
// term record.
func TermIDPattern(id int64) string {
	return `s:7:"term_id";` + IntPattern(id)
}
