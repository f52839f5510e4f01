// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/MKhiriev/go-user-tags/models"
)

// RewriteFilterURL returns rawURL with its query rewritten to filter the user
// list by termID: the filter parameter is set (or removed when termID is 0),
// the filter action marker is added and both apply triggers are stripped.
// Every other parameter is kept.
func RewriteFilterURL(rawURL string, termID int64) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("error parsing list URL: %w", err)
	}

	q := u.Query()
	if termID > 0 {
		q.Set(models.FilterParam, strconv.FormatInt(termID, 10))
	} else {
		q.Del(models.FilterParam)
	}
	q.Set(models.FilterActionParam, models.FilterActionValue)
	q.Del(models.FilterTriggerTop)
	q.Del(models.FilterTriggerBottom)

	u.RawQuery = q.Encode()
	return u.String(), nil
}
