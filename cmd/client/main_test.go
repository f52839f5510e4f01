// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListURL(t *testing.T) {
	assert.Equal(t, "http://localhost:8080/users", listURL("localhost:8080"))
	assert.Equal(t, "https://tags.example.com/users", listURL(" https://tags.example.com/ "))
}
