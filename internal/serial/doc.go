// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package serial reads and writes term id lists in the PHP serialize format
// the assignment blobs are stored in. The wire format itself is handled by
// github.com/elliotchance/phpserialize; this package maps it to id lists and
// builds the substring patterns used to preselect blobs in SQL.
//
// Encoding always produces an array of native integers keyed 0..n-1, e.g.
// a:2:{i:0;i:2;i:1;i:5;}.
package serial
