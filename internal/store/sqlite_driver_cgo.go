// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

//go:build cgo_sqlite

package store

import _ "github.com/mattn/go-sqlite3"

const driverName = "sqlite3"
