// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

//go:build !cgo_sqlite

package store

// Pure Go driver; builds without a C toolchain.
import _ "modernc.org/sqlite"

const driverName = "sqlite"
