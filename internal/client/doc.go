// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It runs the terminal UI and the background workers (clipboard clearing)
// as a single process lifecycle: workers start before the UI and are stopped
// once the UI returns.
package client
