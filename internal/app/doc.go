// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app implements the mirror process lifecycle.
//
// It runs a single sync pass or, when an interval is configured, keeps the
// background sync job running until the context is cancelled, and turns the
// outcome into a process exit code.
package app
