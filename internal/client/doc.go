// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the court-fund admin command line client.
//
// Each invocation runs a single command (login, fund, deposit, withdraw,
// fees, fee-create, pay or version) against the server through an
// [adapter.ServerAdapter] and renders the result as a terminal table. The ui
// command opens the interactive fee browser from package tui, and login
// reads the password from its masked prompt.
package client
