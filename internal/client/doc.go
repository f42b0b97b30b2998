// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client runtime.
//
// It turns the client configuration into a registration request, submits it
// through the server adapter and prints the creation summary followed by the
// profile read back with the issued token.
package client
