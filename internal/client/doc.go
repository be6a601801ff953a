// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client assembles the client runtime: session storage, the restored
// session, the API adapter, the connectivity probe, the gateway services and
// the route guards. Front ends (the TUI and fitictl) are built on top of it.
package client
