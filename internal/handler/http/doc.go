// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the web layer of go-ask-me.
//
// It wires the chi router, the middleware chain (real IP, panic recovery,
// trace ids, access logging, compression and the session loader), the
// server-rendered pages for visitors and the admin, and a small JSON API used
// by qactl. Handlers only parse and coerce input; every decision is delegated
// to the service layer.
package http
