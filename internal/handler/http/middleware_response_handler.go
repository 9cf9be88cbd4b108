// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Viktor Petrenko

package http

import "net/http"

// responseWriter decorates [http.ResponseWriter] so the logging middleware
// can read the status code and body size after the downstream handler
// returns, without buffering the whole response.
//
// WriteHeader is forwarded to the underlying writer exactly once; later
// calls are ignored, per the [http.ResponseWriter] contract.
type responseWriter struct {
	http.ResponseWriter

	// status is recorded on the first WriteHeader call, implicit or not.
	status int

	wroteHeader bool

	// size accumulates bytes written across all Write calls.
	size int

	// body keeps only the slice passed to the most recent Write call,
	// not a concatenation of all writes.
	body []byte
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write forwards b to the underlying writer, implicitly sending a 200
// status line first when WriteHeader has not been called yet.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	w.body = b
	return n, err
}
