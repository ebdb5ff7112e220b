// Package xwordinfo fetches daily crossword data from the XWord Info JSON
// API and validates the shape of the response.
//
// The fetcher makes exactly one request per call and never retries; any
// transport, status or decoding failure is returned to the caller.
package xwordinfo
