// Package rcrt is a thin client for the rcrt breadcrumb service.
//
// Every method maps one-to-one onto a REST endpoint and performs a single
// synchronous HTTP round trip. Payloads are passed through as opaque JSON;
// the client does not validate or interpret breadcrumb content. There are
// no retries, no pagination handling, and no caching: optimistic updates
// (If-Match) and creation dedupe (Idempotency-Key) are delegated entirely
// to the server.
//
// A Client carries no mutable state after construction and may be shared
// across goroutines.
package rcrt
