// Package client talks to the remote admin API.
//
// # Overview
//
// Client is the transport-agnostic contract (login, signup, list users,
// update status, delete user). HTTPClient implements it over HTTP/JSON:
// every request gets an X-Request-ID, authorized calls send
// "Authorization: Bearer <token>", and any transport error or non-2xx
// status becomes a *RequestFailedError for that operation.
//
// # Error Handling
//
// Callers match failures with errors.Is(err, ErrRequestFailed) or inspect the
// operation through errors.As. Response bodies of failed calls are not read
// beyond draining; the cause is logged at warn level.
package client
