// Package api handles incoming HTTP requests, request validation, and
// response formatting for a study session. It serves three renderers of the
// same state: a JSON API, a server-rendered HTML screen, and a Server-Sent
// Events stream of changes.
package api
