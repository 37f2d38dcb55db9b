// Package auth is the authentication and authorization core: password
// hashing and policy checks, JWT encoding/decoding, credential verification,
// request-scoped identity resolution, and session (token pair) issuance.
//
// Components are plain structs wired together at startup; none of them read
// ambient global state. Failures are reported as sentinel errors from
// internal/common so the HTTP layer can map them to status codes without
// inspecting messages.
package auth
