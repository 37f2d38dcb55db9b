// Package httpserver exposes the JSON API: authentication, user profiles,
// and todo items, with middleware for recovery, request logging, bearer
// authentication, and login rate limiting.
package httpserver
