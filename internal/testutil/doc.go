// Package testutil contains helper builders used across tests to reduce
// boilerplate when constructing framework session events (text turns,
// partial streaming fragments, tool responses). These helpers are
// intentionally minimal and not intended for production usage.
package testutil
