// Package testutil contains helper builders and fakes used across tests to
// reduce boilerplate when constructing tool results and sessions. These
// helpers are not intended for production usage.
package testutil
