// Package utils holds small shared helpers. Hasher derives entity tags for
// conditional GET responses.
package utils
