package services

import "errors"

// ErrNotFound is returned when a lookup, update or delete touched zero rows.
// For owner-scoped operations that includes rows that exist but belong to a
// different profile; handlers answer 404 either way.
var ErrNotFound = errors.New("registro não encontrado")
