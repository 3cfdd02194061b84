package main

import "errors"

// Error kinds surfaced by the core operations. Handlers map these to HTTP
// statuses; anything not matching one of them is treated as a store failure.
var (
	ErrValidation = errors.New("permintaan tidak valid")
	ErrConflict   = errors.New("konflik data")
	ErrNotFound   = errors.New("data tidak ditemukan")
)
