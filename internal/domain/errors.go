package domain

import "errors"

var (
	// ErrProductNotFound is returned when the catalog has no product for
	// the requested id
	ErrProductNotFound = errors.New("product not found in catalog")

	// ErrInvalidSelection is returned when a comparison is requested for
	// fewer than two or more than four products
	ErrInvalidSelection = errors.New("comparison requires 2 to 4 product ids")

	// ErrCatalogAPIFailure is returned when a catalog API request fails
	ErrCatalogAPIFailure = errors.New("catalog API request failed")

	// ErrStaleRun is returned when an aggregation run was superseded by a
	// newer selection before it finished
	ErrStaleRun = errors.New("aggregation run superseded")

	// ErrStateMiss is returned when a persisted key is missing or its
	// value cannot be decoded
	ErrStateMiss = errors.New("persisted state missing")

	// ErrCacheMiss is returned when a key is not found in the cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")
)
