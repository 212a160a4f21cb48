package nalar

import "errors"

var (
	// ErrInvalidConfig is returned for invalid configuration values.
	ErrInvalidConfig = errors.New("nalar: invalid configuration")

	// ErrKBLoad is returned when the knowledge base file cannot be loaded.
	ErrKBLoad = errors.New("nalar: knowledge base load failed")

	// ErrGraphLoad is returned when the graph data file cannot be loaded.
	ErrGraphLoad = errors.New("nalar: graph load failed")
)
