package db

import (
	"context"
	"errors"
)

var ErrKeyNotFound = errors.New("key not found")

// KeyValueClient defines the storage operations used for cached data.
type KeyValueClient interface {
	Set(key, value string) error
	// Get returns ErrKeyNotFound (possibly wrapped) if the key does not exist.
	Get(key string) (string, error)
	Del(key string) error
	GetContext() context.Context
	Ping() error
}
