// Package repository holds the result caches used by the sizing service.
package repository

// CacheRepository stores serialized calculation results by size key.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
