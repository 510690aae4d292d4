// Package service exposes the sizing engine behind a cache for the HTTP API.
package service

import (
	"encoding/json"
	"log"

	"github.com/vladmu/tire-calculator/internal/engine"
	"github.com/vladmu/tire-calculator/internal/model"
	"github.com/vladmu/tire-calculator/internal/repository"
)

type SizingService struct {
	cache     repository.CacheRepository
	calculate func(model.Input) model.Results
}

// NewSizingService creates a SizingService backed by cache.
func NewSizingService(cache repository.CacheRepository) *SizingService {
	return &SizingService{cache: cache, calculate: engine.CalculateNewSizes}
}

// Calculate validates the input and returns the recommendations for it,
// served from the cache when possible.
func (s *SizingService) Calculate(in model.Input) (model.Results, error) {
	if err := in.Validate(); err != nil {
		return model.Results{}, err
	}

	key := in.Key()
	if cached, ok := s.cache.Get(key); ok {
		var res model.Results
		if err := json.Unmarshal([]byte(cached), &res); err == nil {
			return res, nil
		}
		log.Printf("Warning: discarding corrupt cache entry for %s", key)
	}

	res := s.calculate(in)

	// Caching is not critical
	data, err := json.Marshal(res)
	if err != nil {
		log.Printf("Warning: failed to encode results for %s: %v", key, err)
		return res, nil
	}
	if err := s.cache.Set(key, string(data)); err != nil {
		log.Printf("Warning: failed to cache results for %s: %v", key, err)
	}

	return res, nil
}

// CalculateKey parses a "W/V RR" label and calculates it.
func (s *SizingService) CalculateKey(key string) (model.Results, error) {
	in, err := model.ParseSizeKey(key)
	if err != nil {
		return model.Results{}, err
	}
	return s.Calculate(in)
}

// Limits returns the per-rim width and profile limits.
func (s *SizingService) Limits() []model.LimitRow {
	return model.LimitRows()
}
