// Package service implements the reconciliation workflows: merging duplicate
// rows by part number and diffing independently sourced datasets. Problems
// with single rows are logged and counted; they never fail a whole run.
package service

import (
	"dockyard/internal/core/logger"
	"dockyard/internal/core/metrics"
	"dockyard/internal/core/ordered"

	"go.uber.org/zap"
)

// Drop reasons reported to metrics.
const (
	ReasonEmptyKey      = "empty_key"
	ReasonDuplicate     = "duplicate"
	ReasonUnmatched     = "unmatched"
	ReasonEachOnly      = "each_only"
	ReasonNoCarton      = "no_carton"
	ReasonDimensionless = "dimensionless"
)

func dropped(reason string, fields ...zap.Field) {
	metrics.ReconciliationDropped.WithLabelValues(reason).Inc()
	logger.Named("reconciliation").Debug("Row dropped", append(fields, zap.String("reason", reason))...)
}

// MergeByKey folds records into a map keyed by key, in first-seen order. The
// first record of a key is stored as-is; later ones go through merge together
// with the stored value. Records with an empty key are skipped.
func MergeByKey[T any](records []T, key func(T) string, merge func(existing, incoming T) T) ordered.Map[string, T] {
	var m ordered.Map[string, T]
	for i, r := range records {
		k := key(r)
		if k == "" {
			dropped(ReasonEmptyKey, zap.Int("row", i))
			continue
		}
		if existing, ok := m.Get(k); ok {
			m.Set(k, merge(existing, r))
			continue
		}
		m.Set(k, r)
	}
	return m
}
