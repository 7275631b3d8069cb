// Package batches provides the course batches shown in the demo program.
package batches

import (
	"context"
	"errors"
	"strings"
	"time"
)

// ErrNotFound is returned by Get for an unknown batch ID.
var ErrNotFound = errors.New("batch not found")

// Batch is one course batch.
type Batch struct {
	ID             string
	Language       string
	Topic          string
	Title          string
	StartsAt       time.Time
	Timing         string
	Educators      []string
	EducatorImages []string
}

// Started reports whether the batch has begun at now.
func (b Batch) Started(now time.Time) bool {
	return !b.StartsAt.After(now)
}

// Source lists batches.
type Source interface {
	List(ctx context.Context) ([]Batch, error)
	Get(ctx context.Context, id string) (Batch, error)
}

// Filter returns the batches whose title, topic or educators contain query,
// ignoring case. An empty query returns all batches.
func Filter(list []Batch, query string) []Batch {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return list
	}
	var out []Batch
	for _, b := range list {
		if matches(b, query) {
			out = append(out, b)
		}
	}
	return out
}

func matches(b Batch, query string) bool {
	if strings.Contains(strings.ToLower(b.Title), query) ||
		strings.Contains(strings.ToLower(b.Topic), query) {
		return true
	}
	for _, e := range b.Educators {
		if strings.Contains(strings.ToLower(e), query) {
			return true
		}
	}
	return false
}
