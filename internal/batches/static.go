package batches

import (
	"context"
	"fmt"
	"time"
)

// Static is an in-memory Source holding sample batches.
type Static struct {
	batches []Batch

	// Delay simulates a slow backend. List and Get wait this long unless
	// the context ends first.
	Delay time.Duration
}

// NewStatic returns the sample batches with start dates relative to now.
func NewStatic(now time.Time) *Static {
	day := 24 * time.Hour
	today := now.Truncate(time.Hour)
	return &Static{batches: []Batch{
		{
			ID:        "1",
			Language:  "En",
			Topic:     "FULL SYLLABUS COMPLETION",
			Title:     "Samarth Batch for NEET 2022 for Droppers & Class 12th",
			StartsAt:  today.Add(3 * day),
			Timing:    "Early morning classes",
			Educators: []string{"Educator name one", "Educator name two", "Educator name three"},
		},
		{
			ID:        "2",
			Language:  "Hi",
			Topic:     "CRASH COURSE",
			Title:     "JEE Advanced 2022 Crash Course Batch",
			StartsAt:  today.Add(7 * day),
			Timing:    "Evening classes",
			Educators: []string{"Dr. Sharma", "Prof. Patel"},
		},
		{
			ID:        "3",
			Language:  "En",
			Topic:     "FOUNDATION COURSE",
			Title:     "Foundation Course for Class 11th Students",
			StartsAt:  today.Add(day),
			Timing:    "Flexible timings",
			Educators: []string{"Expert faculty team"},
		},
		{
			ID:        "4",
			Language:  "En",
			Topic:     "LIVE CLASSES",
			Title:     "Physics Masterclass for JEE Main 2022",
			StartsAt:  today.Add(-5 * day),
			Timing:    "Morning and evening batches",
			Educators: []string{"Prof. Kumar", "Dr. Singh", "Prof. Verma"},
		},
		{
			ID:        "5",
			Language:  "Hi",
			Topic:     "TEST SERIES",
			Title:     "NEET Mock Test Series with Detailed Analysis",
			StartsAt:  today.AddDate(0, 1, 0),
			Timing:    "Weekly tests",
			Educators: []string{"Dr. Gupta", "Dr. Mehta"},
		},
		{
			ID:        "6",
			Language:  "En",
			Topic:     "DOUBT CLEARING",
			Title:     "Chemistry Doubt Clearing Sessions for NEET",
			StartsAt:  today,
			Timing:    "Late evening sessions",
			Educators: []string{"Prof. Reddy", "Dr. Nair"},
		},
	}}
}

// List returns a copy of all batches.
func (s *Static) List(ctx context.Context) ([]Batch, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	out := make([]Batch, len(s.batches))
	copy(out, s.batches)
	return out, nil
}

// Get returns the batch with the given ID.
func (s *Static) Get(ctx context.Context, id string) (Batch, error) {
	if err := s.wait(ctx); err != nil {
		return Batch{}, err
	}
	for _, b := range s.batches {
		if b.ID == id {
			return b, nil
		}
	}
	return Batch{}, fmt.Errorf("get %q: %w", id, ErrNotFound)
}

func (s *Static) wait(ctx context.Context) error {
	if s.Delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.Delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
