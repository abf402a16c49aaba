// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"

	"please/internal/service"
	"please/internal/tasklist"
)

// FakeService is an in-memory implementation of service.Service for testing.
type FakeService struct {
	mu     sync.RWMutex
	rec    service.Record
	stored bool
	saves  int

	// Error injection for testing
	LoadErr error
	SaveErr error
}

// NewFakeService creates a FakeService with nothing stored, as on first run.
func NewFakeService() *FakeService {
	return &FakeService{}
}

// NewFakeServiceWith creates a FakeService holding a finished setup for
// userName with the given tasks.
func NewFakeServiceWith(userName string, tasks ...tasklist.Task) *FakeService {
	f := &FakeService{}
	f.Put(service.Record{
		UserName:         userName,
		Tasks:            append(tasklist.List{}, tasks...),
		InitialSetupDone: true,
	})
	return f
}

// Put stores rec without counting it as a save.
func (f *FakeService) Put(rec service.Record) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec.Tasks = rec.Tasks.Clone()
	f.rec = rec
	f.stored = true
}

// Record returns the stored record.
func (f *FakeService) Record() service.Record {
	f.mu.RLock()
	defer f.mu.RUnlock()
	rec := f.rec
	rec.Tasks = rec.Tasks.Clone()
	return rec
}

// Tasks returns the stored task list.
func (f *FakeService) Tasks() tasklist.List {
	return f.Record().Tasks
}

// Saves returns how many times Save succeeded.
func (f *FakeService) Saves() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.saves
}

// Load implements service.Service.
func (f *FakeService) Load(ctx context.Context) (service.Record, error) {
	if f.LoadErr != nil {
		return service.Record{}, f.LoadErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	if !f.stored {
		return service.Record{}, service.ErrNotFound
	}
	rec := f.rec
	rec.Tasks = rec.Tasks.Clone()
	return rec, nil
}

// Save implements service.Service.
func (f *FakeService) Save(ctx context.Context, rec service.Record) error {
	if f.SaveErr != nil {
		return f.SaveErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	rec.Tasks = rec.Tasks.Clone()
	f.rec = rec
	f.stored = true
	f.saves++
	return nil
}

// Location implements service.Service.
func (f *FakeService) Location() string {
	return "memory"
}
