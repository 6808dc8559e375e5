package policy

import (
	"context"
	"sync"
)

// Static answers every check the same way. It is the engine used when no
// Permit.io key is configured.
type Static struct {
	Allow bool
}

func (s Static) Check(context.Context, string, string, string) (bool, error) {
	return s.Allow, nil
}

func (s Static) CreateTuple(context.Context, Tuple) error { return nil }

func (s Static) DeleteTuple(context.Context, Tuple) error { return nil }

func (s Static) CreateResourceInstance(context.Context, ResourceInstance) error { return nil }

// Scripted is an in-process engine with per-tuple answers. Relationship
// writes are recorded and, once created, satisfy checks for the same tuple.
type Scripted struct {
	mu        sync.Mutex
	Default   bool
	answers   map[Tuple]bool
	failures  map[Tuple]error
	writeErr  error
	checks    []Tuple
	tuples    map[Tuple]struct{}
	deleted   []Tuple
	instances []ResourceInstance
}

func NewScripted(def bool) *Scripted {
	return &Scripted{
		Default:  def,
		answers:  map[Tuple]bool{},
		failures: map[Tuple]error{},
		tuples:   map[Tuple]struct{}{},
	}
}

// Set fixes the answer for one (subject, action, object).
func (s *Scripted) Set(subject, action, object string, allow bool) *Scripted {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.answers[Tuple{subject, action, object}] = allow
	return s
}

// Fail makes the check for one (subject, action, object) return err.
func (s *Scripted) Fail(subject, action, object string, err error) *Scripted {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[Tuple{subject, action, object}] = err
	return s
}

// FailWrites makes every relationship mutation return err.
func (s *Scripted) FailWrites(err error) *Scripted {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeErr = err
	return s
}

func (s *Scripted) Check(_ context.Context, subject, action, object string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := Tuple{subject, action, object}
	s.checks = append(s.checks, t)

	if err, ok := s.failures[t]; ok {
		return false, err
	}
	if allow, ok := s.answers[t]; ok {
		return allow, nil
	}
	if _, ok := s.tuples[t]; ok {
		return true, nil
	}
	return s.Default, nil
}

func (s *Scripted) CreateTuple(_ context.Context, t Tuple) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.writeErr != nil {
		return s.writeErr
	}
	s.tuples[t] = struct{}{}
	return nil
}

func (s *Scripted) DeleteTuple(_ context.Context, t Tuple) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.writeErr != nil {
		return s.writeErr
	}
	delete(s.tuples, t)
	s.deleted = append(s.deleted, t)
	return nil
}

func (s *Scripted) CreateResourceInstance(_ context.Context, ri ResourceInstance) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.writeErr != nil {
		return s.writeErr
	}
	s.instances = append(s.instances, ri)
	return nil
}

// Checks returns every check issued so far, in order.
func (s *Scripted) Checks() []Tuple {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Tuple(nil), s.checks...)
}

func (s *Scripted) HasTuple(t Tuple) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.tuples[t]
	return ok
}

func (s *Scripted) Deleted() []Tuple {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Tuple(nil), s.deleted...)
}

func (s *Scripted) Instances() []ResourceInstance {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ResourceInstance(nil), s.instances...)
}
