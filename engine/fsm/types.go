package fsm

import (
	"errors"
	"time"
)

// ErrUnregisteredState is returned when initializing into an unknown state
var ErrUnregisteredState = errors.New("state not registered")

// State is one mode of a StateManager
// T is the shared context handed to lifecycle hooks (e.g. *mode.GameContext)
type State[T any] interface {
	Name() string
	Enter(ctx T)
	Update(ctx T, dt time.Duration)
	Exit(ctx T)
	// CanTransitionTo guards outgoing transitions
	CanTransitionTo(target string) bool
}

// StateFuncs adapts plain functions into a State
// Nil hooks are no-ops; a nil guard allows every target
type StateFuncs[T any] struct {
	StateName string
	OnEnter   func(ctx T)
	OnUpdate  func(ctx T, dt time.Duration)
	OnExit    func(ctx T)
	Guard     func(target string) bool
}

func (s *StateFuncs[T]) Name() string { return s.StateName }

func (s *StateFuncs[T]) Enter(ctx T) {
	if s.OnEnter != nil {
		s.OnEnter(ctx)
	}
}

func (s *StateFuncs[T]) Update(ctx T, dt time.Duration) {
	if s.OnUpdate != nil {
		s.OnUpdate(ctx, dt)
	}
}

func (s *StateFuncs[T]) Exit(ctx T) {
	if s.OnExit != nil {
		s.OnExit(ctx)
	}
}

func (s *StateFuncs[T]) CanTransitionTo(target string) bool {
	if s.Guard == nil {
		return true
	}
	return s.Guard(target)
}
