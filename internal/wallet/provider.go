package wallet

import (
	"context"
	"sync/atomic"
	"time"
)

// MethodRequestAccounts is the provider method that asks the user to expose
// their accounts.
const MethodRequestAccounts = "eth_requestAccounts"

// Provider is an account provider such as a browser extension wallet or a
// node exposing accounts over JSON-RPC.
//
// RequestAccounts resolves to either a single address or a sequence of
// addresses; callers normalise the result with ResolveAccount.
type Provider interface {
	Present() bool
	RequestAccounts(ctx context.Context) (any, error)
}

// Slot is the place a provider gets injected into. It may be empty, and it
// may be filled or emptied at any time, so consumers probe it each time they
// need it instead of caching the result.
type Slot struct {
	p atomic.Pointer[holder]
}

type holder struct{ provider Provider }

// NewSlot returns a slot holding p. A nil p yields an empty slot.
func NewSlot(p Provider) *Slot {
	s := &Slot{}
	s.Inject(p)
	return s
}

func (s *Slot) Inject(p Provider) {
	if p == nil {
		s.p.Store(nil)
		return
	}
	s.p.Store(&holder{provider: p})
}

func (s *Slot) Eject() { s.p.Store(nil) }

// Probe returns the injected provider when one is present.
func (s *Slot) Probe() (Provider, bool) {
	if s == nil {
		return nil, false
	}
	h := s.p.Load()
	if h == nil || h.provider == nil || !h.provider.Present() {
		return nil, false
	}
	return h.provider, true
}

// Static is an in-process provider that answers every request with the same
// configured result, after an optional delay.
type Static struct {
	Result any
	Err    error
	Delay  time.Duration
}

func (s *Static) Present() bool { return s != nil }

func (s *Static) RequestAccounts(ctx context.Context) (any, error) {
	if s.Delay > 0 {
		t := time.NewTimer(s.Delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-t.C:
		}
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Result, nil
}
