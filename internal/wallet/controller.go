// Package wallet drives the handshake with an external account provider and
// maps its outcome onto the session store.
package wallet

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/samber/oops"

	slogctx "github.com/veqryn/slog-context"

	"github.com/jask/propchain/internal/session"
)

// State is the connection state as seen by the modal.
type State int

const (
	Idle State = iota
	ModalOpen
	Connecting
	Connected
	// Failed is a modal that is open after a failed attempt. It accepts the
	// same transitions as ModalOpen.
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case ModalOpen:
		return "modal_open"
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// ConnectResultMsg is posted back into the update loop when an account
// request finishes. Exactly one of Address and Err is set.
type ConnectResultMsg struct {
	Attempt string
	Address string
	Err     error
}

// Controller owns the connect flow. All methods except the returned task
// must be called from the update loop.
type Controller struct {
	ctx   context.Context
	store *session.Store
	slot  *Slot

	connecting bool
	attempt    string
	lastErr    error
}

func NewController(ctx context.Context, store *session.Store, slot *Slot) *Controller {
	if slot == nil {
		slot = NewSlot(nil)
	}
	return &Controller{ctx: ctx, store: store, slot: slot}
}

// State derives the modal state from the store and the in-flight attempt.
func (c *Controller) State() State {
	if c.connecting {
		return Connecting
	}
	st := c.store.Snapshot()
	switch {
	case st.Connected:
		return Connected
	case st.ModalOpen && c.lastErr != nil:
		return Failed
	case st.ModalOpen:
		return ModalOpen
	}
	return Idle
}

// LastError returns the failure of the most recent attempt, if any.
func (c *Controller) LastError() error { return c.lastErr }

// ProviderPresent probes the slot. Call it on every render; a provider can be
// injected between renders.
func (c *Controller) ProviderPresent() bool {
	_, ok := c.slot.Probe()
	return ok
}

func (c *Controller) OpenModal() {
	if !c.connecting {
		c.lastErr = nil
	}
	c.store.OpenModal()
	if !c.ProviderPresent() {
		slogctx.Debug(c.ctx, "wallet modal opened without provider")
	}
}

// CloseModal hides the modal. An outstanding request is not cancelled.
func (c *Controller) CloseModal() { c.store.CloseModal() }

// Connect starts an account request. It returns nil when the modal is not
// open, a request is already in flight, or no provider is present.
func (c *Controller) Connect() tea.Cmd {
	if c.connecting || !c.store.Snapshot().ModalOpen {
		return nil
	}
	p, ok := c.slot.Probe()
	if !ok {
		slogctx.Info(c.ctx, "connect requested without provider", "error", ErrProviderAbsent)
		return nil
	}

	c.connecting = true
	c.lastErr = nil
	c.attempt = uuid.NewString()
	slogctx.Debug(c.ctx, "wallet connect started", "attempt", c.attempt)

	return requestTask(c.ctx, p, c.attempt)
}

func requestTask(ctx context.Context, p Provider, attempt string) tea.Cmd {
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				msg = ConnectResultMsg{Attempt: attempt, Err: rejected(attempt, fmt.Errorf("provider panic: %v", r))}
			}
		}()

		res, err := p.RequestAccounts(ctx)
		if err != nil {
			return ConnectResultMsg{Attempt: attempt, Err: rejected(attempt, err)}
		}
		addr, err := ResolveAccount(res)
		if err != nil {
			return ConnectResultMsg{Attempt: attempt, Err: oops.In("wallet").Code("invalid_account_result").With("attempt", attempt).Wrap(err)}
		}
		return ConnectResultMsg{Attempt: attempt, Address: addr}
	}
}

func rejected(attempt string, err error) error {
	return oops.In("wallet").
		Code("connection_rejected").
		With("attempt", attempt).
		Wrap(fmt.Errorf("%w: %w", ErrConnectionRejected, err))
}

// Handle applies a finished request. Results from an attempt other than the
// outstanding one are dropped.
func (c *Controller) Handle(msg ConnectResultMsg) {
	if !c.connecting || msg.Attempt != c.attempt {
		slogctx.Debug(c.ctx, "dropping stale connect result", "attempt", msg.Attempt)
		return
	}
	c.connecting = false

	if msg.Err != nil {
		c.lastErr = msg.Err
		slogctx.Error(c.ctx, "wallet connection failed", "attempt", msg.Attempt, "error", msg.Err)
		return
	}
	c.store.SetConnected(msg.Address)
	short, _ := c.store.ShortAddress()
	slogctx.Info(c.ctx, "wallet connected", "attempt", msg.Attempt, "address", short)
}

// ResolveAccount normalises a provider result to one address: sequences
// yield their first element, and the value must be a non-empty string.
func ResolveAccount(result any) (string, error) {
	account := result
	switch v := result.(type) {
	case []string:
		if len(v) == 0 {
			return "", fmt.Errorf("%w: no accounts", ErrInvalidAccountResult)
		}
		account = v[0]
	case []any:
		if len(v) == 0 {
			return "", fmt.Errorf("%w: no accounts", ErrInvalidAccountResult)
		}
		account = v[0]
	}

	addr, ok := account.(string)
	if !ok {
		return "", fmt.Errorf("%w: unexpected %T", ErrInvalidAccountResult, account)
	}
	if addr == "" {
		return "", fmt.Errorf("%w: empty address", ErrInvalidAccountResult)
	}
	return addr, nil
}

// IsRetryable reports whether err leaves the connect control available.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrConnectionRejected) || errors.Is(err, ErrInvalidAccountResult)
}
