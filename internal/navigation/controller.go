package navigation

import "github.com/alexanderramin/checkpoint/internal/domain"

// Controller owns the focused index into the enabled set.
//
// It is driven from a single goroutine (the UI event loop) and holds no lock.
type Controller struct {
	focused     int
	unsubscribe func()
}

// NewController returns a controller focused on the first check.
func NewController() *Controller {
	return &Controller{}
}

// Focused returns the focused index into the enabled set.
func (c *Controller) Focused() int { return c.focused }

// Reset moves focus back to the first check.
func (c *Controller) Reset() { c.focused = 0 }

// Clamp keeps focus inside an enabled set of size n.
func (c *Controller) Clamp(n int) {
	if n <= 0 || c.focused < 0 {
		c.focused = 0
		return
	}
	if c.focused >= n {
		c.focused = n - 1
	}
}

// Apply processes one signal against the given enabled set and answers and
// returns the resulting answers. Movement clamps at both ends. Any signal on
// an empty enabled set, and any unknown signal, is a no-op.
func (c *Controller) Apply(sig Signal, enabled []domain.Check, answers domain.Answers) domain.Answers {
	if len(enabled) == 0 {
		return answers
	}
	c.Clamp(len(enabled))

	switch sig {
	case MovePrevious:
		if c.focused > 0 {
			c.focused--
		}
	case MoveNext:
		if c.focused < len(enabled)-1 {
			c.focused++
		}
	case SelectYes:
		return answers.With(enabled[c.focused].ID, true)
	case SelectNo:
		return answers.With(enabled[c.focused].ID, false)
	}
	return answers
}

// Click records a direct selection on a visible check: focus jumps to index
// and the answer is set unconditionally.
func (c *Controller) Click(id string, index int, value bool, answers domain.Answers) domain.Answers {
	c.focused = index
	return answers.With(id, value)
}

// Bind subscribes the controller to src with a handler closed over the given
// enabled set and answers. Any earlier subscription is dropped first, so the
// handler never acts on a stale enabled set. commit receives the answers that
// result from each signal.
//
// Owners call Bind again whenever the checks or the answers change.
func (c *Controller) Bind(src Source, enabled []domain.Check, answers domain.Answers, commit func(domain.Answers)) {
	c.Unbind()
	if src == nil {
		return
	}
	c.Clamp(len(enabled))
	c.unsubscribe = src.Subscribe(func(sig Signal) {
		next := c.Apply(sig, enabled, answers)
		if commit != nil {
			commit(next)
		}
	})
}

// Unbind removes the current subscription, if any.
func (c *Controller) Unbind() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}

// Bound reports whether the controller currently holds a subscription.
func (c *Controller) Bound() bool { return c.unsubscribe != nil }
