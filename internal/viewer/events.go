package viewer

import (
	"context"

	"go.uber.org/zap"

	"github.com/kamusis/certview/internal/locale"
)

type event interface {
	apply(ctx context.Context, c *Controller) error
}

type localeEvent struct{ loc locale.Locale }

func (e localeEvent) apply(_ context.Context, c *Controller) error { return c.SetLocale(e.loc) }

type reloadEvent struct{}

func (reloadEvent) apply(ctx context.Context, c *Controller) error {
	err := c.Reload(ctx)
	if err != nil {
		// The failure is already on screen; keep running.
		c.log.Debug("reload failed", zap.Error(err))
	}
	return nil
}

// SubscribeLocale binds ch as a source of locale changes. Binding the same
// channel again is a no-op and reports false.
func (c *Controller) SubscribeLocale(ch <-chan locale.Locale) bool {
	if _, ok := c.subs[ch]; ok {
		return false
	}
	c.subs[ch] = struct{}{}
	go func() {
		for {
			select {
			case l, ok := <-ch:
				if !ok {
					return
				}
				if !c.post(localeEvent{loc: l}) {
					return
				}
			case <-c.done:
				return
			}
		}
	}()
	return true
}

// SubscribeReload binds ch as a source of dataset change notifications.
// Binding the same channel again is a no-op and reports false.
func (c *Controller) SubscribeReload(ch <-chan struct{}) bool {
	if _, ok := c.subs[ch]; ok {
		return false
	}
	c.subs[ch] = struct{}{}
	go func() {
		for {
			select {
			case _, ok := <-ch:
				if !ok {
					return
				}
				if !c.post(reloadEvent{}) {
					return
				}
			case <-c.done:
				return
			}
		}
	}()
	return true
}

func (c *Controller) post(e event) bool {
	select {
	case c.events <- e:
		return true
	case <-c.done:
		return false
	}
}

// Run applies subscribed notifications until ctx is done or Close is called.
// It must run on the goroutine that owns the controller.
func (c *Controller) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-c.done:
			return nil
		case e := <-c.events:
			if err := e.apply(ctx, c); err != nil {
				return err
			}
		}
	}
}

// Close stops Run and every subscription forwarder.
func (c *Controller) Close() {
	select {
	case <-c.done:
	default:
		close(c.done)
	}
}
