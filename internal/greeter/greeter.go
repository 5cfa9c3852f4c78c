// Package greeter holds the state behind the greeting button: a click
// counter and the last greeting received from the server.
package greeter

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"
)

// ErrNoMessage is returned by a Fetcher when the response carries no message.
var ErrNoMessage = errors.New("greeter: response has no message")

// Fetcher performs one greeting request.
type Fetcher interface {
	FetchGreeting(ctx context.Context) (string, error)
}

type FetcherFunc func(ctx context.Context) (string, error)

func (f FetcherFunc) FetchGreeting(ctx context.Context) (string, error) {
	return f(ctx)
}

// View is what the component displays.
type View struct {
	ClickCount   int
	Greeting     string
	ShowGreeting bool
}

type Component struct {
	fetcher Fetcher
	logger  zerolog.Logger

	mu         sync.Mutex
	clickCount int
	greeting   string
}

func New(fetcher Fetcher, logger zerolog.Logger) *Component {
	return &Component{
		fetcher: fetcher,
		logger:  logger,
	}
}

// Click counts the click and then asks for a greeting. Failed requests leave
// the greeting as it was and are not reported to the caller.
func (c *Component) Click(ctx context.Context) {
	c.mu.Lock()
	c.clickCount++
	c.mu.Unlock()

	msg, err := c.fetcher.FetchGreeting(ctx)
	if err != nil {
		c.logger.Debug().Err(err).Msg("greeting fetch discarded")
		return
	}
	if msg == "" {
		return
	}

	c.mu.Lock()
	c.greeting = msg
	c.mu.Unlock()
}

func (c *Component) ClickCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.clickCount
}

func (c *Component) Greeting() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.greeting
}

func (c *Component) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return View{
		ClickCount:   c.clickCount,
		Greeting:     c.greeting,
		ShowGreeting: c.greeting != "",
	}
}
