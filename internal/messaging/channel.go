// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package messaging

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-agro-sync/internal/logger"
)

var (
	ErrChannelStopped = errors.New("messaging channel is not running")
	ErrClientClosed   = errors.New("page client is closed")
)

// Handler processes one page→worker message. The returned message is sent
// back when the sender asked for a reply and ignored otherwise.
type Handler func(ctx context.Context, msg Message) Message

// Channel connects pages and the worker.
type Channel struct {
	inbox chan Message
	done  chan struct{}
	once  sync.Once

	mu      sync.RWMutex
	clients map[*Client]struct{}

	logger *logger.Logger
}

// NewChannel creates a channel whose inbox holds up to inboxSize undelivered
// messages.
func NewChannel(inboxSize int, log *logger.Logger) *Channel {
	if inboxSize <= 0 {
		inboxSize = 16
	}

	return &Channel{
		inbox:   make(chan Message, inboxSize),
		done:    make(chan struct{}),
		clients: make(map[*Client]struct{}),
		logger:  log.WithComponent("messaging"),
	}
}

// Run drains the inbox in FIFO order, calling h for each message, until ctx
// is cancelled. It must be called at most once.
func (c *Channel) Run(ctx context.Context, h Handler) {
	defer c.once.Do(func() { close(c.done) })

	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-c.inbox:
			resp := h(ctx, msg)
			if msg.reply != nil {
				msg.reply <- resp
			}
		}
	}
}

// Post enqueues msg for the worker. It blocks while the inbox is full.
func (c *Channel) Post(ctx context.Context, msg Message) error {
	msg.reply = nil
	return c.enqueue(ctx, msg)
}

// Request enqueues msg and waits for the worker's reply.
func (c *Channel) Request(ctx context.Context, msg Message) (Message, error) {
	msg.reply = make(chan Message, 1)
	if err := c.enqueue(ctx, msg); err != nil {
		return Message{}, err
	}

	select {
	case resp := <-msg.reply:
		return resp, nil
	case <-c.done:
		return Message{}, ErrChannelStopped
	case <-ctx.Done():
		return Message{}, ctx.Err()
	}
}

func (c *Channel) enqueue(ctx context.Context, msg Message) error {
	select {
	case c.inbox <- msg:
		return nil
	case <-c.done:
		return ErrChannelStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Broadcast delivers msg to every connected page without blocking and
// returns how many pages received it.
func (c *Channel) Broadcast(msg Message) int {
	msg.reply = nil

	c.mu.RLock()
	defer c.mu.RUnlock()

	delivered := 0
	for client := range c.clients {
		select {
		case client.messages <- msg:
			delivered++
		default:
			c.logger.Debug().Str("type", string(msg.Type)).Msg("page buffer full, message dropped")
		}
	}

	return delivered
}

// Connect registers a page. buffer bounds how many broadcasts the page may
// fall behind before messages are dropped.
func (c *Channel) Connect(buffer int) *Client {
	if buffer <= 0 {
		buffer = 8
	}

	client := &Client{
		channel:  c,
		messages: make(chan Message, buffer),
	}

	c.mu.Lock()
	c.clients[client] = struct{}{}
	c.mu.Unlock()

	return client
}

func (c *Channel) disconnect(client *Client) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.clients[client]; ok {
		delete(c.clients, client)
		close(client.messages)
	}
}

// Client is one connected page.
type Client struct {
	channel  *Channel
	messages chan Message
	closed   sync.Once
}

// Messages returns the broadcast stream. It is closed by [Client.Close].
func (cl *Client) Messages() <-chan Message {
	return cl.messages
}

// Post sends a page→worker message.
func (cl *Client) Post(ctx context.Context, msg Message) error {
	return cl.channel.Post(ctx, msg)
}

// Request sends a page→worker message and waits for the reply.
func (cl *Client) Request(ctx context.Context, msg Message) (Message, error) {
	return cl.channel.Request(ctx, msg)
}

// Close disconnects the page.
func (cl *Client) Close() {
	cl.closed.Do(func() { cl.channel.disconnect(cl) })
}
