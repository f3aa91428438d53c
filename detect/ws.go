package detect

import (
	"context"
	"fmt"
	"sync"

	"github.com/gorilla/websocket"
)

// message is one push from the detection service.
type message struct {
	Found bool `json:"found"`
	Box   Box  `json:"box"`
}

// Client consumes face boxes pushed over a websocket by an out-of-process
// detection service. Detect hands each box out at most once, so a frame with
// no fresh push reads as "no face" and the game keeps its stale estimate.
type Client struct {
	conn *websocket.Conn

	mu     sync.Mutex
	latest Box
	fresh  bool
	err    error
}

// Dial connects to the detection service and starts consuming its pushes.
func Dial(ctx context.Context, url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("detector dial %s: %w", url, err)
	}
	c := &Client{conn: conn}
	go c.readPump()
	return c, nil
}

func (c *Client) readPump() {
	for {
		var msg message
		if err := c.conn.ReadJSON(&msg); err != nil {
			c.mu.Lock()
			c.err = err
			c.mu.Unlock()
			return
		}
		if !msg.Found {
			continue
		}
		c.mu.Lock()
		c.latest = msg.Box
		c.fresh = true
		c.mu.Unlock()
	}
}

// Detect implements Detector with the most recent unconsumed push.
func (c *Client) Detect(ctx context.Context) (Box, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return Box{}, false, fmt.Errorf("detector feed: %w", c.err)
	}
	if !c.fresh {
		return Box{}, false, nil
	}
	c.fresh = false
	return c.latest, true, nil
}

// Close tears down the feed connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
