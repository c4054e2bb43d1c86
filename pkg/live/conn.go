package live

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/gorilla/websocket"
	"github.com/vango-dev/dropdown/pkg/dom"
)

// Message types.
const (
	// Client to server.
	MessageEvent       = "event"
	MessagePointerDown = "pointerdown"

	// Server to client.
	MessageHTML  = "html"
	MessageError = "error"
)

// Message is a JSON frame exchanged over the live connection.
type Message struct {
	Type string `json:"type"`

	// HID addresses the target element. Empty for a pointer-down outside
	// every rendered element.
	HID string `json:"hid,omitempty"`

	// Event is the DOM event name for MessageEvent, e.g. "click".
	Event string `json:"event,omitempty"`

	// Value is the input value for "input" and "change" events.
	Value string `json:"value,omitempty"`

	// Geometry is the target's bounding box when the event fired.
	Geometry *dom.Geometry `json:"geometry,omitempty"`

	HTML    string `json:"html,omitempty"`
	Message string `json:"message,omitempty"`
}

// Conn is the part of *websocket.Conn used by Serve.
type Conn interface {
	ReadJSON(v any) error
	WriteJSON(v any) error
}

// Serve runs the read loop of a live connection: every message is
// dispatched to the page and, when the page changed, the new markup is
// written back. Dispatch failures and undecodable messages are reported to
// the client as error frames without closing the connection.
//
// Serve returns nil when the client closes the connection normally.
func (p *Page) Serve(ctx context.Context, conn Conn) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			if isDecodeError(err) {
				p.logger.Warn("message decode error", "error", err)
				p.metrics.observeEvent("invalid", err, 0)
				if werr := conn.WriteJSON(Message{Type: MessageError, Message: "invalid message"}); werr != nil {
					return werr
				}
				continue
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				p.logger.Error("read error", "error", err)
			}
			return err
		}

		if err := p.Dispatch(ctx, msg); err != nil {
			p.logger.Warn("dispatch failed", "type", msg.Type, "event", msg.Event, "hid", msg.HID, "error", err)
			if werr := conn.WriteJSON(Message{Type: MessageError, Message: err.Error()}); werr != nil {
				return werr
			}
			continue
		}

		if !p.Dirty() {
			continue
		}
		html, err := p.HTML()
		if err != nil {
			p.logger.Error("render error", "error", err)
			if werr := conn.WriteJSON(Message{Type: MessageError, Message: "render failed"}); werr != nil {
				return werr
			}
			continue
		}
		if err := conn.WriteJSON(Message{Type: MessageHTML, HTML: html}); err != nil {
			p.logger.Error("write error", "error", err)
			return err
		}
	}
}

func isDecodeError(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr)
}
