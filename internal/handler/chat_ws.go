package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"homecalc/internal/assist"
)

const (
	chatWSWriteWait = 10 * time.Second
	chatWSPongWait  = 60 * time.Second
	chatWSPingEvery = (chatWSPongWait * 9) / 10
)

var chatWSUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(_ *http.Request) bool {
		return true
	},
}

type chatWSInbound struct {
	Query    string           `json:"query"`
	History  []assist.Message `json:"history,omitempty"`
	Location string           `json:"location,omitempty"`
}

type chatWSOutbound struct {
	Answer string `json:"answer,omitempty"`
	Link   string `json:"link,omitempty"`
	Error  string `json:"error,omitempty"`
}

// ChatWS serves the floating assistant widget. Each inbound frame is
// one AssistantRequest; history stays caller-supplied per frame, the
// server keeps no session.
func (h *Handler) ChatWS(w http.ResponseWriter, r *http.Request) {
	conn, err := chatWSUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	if err := conn.SetReadDeadline(time.Now().Add(chatWSPongWait)); err != nil {
		return
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(chatWSPongWait))
	})

	// One mutex guards all writes: responses and pings share the conn.
	var writeMu sync.Mutex
	send := func(out chatWSOutbound) {
		writeMu.Lock()
		defer writeMu.Unlock()
		_ = conn.SetWriteDeadline(time.Now().Add(chatWSWriteWait))
		if err := conn.WriteJSON(out); err != nil {
			h.log.Debug("chat ws write failed", zap.Error(err))
		}
	}

	pingDone := make(chan struct{})
	defer close(pingDone)
	go func() {
		ticker := time.NewTicker(chatWSPingEvery)
		defer ticker.Stop()
		for {
			select {
			case <-pingDone:
				return
			case <-ticker.C:
				writeMu.Lock()
				_ = conn.SetWriteDeadline(time.Now().Add(chatWSWriteWait))
				err := conn.WriteMessage(websocket.PingMessage, nil)
				writeMu.Unlock()
				if err != nil {
					return
				}
			}
		}
	}()

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(chatWSPongWait))

		var in chatWSInbound
		if err := json.Unmarshal(payload, &in); err != nil {
			send(chatWSOutbound{Error: "invalid frame"})
			continue
		}
		res, err := h.svc.Chatbot(r.Context(), assist.AssistantRequest{
			Query:    in.Query,
			History:  in.History,
			Location: in.Location,
		})
		if err != nil {
			msg := "the assistant is unavailable right now"
			if errors.Is(err, assist.ErrRequestValidation) {
				msg = "invalid request"
			} else {
				h.log.Warn("chat ws failed", zap.Error(err))
			}
			send(chatWSOutbound{Error: msg})
			continue
		}
		send(chatWSOutbound{Answer: res.Answer, Link: res.Link})
	}
}
