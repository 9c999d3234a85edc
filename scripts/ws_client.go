// Package main runs a demo WebSocket client for the webhook event stream.
package main

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/gorilla/websocket"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	base := fmt.Sprintf("http://localhost:%s", port)

	// Connect WS first so we see the event we trigger below
	u := url.URL{Scheme: "ws", Host: "localhost:" + port, Path: "/v1/webhook-events/stream"}
	c, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		log.Fatal("dial:", err)
	}
	defer func() { _ = c.Close() }()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			_, msg, err := c.ReadMessage()
			if err != nil {
				log.Printf("read: %v", err)
				return
			}
			log.Printf("WS <- %s", msg)
		}
	}()

	// Fake a provider push
	body := []byte(`{"AWBNo":"PKDDEMO1","short_code":"PCK","activity":"picked up from warehouse","timestamp":1700000000}`)
	req, _ := http.NewRequest(http.MethodPost, base+"/webhooks/pikndel/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if secret := os.Getenv("PIKNDEL_WEBHOOK_SECRET"); secret != "" {
		req.Header.Set("x-pikndel-secret", secret)
	}
	if _, err := http.DefaultClient.Do(req); err != nil {
		log.Fatal(err)
	}

	select {
	case <-time.After(2 * time.Second):
	case <-done:
	}
}
