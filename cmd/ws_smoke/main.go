package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/websocket"
)

// Smoke test for the realtime feed: registers two users over HTTP,
// attaches both to /ws and checks that a post created by the first
// user is broadcast to both connections.
func main() {
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	base := fmt.Sprintf("http://127.0.0.1:%s", port)
	suffix := time.Now().UnixNano() % 1_000_000

	idA := register(base, fmt.Sprintf("smokeA%d", suffix))
	idB := register(base, fmt.Sprintf("smokeB%d", suffix))

	// use 127.0.0.1 to prefer IPv4 (avoid resolving to [::1])
	wsURL := fmt.Sprintf("ws://127.0.0.1:%s/ws", port)

	connA := dialAndAuth(wsURL, idA, "A")
	defer connA.Close()
	connB := dialAndAuth(wsURL, idB, "B")
	defer connB.Close()

	// post from A, both sockets should see new_post
	body, _ := json.Marshal(map[string]any{
		"user_id": idA,
		"content": "ws smoke post",
	})
	resp, err := http.Post(base+"/api/posts", "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("create post: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		log.Fatalf("create post: status %d", resp.StatusCode)
	}

	waitFor(connA, "A", "new_post")
	waitFor(connB, "B", "new_post")

	log.Println("smoke test finished")
}

func register(base, username string) int64 {
	body, _ := json.Marshal(map[string]string{
		"username": username,
		"password": "smoke-pass",
	})
	resp, err := http.Post(base+"/api/auth/register", "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("register %s: %v", username, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		log.Fatalf("register %s: status %d", username, resp.StatusCode)
	}

	var res struct {
		User struct {
			ID int64 `json:"id"`
		} `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		log.Fatalf("register %s: decode: %v", username, err)
	}
	return res.User.ID
}

func dialAndAuth(wsURL string, userID int64, name string) *websocket.Conn {
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		log.Fatalf("dial %s: %v", name, err)
	}

	auth := fmt.Sprintf(`{"type":"auth","user_id":%d}`, userID)
	if err := conn.WriteMessage(websocket.TextMessage, []byte(auth)); err != nil {
		log.Fatalf("auth %s: %v", name, err)
	}

	// the hub pushes a user_update snapshot right after auth
	waitFor(conn, name, "user_update")
	return conn
}

// waitFor reads frames until one of the wanted type arrives, skipping
// others. The connection is unusable after any read error, so the
// deadline is set once and an error is fatal.
func waitFor(conn *websocket.Conn, name, msgType string) {
	_ = conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			log.Fatalf("%s: waiting for %s: %v", name, msgType, err)
		}
		var obj map[string]any
		_ = json.Unmarshal(msg, &obj)
		if t, ok := obj["type"].(string); ok && t == msgType {
			log.Printf("%s got %s: %s", name, msgType, string(msg))
			return
		}
	}
}
