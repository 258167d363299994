package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	httpserver "crypto_webapp/internal/http"
	"crypto_webapp/internal/service"
	"crypto_webapp/internal/store"
)

// End-to-end check of the realtime feed: two users register over HTTP,
// attach over /ws, and both see broadcasts when one of them posts and
// the other likes the post.

func startServer(t *testing.T) *httptest.Server {
	t.Helper()
	os.Setenv("JWT_SECRET", "test-secret")
	service.InitJWT()

	gin.SetMode(gin.TestMode)
	r := gin.New()

	st := store.New()
	store.SeedCatalogs(st)
	httpserver.RegisterRoutes(r, st, nil, "test")

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func registerUser(t *testing.T, base, username string) int64 {
	t.Helper()
	body, _ := json.Marshal(map[string]string{
		"username": username,
		"password": "e2e-pass",
	})
	resp, err := http.Post(base+"/api/auth/register", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("register %s: %v", username, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register %s: status %d", username, resp.StatusCode)
	}

	var res struct {
		User struct {
			ID int64 `json:"id"`
		} `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		t.Fatalf("register %s: decode: %v", username, err)
	}
	return res.User.ID
}

func dialWS(t *testing.T, srv *httptest.Server, userID int64) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial ws: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	auth := fmt.Sprintf(`{"type":"auth","user_id":%d}`, userID)
	if err := conn.WriteMessage(websocket.TextMessage, []byte(auth)); err != nil {
		t.Fatalf("send auth: %v", err)
	}

	// snapshot push confirms the hub registered us
	waitForMessage(t, conn, "user_update")
	return conn
}

// waitForMessage reads frames until one of the wanted type arrives,
// skipping others. A gorilla connection is dead after any read error,
// so the deadline is set once and an error ends the wait.
func waitForMessage(t *testing.T, conn *websocket.Conn, msgType string) map[string]any {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("waiting for %s: %v", msgType, err)
		}
		var obj map[string]any
		if err := json.Unmarshal(msg, &obj); err != nil {
			continue
		}
		if tp, ok := obj["type"].(string); ok && tp == msgType {
			return obj
		}
	}
}

func TestE2E_FeedBroadcast(t *testing.T) {
	srv := startServer(t)

	idA := registerUser(t, srv.URL, "e2e_alice")
	idB := registerUser(t, srv.URL, "e2e_bob")

	connA := dialWS(t, srv, idA)
	connB := dialWS(t, srv, idB)

	// A posts, both sockets see new_post
	body, _ := json.Marshal(map[string]any{
		"user_id": idA,
		"content": "going long on BTC",
	})
	resp, err := http.Post(srv.URL+"/api/posts", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create post: status %d", resp.StatusCode)
	}
	var created struct {
		Post struct {
			ID int64 `json:"id"`
		} `json:"post"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode post: %v", err)
	}

	msgA := waitForMessage(t, connA, "new_post")
	waitForMessage(t, connB, "new_post")
	if post, ok := msgA["post"].(map[string]any); ok {
		if got := post["content"]; got != "going long on BTC" {
			t.Errorf("new_post content = %v", got)
		}
	} else {
		t.Errorf("new_post payload missing post: %v", msgA)
	}

	// B likes the post, both sockets see post_update
	likeURL := fmt.Sprintf("%s/api/posts/%d/like", srv.URL, created.Post.ID)
	likeBody, _ := json.Marshal(map[string]any{"user_id": idB})
	resp2, err := http.Post(likeURL, "application/json", bytes.NewReader(likeBody))
	if err != nil {
		t.Fatalf("like post: %v", err)
	}
	resp2.Body.Close()
	if resp2.StatusCode != http.StatusOK {
		t.Fatalf("like post: status %d", resp2.StatusCode)
	}

	upd := waitForMessage(t, connA, "post_update")
	waitForMessage(t, connB, "post_update")
	if post, ok := upd["post"].(map[string]any); ok {
		if likes, _ := post["likes"].(float64); likes != 1 {
			t.Errorf("post_update likes = %v, want 1", post["likes"])
		}
	}
}
