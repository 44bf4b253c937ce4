package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"zazachat/internal/app/chat"
	"zazachat/internal/app/store"
	"zazachat/internal/app/translate"
	"zazachat/internal/configs"
	"zazachat/internal/pkg/errs"
)

// envelope mirrors the unified JSON response structure.
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// newTestServer wires a full router over a temp-dir file store and a fake
// translation upstream. Each call gets fresh rate limiters.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "translated text"}},
			},
		})
	}))
	t.Cleanup(upstream.Close)

	cfg := &configs.AppConfig{
		Environment:      "development",
		Port:             8080,
		AllowedOrigins:   []string{},
		JWTSecret:        "test-secret",
		StorePath:        filepath.Join(t.TempDir(), "rooms.json"),
		TranslateBaseURL: upstream.URL,
	}

	deps := &AppDeps{
		Chat: chat.NewService(store.NewFileStore(cfg.StorePath)),
		Translator: translate.NewService(translate.NewClient(translate.ClientConfig{
			BaseURL: cfg.TranslateBaseURL,
		})),
		Config: cfg,
	}

	server := httptest.NewServer(Router(deps))
	t.Cleanup(server.Close)
	return server
}

func postJSON(t *testing.T, server *httptest.Server, path, token string, body any) envelope {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, server.URL+path, bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	var env envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return env
}

func getJSON(t *testing.T, server *httptest.Server, path, token string) envelope {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, server.URL+path, nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	var env envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return env
}

type sessionData struct {
	Token string    `json:"token"`
	Room  chat.Room `json:"room"`
}

func TestRoomLifecycleOverHTTP(t *testing.T) {
	server := newTestServer(t)

	// ayse creates a protected room.
	env := postJSON(t, server, "/api/room/create", "", map[string]any{
		"roomName": "film-gecesi",
		"password": "1234",
		"username": "ayse",
		"lang":     "tr",
	})
	if env.Code != 0 {
		t.Fatalf("create failed: %d %s", env.Code, env.Message)
	}
	var ayse sessionData
	if err := json.Unmarshal(env.Data, &ayse); err != nil {
		t.Fatalf("decode create data: %v", err)
	}
	if ayse.Token == "" {
		t.Fatal("expected session token")
	}
	if len(ayse.Room.Messages) != 1 || ayse.Room.Messages[0].Type != chat.TypeSystem {
		t.Fatalf("expected seeded system notice, got %+v", ayse.Room.Messages)
	}

	// baran joins with the right password.
	env = postJSON(t, server, "/api/room/join", "", map[string]any{
		"roomName": "film-gecesi",
		"password": "1234",
		"username": "baran",
		"lang":     "de",
	})
	if env.Code != 0 {
		t.Fatalf("join failed: %d %s", env.Code, env.Message)
	}
	var baran sessionData
	if err := json.Unmarshal(env.Data, &baran); err != nil {
		t.Fatalf("decode join data: %v", err)
	}

	// baran sends a text message.
	env = postJSON(t, server, "/api/room/message", baran.Token, map[string]any{
		"type": "text",
		"text": "Geliyorum",
	})
	if env.Code != 0 {
		t.Fatalf("send failed: %d %s", env.Code, env.Message)
	}
	var sent struct {
		Message chat.Message `json:"message"`
	}
	if err := json.Unmarshal(env.Data, &sent); err != nil {
		t.Fatalf("decode send data: %v", err)
	}
	if sent.Message.Sender != "baran" || sent.Message.Text != "Geliyorum" {
		t.Fatalf("unexpected stored message %+v", sent.Message)
	}

	// ayse polls the snapshot and sees the full history.
	env = getJSON(t, server, "/api/room/", ayse.Token)
	if env.Code != 0 {
		t.Fatalf("snapshot failed: %d %s", env.Code, env.Message)
	}
	var snap struct {
		Room chat.Room `json:"room"`
	}
	if err := json.Unmarshal(env.Data, &snap); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if len(snap.Room.Users) != 2 {
		t.Fatalf("expected two users, got %v", snap.Room.Users)
	}
	if got := len(snap.Room.Messages); got != 3 {
		t.Fatalf("expected 3 messages (created, joined, text), got %d", got)
	}

	// baran translates ayse's message into his session language.
	env = postJSON(t, server, "/api/room/translate", baran.Token, map[string]any{
		"messageId": sent.Message.ID,
	})
	if env.Code != 0 {
		t.Fatalf("translate failed: %d %s", env.Code, env.Message)
	}
	var translated struct {
		MessageID  string `json:"messageId"`
		Lang       string `json:"lang"`
		Translated string `json:"translated"`
	}
	if err := json.Unmarshal(env.Data, &translated); err != nil {
		t.Fatalf("decode translate data: %v", err)
	}
	if translated.Lang != "de" || translated.Translated != "translated text" {
		t.Fatalf("unexpected translation %+v", translated)
	}

	// baran exits; exiting twice stays successful.
	for i := 0; i < 2; i++ {
		env = postJSON(t, server, "/api/room/exit", baran.Token, map[string]any{})
		if env.Code != 0 {
			t.Fatalf("exit %d failed: %d %s", i, env.Code, env.Message)
		}
	}

	env = getJSON(t, server, "/api/room/", ayse.Token)
	if err := json.Unmarshal(env.Data, &snap); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if len(snap.Room.Users) != 1 || snap.Room.Users[0] != "ayse" {
		t.Fatalf("expected ayse alone after exit, got %v", snap.Room.Users)
	}
	last := snap.Room.Messages[len(snap.Room.Messages)-1]
	if last.Text != "baran left." {
		t.Fatalf("expected single leave notice, got %q", last.Text)
	}
}

func TestJoinErrorsAreLocalized(t *testing.T) {
	server := newTestServer(t)

	env := postJSON(t, server, "/api/room/join", "", map[string]any{
		"roomName": "yok",
		"username": "baran",
		"lang":     "de",
	})
	if env.Code != errs.ErrRoomNotFound {
		t.Fatalf("expected room-not-found code, got %d", env.Code)
	}
	if env.Message != "Raum nicht gefunden." {
		t.Fatalf("expected localized message, got %q", env.Message)
	}
}

func TestRoomEndpointsRequireSession(t *testing.T) {
	server := newTestServer(t)

	env := getJSON(t, server, "/api/room/", "")
	if env.Code != errs.ErrUnauthorized {
		t.Fatalf("expected unauthorized, got %d %s", env.Code, env.Message)
	}

	env = postJSON(t, server, "/api/room/message", "", map[string]any{
		"type": "text",
		"text": "merhaba",
	})
	if env.Code != errs.ErrUnauthorized {
		t.Fatalf("expected unauthorized, got %d %s", env.Code, env.Message)
	}
}

func TestCreateRoomRateLimited(t *testing.T) {
	server := newTestServer(t)

	var last envelope
	for i := 0; i < 3; i++ {
		last = postJSON(t, server, "/api/room/create", "", map[string]any{
			"roomName": "oda-" + string(rune('a'+i)),
			"username": "ayse",
		})
	}

	if last.Code != errs.ErrRateLimitExceeded {
		t.Fatalf("expected rate limit on third create, got %d %s", last.Code, last.Message)
	}
}

func TestLanguageEndpoints(t *testing.T) {
	server := newTestServer(t)

	env := getJSON(t, server, "/api/lang", "")
	var list struct {
		Languages []json.RawMessage `json:"languages"`
	}
	if err := json.Unmarshal(env.Data, &list); err != nil {
		t.Fatalf("decode language list: %v", err)
	}
	if len(list.Languages) != 8 {
		t.Fatalf("expected 8 languages, got %d", len(list.Languages))
	}

	env = getJSON(t, server, "/api/lang/xx", "")
	var single struct {
		Language struct {
			Code string `json:"code"`
		} `json:"language"`
	}
	if err := json.Unmarshal(env.Data, &single); err != nil {
		t.Fatalf("decode language: %v", err)
	}
	if single.Language.Code != "tr" {
		t.Fatalf("expected unknown code to fall back to tr, got %q", single.Language.Code)
	}
}

func TestHealthEndpoint(t *testing.T) {
	server := newTestServer(t)

	res, err := http.Get(server.URL + "/health")
	if err != nil {
		t.Fatalf("health request: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
}
