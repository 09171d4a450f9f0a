package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cours-de-latin/realiser"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	rs, err := loadRealisers(realiser.DefaultConfig())
	if err != nil {
		t.Fatalf("loadRealisers: %v", err)
	}
	srv := httptest.NewServer(newHandler(rs, []string{"*"}))
	t.Cleanup(srv.Close)
	return srv
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode: %v", err)
	}
}

func TestRealise(t *testing.T) {
	srv := newTestServer(t)
	tests := []struct {
		body string
		want string
	}{
		{`{"document": {"subject": {"spec": "the", "head": "dog"}, "verb": "chase", "object": "John"}}`, "The dog chases John."},
		{`{"language": "fr", "document": {"subject": "Marie", "verb": "arriver", "features": {"tense": "past"}}}`, "Marie est arrivée."},
	}
	for _, tt := range tests {
		resp, err := http.Post(srv.URL+"/api/realise", "application/json", strings.NewReader(tt.body))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status %d for %s", resp.StatusCode, tt.body)
		}
		if resp.Header.Get("X-Request-Id") == "" {
			t.Error("response without X-Request-Id")
		}
		var out realiseResponse
		decode(t, resp, &out)
		if out.Text != tt.want {
			t.Errorf("text = %q, want %q", out.Text, tt.want)
		}
		if len(out.Tokens) == 0 {
			t.Error("no tokens in response")
		}
	}
}

func TestRealiseErrors(t *testing.T) {
	srv := newTestServer(t)
	tests := []struct {
		name   string
		method string
		body   string
		status int
	}{
		{"get", http.MethodGet, "", http.StatusMethodNotAllowed},
		{"not json", http.MethodPost, "subject: John", http.StatusBadRequest},
		{"no document", http.MethodPost, `{"language": "en"}`, http.StatusBadRequest},
		{"unknown language", http.MethodPost, `{"language": "no such tag!", "document": {"verb": "go"}}`, http.StatusBadRequest},
		{"bad document", http.MethodPost, `{"document": {"verbs": "go"}}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		req, _ := http.NewRequest(tt.method, srv.URL+"/api/realise", strings.NewReader(tt.body))
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != tt.status {
			t.Errorf("%s: status = %d, want %d", tt.name, resp.StatusCode, tt.status)
		}
	}
}

func TestInflect(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/api/inflect?base=go&category=verb&tense=past")
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var out inflectResponse
	decode(t, resp, &out)
	if out.Form != "went" {
		t.Errorf("form = %q, want %q", out.Form, "went")
	}
	if len(out.Cells) != 14 {
		t.Errorf("len(cells) = %d, want 14", len(out.Cells))
	}

	resp, err = http.Get(srv.URL + "/api/inflect?base=cheval&lang=fr&number=plural")
	if err != nil {
		t.Fatal(err)
	}
	decode(t, resp, &out)
	if out.Form != "chevaux" || out.Category != "noun" {
		t.Errorf("got %q (%s), want %q (noun)", out.Form, out.Category, "chevaux")
	}

	for _, q := range []string{"", "?base=go&category=np", "?base=go&tense=yesterday"} {
		resp, err := http.Get(srv.URL + "/api/inflect" + q)
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%q: status = %d, want 400", q, resp.StatusCode)
		}
	}
}

func TestLexicon(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/api/lexicon?base=go")
	if err != nil {
		t.Fatal(err)
	}
	var out lexiconResponse
	decode(t, resp, &out)
	if len(out.Entries) != 1 {
		t.Fatalf("entries = %+v, want one", out.Entries)
	}
	e := out.Entries[0]
	if e.Category != "verb" || e.Forms["form[tense=past]"] != "went" {
		t.Errorf("entry = %+v", e)
	}

	resp, err = http.Get(srv.URL + "/api/lexicon?base=zzyzx")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown word: status = %d, want 404", resp.StatusCode)
	}
}

func TestLanguages(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/api/languages")
	if err != nil {
		t.Fatal(err)
	}
	var out languagesResponse
	decode(t, resp, &out)
	if len(out.Languages) != 2 || out.Languages["fr"] == "" {
		t.Errorf("languages = %v", out.Languages)
	}
}

func TestRequestID(t *testing.T) {
	srv := newTestServer(t)
	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/languages", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	req.Header.Set("Origin", "http://example.com")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if got := resp.Header.Get("X-Request-Id"); got != "abc-123" {
		t.Errorf("X-Request-Id = %q, want %q", got, "abc-123")
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, "*")
	}
}
