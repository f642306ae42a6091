package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestBodyUnmarshalString(t *testing.T) {
	var b Body
	if err := json.Unmarshal([]byte(`"hello"`), &b); err != nil {
		t.Fatalf("unmarshal string: %v", err)
	}
	if b.IsList || b.Text != "hello" {
		t.Errorf("body = %+v", b)
	}

	out, err := json.Marshal(b)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `"hello"` {
		t.Errorf("marshal = %s", out)
	}
}

func TestBodyUnmarshalList(t *testing.T) {
	var b Body
	if err := json.Unmarshal([]byte(`["one","two"]`), &b); err != nil {
		t.Fatalf("unmarshal list: %v", err)
	}
	if !b.IsList || len(b.List) != 2 {
		t.Errorf("body = %+v", b)
	}

	out, err := json.Marshal(b)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `["one","two"]` {
		t.Errorf("marshal = %s", out)
	}
}

func TestBodyUnmarshalRejectsOtherShapes(t *testing.T) {
	for _, in := range []string{`42`, `{"x":1}`, `[1,2]`} {
		var b Body
		if err := json.Unmarshal([]byte(in), &b); err == nil {
			t.Errorf("unmarshal %s succeeded, want error", in)
		}
	}
}

func TestJSONFieldNamesAreCamelCase(t *testing.T) {
	now := time.Now()
	for name, v := range map[string]any{
		"user":    User{ID: "u1", Username: "alice", PasswordHash: "x", CreatedAt: now},
		"content": Content{ID: "c1", Body: TextBody("b"), UserID: "u1", CreatedAt: now, UpdatedAt: now},
		"share":   ShareLink{Hash: "h", UserID: "u1", CreatedAt: now},
	} {
		out, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("%s marshal: %v", name, err)
		}
		if strings.Contains(string(out), "_") {
			t.Errorf("%s payload has snake_case field: %s", name, out)
		}
	}

	out, _ := json.Marshal(User{PasswordHash: "secret"})
	if strings.Contains(string(out), "secret") {
		t.Errorf("password hash leaked into payload: %s", out)
	}
}

func TestBodyEmpty(t *testing.T) {
	if !TextBody("").Empty() {
		t.Error("empty string body should be empty")
	}
	if !ListBody().Empty() {
		t.Error("empty list body should be empty")
	}
	if TextBody("x").Empty() || ListBody("x").Empty() {
		t.Error("non-empty bodies reported empty")
	}
}
