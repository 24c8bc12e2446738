package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"testing"
)

func Test_printJSON_WritesPretty(t *testing.T) {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w
	defer func() { os.Stdout = old }()

	printJSON(map[string]any{"a": 1})
	_ = w.Close()
	out, _ := io.ReadAll(r)

	var m map[string]any
	if json.Unmarshal(out, &m) != nil || m["a"] != float64(1) {
		t.Fatalf("printJSON produced invalid json: %s", string(out))
	}
	if !bytes.Contains(out, []byte("\n")) {
		t.Fatalf("printJSON should indent")
	}
}

func Test_parseCreds(t *testing.T) {
	email, password := parseCreds([]string{"-u", "a@x.com", "-p", "pw"})
	if email != "a@x.com" || password != "pw" {
		t.Fatalf("parseCreds: %q %q", email, password)
	}
}

func Test_parseID(t *testing.T) {
	if got := parseID([]string{"-id", "42"}); got != 42 {
		t.Fatalf("parseID: %d", got)
	}
}
