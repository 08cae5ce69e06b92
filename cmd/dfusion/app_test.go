package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const tokensBody = `{"data": {"tokens": [
	{"id": "1", "address": "0x6b175474e89094c44da98b954eedeac495271d0f", "decimals": 18,
	 "name": "Dai Stablecoin", "symbol": "DAI", "createEpoch": "1582831200",
	 "txHash": "0x5e7bd4a2a4c1d4d6c9b4a3f2e1d0c9b8a7f6e5d4c3b2a1f0e9d8c7b6a5f4e3d2"}
]}}`

// newSubgraph serves body and records the last query received.
func newSubgraph(t *testing.T, body string) (*httptest.Server, *string) {
	t.Helper()
	var last string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		last = string(raw)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server, &last
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app := newApp(&stdout, &stderr)
	err := app.Run(append([]string{"dfusion"}, args...))
	return stdout.String(), stderr.String(), err
}

func TestTokensCSV(t *testing.T) {
	server, last := newSubgraph(t, tokensBody)

	out, _, err := run(t, "--endpoint", server.URL, "tokens", "--format", "csv", "--symbol", "DAI")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), out)
	}
	if lines[0] != "ID,Address,Symbol,Name,Decimals,Registered,Transaction" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "1,0x6B175474E89094C44Da98b954EedeAC495271d0F,DAI,Dai Stablecoin,18,2020-02-27T19:20:00Z,") {
		t.Errorf("row = %q", lines[1])
	}
	if !strings.Contains(*last, `orderBy: symbol, orderDirection: asc`) {
		t.Errorf("query should use token defaults: %s", *last)
	}
	if !strings.Contains(*last, `first: 100`) {
		t.Errorf("query should request 100 tokens: %s", *last)
	}
}

func TestTokensPretty(t *testing.T) {
	server, _ := newSubgraph(t, tokensBody)

	out, _, err := run(t, "--endpoint", server.URL, "tokens")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `\__,_\_|`) {
		t.Error("pretty output should start with the banner")
	}
	if !strings.Contains(out, "  Registered: 27/02/20 19:20:00\n") {
		t.Errorf("missing registration date in:\n%s", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("output to a non-terminal should not be coloured")
	}
}

func TestVerbosePrintsQuery(t *testing.T) {
	server, _ := newSubgraph(t, `{"data": {"prices": []}}`)

	out, errOut, err := run(t, "--endpoint", server.URL, "prices", "--format", "csv", "-v", "--count", "5", "--asc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(errOut, "GraphQl query:") || !strings.Contains(errOut, "API: "+server.URL) {
		t.Errorf("stderr missing query header:\n%s", errOut)
	}
	if !strings.Contains(errOut, "prices (first: 5, skip: 0, orderBy: batchId, orderDirection: asc)") {
		t.Errorf("stderr missing query:\n%s", errOut)
	}
	if strings.Contains(out, "GraphQl") {
		t.Error("debug output leaked to stdout")
	}
}

func TestCommandErrors(t *testing.T) {
	server, _ := newSubgraph(t, `{"data": {}}`)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown format", []string{"--endpoint", server.URL, "tokens", "--format", "xml"}, `"xml" is not supported`},
		{"both directions", []string{"--endpoint", server.URL, "trades", "--asc", "--desc"}, "mutually exclusive"},
		{"both traded flags", []string{"--endpoint", server.URL, "orders", "--traded", "--not-traded"}, "mutually exclusive"},
		{"bad trader", []string{"--endpoint", server.URL, "orders", "--trader", "bob"}, "not an ethereum address"},
		{"bad endpoint", []string{"--endpoint", "not a url", "prices"}, "api.url"},
		{"missing explicit config", []string{"--config", "does-not-exist.yaml", "prices"}, "read config file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.want)
			}
		})
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, err := run(t, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "dev (unknown)") {
		t.Errorf("version output = %q", out)
	}
}
