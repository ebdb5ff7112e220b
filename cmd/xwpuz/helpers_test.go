package main

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
)

const testPuzzleJSON = `{
	"title": "NY TIMES, THU, MAR 07, 2024",
	"author": "Jane Doe",
	"editor": "Will Shortz",
	"copyright": "2024, The New York Times",
	"notepad": null,
	"size": {"rows": 3, "cols": 3},
	"grid": ["C","A","T","O","R","E","W","E","D"],
	"clues": {
		"across": ["1. Feline", "4. Mineral source", "5. Married"],
		"down": ["1. Bovine", "2. Exist", "3. Fabric-softener target"]
	},
	"circles": null,
	"shadecircles": false
}`

// puzzleServer serves testPuzzleJSON and counts requests.
type puzzleServer struct {
	*httptest.Server
	hits  atomic.Int32
	dates chan string
}

func newPuzzleServer(t *testing.T) *puzzleServer {
	t.Helper()

	ps := &puzzleServer{dates: make(chan string, 16)}
	ps.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ps.hits.Add(1)
		select {
		case ps.dates <- r.URL.Query().Get("date"):
		default:
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, testPuzzleJSON)
	}))
	t.Cleanup(ps.Close)
	return ps
}

// writeTestConfig writes a config file pointing at serverURL and returns
// its path.
func writeTestConfig(t *testing.T, dir, serverURL string) string {
	t.Helper()

	path := filepath.Join(dir, ".xwpuz")
	content := fmt.Sprintf("apiURL: %q\noutputDir: %q\nhistory: false\n", serverURL, dir)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

// executeRoot runs the root command with args and returns stdout.
func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), err
}
