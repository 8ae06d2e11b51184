package release

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
)

func TestAssetForArch(t *testing.T) {
	tests := []struct {
		goarch  string
		want    string
		wantErr bool
	}{
		{goarch: "amd64", want: "phantom-linux-amd64"},
		{goarch: "arm64", want: "phantom-linux-arm64"},
		{goarch: "386", wantErr: true},
		{goarch: "mips", wantErr: true},
		{goarch: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := AssetForArch(tt.goarch)
		if (err != nil) != tt.wantErr {
			t.Errorf("AssetForArch(%q) error = %v, wantErr %v", tt.goarch, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("AssetForArch(%q) = %q, want %q", tt.goarch, got, tt.want)
		}
	}
}

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient("example/Phantom-Tunnel")
	c.APIBase = srv.URL
	c.DownloadBase = srv.URL
	return c
}

func TestLatestTag(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/example/Phantom-Tunnel/releases/latest" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		fmt.Fprint(w, `{"tag_name":"v2.2.0","assets":[{"name":"phantom-linux-amd64"}]}`)
	}))

	tag, err := c.LatestTag()
	if err != nil {
		t.Fatalf("LatestTag: %v", err)
	}
	if tag != "v2.2.0" {
		t.Fatalf("tag = %q, want v2.2.0", tag)
	}
}

func TestLatestTagEmpty(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"tag_name":"","assets":[]}`)
	}))

	if _, err := c.LatestTag(); err == nil {
		t.Fatal("expected error for empty tag")
	}
}

func TestLatestTagHTTPError(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))

	if _, err := c.LatestTag(); err == nil {
		t.Fatal("expected error for HTTP 404")
	}
}

func TestFetchDownloadsAsset(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())

	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		want := "/example/Phantom-Tunnel/releases/download/v2.2.0/phantom-linux-amd64"
		if r.URL.Path != want {
			t.Errorf("path = %s, want %s", r.URL.Path, want)
		}
		w.Write([]byte("binary-bytes"))
	}))

	path, cleanup, err := c.Fetch("v2.2.0", "phantom-linux-amd64")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading downloaded asset: %v", err)
	}
	if string(data) != "binary-bytes" {
		t.Fatalf("asset content = %q", data)
	}

	cleanup()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("cleanup left the temp directory behind")
	}
}

func TestFetchFailureCleansTempDir(t *testing.T) {
	tmpRoot := t.TempDir()
	t.Setenv("TMPDIR", tmpRoot)

	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))

	if _, _, err := c.Fetch("v2.2.0", "phantom-linux-amd64"); err == nil {
		t.Fatal("expected download failure")
	}

	entries, err := os.ReadDir(tmpRoot)
	if err != nil {
		t.Fatalf("reading temp root: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("temp directory not cleaned up: %v", entries)
	}
}
