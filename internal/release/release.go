// Package release resolves and downloads Phantom Tunnel release artifacts
// from GitHub.
package release

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

const (
	defaultAPIBase      = "https://api.github.com"
	defaultDownloadBase = "https://github.com"
)

type Release struct {
	TagName string  `json:"tag_name"`
	Assets  []Asset `json:"assets"`
}

type Asset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
}

// AssetForArch maps a GOARCH value to its release asset name. Anything but
// the two published architectures is an error.
func AssetForArch(goarch string) (string, error) {
	switch goarch {
	case "amd64":
		return "phantom-linux-amd64", nil
	case "arm64":
		return "phantom-linux-arm64", nil
	default:
		return "", fmt.Errorf("unsupported architecture %q: releases exist for amd64 and arm64 only", goarch)
	}
}

type Client struct {
	Repo string

	// APIBase and DownloadBase exist so tests can point the client at a
	// local server.
	APIBase      string
	DownloadBase string
	HTTP         *http.Client
}

func NewClient(repo string) *Client {
	return &Client{
		Repo:         repo,
		APIBase:      defaultAPIBase,
		DownloadBase: defaultDownloadBase,
		HTTP:         http.DefaultClient,
	}
}

// LatestTag queries the releases API for the newest version tag.
func (c *Client) LatestTag() (string, error) {
	url := fmt.Sprintf("%s/repos/%s/releases/latest", c.APIBase, c.Repo)
	resp, err := c.HTTP.Get(url)
	if err != nil {
		return "", fmt.Errorf("querying latest release: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("querying latest release: HTTP %d", resp.StatusCode)
	}

	var rel Release
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return "", fmt.Errorf("decoding release listing: %w", err)
	}
	if rel.TagName == "" {
		return "", fmt.Errorf("release listing for %s has no tag", c.Repo)
	}
	return rel.TagName, nil
}

// Fetch downloads the named asset of the tagged release into a fresh
// temporary directory. cleanup removes that directory and is safe to call
// on every exit path; on error the directory is already gone.
func (c *Client) Fetch(tag, asset string) (path string, cleanup func(), err error) {
	tmpDir, err := os.MkdirTemp("", "phantomctl-*")
	if err != nil {
		return "", nil, fmt.Errorf("creating temp directory: %w", err)
	}
	cleanup = func() { os.RemoveAll(tmpDir) }

	url := fmt.Sprintf("%s/%s/releases/download/%s/%s", c.DownloadBase, c.Repo, tag, asset)
	dest := filepath.Join(tmpDir, asset)
	if err := c.download(url, dest); err != nil {
		cleanup()
		return "", nil, err
	}

	if _, err := os.Stat(dest); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("downloaded asset missing: %w", err)
	}
	return dest, cleanup, nil
}

func (c *Client) download(url, dest string) error {
	resp, err := c.HTTP.Get(url)
	if err != nil {
		return fmt.Errorf("downloading %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("downloading %s: HTTP %d", url, resp.StatusCode)
	}

	f, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
