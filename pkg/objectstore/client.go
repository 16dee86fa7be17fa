package objectstore

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client talks to the object-storage gateway over HTTP. Uploads land
// under a bucket and are addressable by a public URL afterwards.
type Client struct {
	BaseURL    string
	Username   string
	Password   string
	Bucket     string
	HTTPClient *http.Client
}

type uploadResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		Path      string `json:"path"`
		PublicURL string `json:"public_url"`
	} `json:"data"`
}

func NewClient(baseURL, username, password, bucket string) *Client {
	return &Client{
		BaseURL:  baseURL,
		Username: username,
		Password: password,
		Bucket:   bucket,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) authHeader() string {
	auth := base64.StdEncoding.EncodeToString([]byte(c.Username + ":" + c.Password))
	return "Basic " + auth
}

// Upload stores data at path inside the bucket and returns its public URL.
func (c *Client) Upload(path string, contentType string, data []byte) (string, error) {
	reqURL := fmt.Sprintf("%s/buckets/%s/objects/%s", c.BaseURL, c.Bucket, url.PathEscape(path))

	req, err := http.NewRequest("PUT", reqURL, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", c.authHeader())

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read upload response: %w", err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("upload failed with status %d: %s", resp.StatusCode, string(body))
	}

	var uploadResp uploadResponse
	if err := json.Unmarshal(body, &uploadResp); err != nil {
		return "", fmt.Errorf("failed to parse upload response: %w", err)
	}
	if uploadResp.Data.PublicURL != "" {
		return uploadResp.Data.PublicURL, nil
	}
	return c.PublicURL(path), nil
}

// PublicURL returns the stable download URL of a stored object.
func (c *Client) PublicURL(path string) string {
	return fmt.Sprintf("%s/public/%s/%s", c.BaseURL, c.Bucket, url.PathEscape(path))
}

// Delete removes a stored object by path.
func (c *Client) Delete(path string) error {
	reqURL := fmt.Sprintf("%s/buckets/%s/objects/%s", c.BaseURL, c.Bucket, url.PathEscape(path))

	req, err := http.NewRequest("DELETE", reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create delete request: %w", err)
	}
	req.Header.Set("Authorization", c.authHeader())

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("delete failed with status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// PathFromURL recovers the bucket-relative object path from a public
// URL previously returned by Upload.
func (c *Client) PathFromURL(publicURL string) (string, error) {
	prefix := fmt.Sprintf("%s/public/%s/", c.BaseURL, c.Bucket)
	if len(publicURL) <= len(prefix) || publicURL[:len(prefix)] != prefix {
		return "", fmt.Errorf("url %q does not belong to bucket %s", publicURL, c.Bucket)
	}
	path, err := url.PathUnescape(publicURL[len(prefix):])
	if err != nil {
		return "", fmt.Errorf("failed to decode object path: %w", err)
	}
	return path, nil
}
