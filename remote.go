package chipdiff

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"time"
)

// contains the http client side of a running `chipdiff serve` instance.

// diskCache implements a simple disk cache for HTTP responses
type diskCache struct {
	base http.RoundTripper
}

// cacheDir keeps cached pulls out of the way of other tools sharing the
// temp directory.
func (c *diskCache) cacheDir() string {
	return filepath.Join(os.TempDir(), "chipdiff-pull")
}

func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	// The key embeds today's date, so every cached pull expires overnight.
	key := fmt.Sprintf("%s %s %s", time.Now().Format("2006-01-02"), req.Method, req.URL.String())
	key = fmt.Sprintf("%x", sha1.Sum([]byte(key)))

	cachedResp, err := c.get(key, req)
	if err == nil { // Cache hit
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v/%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}

	if err := c.put(key, resp); err != nil {
		log.Printf("cache write err (ignored): %v\n", err)
	}
	return resp, nil
}

// get retrieves a cached response from disk
func (c *diskCache) get(key string, req *http.Request) (resp *http.Response, err error) {
	content, err := os.ReadFile(filepath.Join(c.cacheDir(), key))
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// put stores a response to disk cache
func (c *diskCache) put(key string, resp *http.Response) (err error) {
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(c.cacheDir(), 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.cacheDir(), key), content, 0644)
}

// DailyClient returns a client caching all responses on disk with a daily
// expiry. Fiscal-year rosters do not move intraday, so repeated pulls of the
// same classification are served locally.
func DailyClient() *http.Client {
	client := new(http.Client)
	client.Transport = &diskCache{http.DefaultTransport}
	return client
}

// jwget performs an HTTP GET request and unmarshals the JSON response into the provided data structure.
func jwget(client *http.Client, addr string, data any) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	_, err = io.Copy(&buf, resp.Body)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return json.Unmarshal(buf.Bytes(), data)
}

// FetchClassification retrieves the classification of 'year' from a running
// chipdiff server at 'addr' (e.g. "http://localhost:8696").
func FetchClassification(client *http.Client, addr string, year int) (*Classification, error) {
	var c Classification
	url := fmt.Sprintf("%s/api/classification/%d", addr, year)
	if err := jwget(client, url, &c); err != nil {
		return nil, fmt.Errorf("cannot fetch classification for %d: %w", year, err)
	}
	return &c, nil
}

// FetchJSON retrieves the classification of 'year' as an untyped JSON value,
// for callers that want to run a JSONPath query over it.
func FetchJSON(client *http.Client, addr string, year int) (any, error) {
	var jobj any
	url := fmt.Sprintf("%s/api/classification/%d", addr, year)
	if err := jwget(client, url, &jobj); err != nil {
		return nil, fmt.Errorf("cannot fetch classification for %d: %w", year, err)
	}
	return jobj, nil
}
