// Package main provides a standalone health check command for AfyaPlate.
// It probes the API health endpoint and exits non-zero on failure, suitable
// for Docker HEALTHCHECK directives and monitoring scripts.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"
)

const (
	exitCodeSuccess = 0
	exitCodeFailure = 1
	exitCodeError   = 2
)

func main() {
	var (
		url     = flag.String("url", "http://localhost:8080/health", "Health check endpoint URL")
		timeout = flag.Duration("timeout", 10*time.Second, "Request timeout")
		retries = flag.Int("retries", 1, "Number of attempts before giving up")
		delay   = flag.Duration("retry-delay", 2*time.Second, "Delay between attempts")
		verbose = flag.Bool("verbose", false, "Print the health response body")
	)
	flag.Parse()

	os.Exit(run(*url, *timeout, *retries, *delay, *verbose))
}

func run(url string, timeout time.Duration, retries int, delay time.Duration, verbose bool) int {
	client := &http.Client{Timeout: timeout}

	var lastErr error
	for attempt := 0; attempt < retries; attempt++ {
		if attempt > 0 {
			time.Sleep(delay)
		}

		code, err := probe(client, url, timeout, verbose)
		if err == nil {
			return code
		}
		lastErr = err
	}

	fmt.Fprintf(os.Stderr, "health check error: %v\n", lastErr)
	return exitCodeError
}

func probe(client *http.Client, url string, timeout time.Duration, verbose bool) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return exitCodeError, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return exitCodeError, err
	}
	defer resp.Body.Close()

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Status    string `json:"status"`
			Version   string `json:"version"`
			Timestamp int64  `json:"timestamp"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return exitCodeError, fmt.Errorf("undecodable health response: %w", err)
	}

	if verbose {
		fmt.Printf("status=%s version=%s timestamp=%d http=%d\n",
			body.Data.Status, body.Data.Version, body.Data.Timestamp, resp.StatusCode)
	}

	if resp.StatusCode != http.StatusOK || !body.Success || body.Data.Status != "healthy" {
		fmt.Fprintf(os.Stderr, "service unhealthy: http %d status %q\n", resp.StatusCode, body.Data.Status)
		return exitCodeFailure, nil
	}

	return exitCodeSuccess, nil
}
