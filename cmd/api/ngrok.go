package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const (
	ngrokProbeAttempts = 10
	ngrokProbeInterval = 3 * time.Second
)

// ngrokTunnels mirrors the part of the ngrok local API /api/tunnels body we read.
type ngrokTunnels struct {
	Tunnels []struct {
		PublicURL string `json:"public_url"`
		Proto     string `json:"proto"`
	} `json:"tunnels"`
}

// detectNgrokURL polls the ngrok local API until an HTTPS tunnel shows up and
// returns its public URL. Telegram only accepts HTTPS webhook endpoints, so
// plain HTTP tunnels are skipped. Polling covers the window where the ngrok
// container is still starting up.
func detectNgrokURL(ctx context.Context, apiBase string) (string, error) {
	client := &http.Client{Timeout: 5 * time.Second}

	var lastErr error
	for attempt := 0; attempt < ngrokProbeAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(ngrokProbeInterval):
			}
		}

		url, err := queryNgrokTunnel(ctx, client, apiBase+"/api/tunnels")
		if err == nil {
			return url, nil
		}
		lastErr = err
	}

	return "", fmt.Errorf("no usable ngrok tunnel after %d attempts: %w", ngrokProbeAttempts, lastErr)
}

func queryNgrokTunnel(ctx context.Context, client *http.Client, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build ngrok API request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ngrok API not reachable: %w", err)
	}
	defer resp.Body.Close()

	var body ngrokTunnels
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode ngrok API response: %w", err)
	}

	for _, t := range body.Tunnels {
		if t.Proto == "https" {
			return t.PublicURL, nil
		}
	}

	return "", errors.New("no https tunnel active yet")
}
