package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	logger "ghsync/internal/log"
)

func githubGet[T any](ctx context.Context, token string, url string) (T, error) {
	var emptyResult T
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return emptyResult, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return emptyResult, err
	}
	defer func(body io.ReadCloser) {
		err := body.Close()
		if err != nil {
			logger.Log.Errorf("Failed to close response body: %v", err)
		}
	}(resp.Body)

	if resp.StatusCode == http.StatusUnauthorized {
		return emptyResult, ErrAuthentication
	}
	if resp.StatusCode != http.StatusOK {
		return emptyResult, fmt.Errorf("GitHub API request on %s failed with status: %s", url, resp.Status)
	}

	var decodedResult T
	if err := json.NewDecoder(resp.Body).Decode(&decodedResult); err != nil {
		return emptyResult, err
	}

	return decodedResult, nil
}
