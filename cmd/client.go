// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/canonical/catalog-service/internal/identity"
)

var (
	httpEndpoint string
	asUser       string
	asEmail      string
)

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Query a running catalog service over HTTP",
}

func init() {
	clientCmd.PersistentFlags().StringVar(&httpEndpoint, "endpoint", "http://localhost:8080", "HTTP server endpoint")
	clientCmd.PersistentFlags().StringVar(&asUser, "user", "", "Value for the forwarded user header")
	clientCmd.PersistentFlags().StringVar(&asEmail, "email", "", "Value for the forwarded email header")

	clientCmd.AddCommand(
		newGetCommand("platforms", "List platforms", "/api/v1/platforms"),
		newGetCommand("status-checks", "List status checks", "/api/v1/status-checks"),
		newGetCommand("status-results", "List status results", "/api/v1/status-results"),
		newGetCommand("latest-status-results", "List the latest status result per check", "/api/v1/status-results/latest"),
		newGetCommand("status-messages", "List status messages", "/api/v1/status-messages"),
		newGetCommand("work-items", "List work items", "/api/v1/work-items"),
		newGetCommand("me", "Show the resolved identity", "/api/v1/me"),
		newPostCommand("create-platform", "Create a platform from a JSON payload on stdin", "/api/v1/platforms"),
		newPostCommand("create-status-check", "Create a status check from a JSON payload on stdin", "/api/v1/status-checks"),
	)

	rootCmd.AddCommand(clientCmd)
}

func newGetCommand(use, short, path string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return doRequest(cmd, http.MethodGet, path, nil)
		},
	}
}

func newPostCommand(use, short, path string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read payload: %w", err)
			}
			return doRequest(cmd, http.MethodPost, path, bytes.NewReader(payload))
		},
	}
}

func doRequest(cmd *cobra.Command, method, path string, body io.Reader) error {
	endpoint := strings.TrimSuffix(httpEndpoint, "/")
	if !strings.HasPrefix(endpoint, "http") {
		endpoint = "http://" + endpoint
	}

	target, err := url.Parse(endpoint + path)
	if err != nil {
		return fmt.Errorf("invalid endpoint: %w", err)
	}

	req, err := http.NewRequestWithContext(cmd.Context(), method, target.String(), body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if asUser != "" {
		req.Header.Set(identity.ForwardedUserHeader, asUser)
	}
	if asEmail != "" {
		req.Header.Set(identity.ForwardedEmailHeader, asEmail)
	}

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	out, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api error (status %d): %s", resp.StatusCode, string(out))
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
