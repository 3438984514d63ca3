package main

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(requestsCmd)
	rootCmd.AddCommand(teamsCmd)
	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(standingsCmd)
	rootCmd.AddCommand(projectionCmd)
	rootCmd.AddCommand(pairCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(archiveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List the league players and their standings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/league/players")
	},
}

var requestsCmd = &cobra.Command{
	Use:   "requests",
	Short: "List pending league approval requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/league/requests")
	},
}

var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "List the tournament teams",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/tournament/teams")
	},
}

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "List the tournament schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/tournament/matches")
	},
}

var standingsCmd = &cobra.Command{
	Use:   "standings",
	Short: "Show the current tournament standings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/tournament/standings")
	},
}

var projectionCmd = &cobra.Command{
	Use:   "projection",
	Short: "Show the projected knockout bracket",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/tournament/projection")
	},
}

var pairCmd = &cobra.Command{
	Use:   "pair",
	Short: "Pair the league players into doubles teams",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/tournament/pair", "")
	},
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule [round-robin|knockout|hybrid]",
	Short: "Generate a tournament schedule",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body := fmt.Sprintf(`{"format":%q}`, args[0])
		return performPostRequest("/tournament/schedule", body)
	},
}

var recordCmd = &cobra.Command{
	Use:   "record [match-id] [score-a] [score-b]",
	Short: "Record a match result",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		body := fmt.Sprintf(`{"score_a":%s,"score_b":%s}`, args[1], args[2])
		return performPostRequest("/tournament/matches/"+args[0]+"/result", body)
	},
}

var archiveCmd = &cobra.Command{
	Use:   "archive [name]",
	Short: "Archive the current tournament into history",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body := "{}"
		if len(args) == 1 {
			body = fmt.Sprintf(`{"name":%q}`, args[0])
		}
		return performPostRequest("/tournament/archive", body)
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List archived tournament snapshots",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/history")
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Get lifetime application counters",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/stats")
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func performPostRequest(endpoint, body string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	req, err := http.NewRequest(http.MethodPost, url, strings.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if adminPin != "" {
		req.Header.Set("X-Admin-Pin", adminPin)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
