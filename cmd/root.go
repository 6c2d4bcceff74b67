package cmd

import (
	"fmt"
	u "net/url"
	"os"
	"time"

	"github.com/brisk-dl/brisk/internal/download"
	"github.com/brisk-dl/brisk/internal/output"
	"github.com/brisk-dl/brisk/internal/utils"
	"github.com/spf13/cobra"
)

var (
	timeout       time.Duration
	kaTimeout     time.Duration
	userAgent     string
	proxyURL      string
	proxyUsername string
	proxyPassword string
	headers       []string
	limitRate     string
	debug         bool
	urlListFile   string
)

var BriskVersion = "dev"

var rootCmd = &cobra.Command{
	Use:     "brisk [URL]",
	Short:   "Brisk measures download throughput with parallel range requests",
	Version: BriskVersion,
	Args:    cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 && urlListFile == "" {
			output.PrintError("No URL or URL list provided")
			os.Exit(1)
		}
		if urlListFile != "" && len(args) > 0 {
			output.PrintError("Cannot specify url argument and --urllist together, choose one")
			os.Exit(1)
		}
		utils.InitLogger(debug)
		if userAgent == "randomize" {
			userAgent = utils.GetRandomUserAgent()
		}
		// Check if proxy URL contains auth
		parsedProxy, err := u.Parse(proxyURL)
		if err == nil && parsedProxy.User != nil && proxyUsername == "" {
			proxyUsername = parsedProxy.User.Username()
			if password, set := parsedProxy.User.Password(); set {
				proxyPassword = password
			}
			// Remove auth from URL to send in clientConfig
			parsedProxy.User = nil
			proxyURL = parsedProxy.String()
		}
		httpClientConfig := utils.HTTPClientConfig{
			Timeout:       timeout,
			KATimeout:     kaTimeout,
			ProxyURL:      proxyURL,
			ProxyUsername: proxyUsername,
			ProxyPassword: proxyPassword,
			UserAgent:     userAgent,
			Headers:       utils.ParseHeaderArgs(headers),
		}
		rateLimit, err := utils.ParseBytes(limitRate)
		if err != nil {
			output.PrintError(fmt.Sprintf("Invalid rate limit: %v", err))
			os.Exit(1)
		}

		var entries []utils.DownloadEntry
		if len(args) > 0 {
			url := args[0]
			if _, err := u.Parse(url); err != nil {
				output.PrintError("Invalid URL format")
				os.Exit(1)
			}
			entries = []utils.DownloadEntry{{URL: url}}
		} else {
			entries, err = utils.ReadDownloadList(urlListFile)
			if err != nil {
				output.PrintError("Failed to read URL list file")
				os.Exit(1)
			}
		}

		for _, entry := range entries {
			if len(entries) > 1 {
				output.PrintInfo(fmt.Sprintf("Measuring %s", entry.URL))
			}
			summary, err := download.Run(download.Config{
				URL:              entry.URL,
				RateLimit:        rateLimit,
				HTTPClientConfig: httpClientConfig,
			})
			if err != nil {
				output.PrintError(fmt.Sprintf("Download failed: %v", err))
				os.Exit(1)
			}
			output.PrintSuccess(fmt.Sprintf(
				"Download completed: %d bytes downloaded at an average speed of %d B/s, %d KB/s, %d MB/s",
				summary.TotalBytes, summary.AverageBps, summary.AverageBps/1024, summary.AverageBps/(1024*1024)))
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&urlListFile, "urllist", "l", "", "Path to YAML file containing URLs to measure")
	rootCmd.Flags().DurationVarP(&timeout, "timeout", "t", 3*time.Minute, "Connection timeout (eg. 5s, 10m)")
	rootCmd.Flags().DurationVarP(&kaTimeout, "keep-alive-timeout", "k", 90*time.Second, "Keep-alive timeout for client (eg. 10s, 1m, 80s)")
	rootCmd.Flags().StringVarP(&userAgent, "user-agent", "a", utils.ToolUserAgent, "User agent")
	rootCmd.Flags().StringVarP(&proxyURL, "proxy", "p", "", "HTTP/HTTPS proxy URL (e.g., proxy.example.com:8080)")
	rootCmd.Flags().StringVar(&proxyUsername, "proxy-username", "", "Proxy username (if not provided in proxy URL)")
	rootCmd.Flags().StringVar(&proxyPassword, "proxy-password", "", "Proxy password (if not provided in proxy URL)")
	rootCmd.Flags().StringArrayVarP(&headers, "header", "H", []string{}, "Custom headers (like 'Authorization: Basic dXNlcjpwYXNz'); can be specified multiple times")
	rootCmd.Flags().StringVarP(&limitRate, "limit-rate", "r", "", "Per-transfer bandwidth cap (eg. 500KB, 2MB)")

	// flags without shorthand
	rootCmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")
}
