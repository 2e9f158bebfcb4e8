// Package main provides the meetingmind CLI entry point. meetingmind turns
// recorded meetings into a recap email: it transcribes the recording through
// Google Cloud Speech, runs a set of analysis roles over the transcript, and
// delivers the merged recap over SMTP.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
