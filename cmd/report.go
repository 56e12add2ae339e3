package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	basia "github.com/pskeshu/basia"
)

const reportSeparator = "=================================================="

func printBanner() {
	fmt.Println(reportSeparator)
	fmt.Println("Basia VLM Test Script")
	fmt.Println(reportSeparator)
}

//	ConsoleReporter prints the human-readable progress lines as the
//	check sequence advances. This output is for people; the structured
//	rows go through the result writer.
type ConsoleReporter struct {
	ImagePath string
}

func (this *ConsoleReporter) CheckStarting(kind string) {

	switch kind {
	case "chat":
		fmt.Println("Testing connection to Ollama server...")
		fmt.Println("Running text test...")
	case "vision":
		fmt.Println("\nTesting vision capabilities...")
	}
}

func (this *ConsoleReporter) CheckDone(result *basia.CheckResult) {

	if !result.Passed() {

		switch result.Variant {
		case basia.VariantText:
			fmt.Printf("Connection failed: %v\n", result.Err)
		default:
			fmt.Printf("Vision test failed: %v\n", result.Err)
		}

		return
	}

	switch result.Variant {

	case basia.VariantText:
		fmt.Println("Connection successful!")

	case basia.VariantVision:
		fmt.Println("Vision analysis complete!")

	case basia.VariantVisionTextOnly:
		fmt.Printf("Warning: %s not found, ran text-only vision test\n", this.ImagePath)
		fmt.Println("Vision model responding (text-only)!")
	}

	fmt.Printf("Response time: %.2f seconds\n", result.Elapsed.Seconds())
	fmt.Printf("Response: %s...\n", result.Excerpt)
}

func printSummary(summary *basia.RunSummary) {

	var verdict = func(result *basia.CheckResult) string {
		if result != nil && result.Passed() {
			return "PASS"
		}
		return "FAIL"
	}

	fmt.Println("\n" + reportSeparator)
	fmt.Println("Test Results:")
	fmt.Printf("Connection: %s\n", verdict(summary.Connection))
	fmt.Printf("Vision:     %s\n", verdict(summary.Vision))

	if summary.Connection != nil && summary.Connection.Passed() &&
		summary.Vision != nil && summary.Vision.Passed() {
		fmt.Println("\nAll tests passed! VLM is ready for microscopy applications.")
	} else {
		fmt.Println("\nSome tests failed. Check Ollama setup.")
	}

	fmt.Println(reportSeparator)
}

func printConnectionHints(ctx context.Context, host string, model string) {

	fmt.Println("\nBasic connection failed. Check if Ollama is running:")
	fmt.Println("  1. Run 'ollama serve' in another terminal")
	fmt.Printf("  2. Ensure %s is installed\n", model)

	status, err := basia.ProbeHost(ctx, host, 5*time.Second)
	if err != nil || status == nil {
		return
	}

	switch {
	case status.ResolvedAddr == nil:
		fmt.Printf("  3. Host '%s' does not resolve; check the endpoint address\n", host)

	case status.Online:
		fmt.Printf("  3. Host %s answers ping; the server itself is not responding\n",
			status.ResolvedAddr)

	case !isLoopback(host):
		fmt.Printf("  3. Host '%s' does not answer ping; the machine may be down\n", host)
	}
}

func isLoopback(host string) bool {
	return host == "localhost" || strings.HasPrefix(host, "127.")
}
