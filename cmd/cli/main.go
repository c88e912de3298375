// Command cli optimizes a prompt from the command line and prints the
// result, useful for trying frameworks without running the API.
//
// Usage:
//
//	cli [-framework id] "your prompt here"
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	capp "cruxen/app"
	"cruxen/domain/framework"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7C3AED")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#06B6D4"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	promptStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#6B7280")).
			Padding(0, 1)
)

func main() {
	frameworkID := flag.String("framework", "", "force a specific framework id instead of detecting")
	listFrameworks := flag.Bool("list", false, "list available frameworks and exit")
	flag.Parse()

	optimizer, err := capp.NewOptimizer(framework.Builtin())
	if err != nil {
		log.Fatalf("optimizer: %v", err)
	}

	if *listFrameworks {
		for _, f := range optimizer.Catalog().All() {
			fmt.Printf("%s  %s\n", labelStyle.Render(fmt.Sprintf("%-10s", f.ID)), f.Description)
		}
		return
	}

	text := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if text == "" {
		fmt.Fprintln(os.Stderr, "usage: cli [-framework id] \"your prompt\"")
		os.Exit(2)
	}

	result, err := optimizer.Process(text, *frameworkID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(titleStyle.Render("CruxEn Prompt Optimizer"))
	fmt.Printf("%s %s (%s)\n", labelStyle.Render("Framework:"), result.Framework.Name, result.Framework.ID)
	fmt.Printf("%s %.2f\n", labelStyle.Render("Confidence:"), result.Confidence)
	fmt.Printf("%s %s\n", labelStyle.Render("Reasoning:"), result.Reasoning)

	m := result.QualityMetrics
	fmt.Printf("%s original=%.2f optimized=%.2f improvement=%+.2f weighted=%.2f\n",
		labelStyle.Render("Quality:"), m.Original.Overall, m.Optimized.Overall, m.Improvement, m.OverallScore)

	fmt.Println(mutedStyle.Render("\nOptimized prompt:"))
	fmt.Println(promptStyle.Render(result.OptimizedPrompt))
}
