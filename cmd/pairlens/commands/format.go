package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// ═══════════════════════════════════════════════════════════
// Common Formatting Utilities
// 모든 커맨드가 동일한 출력 포맷을 사용하도록 통일
// ═══════════════════════════════════════════════════════════

const (
	doubleLine = "═══════════════════════════════════════════════════════════"
	singleLine = "───────────────────────────────────────────────────────────"
)

// printHeader prints a titled block with key/value lines
func printHeader(title string, fields [][2]string) {
	fmt.Println()
	fmt.Println(doubleLine)
	fmt.Printf("  %s\n", title)
	fmt.Println(singleLine)
	for _, f := range fields {
		fmt.Printf("  %-10s: %s\n", f[0], f[1])
	}
	fmt.Println(singleLine)
}

// printJSON writes v as indented JSON to stdout
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printWarning prints a warning message
func printWarning(message string) {
	fmt.Println()
	fmt.Printf("⚠️  %s\n", message)
	fmt.Println()
}

// printSuccess prints a success message
func printSuccess(message string) {
	fmt.Printf("✅ %s\n", message)
}

// printFailure prints a failure message
func printFailure(message string) {
	fmt.Printf("❌ %s\n", message)
}

// padRight pads s with spaces to width runes
func padRight(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
