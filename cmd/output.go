package cmd

import (
	"fmt"
	"io"
	"os"
)

// ── Unified output helpers ────────────────────────────────────────────────────
// Commands use these functions for status lines so icons and indentation
// stay consistent. Rendered views go through the render sinks instead.
//
// Icon semantics:
//   ✓  success
//   ✗  error / failure          (written to stderr)
//   ⚠  warning
//   ○  skipped / not applicable
//   -  not found / missing
//   ~  neutral info / state change

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

func line(w io.Writer, icon, name, msg string) {
	if name == "" {
		fmt.Fprintf(w, "  %s  %s\n", icon, msg)
	} else {
		fmt.Fprintf(w, "  %s  [%s] %s\n", icon, name, msg)
	}
}

// printSection prints a top-level section header, e.g. "=== Stats ===".
func printSection(title string) {
	fmt.Fprintf(stdout, "\n=== %s ===\n", title)
}

// printBullet prints a grouped-section bullet, e.g. "● Domains:".
func printBullet(title string) {
	fmt.Fprintf(stdout, "\n● %s\n", title)
}

// printOK prints a success line.
//
//	name = "" → "  ✓  msg"
//	name set  → "  ✓  [name] msg"
func printOK(name, msg string) { line(stdout, "✓", name, msg) }

// printErr prints an error line to stderr.
func printErr(name, msg string) { line(stderr, "✗", name, msg) }

// printWarn prints a warning line to stderr, keeping stdout clean for
// machine-readable output.
func printWarn(name, msg string) { line(stderr, "⚠", name, msg) }

func printSkip(name, msg string) { line(stdout, "○", name, msg) }

func printMiss(name, msg string) { line(stdout, "-", name, msg) }

// printInfo prints a neutral informational / state-change line.
func printInfo(name, msg string) { line(stdout, "~", name, msg) }
