package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isSignedIn() bool
	Navigate(page string)
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Logout(ctx context.Context) error
	Search(ctx context.Context, args []string) error
	SetCategory(args []string) error
	ClearSearch()
	ShowProfile(ctx context.Context) error
	Aadhaar(ctx context.Context, args []string) error
	ToggleTheme(ctx context.Context) error
}

// runREPL reads lines from the scanner, parses the first token as the
// command and dispatches to methods on a. The prompt shows the current
// status (from statusFn). The loop exits on scanner EOF or on "exit"/"quit".
//
// Errors returned by command handlers are not propagated: handlers surface
// their own notices, and the loop always returns to the prompt.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("cdetect %s >", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isSignedIn() {
				printlnFn("Available commands: home, about, pricing, team, join, search <text>, category <name>, clear, profile, aadhaar <file>, theme, logout, exit")
			} else {
				printlnFn("Available commands: home, about, pricing, team, join, login, signup, theme, exit")
			}

		case "home", "about", "pricing", "team", "join":
			a.Navigate(cmd)

		case "login":
			_ = a.Login(ctx)

		case "signup":
			_ = a.Signup(ctx)

		case "search":
			_ = a.Search(ctx, args)

		case "category":
			_ = a.SetCategory(args)

		case "clear":
			a.ClearSearch()

		case "profile":
			_ = a.ShowProfile(ctx)

		case "aadhaar":
			_ = a.Aadhaar(ctx, args)

		case "theme":
			_ = a.ToggleTheme(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
