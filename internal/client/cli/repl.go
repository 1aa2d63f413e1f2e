package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for REPL output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL dispatches to.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Users(ctx context.Context, args []string) error
	Refresh(ctx context.Context) error
	Filter(ctx context.Context, args []string) error
	Reset(ctx context.Context) error
	Stats(ctx context.Context) error
	SetStatus(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
}

// runREPL reads commands line by line from reader and dispatches them to a.
// The first word is the command, the rest are its arguments. The loop ends
// on EOF, on a cancelled context, or on "exit" / "quit".
//
// The prompt shows the current status (from statusFn) and accepts:
//
//	Not logged in:
//	  help, login, signup, exit | quit
//
//	Logged in:
//	  help, users | l, refresh, filter, reset, stats,
//	  status <id> <status>, delete <id>, whoami, logout, exit | quit
//
// Errors returned by command handlers are ignored here; handlers print
// their own notices.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}

		printlnFn(fmt.Sprintf("gophadmin (%s) > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn("Available commands: users (l), refresh, filter, reset, stats, status <id> <status>, delete <id>, whoami, logout, exit")
			} else {
				printlnFn("Available commands: login, signup, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "signup", "register":
			_ = a.Signup(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "l", "users", "list":
			_ = a.Users(ctx, args)

		case "refresh":
			_ = a.Refresh(ctx)

		case "filter":
			_ = a.Filter(ctx, args)

		case "reset":
			_ = a.Reset(ctx)

		case "stats":
			_ = a.Stats(ctx)

		case "status":
			_ = a.SetStatus(ctx, args)

		case "delete", "rm":
			_ = a.Delete(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
