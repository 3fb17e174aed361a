package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Help() string
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Exec(ctx context.Context, cmd string, args []string) (bool, error)
}

// runREPL reads commands from reader until EOF, "exit"/"quit" or ctx is
// cancelled.
//
//	Not logged in:
//	  - help           show available commands
//	  - signup         create an account and log in
//	  - login          authenticate
//	  - exit | quit    leave the program
//
//	Logged in:
//	  - dashboard      show the dashboard for the current role
//	  - <command>      any command of that dashboard
//	  - logout         log out
//	  - exit | quit    leave the program
//
// Handler errors are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(w, "sr %s> ", statusFn())

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			fmt.Fprintln(w)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			fmt.Fprintln(w, a.Help())

		case "signup", "register":
			if a.isLoggedIn() {
				fmt.Fprintln(w, "Already logged in, log out first")
				continue
			}
			cmdErr = a.Signup(ctx)

		case "login":
			if a.isLoggedIn() {
				fmt.Fprintln(w, "Already logged in, log out first")
				continue
			}
			cmdErr = a.Login(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "d", "dashboard":
			if !a.isLoggedIn() {
				fmt.Fprintln(w, "Please log in first")
				continue
			}
			cmdErr = a.Dashboard(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			handled, err := a.Exec(ctx, cmd, args)
			if !handled && err == nil {
				fmt.Fprintln(w, "Unknown command:", cmd)
			}
			cmdErr = err
		}

		if cmdErr != nil {
			renderError(w, cmdErr)
		}
	}
}
