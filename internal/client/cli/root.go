package cli

import (
	"context"
	"fmt"
	"log"
)

func (a *App) getStatus() string {
	u, ok := a.currentUser()
	if !ok {
		return ""
	}
	return fmt.Sprintf("(%s %s) ", u.Email, u.Role)
}

// Root checks the server is reachable and runs the REPL on the app's input.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to the Store Rating CLI (type 'help' for commands)")

	if err := a.client.Ping(ctx); err != nil {
		log.Printf("Server %s unavailable: %s", a.config.ServerEndpointAddr, err.Error())
	}

	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}
