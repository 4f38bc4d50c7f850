// Package shutdown coordinates graceful shutdown of long-running commands.
//
// A Handler collects hooks and runs them once, newest first, when the
// process receives SIGINT or SIGTERM, when the waiting context ends, or
// when Shutdown is called:
//
//	h := shutdown.NewHandler(5 * time.Second)
//	h.OnShutdown(srv.Shutdown)
//	err := h.Wait(ctx)
package shutdown
