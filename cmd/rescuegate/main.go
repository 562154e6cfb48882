// Command rescuegate runs the RescueGroups MCP gateway: a stdio or
// HTTP+SSE JSON-RPC server by default, or one-shot CLI subcommands for
// scripting individual pet-search operations without a client.
package main

import "github.com/rescuegate/rescuegate/cmd/rescuegate/cmd"

func main() {
	cmd.Execute()
}
