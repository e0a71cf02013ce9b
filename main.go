// readmestats - GitHub README stats card previewer
// A TUI for composing stats cards and copying their Markdown.
package main

import "github.com/lazyvibe/readmestats/internal/cli"

const appVersion = "0.1.0"

func main() {
	cli.Execute(appVersion)
}
