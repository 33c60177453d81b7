package main

import (
	"fmt"
	"text/tabwriter"
)

// Run executes the templates command.
func (c *TemplatesCmd) Run(deps *Dependencies) error {
	w := tabwriter.NewWriter(deps.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ORDER\tNAME\tROLE")
	for i, entry := range deps.Registry.Manifest() {
		fmt.Fprintf(w, "%d\t%s\t%s\n", i+1, entry.Name, entry.Role)
	}
	return w.Flush()
}
