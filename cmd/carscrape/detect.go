package main

import (
	"encoding/json"
	"fmt"
	"os"

	"carscrape"
)

// Run executes the detect command.
func (c *DetectCmd) Run(deps *Dependencies) error {
	content, err := os.ReadFile(c.File)
	if err != nil {
		return err
	}

	pageURL := c.URL
	if pageURL == "" {
		pageURL = "file://" + c.File
	}

	det, err := deps.Detector.Detect(string(content), pageURL)
	if err != nil {
		if carscrape.ErrorCode(err) == carscrape.ENOTFOUND {
			fmt.Fprintf(deps.Stdout, "%s: unclassified\n", c.File)
			return nil
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s: %s (%s)\n", c.File, det.Template.Name(), det.Template.Role())
	if det.Record != nil {
		fields, err := json.MarshalIndent(det.Record.Fields, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "source=%s confidence=%.2f fields=%d\n%s\n",
			det.Record.Source, det.Record.Confidence, det.Record.FieldCount(), fields)
	}
	return nil
}
