// Package slog provides logging decorators for carscrape interfaces.
package slog

import (
	"log/slog"
	"time"

	"carscrape"
)

// Ensure LoggingDetector implements carscrape.Detector.
var _ carscrape.Detector = (*LoggingDetector)(nil)

// LoggingDetector wraps a Detector with classification logging.
type LoggingDetector struct {
	next   carscrape.Detector
	logger *slog.Logger
}

// NewLoggingDetector creates a new LoggingDetector.
func NewLoggingDetector(next carscrape.Detector, logger *slog.Logger) *LoggingDetector {
	return &LoggingDetector{next: next, logger: logger}
}

// Detect classifies the page, logs the outcome and returns it.
func (d *LoggingDetector) Detect(html, pageURL string) (*carscrape.Detection, error) {
	begin := time.Now()
	det, err := d.next.Detect(html, pageURL)
	if err != nil {
		if carscrape.ErrorCode(err) == carscrape.ENOTFOUND {
			d.logger.Info("template detection",
				"url", pageURL,
				"template", "(unclassified)",
				"duration", time.Since(begin),
			)
		} else {
			d.logger.Error("template detection failed",
				"url", pageURL,
				"err", err,
				"duration", time.Since(begin),
			)
		}
		return nil, err
	}

	fields := 0
	if det.Record != nil {
		fields = det.Record.FieldCount()
	}
	d.logger.Info("template detection",
		"url", pageURL,
		"template", det.Template.Name(),
		"role", det.Template.Role(),
		"fields", fields,
		"duration", time.Since(begin),
	)
	return det, nil
}
