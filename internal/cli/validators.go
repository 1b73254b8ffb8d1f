package cli

import (
	"fmt"
	"strings"

	"github.com/readysetcloud/fitness-cli/pkg/models"
)

// ValidateOutputFormat checks the --output flag
func ValidateOutputFormat(format string) error {
	switch OutputFormat(format) {
	case FormatText, FormatJSON, FormatYAML:
		return nil
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// NormalizeWeekday accepts a weekday code or name in any case and returns its code
func NormalizeWeekday(day string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(day))
	for _, d := range models.Weekdays {
		if normalized == strings.ToLower(d.Code) || normalized == strings.ToLower(d.Name) {
			return d.Code, nil
		}
	}

	codes := make([]string, len(models.Weekdays))
	for i, d := range models.Weekdays {
		codes[i] = d.Code
	}
	return "", fmt.Errorf("invalid weekday: %s (must be one of: %s)", day, strings.Join(codes, ", "))
}

// ValidateTargetTime checks a target time against the slider range
func ValidateTargetTime(minutes int) error {
	if minutes < models.MinTargetTime || minutes > models.MaxTargetTime {
		return fmt.Errorf("invalid target time: %d (must be between %d and %d minutes)",
			minutes, models.MinTargetTime, models.MaxTargetTime)
	}
	return nil
}
