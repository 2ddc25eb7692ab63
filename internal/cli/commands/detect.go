package commands

import (
	"github.com/spf13/cobra"

	"ngrun/internal/detection"
	"ngrun/internal/discovery"
	"ngrun/internal/ui"
)

// DetectCommand handles the detect command
type DetectCommand struct {
	detector  *detection.Detector
	formatter *ui.Formatter
}

// NewDetectCommand creates a new DetectCommand
func NewDetectCommand(detector *detection.Detector, formatter *ui.Formatter) *DetectCommand {
	return &DetectCommand{
		detector:  detector,
		formatter: formatter,
	}
}

// Execute runs the command. A line without a test declaration is reported, not failed.
func (dc *DetectCommand) Execute(cmd *cobra.Command, args []string) error {
	lineNo, err := parseLine(args[1])
	if err != nil {
		return err
	}
	line, err := discovery.ReadLine(args[0], lineNo)
	if err != nil {
		return err
	}

	match := dc.detector.Classify(line)
	dc.formatter.PrintDetection(args[0], lineNo, match.Kind, match.Identifier)
	return nil
}
