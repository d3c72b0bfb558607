package cli

import (
	"context"
	"fmt"
	"io"

	"task-tracker/internal/api"
	"task-tracker/internal/errors"
)

// ExportCommand handles the export command
type ExportCommand struct {
	businessAPI api.BusinessAPI
	out         io.Writer
	format      string
}

// NewExportCommand creates a new export command handler for the given format
func NewExportCommand(app *App, format string) *ExportCommand {
	return &ExportCommand{businessAPI: app.businessAPI, out: app.out, format: format}
}

// Execute runs the export command
func (c *ExportCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("arguments", args, "usage: tasks export <filename>")
	}

	result, err := c.businessAPI.ExportTasks(ctx, args[0], c.format)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Tasks exported to %s\n", result.Path)
	return nil
}
