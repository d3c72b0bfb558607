package cli

import (
	"context"
	"fmt"
	"io"

	"task-tracker/internal/api"
	"task-tracker/internal/errors"
)

// RemoveCommand handles the remove command
type RemoveCommand struct {
	businessAPI  api.BusinessAPI
	out          io.Writer
	errorHandler *ErrorHandler
}

// NewRemoveCommand creates a new remove command handler
func NewRemoveCommand(app *App) *RemoveCommand {
	return &RemoveCommand{businessAPI: app.businessAPI, out: app.out, errorHandler: app.errorHandler}
}

// Execute runs the remove command
func (c *RemoveCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("arguments", args, "usage: tasks remove <id>")
	}

	id, err := c.businessAPI.RemoveTask(ctx, args[0])
	if err != nil {
		if c.errorHandler.IsNotFoundError(err) {
			fmt.Fprintf(c.out, "No task found with ID: %d\n", id)
			return nil
		}
		return err
	}

	fmt.Fprintf(c.out, "Task %d removed successfully.\n", id)
	return nil
}
