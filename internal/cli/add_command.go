package cli

import (
	"context"
	"fmt"
	"io"

	"task-tracker/internal/api"
	"task-tracker/internal/errors"
)

// AddCommand handles the add command
type AddCommand struct {
	businessAPI api.BusinessAPI
	out         io.Writer
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{businessAPI: app.businessAPI, out: app.out}
}

// Execute runs the add command
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.NewInvalidInputError("arguments", args, "usage: tasks add <name> <description>")
	}

	task, err := c.businessAPI.AddTask(ctx, args[0], args[1])
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Task added: %s\n", task.Name)
	return nil
}
