package cli

import (
	"context"

	"task-tracker/internal/api"
	"task-tracker/internal/errors"
)

// UpdateCommand handles the update command
type UpdateCommand struct {
	businessAPI api.BusinessAPI
}

// NewUpdateCommand creates a new update command handler
func NewUpdateCommand(app *App) *UpdateCommand {
	return &UpdateCommand{businessAPI: app.businessAPI}
}

// Execute runs the update command. It prints nothing on success.
func (c *UpdateCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 4 {
		return errors.NewInvalidInputError("arguments", args, "usage: tasks update <id> <name> <description> <status>")
	}

	return c.businessAPI.UpdateTask(ctx, args[0], args[1], args[2], args[3])
}
