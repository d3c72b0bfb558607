package cli

import (
	"context"
	"fmt"
	"io"

	"task-tracker/internal/api"
	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
)

const noTasksMessage = "No tasks found."

// ListCommand handles the list command
type ListCommand struct {
	businessAPI api.BusinessAPI
	out         io.Writer
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{businessAPI: app.businessAPI, out: app.out}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return errors.NewInvalidInputError("arguments", args, "usage: tasks list")
	}

	tasks, err := c.businessAPI.ListTasks(ctx)
	if err != nil {
		return err
	}

	if len(tasks) == 0 {
		fmt.Fprintln(c.out, noTasksMessage)
		return nil
	}

	fmt.Fprintln(c.out, "Tasks:")
	for _, task := range tasks {
		fmt.Fprintln(c.out, formatTaskLine(task))
	}
	return nil
}

func formatTaskLine(task domain.Task) string {
	return fmt.Sprintf("[%d] Name:%s Description:%s Status:%s", task.ID, task.Name, task.Description, task.Status)
}

// ListStatusCommand handles the list-status command
type ListStatusCommand struct {
	businessAPI api.BusinessAPI
	out         io.Writer
}

// NewListStatusCommand creates a new list-status command handler
func NewListStatusCommand(app *App) *ListStatusCommand {
	return &ListStatusCommand{businessAPI: app.businessAPI, out: app.out}
}

// Execute prints the first task carrying the requested status
func (c *ListStatusCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("arguments", args, "usage: tasks list-status <status>")
	}

	match, err := c.businessAPI.FirstTaskWithStatus(ctx, args[0])
	if err != nil {
		return err
	}

	if match.CollectionEmpty {
		fmt.Fprintln(c.out, noTasksMessage)
		return nil
	}
	if match.Task != nil {
		task := match.Task
		fmt.Fprintf(c.out, "[%d] %s %s %s\n", task.ID, task.Name, task.Description, task.Status)
	}
	return nil
}
