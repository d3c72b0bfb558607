package api

import (
	"context"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/repository"
	"task-tracker/internal/services"
	"task-tracker/internal/validation"
)

// ExportResult describes a finished export
type ExportResult struct {
	Path   string `json:"path"`
	Format string `json:"format"`
	Count  int    `json:"count"`
}

// BusinessAPI defines the task operations offered to front-ends.
// Raw command arguments go in; parsing and validation happen here.
type BusinessAPI interface {
	// AddTask appends a new to-do task
	AddTask(ctx context.Context, name, description string) (*domain.Task, error)

	// ListTasks returns every task in creation order
	ListTasks(ctx context.Context) ([]domain.Task, error)

	// FirstTaskWithStatus returns the first task whose status matches exactly
	FirstTaskWithStatus(ctx context.Context, status string) (*services.StatusMatch, error)

	// UpdateTask overwrites name, description and status of the task with the given id.
	// An id that matches nothing is not an error.
	UpdateTask(ctx context.Context, rawID, name, description, status string) error

	// RemoveTask deletes the task with the given id and returns the parsed id.
	// A NotFound error is returned when no task had that id.
	RemoveTask(ctx context.Context, rawID string) (int64, error)

	// ExportTasks writes the collection to filename in the given format
	ExportTasks(ctx context.Context, filename, format string) (*ExportResult, error)
}

// businessAPIImpl implements the BusinessAPI interface
type businessAPIImpl struct {
	taskService   services.TaskService
	exportService services.ExportService
	taskValidator *validation.TaskValidator
}

// New creates a BusinessAPI backed by the given store
func New(store repository.Store) BusinessAPI {
	return NewBusinessAPI(services.NewTaskService(store), services.NewExportService(store))
}

// NewBusinessAPI creates a new BusinessAPI instance from its services
func NewBusinessAPI(taskService services.TaskService, exportService services.ExportService) BusinessAPI {
	return &businessAPIImpl{
		taskService:   taskService,
		exportService: exportService,
		taskValidator: validation.NewTaskValidator(services.FormatJSON, services.FormatCSV, services.FormatPDF),
	}
}

func (b *businessAPIImpl) AddTask(ctx context.Context, name, description string) (*domain.Task, error) {
	return b.taskService.AddTask(ctx, name, description)
}

func (b *businessAPIImpl) ListTasks(ctx context.Context) ([]domain.Task, error) {
	return b.taskService.ListTasks(ctx)
}

func (b *businessAPIImpl) FirstTaskWithStatus(ctx context.Context, status string) (*services.StatusMatch, error) {
	return b.taskService.FirstByStatus(ctx, status)
}

func (b *businessAPIImpl) UpdateTask(ctx context.Context, rawID, name, description, status string) error {
	id, err := b.parseID(rawID)
	if err != nil {
		return err
	}

	_, err = b.taskService.UpdateTask(ctx, id, services.TaskUpdate{
		Name:        &name,
		Description: &description,
		Status:      &status,
	})
	return err
}

func (b *businessAPIImpl) RemoveTask(ctx context.Context, rawID string) (int64, error) {
	id, err := b.parseID(rawID)
	if err != nil {
		return 0, err
	}
	return id, b.taskService.RemoveTask(ctx, id)
}

func (b *businessAPIImpl) ExportTasks(ctx context.Context, filename, format string) (*ExportResult, error) {
	if err := b.taskValidator.ValidateExport(filename, format); err != nil {
		if validation.IsValidationError(err) {
			return nil, errors.NewValidationError(err.(*validation.ValidationError).GetUserFriendlyMessage(), err)
		}
		return nil, err
	}

	count, err := b.exportService.Export(ctx, filename, format)
	if err != nil {
		return nil, err
	}

	return &ExportResult{Path: filename, Format: format, Count: count}, nil
}

// parseID rejects non-integer ids before any store access
func (b *businessAPIImpl) parseID(rawID string) (int64, error) {
	id, err := b.taskValidator.ParseTaskID(rawID)
	if err != nil {
		return 0, errors.NewInvalidInputError("id", rawID, "must be an integer")
	}
	return id, nil
}
