package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/logging"
	"task-tracker/internal/repository"
)

// Export formats
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatPDF  = "pdf"
)

// exportFileMode matches the permissions of the JSON store file
const exportFileMode = 0644

var csvHeader = []string{"id", "name", "description", "status", "createdAt", "updatedAt"}

// exportServiceImpl implements the ExportService interface
type exportServiceImpl struct {
	store repository.Store
}

// NewExportService creates a new ExportService instance
func NewExportService(store repository.Store) ExportService {
	return &exportServiceImpl{store: store}
}

// Export writes the loaded collection to path and returns the task count
func (s *exportServiceImpl) Export(ctx context.Context, path string, format string) (int, error) {
	tasks, err := s.store.Load(ctx)
	if err != nil {
		return 0, err
	}

	switch format {
	case FormatJSON:
		err = writeJSON(path, tasks)
	case FormatCSV:
		err = writeCSV(path, tasks)
	case FormatPDF:
		err = writePDF(path, tasks)
	default:
		return 0, errors.NewInvalidInputError("format", format, "unsupported format")
	}
	if err != nil {
		if appErr, ok := errors.AsAppError(err); ok {
			return 0, appErr.WithContext("format", format)
		}
		return 0, err
	}

	logging.Debug("tasks exported", "path", path, "format", format, "count", len(tasks))
	return len(tasks), nil
}

// writeJSON uses the store serialization so the export is a drop-in task file
func writeJSON(path string, tasks []domain.Task) error {
	data, err := domain.EncodeTasks(tasks)
	if err != nil {
		return errors.WrapError(err, errors.ErrorTypeIO, "encode tasks")
	}
	if err := os.WriteFile(path, data, exportFileMode); err != nil {
		return errors.NewIOError("write", path, err)
	}
	return nil
}

func writeCSV(path string, tasks []domain.Task) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, exportFileMode)
	if err != nil {
		return errors.NewIOError("write", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(csvHeader); err != nil {
		return errors.NewIOError("write", path, err)
	}
	for _, task := range tasks {
		row := []string{
			strconv.FormatInt(task.ID, 10),
			task.Name,
			task.Description,
			task.Status,
			domain.FormatTimestamp(task.CreatedAt),
			domain.FormatTimestamp(task.UpdatedAt),
		}
		if err := writer.Write(row); err != nil {
			return errors.NewIOError("write", path, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.NewIOError("write", path, err)
	}
	return file.Close()
}

func writePDF(path string, tasks []domain.Task) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, "Tasks")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 10)
	if len(tasks) == 0 {
		pdf.MultiCell(0, 6, "No tasks found.", "0", "L", false)
	}
	for _, task := range tasks {
		line := fmt.Sprintf("[%d] %s - %s (%s) created %s, updated %s",
			task.ID, task.Name, task.Description, task.Status,
			task.CreatedAt.Format("2006-01-02 15:04"), task.UpdatedAt.Format("2006-01-02 15:04"))
		pdf.MultiCell(0, 6, tr(line), "0", "L", false)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return errors.NewIOError("write", path, err)
	}
	return nil
}
