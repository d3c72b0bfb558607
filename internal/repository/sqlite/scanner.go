package sqlite

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// scanTaskRow scans a single task row
func scanTaskRow(scanner Scanner) (*taskRow, error) {
	row := &taskRow{}
	err := scanner.Scan(
		&row.Position,
		&row.ID,
		&row.Name,
		&row.Description,
		&row.Status,
		&row.CreatedAt,
		&row.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return row, nil
}

// scanTaskRows scans every remaining row
func scanTaskRows(rows Rows) ([]*taskRow, error) {
	var result []*taskRow
	for rows.Next() {
		row, err := scanTaskRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
