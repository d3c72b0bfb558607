package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskValidator_ParseTaskID(t *testing.T) {
	tv := NewTaskValidator()

	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{"positive", "3", 3, false},
		{"zero is accepted", "0", 0, false},
		{"negative is accepted", "-1", -1, false},
		{"surrounding spaces", " 12 ", 12, false},
		{"word", "three", 0, true},
		{"empty", "", 0, true},
		{"decimal", "2.0", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := tv.ParseTaskID(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
				assert.Contains(t, err.Error(), "id")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestTaskValidator_ValidateExport(t *testing.T) {
	tv := NewTaskValidator("json", "csv", "pdf")

	assert.NoError(t, tv.ValidateExport("out.json", "json"))
	assert.NoError(t, tv.ValidateExport("report.pdf", "pdf"))

	err := tv.ValidateExport("  ", "json")
	require.Error(t, err)
	ve := err.(*ValidationError)
	require.Len(t, ve.Errors, 1)
	assert.Equal(t, "filename", ve.Errors[0].Field)

	err = tv.ValidateExport("out.xml", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of json, csv, pdf")

	err = tv.ValidateExport("", "xml")
	require.Error(t, err)
	assert.Len(t, err.(*ValidationError).Errors, 2)
}
