package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeTasks_Layout(t *testing.T) {
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	data, err := EncodeTasks([]Task{NewTask(1, "Buy milk", "2L whole milk", ts)})
	require.NoError(t, err)

	expected := `[
    {
        "id": 1,
        "name": "Buy milk",
        "description": "2L whole milk",
        "status": "to-do",
        "createdAt": "2025-06-01T12:00:00Z",
        "updatedAt": "2025-06-01T12:00:00Z"
    }
]`
	assert.Equal(t, expected, string(data))
}

func TestEncodeTasks_Empty(t *testing.T) {
	data, err := EncodeTasks(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestDecodeTasks_RoundTrip(t *testing.T) {
	created := time.Date(2025, 2, 3, 4, 5, 6, 789000000, time.UTC)
	tasks := []Task{
		NewTask(1, "one", "first", created),
		NewTask(2, "two", "", created.Add(time.Hour)).Apply("two", "second", "done", created.Add(2*time.Hour)),
	}

	data, err := EncodeTasks(tasks)
	require.NoError(t, err)
	decoded, err := DecodeTasks(data)
	require.NoError(t, err)

	require.Len(t, decoded, 2)
	for i := range tasks {
		assert.Equal(t, tasks[i].ID, decoded[i].ID)
		assert.Equal(t, tasks[i].Name, decoded[i].Name)
		assert.Equal(t, tasks[i].Description, decoded[i].Description)
		assert.Equal(t, tasks[i].Status, decoded[i].Status)
		assert.True(t, tasks[i].CreatedAt.Equal(decoded[i].CreatedAt))
		assert.True(t, tasks[i].UpdatedAt.Equal(decoded[i].UpdatedAt))
	}

	again, err := EncodeTasks(decoded)
	require.NoError(t, err)
	assert.Equal(t, string(data), string(again))
}

func TestDecodeTasks_LegacyFile(t *testing.T) {
	legacy := `[
    {
        "id": 1,
        "name": "Estudar Go",
        "description": "capitulo 3",
        "status": "to-do",
        "createdAt": "2024-05-01T10:20:30.123456",
        "updateAt": "2024-05-02T08:00:00.5"
    }
]`

	tasks, err := DecodeTasks([]byte(legacy))
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	assert.Equal(t, time.Date(2024, 5, 1, 10, 20, 30, 123456000, time.UTC), tasks[0].CreatedAt)
	assert.Equal(t, time.Date(2024, 5, 2, 8, 0, 0, 500000000, time.UTC), tasks[0].UpdatedAt)

	// re-encoding normalises the key
	data, err := EncodeTasks(tasks)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"updatedAt"`)
	assert.NotContains(t, string(data), `"updateAt"`)
}

func TestDecodeTasks_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", "this is not json"},
		{"object instead of array", `{"id": 1}`},
		{"bad timestamp", `[{"id":1,"name":"a","description":"","status":"to-do","createdAt":"yesterday","updatedAt":"2024-01-01T00:00:00Z"}]`},
		{"missing timestamps", `[{"id":1,"name":"a","description":"","status":"to-do"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeTasks([]byte(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestDecodeTasks_NullIsEmpty(t *testing.T) {
	tasks, err := DecodeTasks([]byte("null"))
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestTask_MarshalJSON_Keys(t *testing.T) {
	data, err := json.Marshal(NewTask(9, "n", "d", time.Unix(0, 0).UTC()))
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.ElementsMatch(t,
		[]string{"id", "name", "description", "status", "createdAt", "updatedAt"},
		keys(fields))
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"rfc3339 utc", "2025-01-02T03:04:05Z", time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC), false},
		{"rfc3339 offset", "2025-01-02T03:04:05+02:00", time.Date(2025, 1, 2, 1, 4, 5, 0, time.UTC), false},
		{"naive with micros", "2025-01-02T03:04:05.000001", time.Date(2025, 1, 2, 3, 4, 5, 1000, time.UTC), false},
		{"naive without fraction", "2025-01-02T03:04:05", time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC), false},
		{"empty", "", time.Time{}, true},
		{"garbage", "soon", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v, want %v", got, tt.want)
		})
	}
}

func keys(m map[string]interface{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
