package domain

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitRequest_Validate(t *testing.T) {
	file := &multipart.FileHeader{Filename: "demo.zip"}

	tests := []struct {
		name      string
		req       SubmitRequest
		wantField string
	}{
		{name: "complete", req: SubmitRequest{Title: "Demo", Description: "A demo project", File: file}},
		{name: "missing title", req: SubmitRequest{Description: "d", File: file}, wantField: "title"},
		{name: "whitespace title", req: SubmitRequest{Title: "   ", Description: "d", File: file}, wantField: "title"},
		{name: "missing description", req: SubmitRequest{Title: "t", File: file}, wantField: "description"},
		{name: "missing file", req: SubmitRequest{Title: "t", Description: "d"}, wantField: "file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.req.Normalize()
			err := tt.req.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestProject_JSONFieldNames(t *testing.T) {
	p := Project{
		Title:       "Demo",
		Description: "A demo project",
		File:        "/srv/uploads/a.zip",
		FileURL:     "/uploads/a.zip",
		CreatedAt:   time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.Equal(t, "Demo", raw["title"])
	assert.Equal(t, "/uploads/a.zip", raw["fileUrl"])
	assert.Equal(t, "2024-05-01T12:00:00Z", raw["createdAt"])
	_, hasVideo := raw["videoLink"]
	assert.False(t, hasVideo, "absent videoLink should be omitted")
}
