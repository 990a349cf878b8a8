package logger

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogHelpers_WriteStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)

	ctx := WithLogger(context.Background(), map[string]interface{}{"employee_id": "42"})
	InfoLog(ctx, "hired %s", "Jane")

	out := buf.String()
	assert.Contains(t, out, `"level":"info"`)
	assert.Contains(t, out, `"employee_id":"42"`)
	assert.Contains(t, out, `"message":"hired Jane"`)
}

func TestErrorLog_AttachesError(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)

	ErrorLog(context.Background(), "seed failed: %v", errors.New("bad band"))

	out := buf.String()
	assert.Contains(t, out, `"level":"error"`)
	assert.Contains(t, out, `"error":"bad band"`)
	assert.Contains(t, out, `"message":"seed failed: bad band"`)
}

func TestErrorLog_PlainArguments(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)

	ErrorLog(context.Background(), "%s: %d rows", "import", 3)

	out := buf.String()
	assert.Contains(t, out, `"message":"import: 3 rows"`)
	assert.NotContains(t, out, `"error":`)
}
