package handlers_test

import (
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndFetchResumePDF(t *testing.T) {
	h := newHarness(t)

	// Nothing rendered yet.
	resp := h.get(t, "/fetch-pdf", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Resume not found.", decodeBody(t, resp)["message"])

	resp = h.postJSON(t, "/create-pdf", map[string]any{
		"fullname":    "Asha Rao",
		"email":       "asha@example.com",
		"phoneNumber": "5551234567",
		"summary":     "Backend engineer with five years of Go experience.",
		"skills":      []string{"Go", "MongoDB"},
		"experience": []map[string]string{{
			"title":       "Backend Engineer",
			"company":     "Acme Corp",
			"duration":    "2021 - 2024",
			"description": "Owned the job board APIs.",
		}},
		"education": []map[string]string{{
			"degree":      "B.Tech Computer Science",
			"institution": "IIT Bombay",
			"year":        "2020",
		}},
	}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Resume PDF created successfully.", decodeBody(t, resp)["message"])

	resp = h.get(t, "/fetch-pdf", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

	pdf, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, len(pdf) > 4 && string(pdf[:4]) == "%PDF")
}
