package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	rows := [][]interface{}{
		{"Month", "Sales"},
		{"Jan", 100},
		{"Feb", 250},
		{"Mar", 175},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	path := filepath.Join(t.TempDir(), "sales.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

// run executes the root command with an isolated config file.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runWithInput(t, "", args...)
}

func runWithInput(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetIn(strings.NewReader(input))
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "config.yaml")}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestInspectCommand(t *testing.T) {
	path := writeWorkbook(t)
	outPath := filepath.Join(t.TempDir(), "inspect.json")

	_, err := run(t, "inspect", path, "-o", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var got struct {
		Book   string `json:"book"`
		Sheets []struct {
			Name        string   `json:"name"`
			Headers     []string `json:"headers"`
			RecordCount int      `json:"recordCount"`
		} `json:"sheets"`
	}
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "sales.xlsx", got.Book)
	require.Len(t, got.Sheets, 1)
	assert.Equal(t, "Sheet1", got.Sheets[0].Name)
	assert.Equal(t, []string{"Month", "Sales"}, got.Sheets[0].Headers)
	assert.Equal(t, 3, got.Sheets[0].RecordCount)
}

func TestRenderCommand(t *testing.T) {
	path := writeWorkbook(t)
	dir := t.TempDir()

	t.Run("json 3d", func(t *testing.T) {
		outPath := filepath.Join(dir, "view.json")
		_, err := run(t, "render", path, "--x", "Month", "--y", "Sales", "--type", "column_3d", "-o", outPath)
		require.NoError(t, err)

		data, err := os.ReadFile(outPath)
		require.NoError(t, err)
		var view map[string]interface{}
		require.NoError(t, json.Unmarshal(data, &view))
		assert.Contains(t, view, "scene")
		assert.NotContains(t, view, "placeholder")
	})

	t.Run("png", func(t *testing.T) {
		outPath := filepath.Join(dir, "chart.png")
		_, err := run(t, "render", path, "--x", "Month", "--y", "Sales", "--format", "png", "-o", outPath)
		require.NoError(t, err)

		data, err := os.ReadFile(outPath)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
	})

	t.Run("png of a 3d chart", func(t *testing.T) {
		outPath := filepath.Join(dir, "scene.png")
		_, err := run(t, "render", path, "--x", "Month", "--y", "Sales", "--type", "BAR_3D", "--format", "png", "-o", outPath)
		require.Error(t, err)
		assert.NoFileExists(t, outPath)
	})

	t.Run("unknown column", func(t *testing.T) {
		_, err := run(t, "render", path, "--x", "Month", "--y", "Profit")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Column not found in upload")
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := run(t, "render", path, "--x", "Month", "--y", "Sales", "--type", "radar")
		require.Error(t, err)
	})
}

func TestRemoteCommandsRequireLogin(t *testing.T) {
	t.Setenv("EXANALYTICS_TOKEN", "")
	for _, args := range [][]string{
		{"projects", "list"},
		{"uploads", "list", "p1"},
		{"charts", "list", "u1"},
	} {
		_, err := run(t, args...)
		require.Error(t, err, args)
		assert.Contains(t, err.Error(), "not logged in")
	}
}

func TestProjectsList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/projects", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"projects":[
			{"id":"p1","name":"Sales","type":"SINGLE","uploadCount":2}]}}`))
	}))
	defer srv.Close()
	t.Setenv("EXANALYTICS_TOKEN", "tok")

	out, err := run(t, "--server", srv.URL, "projects", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "p1")
	assert.Contains(t, out, "Sales")
}

func TestChartsDeleteConfirmation(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		args        []string
		wantDeletes int32
		wantOutput  string
	}{
		{"confirmed", "y\n", nil, 1, "Chart deleted successfully!"},
		{"confirmed with yes", "yes\n", nil, 1, "Chart deleted successfully!"},
		{"declined", "n\n", nil, 0, "Are you sure you want to delete this chart?"},
		{"empty answer", "\n", nil, 0, "Are you sure you want to delete this chart?"},
		{"no input", "", nil, 0, ""},
		{"skip prompt", "", []string{"--yes"}, 1, "Chart deleted successfully!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var deletes atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodDelete, r.Method)
				assert.Equal(t, "/api/charts/c1", r.URL.Path)
				deletes.Add(1)
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"success":true,"message":"deleted"}`))
			}))
			defer srv.Close()
			t.Setenv("EXANALYTICS_TOKEN", "tok")

			args := append([]string{"--server", srv.URL, "charts", "delete", "c1"}, tt.args...)
			out, err := runWithInput(t, tt.input, args...)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDeletes, deletes.Load())
			assert.Contains(t, out, tt.wantOutput)
		})
	}
}

func TestProjectsCollaboration(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/projects/p1/invite":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, map[string]string{"email": "a@b.c", "role": "ADMIN"}, body)
			_, _ = w.Write([]byte(`{"success":true,"data":{"email":"a@b.c","projectId":"p1","token":"inv-1"}}`))
		case r.URL.Path == "/api/projects/accept-invitation":
			_, _ = w.Write([]byte(`{"success":true,"data":{"project":{"id":"p1","name":"Q1"},"role":"MEMBER"}}`))
		case r.URL.Path == "/api/projects/p1":
			_, _ = w.Write([]byte(`{"success":true,"data":{"project":{"id":"p1","name":"Q1","members":[
				{"userId":"u2","role":"ADMIN","user":{"firstName":"Ada","lastName":"L","email":"ada@b.c"}}]}}}`))
		case r.URL.Path == "/api/projects/p1/update-member":
			_, _ = w.Write([]byte(`{"success":true}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"success":false,"message":"Not found"}`))
		}
	}))
	defer srv.Close()
	t.Setenv("EXANALYTICS_TOKEN", "tok")

	out, err := run(t, "--server", srv.URL, "projects", "invite", "p1", "--email", "a@b.c", "--role", "admin")
	require.NoError(t, err)
	assert.Contains(t, out, "Invitation sent successfully!")
	assert.Contains(t, out, "inv-1")

	out, err = run(t, "--server", srv.URL, "projects", "accept", "inv-1")
	require.NoError(t, err)
	assert.Contains(t, out, "Invitation accepted successfully!")

	out, err = run(t, "--server", srv.URL, "projects", "members", "p1")
	require.NoError(t, err)
	assert.Contains(t, out, "ada@b.c")
	assert.Contains(t, out, "ADMIN")

	out, err = run(t, "--server", srv.URL, "projects", "members", "set-role", "p1", "u2", "member")
	require.NoError(t, err)
	assert.Contains(t, out, "Member role updated successfully!")

	_, err = run(t, "--server", srv.URL, "projects", "invite", "p1", "--email", "a@b.c", "--role", "owner")
	assert.Error(t, err)

	out, err = run(t, "--server", srv.URL, "projects", "members", "remove", "p9", "u2")
	require.Error(t, err)
	assert.NotContains(t, out, "Member removed successfully!")
}
