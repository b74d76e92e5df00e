package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/logging"
	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/models"
)

// newTestClient serves handler and returns a client pointed at it.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, WithToken("tok"), WithLogger(logging.Discard()))
}

func writeEnvelope(t *testing.T, w http.ResponseWriter, status int, success bool, message string, data interface{}) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	body := map[string]interface{}{"success": success, "message": message}
	if data != nil {
		body["data"] = data
	}
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestGetChart(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/charts/c1", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get(RequestIDHeader))
		writeEnvelope(t, w, http.StatusOK, true, "", map[string]interface{}{
			"chart": map[string]interface{}{
				"id":   "c1",
				"name": "Revenue",
				"type": "BAR",
				"config": map[string]interface{}{
					"xAxis": "Month", "yAxis": "Sales",
				},
				"data": map[string]interface{}{
					"chartData": []interface{}{
						map[string]interface{}{"Month": "Jan", "Sales": 10, "Note": nil},
					},
				},
			},
		})
	})

	rec, err := c.GetChart(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "Revenue", rec.Name)
	assert.Equal(t, models.ChartBar, rec.Type)
	require.Len(t, rec.Rows(), 1)
	v, ok := rec.Rows()[0].Get("Sales").Float()
	require.True(t, ok)
	assert.Equal(t, 10.0, v)
	assert.True(t, rec.Rows()[0].Get("Note").IsAbsent())
}

func TestCreateChartSendsConfig(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/charts/upload/u1", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var cfg models.ChartConfig
		require.NoError(t, json.NewDecoder(r.Body).Decode(&cfg))
		assert.Equal(t, models.ChartConfig{XAxis: "Month", YAxis: "Sales", ChartType: models.ChartLine, Title: "T"}, cfg)

		writeEnvelope(t, w, http.StatusCreated, true, "Chart created", map[string]interface{}{
			"chart": map[string]interface{}{"id": "new", "type": "LINE", "config": cfg},
		})
	})

	rec, err := c.CreateChart(context.Background(), "u1", models.ChartConfig{
		XAxis: "Month", YAxis: "Sales", ChartType: models.ChartLine, Title: "T",
	})
	require.NoError(t, err)
	assert.Equal(t, "new", rec.ID)
}

func TestListUpdateDeleteCharts(t *testing.T) {
	var calls []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		switch r.Method {
		case http.MethodGet:
			writeEnvelope(t, w, http.StatusOK, true, "", map[string]interface{}{
				"charts": []interface{}{map[string]interface{}{"id": "a"}, map[string]interface{}{"id": "b"}},
			})
		case http.MethodPut:
			writeEnvelope(t, w, http.StatusOK, true, "", map[string]interface{}{
				"chart": map[string]interface{}{"id": "a", "type": "PIE"},
			})
		default:
			writeEnvelope(t, w, http.StatusOK, true, "Chart deleted", nil)
		}
	})
	ctx := context.Background()

	list, err := c.ListCharts(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, list, 2)

	rec, err := c.UpdateChart(ctx, "a", models.ChartConfig{XAxis: "x", YAxis: "y", ChartType: models.ChartPie})
	require.NoError(t, err)
	assert.Equal(t, models.ChartPie, rec.Type)

	require.NoError(t, c.DeleteChart(ctx, "a"))
	assert.Equal(t, []string{
		"GET /api/charts/upload/u1",
		"PUT /api/charts/a",
		"DELETE /api/charts/a",
	}, calls)
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		success  bool
		message  string
		sentinel error
	}{
		{"unauthorized", http.StatusUnauthorized, false, "Invalid token", ErrUnauthorized},
		{"not found", http.StatusNotFound, false, "Chart not found", ErrNotFound},
		{"server error", http.StatusInternalServerError, false, "boom", nil},
		{"success false", http.StatusOK, false, "Validation failed", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeEnvelope(t, w, tt.status, tt.success, tt.message, nil)
			})

			_, err := c.GetChart(context.Background(), "c1")
			require.Error(t, err)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.message, apiErr.Message)
			assert.Equal(t, tt.message, Message(err))
			if tt.sentinel != nil {
				assert.ErrorIs(t, err, tt.sentinel)
			}
		})
	}
}

func TestNonJSONErrorBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	})

	_, err := c.ListProjects(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "bad gateway", apiErr.Message)
}

func TestLoginStoresToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		var creds Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "a@b.c", creds.Email)
		writeEnvelope(t, w, http.StatusOK, true, "Login successful", map[string]interface{}{
			"user":  map[string]interface{}{"id": "u", "email": "a@b.c"},
			"token": "fresh",
		})
	})

	session, err := c.Login(context.Background(), Credentials{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "fresh", session.Token)
	assert.Equal(t, "a@b.c", session.User.Email)
	assert.Equal(t, "fresh", c.Token())
}

func TestProfileAndDashboard(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/profile":
			writeEnvelope(t, w, http.StatusOK, true, "", map[string]interface{}{
				"user": map[string]interface{}{"id": "u1", "firstName": "Ada"},
			})
		case "/api/auth/users/dashboard":
			writeEnvelope(t, w, http.StatusOK, true, "", map[string]interface{}{
				"stats": map[string]interface{}{"projectsCount": 2, "uploadsCount": 3, "chartsCount": 5},
			})
		default:
			http.NotFound(w, r)
		}
	})
	ctx := context.Background()

	u, err := c.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ada", u.FirstName)

	d, err := c.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, d.Stats.ChartsCount)
}

func TestProjects(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost:
			var p NewProject
			require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
			assert.Equal(t, models.ProjectSingle, p.Type)
			writeEnvelope(t, w, http.StatusCreated, true, "", map[string]interface{}{
				"project": map[string]interface{}{"id": "p1", "name": p.Name, "type": p.Type},
			})
		case r.Method == http.MethodDelete:
			assert.Equal(t, "/api/projects/p1", r.URL.Path)
			writeEnvelope(t, w, http.StatusOK, true, "", nil)
		case r.URL.Path == "/api/projects":
			writeEnvelope(t, w, http.StatusOK, true, "", map[string]interface{}{
				"projects": []interface{}{map[string]interface{}{"id": "p1", "name": "Q1"}},
			})
		default:
			writeEnvelope(t, w, http.StatusOK, true, "", map[string]interface{}{
				"project": map[string]interface{}{"id": "p1", "name": "Q1"},
			})
		}
	})
	ctx := context.Background()

	p, err := c.CreateProject(ctx, NewProject{Name: "Q1"})
	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)

	list, err := c.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	got, err := c.GetProject(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Q1", got.Name)

	require.NoError(t, c.DeleteProject(ctx, "p1"))
}

func TestProjectCollaboration(t *testing.T) {
	type call struct {
		method string
		path   string
		body   map[string]interface{}
	}
	var (
		mu    sync.Mutex
		calls []call
	)

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		if r.ContentLength > 0 {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		}
		mu.Lock()
		calls = append(calls, call{r.Method, r.URL.Path, body})
		mu.Unlock()

		switch r.URL.Path {
		case "/api/projects/p1":
			writeEnvelope(t, w, http.StatusOK, true, "", map[string]interface{}{
				"project": map[string]interface{}{"id": "p1", "name": body["name"]},
			})
		case "/api/projects/p1/invite":
			writeEnvelope(t, w, http.StatusOK, true, "", map[string]interface{}{
				"email": "a@b.c", "projectId": "p1", "token": "inv-1",
			})
		case "/api/projects/invitations/inv-1":
			writeEnvelope(t, w, http.StatusOK, true, "", map[string]interface{}{
				"invitation": map[string]interface{}{
					"email": "a@b.c", "role": "ADMIN", "expiresAt": "2026-11-01T00:00:00Z",
					"project": map[string]interface{}{
						"id": "p1", "name": "Q1", "type": "ORGANIZATION",
						"creator": map[string]interface{}{"firstName": "Ada", "lastName": "L", "email": "ada@b.c"},
					},
				},
			})
		case "/api/projects/accept-invitation":
			writeEnvelope(t, w, http.StatusOK, true, "", map[string]interface{}{
				"project": map[string]interface{}{"id": "p1", "name": "Q1"}, "role": "ADMIN",
			})
		default:
			writeEnvelope(t, w, http.StatusOK, true, "done", nil)
		}
	})
	ctx := context.Background()

	p, err := c.UpdateProject(ctx, "p1", ProjectUpdate{Name: "Q2", Description: "d"})
	require.NoError(t, err)
	assert.Equal(t, "Q2", p.Name)

	sent, err := c.InviteUser(ctx, "p1", Invite{Email: "a@b.c"})
	require.NoError(t, err)
	assert.Equal(t, "inv-1", sent.Token)

	inv, err := c.GetInvitation(ctx, "inv-1")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, inv.Role)
	assert.Equal(t, "Q1", inv.Project.Name)
	assert.Equal(t, "Ada", inv.Project.Creator.FirstName)

	m, err := c.AcceptInvitation(ctx, "inv-1")
	require.NoError(t, err)
	assert.Equal(t, "p1", m.Project.ID)
	assert.Equal(t, models.RoleAdmin, m.Role)

	require.NoError(t, c.RemoveMember(ctx, "p1", "u2"))
	require.NoError(t, c.UpdateMemberRole(ctx, "p1", "u3", models.RoleAdmin))

	want := []call{
		{http.MethodPut, "/api/projects/p1", map[string]interface{}{"name": "Q2", "description": "d"}},
		{http.MethodPost, "/api/projects/p1/invite", map[string]interface{}{"email": "a@b.c", "role": "MEMBER"}},
		{http.MethodGet, "/api/projects/invitations/inv-1", nil},
		{http.MethodPost, "/api/projects/accept-invitation", map[string]interface{}{"token": "inv-1"}},
		{http.MethodDelete, "/api/projects/p1/remove-member", map[string]interface{}{"userId": "u2"}},
		{http.MethodPost, "/api/projects/p1/update-member", map[string]interface{}{"userId": "u3", "role": "ADMIN"}},
	}
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, want, calls)
}

func TestAcceptInvitationError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusBadRequest, false, "Invitation has expired", nil)
	})

	_, err := c.AcceptInvitation(context.Background(), "old")
	require.Error(t, err)
	assert.Equal(t, "Invitation has expired", Message(err))
}

func TestParseProjectRole(t *testing.T) {
	r, err := models.ParseProjectRole(" admin ")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, r)

	_, err = models.ParseProjectRole("owner")
	assert.Error(t, err)
}

func TestUploadMultipart(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/uploads/p1", r.URL.Path)
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))

		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		content, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.Equal(t, "sales.xlsx", hdr.Filename)
		assert.Equal(t, "payload", string(content))

		writeEnvelope(t, w, http.StatusCreated, true, "", map[string]interface{}{
			"upload": map[string]interface{}{"id": "u1", "originalName": "sales.xlsx", "status": "COMPLETED"},
		})
	})

	up, err := c.Upload(context.Background(), "p1", "/tmp/sales.xlsx", strings.NewReader("payload"))
	require.NoError(t, err)
	assert.Equal(t, models.UploadCompleted, up.Status)
}

func TestGetUploadRecord(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			writeEnvelope(t, w, http.StatusOK, true, "", nil)
			return
		}
		assert.Equal(t, "/api/uploads/file/u1", r.URL.Path)
		writeEnvelope(t, w, http.StatusOK, true, "", map[string]interface{}{
			"upload": map[string]interface{}{
				"id": "u1",
				"data": []interface{}{map[string]interface{}{
					"headers":  []string{"Month", "Sales"},
					"rows":     []interface{}{map[string]interface{}{"Month": "Jan", "Sales": 1}},
					"metadata": map[string]interface{}{"totalRows": 1, "totalColumns": 2, "fileName": "s.xlsx"},
				}},
			},
		})
	})
	ctx := context.Background()

	up, err := c.GetUpload(ctx, "u1")
	require.NoError(t, err)
	rec := up.Record()
	require.NotNil(t, rec)
	assert.Equal(t, []string{"Month", "Sales"}, rec.Headers)
	assert.Equal(t, 2, rec.Metadata.TotalColumns)

	require.NoError(t, c.DeleteUpload(ctx, "u1"))
}

func TestNewDefaults(t *testing.T) {
	c := New("", WithLogger(logging.Discard()))
	assert.Equal(t, DefaultBaseURL+"/api", c.baseURL)
	assert.Empty(t, c.Token())

	c = New("http://example.test/", WithLogger(logging.Discard()))
	assert.Equal(t, "http://example.test/api", c.baseURL)
}
