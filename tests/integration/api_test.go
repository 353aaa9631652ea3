package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lawmap/infrastructure/config"
	"lawmap/infrastructure/di"
	"lawmap/interfaces/http/rest"
)

// newTestServer wires the full container against a temporary data file and
// exposes the real router, so requests travel the same path as production.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := &config.Config{
		ServerAddress: ":0",
		Environment:   "test",
		DataDir:       t.TempDir(),
		DataFileName:  "lawmap.json",
		LogLevel:      "error",
		Layout: config.LayoutConfig{
			CanvasSize:   800,
			AnchorRadius: 220,
			Iterations:   60,
			Seed:         1,
		},
	}

	container, err := di.InitializeContainer(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { container.Shutdown() })

	router := rest.NewRouter(cfg, container.CommandBus, container.QueryBus, container.Metrics, container.Logger)
	srv := httptest.NewServer(router.Setup())
	t.Cleanup(srv.Close)
	return srv
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func doJSON(t *testing.T, method, url string, body interface{}) (*http.Response, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &env), "body: %s", raw)
	}
	return resp, env
}

func TestHealthEndpoints(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/ready")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestArticleSearchFlow(t *testing.T) {
	srv := newTestServer(t)

	resp, env := doJSON(t, http.MethodGet, srv.URL+"/api/v1/articles?q=技能証明", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, env.Success)

	var result struct {
		Articles []struct {
			ID string `json:"id"`
		} `json:"articles"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	require.NotZero(t, result.Total)

	found := false
	for _, a := range result.Articles {
		if a.ID == "law67" {
			found = true
		}
	}
	assert.True(t, found)

	t.Run("unknown category is 404", func(t *testing.T) {
		resp, env := doJSON(t, http.MethodGet, srv.URL+"/api/v1/articles?category=nope", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		require.NotNil(t, env.Error)
		assert.Equal(t, "NOT_FOUND", env.Error.Code)
	})
}

func TestRegulationAndLinkFlow(t *testing.T) {
	srv := newTestServer(t)

	resp, env := doJSON(t, http.MethodPost, srv.URL+"/api/v1/regulations", map[string]string{
		"category": "OM",
		"title":    "OM Vol.1 4-2 Crew licensing",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.True(t, env.Success)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.NotEmpty(t, created.ID)

	t.Run("missing title is 400", func(t *testing.T) {
		resp, env := doJSON(t, http.MethodPost, srv.URL+"/api/v1/regulations", map[string]string{
			"category": "OM",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION", env.Error.Code)
	})

	t.Run("link to the new regulation", func(t *testing.T) {
		resp, env := doJSON(t, http.MethodPost, srv.URL+"/api/v1/links", map[string]string{
			"sourceArticleId":    "law67",
			"highlightedText":    "技能証明",
			"targetRegulationId": created.ID,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.True(t, env.Success)
	})

	t.Run("link to unknown article is 400", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/v1/links", map[string]string{
			"sourceArticleId":    "law999",
			"targetRegulationId": created.ID,
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("article detail shows the linked regulation", func(t *testing.T) {
		resp, env := doJSON(t, http.MethodGet, srv.URL+"/api/v1/articles/law67", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var detail struct {
			LinkedRegulations []struct {
				ID      string `json:"id"`
				Missing bool   `json:"missing"`
			} `json:"linkedRegulations"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &detail))
		require.Len(t, detail.LinkedRegulations, 1)
		assert.Equal(t, created.ID, detail.LinkedRegulations[0].ID)
		assert.False(t, detail.LinkedRegulations[0].Missing)
	})

	t.Run("delete cascades to links", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodDelete, fmt.Sprintf("%s/api/v1/regulations/%s", srv.URL, created.ID), nil)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)

		resp, env := doJSON(t, http.MethodGet, srv.URL+"/api/v1/links", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var links struct {
			Links []json.RawMessage `json:"links"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &links))
		assert.Empty(t, links.Links)
	})

	t.Run("delete again is 404", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodDelete, fmt.Sprintf("%s/api/v1/regulations/%s", srv.URL, created.ID), nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestGraphDataEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, env := doJSON(t, http.MethodGet, srv.URL+"/api/v1/graph-data", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Nodes []struct {
			ID string  `json:"id"`
			X  float64 `json:"x"`
			Y  float64 `json:"y"`
		} `json:"nodes"`
		Stats struct {
			NodeCount int `json:"nodeCount"`
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.NotEmpty(t, result.Nodes)
	assert.Equal(t, len(result.Nodes), result.Stats.NodeCount)

	t.Run("bad seed is 400", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodGet, srv.URL+"/api/v1/graph-data?seed=abc", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestBackupRoundTrip(t *testing.T) {
	srv := newTestServer(t)

	resp, env := doJSON(t, http.MethodPost, srv.URL+"/api/v1/regulations", map[string]string{
		"category": "OM",
		"title":    "to survive the round trip",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	// export ships the raw document, not the API envelope
	exportResp, err := http.Get(srv.URL + "/api/v1/backup/export")
	require.NoError(t, err)
	defer exportResp.Body.Close()
	require.Equal(t, http.StatusOK, exportResp.StatusCode)

	disposition := exportResp.Header.Get("Content-Disposition")
	assert.Contains(t, disposition, "lawmap_backup_")

	payload, err := io.ReadAll(exportResp.Body)
	require.NoError(t, err)

	var doc struct {
		Version     int                        `json:"version"`
		Regulations map[string]json.RawMessage `json:"regulations"`
	}
	require.NoError(t, json.Unmarshal(payload, &doc))
	assert.NotZero(t, doc.Version)
	assert.Contains(t, doc.Regulations, created.ID)

	t.Run("append import duplicates records under fresh ids", func(t *testing.T) {
		resp, err := http.Post(
			srv.URL+"/api/v1/backup/import?strategy=append",
			"application/json",
			bytes.NewReader(payload),
		)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		listResp, env := doJSON(t, http.MethodGet, srv.URL+"/api/v1/regulations", nil)
		require.Equal(t, http.StatusOK, listResp.StatusCode)
		var list struct {
			Regulations []struct {
				ID string `json:"id"`
			} `json:"regulations"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &list))
		assert.Len(t, list.Regulations, 2)
	})

	t.Run("malformed import is 422", func(t *testing.T) {
		resp, err := http.Post(
			srv.URL+"/api/v1/backup/import?strategy=replace",
			"application/json",
			strings.NewReader("{broken"),
		)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})
}
