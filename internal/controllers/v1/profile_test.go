package v1_test

import (
	"fmt"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/meu-painel/backend/internal/controllers/v1"
	"github.com/meu-painel/backend/internal/ledger"
	"github.com/meu-painel/backend/internal/models"
	"github.com/meu-painel/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestProfilesCreate() {
	tests := []struct {
		name     string
		editable v1.ProfileEditable
		expected string
	}{
		{"With name", v1.ProfileEditable{Name: "Casa"}, "Casa"},
		{"Name is trimmed", v1.ProfileEditable{Name: "  Família  "}, "Família"},
		{"Default name", v1.ProfileEditable{}, ledger.DefaultName},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			p := createTestProfile(t, tt.editable)
			assert.Equal(t, tt.expected, p.Data.Name)
			assert.Equal(t, fmt.Sprintf("http://example.com/v1/profiles/%s", p.Data.ID), p.Data.Links.Self)
			assert.Equal(t, fmt.Sprintf("http://example.com/v1/transactions?profile=%s", p.Data.ID), p.Data.Links.Transactions)

			// The snapshot is written on creation
			assert.FileExists(t, filepath.Join(v1.Snapshots.Dir, p.Data.ID.String()+".json"))
			assert.Equal(t, tt.expected, v1.Snapshots.Load(p.Data.ID.String()).Name)
		})
	}
}

func (suite *TestSuiteStandard) TestProfilesCreateInvalidBody() {
	tests := []struct {
		name string
		body string
	}{
		{"Broken JSON", `[{"name": "Casa"`},
		{"Not a list", `{"name": "Casa"}`},
		{"Empty", ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/profiles", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.ProfileCreateResponse
			test.DecodeResponse(t, &r, &response)
			assert.NotNil(t, response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestProfilesGetList() {
	_ = createTestProfile(suite.T(), v1.ProfileEditable{Name: "Casa"})
	_ = createTestProfile(suite.T(), v1.ProfileEditable{Name: "Trabalho"})
	_ = createTestProfile(suite.T(), v1.ProfileEditable{Name: "Casa de praia"})

	tests := []struct {
		name  string
		query string
		names []string
		total int64
	}{
		{"All", "", []string{"Casa", "Trabalho", "Casa de praia"}, 3},
		{"Name", "name=Casa", []string{"Casa"}, 1},
		{"Search", "search=casa", []string{"Casa", "Casa de praia"}, 2},
		{"Limit", "limit=1", []string{"Casa"}, 3},
		{"Offset", "offset=2", []string{"Casa de praia"}, 3},
		{"No match", "name=Escritório", []string{}, 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/profiles?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.ProfileListResponse
			test.DecodeResponse(t, &r, &response)

			names := make([]string, 0, len(response.Data))
			for _, p := range response.Data {
				names = append(names, p.Name)
			}

			assert.Equal(t, tt.names, names)
			require.NotNil(t, response.Pagination)
			assert.Equal(t, tt.total, response.Pagination.Total)
			assert.Equal(t, len(tt.names), response.Pagination.Count)
		})
	}
}

func (suite *TestSuiteStandard) TestProfilesGetListInvalidQuery() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/profiles?offset=-1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestProfilesGet() {
	p := createTestProfile(suite.T(), v1.ProfileEditable{Name: "Casa"})

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"Existing", p.Data.Links.Self, http.StatusOK},
		{"Does not exist", fmt.Sprintf("http://example.com/v1/profiles/%s", uuid.New()), http.StatusNotFound},
		{"Invalid UUID", "http://example.com/v1/profiles/not-a-uuid", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, tt.path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.ProfileResponse
			test.DecodeResponse(t, &r, &response)

			if tt.status == http.StatusOK {
				assert.Equal(t, "Casa", response.Data.Name)
				return
			}

			assert.NotNil(t, response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestProfilesOptions() {
	tests := []struct {
		name     string
		status   int
		id       string
		pathFunc func() string
	}{
		{"Does not exist", http.StatusNotFound, uuid.New().String(), nil},
		{"Invalid UUID", http.StatusBadRequest, "NotParseableAsUUID", nil},
		{"Success", http.StatusNoContent, "", func() string {
			return createTestProfile(suite.T(), v1.ProfileEditable{}).Data.Links.Self
		}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var p string
			if tt.pathFunc != nil {
				p = tt.pathFunc()
			} else {
				p = fmt.Sprintf("%s/%s", "http://example.com/v1/profiles", tt.id)
			}

			r := test.Request(t, http.MethodOptions, p, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestProfilesUpdate() {
	p := createTestProfile(suite.T(), v1.ProfileEditable{Name: "Casa"})

	r := test.Request(suite.T(), http.MethodPatch, p.Data.Links.Self, map[string]any{"name": "Apartamento"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ProfileResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Apartamento", response.Data.Name)
	assert.Equal(suite.T(), "Apartamento", v1.Snapshots.Load(p.Data.ID.String()).Name)

	// An empty name resets to the default
	r = test.Request(suite.T(), http.MethodPatch, p.Data.Links.Self, map[string]any{"name": ""})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), ledger.DefaultName, response.Data.Name)
}

func (suite *TestSuiteStandard) TestProfilesUpdateFails() {
	p := createTestProfile(suite.T(), v1.ProfileEditable{Name: "Casa"})

	tests := []struct {
		name   string
		path   string
		body   any
		status int
	}{
		{"Empty body", p.Data.Links.Self, "", http.StatusBadRequest},
		{"Broken body", p.Data.Links.Self, `{"name": 2`, http.StatusBadRequest},
		{"Wrong type", p.Data.Links.Self, `{"name": 2}`, http.StatusBadRequest},
		{"Does not exist", fmt.Sprintf("http://example.com/v1/profiles/%s", uuid.New()), `{"name": "x"}`, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, tt.path, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestProfilesDelete() {
	p := createTestProfile(suite.T(), v1.ProfileEditable{Name: "Casa"})
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{ProfileID: p.Data.ID, Amount: decimal.NewFromInt(10)})
	goal := createTestGoal(suite.T(), v1.GoalEditable{ProfileID: p.Data.ID})

	snapshotPath := filepath.Join(v1.Snapshots.Dir, p.Data.ID.String()+".json")
	require.FileExists(suite.T(), snapshotPath)

	r := test.Request(suite.T(), http.MethodDelete, p.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	for _, path := range []string{p.Data.Links.Self, transaction.Data.Links.Self, goal.Data.Links.Self} {
		r = test.Request(suite.T(), http.MethodGet, path, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	}

	assert.NoFileExists(suite.T(), snapshotPath)

	r = test.Request(suite.T(), http.MethodDelete, p.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// TestProfilesDatabaseError verifies that the endpoints return the appropriate
// error when the database is disconncted.
func (suite *TestSuiteStandard) TestProfilesDatabaseError() {
	tests := []struct {
		name   string
		path   string
		method string
	}{
		{"GET Collection", "", http.MethodGet},
		{"OPTIONS Single", fmt.Sprintf("/%s", uuid.New().String()), http.MethodOptions},
		{"GET Single", fmt.Sprintf("/%s", uuid.New().String()), http.MethodGet},
		{"PATCH Single", fmt.Sprintf("/%s", uuid.New().String()), http.MethodPatch},
		{"DELETE Single", fmt.Sprintf("/%s", uuid.New().String()), http.MethodDelete},
		{"GET Analysis", fmt.Sprintf("/%s/analysis", uuid.New().String()), http.MethodGet},
		{"GET Advice", fmt.Sprintf("/%s/advice", uuid.New().String()), http.MethodGet},
		{"GET Snapshot", fmt.Sprintf("/%s/snapshot", uuid.New().String()), http.MethodGet},
		{"GET Report", fmt.Sprintf("/%s/report", uuid.New().String()), http.MethodGet},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			recorder := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/profiles%s", tt.path), "")
			test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

			var response struct {
				Error string `json:"error"`
			}
			test.DecodeResponse(t, &recorder, &response)

			assert.Equal(t, models.ErrGeneral.Error(), response.Error)
		})
	}
}
