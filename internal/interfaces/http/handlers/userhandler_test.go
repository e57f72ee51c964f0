package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lrsproject/lrs/internal/application/user/dto"
	"github.com/lrsproject/lrs/internal/application/user/usecases"
	"github.com/lrsproject/lrs/internal/domain/credential"
	"github.com/lrsproject/lrs/internal/interfaces/http/handlers/testutil"
	"github.com/lrsproject/lrs/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockProfileUC struct {
	got    usecases.Subject
	result *dto.UserResponse
	err    error
}

func (m *mockProfileUC) Execute(ctx context.Context, subject usecases.Subject) (*dto.UserResponse, error) {
	m.got = subject
	return m.result, m.err
}

type mockRecentUC struct {
	got usecases.ListRecentActivitiesQuery
}

func (m *mockRecentUC) Execute(ctx context.Context, query usecases.ListRecentActivitiesQuery) (*dto.RecentActivitiesResponse, error) {
	m.got = query
	return dto.EmptyRecentActivities(query.Offset), nil
}

type mockTotalUC struct {
	result []dto.PeriodResponse
}

func (m *mockTotalUC) Execute(ctx context.Context, subject usecases.Subject) ([]dto.PeriodResponse, error) {
	return m.result, nil
}

type mockTopUC struct{}

func (m *mockTopUC) Execute(ctx context.Context, subject usecases.Subject) ([]dto.ActivityResponse, error) {
	return []dto.ActivityResponse{}, nil
}

type mockSourcesUC struct{}

func (m *mockSourcesUC) Execute(ctx context.Context, subject usecases.Subject) ([]dto.DataSourceResponse, error) {
	return []dto.DataSourceResponse{}, nil
}

type mockDataUsesUC struct {
	result []dto.DataUseResponse
}

func (m *mockDataUsesUC) Execute(ctx context.Context, subject usecases.Subject) ([]dto.DataUseResponse, error) {
	return m.result, nil
}

type mockDataShareUC struct {
	got usecases.UpdateDataShareCommand
	err error
}

func (m *mockDataShareUC) Execute(ctx context.Context, cmd usecases.UpdateDataShareCommand) error {
	m.got = cmd
	return m.err
}

// =====================================================================
// Test helpers
// =====================================================================

type userHandlerMocks struct {
	profile   *mockProfileUC
	recent    *mockRecentUC
	total     *mockTotalUC
	dataUses  *mockDataUsesUC
	dataShare *mockDataShareUC
}

func newTestUserHandler() (*UserHandler, *userHandlerMocks) {
	m := &userHandlerMocks{
		profile:   &mockProfileUC{result: &dto.UserResponse{ID: 1, ExternalID: "jane"}},
		recent:    &mockRecentUC{},
		total:     &mockTotalUC{},
		dataUses:  &mockDataUsesUC{},
		dataShare: &mockDataShareUC{},
	}
	h := NewUserHandler(m.profile, m.recent, m.total, &mockTopUC{}, &mockSourcesUC{}, m.dataUses, m.dataShare, testutil.NewMockLogger())
	return h, m
}

var readPerms = credential.Permissions{Read: true}

// =====================================================================
// Tests
// =====================================================================

func TestUserHandler_SubjectResolution(t *testing.T) {
	tenantID := uint(4)

	tests := []struct {
		name       string
		param      string
		query      map[string]string
		tenant     *uint
		session    bool
		wantStatus int
		want       usecases.Subject
	}{
		{
			name:       "tenant bound caller ignores tenant_id",
			param:      "jane",
			query:      map[string]string{"tenant_id": "99"},
			tenant:     &tenantID,
			wantStatus: http.StatusOK,
			want:       usecases.Subject{TenantID: 4, ExternalID: "jane", CredentialID: 7},
		},
		{
			name:       "global caller names tenant",
			param:      "jane",
			query:      map[string]string{"tenant_id": "12"},
			wantStatus: http.StatusOK,
			want:       usecases.Subject{TenantID: 12, ExternalID: "jane", CredentialID: 7},
		},
		{
			name:       "global caller without tenant",
			param:      "jane",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "global caller with bad tenant",
			param:      "jane",
			query:      map[string]string{"tenant_id": "abc"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "me from session",
			param:      "me",
			session:    true,
			wantStatus: http.StatusOK,
			want:       usecases.Subject{TenantID: 4, ExternalID: "mailto:jane@example.edu", CredentialID: 7},
		},
		{
			name:       "me without session",
			param:      "me",
			tenant:     &tenantID,
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestUserHandler()

			c, w := testutil.NewTestContext(http.MethodGet, "/api/user/"+tt.param, nil)
			testutil.SetURLParam(c, UserParam, tt.param)
			if tt.query != nil {
				testutil.SetQueryParams(c, tt.query)
			}
			testutil.SetAuthContext(c, 7, tt.tenant, readPerms)
			if tt.session {
				testutil.SetSessionUser(c, 4, "mailto:jane@example.edu")
			}

			h.GetProfile(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.want, m.profile.got)
			}
		})
	}
}

func TestUserHandler_GetProfileNotFound(t *testing.T) {
	h, m := newTestUserHandler()
	m.profile.err = errors.NewNotFoundError(usecases.MsgUserNotFound)
	tenantID := uint(1)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/user/jane", nil)
	testutil.SetURLParam(c, UserParam, "jane")
	testutil.SetAuthContext(c, 1, &tenantID, readPerms)

	h.GetProfile(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Could not find a user", w.Body.String())
}

func TestUserHandler_ListRecentActivitiesParams(t *testing.T) {
	tenantID := uint(1)

	tests := []struct {
		name       string
		query      map[string]string
		wantLimit  int
		wantOffset int
	}{
		{"defaults", nil, 10, 0},
		{"explicit", map[string]string{"limit": "5", "offset": "20"}, 5, 20},
		{"non numeric falls back", map[string]string{"limit": "ten", "offset": "x"}, 10, 0},
		{"out of range is clamped", map[string]string{"limit": "100", "offset": "-3"}, 25, 0},
		{"zero limit is raised", map[string]string{"limit": "0"}, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestUserHandler()
			c, w := testutil.NewTestContext(http.MethodGet, "/api/user/jane/recentactivities", nil)
			testutil.SetURLParam(c, UserParam, "jane")
			if tt.query != nil {
				testutil.SetQueryParams(c, tt.query)
			}
			testutil.SetAuthContext(c, 1, &tenantID, readPerms)

			h.ListRecentActivities(c)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.wantLimit, m.recent.got.Limit)
			assert.Equal(t, tt.wantOffset, m.recent.got.Offset)
		})
	}
}

func TestUserHandler_TotalActivitiesGolden(t *testing.T) {
	h, m := newTestUserHandler()
	m.total.result = []dto.PeriodResponse{
		{Period: "April 2024", Total: 3},
		{Period: "May 2024", Total: 0},
		{Period: "June 2024", Total: 5, Current: true},
	}
	tenantID := uint(1)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/user/jane/totalactivities", nil)
	testutil.SetURLParam(c, UserParam, "jane")
	testutil.SetAuthContext(c, 1, &tenantID, readPerms)

	h.GetTotalActivities(c)

	require.Equal(t, http.StatusOK, w.Code)
	g := goldie.New(t, goldie.WithFixtureDir("testdata"), goldie.WithNameSuffix(".golden.json"))
	g.Assert(t, "totalactivities", w.Body.Bytes())
}

func TestUserHandler_DataUsesGolden(t *testing.T) {
	h, m := newTestUserHandler()
	m.dataUses.result = []dto.DataUseResponse{
		{ID: 1, Name: "Course Analytics", Description: "Engagement dashboards", Share: true},
		{ID: 4, Name: "Research", Anonymous: true, Share: false},
	}
	tenantID := uint(1)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/user/jane/datauses", nil)
	testutil.SetURLParam(c, UserParam, "jane")
	testutil.SetAuthContext(c, 1, &tenantID, readPerms)

	h.GetDataUses(c)

	require.Equal(t, http.StatusOK, w.Code)
	g := goldie.New(t, goldie.WithFixtureDir("testdata"), goldie.WithNameSuffix(".golden.json"))
	g.Assert(t, "datauses", w.Body.Bytes())
}

func TestUserHandler_UpdateDataShare(t *testing.T) {
	tenantID := uint(2)

	tests := []struct {
		name       string
		body       string
		ucErr      error
		wantStatus int
		wantShare  any
	}{
		{name: "opt out", body: `{"id":3,"share":false}`, wantStatus: http.StatusOK, wantShare: false},
		{name: "opt in", body: `{"id":3,"share":true}`, wantStatus: http.StatusOK, wantShare: true},
		{name: "string share passed through", body: `{"id":3,"share":"yes"}`, wantStatus: http.StatusOK, wantShare: "yes"},
		{name: "malformed json", body: `{"id":`, wantStatus: http.StatusBadRequest},
		{
			name:       "ineligible credential",
			body:       `{"id":8,"share":false}`,
			ucErr:      errors.NewNotFoundError(usecases.MsgDataUseNotFound),
			wantStatus: http.StatusNotFound,
			wantShare:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestUserHandler()
			m.dataShare.err = tt.ucErr

			c, w := testutil.NewTestContext(http.MethodPost, "/api/user/jane/datashare", tt.body)
			testutil.SetURLParam(c, UserParam, "jane")
			testutil.SetAuthContext(c, 1, &tenantID, credential.Permissions{Read: true, Write: true})

			h.UpdateDataShare(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantShare != nil {
				assert.Equal(t, tt.wantShare, m.dataShare.got.Request.Share)
				assert.Equal(t, "jane", m.dataShare.got.Subject.ExternalID)
			}
		})
	}
}
