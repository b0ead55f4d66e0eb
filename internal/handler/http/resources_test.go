package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/chronos/internal/service"
	"github.com/MKhiriev/chronos/internal/store"
	"github.com/MKhiriev/chronos/internal/validators"
	"github.com/MKhiriev/chronos/models"
)

// decodeData unpacks the data field of a success envelope into dst.
func decodeData(t *testing.T, body []byte, dst any) {
	t.Helper()
	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	require.True(t, envelope.Success)
	require.NoError(t, json.Unmarshal(envelope.Data, dst))
}

func authedServices() *testServices {
	s := newTestServices()
	s.validSessionReader()
	return s
}

func TestResources_RequireSession(t *testing.T) {
	h := newTestHandler(authedServices())

	for _, target := range []string{"/api/officers", "/api/positions", "/api/competencies", "/api/stints"} {
		t.Run(target, func(t *testing.T) {
			rec := serve(t, h, http.MethodGet, target, "")
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestOfficers_ListAndGet(t *testing.T) {
	s := authedServices()
	s.officers.list = func(context.Context) ([]models.Officer, error) {
		return []models.Officer{{OfficerID: "S1234567A", Name: "Tan Wei Ming"}}, nil
	}
	s.officers.get = func(_ context.Context, id string) (models.OfficerDetail, error) {
		if id != "S1234567A" {
			return models.OfficerDetail{}, fmt.Errorf("get officer %s: %w", id, store.ErrNotFound)
		}
		return models.OfficerDetail{
			Officer:      models.Officer{OfficerID: id, Name: "Tan Wei Ming"},
			Competencies: []models.OfficerCompetency{{OfficerID: id, CompetencyID: 1, AchievedPLLevel: 3}},
		}, nil
	}
	h := newTestHandler(s)

	rec := serve(t, h, http.MethodGet, "/api/officers", "", sessionCookie())
	require.Equal(t, http.StatusOK, rec.Code)
	var officers []models.Officer
	decodeData(t, rec.Body.Bytes(), &officers)
	assert.Len(t, officers, 1)

	rec = serve(t, h, http.MethodGet, "/api/officers/S1234567A", "", sessionCookie())
	require.Equal(t, http.StatusOK, rec.Code)
	var detail models.OfficerDetail
	decodeData(t, rec.Body.Bytes(), &detail)
	assert.Equal(t, "Tan Wei Ming", detail.Name)
	assert.Equal(t, 3, detail.Competencies[0].AchievedPLLevel)

	rec = serve(t, h, http.MethodGet, "/api/officers/T0000000Z", "", sessionCookie())
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not found", decodeEnvelope(t, rec.Body.Bytes()).Error)
}

func TestOfficers_CreateUpdateDelete(t *testing.T) {
	s := authedServices()
	s.officers.create = func(_ context.Context, officer models.Officer) (models.Officer, error) {
		if officer.OfficerID == "S1234567A" {
			return models.Officer{}, store.ErrAlreadyExists
		}
		return officer, nil
	}
	s.officers.update = func(_ context.Context, update models.OfficerUpdate) (models.Officer, error) {
		assert.Equal(t, "S7654321B", update.OfficerID)
		require.NotNil(t, update.Grade)
		return models.Officer{OfficerID: update.OfficerID, Grade: *update.Grade}, nil
	}
	s.officers.remove = func(_ context.Context, id string) error {
		assert.Equal(t, "S7654321B", id)
		return nil
	}
	h := newTestHandler(s)

	rec := serve(t, h, http.MethodPost, "/api/officers", `{"officer_id":"S7654321B","name":"Lim"}`, sessionCookie())
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = serve(t, h, http.MethodPost, "/api/officers", `{"officer_id":"S1234567A","name":"Tan"}`, sessionCookie())
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = serve(t, h, http.MethodPost, "/api/officers", `{"officer_id":"S1","name":"Tan"} trailing`, sessionCookie())
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(t, h, http.MethodPut, "/api/officers/S7654321B", `{"grade":"MX13"}`, sessionCookie())
	require.Equal(t, http.StatusOK, rec.Code)
	var updated models.Officer
	decodeData(t, rec.Body.Bytes(), &updated)
	assert.Equal(t, "MX13", updated.Grade)

	rec = serve(t, h, http.MethodDelete, "/api/officers/S7654321B", "", sessionCookie())
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Zero(t, rec.Body.Len())
}

func TestOfficers_ValidationMessageIsExposed(t *testing.T) {
	s := authedServices()
	s.officers.create = func(context.Context, models.Officer) (models.Officer, error) {
		return models.Officer{}, fmt.Errorf("%w: %w", service.ErrValidation, validators.ErrInvalidOfficerName)
	}

	rec := serve(t, newTestHandler(s), http.MethodPost, "/api/officers", `{"officer_id":"S7654321B"}`, sessionCookie())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeEnvelope(t, rec.Body.Bytes()).Error, validators.ErrInvalidOfficerName.Error())
}

func TestOfficers_Competencies(t *testing.T) {
	s := authedServices()
	s.officers.setCompetency = func(_ context.Context, c models.OfficerCompetency) (models.OfficerCompetency, error) {
		if c.AchievedPLLevel > 4 {
			return models.OfficerCompetency{}, service.ErrLevelExceedsMax
		}
		c.CompetencyName = "Workforce Planning"
		c.MaxPLLevel = 4
		return c, nil
	}
	s.officers.removeCompetency = func(_ context.Context, officerID string, competencyID int64) error {
		assert.Equal(t, "S1234567A", officerID)
		assert.Equal(t, int64(7), competencyID)
		return nil
	}
	h := newTestHandler(s)

	rec := serve(t, h, http.MethodPut, "/api/officers/S1234567A/competencies/7", `{"achieved_pl_level":3}`, sessionCookie())
	require.Equal(t, http.StatusOK, rec.Code)
	var saved models.OfficerCompetency
	decodeData(t, rec.Body.Bytes(), &saved)
	assert.Equal(t, models.OfficerCompetency{
		OfficerID: "S1234567A", CompetencyID: 7, CompetencyName: "Workforce Planning", MaxPLLevel: 4, AchievedPLLevel: 3,
	}, saved)

	rec = serve(t, h, http.MethodPut, "/api/officers/S1234567A/competencies/7", `{"achieved_pl_level":5}`, sessionCookie())
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(t, h, http.MethodPut, "/api/officers/S1234567A/competencies/abc", `{"achieved_pl_level":3}`, sessionCookie())
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid identifier", decodeEnvelope(t, rec.Body.Bytes()).Error)

	rec = serve(t, h, http.MethodDelete, "/api/officers/S1234567A/competencies/7", "", sessionCookie())
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestOfficers_Stints(t *testing.T) {
	s := authedServices()
	s.officers.addStint = func(_ context.Context, stint models.OfficerStint) (models.OfficerStint, error) {
		if stint.StintID == 99 {
			return models.OfficerStint{}, fmt.Errorf("%w: stint 99", store.ErrReferenceNotFound)
		}
		stint.StintName = "MOM secondment"
		return stint, nil
	}
	s.officers.removeStint = func(_ context.Context, officerID string, stintID int64) error {
		return store.ErrNotFound
	}
	h := newTestHandler(s)

	rec := serve(t, h, http.MethodPost, "/api/officers/S1234567A/stints", `{"stint_id":2,"completion_year":2024}`, sessionCookie())
	require.Equal(t, http.StatusCreated, rec.Code)
	var saved models.OfficerStint
	decodeData(t, rec.Body.Bytes(), &saved)
	assert.Equal(t, "S1234567A", saved.OfficerID)
	assert.Equal(t, 2024, saved.CompletionYear)

	rec = serve(t, h, http.MethodPost, "/api/officers/S1234567A/stints", `{"stint_id":99,"completion_year":2024}`, sessionCookie())
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = serve(t, h, http.MethodDelete, "/api/officers/S1234567A/stints/0", "", sessionCookie())
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(t, h, http.MethodDelete, "/api/officers/S1234567A/stints/2", "", sessionCookie())
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOfficers_Remarks(t *testing.T) {
	s := authedServices()
	s.remarks.list = func(_ context.Context, officerID string) ([]models.OfficerRemark, error) {
		return []models.OfficerRemark{{RemarkID: 1, OfficerID: officerID, RemarkDate: "2026-01-15", Details: "strong"}}, nil
	}
	s.remarks.add = func(_ context.Context, remark models.OfficerRemark) (models.OfficerRemark, error) {
		assert.Equal(t, "S1234567A", remark.OfficerID)
		remark.RemarkID = 2
		return remark, nil
	}
	h := newTestHandler(s)

	rec := serve(t, h, http.MethodGet, "/api/officers/S1234567A/remarks", "", sessionCookie())
	require.Equal(t, http.StatusOK, rec.Code)
	var remarks []models.OfficerRemark
	decodeData(t, rec.Body.Bytes(), &remarks)
	require.Len(t, remarks, 1)
	assert.Equal(t, "S1234567A", remarks[0].OfficerID)

	rec = serve(t, h, http.MethodPost, "/api/officers/S1234567A/remarks",
		`{"officer_id":"ignored","remark_date":"2026-02-01","place":"HQ","details":"ready"}`, sessionCookie())
	require.Equal(t, http.StatusCreated, rec.Code)
	var created models.OfficerRemark
	decodeData(t, rec.Body.Bytes(), &created)
	assert.Equal(t, int64(2), created.RemarkID)
}

func TestPositions(t *testing.T) {
	s := authedServices()
	position := models.PositionWithSuccessors{
		Position:                 models.Position{PositionID: "P-001", PositionTitle: "Director HR"},
		SuccessorsImmediate:      []models.OfficerSummary{{OfficerID: "S1234567A"}},
		Successors1To2Years:      []models.OfficerSummary{},
		Successors3To5Years:      []models.OfficerSummary{},
		SuccessorsMoreThan5Years: []models.OfficerSummary{},
	}

	s.positions.list = func(context.Context) ([]models.PositionWithSuccessors, error) {
		return []models.PositionWithSuccessors{position}, nil
	}
	s.positions.get = func(_ context.Context, id string) (models.PositionWithSuccessors, error) {
		return models.PositionWithSuccessors{}, store.ErrNotFound
	}
	s.positions.create = func(_ context.Context, request models.CreatePositionRequest) (models.PositionWithSuccessors, error) {
		assert.Equal(t, []string{"S1234567A"}, request.SuccessorsImmediate)
		return position, nil
	}
	s.positions.update = func(_ context.Context, update models.PositionUpdate) (models.PositionWithSuccessors, error) {
		assert.Equal(t, "P-001", update.PositionID)
		assert.True(t, update.ClearIncumbent)
		return position, nil
	}
	s.positions.remove = func(context.Context, string) error { return nil }
	h := newTestHandler(s)

	rec := serve(t, h, http.MethodGet, "/api/positions", "", sessionCookie())
	require.Equal(t, http.StatusOK, rec.Code)
	var raw []map[string]any
	decodeData(t, rec.Body.Bytes(), &raw)
	require.Len(t, raw, 1)
	for _, key := range []string{"successors_immediate", "successors_1_2_years", "successors_3_5_years", "successors_more_than_5_years"} {
		assert.NotNil(t, raw[0][key], key)
	}

	rec = serve(t, h, http.MethodGet, "/api/positions/P-404", "", sessionCookie())
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(t, h, http.MethodPost, "/api/positions",
		`{"position_id":"P-001","position_title":"Director HR","successors_immediate":["S1234567A"]}`, sessionCookie())
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = serve(t, h, http.MethodPut, "/api/positions/P-001", `{"clear_incumbent":true}`, sessionCookie())
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, h, http.MethodDelete, "/api/positions/P-001", "", sessionCookie())
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestPositions_SetSuccessors(t *testing.T) {
	s := authedServices()
	s.positions.setSuccessors = func(_ context.Context, positionID string, tier models.SuccessionType, ids []string) (models.PositionWithSuccessors, error) {
		if !tier.IsValid() {
			return models.PositionWithSuccessors{}, service.ErrInvalidSuccessionType
		}
		assert.Equal(t, "P-001", positionID)
		return models.PositionWithSuccessors{Position: models.Position{PositionID: positionID}}, nil
	}
	h := newTestHandler(s)

	tests := []struct {
		tier       string
		wantStatus int
	}{
		{tier: "immediate", wantStatus: http.StatusOK},
		{tier: "1-2_years", wantStatus: http.StatusOK},
		{tier: "3-5_years", wantStatus: http.StatusOK},
		{tier: "more_than_5_years", wantStatus: http.StatusOK},
		{tier: "someday", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.tier, func(t *testing.T) {
			rec := serve(t, h, http.MethodPut, "/api/positions/P-001/successors/"+tt.tier,
				`{"officer_ids":["S1234567A","S7654321B"]}`, sessionCookie())
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCompetencies(t *testing.T) {
	s := authedServices()
	s.competency.list = func(context.Context) ([]models.HRCompetency, error) {
		return []models.HRCompetency{{CompetencyID: 1, CompetencyName: "Strategic HR", MaxPLLevel: 5}}, nil
	}
	s.competency.get = func(_ context.Context, id int64) (models.HRCompetency, error) {
		return models.HRCompetency{CompetencyID: id, CompetencyName: "Strategic HR", MaxPLLevel: 5}, nil
	}
	s.competency.create = func(_ context.Context, c models.HRCompetency) (models.HRCompetency, error) {
		assert.Zero(t, c.CompetencyID)
		c.CompetencyID = 10
		return c, nil
	}
	s.competency.update = func(_ context.Context, c models.HRCompetency) (models.HRCompetency, error) {
		assert.Equal(t, int64(3), c.CompetencyID)
		return c, nil
	}
	s.competency.remove = func(_ context.Context, id int64) error {
		return fmt.Errorf("%w: competency %d is assessed", store.ErrConstraintViolated, id)
	}
	h := newTestHandler(s)

	rec := serve(t, h, http.MethodGet, "/api/competencies", "", sessionCookie())
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, h, http.MethodGet, "/api/competencies/1", "", sessionCookie())
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, h, http.MethodPost, "/api/competencies", `{"competency_id":99,"competency_name":"Analytics","max_pl_level":4}`, sessionCookie())
	require.Equal(t, http.StatusCreated, rec.Code)
	var created models.HRCompetency
	decodeData(t, rec.Body.Bytes(), &created)
	assert.Equal(t, int64(10), created.CompetencyID)

	rec = serve(t, h, http.MethodPut, "/api/competencies/3", `{"competency_name":"Analytics","max_pl_level":4}`, sessionCookie())
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, h, http.MethodDelete, "/api/competencies/3", "", sessionCookie())
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeEnvelope(t, rec.Body.Bytes()).Error, "competency 3 is assessed")
}

func TestStints(t *testing.T) {
	s := authedServices()
	s.stints.list = func(context.Context) ([]models.OOAStint, error) {
		return nil, store.ErrExecutingQuery
	}
	s.stints.get = func(_ context.Context, id int64) (models.OOAStint, error) {
		return models.OOAStint{}, store.ErrNotFound
	}
	s.stints.create = func(_ context.Context, stint models.OOAStint) (models.OOAStint, error) {
		stint.StintID = 4
		return stint, nil
	}
	s.stints.update = func(_ context.Context, stint models.OOAStint) (models.OOAStint, error) {
		assert.Equal(t, int64(4), stint.StintID)
		return stint, nil
	}
	s.stints.remove = func(context.Context, int64) error { return nil }
	h := newTestHandler(s)

	rec := serve(t, h, http.MethodGet, "/api/stints", "", sessionCookie())
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal server error", decodeEnvelope(t, rec.Body.Bytes()).Error)

	rec = serve(t, h, http.MethodGet, "/api/stints/4", "", sessionCookie())
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(t, h, http.MethodPost, "/api/stints", `{"stint_name":"PMO","stint_type":"OOA","year":2025}`, sessionCookie())
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = serve(t, h, http.MethodPut, "/api/stints/4", `{"stint_name":"PMO","stint_type":"OOA","year":2026}`, sessionCookie())
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, h, http.MethodDelete, "/api/stints/4", "", sessionCookie())
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestHealthAndVersion(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		rec := serve(t, newTestHandler(newTestServices()), http.MethodGet, "/api/health", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok","database":"up"}`, rec.Body.String())
	})

	t.Run("database down", func(t *testing.T) {
		s := newTestServices()
		s.health.err = fmt.Errorf("database is unreachable: %w", context.DeadlineExceeded)

		rec := serve(t, newTestHandler(s), http.MethodGet, "/api/health", "")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.JSONEq(t, `{"status":"unavailable","database":"down"}`, rec.Body.String())
	})

	t.Run("version", func(t *testing.T) {
		rec := serve(t, newTestHandler(newTestServices()), http.MethodGet, "/api/version/", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
		assert.Equal(t, "v1.0.0", rec.Body.String())
	})
}
