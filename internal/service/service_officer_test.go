package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/chronos/internal/logger"
	"github.com/MKhiriev/chronos/internal/mock"
	"github.com/MKhiriev/chronos/internal/store"
	"github.com/MKhiriev/chronos/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type officerMocks struct {
	officers     *mock.MockOfficerRepository
	competencies *mock.MockCompetencyRepository
	stints       *mock.MockStintRepository
	remarks      *mock.MockRemarkRepository
}

func newTestOfficerSvc(t *testing.T) (OfficerService, officerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := officerMocks{
		officers:     mock.NewMockOfficerRepository(ctrl),
		competencies: mock.NewMockCompetencyRepository(ctrl),
		stints:       mock.NewMockStintRepository(ctrl),
		remarks:      mock.NewMockRemarkRepository(ctrl),
	}
	return NewOfficerService(m.officers, m.competencies, m.stints, m.remarks, logger.Nop()), m
}

func TestOfficerService_GetOfficer_Aggregates(t *testing.T) {
	svc, m := newTestOfficerSvc(t)
	ctx := context.Background()

	officer := models.Officer{OfficerID: "OFF1", Name: "Jane Tan"}
	competencies := []models.OfficerCompetency{{OfficerID: "OFF1", CompetencyID: 1, AchievedPLLevel: 3}}
	stints := []models.OfficerStint{{OfficerID: "OFF1", StintID: 2, CompletionYear: 2022}}
	remarks := []models.OfficerRemark{{RemarkID: 5, OfficerID: "OFF1", Details: "Led the audit"}}
	held := []models.Position{{PositionID: "POS1"}}
	lined := []models.SuccessorPosition{{PositionID: "POS2", SuccessionType: models.SuccessionImmediate}}

	m.officers.EXPECT().GetOfficer(ctx, "OFF1").Return(officer, nil)
	m.officers.EXPECT().ListOfficerCompetencies(ctx, "OFF1").Return(competencies, nil)
	m.officers.EXPECT().ListOfficerStints(ctx, "OFF1").Return(stints, nil)
	m.remarks.EXPECT().ListRemarks(ctx, "OFF1").Return(remarks, nil)
	m.officers.EXPECT().ListIncumbentPositions(ctx, "OFF1").Return(held, nil)
	m.officers.EXPECT().ListSuccessorPositions(ctx, "OFF1").Return(lined, nil)

	detail, err := svc.GetOfficer(ctx, "OFF1")
	require.NoError(t, err)
	assert.Equal(t, models.OfficerDetail{
		Officer:      officer,
		Competencies: competencies,
		Stints:       stints,
		Remarks:      remarks,
		IncumbentOf:  held,
		SuccessorFor: lined,
	}, detail)
}

func TestOfficerService_GetOfficer_NotFound(t *testing.T) {
	svc, m := newTestOfficerSvc(t)
	ctx := context.Background()

	m.officers.EXPECT().GetOfficer(ctx, "OFF404").Return(models.Officer{}, store.ErrNotFound)

	_, err := svc.GetOfficer(ctx, "OFF404")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestOfficerService_GetOfficer_PartFails(t *testing.T) {
	svc, m := newTestOfficerSvc(t)
	ctx := context.Background()

	dbErr := errors.New("statement timeout")
	m.officers.EXPECT().GetOfficer(ctx, "OFF1").Return(models.Officer{OfficerID: "OFF1"}, nil)
	m.officers.EXPECT().ListOfficerCompetencies(ctx, "OFF1").Return(nil, dbErr)

	_, err := svc.GetOfficer(ctx, "OFF1")
	assert.ErrorIs(t, err, dbErr)
}

func TestOfficerService_CRUD(t *testing.T) {
	svc, m := newTestOfficerSvc(t)
	ctx := context.Background()

	officer := models.Officer{OfficerID: "OFF1", Name: "Jane Tan"}
	grade := "MX9"
	update := models.OfficerUpdate{OfficerID: "OFF1", Grade: &grade}

	m.officers.EXPECT().ListOfficers(ctx).Return([]models.Officer{officer}, nil)
	m.officers.EXPECT().CreateOfficer(ctx, officer).Return(officer, nil)
	m.officers.EXPECT().UpdateOfficer(ctx, update).Return(models.Officer{OfficerID: "OFF1", Grade: grade}, nil)
	m.officers.EXPECT().DeleteOfficer(ctx, "OFF1").Return(nil)

	list, err := svc.ListOfficers(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	created, err := svc.CreateOfficer(ctx, officer)
	require.NoError(t, err)
	assert.Equal(t, officer, created)

	updated, err := svc.UpdateOfficer(ctx, update)
	require.NoError(t, err)
	assert.Equal(t, grade, updated.Grade)

	require.NoError(t, svc.DeleteOfficer(ctx, "OFF1"))
}

func TestOfficerService_CreateOfficer_Duplicate(t *testing.T) {
	svc, m := newTestOfficerSvc(t)
	ctx := context.Background()

	m.officers.EXPECT().CreateOfficer(ctx, gomock.Any()).Return(models.Officer{}, store.ErrAlreadyExists)

	_, err := svc.CreateOfficer(ctx, models.Officer{OfficerID: "OFF1", Name: "Jane"})
	assert.ErrorIs(t, err, store.ErrAlreadyExists)
}

// ── Competencies ─────────────────────────────────────────────────────────────

func TestOfficerService_SetOfficerCompetency_Success(t *testing.T) {
	svc, m := newTestOfficerSvc(t)
	ctx := context.Background()

	input := models.OfficerCompetency{OfficerID: "OFF1", CompetencyID: 4, AchievedPLLevel: 3}

	gomock.InOrder(
		m.officers.EXPECT().GetOfficer(ctx, "OFF1").Return(models.Officer{OfficerID: "OFF1"}, nil),
		m.competencies.EXPECT().GetCompetency(ctx, int64(4)).
			Return(models.HRCompetency{CompetencyID: 4, CompetencyName: "Strategic HR", MaxPLLevel: 4}, nil),
		m.officers.EXPECT().UpsertOfficerCompetency(ctx, input).Return(input, nil),
	)

	got, err := svc.SetOfficerCompetency(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "Strategic HR", got.CompetencyName)
	assert.Equal(t, 4, got.MaxPLLevel)
	assert.Equal(t, 3, got.AchievedPLLevel)
}

func TestOfficerService_SetOfficerCompetency_ExceedsMax(t *testing.T) {
	svc, m := newTestOfficerSvc(t)
	ctx := context.Background()

	m.officers.EXPECT().GetOfficer(ctx, "OFF1").Return(models.Officer{OfficerID: "OFF1"}, nil)
	m.competencies.EXPECT().GetCompetency(ctx, int64(4)).Return(models.HRCompetency{CompetencyID: 4, MaxPLLevel: 2}, nil)

	_, err := svc.SetOfficerCompetency(ctx, models.OfficerCompetency{OfficerID: "OFF1", CompetencyID: 4, AchievedPLLevel: 3})
	assert.ErrorIs(t, err, ErrLevelExceedsMax)
}

func TestOfficerService_SetOfficerCompetency_UnknownCompetency(t *testing.T) {
	svc, m := newTestOfficerSvc(t)
	ctx := context.Background()

	m.officers.EXPECT().GetOfficer(ctx, "OFF1").Return(models.Officer{OfficerID: "OFF1"}, nil)
	m.competencies.EXPECT().GetCompetency(ctx, int64(99)).Return(models.HRCompetency{}, store.ErrNotFound)

	_, err := svc.SetOfficerCompetency(ctx, models.OfficerCompetency{OfficerID: "OFF1", CompetencyID: 99, AchievedPLLevel: 1})
	assert.ErrorIs(t, err, store.ErrReferenceNotFound)
	assert.NotErrorIs(t, err, store.ErrNotFound)
}

func TestOfficerService_SetOfficerCompetency_UnknownOfficer(t *testing.T) {
	svc, m := newTestOfficerSvc(t)
	ctx := context.Background()

	m.officers.EXPECT().GetOfficer(ctx, "OFF404").Return(models.Officer{}, store.ErrNotFound)

	_, err := svc.SetOfficerCompetency(ctx, models.OfficerCompetency{OfficerID: "OFF404", CompetencyID: 1, AchievedPLLevel: 1})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestOfficerService_RemoveOfficerCompetency(t *testing.T) {
	svc, m := newTestOfficerSvc(t)
	ctx := context.Background()

	m.officers.EXPECT().DeleteOfficerCompetency(ctx, "OFF1", int64(4)).Return(store.ErrNotFound)

	err := svc.RemoveOfficerCompetency(ctx, "OFF1", 4)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

// ── Stints ───────────────────────────────────────────────────────────────────

func TestOfficerService_AddOfficerStint_Success(t *testing.T) {
	svc, m := newTestOfficerSvc(t)
	ctx := context.Background()

	input := models.OfficerStint{OfficerID: "OFF1", StintID: 2, CompletionYear: 2023}

	m.officers.EXPECT().GetOfficer(ctx, "OFF1").Return(models.Officer{OfficerID: "OFF1"}, nil)
	m.stints.EXPECT().GetStint(ctx, int64(2)).
		Return(models.OOAStint{StintID: 2, StintName: "MOH secondment", StintType: "secondment", Year: 2022}, nil)
	m.officers.EXPECT().UpsertOfficerStint(ctx, input).Return(input, nil)

	got, err := svc.AddOfficerStint(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, models.OfficerStint{
		OfficerID:      "OFF1",
		StintID:        2,
		StintName:      "MOH secondment",
		StintType:      "secondment",
		Year:           2022,
		CompletionYear: 2023,
	}, got)
}

func TestOfficerService_AddOfficerStint_UnknownStint(t *testing.T) {
	svc, m := newTestOfficerSvc(t)
	ctx := context.Background()

	m.officers.EXPECT().GetOfficer(ctx, "OFF1").Return(models.Officer{OfficerID: "OFF1"}, nil)
	m.stints.EXPECT().GetStint(ctx, int64(9)).Return(models.OOAStint{}, store.ErrNotFound)

	_, err := svc.AddOfficerStint(ctx, models.OfficerStint{OfficerID: "OFF1", StintID: 9})
	assert.ErrorIs(t, err, store.ErrReferenceNotFound)
}

func TestOfficerService_RemoveOfficerStint(t *testing.T) {
	svc, m := newTestOfficerSvc(t)
	ctx := context.Background()

	m.officers.EXPECT().DeleteOfficerStint(ctx, "OFF1", int64(2)).Return(nil)

	require.NoError(t, svc.RemoveOfficerStint(ctx, "OFF1", 2))
}
