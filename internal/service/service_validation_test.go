package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/chronos/internal/validators"
	"github.com/MKhiriev/chronos/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubOfficerService records whether the decorated call reached it.
type stubOfficerService struct {
	OfficerService
	called bool
}

func (s *stubOfficerService) CreateOfficer(_ context.Context, officer models.Officer) (models.Officer, error) {
	s.called = true
	return officer, nil
}

func (s *stubOfficerService) UpdateOfficer(_ context.Context, update models.OfficerUpdate) (models.Officer, error) {
	s.called = true
	return models.Officer{OfficerID: update.OfficerID}, nil
}

func (s *stubOfficerService) GetOfficer(_ context.Context, officerID string) (models.OfficerDetail, error) {
	s.called = true
	return models.OfficerDetail{Officer: models.Officer{OfficerID: officerID}}, nil
}

func (s *stubOfficerService) SetOfficerCompetency(_ context.Context, c models.OfficerCompetency) (models.OfficerCompetency, error) {
	s.called = true
	return c, nil
}

func (s *stubOfficerService) RemoveOfficerStint(context.Context, string, int64) error {
	s.called = true
	return nil
}

func TestOfficerValidationService(t *testing.T) {
	name := "   "

	tests := []struct {
		name    string
		call    func(svc OfficerService) error
		wantErr error
	}{
		{
			name: "create valid",
			call: func(svc OfficerService) error {
				_, err := svc.CreateOfficer(context.Background(), models.Officer{OfficerID: "OFF1", Name: "Jane"})
				return err
			},
		},
		{
			name: "create without name",
			call: func(svc OfficerService) error {
				_, err := svc.CreateOfficer(context.Background(), models.Officer{OfficerID: "OFF1"})
				return err
			},
			wantErr: validators.ErrInvalidOfficerName,
		},
		{
			name: "update without fields",
			call: func(svc OfficerService) error {
				_, err := svc.UpdateOfficer(context.Background(), models.OfficerUpdate{OfficerID: "OFF1"})
				return err
			},
			wantErr: validators.ErrNoFieldsToUpdate,
		},
		{
			name: "update blank name",
			call: func(svc OfficerService) error {
				_, err := svc.UpdateOfficer(context.Background(), models.OfficerUpdate{OfficerID: "OFF1", Name: &name})
				return err
			},
			wantErr: validators.ErrInvalidOfficerName,
		},
		{
			name: "get blank id",
			call: func(svc OfficerService) error {
				_, err := svc.GetOfficer(context.Background(), " ")
				return err
			},
			wantErr: validators.ErrInvalidOfficerID,
		},
		{
			name: "competency level out of range",
			call: func(svc OfficerService) error {
				_, err := svc.SetOfficerCompetency(context.Background(),
					models.OfficerCompetency{OfficerID: "OFF1", CompetencyID: 1, AchievedPLLevel: 6})
				return err
			},
			wantErr: validators.ErrInvalidAchievedLevel,
		},
		{
			name: "remove stint with bad id",
			call: func(svc OfficerService) error {
				return svc.RemoveOfficerStint(context.Background(), "OFF1", 0)
			},
			wantErr: validators.ErrInvalidStintID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner := &stubOfficerService{}
			svc := NewOfficerValidationService().Wrap(inner)

			err := tt.call(svc)
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.True(t, inner.called)
				return
			}

			assert.ErrorIs(t, err, ErrValidation)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.False(t, inner.called, "invalid input must not reach the inner service")
		})
	}
}

type stubPositionService struct {
	PositionService
	called bool
}

func (s *stubPositionService) CreatePosition(_ context.Context, r models.CreatePositionRequest) (models.PositionWithSuccessors, error) {
	s.called = true
	return models.PositionWithSuccessors{Position: r.Position}, nil
}

func (s *stubPositionService) SetSuccessors(_ context.Context, id string, _ models.SuccessionType, _ []string) (models.PositionWithSuccessors, error) {
	s.called = true
	return models.PositionWithSuccessors{Position: models.Position{PositionID: id}}, nil
}

func TestPositionValidationService(t *testing.T) {
	t.Run("create valid", func(t *testing.T) {
		inner := &stubPositionService{}
		svc := NewPositionValidationService().Wrap(inner)

		_, err := svc.CreatePosition(context.Background(), models.CreatePositionRequest{
			Position: models.Position{PositionID: "POS1", PositionTitle: "Director"},
		})
		require.NoError(t, err)
		assert.True(t, inner.called)
	})

	t.Run("create without title", func(t *testing.T) {
		inner := &stubPositionService{}
		svc := NewPositionValidationService().Wrap(inner)

		_, err := svc.CreatePosition(context.Background(), models.CreatePositionRequest{
			Position: models.Position{PositionID: "POS1"},
		})
		assert.ErrorIs(t, err, validators.ErrInvalidPositionTitle)
		assert.False(t, inner.called)
	})

	t.Run("blank successor id", func(t *testing.T) {
		inner := &stubPositionService{}
		svc := NewPositionValidationService().Wrap(inner)

		_, err := svc.SetSuccessors(context.Background(), "POS1", models.SuccessionImmediate, []string{"OFF1", ""})
		assert.ErrorIs(t, err, ErrValidation)
		assert.False(t, inner.called)
	})

	t.Run("empty successor list is allowed", func(t *testing.T) {
		inner := &stubPositionService{}
		svc := NewPositionValidationService().Wrap(inner)

		_, err := svc.SetSuccessors(context.Background(), "POS1", models.SuccessionImmediate, nil)
		require.NoError(t, err)
		assert.True(t, inner.called)
	})
}

type stubCatalogueService struct {
	CompetencyService
	StintService
	RemarkService
	called bool
}

func (s *stubCatalogueService) CreateCompetency(_ context.Context, c models.HRCompetency) (models.HRCompetency, error) {
	s.called = true
	return c, nil
}

func (s *stubCatalogueService) UpdateStint(_ context.Context, st models.OOAStint) (models.OOAStint, error) {
	s.called = true
	return st, nil
}

func (s *stubCatalogueService) AddRemark(_ context.Context, r models.OfficerRemark) (models.OfficerRemark, error) {
	s.called = true
	return r, nil
}

func TestCatalogueValidationServices(t *testing.T) {
	ctx := context.Background()

	t.Run("competency max level out of range", func(t *testing.T) {
		inner := &stubCatalogueService{}
		_, err := NewCompetencyValidationService().Wrap(inner).
			CreateCompetency(ctx, models.HRCompetency{CompetencyName: "Coaching", MaxPLLevel: 0})
		assert.ErrorIs(t, err, validators.ErrInvalidMaxPLLevel)
		assert.False(t, inner.called)
	})

	t.Run("stint update needs id", func(t *testing.T) {
		inner := &stubCatalogueService{}
		_, err := NewStintValidationService().Wrap(inner).
			UpdateStint(ctx, models.OOAStint{StintName: "Posting"})
		assert.ErrorIs(t, err, validators.ErrInvalidStintID)
		assert.False(t, inner.called)
	})

	t.Run("stint update valid", func(t *testing.T) {
		inner := &stubCatalogueService{}
		_, err := NewStintValidationService().Wrap(inner).
			UpdateStint(ctx, models.OOAStint{StintID: 1, StintName: "Posting", Year: 2020})
		require.NoError(t, err)
		assert.True(t, inner.called)
	})

	t.Run("remark with bad date", func(t *testing.T) {
		inner := &stubCatalogueService{}
		_, err := NewRemarkValidationService().Wrap(inner).
			AddRemark(ctx, models.OfficerRemark{OfficerID: "OFF1", RemarkDate: "01/06/2025", Details: "x"})
		assert.ErrorIs(t, err, validators.ErrInvalidRemarkDate)
		assert.False(t, inner.called)
	})

	t.Run("remark valid", func(t *testing.T) {
		inner := &stubCatalogueService{}
		_, err := NewRemarkValidationService().Wrap(inner).
			AddRemark(ctx, models.OfficerRemark{OfficerID: "OFF1", RemarkDate: "2025-06-01", Details: "Acting head"})
		require.NoError(t, err)
		assert.True(t, inner.called)
	})
}
