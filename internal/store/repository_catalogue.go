package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/chronos/internal/logger"
	"github.com/MKhiriev/chronos/models"
)

// competencyRepository is the PostgreSQL-backed [CompetencyRepository].
type competencyRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCompetencyRepository constructs a [CompetencyRepository] on db.
func NewCompetencyRepository(db *DB, logger *logger.Logger) CompetencyRepository {
	logger.Debug().Msg("creating competency repository")
	return &competencyRepository{
		db:     db,
		logger: logger,
	}
}

func (r *competencyRepository) ListCompetencies(ctx context.Context) ([]models.HRCompetency, error) {
	competencies := make([]models.HRCompetency, 0, 20)
	err := r.db.queryRows(ctx, r.db, buildListCompetenciesQuery, func(rows *sql.Rows) error {
		var c models.HRCompetency
		if err := rows.Scan(competencyDest(&c)...); err != nil {
			return err
		}
		competencies = append(competencies, c)
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*competencyRepository.ListCompetencies").Msg("error listing competencies")
		return nil, err
	}

	return competencies, nil
}

func (r *competencyRepository) GetCompetency(ctx context.Context, competencyID int64) (models.HRCompetency, error) {
	var c models.HRCompetency
	if err := r.db.queryRow(ctx, r.db, func() (string, []any, error) {
		return buildGetCompetencyQuery(competencyID)
	}, competencyDest(&c)...); err != nil {
		return models.HRCompetency{}, err
	}

	return c, nil
}

func (r *competencyRepository) CreateCompetency(ctx context.Context, competency models.HRCompetency) (models.HRCompetency, error) {
	var created models.HRCompetency
	if err := r.db.queryRow(ctx, r.db, func() (string, []any, error) {
		return buildInsertCompetencyQuery(competency)
	}, competencyDest(&created)...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*competencyRepository.CreateCompetency").
			Str("competency_name", competency.CompetencyName).
			Msg("error creating competency")
		return models.HRCompetency{}, err
	}

	return created, nil
}

func (r *competencyRepository) UpdateCompetency(ctx context.Context, competency models.HRCompetency) (models.HRCompetency, error) {
	var updated models.HRCompetency
	if err := r.db.queryRow(ctx, r.db, func() (string, []any, error) {
		return buildUpdateCompetencyQuery(competency)
	}, competencyDest(&updated)...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*competencyRepository.UpdateCompetency").
			Int64("competency_id", competency.CompetencyID).
			Msg("error updating competency")
		return models.HRCompetency{}, err
	}

	return updated, nil
}

func (r *competencyRepository) DeleteCompetency(ctx context.Context, competencyID int64) error {
	return deleteOne(ctx, r.db, "*competencyRepository.DeleteCompetency", func() (string, []any, error) {
		return buildDeleteCompetencyQuery(competencyID)
	})
}

func competencyDest(c *models.HRCompetency) []any {
	return []any{&c.CompetencyID, &c.CompetencyName, &c.Description, &c.MaxPLLevel}
}

// stintRepository is the PostgreSQL-backed [StintRepository].
type stintRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewStintRepository constructs a [StintRepository] on db.
func NewStintRepository(db *DB, logger *logger.Logger) StintRepository {
	logger.Debug().Msg("creating stint repository")
	return &stintRepository{
		db:     db,
		logger: logger,
	}
}

func (r *stintRepository) ListStints(ctx context.Context) ([]models.OOAStint, error) {
	stints := make([]models.OOAStint, 0, 20)
	err := r.db.queryRows(ctx, r.db, buildListStintsQuery, func(rows *sql.Rows) error {
		var s models.OOAStint
		if err := rows.Scan(stintDest(&s)...); err != nil {
			return err
		}
		stints = append(stints, s)
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*stintRepository.ListStints").Msg("error listing stints")
		return nil, err
	}

	return stints, nil
}

func (r *stintRepository) GetStint(ctx context.Context, stintID int64) (models.OOAStint, error) {
	var s models.OOAStint
	if err := r.db.queryRow(ctx, r.db, func() (string, []any, error) {
		return buildGetStintQuery(stintID)
	}, stintDest(&s)...); err != nil {
		return models.OOAStint{}, err
	}

	return s, nil
}

func (r *stintRepository) CreateStint(ctx context.Context, stint models.OOAStint) (models.OOAStint, error) {
	var created models.OOAStint
	if err := r.db.queryRow(ctx, r.db, func() (string, []any, error) {
		return buildInsertStintQuery(stint)
	}, stintDest(&created)...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*stintRepository.CreateStint").
			Str("stint_name", stint.StintName).
			Msg("error creating stint")
		return models.OOAStint{}, err
	}

	return created, nil
}

func (r *stintRepository) UpdateStint(ctx context.Context, stint models.OOAStint) (models.OOAStint, error) {
	var updated models.OOAStint
	if err := r.db.queryRow(ctx, r.db, func() (string, []any, error) {
		return buildUpdateStintQuery(stint)
	}, stintDest(&updated)...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*stintRepository.UpdateStint").
			Int64("stint_id", stint.StintID).
			Msg("error updating stint")
		return models.OOAStint{}, err
	}

	return updated, nil
}

func (r *stintRepository) DeleteStint(ctx context.Context, stintID int64) error {
	return deleteOne(ctx, r.db, "*stintRepository.DeleteStint", func() (string, []any, error) {
		return buildDeleteStintQuery(stintID)
	})
}

func stintDest(s *models.OOAStint) []any {
	return []any{&s.StintID, &s.StintName, &s.StintType, &s.Year}
}
