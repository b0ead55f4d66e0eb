package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/chronos/internal/logger"
	"github.com/MKhiriev/chronos/models"
)

// officerRepository is the PostgreSQL-backed [OfficerRepository].
type officerRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewOfficerRepository constructs an [OfficerRepository] on db.
func NewOfficerRepository(db *DB, logger *logger.Logger) OfficerRepository {
	logger.Debug().Msg("creating officer repository")
	return &officerRepository{
		db:     db,
		logger: logger,
	}
}

func (r *officerRepository) ListOfficers(ctx context.Context) ([]models.Officer, error) {
	log := logger.FromContext(ctx)

	officers := make([]models.Officer, 0, 50)
	err := r.db.queryRows(ctx, r.db, buildListOfficersQuery, func(rows *sql.Rows) error {
		var o models.Officer
		if err := rows.Scan(officerDest(&o)...); err != nil {
			return err
		}
		officers = append(officers, o)
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*officerRepository.ListOfficers").Msg("error listing officers")
		return nil, err
	}

	return officers, nil
}

func (r *officerRepository) GetOfficer(ctx context.Context, officerID string) (models.Officer, error) {
	var o models.Officer
	err := r.db.queryRow(ctx, r.db, func() (string, []any, error) {
		return buildGetOfficerQuery(officerID)
	}, officerDest(&o)...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*officerRepository.GetOfficer").
			Str("officer_id", officerID).
			Msg("error getting officer")
		return models.Officer{}, err
	}

	return o, nil
}

func (r *officerRepository) CreateOfficer(ctx context.Context, officer models.Officer) (models.Officer, error) {
	var created models.Officer
	err := r.db.queryRow(ctx, r.db, func() (string, []any, error) {
		return buildInsertOfficerQuery(officer)
	}, officerDest(&created)...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*officerRepository.CreateOfficer").
			Str("officer_id", officer.OfficerID).
			Msg("error creating officer")
		return models.Officer{}, err
	}

	return created, nil
}

func (r *officerRepository) UpdateOfficer(ctx context.Context, update models.OfficerUpdate) (models.Officer, error) {
	var updated models.Officer
	err := r.db.queryRow(ctx, r.db, func() (string, []any, error) {
		return buildUpdateOfficerQuery(update)
	}, officerDest(&updated)...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*officerRepository.UpdateOfficer").
			Str("officer_id", update.OfficerID).
			Msg("error updating officer")
		return models.Officer{}, err
	}

	return updated, nil
}

// DeleteOfficer removes the officer. Competencies, stints, remarks and
// successor rows cascade; positions held are left without an incumbent.
func (r *officerRepository) DeleteOfficer(ctx context.Context, officerID string) error {
	return deleteOne(ctx, r.db, "*officerRepository.DeleteOfficer", func() (string, []any, error) {
		return buildDeleteOfficerQuery(officerID)
	})
}

func (r *officerRepository) ListOfficerCompetencies(ctx context.Context, officerID string) ([]models.OfficerCompetency, error) {
	competencies := make([]models.OfficerCompetency, 0, 10)
	err := r.db.queryRows(ctx, r.db, func() (string, []any, error) {
		return buildListOfficerCompetenciesQuery(officerID)
	}, func(rows *sql.Rows) error {
		var c models.OfficerCompetency
		if err := rows.Scan(&c.OfficerID, &c.CompetencyID, &c.CompetencyName, &c.MaxPLLevel, &c.AchievedPLLevel, &c.AssessedAt); err != nil {
			return err
		}
		competencies = append(competencies, c)
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*officerRepository.ListOfficerCompetencies").
			Str("officer_id", officerID).
			Msg("error listing officer competencies")
		return nil, err
	}

	return competencies, nil
}

// UpsertOfficerCompetency records (or re-records) an assessment stamped
// with the current time.
func (r *officerRepository) UpsertOfficerCompetency(ctx context.Context, competency models.OfficerCompetency) (models.OfficerCompetency, error) {
	saved := competency
	err := r.db.queryRow(ctx, r.db, func() (string, []any, error) {
		return buildUpsertOfficerCompetencyQuery(competency, time.Now().UTC())
	}, &saved.OfficerID, &saved.CompetencyID, &saved.AchievedPLLevel, &saved.AssessedAt)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*officerRepository.UpsertOfficerCompetency").
			Str("officer_id", competency.OfficerID).
			Int64("competency_id", competency.CompetencyID).
			Msg("error saving officer competency")
		return models.OfficerCompetency{}, err
	}

	return saved, nil
}

func (r *officerRepository) DeleteOfficerCompetency(ctx context.Context, officerID string, competencyID int64) error {
	return deleteOne(ctx, r.db, "*officerRepository.DeleteOfficerCompetency", func() (string, []any, error) {
		return buildDeleteOfficerCompetencyQuery(officerID, competencyID)
	})
}

func (r *officerRepository) ListOfficerStints(ctx context.Context, officerID string) ([]models.OfficerStint, error) {
	stints := make([]models.OfficerStint, 0, 10)
	err := r.db.queryRows(ctx, r.db, func() (string, []any, error) {
		return buildListOfficerStintsQuery(officerID)
	}, func(rows *sql.Rows) error {
		var s models.OfficerStint
		if err := rows.Scan(&s.OfficerID, &s.StintID, &s.StintName, &s.StintType, &s.Year, &s.CompletionYear); err != nil {
			return err
		}
		stints = append(stints, s)
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*officerRepository.ListOfficerStints").
			Str("officer_id", officerID).
			Msg("error listing officer stints")
		return nil, err
	}

	return stints, nil
}

func (r *officerRepository) UpsertOfficerStint(ctx context.Context, stint models.OfficerStint) (models.OfficerStint, error) {
	saved := stint
	err := r.db.queryRow(ctx, r.db, func() (string, []any, error) {
		return buildUpsertOfficerStintQuery(stint)
	}, &saved.OfficerID, &saved.StintID, &saved.CompletionYear)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*officerRepository.UpsertOfficerStint").
			Str("officer_id", stint.OfficerID).
			Int64("stint_id", stint.StintID).
			Msg("error saving officer stint")
		return models.OfficerStint{}, err
	}

	return saved, nil
}

func (r *officerRepository) DeleteOfficerStint(ctx context.Context, officerID string, stintID int64) error {
	return deleteOne(ctx, r.db, "*officerRepository.DeleteOfficerStint", func() (string, []any, error) {
		return buildDeleteOfficerStintQuery(officerID, stintID)
	})
}

func (r *officerRepository) ListIncumbentPositions(ctx context.Context, officerID string) ([]models.Position, error) {
	positions := make([]models.Position, 0, 2)
	err := r.db.queryRows(ctx, r.db, func() (string, []any, error) {
		return buildListIncumbentPositionsQuery(officerID)
	}, func(rows *sql.Rows) error {
		var p models.Position
		if err := rows.Scan(positionDest(&p)...); err != nil {
			return err
		}
		positions = append(positions, p)
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*officerRepository.ListIncumbentPositions").
			Str("officer_id", officerID).
			Msg("error listing incumbent positions")
		return nil, err
	}

	return positions, nil
}

func (r *officerRepository) ListSuccessorPositions(ctx context.Context, officerID string) ([]models.SuccessorPosition, error) {
	positions := make([]models.SuccessorPosition, 0, 4)
	err := r.db.queryRows(ctx, r.db, func() (string, []any, error) {
		return buildListSuccessorPositionsQuery(officerID)
	}, func(rows *sql.Rows) error {
		var p models.SuccessorPosition
		if err := rows.Scan(&p.PositionID, &p.PositionTitle, &p.Agency, &p.SuccessionType); err != nil {
			return err
		}
		positions = append(positions, p)
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*officerRepository.ListSuccessorPositions").
			Str("officer_id", officerID).
			Msg("error listing successor positions")
		return nil, err
	}

	return positions, nil
}

// deleteOne executes a DELETE and turns zero affected rows into [ErrNotFound].
func deleteOne(ctx context.Context, db *DB, funcName string, build func() (string, []any, error)) error {
	affected, err := db.exec(ctx, db, build)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("error deleting record")
		return err
	}

	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func officerDest(o *models.Officer) []any {
	return []any{&o.OfficerID, &o.Name, &o.Grade, &o.MXEquivalentGrade, &o.IHRPCertification, &o.HRLP, &o.CreatedAt, &o.UpdatedAt}
}
