package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/chronos/internal/logger"
	"github.com/MKhiriev/chronos/models"
)

// positionRepository is the PostgreSQL-backed [PositionRepository].
type positionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewPositionRepository constructs a [PositionRepository] on db.
func NewPositionRepository(db *DB, logger *logger.Logger) PositionRepository {
	logger.Debug().Msg("creating position repository")
	return &positionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *positionRepository) ListPositions(ctx context.Context) ([]models.PositionWithSuccessors, error) {
	positions := make([]models.PositionWithSuccessors, 0, 50)
	err := r.db.queryRows(ctx, r.db, buildListPositionsQuery, func(rows *sql.Rows) error {
		p, err := scanPositionWithIncumbent(rows)
		if err != nil {
			return err
		}
		positions = append(positions, p)
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*positionRepository.ListPositions").Msg("error listing positions")
		return nil, err
	}

	return positions, nil
}

func (r *positionRepository) GetPosition(ctx context.Context, positionID string) (models.PositionWithSuccessors, error) {
	query, args, err := buildGetPositionQuery(positionID)
	if err != nil {
		return models.PositionWithSuccessors{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	p, err := scanPositionWithIncumbent(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PositionWithSuccessors{}, ErrNotFound
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "*positionRepository.GetPosition").
			Str("position_id", positionID).
			Msg("error getting position")
		return models.PositionWithSuccessors{}, r.db.wrapError(ctx, ErrExecutingQuery, err)
	}

	return p, nil
}

func (r *positionRepository) CreatePosition(ctx context.Context, position models.Position) (models.Position, error) {
	var created models.Position
	err := r.db.queryRow(ctx, r.db, func() (string, []any, error) {
		return buildInsertPositionQuery(position)
	}, positionDest(&created)...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*positionRepository.CreatePosition").
			Str("position_id", position.PositionID).
			Msg("error creating position")
		return models.Position{}, err
	}

	return created, nil
}

func (r *positionRepository) UpdatePosition(ctx context.Context, update models.PositionUpdate) (models.Position, error) {
	var updated models.Position
	err := r.db.queryRow(ctx, r.db, func() (string, []any, error) {
		return buildUpdatePositionQuery(update)
	}, positionDest(&updated)...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*positionRepository.UpdatePosition").
			Str("position_id", update.PositionID).
			Msg("error updating position")
		return models.Position{}, err
	}

	return updated, nil
}

func (r *positionRepository) DeletePosition(ctx context.Context, positionID string) error {
	return deleteOne(ctx, r.db, "*positionRepository.DeletePosition", func() (string, []any, error) {
		return buildDeletePositionQuery(positionID)
	})
}

func (r *positionRepository) ListSuccessorLinks(ctx context.Context, positionIDs ...string) ([]models.SuccessorLink, error) {
	links := make([]models.SuccessorLink, 0, 4*len(positionIDs)+8)
	err := r.db.queryRows(ctx, r.db, func() (string, []any, error) {
		return buildListSuccessorLinksQuery(positionIDs)
	}, func(rows *sql.Rows) error {
		var l models.SuccessorLink
		if err := rows.Scan(&l.PositionID, &l.SuccessionType, &l.Successor.OfficerID, &l.Successor.Name, &l.Successor.Grade); err != nil {
			return err
		}
		links = append(links, l)
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*positionRepository.ListSuccessorLinks").
			Int("positions_count", len(positionIDs)).
			Msg("error listing successor links")
		return nil, err
	}

	return links, nil
}

// ReplaceSuccessors deletes the tier and inserts officerIDs in their given
// order inside one transaction. The position row is locked first, so
// concurrent replacements of the same position serialise and a missing
// position yields [ErrNotFound] without touching any row.
func (r *positionRepository) ReplaceSuccessors(ctx context.Context, positionID string, tier models.SuccessionType, officerIDs []string) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "*positionRepository.ReplaceSuccessors").
			Str("position_id", positionID).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var lockedID string
	if err := r.db.queryRow(ctx, tx, func() (string, []any, error) {
		return buildLockPositionQuery(positionID)
	}, &lockedID); err != nil {
		log.Err(err).
			Str("func", "*positionRepository.ReplaceSuccessors").
			Str("position_id", positionID).
			Msg("failed to lock position")
		return err
	}

	removed, err := r.db.exec(ctx, tx, func() (string, []any, error) {
		return buildDeleteSuccessorTierQuery(positionID, tier)
	})
	if err != nil {
		log.Err(err).
			Str("func", "*positionRepository.ReplaceSuccessors").
			Str("position_id", positionID).
			Str("tier", string(tier)).
			Msg("failed to clear tier")
		return err
	}

	if len(officerIDs) > 0 {
		if _, err := r.db.exec(ctx, tx, func() (string, []any, error) {
			return buildInsertSuccessorsQuery(positionID, tier, officerIDs)
		}); err != nil {
			log.Err(err).
				Str("func", "*positionRepository.ReplaceSuccessors").
				Str("position_id", positionID).
				Str("tier", string(tier)).
				Int("successors_count", len(officerIDs)).
				Msg("failed to insert successors")
			return err
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "*positionRepository.ReplaceSuccessors").
			Str("position_id", positionID).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Info().
		Str("func", "*positionRepository.ReplaceSuccessors").
		Str("position_id", positionID).
		Str("tier", string(tier)).
		Int64("removed", removed).
		Int("inserted", len(officerIDs)).
		Msg("successor tier replaced")

	return nil
}

// rowScanner is implemented by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPositionWithIncumbent(row rowScanner) (models.PositionWithSuccessors, error) {
	var (
		p              models.PositionWithSuccessors
		incumbentName  sql.NullString
		incumbentGrade sql.NullString
	)

	dest := append(positionDest(&p.Position), &incumbentName, &incumbentGrade)
	if err := row.Scan(dest...); err != nil {
		return models.PositionWithSuccessors{}, err
	}

	// the join yields NULLs when the incumbent is unset
	if p.IncumbentID != nil && incumbentName.Valid {
		p.Incumbent = &models.OfficerSummary{
			OfficerID: *p.IncumbentID,
			Name:      incumbentName.String,
			Grade:     incumbentGrade.String,
		}
	}

	return p, nil
}

func positionDest(p *models.Position) []any {
	return []any{&p.PositionID, &p.PositionTitle, &p.Agency, &p.JRGrade, &p.IncumbentID, &p.CreatedAt, &p.UpdatedAt}
}
