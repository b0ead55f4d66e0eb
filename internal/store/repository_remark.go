package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/chronos/internal/logger"
	"github.com/MKhiriev/chronos/models"
)

// remarkRepository is the PostgreSQL-backed [RemarkRepository]. Remarks are
// append-only.
type remarkRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewRemarkRepository constructs a [RemarkRepository] on db.
func NewRemarkRepository(db *DB, logger *logger.Logger) RemarkRepository {
	logger.Debug().Msg("creating remark repository")
	return &remarkRepository{
		db:     db,
		logger: logger,
	}
}

// ListRemarks returns the officer's remarks, newest first.
func (r *remarkRepository) ListRemarks(ctx context.Context, officerID string) ([]models.OfficerRemark, error) {
	remarks := make([]models.OfficerRemark, 0, 10)
	err := r.db.queryRows(ctx, r.db, func() (string, []any, error) {
		return buildListRemarksQuery(officerID)
	}, func(rows *sql.Rows) error {
		var rm models.OfficerRemark
		if err := rows.Scan(remarkDest(&rm)...); err != nil {
			return err
		}
		remarks = append(remarks, rm)
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*remarkRepository.ListRemarks").
			Str("officer_id", officerID).
			Msg("error listing remarks")
		return nil, err
	}

	return remarks, nil
}

func (r *remarkRepository) AddRemark(ctx context.Context, remark models.OfficerRemark) (models.OfficerRemark, error) {
	var created models.OfficerRemark
	if err := r.db.queryRow(ctx, r.db, func() (string, []any, error) {
		return buildInsertRemarkQuery(remark)
	}, remarkDest(&created)...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*remarkRepository.AddRemark").
			Str("officer_id", remark.OfficerID).
			Msg("error adding remark")
		return models.OfficerRemark{}, err
	}

	return created, nil
}

func remarkDest(rm *models.OfficerRemark) []any {
	return []any{&rm.RemarkID, &rm.OfficerID, &rm.RemarkDate, &rm.Place, &rm.Details, &rm.CreatedAt}
}
