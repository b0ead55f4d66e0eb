package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/chronos/models"
)

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	otpColumns = []string{"id", "email", "otp_code", "expires_at", "verified", "attempts", "created_at"}

	officerColumns = []string{
		"officer_id", "name", "grade", "mx_equivalent_grade",
		"ihrp_certification", "hrlp", "created_at", "updated_at",
	}

	positionColumns = []string{
		"position_id", "position_title", "agency", "jr_grade",
		"incumbent_id", "created_at", "updated_at",
	}

	// positionWithIncumbentColumns selects a position joined with the
	// summary of its incumbent (nullable).
	positionWithIncumbentColumns = []string{
		"p.position_id", "p.position_title", "p.agency", "p.jr_grade",
		"p.incumbent_id", "p.created_at", "p.updated_at", "o.name", "o.grade",
	}

	competencyColumns = []string{"competency_id", "competency_name", "description", "max_pl_level"}

	stintColumns = []string{"stint_id", "stint_name", "stint_type", "year"}

	remarkColumns = []string{
		"remark_id", "officer_id", "to_char(remark_date, 'YYYY-MM-DD')",
		"place", "details", "created_at",
	}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// allowed emails

func buildIsEmailAllowedQuery(email string) (string, []any, error) {
	return psql.Select("1").
		Prefix("SELECT EXISTS (").
		From("allowed_emails").
		Where(sq.Eq{"email": email}).
		Suffix(")").
		ToSql()
}

// otp verifications

func buildInsertOTPQuery(otp models.OTPVerification) (string, []any, error) {
	return psql.Insert("otp_verifications").
		Columns("email", "otp_code", "expires_at", "verified", "attempts").
		Values(otp.Email, otp.OTPCode, otp.ExpiresAt, otp.Verified, otp.Attempts).
		Suffix(returning(otpColumns)).
		ToSql()
}

// buildFindLatestOutstandingOTPQuery selects the newest unverified,
// unexpired row for (email, code).
func buildFindLatestOutstandingOTPQuery(email, code string, now time.Time) (string, []any, error) {
	return psql.Select(otpColumns...).
		From("otp_verifications").
		Where(sq.Eq{"email": email, "otp_code": code, "verified": false}).
		Where(sq.Gt{"expires_at": now}).
		OrderBy("created_at DESC", "id DESC").
		Limit(1).
		ToSql()
}

// buildIncrementAttemptsMatchingQuery bumps every row for (email, code),
// expired or not.
func buildIncrementAttemptsMatchingQuery(email, code string) (string, []any, error) {
	return psql.Update("otp_verifications").
		Set("attempts", sq.Expr("attempts + 1")).
		Where(sq.Eq{"email": email, "otp_code": code}).
		ToSql()
}

// buildIncrementAttemptsOutstandingQuery bumps the newest unverified,
// unexpired row of email, whatever its code.
func buildIncrementAttemptsOutstandingQuery(email string, now time.Time) (string, []any, error) {
	return psql.Update("otp_verifications").
		Set("attempts", sq.Expr("attempts + 1")).
		Where(sq.Expr(`id = (SELECT id FROM otp_verifications
			WHERE email = ? AND verified = FALSE AND expires_at > ?
			ORDER BY created_at DESC, id DESC LIMIT 1)`, email, now)).
		ToSql()
}

func buildMarkOTPVerifiedQuery(id int64) (string, []any, error) {
	return psql.Update("otp_verifications").
		Set("verified", true).
		Where(sq.Eq{"id": id, "verified": false}).
		ToSql()
}

func buildDeleteExpiredOTPQuery(cutoff time.Time) (string, []any, error) {
	return psql.Delete("otp_verifications").
		Where(sq.Lt{"expires_at": cutoff}).
		ToSql()
}

// officers

func buildListOfficersQuery() (string, []any, error) {
	return psql.Select(officerColumns...).
		From("officers").
		OrderBy("name", "officer_id").
		ToSql()
}

func buildGetOfficerQuery(officerID string) (string, []any, error) {
	return psql.Select(officerColumns...).
		From("officers").
		Where(sq.Eq{"officer_id": officerID}).
		ToSql()
}

func buildInsertOfficerQuery(o models.Officer) (string, []any, error) {
	return psql.Insert("officers").
		Columns("officer_id", "name", "grade", "mx_equivalent_grade", "ihrp_certification", "hrlp").
		Values(o.OfficerID, o.Name, o.Grade, o.MXEquivalentGrade, o.IHRPCertification, o.HRLP).
		Suffix(returning(officerColumns)).
		ToSql()
}

// buildUpdateOfficerQuery sets only the non-nil fields of u.
func buildUpdateOfficerQuery(u models.OfficerUpdate) (string, []any, error) {
	set := map[string]any{"updated_at": sq.Expr("NOW()")}
	if u.Name != nil {
		set["name"] = *u.Name
	}
	if u.Grade != nil {
		set["grade"] = *u.Grade
	}
	if u.MXEquivalentGrade != nil {
		set["mx_equivalent_grade"] = *u.MXEquivalentGrade
	}
	if u.IHRPCertification != nil {
		set["ihrp_certification"] = *u.IHRPCertification
	}
	if u.HRLP != nil {
		set["hrlp"] = *u.HRLP
	}

	return psql.Update("officers").
		SetMap(set).
		Where(sq.Eq{"officer_id": u.OfficerID}).
		Suffix(returning(officerColumns)).
		ToSql()
}

func buildDeleteOfficerQuery(officerID string) (string, []any, error) {
	return psql.Delete("officers").
		Where(sq.Eq{"officer_id": officerID}).
		ToSql()
}

func buildListOfficerCompetenciesQuery(officerID string) (string, []any, error) {
	return psql.Select(
		"oc.officer_id", "oc.competency_id", "c.competency_name",
		"c.max_pl_level", "oc.achieved_pl_level", "oc.assessed_at",
	).
		From("officer_competencies oc").
		Join("hr_competencies c ON c.competency_id = oc.competency_id").
		Where(sq.Eq{"oc.officer_id": officerID}).
		OrderBy("c.competency_name").
		ToSql()
}

func buildUpsertOfficerCompetencyQuery(oc models.OfficerCompetency, assessedAt time.Time) (string, []any, error) {
	return psql.Insert("officer_competencies").
		Columns("officer_id", "competency_id", "achieved_pl_level", "assessed_at").
		Values(oc.OfficerID, oc.CompetencyID, oc.AchievedPLLevel, assessedAt).
		Suffix("ON CONFLICT (officer_id, competency_id) DO UPDATE " +
			"SET achieved_pl_level = EXCLUDED.achieved_pl_level, assessed_at = EXCLUDED.assessed_at " +
			"RETURNING officer_id, competency_id, achieved_pl_level, assessed_at").
		ToSql()
}

func buildDeleteOfficerCompetencyQuery(officerID string, competencyID int64) (string, []any, error) {
	return psql.Delete("officer_competencies").
		Where(sq.Eq{"officer_id": officerID, "competency_id": competencyID}).
		ToSql()
}

func buildListOfficerStintsQuery(officerID string) (string, []any, error) {
	return psql.Select(
		"os.officer_id", "os.stint_id", "s.stint_name",
		"s.stint_type", "s.year", "os.completion_year",
	).
		From("officer_stints os").
		Join("ooa_stints s ON s.stint_id = os.stint_id").
		Where(sq.Eq{"os.officer_id": officerID}).
		OrderBy("os.completion_year DESC", "s.stint_name").
		ToSql()
}

func buildUpsertOfficerStintQuery(os models.OfficerStint) (string, []any, error) {
	return psql.Insert("officer_stints").
		Columns("officer_id", "stint_id", "completion_year").
		Values(os.OfficerID, os.StintID, os.CompletionYear).
		Suffix("ON CONFLICT (officer_id, stint_id) DO UPDATE " +
			"SET completion_year = EXCLUDED.completion_year " +
			"RETURNING officer_id, stint_id, completion_year").
		ToSql()
}

func buildDeleteOfficerStintQuery(officerID string, stintID int64) (string, []any, error) {
	return psql.Delete("officer_stints").
		Where(sq.Eq{"officer_id": officerID, "stint_id": stintID}).
		ToSql()
}

func buildListIncumbentPositionsQuery(officerID string) (string, []any, error) {
	return psql.Select(positionColumns...).
		From("positions").
		Where(sq.Eq{"incumbent_id": officerID}).
		OrderBy("position_title", "position_id").
		ToSql()
}

func buildListSuccessorPositionsQuery(officerID string) (string, []any, error) {
	return psql.Select("p.position_id", "p.position_title", "p.agency", "ps.succession_type").
		From("position_successors ps").
		Join("positions p ON p.position_id = ps.position_id").
		Where(sq.Eq{"ps.successor_id": officerID}).
		OrderBy("p.position_title", "ps.id").
		ToSql()
}

// positions

func selectPositionsWithIncumbent() sq.SelectBuilder {
	return psql.Select(positionWithIncumbentColumns...).
		From("positions p").
		LeftJoin("officers o ON o.officer_id = p.incumbent_id")
}

func buildListPositionsQuery() (string, []any, error) {
	return selectPositionsWithIncumbent().
		OrderBy("p.position_title", "p.position_id").
		ToSql()
}

func buildGetPositionQuery(positionID string) (string, []any, error) {
	return selectPositionsWithIncumbent().
		Where(sq.Eq{"p.position_id": positionID}).
		ToSql()
}

func buildInsertPositionQuery(p models.Position) (string, []any, error) {
	return psql.Insert("positions").
		Columns("position_id", "position_title", "agency", "jr_grade", "incumbent_id").
		Values(p.PositionID, p.PositionTitle, p.Agency, p.JRGrade, p.IncumbentID).
		Suffix(returning(positionColumns)).
		ToSql()
}

// buildUpdatePositionQuery sets only the non-nil fields of u; ClearIncumbent
// writes NULL into incumbent_id.
func buildUpdatePositionQuery(u models.PositionUpdate) (string, []any, error) {
	set := map[string]any{"updated_at": sq.Expr("NOW()")}
	if u.PositionTitle != nil {
		set["position_title"] = *u.PositionTitle
	}
	if u.Agency != nil {
		set["agency"] = *u.Agency
	}
	if u.JRGrade != nil {
		set["jr_grade"] = *u.JRGrade
	}
	switch {
	case u.ClearIncumbent:
		set["incumbent_id"] = nil
	case u.IncumbentID != nil:
		set["incumbent_id"] = *u.IncumbentID
	}

	return psql.Update("positions").
		SetMap(set).
		Where(sq.Eq{"position_id": u.PositionID}).
		Suffix(returning(positionColumns)).
		ToSql()
}

func buildDeletePositionQuery(positionID string) (string, []any, error) {
	return psql.Delete("positions").
		Where(sq.Eq{"position_id": positionID}).
		ToSql()
}

// buildLockPositionQuery locks the position row for the rest of the
// transaction so concurrent tier replacements serialise.
func buildLockPositionQuery(positionID string) (string, []any, error) {
	return psql.Select("position_id").
		From("positions").
		Where(sq.Eq{"position_id": positionID}).
		Suffix("FOR UPDATE").
		ToSql()
}

// buildListSuccessorLinksQuery returns the flat successor join for the given
// positions, or for every position when none is given, in insertion order.
func buildListSuccessorLinksQuery(positionIDs []string) (string, []any, error) {
	q := psql.Select("ps.position_id", "ps.succession_type", "o.officer_id", "o.name", "o.grade").
		From("position_successors ps").
		Join("officers o ON o.officer_id = ps.successor_id").
		OrderBy("ps.position_id", "ps.id")

	if len(positionIDs) > 0 {
		q = q.Where(sq.Eq{"ps.position_id": positionIDs})
	}

	return q.ToSql()
}

func buildDeleteSuccessorTierQuery(positionID string, tier models.SuccessionType) (string, []any, error) {
	return psql.Delete("position_successors").
		Where(sq.Eq{"position_id": positionID, "succession_type": string(tier)}).
		ToSql()
}

func buildInsertSuccessorsQuery(positionID string, tier models.SuccessionType, officerIDs []string) (string, []any, error) {
	q := psql.Insert("position_successors").
		Columns("position_id", "successor_id", "succession_type")

	for _, id := range officerIDs {
		q = q.Values(positionID, id, string(tier))
	}

	return q.Suffix("ON CONFLICT (position_id, successor_id, succession_type) DO NOTHING").ToSql()
}

// competencies

func buildListCompetenciesQuery() (string, []any, error) {
	return psql.Select(competencyColumns...).
		From("hr_competencies").
		OrderBy("competency_name").
		ToSql()
}

func buildGetCompetencyQuery(id int64) (string, []any, error) {
	return psql.Select(competencyColumns...).
		From("hr_competencies").
		Where(sq.Eq{"competency_id": id}).
		ToSql()
}

func buildInsertCompetencyQuery(c models.HRCompetency) (string, []any, error) {
	return psql.Insert("hr_competencies").
		Columns("competency_name", "description", "max_pl_level").
		Values(c.CompetencyName, c.Description, c.MaxPLLevel).
		Suffix(returning(competencyColumns)).
		ToSql()
}

func buildUpdateCompetencyQuery(c models.HRCompetency) (string, []any, error) {
	return psql.Update("hr_competencies").
		Set("competency_name", c.CompetencyName).
		Set("description", c.Description).
		Set("max_pl_level", c.MaxPLLevel).
		Where(sq.Eq{"competency_id": c.CompetencyID}).
		Suffix(returning(competencyColumns)).
		ToSql()
}

func buildDeleteCompetencyQuery(id int64) (string, []any, error) {
	return psql.Delete("hr_competencies").
		Where(sq.Eq{"competency_id": id}).
		ToSql()
}

// stints

func buildListStintsQuery() (string, []any, error) {
	return psql.Select(stintColumns...).
		From("ooa_stints").
		OrderBy("year DESC", "stint_name").
		ToSql()
}

func buildGetStintQuery(id int64) (string, []any, error) {
	return psql.Select(stintColumns...).
		From("ooa_stints").
		Where(sq.Eq{"stint_id": id}).
		ToSql()
}

func buildInsertStintQuery(s models.OOAStint) (string, []any, error) {
	return psql.Insert("ooa_stints").
		Columns("stint_name", "stint_type", "year").
		Values(s.StintName, s.StintType, s.Year).
		Suffix(returning(stintColumns)).
		ToSql()
}

func buildUpdateStintQuery(s models.OOAStint) (string, []any, error) {
	return psql.Update("ooa_stints").
		Set("stint_name", s.StintName).
		Set("stint_type", s.StintType).
		Set("year", s.Year).
		Where(sq.Eq{"stint_id": s.StintID}).
		Suffix(returning(stintColumns)).
		ToSql()
}

func buildDeleteStintQuery(id int64) (string, []any, error) {
	return psql.Delete("ooa_stints").
		Where(sq.Eq{"stint_id": id}).
		ToSql()
}

// remarks

func buildListRemarksQuery(officerID string) (string, []any, error) {
	return psql.Select(remarkColumns...).
		From("officer_remarks").
		Where(sq.Eq{"officer_id": officerID}).
		OrderBy("remark_date DESC", "created_at DESC", "remark_id DESC").
		ToSql()
}

func buildInsertRemarkQuery(r models.OfficerRemark) (string, []any, error) {
	return psql.Insert("officer_remarks").
		Columns("officer_id", "remark_date", "place", "details").
		Values(r.OfficerID, sq.Expr("?::date", r.RemarkDate), r.Place, r.Details).
		Suffix(returning(remarkColumns)).
		ToSql()
}
