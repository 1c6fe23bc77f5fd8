package repositories

import (
	"github.com/Masterminds/squirrel"

	"github.com/lansen/driveadmin/internal/app/models"
)

// subjectColumns lists the subjects table columns in scan order
var subjectColumns = []string{
	"subject_id", "user_id", "car_id", "subject_type", "subject_number",
}

func buildInsertSubjectQuery(s *models.Subject) (string, []interface{}, error) {
	return psql.Insert("subjects").
		Columns("user_id", "car_id", "subject_type", "subject_number").
		Values(s.UserID, s.CarID, s.SubjectType, s.SubjectNumber).
		Suffix("RETURNING subject_id").
		ToSql()
}

func buildSelectSubjectByIDQuery(id int64) (string, []interface{}, error) {
	return psql.Select(subjectColumns...).
		From("subjects").
		Where(squirrel.Eq{"subject_id": id}).
		Limit(1).
		ToSql()
}

func buildUpdateSubjectByIDQuery(id int64, s *models.Subject) (string, []interface{}, error) {
	return psql.Update("subjects").
		SetMap(map[string]interface{}{
			"user_id":        s.UserID,
			"car_id":         s.CarID,
			"subject_type":   s.SubjectType,
			"subject_number": s.SubjectNumber,
		}).
		Where(squirrel.Eq{"subject_id": id}).
		ToSql()
}

func buildDeleteSubjectByIDQuery(id int64) (string, []interface{}, error) {
	return psql.Delete("subjects").Where(squirrel.Eq{"subject_id": id}).ToSql()
}

func buildDeleteSubjectByUserAndCarQuery(userID, carID int64) (string, []interface{}, error) {
	return psql.Delete("subjects").
		Where(squirrel.Eq{"user_id": userID, "car_id": carID}).
		ToSql()
}
