package repositories

import (
	"github.com/Masterminds/squirrel"

	"github.com/lansen/driveadmin/internal/app/models"
)

// carColumns lists the cars table columns in scan order
var carColumns = []string{
	"car_id", "car_name", "car_type", "is_available", "user_count", "subject_type",
}

func buildInsertCarQuery(c *models.Car) (string, []interface{}, error) {
	return psql.Insert("cars").
		Columns("car_name", "car_type", "is_available", "user_count", "subject_type").
		Values(c.Name, c.CarType, c.IsAvailable, c.UserCount, c.SubjectType).
		Suffix("RETURNING car_id").
		ToSql()
}

func buildSelectCarByIDQuery(id int64) (string, []interface{}, error) {
	return psql.Select(carColumns...).
		From("cars").
		Where(squirrel.Eq{"car_id": id}).
		Limit(1).
		ToSql()
}

// buildUpdateCarByIDQuery replaces every mutable column; the car update
// contract is a full replacement, not a partial one.
func buildUpdateCarByIDQuery(id int64, c *models.Car) (string, []interface{}, error) {
	return psql.Update("cars").
		SetMap(map[string]interface{}{
			"car_name":     c.Name,
			"car_type":     c.CarType,
			"is_available": c.IsAvailable,
			"user_count":   c.UserCount,
			"subject_type": c.SubjectType,
		}).
		Where(squirrel.Eq{"car_id": id}).
		ToSql()
}

func buildDeleteCarByIDQuery(id int64) (string, []interface{}, error) {
	return psql.Delete("cars").Where(squirrel.Eq{"car_id": id}).ToSql()
}
