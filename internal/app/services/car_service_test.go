package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lansen/driveadmin/internal/app/models"
	"github.com/lansen/driveadmin/internal/app/models/dto"
	"github.com/lansen/driveadmin/internal/pkg/apperrors"
)

// fakeCarStore is an in-memory CarStore for service tests
type fakeCarStore struct {
	cars   map[int64]*models.Car
	nextID int64
}

func newFakeCarStore() *fakeCarStore {
	return &fakeCarStore{cars: map[int64]*models.Car{}, nextID: 1}
}

func (f *fakeCarStore) Create(ctx context.Context, car *models.Car) (int64, error) {
	id := f.nextID
	f.nextID++
	stored := *car
	stored.ID = id
	f.cars[id] = &stored
	return id, nil
}

func (f *fakeCarStore) GetByID(ctx context.Context, id int64) (*models.Car, error) {
	return f.cars[id], nil
}

func (f *fakeCarStore) UpdateByID(ctx context.Context, id int64, car *models.Car) error {
	if _, ok := f.cars[id]; !ok {
		return apperrors.ErrCarNotFound
	}
	stored := *car
	stored.ID = id
	f.cars[id] = &stored
	return nil
}

func (f *fakeCarStore) DeleteByID(ctx context.Context, id int64) error {
	if _, ok := f.cars[id]; !ok {
		return apperrors.ErrCarNotFound
	}
	delete(f.cars, id)
	return nil
}

func TestCreateCarDefaults(t *testing.T) {
	store := newFakeCarStore()
	svc := NewCarService(store)

	id, err := svc.CreateCar(context.Background(), dto.CreateCarRequest{
		Name:    "Santana 3000",
		CarType: 1,
	})
	require.NoError(t, err)

	stored := store.cars[id]
	require.NotNil(t, stored)
	assert.True(t, stored.IsAvailable, "availability defaults to true")
	assert.Equal(t, 0, stored.UserCount)
	assert.Equal(t, 0, stored.SubjectType)
}

func TestCreateCarValidation(t *testing.T) {
	svc := NewCarService(newFakeCarStore())

	tests := []struct {
		name string
		req  dto.CreateCarRequest
	}{
		{"blank name", dto.CreateCarRequest{Name: "  ", CarType: 1}},
		{"bad car type", dto.CreateCarRequest{Name: "x", CarType: 3}},
		{"zero car type", dto.CreateCarRequest{Name: "x", CarType: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateCar(context.Background(), tt.req)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
}

func TestGetCarMissingIsNotAnError(t *testing.T) {
	svc := NewCarService(newFakeCarStore())

	car, err := svc.GetCarByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, car)
}

func TestUpdateCarReplacesAllFields(t *testing.T) {
	store := newFakeCarStore()
	svc := NewCarService(store)

	id, err := svc.CreateCar(context.Background(), dto.CreateCarRequest{Name: "Santana 3000", CarType: 1})
	require.NoError(t, err)

	err = svc.UpdateCarByID(context.Background(), id, dto.UpdateCarRequest{
		Name:        "Jetta",
		CarType:     2,
		IsAvailable: false,
		UserCount:   5,
		SubjectType: 3,
	})
	require.NoError(t, err)

	stored := store.cars[id]
	assert.Equal(t, "Jetta", stored.Name)
	assert.Equal(t, models.LicenseClassC2, stored.CarType)
	assert.False(t, stored.IsAvailable)
	assert.Equal(t, 5, stored.UserCount)
}

func TestUpdateCarUnknownID(t *testing.T) {
	svc := NewCarService(newFakeCarStore())

	err := svc.UpdateCarByID(context.Background(), 42, dto.UpdateCarRequest{Name: "Jetta", CarType: 1})
	assert.ErrorIs(t, err, apperrors.ErrCarNotFound)
}

func TestDeleteCar(t *testing.T) {
	store := newFakeCarStore()
	svc := NewCarService(store)

	id, err := svc.CreateCar(context.Background(), dto.CreateCarRequest{Name: "Santana 3000", CarType: 1})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCarByID(context.Background(), id))
	assert.ErrorIs(t, svc.DeleteCarByID(context.Background(), id), apperrors.ErrCarNotFound)
}
