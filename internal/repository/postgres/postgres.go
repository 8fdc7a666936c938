package postgres

import (
	"database/sql"

	_ "github.com/lib/pq"

	"gympoint-backend/internal/repository"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.CustomerRepository
	repository.EquipmentRepository
	repository.PlanRepository
	repository.RentalRepository
	repository.InscriptionRepository
	repository.ReceiptRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		UserRepository:         NewUserRepository(db),
		CustomerRepository:     NewCustomerRepository(db),
		EquipmentRepository:    NewEquipmentRepository(db),
		PlanRepository:         NewPlanRepository(db),
		RentalRepository:       NewRentalRepository(db),
		InscriptionRepository:  NewInscriptionRepository(db),
		ReceiptRepository:      NewReceiptRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}
