package repository

import (
	areaRepo "condoreserve/database/repository/area"
	directoryRepo "condoreserve/database/repository/directory"
	reservationRepo "condoreserve/database/repository/reservation"
)

// Re-export the AreaRepository interface and constructor.
type AreaRepository = areaRepo.AreaRepository

var NewMongoAreaRepo = areaRepo.NewMongoAreaRepo

// Re-export the ReservationRepository interface and constructor.
type ReservationRepository = reservationRepo.ReservationRepository

var NewMongoReservationRepo = reservationRepo.NewMongoReservationRepo

// Re-export the ActorDirectory interface and constructor.
type ActorDirectory = directoryRepo.ActorDirectory

var NewMongoActorDirectory = directoryRepo.NewMongoActorDirectory
