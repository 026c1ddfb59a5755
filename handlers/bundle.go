package handlers

import (
	userRepoPkg "medibook/database/repository/user"
	"medibook/services/doctor"
	"medibook/services/scheduling"
	"medibook/services/user"
)

// HandlerBundle groups all endpoint handlers plus the repositories the
// middleware needs.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	Users        *UserHandler
	Doctors      *DoctorHandler
	Appointments *AppointmentHandler
	Admin        *AdminHandler
}

// NewHandlerBundle wires the handlers onto their services.
func NewHandlerBundle(
	userRepo userRepoPkg.UserRepository,
	userSvc user.UserService,
	doctorSvc doctor.DoctorService,
	schedulingSvc scheduling.Service,
) *HandlerBundle {
	return &HandlerBundle{
		UserRepo:     userRepo,
		Users:        &UserHandler{UserService: userSvc},
		Doctors:      &DoctorHandler{DoctorService: doctorSvc},
		Appointments: &AppointmentHandler{Scheduling: schedulingSvc},
		Admin:        &AdminHandler{UserService: userSvc, DoctorService: doctorSvc},
	}
}
