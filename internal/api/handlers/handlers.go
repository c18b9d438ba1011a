package handlers

import (
	"github.com/studyhub-dev/studyhub/internal/repositories"
	"github.com/studyhub-dev/studyhub/internal/uploads"
)

// Handler carries the stores and the upload receiver. Every route maps to
// exactly one method on it.
type Handler struct {
	users     repositories.UserRepository
	materials repositories.MaterialRepository
	receiver  *uploads.Receiver
}

func New(users repositories.UserRepository, materials repositories.MaterialRepository, receiver *uploads.Receiver) *Handler {
	return &Handler{
		users:     users,
		materials: materials,
		receiver:  receiver,
	}
}
