// internal/services/connection_service.go
package services

import (
	"github.com/google/uuid"

	"github.com/advisorbridge/advisorbridge-backend/internal/models"
	"github.com/advisorbridge/advisorbridge-backend/internal/store"
)

// ConnectionService exposes established advisory relationships, read-only.
// Connections are created and mutated by a separate engagement workflow.
type ConnectionService struct {
	connections store.ConnectionStore
	users       store.UserStore
}

func NewConnectionService(connections store.ConnectionStore, users store.UserStore) *ConnectionService {
	return &ConnectionService{
		connections: connections,
		users:       users,
	}
}

// ListForActor returns the caller's connections: an LP sees the companies they
// advise, a company sees its advisors. Admins have no connections of their own.
func (s *ConnectionService) ListForActor(actorID uuid.UUID) ([]models.Connection, error) {
	actor, err := s.users.GetByID(actorID)
	if err != nil {
		return nil, storeErr(err, "user not found")
	}

	var conns []models.Connection
	switch actor.Role {
	case models.UserRoleLP:
		conns, err = s.connections.ListByLP(actor.ID)
	case models.UserRoleCompany:
		conns, err = s.connections.ListByCompany(actor.ID)
	default:
		return []models.Connection{}, nil
	}

	if err != nil {
		return nil, NewStorageError(err)
	}
	return conns, nil
}
