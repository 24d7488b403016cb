package memory

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/records"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

func (s *Store) GetUser(_ context.Context, id uint) (*models.User, error) {
	defer s.lock()()
	u, ok := s.st.users[id]
	if !ok {
		return nil, records.ErrNotFound
	}
	return &u, nil
}

func (s *Store) FindUserByUsername(_ context.Context, username string) (*models.User, error) {
	defer s.lock()()
	for _, u := range s.st.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, records.ErrNotFound
}

func (s *Store) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	defer s.lock()()
	for _, u := range s.st.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, records.ErrNotFound
}

func (s *Store) ListUsers(_ context.Context) ([]models.User, error) {
	defer s.lock()()
	return sortedValues(s.st.users), nil
}

func (s *Store) checkUserUnique(u *models.User) error {
	for id, other := range s.st.users {
		if id == u.ID {
			continue
		}
		if other.Username == u.Username {
			return duplicate("idx_users_username")
		}
		if other.Email == u.Email {
			return duplicate("idx_users_email")
		}
	}
	return nil
}

func (s *Store) CreateUser(_ context.Context, u *models.User) error {
	defer s.lock()()
	if err := s.checkUserUnique(u); err != nil {
		return err
	}
	if u.Role == "" {
		u.Role = "patient"
	}
	u.ID = s.st.next("users")
	u.CreatedAt = s.clock()
	u.UpdatedAt = u.CreatedAt
	s.st.users[u.ID] = *u
	return nil
}

func (s *Store) UpdateUser(_ context.Context, u *models.User) error {
	defer s.lock()()
	if _, ok := s.st.users[u.ID]; !ok {
		return records.ErrNotFound
	}
	if err := s.checkUserUnique(u); err != nil {
		return err
	}
	u.UpdatedAt = s.clock()
	s.st.users[u.ID] = *u
	return nil
}

// DeleteUser cascades to the user's patients and to every appointment
// they created or that references those patients.
func (s *Store) DeleteUser(_ context.Context, id uint) error {
	defer s.lock()()
	if _, ok := s.st.users[id]; !ok {
		return records.ErrNotFound
	}
	delete(s.st.users, id)

	for pid, p := range s.st.patients {
		if p.UserID == id {
			s.removePatient(pid)
		}
	}
	for aid, ap := range s.st.appointments {
		if ap.UserID == id {
			delete(s.st.appointments, aid)
		}
	}
	return nil
}
