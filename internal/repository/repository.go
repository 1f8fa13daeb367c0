package repository

import (
	"strconv"
	"sync"
	"time"
)

var TimeNow = time.Now

// UserStore holds all user records in process memory. The zero value is not
// usable, construct it with NewUserStore.
type UserStore struct {
	mu     sync.RWMutex
	users  []User
	nextID int
}

func NewUserStore() *UserStore {
	return &UserStore{
		users: make([]User, 0),
	}
}

// AddOne creates a user with a fresh sequential id. Usernames are not checked
// for uniqueness.
func (s *UserStore) AddOne(username, password string) User {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := User{
		ID:         strconv.Itoa(s.nextID),
		Username:   username,
		Password:   password,
		DateJoined: TimeNow(),
	}
	s.nextID++
	s.users = append(s.users, user)

	return user
}

func (s *UserStore) FindOneByUserID(userID string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexBy(func(u User) bool { return u.ID == userID })
	if i < 0 {
		return User{}, false
	}
	return s.users[i], true
}

// FindOneByUsername returns the first inserted user with the given username.
func (s *UserStore) FindOneByUsername(username string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexBy(func(u User) bool { return u.Username == username })
	if i < 0 {
		return User{}, false
	}
	return s.users[i], true
}

// UpdateOne overwrites the non-nil fields of update on the user with the given
// id and returns the resulting record.
func (s *UserStore) UpdateOne(userID string, update UserUpdate) (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexBy(func(u User) bool { return u.ID == userID })
	if i < 0 {
		return User{}, false
	}

	if update.Password != nil {
		s.users[i].Password = *update.Password
	}
	if update.Username != nil {
		s.users[i].Username = *update.Username
	}

	return s.users[i], true
}

// DeleteOne removes the user with the given id and returns the removed record.
func (s *UserStore) DeleteOne(userID string) (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexBy(func(u User) bool { return u.ID == userID })
	if i < 0 {
		return User{}, false
	}

	user := s.users[i]
	kept := s.users[:0]
	for _, u := range s.users {
		if u.ID != userID {
			kept = append(kept, u)
		}
	}
	clear(s.users[len(kept):])
	s.users = kept

	return user, true
}

// Count returns the number of stored users.
func (s *UserStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// ConstructUserResponse strips everything a client must not see from user.
func ConstructUserResponse(user User) UserView {
	return UserView{
		Name: user.Username,
		Date: user.DateJoined,
		ID:   user.ID,
	}
}

// indexBy must be called with s.mu held.
func (s *UserStore) indexBy(match func(User) bool) int {
	for i, u := range s.users {
		if match(u) {
			return i
		}
	}
	return -1
}
