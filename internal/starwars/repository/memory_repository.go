package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/tair/starwars-favorites/internal/starwars/domain"
)

type pairKey struct {
	userID   uint
	targetID uint
}

// MemoryStore keeps every entity and favorite in process memory. It
// implements both EntityRepository and FavoriteRepository and enforces the
// same per-pair uniqueness as the database index.
type MemoryStore struct {
	mu sync.RWMutex

	users   map[uint]domain.User
	people  map[uint]domain.Person
	planets map[uint]domain.Planet

	favPlanets     map[uint]domain.FavoritePlanet
	favPlanetPairs map[pairKey]uint
	favPeople      map[uint]domain.FavoritePeople
	favPeoplePairs map[pairKey]uint

	nextUserID, nextPersonID, nextPlanetID uint
	nextFavPlanetID, nextFavPeopleID       uint
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:          make(map[uint]domain.User),
		people:         make(map[uint]domain.Person),
		planets:        make(map[uint]domain.Planet),
		favPlanets:     make(map[uint]domain.FavoritePlanet),
		favPlanetPairs: make(map[pairKey]uint),
		favPeople:      make(map[uint]domain.FavoritePeople),
		favPeoplePairs: make(map[pairKey]uint),
	}
}

// AddUser stores a user, assigning an ID when it is zero
func (s *MemoryStore) AddUser(user *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user.ID = assignID(user.ID, &s.nextUserID)
	s.users[user.ID] = *user
}

// AddPerson stores a person, assigning an ID when it is zero
func (s *MemoryStore) AddPerson(person *domain.Person) {
	s.mu.Lock()
	defer s.mu.Unlock()
	person.ID = assignID(person.ID, &s.nextPersonID)
	s.people[person.ID] = *person
}

// AddPlanet stores a planet, assigning an ID when it is zero
func (s *MemoryStore) AddPlanet(planet *domain.Planet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	planet.ID = assignID(planet.ID, &s.nextPlanetID)
	s.planets[planet.ID] = *planet
}

func assignID(id uint, next *uint) uint {
	if id == 0 {
		*next++
		return *next
	}
	if id > *next {
		*next = id
	}
	return id
}

func (s *MemoryStore) FindUserByID(_ context.Context, id uint) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, domain.NotFound(domain.MsgUserNotFound)
	}
	return &user, nil
}

func (s *MemoryStore) FindAllUsers(_ context.Context) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.users), nil
}

func (s *MemoryStore) FindPersonByID(_ context.Context, id uint) (*domain.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	person, ok := s.people[id]
	if !ok {
		return nil, domain.NotFound(domain.MsgPeopleNotFound)
	}
	return &person, nil
}

func (s *MemoryStore) FindAllPeople(_ context.Context) ([]domain.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.people), nil
}

func (s *MemoryStore) FindPlanetByID(_ context.Context, id uint) (*domain.Planet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	planet, ok := s.planets[id]
	if !ok {
		return nil, domain.NotFound(domain.MsgPlanetNotFound)
	}
	return &planet, nil
}

func (s *MemoryStore) FindAllPlanets(_ context.Context) ([]domain.Planet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.planets), nil
}

func (s *MemoryStore) CreatePlanet(_ context.Context, fav *domain.FavoritePlanet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := pairKey{fav.UserID, fav.PlanetID}
	if _, exists := s.favPlanetPairs[key]; exists {
		return domain.Conflict(domain.MsgPlanetDuplicate)
	}

	s.nextFavPlanetID++
	fav.ID = s.nextFavPlanetID
	s.favPlanets[fav.ID] = *fav
	s.favPlanetPairs[key] = fav.ID
	return nil
}

func (s *MemoryStore) FindPlanetByUserAndTarget(_ context.Context, userID, planetID uint) (*domain.FavoritePlanet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.favPlanetPairs[pairKey{userID, planetID}]
	if !ok {
		return nil, domain.NotFound(domain.MsgFavoriteNotFound)
	}
	fav := s.favPlanets[id]
	return &fav, nil
}

func (s *MemoryStore) FindPlanetsByUser(_ context.Context, userID uint) ([]domain.FavoritePlanet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	favs := []domain.FavoritePlanet{}
	for _, fav := range sortedValues(s.favPlanets) {
		if fav.UserID == userID {
			favs = append(favs, fav)
		}
	}
	return favs, nil
}

func (s *MemoryStore) DeletePlanet(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	fav, ok := s.favPlanets[id]
	if !ok {
		return domain.NotFound(domain.MsgFavoriteNotFound)
	}
	delete(s.favPlanets, id)
	delete(s.favPlanetPairs, pairKey{fav.UserID, fav.PlanetID})
	return nil
}

func (s *MemoryStore) CreatePeople(_ context.Context, fav *domain.FavoritePeople) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := pairKey{fav.UserID, fav.PeopleID}
	if _, exists := s.favPeoplePairs[key]; exists {
		return domain.Conflict(domain.MsgPeopleDuplicate)
	}

	s.nextFavPeopleID++
	fav.ID = s.nextFavPeopleID
	s.favPeople[fav.ID] = *fav
	s.favPeoplePairs[key] = fav.ID
	return nil
}

func (s *MemoryStore) FindPeopleByUserAndTarget(_ context.Context, userID, peopleID uint) (*domain.FavoritePeople, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.favPeoplePairs[pairKey{userID, peopleID}]
	if !ok {
		return nil, domain.NotFound(domain.MsgFavoriteNotFound)
	}
	fav := s.favPeople[id]
	return &fav, nil
}

func (s *MemoryStore) FindPeopleByUser(_ context.Context, userID uint) ([]domain.FavoritePeople, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	favs := []domain.FavoritePeople{}
	for _, fav := range sortedValues(s.favPeople) {
		if fav.UserID == userID {
			favs = append(favs, fav)
		}
	}
	return favs, nil
}

func (s *MemoryStore) DeletePeople(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	fav, ok := s.favPeople[id]
	if !ok {
		return domain.NotFound(domain.MsgFavoriteNotFound)
	}
	delete(s.favPeople, id)
	delete(s.favPeoplePairs, pairKey{fav.UserID, fav.PeopleID})
	return nil
}

// sortedValues returns map values ordered by key, which is insertion order
// for auto-assigned IDs.
func sortedValues[T any](m map[uint]T) []T {
	keys := make([]uint, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	values := make([]T, 0, len(keys))
	for _, k := range keys {
		values = append(values, m[k])
	}
	return values
}
