package booking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	reservationRepo "condoreserve/database/repository/reservation"
	"condoreserve/models"
)

// fakeAreaRepo is an in-memory AreaRepository.
type fakeAreaRepo struct {
	mu    sync.Mutex
	areas map[string]*models.Area
}

func newFakeAreaRepo(areas ...models.Area) *fakeAreaRepo {
	r := &fakeAreaRepo{areas: make(map[string]*models.Area)}
	for i := range areas {
		a := areas[i]
		r.areas[a.ID] = &a
	}
	return r
}

func (r *fakeAreaRepo) Create(_ context.Context, area *models.Area) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if area.ID == "" {
		area.ID = fmt.Sprintf("area-%d", len(r.areas)+1)
	}
	cp := *area
	r.areas[area.ID] = &cp
	return nil
}

func (r *fakeAreaRepo) GetByID(_ context.Context, condoID, areaID string) (*models.Area, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.areas[areaID]
	if !ok || a.CondominiumID != condoID {
		return nil, mongo.ErrNoDocuments
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAreaRepo) GetActiveByName(_ context.Context, condoID, name string) (*models.Area, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.areas {
		if a.CondominiumID == condoID && a.Name == name && a.IsActive {
			cp := *a
			return &cp, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeAreaRepo) ListByCondominium(_ context.Context, condoID string, activeOnly bool) ([]models.Area, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Area
	for _, a := range r.areas {
		if a.CondominiumID != condoID {
			continue
		}
		if activeOnly && !a.IsActive {
			continue
		}
		out = append(out, *a)
	}
	return out, nil
}

func (r *fakeAreaRepo) Update(_ context.Context, area *models.Area) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.areas[area.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	cp := *area
	r.areas[area.ID] = &cp
	return nil
}

func (r *fakeAreaRepo) Deactivate(_ context.Context, condoID, areaID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.areas[areaID]
	if !ok || a.CondominiumID != condoID {
		return mongo.ErrNoDocuments
	}
	a.IsActive = false
	return nil
}

// fakeReservationRepo is an in-memory ReservationRepository enforcing
// the same partial-unique approval constraint as the Mongo index.
type fakeReservationRepo struct {
	mu    sync.Mutex
	items map[string]*models.Reservation
	seq   int
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{items: make(map[string]*models.Reservation)}
}

func (r *fakeReservationRepo) approvedExists(areaID string, date time.Time, slot, exceptID string) bool {
	for _, res := range r.items {
		if res.ID != exceptID && res.AreaID == areaID && res.Date.Equal(date) &&
			res.TimeSlot == slot && res.Status == models.StatusAprovada {
			return true
		}
	}
	return false
}

func (r *fakeReservationRepo) Create(_ context.Context, res *models.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res.ID == "" {
		r.seq++
		res.ID = fmt.Sprintf("res-%d", r.seq)
	}
	if res.Status == models.StatusAprovada && r.approvedExists(res.AreaID, res.Date, res.TimeSlot, res.ID) {
		return reservationRepo.ErrSlotApproved
	}
	cp := *res
	r.items[res.ID] = &cp
	return nil
}

func (r *fakeReservationRepo) GetByID(_ context.Context, id string) (*models.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.items[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *res
	return &cp, nil
}

func (r *fakeReservationRepo) CountBlockingForDay(_ context.Context, areaID string, date time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	day := models.NormalizeDate(date)
	count := 0
	for _, res := range r.items {
		if res.AreaID == areaID && res.Date.Equal(day) && res.Status.Blocking() {
			count++
		}
	}
	return count, nil
}

func (r *fakeReservationRepo) HasBlockingForUserDay(_ context.Context, areaID, userID string, date time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	day := models.NormalizeDate(date)
	for _, res := range r.items {
		if res.AreaID == areaID && res.UserID == userID && res.Date.Equal(day) && res.Status.Blocking() {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeReservationRepo) HasBlockingForSlot(_ context.Context, areaID string, date time.Time, timeSlot string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	day := models.NormalizeDate(date)
	for _, res := range r.items {
		if res.AreaID == areaID && res.Date.Equal(day) && res.TimeSlot == timeSlot && res.Status.Blocking() {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeReservationRepo) ListForAreaBetween(_ context.Context, areaID string, from, to time.Time) ([]models.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Reservation
	for _, res := range r.items {
		if res.AreaID == areaID && !res.Date.Before(from) && res.Date.Before(to) {
			out = append(out, *res)
		}
	}
	return out, nil
}

func (r *fakeReservationRepo) ListByUser(_ context.Context, userID string) ([]models.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Reservation
	for _, res := range r.items {
		if res.UserID == userID {
			out = append(out, *res)
		}
	}
	return out, nil
}

func (r *fakeReservationRepo) ListPendingByCondominium(_ context.Context, condoID string) ([]models.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Reservation
	for _, res := range r.items {
		if res.CondominiumID == condoID && res.Status == models.StatusPendente {
			out = append(out, *res)
		}
	}
	return out, nil
}

func (r *fakeReservationRepo) ApproveIfPending(_ context.Context, id, approverID string, at time.Time) (*models.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.items[id]
	if !ok || res.Status != models.StatusPendente {
		return nil, reservationRepo.ErrNotPending
	}
	if r.approvedExists(res.AreaID, res.Date, res.TimeSlot, res.ID) {
		return nil, reservationRepo.ErrSlotApproved
	}
	res.Status = models.StatusAprovada
	res.ApprovedBy = approverID
	stamped := at
	res.ApprovedAt = &stamped
	cp := *res
	return &cp, nil
}

func (r *fakeReservationRepo) RejectIfPending(_ context.Context, id, rejecterID, reason string, at time.Time) (*models.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.items[id]
	if !ok || res.Status != models.StatusPendente {
		return nil, reservationRepo.ErrNotPending
	}
	res.Status = models.StatusRejeitada
	res.ApprovedBy = rejecterID
	stamped := at
	res.ApprovedAt = &stamped
	res.RejectionReason = reason
	cp := *res
	return &cp, nil
}

func (r *fakeReservationRepo) Cancel(_ context.Context, id string, at time.Time) (*models.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.items[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	res.Status = models.StatusCancelada
	stamped := at
	res.CanceledAt = &stamped
	cp := *res
	return &cp, nil
}

// fakeDirectory is an in-memory ActorDirectory.
type fakeDirectory struct {
	actors map[string]models.Actor
}

func newFakeDirectory(actors ...models.Actor) *fakeDirectory {
	d := &fakeDirectory{actors: make(map[string]models.Actor)}
	for _, a := range actors {
		d.actors[a.ID] = a
	}
	return d
}

func (d *fakeDirectory) GetByID(_ context.Context, id string) (*models.Actor, error) {
	a, ok := d.actors[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &a, nil
}

func (d *fakeDirectory) GetByTokenHash(_ context.Context, _ string) (*models.Actor, error) {
	return nil, mongo.ErrNoDocuments
}

func (d *fakeDirectory) ManagersOf(_ context.Context, condoID string) ([]models.Actor, error) {
	var out []models.Actor
	for _, a := range d.actors {
		if a.CondominiumID == condoID && a.Role.IsManager() {
			out = append(out, a)
		}
	}
	return out, nil
}

// fakeEnqueuer records queued notifications.
type fakeEnqueuer struct {
	mu       sync.Mutex
	payloads []models.NotificationPayload
	fail     bool
}

func (e *fakeEnqueuer) Enqueue(payload models.NotificationPayload) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.fail {
		return fmt.Errorf("queue unavailable")
	}
	e.payloads = append(e.payloads, payload)
	return nil
}

func (e *fakeEnqueuer) count() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.payloads)
}
