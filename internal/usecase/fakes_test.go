package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ritesh23s/task-manager/internal/data/entity"
	"github.com/ritesh23s/task-manager/internal/data/repository"
	"github.com/ritesh23s/task-manager/pkg/mailer"

	"github.com/google/uuid"
)

// In-memory repository fakes mirroring the Postgres semantics the
// services rely on: duplicate-email rejection, first-account-is-admin,
// not-found sentinels and the cascading user delete.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
	tasks *fakeTaskRepo
}

type fakeTaskRepo struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*entity.Task
}

func newFakeRepository() (*repository.Repository, *fakeUserRepo, *fakeTaskRepo) {
	tasks := &fakeTaskRepo{entries: make(map[uuid.UUID]*entity.Task)}
	users := &fakeUserRepo{users: make(map[uuid.UUID]*entity.User), tasks: tasks}
	return &repository.Repository{User: users, Task: tasks}, users, tasks
}

func copyUser(u *entity.User) *entity.User {
	c := *u
	return &c
}

func copyTask(t *entity.Task) *entity.Task {
	c := *t
	return &c
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.users {
		if existing.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}

	user.Role = entity.RoleUser
	if len(f.users) == 0 {
		user.Role = entity.RoleAdmin
	}

	f.users[user.ID] = copyUser(user)
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return copyUser(user), nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, user := range f.users {
		if user.Email == email {
			return copyUser(user), nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAllByRole(_ context.Context, role entity.UserRole) ([]*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var users []*entity.User
	for _, user := range f.users {
		if user.Role == role {
			users = append(users, copyUser(user))
		}
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})
	return users, nil
}

func (f *fakeUserRepo) CountByRole(_ context.Context, role entity.UserRole) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var count int64
	for _, user := range f.users {
		if user.Role == role {
			count++
		}
	}
	return count, nil
}

func (f *fakeUserRepo) CountActiveByRole(_ context.Context, role entity.UserRole) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var count int64
	for _, user := range f.users {
		if user.Role == role && user.IsActive {
			count++
		}
	}
	return count, nil
}

func (f *fakeUserRepo) SetResetOTP(_ context.Context, id uuid.UUID, code string, expiresAt, lastSentAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[id]
	if !ok {
		return repository.ErrNotFound
	}

	user.ResetOTP = &code
	user.ResetOTPExpiresAt = &expiresAt
	user.ResetOTPLastSentAt = &lastSentAt
	return nil
}

func (f *fakeUserRepo) ResetPassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[id]
	if !ok {
		return repository.ErrNotFound
	}

	user.PasswordHash = passwordHash
	user.ResetOTP = nil
	user.ResetOTPExpiresAt = nil
	user.ResetOTPLastSentAt = nil
	return nil
}

func (f *fakeUserRepo) ToggleActive(_ context.Context, id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[id]
	if !ok {
		return false, repository.ErrNotFound
	}

	user.IsActive = !user.IsActive
	return user.IsActive, nil
}

func (f *fakeUserRepo) DeleteWithTasks(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.users[id]; !ok {
		return repository.ErrNotFound
	}

	f.tasks.mu.Lock()
	for taskID, task := range f.tasks.entries {
		if task.UserID == id {
			delete(f.tasks.entries, taskID)
		}
	}
	f.tasks.mu.Unlock()

	delete(f.users, id)
	return nil
}

func (f *fakeTaskRepo) Create(_ context.Context, task *entity.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.entries[task.ID] = copyTask(task)
	return nil
}

func (f *fakeTaskRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	task, ok := f.entries[id]
	if !ok {
		return nil, nil
	}
	return copyTask(task), nil
}

func (f *fakeTaskRepo) matching(userID uuid.UUID, status, priority string) []*entity.Task {
	var tasks []*entity.Task
	for _, task := range f.entries {
		if task.UserID != userID {
			continue
		}
		if status != "" && task.Status != status {
			continue
		}
		if priority != "" && string(task.Priority) != priority {
			continue
		}
		tasks = append(tasks, copyTask(task))
	}
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})
	return tasks
}

func (f *fakeTaskRepo) FindByUser(_ context.Context, userID uuid.UUID, status, priority string, limit, offset int) ([]*entity.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	tasks := f.matching(userID, status, priority)
	if offset >= len(tasks) {
		return nil, nil
	}
	tasks = tasks[offset:]
	if len(tasks) > limit {
		tasks = tasks[:limit]
	}
	return tasks, nil
}

func (f *fakeTaskRepo) CountByUser(_ context.Context, userID uuid.UUID, status, priority string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return int64(len(f.matching(userID, status, priority))), nil
}

func (f *fakeTaskRepo) FindAllByUser(_ context.Context, userID uuid.UUID) ([]*entity.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.matching(userID, "", ""), nil
}

func (f *fakeTaskRepo) UpdateStatus(_ context.Context, id uuid.UUID, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	task, ok := f.entries[id]
	if !ok {
		return repository.ErrNotFound
	}

	task.Status = status
	return nil
}

func (f *fakeTaskRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.entries[id]; !ok {
		return repository.ErrNotFound
	}

	delete(f.entries, id)
	return nil
}

func (f *fakeTaskRepo) CountAll(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return int64(len(f.entries)), nil
}

func (f *fakeTaskRepo) CountByStatus(_ context.Context, status string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var count int64
	for _, task := range f.entries {
		if task.Status == status {
			count++
		}
	}
	return count, nil
}

// recordMailer captures dispatched messages for assertion; Send never
// fails.
type recordMailer struct {
	mu   sync.Mutex
	sent []mailer.Message
}

func (m *recordMailer) Send(_ context.Context, msg mailer.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sent = append(m.sent, msg)
	return nil
}

func (m *recordMailer) messages() []mailer.Message {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]mailer.Message, len(m.sent))
	copy(out, m.sent)
	return out
}
