// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/nydiokar/Gary/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// LogEntry is one captured log line.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
	TaskID   int
}

// MockLogger captures log entries for assertions.
type MockLogger struct {
	Entries []LogEntry
}

func (m *MockLogger) log(level string, taskID int, category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: level, TaskID: taskID, Category: category, Msg: msg})
}

// Debug records a debug entry.
func (m *MockLogger) Debug(taskID int, category, msg string) { m.log("debug", taskID, category, msg) }

// Info records an info entry.
func (m *MockLogger) Info(taskID int, category, msg string) { m.log("info", taskID, category, msg) }

// Warn records a warning entry.
func (m *MockLogger) Warn(taskID int, category, msg string) { m.log("warn", taskID, category, msg) }

// Error records an error entry.
func (m *MockLogger) Error(taskID int, category, msg string) { m.log("error", taskID, category, msg) }

// MockStore is an in-memory test double for domain.Store. It hands itself
// out as the transaction, so mutations performed by a failing unit of work
// are not rolled back; tests rely on use cases validating before mutating.
type MockStore struct {
	TasksByID     map[int]*domain.Task
	Responses     map[int][]*domain.TaskResponse
	UsersByID     map[string]*domain.User
	TagsByName    map[string]*domain.Tag
	TaskTags      map[int][]int
	RecurringByID map[int]*domain.RecurringTask
	Notifications []*domain.Notification
	Audits        []*domain.AuditLog
	TxErr         error
	NextTaskID    int
	NextTagID     int
	NextRecurID   int
}

// NewMockStore creates a MockStore with initialized maps.
func NewMockStore() *MockStore {
	return &MockStore{
		TasksByID:     make(map[int]*domain.Task),
		Responses:     make(map[int][]*domain.TaskResponse),
		UsersByID:     make(map[string]*domain.User),
		TagsByName:    make(map[string]*domain.Tag),
		TaskTags:      make(map[int][]int),
		RecurringByID: make(map[int]*domain.RecurringTask),
		NextTaskID:    1,
		NextTagID:     1,
		NextRecurID:   1,
	}
}

// AddUser seeds a user.
func (m *MockStore) AddUser(id, name string, role domain.Role) {
	m.UsersByID[id] = &domain.User{ID: id, Name: name, Role: role}
}

// AddTask seeds a task and returns it.
func (m *MockStore) AddTask(task *domain.Task) *domain.Task {
	if task.ID == 0 {
		task.ID = m.NextTaskID
		m.NextTaskID++
	} else if task.ID >= m.NextTaskID {
		m.NextTaskID = task.ID + 1
	}
	m.TasksByID[task.ID] = task
	return task
}

// WithTx runs fn against the store's own state.
func (m *MockStore) WithTx(_ context.Context, fn func(tx domain.Tx) error) error {
	if m.TxErr != nil {
		return m.TxErr
	}
	return fn(mockTx{m})
}

// mockTx exposes the store's state as a domain.Tx. It is a separate type so
// the repository accessor methods do not collide with MockStore's exported
// Notifications and Audits fields.
type mockTx struct {
	store *MockStore
}

// Tasks returns the task repository.
func (m mockTx) Tasks() domain.TaskRepository { return (*mockTasks)(m.store) }

// Users returns the user repository.
func (m mockTx) Users() domain.UserRepository { return (*mockUsers)(m.store) }

// Tags returns the tag repository.
func (m mockTx) Tags() domain.TagRepository { return (*mockTags)(m.store) }

// Notifications returns the notification repository.
func (m mockTx) Notifications() domain.NotificationRepository { return (*mockNotifications)(m.store) }

// Recurring returns the recurring task repository.
func (m mockTx) Recurring() domain.RecurringTaskRepository { return (*mockRecurring)(m.store) }

// Audits returns the audit log repository.
func (m mockTx) Audits() domain.AuditLogRepository { return (*mockAudits)(m.store) }

type mockTasks MockStore

func (m *mockTasks) Get(id int) (*domain.Task, error) {
	task, ok := m.TasksByID[id]
	if !ok {
		return nil, nil
	}
	copied := *task
	return &copied, nil
}

func (m *mockTasks) List() ([]*domain.Task, error) {
	ids := make([]int, 0, len(m.TasksByID))
	for id := range m.TasksByID {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	tasks := make([]*domain.Task, 0, len(ids))
	for _, id := range ids {
		tasks = append(tasks, m.TasksByID[id])
	}
	return tasks, nil
}

func (m *mockTasks) ListOverdue(now time.Time) ([]*domain.Task, error) {
	all, _ := m.List()
	var overdue []*domain.Task
	for _, t := range all {
		if t.IsOverdue(now) {
			overdue = append(overdue, t)
		}
	}
	return overdue, nil
}

func (m *mockTasks) Create(task *domain.Task) (int, error) {
	copied := *task
	copied.ID = m.NextTaskID
	m.NextTaskID++
	m.TasksByID[copied.ID] = &copied
	return copied.ID, nil
}

func (m *mockTasks) CreateSpawned(task *domain.Task) (int, bool, error) {
	if task.SpawnKey == nil {
		return 0, false, fmt.Errorf("spawned task requires a spawn key")
	}
	for _, t := range m.TasksByID {
		if t.SpawnKey != nil && *t.SpawnKey == *task.SpawnKey {
			return 0, false, nil
		}
	}
	id, err := m.Create(task)
	return id, err == nil, err
}

func (m *mockTasks) Update(task *domain.Task) error {
	if _, ok := m.TasksByID[task.ID]; !ok {
		return domain.ErrTaskNotFound
	}
	copied := *task
	m.TasksByID[task.ID] = &copied
	return nil
}

func (m *mockTasks) Delete(id int) error {
	if _, ok := m.TasksByID[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(m.TasksByID, id)
	delete(m.Responses, id)
	delete(m.TaskTags, id)
	return nil
}

func (m *mockTasks) AddResponse(resp *domain.TaskResponse) error {
	m.Responses[resp.TaskID] = append(m.Responses[resp.TaskID], resp)
	return nil
}

func (m *mockTasks) ListResponses(taskID int) ([]*domain.TaskResponse, error) {
	return m.Responses[taskID], nil
}

type mockUsers MockStore

func (m *mockUsers) Get(id string) (*domain.User, error) {
	user, ok := m.UsersByID[id]
	if !ok {
		return nil, nil
	}
	return user, nil
}

func (m *mockUsers) Create(user *domain.User) error {
	m.UsersByID[user.ID] = user
	return nil
}

type mockTags MockStore

func (m *mockTags) GetByName(name string) (*domain.Tag, error) {
	tag, ok := m.TagsByName[name]
	if !ok {
		return nil, nil
	}
	return tag, nil
}

func (m *mockTags) Create(name string) (int, error) {
	id := m.NextTagID
	m.NextTagID++
	m.TagsByName[name] = &domain.Tag{ID: id, Name: name}
	return id, nil
}

func (m *mockTags) Assign(taskID, tagID int) error {
	m.TaskTags[taskID] = append(m.TaskTags[taskID], tagID)
	return nil
}

func (m *mockTags) ListForTask(taskID int) ([]string, error) {
	var names []string
	for _, tagID := range m.TaskTags[taskID] {
		for _, tag := range m.TagsByName {
			if tag.ID == tagID {
				names = append(names, tag.Name)
			}
		}
	}
	sort.Strings(names)
	return names, nil
}

type mockNotifications MockStore

func (m *mockNotifications) Add(n *domain.Notification) error {
	m.Notifications = append(m.Notifications, n)
	return nil
}

func (m *mockNotifications) ListFor(recipient string) ([]*domain.Notification, error) {
	var ns []*domain.Notification
	for i := len(m.Notifications) - 1; i >= 0; i-- {
		if m.Notifications[i].Recipient == recipient {
			ns = append(ns, m.Notifications[i])
		}
	}
	return ns, nil
}

type mockRecurring MockStore

func (m *mockRecurring) Get(id int) (*domain.RecurringTask, error) {
	rt, ok := m.RecurringByID[id]
	if !ok {
		return nil, nil
	}
	copied := *rt
	return &copied, nil
}

func (m *mockRecurring) List() ([]*domain.RecurringTask, error) {
	ids := make([]int, 0, len(m.RecurringByID))
	for id := range m.RecurringByID {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	rts := make([]*domain.RecurringTask, 0, len(ids))
	for _, id := range ids {
		rts = append(rts, m.RecurringByID[id])
	}
	return rts, nil
}

func (m *mockRecurring) ListDue(now time.Time) ([]*domain.RecurringTask, error) {
	all, _ := m.List()
	var due []*domain.RecurringTask
	for _, rt := range all {
		if !rt.NextOccurrence.After(now) {
			due = append(due, rt)
		}
	}
	return due, nil
}

func (m *mockRecurring) Create(rt *domain.RecurringTask) (int, error) {
	copied := *rt
	copied.ID = m.NextRecurID
	m.NextRecurID++
	m.RecurringByID[copied.ID] = &copied
	return copied.ID, nil
}

func (m *mockRecurring) UpdateNextOccurrence(id int, next time.Time) error {
	rt, ok := m.RecurringByID[id]
	if !ok {
		return domain.ErrRecurringNotFound
	}
	rt.NextOccurrence = next
	return nil
}

type mockAudits MockStore

func (m *mockAudits) Record(entry *domain.AuditLog) error {
	m.Audits = append(m.Audits, entry)
	return nil
}

func (m *mockAudits) List() ([]*domain.AuditLog, error) {
	return m.Audits, nil
}

// MockStoreInitializer is a test double for domain.StoreInitializer.
type MockStoreInitializer struct {
	Initialized bool
	Forced      bool
}

// Initialize records the call.
func (m *MockStoreInitializer) Initialize(force bool) error {
	m.Initialized = true
	m.Forced = force
	return nil
}
