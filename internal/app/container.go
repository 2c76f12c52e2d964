// Package app provides the dependency injection container for the application.
package app

import (
	"github.com/nydiokar/Gary/internal/domain"
	"github.com/nydiokar/Gary/internal/infra/config"
	"github.com/nydiokar/Gary/internal/infra/logging"
	"github.com/nydiokar/Gary/internal/infra/sqlstore"
	"github.com/nydiokar/Gary/internal/usecase"
)

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Store            domain.Store
	StoreInitializer domain.StoreInitializer
	Clock            domain.Clock
	ConfigLoader     domain.ConfigLoader
	Logger           domain.Logger

	// Configuration
	Config *domain.Config

	store  *sqlstore.Store
	logger *logging.Logger
}

// New creates a new Container using the given config file path.
// An empty configPath uses the default gary.toml in the working directory.
func New(configPath string) (*Container, error) {
	if configPath == "" {
		configPath = config.ConfigFileName
	}
	configLoader := config.NewLoader(configPath)
	cfg, err := configLoader.Load()
	if err != nil {
		return nil, err
	}

	store, err := sqlstore.New(cfg.Store.Path)
	if err != nil {
		return nil, err
	}

	logger := logging.New(cfg.Log.Path, logging.ParseLevel(cfg.Log.Level))

	return &Container{
		Store:            store,
		StoreInitializer: store,
		Clock:            domain.RealClock{},
		ConfigLoader:     configLoader,
		Logger:           logger,
		Config:           cfg,
		store:            store,
		logger:           logger,
	}, nil
}

// Close releases the container's resources.
func (c *Container) Close() error {
	var lastErr error
	if c.logger != nil {
		if err := c.logger.Close(); err != nil {
			lastErr = err
		}
	}
	if c.store != nil {
		if err := c.store.Close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// CreateTaskUseCase creates a CreateTask use case.
func (c *Container) CreateTaskUseCase() *usecase.CreateTask {
	return usecase.NewCreateTask(c.Store, c.Clock, c.Logger)
}

// UpdateStatusUseCase creates an UpdateStatus use case.
func (c *Container) UpdateStatusUseCase() *usecase.UpdateStatus {
	return usecase.NewUpdateStatus(c.Store, c.Clock, c.Logger)
}

// DelegateTaskUseCase creates a DelegateTask use case.
func (c *Container) DelegateTaskUseCase() *usecase.DelegateTask {
	return usecase.NewDelegateTask(c.Store, c.Clock, c.Logger)
}

// AcceptTaskUseCase creates an AcceptTask use case.
func (c *Container) AcceptTaskUseCase() *usecase.AcceptTask {
	return usecase.NewAcceptTask(c.Store, c.Clock, c.Logger)
}

// VerifyTaskUseCase creates a VerifyTask use case.
func (c *Container) VerifyTaskUseCase() *usecase.VerifyTask {
	return usecase.NewVerifyTask(c.Store, c.Clock, c.Logger)
}

// DeleteTaskUseCase creates a DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Store, c.Clock, c.Logger)
}

// ListTasksUseCase creates a ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Store)
}

// ListOverdueUseCase creates a ListOverdue use case.
func (c *Container) ListOverdueUseCase() *usecase.ListOverdue {
	return usecase.NewListOverdue(c.Store, c.Clock)
}

// TaskDetailsUseCase creates a TaskDetails use case.
func (c *Container) TaskDetailsUseCase() *usecase.TaskDetails {
	return usecase.NewTaskDetails(c.Store)
}

// ProcessRecurringUseCase creates a ProcessRecurring use case.
func (c *Container) ProcessRecurringUseCase() *usecase.ProcessRecurring {
	return usecase.NewProcessRecurring(c.Store, c.Clock, c.Logger)
}

// ScheduleRecurringUseCase creates a ScheduleRecurring use case.
func (c *Container) ScheduleRecurringUseCase() *usecase.ScheduleRecurring {
	return usecase.NewScheduleRecurring(c.Store, c.Clock, c.Logger)
}

// ListRecurringUseCase creates a ListRecurring use case.
func (c *Container) ListRecurringUseCase() *usecase.ListRecurring {
	return usecase.NewListRecurring(c.Store)
}

// SendNotificationUseCase creates a SendNotification use case.
func (c *Container) SendNotificationUseCase() *usecase.SendNotification {
	return usecase.NewSendNotification(c.Store, c.Clock, c.Logger)
}

// ListNotificationsUseCase creates a ListNotifications use case.
func (c *Container) ListNotificationsUseCase() *usecase.ListNotifications {
	return usecase.NewListNotifications(c.Store)
}

// NotifyOverdueUseCase creates a NotifyOverdue use case.
func (c *Container) NotifyOverdueUseCase() *usecase.NotifyOverdue {
	return usecase.NewNotifyOverdue(c.Store, c.Clock, c.Logger)
}

// AddUserUseCase creates an AddUser use case.
func (c *Container) AddUserUseCase() *usecase.AddUser {
	return usecase.NewAddUser(c.Store, c.Clock, c.Logger)
}

// AddTagUseCase creates an AddTag use case.
func (c *Container) AddTagUseCase() *usecase.AddTag {
	return usecase.NewAddTag(c.Store, c.Clock, c.Logger)
}

// AssignTagUseCase creates an AssignTag use case.
func (c *Container) AssignTagUseCase() *usecase.AssignTag {
	return usecase.NewAssignTag(c.Store, c.Clock, c.Logger)
}
