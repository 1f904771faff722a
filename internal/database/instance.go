package database

import (
	"context"
	"fmt"

	"github.com/ekinoks/slack-assistant-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db           *DB
	userRepo     contract.UserRepo
	habitRepo    contract.HabitRepo
	reminderRepo contract.ReminderRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := &instance{
		db: db,
	}
	instance.repoInstances()
	return instance
}

// repoInstances initializes all repositories
func (i *instance) repoInstances() {
	i.userRepo = newUserRepo(i.db.conn)
	i.habitRepo = newHabitRepo(i.db.conn)
	i.reminderRepo = newReminderRepo(i.db.conn)
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		userRepo:     newUserRepo(db),
		habitRepo:    newHabitRepo(db),
		reminderRepo: newReminderRepo(db),
	}
}

// User returns the users repository
func (i *instance) User() contract.UserRepo {
	return i.userRepo
}

// Habit returns the habits repository
func (i *instance) Habit() contract.HabitRepo {
	return i.habitRepo
}

// Reminder returns the reminders repository
func (i *instance) Reminder() contract.ReminderRepo {
	return i.reminderRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
