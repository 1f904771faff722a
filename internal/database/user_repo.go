package database

import (
	"database/sql"
	"fmt"

	"github.com/ekinoks/slack-assistant-bot/internal/domain/contract"
	"github.com/ekinoks/slack-assistant-bot/internal/domain/entity"
)

type userRepository struct {
	db dbConn
}

func newUserRepo(db dbConn) contract.UserRepo {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *entity.User) error {
	query := `
		INSERT INTO users (slack_user_id, slack_channel_id, username, first_name, timezone, current_module)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		user.SlackUserID,
		user.SlackChannelID,
		user.Username,
		user.FirstName,
		user.Timezone,
		user.CurrentModule,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	user.ID = id
	return nil
}

func (r *userRepository) GetBySlackID(slackUserID string) (*entity.User, error) {
	user := &entity.User{}
	query := `
		SELECT id, slack_user_id, slack_channel_id, username, first_name, timezone, current_module, created_at
		FROM users
		WHERE slack_user_id = ?
	`

	err := r.db.QueryRow(query, slackUserID).Scan(
		&user.ID,
		&user.SlackUserID,
		&user.SlackChannelID,
		&user.Username,
		&user.FirstName,
		&user.Timezone,
		&user.CurrentModule,
		&user.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

func (r *userRepository) GetByID(id int64) (*entity.User, error) {
	user := &entity.User{}
	query := `
		SELECT id, slack_user_id, slack_channel_id, username, first_name, timezone, current_module, created_at
		FROM users
		WHERE id = ?
	`

	err := r.db.QueryRow(query, id).Scan(
		&user.ID,
		&user.SlackUserID,
		&user.SlackChannelID,
		&user.Username,
		&user.FirstName,
		&user.Timezone,
		&user.CurrentModule,
		&user.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

func (r *userRepository) GetAll() ([]*entity.User, error) {
	query := `
		SELECT id, slack_user_id, slack_channel_id, username, first_name, timezone, current_module, created_at
		FROM users
		ORDER BY id ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		user := &entity.User{}
		err := rows.Scan(
			&user.ID,
			&user.SlackUserID,
			&user.SlackChannelID,
			&user.Username,
			&user.FirstName,
			&user.Timezone,
			&user.CurrentModule,
			&user.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	return users, nil
}

func (r *userRepository) UpdateTimezone(userID int64, timezone string) error {
	query := `UPDATE users SET timezone = ? WHERE id = ?`

	_, err := r.db.Exec(query, timezone, userID)
	if err != nil {
		return fmt.Errorf("failed to update user timezone: %w", err)
	}

	return nil
}

func (r *userRepository) UpdateChannel(userID int64, slackChannelID string) error {
	query := `UPDATE users SET slack_channel_id = ? WHERE id = ?`

	_, err := r.db.Exec(query, slackChannelID, userID)
	if err != nil {
		return fmt.Errorf("failed to update user channel: %w", err)
	}

	return nil
}

func (r *userRepository) SetCurrentModule(userID int64, module string) error {
	query := `UPDATE users SET current_module = ? WHERE id = ?`

	_, err := r.db.Exec(query, module, userID)
	if err != nil {
		return fmt.Errorf("failed to set current module: %w", err)
	}

	return nil
}
