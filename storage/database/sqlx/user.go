package sqlxrepos

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/kanisa-app/kanisa/core/user"
)

type userRow struct {
	ID                 string         `db:"id"`
	Name               string         `db:"name"`
	Email              string         `db:"email"`
	Role               string         `db:"role"`
	Avatar             string         `db:"avatar"`
	EnrolledCourseIDs  pq.StringArray `db:"enrolled_course_ids"`
	CompletedCourseIDs pq.StringArray `db:"completed_course_ids"`
	QuizzesTaken       int            `db:"quizzes_taken"`
	PasswordHash       []byte         `db:"password_hash"`
	CreatedAt          time.Time      `db:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at"`
	LastLogin          time.Time      `db:"last_login"`
}

func (r userRow) toUser() user.User {
	return user.User{
		ID:                 r.ID,
		Name:               r.Name,
		Email:              r.Email,
		Role:               user.Role(r.Role),
		Avatar:             r.Avatar,
		EnrolledCourseIDs:  []string(r.EnrolledCourseIDs),
		CompletedCourseIDs: []string(r.CompletedCourseIDs),
		QuizzesTaken:       r.QuizzesTaken,
		PasswordHash:       r.PasswordHash,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
		LastLogin:          r.LastLogin,
	}
}

func toRow(usr user.User) userRow {
	return userRow{
		ID:                 usr.ID,
		Name:               usr.Name,
		Email:              usr.Email,
		Role:               string(usr.Role),
		Avatar:             usr.Avatar,
		EnrolledCourseIDs:  pq.StringArray(usr.EnrolledCourseIDs),
		CompletedCourseIDs: pq.StringArray(usr.CompletedCourseIDs),
		QuizzesTaken:       usr.QuizzesTaken,
		PasswordHash:       usr.PasswordHash,
		CreatedAt:          usr.CreatedAt,
		UpdatedAt:          usr.UpdatedAt,
		LastLogin:          usr.LastLogin,
	}
}

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) user.Repository {
	return &userRepository{db: db}
}

func (repo *userRepository) CheckEmailUniqueness(email string, excludedUsers ...user.User) error {
	exclIDs := make(pq.StringArray, 0, len(excludedUsers))
	for _, usr := range excludedUsers {
		exclIDs = append(exclIDs, usr.ID)
	}

	var exists bool
	err := repo.db.Get(
		&exists,
		`SELECT EXISTS (SELECT 1 FROM "user" WHERE lower(email) = lower($1) AND NOT (id = ANY($2)))`,
		email, exclIDs,
	)
	if err != nil {
		return errors.Wrap(err, "checking email uniqueness")
	}
	if exists {
		return user.ErrEmailExists
	}
	return nil
}

func (repo *userRepository) CreateUser(usr user.User) (user.User, error) {
	if usr.ID == "" {
		usr.ID = uuid.New().String()
	}
	_, err := repo.db.NamedExec(
		`INSERT INTO "user" (id, name, email, role, avatar, enrolled_course_ids, completed_course_ids,
		                     quizzes_taken, password_hash, created_at, updated_at, last_login)
		 VALUES (:id, :name, :email, :role, :avatar, :enrolled_course_ids, :completed_course_ids,
		         :quizzes_taken, :password_hash, :created_at, :updated_at, :last_login)`,
		toRow(usr),
	)
	if err != nil {
		return user.User{}, errors.Wrap(err, "inserting user")
	}
	return usr, nil
}

func (repo *userRepository) QueryAllUsers() ([]user.User, error) {
	var rows []userRow
	if err := repo.db.Select(&rows, `SELECT * FROM "user" ORDER BY created_at`); err != nil {
		return nil, errors.Wrap(err, "querying users")
	}
	return toUsers(rows), nil
}

func (repo *userRepository) FilterUsers(filter user.QueryFilter) ([]user.User, error) {
	q := `SELECT * FROM "user" WHERE 1=1`
	args := map[string]interface{}{}
	if filter.Search != "" {
		q += ` AND (name ILIKE :search OR email ILIKE :search)`
		args["search"] = "%" + filter.Search + "%"
	}
	if filter.Role != "" {
		q += ` AND role = :role`
		args["role"] = string(filter.Role)
	}
	q += ` ORDER BY created_at`

	stmt, err := repo.db.PrepareNamed(q)
	if err != nil {
		return nil, errors.Wrap(err, "preparing user filter")
	}
	defer func() { _ = stmt.Close() }()

	var rows []userRow
	if err := stmt.Select(&rows, args); err != nil {
		return nil, errors.Wrap(err, "filtering users")
	}
	return toUsers(rows), nil
}

func (repo *userRepository) GetUserByID(id string) (user.User, error) {
	var row userRow
	if err := repo.db.Get(&row, `SELECT * FROM "user" WHERE id = $1`, id); err != nil {
		if err == sql.ErrNoRows {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, errors.Wrap(err, "getting user by id")
	}
	return row.toUser(), nil
}

func (repo *userRepository) GetUserByEmail(email string) (user.User, error) {
	var row userRow
	if err := repo.db.Get(&row, `SELECT * FROM "user" WHERE lower(email) = lower($1)`, email); err != nil {
		if err == sql.ErrNoRows {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, errors.Wrap(err, "getting user by email")
	}
	return row.toUser(), nil
}

func (repo *userRepository) UpdateUser(usr user.User) (user.User, error) {
	res, err := repo.db.NamedExec(
		`UPDATE "user"
		 SET name = :name, email = :email, role = :role, avatar = :avatar,
		     enrolled_course_ids = :enrolled_course_ids, completed_course_ids = :completed_course_ids,
		     quizzes_taken = :quizzes_taken, password_hash = :password_hash,
		     updated_at = :updated_at, last_login = :last_login
		 WHERE id = :id`,
		toRow(usr),
	)
	if err != nil {
		return user.User{}, errors.Wrap(err, "updating user")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return user.User{}, user.ErrNotFound
	}
	return usr, nil
}

func (repo *userRepository) DeleteUsersByID(ids ...string) error {
	_, err := repo.db.Exec(`DELETE FROM "user" WHERE id = ANY($1)`, pq.StringArray(ids))
	return errors.Wrap(err, "deleting users")
}

func toUsers(rows []userRow) []user.User {
	users := make([]user.User, len(rows))
	for i, r := range rows {
		users[i] = r.toUser()
	}
	return users
}
