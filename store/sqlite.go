package store

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/KunalBhamoriya/survey-maker/model"
)

// Sqlite implements Store over a database/sql handle opened by the
// database package.
type Sqlite struct {
	db *sql.DB
}

func NewSqlite(db *sql.DB) *Sqlite {
	return &Sqlite{db: db}
}

func (s *Sqlite) InsertSurvey(ctx context.Context, survey model.Survey) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "insert_survey.begin_tx")
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO survey (id, title, description, owner_id, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		survey.ID,
		survey.Title,
		survey.Description,
		survey.OwnerID,
		survey.CreatedAt,
	)
	if err != nil {
		return errors.Wrap(err, "insert_survey")
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO survey_question (survey_id, position, question_id, type, title, options, required)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return errors.Wrap(err, "insert_survey.questions.prepare")
	}
	defer stmt.Close()

	for i, q := range survey.Questions {
		opts, err := json.Marshal(q.Options)
		if err != nil {
			return errors.Wrap(err, "insert_survey.questions.encode_options")
		}
		_, err = stmt.ExecContext(ctx, survey.ID, i, q.ID, q.Type, q.Title, string(opts), q.Required)
		if err != nil {
			return errors.Wrap(err, "insert_survey.questions.insert")
		}
	}

	err = tx.Commit()
	return errors.Wrap(err, "insert_survey.commit")
}

func (s *Sqlite) FindSurveyByID(ctx context.Context, id string) (survey model.Survey, err error) {
	err = s.db.QueryRowContext(ctx, `
		SELECT id, title, description, owner_id, created_at
		FROM survey
		WHERE id = ?`,
		id,
	).Scan(&survey.ID, &survey.Title, &survey.Description, &survey.OwnerID, &survey.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return survey, ErrNotFound
	}
	if err != nil {
		return survey, errors.Wrap(err, "get_survey")
	}

	survey.Questions, err = s.findQuestions(ctx, id)
	return survey, err
}

func (s *Sqlite) findQuestions(ctx context.Context, surveyID string) ([]model.Question, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT question_id, type, title, options, required
		FROM survey_question
		WHERE survey_id = ?
		ORDER BY position`,
		surveyID,
	)
	if err != nil {
		return nil, errors.Wrap(err, "get_survey.questions")
	}
	defer rows.Close()

	var questions []model.Question
	for rows.Next() {
		q := model.Question{}
		var opts string
		err = rows.Scan(&q.ID, &q.Type, &q.Title, &opts, &q.Required)
		if err != nil {
			return nil, errors.Wrap(err, "get_survey.questions.scan")
		}
		err = json.Unmarshal([]byte(opts), &q.Options)
		if err != nil {
			return nil, errors.Wrap(err, "get_survey.questions.decode_options")
		}
		questions = append(questions, q)
	}
	return questions, errors.Wrap(rows.Err(), "get_survey.questions.rows")
}

func (s *Sqlite) ListSurveys(ctx context.Context) ([]model.SurveyListing, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT s.id, s.title, s.description, s.owner_id, s.created_at, IFNULL(u.username, '')
		FROM survey s
		LEFT OUTER JOIN user u ON (u.id = s.owner_id)
		ORDER BY s.created_at DESC`)
	if err != nil {
		return nil, errors.Wrap(err, "get_surveys")
	}
	defer rows.Close()

	listings := []model.SurveyListing{}
	for rows.Next() {
		l := model.SurveyListing{}
		err = rows.Scan(&l.ID, &l.Title, &l.Description, &l.OwnerID, &l.CreatedAt, &l.OwnerName)
		if err != nil {
			return nil, errors.Wrap(err, "get_surveys.scan")
		}
		listings = append(listings, l)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "get_surveys.rows")
	}

	for i := range listings {
		listings[i].Questions, err = s.findQuestions(ctx, listings[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return listings, nil
}

func (s *Sqlite) DeleteSurveyByID(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM survey WHERE id = ?`, id)
	if err != nil {
		return errors.Wrap(err, "delete_survey")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "delete_survey.verify")
	}
	if n < 1 {
		return ErrNotFound
	}
	return nil
}

func (s *Sqlite) InsertResponse(ctx context.Context, response model.Response) error {
	answers, err := json.Marshal(response.Answers)
	if err != nil {
		return errors.Wrap(err, "insert_response.encode_answers")
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO response (id, survey_id, answers, submitted_at)
		VALUES (?, ?, ?, ?)`,
		response.ID,
		response.SurveyID,
		string(answers),
		response.SubmittedAt,
	)
	return errors.Wrap(err, "insert_response")
}

func (s *Sqlite) FindResponsesBySurveyID(ctx context.Context, surveyID string) ([]model.Response, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, survey_id, answers, submitted_at
		FROM response
		WHERE survey_id = ?
		ORDER BY submitted_at, id`,
		surveyID,
	)
	if err != nil {
		return nil, errors.Wrap(err, "get_responses")
	}
	defer rows.Close()

	responses := []model.Response{}
	for rows.Next() {
		r := model.Response{}
		var answers string
		err = rows.Scan(&r.ID, &r.SurveyID, &answers, &r.SubmittedAt)
		if err != nil {
			return nil, errors.Wrap(err, "get_responses.scan")
		}
		err = json.Unmarshal([]byte(answers), &r.Answers)
		if err != nil {
			return nil, errors.Wrap(err, "get_responses.decode_answers")
		}
		responses = append(responses, r)
	}
	return responses, errors.Wrap(rows.Err(), "get_responses.rows")
}

func (s *Sqlite) DeleteResponsesBySurveyID(ctx context.Context, surveyID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM response WHERE survey_id = ?`, surveyID)
	return errors.Wrap(err, "delete_responses")
}

// CreateUser stores a new user account. Used by the -create-user bootstrap
// flag and by tests; regular request handling never writes users.
func (s *Sqlite) CreateUser(ctx context.Context, user model.User) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO user (id, username, password_hash)
		VALUES (?, ?, ?)`,
		user.ID,
		user.Username,
		user.PasswordHash,
	)
	return errors.Wrap(err, "insert_user")
}
