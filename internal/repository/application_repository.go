package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/vidyasetu/scholartrack-backend/internal/model"
)

// RowQuerier is the slice of pgxpool.Pool the repository needs. The pool
// satisfies it in production; tests substitute fakes.
type RowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ApplicationRepository handles read-only access to application records.
type ApplicationRepository struct {
	db           RowQuerier
	queryTimeout time.Duration
}

// NewApplicationRepository creates a new ApplicationRepository. Every query
// it issues is bounded by queryTimeout.
func NewApplicationRepository(db RowQuerier, queryTimeout time.Duration) *ApplicationRepository {
	return &ApplicationRepository{db: db, queryTimeout: queryTimeout}
}

// GetByID retrieves the single application row matching id.
// pgx.ErrNoRows propagates when no row matches.
func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (*model.StoredApplication, error) {
	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	a := &model.StoredApplication{}
	err := r.db.QueryRow(ctx,
		`SELECT id, name, course_name, year_of_study, created_at, updated_at,
		        student_salaried, father_alive, father_working, father_occupation,
		        mother_alive, mother_working, mother_occupation, marksheet_upload,
		        aadhar_no, cap_id
		 FROM applications WHERE id = $1`, id,
	).Scan(
		&a.ID, &a.Name, &a.CourseName, &a.YearOfStudy, &a.CreatedAt, &a.UpdatedAt,
		&a.StudentSalaried, &a.FatherAlive, &a.FatherWorking, &a.FatherOccupation,
		&a.MotherAlive, &a.MotherWorking, &a.MotherOccupation, &a.MarksheetUpload,
		&a.AadharNo, &a.CapID,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}
