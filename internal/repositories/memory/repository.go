package memory

import (
	"cmp"
	"context"
	"slices"

	"github.com/SAP-F-2025/tool-assessment-service/internal/models"
	"github.com/SAP-F-2025/tool-assessment-service/internal/repositories"
	"gorm.io/gorm"
)

type repository struct {
	db *DB
}

func (r *repository) Tool() repositories.ToolRepository         { return &toolRepository{db: r.db} }
func (r *repository) Question() repositories.QuestionRepository { return &questionRepository{db: r.db} }
func (r *repository) Scale() repositories.ScaleRepository       { return &scaleRepository{db: r.db} }
func (r *repository) QuestionScale() repositories.QuestionScaleRepository {
	return &questionScaleRepository{db: r.db}
}
func (r *repository) Student() repositories.StudentRepository { return &studentRepository{db: r.db} }
func (r *repository) StudentAssessment() repositories.StudentAssessmentRepository {
	return &studentAssessmentRepository{db: r.db}
}

// WithTransaction buffers assignment inserts and applies them only when fn succeeds
func (r *repository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	tx := &txRepository{repository: r, assessments: &studentAssessmentRepository{db: r.db, buffered: true}}
	if err := fn(tx); err != nil {
		return err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.insertAssessments(tx.assessments.pending)
	return nil
}

func (r *repository) Ping(ctx context.Context) error { return ctx.Err() }
func (r *repository) Close() error                   { return nil }

type txRepository struct {
	*repository
	assessments *studentAssessmentRepository
}

func (tx *txRepository) StudentAssessment() repositories.StudentAssessmentRepository {
	return tx.assessments
}

func (tx *txRepository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return fn(tx)
}

// ===== TABLES =====

type toolRepository struct{ db *DB }

func (r *toolRepository) GetByID(ctx context.Context, _ *gorm.DB, id string) (*models.Tool, error) {
	if err := r.db.enter(ctx, OpToolGet); err != nil {
		return nil, err
	}
	toolID, err := parseID("tool_id", id)
	if err != nil {
		return nil, err
	}

	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	for _, tool := range r.db.tools {
		if tool.ToolID == toolID {
			t := tool
			return &t, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *toolRepository) List(ctx context.Context, _ *gorm.DB) ([]*models.Tool, error) {
	if err := r.db.enter(ctx, OpToolList); err != nil {
		return nil, err
	}

	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	tools := make([]*models.Tool, 0, len(r.db.tools))
	for _, tool := range r.db.tools {
		t := tool
		tools = append(tools, &t)
	}
	slices.SortStableFunc(tools, func(a, b *models.Tool) int { return cmp.Compare(a.ToolID, b.ToolID) })
	return tools, nil
}

type questionRepository struct{ db *DB }

func (r *questionRepository) GetByTool(ctx context.Context, _ *gorm.DB, toolID string) ([]*models.Question, error) {
	if err := r.db.enter(ctx, OpQuestionByTool); err != nil {
		return nil, err
	}
	id, err := parseID("tool_id", toolID)
	if err != nil {
		return nil, err
	}

	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	questions := []*models.Question{}
	for _, question := range r.db.questions {
		if question.ToolID == id {
			q := question
			questions = append(questions, &q)
		}
	}
	slices.SortStableFunc(questions, func(a, b *models.Question) int { return cmp.Compare(a.QuestionID, b.QuestionID) })
	return questions, nil
}

type scaleRepository struct{ db *DB }

func (r *scaleRepository) List(ctx context.Context, _ *gorm.DB) ([]*models.Scale, error) {
	if err := r.db.enter(ctx, OpScaleList); err != nil {
		return nil, err
	}

	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	scales := make([]*models.Scale, 0, len(r.db.scales))
	for _, scale := range r.db.scales {
		s := scale
		scales = append(scales, &s)
	}
	return scales, nil
}

func (r *scaleRepository) GetByIDs(ctx context.Context, _ *gorm.DB, ids []uint) ([]*models.Scale, error) {
	if len(ids) == 0 {
		return []*models.Scale{}, nil
	}
	if err := r.db.enter(ctx, OpScaleByIDs); err != nil {
		return nil, err
	}

	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	scales := []*models.Scale{}
	for _, scale := range r.db.scales {
		if slices.Contains(ids, scale.ScaleID) {
			s := scale
			scales = append(scales, &s)
		}
	}
	return scales, nil
}

type questionScaleRepository struct{ db *DB }

func (r *questionScaleRepository) GetByQuestion(ctx context.Context, _ *gorm.DB, questionID uint) ([]*models.QuestionScale, error) {
	if err := r.db.enter(ctx, OpQuestionScaleByQ); err != nil {
		return nil, err
	}

	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	rows := []*models.QuestionScale{}
	for _, row := range r.db.questionScales {
		if row.QuestionID == questionID {
			qs := row
			rows = append(rows, &qs)
		}
	}
	return rows, nil
}

type studentRepository struct{ db *DB }

func (r *studentRepository) FindIDs(ctx context.Context, _ *gorm.DB, filters repositories.StudentFilters) ([]uint, error) {
	if err := r.db.enter(ctx, OpStudentFind); err != nil {
		return nil, err
	}

	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	ids := []uint{}
	for _, student := range r.db.students {
		if student.EnrollmentYear == filters.EnrollmentYear && student.School == filters.School {
			ids = append(ids, student.StudentID)
		}
	}
	slices.Sort(ids)
	return ids, nil
}

type studentAssessmentRepository struct {
	db       *DB
	buffered bool
	pending  []models.StudentAssessment
}

func (r *studentAssessmentRepository) GetByStudent(ctx context.Context, _ *gorm.DB, studentID string) ([]*models.StudentAssessment, error) {
	if err := r.db.enter(ctx, OpStudentAssessmentGet); err != nil {
		return nil, err
	}
	id, err := parseID("student_id", studentID)
	if err != nil {
		return nil, err
	}

	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	rows := []*models.StudentAssessment{}
	for _, row := range r.db.studentAssessments {
		if row.StudentID == id {
			rows = append(rows, &models.StudentAssessment{
				ToolID:              row.ToolID,
				AssessmentStartDate: row.AssessmentStartDate,
				AssessmentEndDate:   row.AssessmentEndDate,
			})
		}
	}
	slices.SortStableFunc(rows, func(a, b *models.StudentAssessment) int {
		return a.StartDate().Compare(b.StartDate())
	})
	return rows, nil
}

func (r *studentAssessmentRepository) CreateBatch(ctx context.Context, _ *gorm.DB, assessments []*models.StudentAssessment) error {
	if len(assessments) == 0 {
		return nil
	}
	if err := r.db.enter(ctx, OpStudentAssessmentAdd); err != nil {
		return err
	}

	rows := make([]models.StudentAssessment, 0, len(assessments))
	for _, a := range assessments {
		rows = append(rows, *a)
	}

	if r.buffered {
		r.pending = append(r.pending, rows...)
		return nil
	}

	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.insertAssessments(rows)
	return nil
}
