// Package memory is an in-process implementation of repositories.Repository.
// It backs service and handler tests; the server always runs against Postgres.
package memory

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"sync"

	"github.com/SAP-F-2025/tool-assessment-service/internal/models"
	"github.com/SAP-F-2025/tool-assessment-service/internal/repositories"
)

// Operation names accepted by DB.Fail
const (
	OpToolGet              = "tool.get"
	OpToolList             = "tool.list"
	OpQuestionByTool       = "question.by_tool"
	OpScaleList            = "scale.list"
	OpScaleByIDs           = "scale.by_ids"
	OpQuestionScaleByQ     = "question_scale.by_question"
	OpStudentFind          = "student.find"
	OpStudentAssessmentGet = "student_assessment.by_student"
	OpStudentAssessmentAdd = "student_assessment.create_batch"
)

type (
	DB struct {
		mu sync.RWMutex

		tools              []models.Tool
		questions          []models.Question
		scales             []models.Scale
		questionScales     []models.QuestionScale
		students           []models.Student
		studentAssessments []models.StudentAssessment

		failures map[string]error
		calls    map[string]int
		pkCount  uint
	}
)

func Open() *DB {
	return &DB{
		failures: make(map[string]error),
		calls:    make(map[string]int),
	}
}

// Fail makes every later call of op return err
func (db *DB) Fail(op string, err error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.failures[op] = err
}

// Calls returns how many times op was invoked
func (db *DB) Calls(op string) int {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.calls[op]
}

func (db *DB) AddTools(tools ...models.Tool) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.tools = append(db.tools, tools...)
}

func (db *DB) AddQuestions(questions ...models.Question) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.questions = append(db.questions, questions...)
}

func (db *DB) AddScales(scales ...models.Scale) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.scales = append(db.scales, scales...)
}

func (db *DB) AddQuestionScales(rows ...models.QuestionScale) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.questionScales = append(db.questionScales, rows...)
}

func (db *DB) AddStudents(students ...models.Student) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.students = append(db.students, students...)
}

func (db *DB) AddStudentAssessments(rows ...models.StudentAssessment) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.insertAssessments(rows)
}

// StudentAssessments returns a snapshot of the assignment table
func (db *DB) StudentAssessments() []models.StudentAssessment {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return slices.Clone(db.studentAssessments)
}

func (db *DB) insertAssessments(rows []models.StudentAssessment) {
	for _, row := range rows {
		db.pkCount++
		row.StudentAssessmentID = db.pkCount
		db.studentAssessments = append(db.studentAssessments, row)
	}
}

// enter records a call and returns the injected failure, if any. Callers hold no lock.
func (db *DB) enter(ctx context.Context, op string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	db.mu.Lock()
	defer db.mu.Unlock()
	db.calls[op]++
	return db.failures[op]
}

// parseID mimics Postgres rejecting a non-integer literal for an integer column
func parseID(column, value string) (uint, error) {
	id, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid input syntax for type integer %s: %q", column, value)
	}
	return uint(id), nil
}

// Repository returns the repositories.Repository view of db
func (db *DB) Repository() repositories.Repository {
	return &repository{db: db}
}
