package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/armonia-apps/msa-client-api/internal/gateway"
	"github.com/armonia-apps/msa-client-api/internal/models"
	appErrors "github.com/armonia-apps/msa-client-api/pkg/errors"
)

type mockCourseAPI struct {
	courseFilter models.CourseFilter
	lessonFilter models.LessonFilter
	created      *gateway.CreateLessonRequest
}

func (m *mockCourseAPI) ListCourses(ctx context.Context, filter models.CourseFilter) ([]models.Course, error) {
	m.courseFilter = filter
	return []models.Course{}, nil
}

func (m *mockCourseAPI) CreateCourse(ctx context.Context, req gateway.CreateCourseRequest) (*models.Course, error) {
	return &models.Course{ID: "c1", Name: req.Name}, nil
}

func (m *mockCourseAPI) UpdateCourse(ctx context.Context, id string, req gateway.UpdateCourseRequest) (*models.Course, error) {
	return &models.Course{ID: id}, nil
}

func (m *mockCourseAPI) DeleteCourse(ctx context.Context, id string) error { return nil }

func (m *mockCourseAPI) ListLessons(ctx context.Context, filter models.LessonFilter) ([]models.Lesson, error) {
	m.lessonFilter = filter
	return []models.Lesson{}, nil
}

func (m *mockCourseAPI) CreateLesson(ctx context.Context, req gateway.CreateLessonRequest) (*models.Lesson, error) {
	m.created = &req
	return &models.Lesson{ID: "l1"}, nil
}

func (m *mockCourseAPI) UpdateLesson(ctx context.Context, id string, req gateway.UpdateLessonRequest) (*models.Lesson, error) {
	return &models.Lesson{ID: id}, nil
}

func (m *mockCourseAPI) DeleteLesson(ctx context.Context, id string) error { return nil }

func TestListCoursesPinsTeacherToSelf(t *testing.T) {
	api := &mockCourseAPI{}
	svc := NewCourseService(api, nil, nil)

	teacher := &models.User{ID: "t1", Role: models.RoleTeacher}
	_, err := svc.ListCourses(context.Background(), teacher, models.CourseFilter{TeacherID: "t9"})

	require.NoError(t, err)
	assert.Equal(t, "t1", api.courseFilter.TeacherID, "a teacher cannot list another teacher's courses")
}

func TestListCoursesAdminFilterPassesThrough(t *testing.T) {
	api := &mockCourseAPI{}
	svc := NewCourseService(api, nil, nil)

	admin := &models.User{ID: "a1", Role: models.RoleAdmin}
	active := true
	_, err := svc.ListCourses(context.Background(), admin, models.CourseFilter{TeacherID: "t9", Active: &active})

	require.NoError(t, err)
	assert.Equal(t, "t9", api.courseFilter.TeacherID)
	require.NotNil(t, api.courseFilter.Active)
	assert.True(t, *api.courseFilter.Active)
}

func TestListLessonsPinsTeacherToSelf(t *testing.T) {
	api := &mockCourseAPI{}
	svc := NewCourseService(api, nil, nil)

	teacher := &models.User{ID: "t1", Role: models.RoleTeacher}
	_, err := svc.ListLessons(context.Background(), teacher, models.LessonFilter{TeacherID: "t9", FromDate: "2026-03-01"})

	require.NoError(t, err)
	assert.Equal(t, "t1", api.lessonFilter.TeacherID)
	assert.Equal(t, "2026-03-01", api.lessonFilter.FromDate)
}

func TestCreateCourseRequiresTeacher(t *testing.T) {
	api := &mockCourseAPI{}
	svc := NewCourseService(api, nil, nil)

	_, err := svc.CreateCourse(context.Background(), CreateCourseRequest{
		Name:       "Pianoforte base",
		Instrument: "pianoforte",
	})

	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrValidation))
}

func TestCreateLessonRejectsBadDate(t *testing.T) {
	api := &mockCourseAPI{}
	svc := NewCourseService(api, nil, nil)

	_, err := svc.CreateLesson(context.Background(), CreateLessonRequest{
		CourseID: "c1",
		Date:     "01/03/2026",
		Time:     "15:00",
		Duration: 60,
	})

	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrValidation))
	assert.Nil(t, api.created, "invalid payloads never reach the backend")
}

func TestCreateLessonForwardsPayload(t *testing.T) {
	api := &mockCourseAPI{}
	svc := NewCourseService(api, nil, nil)

	lesson, err := svc.CreateLesson(context.Background(), CreateLessonRequest{
		CourseID: "c1",
		Date:     "2026-03-01",
		Time:     "15:00",
		Duration: 45,
		Notes:    "portare lo spartito",
	})

	require.NoError(t, err)
	assert.Equal(t, "l1", lesson.ID)
	require.NotNil(t, api.created)
	assert.Equal(t, 45, api.created.Duration)
	assert.Equal(t, "portare lo spartito", api.created.Notes)
}
