package services

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"lms/apperrors"
	"lms/models"
	courseModels "lms/models/course"
	"lms/repository"
)

// --- in-memory fakes ---

type fakeTxRunner struct{}

func (fakeTxRunner) Transaction(fc func(tx *gorm.DB) error, _ ...*sql.TxOptions) error {
	return fc(nil)
}

type fakeUserRepo struct {
	users map[uint]*models.User
}

func (r *fakeUserRepo) FindByID(id uint) (*models.User, error) { return r.users[id], nil }
func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) Create(u *models.User) error { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) Update(u *models.User) error { r.users[u.ID] = u; return nil }

type fakeCourseRepo struct {
	courses map[uint]*courseModels.Course
}

func (r *fakeCourseRepo) FindByID(id uint) (*courseModels.Course, error) { return r.courses[id], nil }
func (r *fakeCourseRepo) FindPublished(page, limit int) ([]courseModels.Course, int64, error) {
	return nil, 0, nil
}
func (r *fakeCourseRepo) FindByInstructor(instructorID uint) ([]courseModels.Course, error) {
	return nil, nil
}
func (r *fakeCourseRepo) GetCourseLessons(courseID uint) ([]courseModels.Lesson, error) {
	return nil, nil
}
func (r *fakeCourseRepo) Create(c *courseModels.Course) error { r.courses[c.ID] = c; return nil }
func (r *fakeCourseRepo) Update(c *courseModels.Course) error { r.courses[c.ID] = c; return nil }

type fakeLessonRepo struct {
	lessons []courseModels.Lesson
}

func (r *fakeLessonRepo) FindByID(id uint) (*courseModels.Lesson, error) {
	for i := range r.lessons {
		if r.lessons[i].ID == id {
			return &r.lessons[i], nil
		}
	}
	return nil, nil
}
func (r *fakeLessonRepo) FindByCourseID(courseID uint) ([]courseModels.Lesson, error) {
	var out []courseModels.Lesson
	for _, l := range r.lessons {
		if l.CourseID == courseID {
			out = append(out, l)
		}
	}
	return out, nil
}
func (r *fakeLessonRepo) Create(l *courseModels.Lesson) error { return nil }
func (r *fakeLessonRepo) Update(l *courseModels.Lesson) error { return nil }
func (r *fakeLessonRepo) Delete(id uint) error                { return nil }

type fakeEnrollmentRepo struct {
	enrollments map[uint]*courseModels.Enrollment
	nextID      uint
}

func (r *fakeEnrollmentRepo) FindByID(id uint) (*courseModels.Enrollment, error) {
	return r.enrollments[id], nil
}
func (r *fakeEnrollmentRepo) FindByUserID(userID uint) ([]courseModels.Enrollment, error) {
	var out []courseModels.Enrollment
	for _, e := range r.enrollments {
		if e.UserID == userID {
			out = append(out, *e)
		}
	}
	return out, nil
}
func (r *fakeEnrollmentRepo) FindByUserAndCourse(userID, courseID uint) (*courseModels.Enrollment, error) {
	for _, e := range r.enrollments {
		if e.UserID == userID && e.CourseID == courseID {
			return e, nil
		}
	}
	return nil, nil
}
func (r *fakeEnrollmentRepo) Create(e *courseModels.Enrollment) error {
	r.nextID++
	e.ID = r.nextID
	r.enrollments[e.ID] = e
	return nil
}
func (r *fakeEnrollmentRepo) Update(e *courseModels.Enrollment) error {
	r.enrollments[e.ID] = e
	return nil
}
func (r *fakeEnrollmentRepo) Delete(id uint) error { delete(r.enrollments, id); return nil }
func (r *fakeEnrollmentRepo) WithTx(tx *gorm.DB) repository.EnrollmentRepository { return r }

type fakeProgressRepo struct {
	rows   map[uint]*courseModels.LessonProgress
	nextID uint
}

func (r *fakeProgressRepo) FindByEnrollmentID(enrollmentID uint) ([]courseModels.LessonProgress, error) {
	var out []courseModels.LessonProgress
	for _, p := range r.rows {
		if p.EnrollmentID == enrollmentID {
			out = append(out, *p)
		}
	}
	return out, nil
}
func (r *fakeProgressRepo) FindByEnrollmentAndLesson(enrollmentID, lessonID uint) (*courseModels.LessonProgress, error) {
	for _, p := range r.rows {
		if p.EnrollmentID == enrollmentID && p.LessonID == lessonID {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakeProgressRepo) Create(p *courseModels.LessonProgress) error {
	r.nextID++
	p.ID = r.nextID
	r.rows[p.ID] = p
	return nil
}
func (r *fakeProgressRepo) Update(p *courseModels.LessonProgress) error {
	r.rows[p.ID] = p
	return nil
}
func (r *fakeProgressRepo) WithTx(tx *gorm.DB) repository.LessonProgressRepository { return r }

type fakePayments struct {
	created         []*models.Payment
	tokensRequested int
}

func (f *fakePayments) CreatePayment(tx *gorm.DB, enrollmentID uint, amount float64) (*models.Payment, error) {
	p := models.NewPayment(enrollmentID, "ORDER-TEST-1", amount)
	f.created = append(f.created, p)
	return p, nil
}
func (f *fakePayments) RequestSnapToken(p *models.Payment) error {
	f.tokensRequested++
	p.SnapToken = "snap-token"
	return nil
}

type fakeDispatcher struct {
	events []models.DomainEvent
}

func (f *fakeDispatcher) Dispatch(e models.DomainEvent) { f.events = append(f.events, e) }

type fakeEmail struct {
	welcomes    int
	enrollments int
	completions int
	payments    int
	lastAmount  float64
}

func (f *fakeEmail) SendWelcomeEmail(email, name string) { f.welcomes++ }
func (f *fakeEmail) SendEnrollmentConfirmation(user *models.User, c *courseModels.Course) {
	f.enrollments++
}
func (f *fakeEmail) SendCourseCompletedEmail(user *models.User, c *courseModels.Course) {
	f.completions++
}
func (f *fakeEmail) SendPaymentConfirmation(user *models.User, c *courseModels.Course, amount float64) {
	f.payments++
	f.lastAmount = amount
}

// --- fixture ---

type enrollmentFixture struct {
	service     *EnrollmentService
	users       *fakeUserRepo
	courses     *fakeCourseRepo
	lessons     *fakeLessonRepo
	enrollments *fakeEnrollmentRepo
	progress    *fakeProgressRepo
	payments    *fakePayments
	events      *fakeDispatcher
	email       *fakeEmail
}

func newEnrollmentFixture(t *testing.T) *enrollmentFixture {
	t.Helper()
	f := &enrollmentFixture{
		users:       &fakeUserRepo{users: map[uint]*models.User{}},
		courses:     &fakeCourseRepo{courses: map[uint]*courseModels.Course{}},
		lessons:     &fakeLessonRepo{},
		enrollments: &fakeEnrollmentRepo{enrollments: map[uint]*courseModels.Enrollment{}},
		progress:    &fakeProgressRepo{rows: map[uint]*courseModels.LessonProgress{}},
		payments:    &fakePayments{},
		events:      &fakeDispatcher{},
		email:       &fakeEmail{},
	}
	f.service = NewEnrollmentService(
		fakeTxRunner{},
		f.enrollments,
		f.progress,
		f.courses,
		f.lessons,
		f.users,
		f.payments,
		f.events,
		f.email,
	)
	return f
}

func (f *enrollmentFixture) addUser(t *testing.T, id uint, role string) *models.User {
	u := testUser(t, id, role)
	f.users.users[id] = u
	return u
}

func (f *enrollmentFixture) addCourse(t *testing.T, id, instructorID uint, amount float64, lessonCount int) *courseModels.Course {
	c := testPublishedCourse(t, instructorID, amount)
	c.ID = id
	f.courses.courses[id] = c
	for i := 0; i < lessonCount; i++ {
		lesson, err := courseModels.NewLesson(id, "Lesson", "", "", "", i+1, 10, false)
		require.NoError(t, err)
		lesson.ID = uint(100*int(id) + i + 1)
		f.lessons.lessons = append(f.lessons.lessons, *lesson)
	}
	return c
}

// --- tests ---

func TestEnrollCoursePaid(t *testing.T) {
	f := newEnrollmentFixture(t)
	f.addUser(t, 1, models.RoleStudent)
	f.addCourse(t, 2, 10, 49.99, 3)

	enrollment, err := f.service.EnrollCourse(1, 2)
	require.NoError(t, err)

	assert.True(t, enrollment.IsActive())
	assert.Equal(t, 49.99, enrollment.AmountPaid)

	// One NOT_STARTED row per lesson
	rows, err := f.progress.FindByEnrollmentID(enrollment.ID)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	for _, row := range rows {
		assert.True(t, row.IsNotStarted())
	}

	// Pending payment created and token requested after commit
	require.Len(t, f.payments.created, 1)
	assert.Equal(t, 49.99, f.payments.created[0].GrossAmount)
	assert.Equal(t, 1, f.payments.tokensRequested)

	// Enrolled event carries the persisted ID
	require.Len(t, f.events.events, 1)
	enrolled, ok := f.events.events[0].(models.UserEnrolled)
	require.True(t, ok)
	assert.Equal(t, enrollment.ID, enrolled.EnrollmentID)

	assert.Equal(t, 1, f.email.enrollments)
}

func TestEnrollCourseFreeSkipsPayment(t *testing.T) {
	f := newEnrollmentFixture(t)
	f.addUser(t, 1, models.RoleStudent)
	f.addCourse(t, 2, 10, 0, 2)

	enrollment, err := f.service.EnrollCourse(1, 2)
	require.NoError(t, err)

	assert.Equal(t, 0.0, enrollment.AmountPaid)
	assert.Empty(t, f.payments.created)
	assert.Zero(t, f.payments.tokensRequested)
}

func TestEnrollCourseInstructorPreviewIsFree(t *testing.T) {
	f := newEnrollmentFixture(t)
	f.addUser(t, 11, models.RoleInstructor)
	f.addCourse(t, 2, 10, 49.99, 1)

	enrollment, err := f.service.EnrollCourse(11, 2)
	require.NoError(t, err)

	assert.Equal(t, 0.0, enrollment.AmountPaid)
	assert.Empty(t, f.payments.created)
}

func TestEnrollCourseRejectsDuplicates(t *testing.T) {
	f := newEnrollmentFixture(t)
	f.addUser(t, 1, models.RoleStudent)
	f.addCourse(t, 2, 10, 0, 1)

	_, err := f.service.EnrollCourse(1, 2)
	require.NoError(t, err)

	_, err = f.service.EnrollCourse(1, 2)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
}

func TestEnrollCourseUnknownTargets(t *testing.T) {
	f := newEnrollmentFixture(t)
	f.addUser(t, 1, models.RoleStudent)
	f.addCourse(t, 2, 10, 0, 1)

	_, err := f.service.EnrollCourse(99, 2)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))

	_, err = f.service.EnrollCourse(1, 99)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestEnrollCourseOwnInstructorBlocked(t *testing.T) {
	f := newEnrollmentFixture(t)
	f.addUser(t, 10, models.RoleInstructor)
	f.addCourse(t, 2, 10, 49.99, 1)

	_, err := f.service.EnrollCourse(10, 2)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

// Completing lessons one by one drives the aggregate percentage and finally
// completes the enrollment.
func TestCompleteLessonDrivesEnrollmentProgress(t *testing.T) {
	f := newEnrollmentFixture(t)
	f.addUser(t, 1, models.RoleStudent)
	c := f.addCourse(t, 2, 10, 0, 3)

	enrollment, err := f.service.EnrollCourse(1, c.ID)
	require.NoError(t, err)

	lessons, err := f.lessons.FindByCourseID(c.ID)
	require.NoError(t, err)
	require.Len(t, lessons, 3)

	_, err = f.service.CompleteLesson(enrollment.ID, lessons[0].ID, 1)
	require.NoError(t, err)
	_, err = f.service.CompleteLesson(enrollment.ID, lessons[1].ID, 1)
	require.NoError(t, err)

	after, err := f.enrollments.FindByID(enrollment.ID)
	require.NoError(t, err)
	assert.Equal(t, 67, after.ProgressPercentage)
	assert.True(t, after.IsActive())
	assert.Zero(t, f.email.completions)

	_, err = f.service.CompleteLesson(enrollment.ID, lessons[2].ID, 1)
	require.NoError(t, err)

	after, err = f.enrollments.FindByID(enrollment.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, after.ProgressPercentage)
	assert.True(t, after.IsCompleted())
	require.NotNil(t, after.CompletedAt)

	// The completion email goes out exactly once, on the transition
	assert.Equal(t, 1, f.email.completions)
}

func TestCompleteLessonIsIdempotentForProgress(t *testing.T) {
	f := newEnrollmentFixture(t)
	f.addUser(t, 1, models.RoleStudent)
	c := f.addCourse(t, 2, 10, 0, 2)

	enrollment, err := f.service.EnrollCourse(1, c.ID)
	require.NoError(t, err)

	lessons, _ := f.lessons.FindByCourseID(c.ID)

	_, err = f.service.CompleteLesson(enrollment.ID, lessons[0].ID, 1)
	require.NoError(t, err)
	_, err = f.service.CompleteLesson(enrollment.ID, lessons[0].ID, 1)
	require.NoError(t, err)

	after, _ := f.enrollments.FindByID(enrollment.ID)
	assert.Equal(t, 50, after.ProgressPercentage)
}

func TestUpdateLessonProgressAutoStarts(t *testing.T) {
	f := newEnrollmentFixture(t)
	f.addUser(t, 1, models.RoleStudent)
	c := f.addCourse(t, 2, 10, 0, 1)

	enrollment, err := f.service.EnrollCourse(1, c.ID)
	require.NoError(t, err)

	lessons, _ := f.lessons.FindByCourseID(c.ID)

	progress, err := f.service.UpdateLessonProgress(enrollment.ID, lessons[0].ID, 1, 120)
	require.NoError(t, err)

	assert.True(t, progress.IsInProgress())
	assert.Equal(t, 120, progress.WatchDurationSeconds)

	// Watch time alone never completes the enrollment
	after, _ := f.enrollments.FindByID(enrollment.ID)
	assert.Equal(t, 0, after.ProgressPercentage)
	assert.True(t, after.IsActive())
}

func TestLessonProgressOwnershipChecks(t *testing.T) {
	f := newEnrollmentFixture(t)
	f.addUser(t, 1, models.RoleStudent)
	f.addUser(t, 2, models.RoleStudent)
	c := f.addCourse(t, 3, 10, 0, 1)

	enrollment, err := f.service.EnrollCourse(1, c.ID)
	require.NoError(t, err)

	lessons, _ := f.lessons.FindByCourseID(c.ID)

	// Another user cannot touch the enrollment
	_, err = f.service.CompleteLesson(enrollment.ID, lessons[0].ID, 2)
	assert.Equal(t, apperrors.KindOwnership, apperrors.KindOf(err))

	// Unknown enrollment
	_, err = f.service.UpdateLessonProgress(999, lessons[0].ID, 1, 10)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))

	// Unknown lesson row
	_, err = f.service.CompleteLesson(enrollment.ID, 999, 1)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestGetEnrollmentProgress(t *testing.T) {
	f := newEnrollmentFixture(t)
	f.addUser(t, 1, models.RoleStudent)
	c := f.addCourse(t, 2, 10, 0, 4)

	enrollment, err := f.service.EnrollCourse(1, c.ID)
	require.NoError(t, err)

	lessons, _ := f.lessons.FindByCourseID(c.ID)
	for _, lesson := range lessons[:3] {
		_, err = f.service.CompleteLesson(enrollment.ID, lesson.ID, 1)
		require.NoError(t, err)
	}

	progress, err := f.service.GetEnrollmentProgress(enrollment.ID, 1)
	require.NoError(t, err)

	assert.Equal(t, 4, progress.TotalLessons)
	assert.Equal(t, 3, progress.CompletedLessons)
	assert.Equal(t, 75, progress.ProgressPercentage)
}

func TestCancelEnrollment(t *testing.T) {
	f := newEnrollmentFixture(t)
	f.addUser(t, 1, models.RoleStudent)
	c := f.addCourse(t, 2, 10, 0, 1)

	enrollment, err := f.service.EnrollCourse(1, c.ID)
	require.NoError(t, err)

	cancelled, err := f.service.CancelEnrollment(enrollment.ID, 1)
	require.NoError(t, err)
	assert.True(t, cancelled.IsCancelled())

	// Cancelling again fails
	_, err = f.service.CancelEnrollment(enrollment.ID, 1)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}
