package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func int64Ptr(v int64) *int64 { return &v }
func strPtr(v string) *string { return &v }
func intPtr(v int) *int       { return &v }

func TestSemesterDTOEquality(t *testing.T) {
	a := &SemesterDTO{ID: int64Ptr(1), SemesterName: strPtr("Fall")}
	b := &SemesterDTO{ID: int64Ptr(1), SemesterName: strPtr("Spring")}
	c := &SemesterDTO{ID: int64Ptr(2)}

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.NotEqual(t, a.Hash(), c.Hash())
}

func TestUnpersistedDTOsAreNeverEqual(t *testing.T) {
	a := &ClassSchoolDTO{ClassName: strPtr("10A")}
	b := &ClassSchoolDTO{ClassName: strPtr("10A")}

	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(a))
	assert.False(t, a.Equal(&ClassSchoolDTO{ID: int64Ptr(1)}))
	assert.Zero(t, a.Hash())
}

func TestEqualityAcrossAllKinds(t *testing.T) {
	assert.True(t, (&SchoolDTO{ID: int64Ptr(3)}).Equal(&SchoolDTO{ID: int64Ptr(3)}))
	assert.True(t, (&TeacherDTO{ID: int64Ptr(3)}).Equal(&TeacherDTO{ID: int64Ptr(3)}))
	assert.True(t, (&RoomDTO{ID: int64Ptr(3)}).Equal(&RoomDTO{ID: int64Ptr(3)}))
	assert.True(t, (&LessonDTO{ID: int64Ptr(3)}).Equal(&LessonDTO{ID: int64Ptr(3)}))
	assert.False(t, (&LessonDTO{}).Equal(&LessonDTO{}))
	assert.False(t, (&RoomDTO{}).Equal(&RoomDTO{ID: int64Ptr(3)}))
}

func TestSemesterDTOString(t *testing.T) {
	start := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	d := &SemesterDTO{ID: int64Ptr(5), SemesterName: strPtr("Fall"), StartDate: &start, TotalWeek: intPtr(15)}

	assert.Equal(t,
		"SemesterDTO{id=5, semesterName='Fall', startDate='2024-09-01T00:00:00Z', endDate='null', totalWeek=15}",
		d.String())
}

func TestClassSchoolDTOString(t *testing.T) {
	d := &ClassSchoolDTO{ClassName: strPtr("10A")}
	assert.Equal(t, "ClassSchoolDTO{id=null, className='10A', description='null'}", d.String())
}

func TestIdentifierOnNil(t *testing.T) {
	var d *LessonDTO
	assert.Nil(t, d.Identifier())
	assert.Zero(t, d.Hash())
}
