package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sondong-edu/school-admin-api/internal/models"
)

func TestListSpecBuildDefaults(t *testing.T) {
	query, countQuery, args := schoolList.build(models.PageRequest{})

	assert.Equal(t, "SELECT id, school_name, address, phone FROM schools WHERE 1=1 ORDER BY id ASC LIMIT 20 OFFSET 0", query)
	assert.Equal(t, "SELECT COUNT(*) FROM schools WHERE 1=1", countQuery)
	assert.Empty(t, args)
}

func TestListSpecBuildSortAndFilters(t *testing.T) {
	req := models.PageRequest{
		Page: 2,
		Size: 10,
		Sort: []models.Order{{Property: "dayOfWeek", Desc: true}, {Property: "password"}, {Property: "lessonName"}},
		Filters: map[string]int64{
			"teacherId":  7,
			"semesterId": 3,
			"schoolId":   1,
		},
	}
	query, countQuery, args := lessonList.build(req)

	assert.Equal(t, "SELECT "+lessonColumns+" FROM lessons WHERE 1=1 AND semester_id = $1 AND teacher_id = $2 ORDER BY day_of_week DESC, lesson_name ASC, id ASC LIMIT 10 OFFSET 20", query)
	assert.Equal(t, "SELECT COUNT(*) FROM lessons WHERE 1=1 AND semester_id = $1 AND teacher_id = $2", countQuery)
	assert.Equal(t, []interface{}{int64(3), int64(7)}, args)
}

func TestListSpecBuildExplicitIDSort(t *testing.T) {
	query, _, _ := roomList.build(models.PageRequest{Size: 5, Sort: []models.Order{{Property: "id", Desc: true}}})
	assert.Contains(t, query, "ORDER BY id DESC LIMIT 5")
	assert.NotContains(t, query, "id ASC")
}
