package models

// Lesson is a recurring teaching slot for a class within a semester.
type Lesson struct {
	ID          int64   `db:"id"`
	LessonName  *string `db:"lesson_name"`
	Description *string `db:"description"`
	DayOfWeek   *int    `db:"day_of_week"`
	StartPeriod *int    `db:"start_period"`
	EndPeriod   *int    `db:"end_period"`

	Semester    *Semester    `db:"-"`
	ClassSchool *ClassSchool `db:"-"`
	Teacher     *Teacher     `db:"-"`
	Room        *Room        `db:"-"`
}
