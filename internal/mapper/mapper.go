// Package mapper converts between persisted entities and their DTOs.
//
// Every mapper is a stateless value: the zero value is ready to use and all
// conversions are pure field copies. A nil input always yields a nil output.
package mapper

import (
	"strconv"
	"time"
)

// clone copies a nullable scalar so the DTO and entity never alias.
func clone[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func toID(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}

func fromID(id int64) *int64 {
	if id == 0 {
		return nil
	}
	return &id
}

func textCell(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func intCell(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

func idCell(p *int64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatInt(*p, 10)
}

func timeCell(p *time.Time) string {
	if p == nil {
		return ""
	}
	return p.UTC().Format(time.RFC3339)
}
