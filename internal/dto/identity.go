package dto

import (
	"encoding/binary"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Identified is implemented by every entity DTO.
type Identified interface {
	Identifier() *int64
}

// sameIdentity holds only for two present, equal identifiers.
func sameIdentity(a, b *int64) bool {
	if a == nil || b == nil {
		return false
	}
	return *a == *b
}

func identityHash(id *int64) uint64 {
	if id == nil {
		return 0
	}
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(*id))
	return xxhash.Sum64(buf[:])
}

func fmtID(v *int64) string {
	if v == nil {
		return "null"
	}
	return strconv.FormatInt(*v, 10)
}

func fmtInt(v *int) string {
	if v == nil {
		return "null"
	}
	return strconv.Itoa(*v)
}

func fmtText(v *string) string {
	if v == nil {
		return "'null'"
	}
	return "'" + *v + "'"
}

func fmtTime(v *time.Time) string {
	if v == nil {
		return "'null'"
	}
	return "'" + v.UTC().Format(time.RFC3339Nano) + "'"
}
