// Package form holds the editing-session controllers for trails and
// group hikes. A controller is created per editing session and is not
// safe for concurrent use.
package form

import (
	"encoding/json"
	"log"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/pkg/errors"
)

// ErrInvalid is returned by Save when client side validation fails. The
// field messages are on the controller.
var ErrInvalid = errors.New("form has validation errors")

// Notifier shows action outcomes to the user.
type Notifier interface {
	Success(message string) int64
	Error(message string) int64
}

// snapshot is the last loaded or saved form value. Comparison is
// structural and treats nil and empty lists as equal.
type snapshot[T any] struct {
	saved T
	taken bool
}

func (s *snapshot[T]) take(v T) {
	s.saved = clone(v)
	s.taken = true
}

func (s *snapshot[T]) dirty(v T) bool {
	return s.taken && !cmp.Equal(s.saved, v, cmpopts.EquateEmpty())
}

func clone[T any](v T) T {
	var out T
	b, err := json.Marshal(v)
	if err == nil {
		err = json.Unmarshal(b, &out)
	}
	if err != nil {
		log.Printf("[Form]: unable to copy form state: %v", err)
		return v
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func ids[T any](items []T, id func(T) int64) []int64 {
	out := make([]int64, 0, len(items))
	for _, it := range items {
		out = append(out, id(it))
	}
	return out
}
