package person_test

import (
	"testing"

	"warehouse/internal/core/domain/model/person"

	"github.com/stretchr/testify/assert"
)

func TestShortName(t *testing.T) {
	tests := []struct {
		last, first, middle string
		want                string
	}{
		{"Petrov", "Pavel", "Sergeevich", "Petrov P. S."},
		{"Petrov", "pavel", "", "Petrov P."},
		{"", "Pavel", "Sergeevich", "P. S."},
		{"Иванов", "иван", "Петрович", "Иванов И. П."},
		{" ", "", "", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, person.ShortName(tt.last, tt.first, tt.middle))
	}
}
