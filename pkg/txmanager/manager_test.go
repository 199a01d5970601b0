package txmanager

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

var errExecQuery = errors.New("storage: failed to execute query")

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "nil",
			err:  nil,
			want: false,
		},
		{
			name: "plain error",
			err:  errors.New("boom"),
			want: false,
		},
		{
			name: "serialization failure",
			err:  &pq.Error{Code: "40001"},
			want: true,
		},
		{
			name: "deadlock detected",
			err:  &pq.Error{Code: "40P01"},
			want: true,
		},
		{
			name: "serialization failure wrapped by repository",
			err:  fmt.Errorf("%w: List - execute query: %w", errExecQuery, &pq.Error{Code: "40001"}),
			want: true,
		},
		{
			name: "serialization failure wrapped by repository and usecase",
			err: fmt.Errorf("failed to get bookings: %w",
				fmt.Errorf("%w: GetByRoomAndDate - execute query: %w", errExecQuery, &pq.Error{Code: "40001"})),
			want: true,
		},
		{
			name: "unique violation is not retryable",
			err:  fmt.Errorf("%w: Create - execute insert: %w", errExecQuery, &pq.Error{Code: "23505"}),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryable(tt.err))
		})
	}
}
