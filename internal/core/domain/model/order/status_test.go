package order_test

import (
	"fmt"
	"testing"

	"github.com/spantra1997/SecondServe/internal/core/domain/model/order"
	"github.com/spantra1997/SecondServe/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Pending))
		assert.Equal(t, 2, int(order.Assigned))
		assert.Equal(t, 3, int(order.InTransit))
		assert.Equal(t, 4, int(order.Delivered))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		for _, status := range []order.Status{order.Pending, order.Assigned, order.InTransit, order.Delivered} {
			require.NoError(t, status.Validate())
		}
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Unknown,
			order.Status(-1),
			order.Status(5),
			order.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid order status", int(status)))
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return wire representation", func(t *testing.T) {
		testCases := []struct {
			status   order.Status
			expected string
		}{
			{order.Pending, "pending"},
			{order.Assigned, "assigned"},
			{order.InTransit, "in_transit"},
			{order.Delivered, "delivered"},
		}

		for _, tc := range testCases {
			assert.Equal(t, tc.expected, tc.status.String())
		}
	})

	t.Run("should return unknown for invalid values", func(t *testing.T) {
		assert.Equal(t, "unknown", order.Unknown.String())
		assert.Equal(t, "unknown", order.Status(42).String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse all wire strings", func(t *testing.T) {
		for _, s := range []string{"pending", "assigned", "in_transit", "delivered"} {
			status, err := order.StatusFromString(s)

			require.NoError(t, err)
			assert.Equal(t, s, status.String())
		}
	})

	t.Run("should reject unknown strings", func(t *testing.T) {
		for _, s := range []string{"", "unknown", "Pending", "cancelled"} {
			_, err := order.StatusFromString(s)

			require.Error(t, err, "expected error for %q", s)
		}
	})
}

func TestStatus_Assign(t *testing.T) {
	t.Run("should allow transition from Pending to Assigned", func(t *testing.T) {
		newStatus, err := order.Pending.Assign()

		require.NoError(t, err)
		assert.Equal(t, order.Assigned, newStatus)
	})

	t.Run("should conflict from any other status", func(t *testing.T) {
		for _, status := range []order.Status{order.Assigned, order.InTransit, order.Delivered} {
			t.Run(fmt.Sprintf("from %s", status.String()), func(t *testing.T) {
				_, err := status.Assign()

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrStatusConflict)
			})
		}
	})
}

func TestStatus_AdvanceTo(t *testing.T) {
	t.Run("should allow the two forward edges", func(t *testing.T) {
		newStatus, err := order.Assigned.AdvanceTo(order.InTransit)
		require.NoError(t, err)
		assert.Equal(t, order.InTransit, newStatus)

		newStatus, err = order.InTransit.AdvanceTo(order.Delivered)
		require.NoError(t, err)
		assert.Equal(t, order.Delivered, newStatus)
	})

	t.Run("should reject every other edge", func(t *testing.T) {
		testCases := []struct {
			from, to order.Status
		}{
			{order.Pending, order.InTransit},
			{order.Pending, order.Delivered},
			{order.Pending, order.Assigned},
			{order.Assigned, order.Delivered},
			{order.Assigned, order.Pending},
			{order.InTransit, order.Assigned},
			{order.InTransit, order.InTransit},
			{order.Delivered, order.Delivered},
			{order.Delivered, order.InTransit},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("%s to %s", tc.from.String(), tc.to.String()), func(t *testing.T) {
				_, err := tc.from.AdvanceTo(tc.to)

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrInvalidTransition)
				assert.Contains(t, err.Error(), tc.from.String())
				assert.Contains(t, err.Error(), tc.to.String())
			})
		}
	})

	t.Run("should reject invalid target", func(t *testing.T) {
		_, err := order.Assigned.AdvanceTo(order.Unknown)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_ValidateCanHaveDriver(t *testing.T) {
	t.Run("pending order must not have a driver", func(t *testing.T) {
		require.NoError(t, order.Pending.ValidateCanHaveDriver(false))
		require.Error(t, order.Pending.ValidateCanHaveDriver(true))
	})

	t.Run("post-pending orders must have a driver", func(t *testing.T) {
		for _, status := range []order.Status{order.Assigned, order.InTransit, order.Delivered} {
			require.NoError(t, status.ValidateCanHaveDriver(true))
			require.Error(t, status.ValidateCanHaveDriver(false))
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Assigned.IsTerminal())
	assert.False(t, order.InTransit.IsTerminal())
	assert.True(t, order.Delivered.IsTerminal())
}
