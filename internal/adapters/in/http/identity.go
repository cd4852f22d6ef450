package http

import (
	"errors"

	"github.com/spantra1997/SecondServe/internal/core/domain/model/account"
	"github.com/spantra1997/SecondServe/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Identity headers set by the upstream identity collaborator. The platform
// trusts them as-is and never re-derives role claims.
const (
	HeaderUserID   = "X-User-Id"
	HeaderUserRole = "X-User-Role"
)

// errUnauthenticated signals missing or malformed identity headers.
var errUnauthenticated = errors.New("missing or malformed identity headers")

// Identity carries the caller's claims for one request.
type Identity struct {
	UserID kernel.UUID
	Role   account.Role
}

// identityFrom extracts the caller identity from the request headers.
// Returns errUnauthenticated when either header is absent or unparseable.
func identityFrom(ctx echo.Context) (Identity, error) {
	rawID := ctx.Request().Header.Get(HeaderUserID)
	rawRole := ctx.Request().Header.Get(HeaderUserRole)
	if rawID == "" || rawRole == "" {
		return Identity{}, errUnauthenticated
	}

	userID, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return Identity{}, errUnauthenticated
	}

	role, err := account.RoleFromString(rawRole)
	if err != nil {
		return Identity{}, errUnauthenticated
	}

	return Identity{UserID: userID, Role: role}, nil
}
