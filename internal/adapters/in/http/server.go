// Package http exposes the platform's REST API on Echo. Handlers translate
// requests into commands and queries, and map the error taxonomy onto HTTP
// status codes. Caller identity comes from trusted headers set by the
// upstream identity collaborator.
package http

import (
	"net/http"

	"github.com/spantra1997/SecondServe/internal/core/application/usecases/commands"
	"github.com/spantra1997/SecondServe/internal/core/application/usecases/queries"
	"github.com/spantra1997/SecondServe/internal/core/domain/model/account"
	"github.com/spantra1997/SecondServe/internal/core/domain/model/donation"
	"github.com/spantra1997/SecondServe/internal/core/domain/model/kernel"
	"github.com/spantra1997/SecondServe/internal/core/domain/model/order"
	"github.com/spantra1997/SecondServe/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerUserHandler   commands.RegisterUserCommandHandler
	createDonationHandler commands.CreateDonationCommandHandler
	createOrderHandler    commands.CreateOrderCommandHandler
	assignOrderHandler    commands.AssignOrderCommandHandler
	advanceOrderHandler   commands.AdvanceOrderCommandHandler

	// Query handlers
	listDonationsHandler   queries.ListDonationsQueryHandler
	getDonationHandler     queries.GetDonationQueryHandler
	listOrdersHandler      queries.ListOrdersQueryHandler
	availableOrdersHandler queries.AvailableOrdersQueryHandler
	platformStatsHandler   queries.PlatformStatsQueryHandler
	impactStatsHandler     queries.ImpactStatsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerUserHandler commands.RegisterUserCommandHandler,
	createDonationHandler commands.CreateDonationCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	assignOrderHandler commands.AssignOrderCommandHandler,
	advanceOrderHandler commands.AdvanceOrderCommandHandler,
	listDonationsHandler queries.ListDonationsQueryHandler,
	getDonationHandler queries.GetDonationQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	availableOrdersHandler queries.AvailableOrdersQueryHandler,
	platformStatsHandler queries.PlatformStatsQueryHandler,
	impactStatsHandler queries.ImpactStatsQueryHandler,
) *Server {
	return &Server{
		registerUserHandler:    registerUserHandler,
		createDonationHandler:  createDonationHandler,
		createOrderHandler:     createOrderHandler,
		assignOrderHandler:     assignOrderHandler,
		advanceOrderHandler:    advanceOrderHandler,
		listDonationsHandler:   listDonationsHandler,
		getDonationHandler:     getDonationHandler,
		listOrdersHandler:      listOrdersHandler,
		availableOrdersHandler: availableOrdersHandler,
		platformStatsHandler:   platformStatsHandler,
		impactStatsHandler:     impactStatsHandler,
	}
}

// RegisterRoutes wires every endpoint onto the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/users", s.RegisterUser)
	api.POST("/donations", s.CreateDonation)
	api.GET("/donations", s.GetDonations)
	api.GET("/donations/:id", s.GetDonation)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/available", s.GetAvailableOrders)
	api.PATCH("/orders/:id/assign", s.AssignOrder)
	api.PATCH("/orders/:id/status", s.AdvanceOrder)
	api.GET("/stats", s.GetImpactStats)

	admin := api.Group("/admin")
	admin.GET("/donations", s.AdminGetDonations)
	admin.GET("/orders", s.AdminGetOrders)
	admin.GET("/stats", s.AdminGetStats)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// RegisterUser handles POST /api/v1/users - registers a user profile on
// behalf of the identity collaborator.
func (s *Server) RegisterUser(ctx echo.Context) error {
	var req RegisterUserRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	userID := kernel.NewUUID()
	if req.ID != "" {
		var err error
		if userID, err = kernel.UUIDFromString(req.ID); err != nil {
			return respondError(ctx, err)
		}
	}

	role, err := account.RoleFromString(req.Role)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRegisterUserCommand(userID, req.Email, req.Name, role, req.Phone)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.registerUserHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: userID.String()})
}

// CreateDonation handles POST /api/v1/donations - lists surplus food.
func (s *Server) CreateDonation(ctx echo.Context) error {
	identity, err := identityFrom(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req NewDonationRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	location, err := kernel.NewLocation(
		req.Location.Address, req.Location.City, req.Location.Lat, req.Location.Lng,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	donationID := kernel.NewUUID()
	cmd, err := commands.NewCreateDonationCommand(
		donationID,
		identity.UserID,
		req.FoodType,
		req.Quantity,
		req.PreparedAt,
		req.ExpiryDate,
		req.Description,
		req.PhotoURL,
		location,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createDonationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: donationID.String()})
}

// GetDonations handles GET /api/v1/donations - donors see their own
// listings, everyone else browses all, optionally narrowed by ?status=.
func (s *Server) GetDonations(ctx echo.Context) error {
	identity, err := identityFrom(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	status := donation.Unknown
	if raw := ctx.QueryParam("status"); raw != "" {
		if status, err = donation.StatusFromString(raw); err != nil {
			return respondError(ctx, err)
		}
	}

	var donorID *kernel.UUID
	if identity.Role == account.RoleDonor {
		id := identity.UserID
		donorID = &id
	}

	query, err := queries.NewListDonationsQuery(status, donorID)
	if err != nil {
		return respondError(ctx, err)
	}

	donations, err := s.listDonationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDonationResponses(donations))
}

// GetDonation handles GET /api/v1/donations/:id.
func (s *Server) GetDonation(ctx echo.Context) error {
	if _, err := identityFrom(ctx); err != nil {
		return respondError(ctx, err)
	}

	donationID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetDonationQuery(donationID)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.getDonationHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDonationResponse(result))
}

// CreateOrder handles POST /api/v1/orders - a recipient claims a donation.
func (s *Server) CreateOrder(ctx echo.Context) error {
	identity, err := identityFrom(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req NewOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	donationID, err := kernel.UUIDFromString(req.DonationID)
	if err != nil {
		return respondError(ctx, err)
	}

	deliveryLocation, err := kernel.NewLocation(
		req.DeliveryLocation.Address,
		req.DeliveryLocation.City,
		req.DeliveryLocation.Lat,
		req.DeliveryLocation.Lng,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, donationID, identity.UserID, req.DietaryPreferences, deliveryLocation,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: orderID.String()})
}

// GetOrders handles GET /api/v1/orders - each party sees the orders they
// participate in.
func (s *Server) GetOrders(ctx echo.Context) error {
	identity, err := identityFrom(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var query queries.ListOrdersQuery
	callerID := identity.UserID
	switch identity.Role {
	case account.RoleRecipient:
		query, err = queries.NewListOrdersQuery(&callerID, nil, nil)
	case account.RoleDriver:
		query, err = queries.NewListOrdersQuery(nil, &callerID, nil)
	case account.RoleDonor:
		query, err = queries.NewListOrdersQuery(nil, nil, &callerID)
	case account.RoleAdmin:
		query, err = queries.NewListOrdersQuery(nil, nil, nil)
	}
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetAvailableOrders handles GET /api/v1/orders/available - drivers poll for
// unassigned work, oldest first.
func (s *Server) GetAvailableOrders(ctx echo.Context) error {
	identity, err := identityFrom(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	if identity.Role != account.RoleDriver {
		return respondError(ctx, errs.NewPermissionDeniedError("only drivers can browse available orders"))
	}

	orders, err := s.availableOrdersHandler.Handle(
		ctx.Request().Context(), queries.NewAvailableOrdersQuery(),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// AssignOrder handles PATCH /api/v1/orders/:id/assign - a driver takes a
// pending order.
func (s *Server) AssignOrder(ctx echo.Context) error {
	identity, err := identityFrom(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAssignOrderCommand(orderID, identity.UserID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.assignOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdvanceOrder handles PATCH /api/v1/orders/:id/status - the assigned driver
// moves the order along its lifecycle.
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	identity, err := identityFrom(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req AdvanceOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAdvanceOrderCommand(orderID, identity.UserID, target)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.advanceOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetImpactStats handles GET /api/v1/stats - the public impact counters.
func (s *Server) GetImpactStats(ctx echo.Context) error {
	stats, err := s.impactStatsHandler.Handle(
		ctx.Request().Context(), queries.NewImpactStatsQuery(),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toImpactStatsResponse(stats))
}

// AdminGetDonations handles GET /api/v1/admin/donations.
func (s *Server) AdminGetDonations(ctx echo.Context) error {
	if err := s.requireAdmin(ctx); err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewListDonationsQuery(donation.Unknown, nil)
	if err != nil {
		return respondError(ctx, err)
	}

	donations, err := s.listDonationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDonationResponses(donations))
}

// AdminGetOrders handles GET /api/v1/admin/orders.
func (s *Server) AdminGetOrders(ctx echo.Context) error {
	if err := s.requireAdmin(ctx); err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewListOrdersQuery(nil, nil, nil)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// AdminGetStats handles GET /api/v1/admin/stats.
func (s *Server) AdminGetStats(ctx echo.Context) error {
	if err := s.requireAdmin(ctx); err != nil {
		return respondError(ctx, err)
	}

	stats, err := s.platformStatsHandler.Handle(
		ctx.Request().Context(), queries.NewPlatformStatsQuery(),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPlatformStatsResponse(stats))
}

func (s *Server) requireAdmin(ctx echo.Context) error {
	identity, err := identityFrom(ctx)
	if err != nil {
		return err
	}
	if identity.Role != account.RoleAdmin {
		return errs.NewPermissionDeniedError("administrator access required")
	}
	return nil
}
