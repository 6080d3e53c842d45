package http

import (
	"errors"
	"net/http"

	"aboshop/internal/core/application/usecases/commands"
	"aboshop/internal/core/application/usecases/queries"
	"aboshop/internal/core/domain/model/checkout"
	"aboshop/internal/core/domain/model/kernel"
	"aboshop/internal/core/ports"
	"aboshop/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// SessionHeader names the request header carrying the checkout session id.
const SessionHeader = "X-Session-ID"

// Server exposes the checkout wizard over HTTP. Every checkout endpoint
// responds with the full wizard state so the client needs no other
// read path while the purchase is in progress.
type Server struct {
	drafts ports.DraftRegistry

	// Command handlers
	submitAddressHandler commands.SubmitDeliveryAddressCommandHandler
	configureHandler     commands.ConfigureSubscriptionCommandHandler
	loginHandler         commands.LoginCommandHandler
	registerHandler      commands.RegisterCommandHandler
	setBillingHandler    commands.SetBillingAddressCommandHandler
	selectPaymentHandler commands.SelectPaymentCommandHandler
	placeOrderHandler    commands.PlaceOrderCommandHandler
	navigateHandler      commands.NavigateCommandHandler
	resetHandler         commands.ResetCheckoutCommandHandler

	// Query handlers
	getSubscriptionHandler          queries.GetSubscriptionQueryHandler
	getCustomerSubscriptionsHandler queries.GetCustomerSubscriptionsQueryHandler

	validate *validator.Validate
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	drafts ports.DraftRegistry,
	submitAddressHandler commands.SubmitDeliveryAddressCommandHandler,
	configureHandler commands.ConfigureSubscriptionCommandHandler,
	loginHandler commands.LoginCommandHandler,
	registerHandler commands.RegisterCommandHandler,
	setBillingHandler commands.SetBillingAddressCommandHandler,
	selectPaymentHandler commands.SelectPaymentCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	navigateHandler commands.NavigateCommandHandler,
	resetHandler commands.ResetCheckoutCommandHandler,
	getSubscriptionHandler queries.GetSubscriptionQueryHandler,
	getCustomerSubscriptionsHandler queries.GetCustomerSubscriptionsQueryHandler,
) *Server {
	return &Server{
		drafts:                          drafts,
		submitAddressHandler:            submitAddressHandler,
		configureHandler:                configureHandler,
		loginHandler:                    loginHandler,
		registerHandler:                 registerHandler,
		setBillingHandler:               setBillingHandler,
		selectPaymentHandler:            selectPaymentHandler,
		placeOrderHandler:               placeOrderHandler,
		navigateHandler:                 navigateHandler,
		resetHandler:                    resetHandler,
		getSubscriptionHandler:          getSubscriptionHandler,
		getCustomerSubscriptionsHandler: getCustomerSubscriptionsHandler,
		validate:                        validator.New(),
	}
}

// RegisterRoutes mounts all checkout and subscription endpoints.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/checkout", s.GetCheckoutState)
	api.POST("/checkout/address", s.SubmitAddress)
	api.POST("/checkout/configuration", s.ConfigureSubscription)
	api.POST("/checkout/login", s.Login)
	api.POST("/checkout/register", s.Register)
	api.POST("/checkout/billing", s.SetBillingAddress)
	api.POST("/checkout/payment", s.SelectPayment)
	api.POST("/checkout/order", s.PlaceOrder)
	api.POST("/checkout/navigate", s.Navigate)
	api.POST("/checkout/reset", s.Reset)

	api.GET("/subscriptions/:id", s.GetSubscription)
	api.GET("/customers/:id/subscriptions", s.GetCustomerSubscriptions)
}

// GetCheckoutState handles GET /api/v1/checkout - returns the session's wizard state.
func (s *Server) GetCheckoutState(ctx echo.Context) error {
	sessionID, err := s.sessionID(ctx)
	if err != nil {
		return badRequest(ctx, "Missing or invalid "+SessionHeader+" header")
	}

	return s.renderState(ctx, http.StatusOK, sessionID)
}

// SubmitAddress handles POST /api/v1/checkout/address - step 1.
func (s *Server) SubmitAddress(ctx echo.Context) error {
	sessionID, err := s.sessionID(ctx)
	if err != nil {
		return badRequest(ctx, "Missing or invalid "+SessionHeader+" header")
	}

	var req AddressRequest
	if err := s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewSubmitDeliveryAddressCommand(sessionID, req.toPatch())
	if err != nil {
		return badRequest(ctx, "Invalid address data: "+err.Error())
	}

	handleErr := s.submitAddressHandler.Handle(ctx.Request().Context(), cmd)
	return s.renderCommandResult(ctx, sessionID, handleErr)
}

// ConfigureSubscription handles POST /api/v1/checkout/configuration - step 2.
func (s *Server) ConfigureSubscription(ctx echo.Context) error {
	sessionID, err := s.sessionID(ctx)
	if err != nil {
		return badRequest(ctx, "Missing or invalid "+SessionHeader+" header")
	}

	var req ConfigurationRequest
	if err := s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err.Error())
	}

	patch, err := req.toPatch()
	if err != nil {
		return badRequest(ctx, "Invalid configuration data: "+err.Error())
	}

	cmd, err := commands.NewConfigureSubscriptionCommand(sessionID, patch)
	if err != nil {
		return badRequest(ctx, "Invalid configuration data: "+err.Error())
	}

	handleErr := s.configureHandler.Handle(ctx.Request().Context(), cmd)
	return s.renderCommandResult(ctx, sessionID, handleErr)
}

// Login handles POST /api/v1/checkout/login - step 3, existing account path.
func (s *Server) Login(ctx echo.Context) error {
	sessionID, err := s.sessionID(ctx)
	if err != nil {
		return badRequest(ctx, "Missing or invalid "+SessionHeader+" header")
	}

	var req LoginRequest
	if err := s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewLoginCommand(sessionID, req.Email, req.Password)
	if err != nil {
		return badRequest(ctx, "Invalid login data: "+err.Error())
	}

	handleErr := s.loginHandler.Handle(ctx.Request().Context(), cmd)
	return s.renderCommandResult(ctx, sessionID, handleErr)
}

// Register handles POST /api/v1/checkout/register - step 3, new account path.
func (s *Server) Register(ctx echo.Context) error {
	sessionID, err := s.sessionID(ctx)
	if err != nil {
		return badRequest(ctx, "Missing or invalid "+SessionHeader+" header")
	}

	var req RegisterRequest
	if err := s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewRegisterCommand(
		sessionID, req.Salutation, req.FirstName, req.LastName, req.Email, req.Phone, req.Password)
	if err != nil {
		return badRequest(ctx, "Invalid registration data: "+err.Error())
	}

	handleErr := s.registerHandler.Handle(ctx.Request().Context(), cmd)
	return s.renderCommandResult(ctx, sessionID, handleErr)
}

// SetBillingAddress handles POST /api/v1/checkout/billing - step 4.
func (s *Server) SetBillingAddress(ctx echo.Context) error {
	sessionID, err := s.sessionID(ctx)
	if err != nil {
		return badRequest(ctx, "Missing or invalid "+SessionHeader+" header")
	}

	var req BillingRequest
	if err := s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewSetBillingAddressCommand(sessionID, req.SameAsDelivery, req.toPatch())
	if err != nil {
		return badRequest(ctx, "Invalid billing data: "+err.Error())
	}

	handleErr := s.setBillingHandler.Handle(ctx.Request().Context(), cmd)
	return s.renderCommandResult(ctx, sessionID, handleErr)
}

// SelectPayment handles POST /api/v1/checkout/payment - step 5.
func (s *Server) SelectPayment(ctx echo.Context) error {
	sessionID, err := s.sessionID(ctx)
	if err != nil {
		return badRequest(ctx, "Missing or invalid "+SessionHeader+" header")
	}

	var req PaymentRequest
	if err := s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err.Error())
	}

	patch, err := req.toPatch()
	if err != nil {
		return badRequest(ctx, "Invalid payment data: "+err.Error())
	}

	cmd, err := commands.NewSelectPaymentCommand(sessionID, patch)
	if err != nil {
		return badRequest(ctx, "Invalid payment data: "+err.Error())
	}

	handleErr := s.selectPaymentHandler.Handle(ctx.Request().Context(), cmd)
	return s.renderCommandResult(ctx, sessionID, handleErr)
}

// PlaceOrder handles POST /api/v1/checkout/order - step 6 submission.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	sessionID, err := s.sessionID(ctx)
	if err != nil {
		return badRequest(ctx, "Missing or invalid "+SessionHeader+" header")
	}

	var req OrderRequest
	if err := s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewPlaceOrderCommand(sessionID, req.toPatch())
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	handleErr := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	return s.renderCommandResult(ctx, sessionID, handleErr)
}

// Navigate handles POST /api/v1/checkout/navigate - opens a wizard step.
// Guarded targets come back as the resolved step in the state; forward
// jumps past unmet prerequisites are not an error.
func (s *Server) Navigate(ctx echo.Context) error {
	sessionID, err := s.sessionID(ctx)
	if err != nil {
		return badRequest(ctx, "Missing or invalid "+SessionHeader+" header")
	}

	var req NavigateRequest
	if err := s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err.Error())
	}

	step, err := checkout.ParseStep(req.Step)
	if err != nil {
		return badRequest(ctx, "Invalid step: "+err.Error())
	}

	cmd, err := commands.NewNavigateCommand(sessionID, step)
	if err != nil {
		return badRequest(ctx, "Invalid navigation data: "+err.Error())
	}

	handleErr := s.navigateHandler.Handle(ctx.Request().Context(), cmd)
	return s.renderCommandResult(ctx, sessionID, handleErr)
}

// Reset handles POST /api/v1/checkout/reset - restarts the wizard.
func (s *Server) Reset(ctx echo.Context) error {
	sessionID, err := s.sessionID(ctx)
	if err != nil {
		return badRequest(ctx, "Missing or invalid "+SessionHeader+" header")
	}

	cmd, err := commands.NewResetCheckoutCommand(sessionID)
	if err != nil {
		return badRequest(ctx, "Invalid session: "+err.Error())
	}

	handleErr := s.resetHandler.Handle(ctx.Request().Context(), cmd)
	return s.renderCommandResult(ctx, sessionID, handleErr)
}

// GetSubscription handles GET /api/v1/subscriptions/:id - a submitted order.
func (s *Server) GetSubscription(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid subscription id")
	}

	query, err := queries.NewGetSubscriptionQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid subscription id: "+err.Error())
	}

	subscription, err := s.getSubscriptionHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "Subscription not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve subscription",
		})
	}

	return ctx.JSON(http.StatusOK, subscription)
}

// GetCustomerSubscriptions handles GET /api/v1/customers/:id/subscriptions.
func (s *Server) GetCustomerSubscriptions(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	query, err := queries.NewGetCustomerSubscriptionsQuery(customerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}

	subscriptions, err := s.getCustomerSubscriptionsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve subscriptions",
		})
	}

	return ctx.JSON(http.StatusOK, subscriptions)
}

// bind decodes and structurally validates the request body.
func (s *Server) bind(ctx echo.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return errors.New("Invalid request body")
	}
	if err := s.validate.Struct(req); err != nil {
		return errors.New("Validation failed: " + err.Error())
	}
	return nil
}

// sessionID reads the checkout session id from the request header.
func (s *Server) sessionID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Request().Header.Get(SessionHeader))
}

// renderCommandResult maps a command outcome onto an HTTP status and
// always answers with the current wizard state: validation problems are
// in the field-error map, collaborator failures in the banner message.
func (s *Server) renderCommandResult(ctx echo.Context, sessionID kernel.UUID, handleErr error) error {
	status := http.StatusOK

	var precondition *checkout.PreconditionError
	switch {
	case handleErr == nil:
		status = http.StatusOK
	case errors.Is(handleErr, commands.ErrValidationFailed):
		status = http.StatusUnprocessableEntity
	case errors.As(handleErr, &precondition):
		status = http.StatusUnprocessableEntity
	case errors.Is(handleErr, commands.ErrEmailAlreadyRegistered):
		status = http.StatusConflict
	case errors.Is(handleErr, checkout.ErrOrderAlreadyComplete):
		status = http.StatusConflict
	default:
		status = http.StatusBadGateway
	}

	return s.renderState(ctx, status, sessionID)
}

// renderState answers with the session's current wizard state.
func (s *Server) renderState(ctx echo.Context, status int, sessionID kernel.UUID) error {
	draft, release, err := s.drafts.Acquire(ctx.Request().Context(), sessionID)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to load checkout state",
		})
	}
	defer release()

	return ctx.JSON(status, stateFromDraft(draft))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
