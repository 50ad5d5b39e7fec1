// Package http exposes the application use cases over an echo HTTP server.
package http

import (
	"errors"
	"net/http"

	"senderplus/internal/core/application/usecases/commands"
	"senderplus/internal/core/application/usecases/queries"
	"senderplus/internal/core/domain/model/parcel"
	"senderplus/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Response message texts. Clients display them verbatim.
const (
	msgAccountCreated  = "Account created. Verification code sent."
	msgCodeSent        = "Verification code sent."
	msgEmailVerified   = "Email verified."
	msgSignedIn        = "Signed in successfully."
	msgParcelSubmitted = "Package submitted successfully."
)

// errorResponse is the uniform error payload.
type errorResponse struct {
	Detail string `json:"detail"`
}

// messageResponse is the uniform success payload for mutations without data.
type messageResponse struct {
	Message string `json:"message"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	signUpHandler        commands.SignUpCommandHandler
	signInHandler        commands.SignInCommandHandler
	sendCodeHandler      commands.SendCodeCommandHandler
	verifyCodeHandler    commands.VerifyCodeCommandHandler
	submitParcelHandler  commands.SubmitParcelCommandHandler
	advanceStatusHandler commands.AdvanceParcelStatusCommandHandler

	// Query handlers
	trackParcelHandler queries.TrackParcelQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	signUpHandler commands.SignUpCommandHandler,
	signInHandler commands.SignInCommandHandler,
	sendCodeHandler commands.SendCodeCommandHandler,
	verifyCodeHandler commands.VerifyCodeCommandHandler,
	submitParcelHandler commands.SubmitParcelCommandHandler,
	advanceStatusHandler commands.AdvanceParcelStatusCommandHandler,
	trackParcelHandler queries.TrackParcelQueryHandler,
) *Server {
	return &Server{
		signUpHandler:        signUpHandler,
		signInHandler:        signInHandler,
		sendCodeHandler:      sendCodeHandler,
		verifyCodeHandler:    verifyCodeHandler,
		submitParcelHandler:  submitParcelHandler,
		advanceStatusHandler: advanceStatusHandler,
		trackParcelHandler:   trackParcelHandler,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance. The status
// advance endpoint requires the auth middleware; everything else is public.
func (s *Server) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.GET("/health", s.Health)

	e.POST("/auth/signup", s.SignUp)
	e.POST("/auth/signin", s.SignIn)
	e.POST("/auth/send-code", s.SendCode)
	e.POST("/auth/verify-code", s.VerifyCode)

	e.POST("/submit-package", s.SubmitPackage)
	e.GET("/track/:tracking_id", s.TrackPackage)
	e.POST("/advance-status/:tracking_id", s.AdvanceStatus, auth)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

type signUpRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// SignUp handles POST /auth/signup - creates an account and emails the
// first verification code.
func (s *Server) SignUp(ctx echo.Context) error {
	var req signUpRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Detail: "Invalid request body"})
	}

	cmd, err := commands.NewSignUpCommand(req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.signUpHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapCommandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, messageResponse{Message: msgAccountCreated})
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signInResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// SignIn handles POST /auth/signin - verifies credentials and issues a
// session token.
func (s *Server) SignIn(ctx echo.Context) error {
	var req signInRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Detail: "Invalid request body"})
	}

	cmd, err := commands.NewSignInCommand(req.Email, req.Password)
	if err != nil {
		return badRequest(ctx, err)
	}

	token, err := s.signInHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapCommandError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, signInResponse{Message: msgSignedIn, Token: token})
}

type sendCodeRequest struct {
	Email string `json:"email"`
}

// SendCode handles POST /auth/send-code - issues a fresh verification code
// for an existing account.
func (s *Server) SendCode(ctx echo.Context) error {
	var req sendCodeRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Detail: "Invalid request body"})
	}

	cmd, err := commands.NewSendCodeCommand(req.Email)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.sendCodeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusBadRequest, errorResponse{Detail: "No account found with this email"})
		}
		return mapCommandError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, messageResponse{Message: msgCodeSent})
}

type verifyCodeRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// VerifyCode handles POST /auth/verify-code - consumes a verification code.
func (s *Server) VerifyCode(ctx echo.Context) error {
	var req verifyCodeRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Detail: "Invalid request body"})
	}

	cmd, err := commands.NewVerifyCodeCommand(req.Email, req.Code)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.verifyCodeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusBadRequest, errorResponse{Detail: "No account found with this email"})
		}
		return mapCommandError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, messageResponse{Message: msgEmailVerified})
}

type submitPackageResponse struct {
	Message    string `json:"message"`
	TrackingID string `json:"tracking_id"`
}

// SubmitPackage handles POST /submit-package - accepts a multipart form
// with the package details and an optional photo, and returns the assigned
// tracking ID.
func (s *Server) SubmitPackage(ctx echo.Context) error {
	fields := commands.SubmitParcelFields{
		SenderName:       ctx.FormValue("sender_name"),
		SenderPhone:      ctx.FormValue("sender_phone"),
		SenderEmail:      ctx.FormValue("sender_email"),
		SenderAddress:    ctx.FormValue("sender_address"),
		RecipientName:    ctx.FormValue("recipient_name"),
		RecipientPhone:   ctx.FormValue("recipient_phone"),
		RecipientEmail:   ctx.FormValue("recipient_email"),
		RecipientAddress: ctx.FormValue("recipient_address"),
		PackageName:      ctx.FormValue("package_name"),
		PackageType:      ctx.FormValue("package_type"),
		Weight:           ctx.FormValue("weight"),
		Value:            ctx.FormValue("value"),
		Description:      ctx.FormValue("description"),
	}

	// The photo is optional; a missing file is not an error.
	photo, err := ctx.FormFile("photo")
	if err != nil {
		photo = nil
	}

	cmd, err := commands.NewSubmitParcelCommand(fields, photo)
	if err != nil {
		return badRequest(ctx, err)
	}

	trackingID, err := s.submitParcelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapCommandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, submitPackageResponse{
		Message:    msgParcelSubmitted,
		TrackingID: trackingID.String(),
	})
}

// TrackPackage handles GET /track/:tracking_id - public tracking lookup.
func (s *Server) TrackPackage(ctx echo.Context) error {
	trackingID, err := parcel.TrackingIDFromString(ctx.Param("tracking_id"))
	if err != nil {
		return ctx.JSON(http.StatusNotFound, errorResponse{Detail: "Package not found"})
	}

	query, err := queries.NewTrackParcelQuery(trackingID)
	if err != nil {
		return ctx.JSON(http.StatusNotFound, errorResponse{Detail: "Package not found"})
	}

	resp, err := s.trackParcelHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, errorResponse{Detail: "Package not found"})
		}
		return internalError(ctx)
	}

	return ctx.JSON(http.StatusOK, resp)
}

// AdvanceStatus handles POST /advance-status/:tracking_id - moves a parcel
// one stage forward. Requires an authenticated staff account.
func (s *Server) AdvanceStatus(ctx echo.Context) error {
	actor, ok := ActorFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, errorResponse{Detail: "Authentication required"})
	}

	trackingID, err := parcel.TrackingIDFromString(ctx.Param("tracking_id"))
	if err != nil {
		return ctx.JSON(http.StatusNotFound, errorResponse{Detail: "Package not found"})
	}

	cmd, err := commands.NewAdvanceParcelStatusCommand(trackingID, actor)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.advanceStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapCommandError(ctx, err)
	}

	query, err := queries.NewTrackParcelQuery(trackingID)
	if err != nil {
		return internalError(ctx)
	}

	resp, err := s.trackParcelHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx)
	}

	return ctx.JSON(http.StatusOK, resp)
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{Detail: err.Error()})
}

func internalError(ctx echo.Context) error {
	return ctx.JSON(http.StatusInternalServerError, errorResponse{Detail: "Internal server error"})
}

// mapCommandError translates command failures into HTTP responses. The
// default for unrecognized errors is 500.
func mapCommandError(ctx echo.Context, err error) error {
	var missingFields *commands.MissingFieldsError

	switch {
	case errors.Is(err, commands.ErrActorNotAllowed):
		return ctx.JSON(http.StatusForbidden, errorResponse{Detail: err.Error()})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, errorResponse{Detail: "Package not found"})
	case errors.Is(err, commands.ErrEmailAlreadyRegistered),
		errors.Is(err, commands.ErrPasswordTooWeak),
		errors.Is(err, commands.ErrInvalidCredentials),
		errors.Is(err, commands.ErrCodeInvalidOrExpired),
		errors.Is(err, commands.ErrWeightIsInvalid),
		errors.Is(err, commands.ErrDeclaredValueIsInvalid),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.As(err, &missingFields):
		return badRequest(ctx, err)
	default:
		return internalError(ctx)
	}
}
