package httpgin

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/matchday/matchday-go/internal/domain"
	"github.com/matchday/matchday-go/internal/service"
	"github.com/matchday/matchday-go/internal/service/booking"
	"github.com/matchday/matchday-go/internal/service/catalog"
	"github.com/matchday/matchday-go/internal/service/payment"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func NewRouter(
	svcs *service.Services,
	logger *slog.Logger,
	middlewares ...gin.HandlerFunc,
) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery(), LoggingMiddleware(logger), RequestIDMiddleware(), CORS())
	for _, m := range middlewares {
		if m != nil {
			r.Use(m)
		}
	}

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// health
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/matches", handleListMatches(svcs))
	r.GET("/matches/:id", handleGetMatch(svcs))
	r.GET("/tickets", handleListTickets(svcs))
	r.GET("/venues/seating-map", handleSeatingMap(svcs))

	r.POST("/bookings/quote", handleQuote(svcs))
	r.POST("/bookings/confirm", handleConfirm(svcs))

	r.GET("/payments/providers", handleListProviders(svcs))
	r.POST("/payments/dispatch", handleDispatch(svcs))

	return r
}

// --- Handlers with Swagger annotations ---

// @Summary  List upcoming matches
// @Param    all  query  bool  false  "return the full upcoming list instead of the first 3"
// @Success  200  {array}  domain.Match
// @Router   /matches [get]
func handleListMatches(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		showAll := c.Query("all") == "true"
		matches := svcs.Catalog.ListUpcoming(showAll)
		if matches == nil {
			matches = []domain.Match{}
		}
		writeJSONWithCache(c, http.StatusOK, matches, "public, max-age=60")
	}
}

// @Summary  Get match
// @Param    id  path  string  true  "Match ID"
// @Success  200  {object}  domain.Match
// @Failure  404  {object}  ErrorResponse
// @Router   /matches/{id} [get]
func handleGetMatch(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		m, err := svcs.Catalog.GetMatch(c.Param("id"))
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, m, "public, max-age=60")
	}
}

// @Summary  List both ticket price tables
// @Success  200  {object}  TicketTablesResponse
// @Router   /tickets [get]
func handleListTickets(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := TicketTablesResponse{
			Stand:   svcs.Catalog.TicketTypes(),
			Summary: svcs.Catalog.TicketOptions(),
		}
		writeJSONWithCache(c, http.StatusOK, resp, "public, max-age=60")
	}
}

// @Summary  Resolve a venue seating-plan image
// @Param    venue  query  string  true  "venue name"
// @Success  200  {object}  SeatingMapResponse
// @Router   /venues/seating-map [get]
func handleSeatingMap(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		venue := c.Query("venue")
		resp := SeatingMapResponse{
			Venue:    venue,
			ImageURL: svcs.Catalog.SeatingMap(venue),
		}
		writeJSONWithCache(c, http.StatusOK, resp, "public, max-age=60")
	}
}

// @Summary  Quote a ticket selection
// @Param    req body  QuoteRequest true "payload"
// @Success  200  {object}  QuoteResponse
// @Failure  400  {object}  ErrorResponse
// @Failure  404  {object}  ErrorResponse
// @Router   /bookings/quote [post]
func handleQuote(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req QuoteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		b, err := svcs.Booking.Quote(booking.QuoteInput{
			Match:    req.Match,
			Source:   domain.SelectionSource(req.Source),
			TicketID: req.TicketTypeID,
			Quantity: req.Quantity,
		})
		if err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusOK, QuoteResponse{
			Booking:  *b,
			Subtotal: b.Price * b.Quantity,
		})
	}
}

// @Summary  Confirm a booking
// @Param    req body  ConfirmRequest true "payload"
// @Success  201  {object}  ConfirmResponse
// @Failure  400  {object}  ErrorResponse
// @Router   /bookings/confirm [post]
func handleConfirm(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ConfirmRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		res := svcs.Booking.Confirm(req.Booking, domain.Customer{
			FullName: req.Customer.FullName,
			Email:    req.Customer.Email,
			Phone:    req.Customer.Phone,
		})

		c.JSON(http.StatusCreated, ConfirmResponse{
			Reference: res.Reference.String(),
			Charges:   res.Charges,
			Payment:   res.Payment,
		})
	}
}

// @Summary  List payment options
// @Success  200  {object}  ProvidersResponse
// @Router   /payments/providers [get]
func handleListProviders(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, ProvidersResponse{
			Providers: svcs.Payment.Providers(),
			Cards:     PaymentSection{Available: false, Message: "CARD PAYMENT NOT READY NOW!!"},
			Wallet:    PaymentSection{Available: false, Message: "Wallet payment not available"},
			Notes:     ticketNotes,
			Support:   "help@bookmyshow.com",
		})
	}
}

// @Summary  Build a payment deep link
// @Param    req body  DispatchRequest true "payload"
// @Success  200  {object}  DispatchResponse
// @Failure  400  {object}  ErrorResponse
// @Failure  503  {object}  ErrorResponse "provider unavailable"
// @Router   /payments/dispatch [post]
func handleDispatch(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req DispatchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		link, err := svcs.Payment.Dispatch(payment.Provider(req.Provider), req.Payment)
		if err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusOK, DispatchResponse{
			Provider: req.Provider,
			DeepLink: link,
		})
	}
}

// ticketNotes is the static information block shown alongside the
// payment options.
var ticketNotes = []string{
	"Your e-ticket will be sent to your registered email immediately after successful payment.",
	"For IPL matches, you can use the e-ticket on your phone for direct stadium entry - no need to print!",
	"Alternatively, you can print the ticket or show a screenshot at the venue.",
	"Tickets are non-refundable once purchased.",
	"Please arrive at least 60 minutes before the match starts to avoid last-minute rush.",
	"Carry a valid photo ID matching the ticket details for verification.",
}

// --- Helpers ---

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

func respondErr(c *gin.Context, err error) {
	if err == nil {
		c.Status(http.StatusNoContent)
		return
	}

	switch {
	// catalog service
	case errors.Is(err, catalog.ErrMatchNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "match not found"})
		return
	// booking service
	case errors.Is(err, booking.ErrTicketTypeNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "ticket type not found"})
		return
	case errors.Is(err, booking.ErrUnknownSource):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown selection source"})
		return
	// payment service
	case errors.Is(err, payment.ErrProviderUnavailable):
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: payment.GooglePayNotice})
		return
	case errors.Is(err, payment.ErrUnknownProvider):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown payment provider"})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
