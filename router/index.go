package router

import (
	"ticket_server/constants"
	"ticket_server/handler"
	"ticket_server/middleware"
	"ticket_server/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)

	ticket := v1.Group("/ticket", logger.New())
	ticket.Post("/", middleware.Protected(), middleware.RequireRoles(constants.ROLE_SELLER, constants.ROLE_AGENT), validate.CreateTicket(), handler.CreateTicket)
	ticket.Post("/trip", middleware.Protected(), middleware.RequireRoles(constants.ROLE_VALIDATOR), validate.CreateTrip(), handler.CreateTrip)
	ticket.Post("/check", middleware.Protected(), middleware.RequireRoles(constants.ROLE_INSPECTOR), validate.CheckTrip(), handler.CheckTrip)
	ticket.Post("/load-trips", middleware.Protected(), middleware.RequireRoles(constants.ROLE_VALIDATOR), validate.LoadTrips(), handler.LoadTrips)
	ticket.Post("/ping", middleware.Protected(), handler.Ping)
	// Admin
	ticket.Get("/", middleware.Protected(), middleware.RequireRoles(), validate.FilterTickets(), handler.GetTickets)
	ticket.Get("/:ticketId", middleware.Protected(), middleware.RequireRoles(), validate.GetByUUID("ticketId"), handler.GetTicket)

	workday := v1.Group("/workday", logger.New())
	workday.Post("/open", middleware.Protected(), middleware.RequireRoles(constants.ROLE_VALIDATOR), handler.OpenWorkday)
	workday.Post("/:workdayId/close", middleware.Protected(), middleware.RequireRoles(constants.ROLE_VALIDATOR), validate.GetByUUID("workdayId"), validate.CloseWorkday(), handler.CloseWorkday)
	workday.Get("/:workdayId", middleware.Protected(), middleware.RequireRoles(constants.ROLE_CARRIER), validate.GetByUUID("workdayId"), handler.GetWorkday)
	workday.Get("/:id/live", middleware.Protected(), middleware.RequireRoles(constants.ROLE_CARRIER), websocket.New(handler.WorkdayLive))

	setting := v1.Group("/setting", logger.New())
	setting.Get("/main-company", middleware.Protected(), handler.GetMainCompany)
	setting.Get("/", middleware.Protected(), middleware.RequireRoles(), handler.GetSettings)
	setting.Post("/", middleware.Protected(), middleware.RequireRoles(), validate.CreateSetting(), handler.CreateSetting)
	setting.Put("/:name", middleware.Protected(), middleware.RequireRoles(), validate.UpdateSetting(), handler.UpdateSetting)
}
