package bootstrap

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	app "github.com/mohammadpnp/customer-import/internal/application/customer"
	"github.com/mohammadpnp/customer-import/internal/infrastructure/repository"
	httpecho "github.com/mohammadpnp/customer-import/internal/interfaces/http/echo"
)

func NewHTTPServer(db *gorm.DB, uploads app.UploadStore, importQueue app.ImportProducer) *echo.Echo {
	server := echo.New()
	server.HideBanner = true

	server.Use(middleware.Recover())
	server.Use(middleware.RequestID())
	server.Use(middleware.BodyLimit("50M"))

	importJobRepo := repository.NewImportJobRepository(db)
	customerRepo := repository.NewCustomerQueryRepository(db)

	importHandler := httpecho.NewImportHandler(
		app.NewStartImport(uploads, importJobRepo, importQueue),
		app.NewGetImportJob(importJobRepo),
	)
	customerHandler := httpecho.NewCustomerHandler(
		app.NewListCustomers(customerRepo),
		app.NewGetCustomer(customerRepo),
		app.NewUpdateCustomer(customerRepo),
		app.NewDeleteCustomer(customerRepo),
	)

	httpecho.RegisterRoutes(server, importHandler, customerHandler)

	server.GET("/healthz", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	return server
}
