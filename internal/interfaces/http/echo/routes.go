package echo

import e "github.com/labstack/echo/v4"

func RegisterRoutes(server *e.Echo, importHandler *ImportHandler, customerHandler *CustomerHandler) {
	server.POST("/api/v1/imports/customers", importHandler.UploadCustomers)
	server.GET("/api/v1/imports/customers/:id", importHandler.GetImportJob)

	server.GET("/api/v1/customers", customerHandler.ListCustomers)
	server.GET("/api/v1/customers/:id", customerHandler.GetCustomerByID)
	server.PATCH("/api/v1/customers/:id", customerHandler.UpdateCustomer)
	server.DELETE("/api/v1/customers/:id", customerHandler.DeleteCustomer)
}
