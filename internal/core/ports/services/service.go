package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Invoice       InvoiceSvcFacade
	Proforma      ProformaSvcFacade
	CustomerOrder CustomerOrderSvcFacade
	SupplierOrder SupplierOrderSvcFacade
	Delivery      DeliverySvcFacade
	Payment       PaymentSvcFacade
	Client        ClientSvcFacade
	Supplier      SupplierSvcFacade
	Product       ProductSvcFacade
	Reporting     ReportingService
	Export        ExportService
}
