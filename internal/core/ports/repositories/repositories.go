package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	InvoiceRepo       InvoiceRepositoryFacade
	ProformaRepo      ProformaRepositoryFacade
	CustomerOrderRepo CustomerOrderRepositoryFacade
	SupplierOrderRepo SupplierOrderRepositoryFacade
	DeliveryRepo      DeliveryRepositoryFacade
	PaymentRepo       PaymentRepositoryFacade
	ClientRepo        ClientRepository
	SupplierRepo      SupplierRepository
	ProductRepo       ProductRepository
	ReportingRepo     ReportingRepository
}
