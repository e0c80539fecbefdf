package services

import (
	portsrepo "github.com/facturio/facturio/internal/core/ports/repositories"
	portssvc "github.com/facturio/facturio/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Invoice = NewInvoiceService(repos.InvoiceRepo)
	container.Proforma = NewProformaService(repos.ProformaRepo, repos.InvoiceRepo)
	container.CustomerOrder = NewCustomerOrderService(repos.CustomerOrderRepo)
	container.SupplierOrder = NewSupplierOrderService(repos.SupplierOrderRepo)
	container.Delivery = NewDeliveryService(repos.DeliveryRepo, repos.InvoiceRepo)
	container.Payment = NewPaymentService(repos.PaymentRepo, repos.InvoiceRepo)
	container.Client = NewClientService(repos.ClientRepo)
	container.Supplier = NewSupplierService(repos.SupplierRepo)
	container.Product = NewProductService(repos.ProductRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo)
	container.Export = NewExportService(repos.InvoiceRepo, repos.ProformaRepo, repos.ClientRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.InvoiceSvcFacade       = (*invoiceService)(nil)
	_ portssvc.ProformaSvcFacade      = (*proformaService)(nil)
	_ portssvc.CustomerOrderSvcFacade = (*customerOrderService)(nil)
	_ portssvc.SupplierOrderSvcFacade = (*supplierOrderService)(nil)
	_ portssvc.DeliverySvcFacade      = (*deliveryService)(nil)
	_ portssvc.PaymentSvcFacade       = (*paymentService)(nil)
	_ portssvc.ClientSvcFacade        = (*clientService)(nil)
	_ portssvc.SupplierSvcFacade      = (*supplierService)(nil)
	_ portssvc.ProductSvcFacade       = (*productService)(nil)
	_ portssvc.ReportingService       = (*reportingService)(nil)
	_ portssvc.ExportService          = (*exportService)(nil)
)
