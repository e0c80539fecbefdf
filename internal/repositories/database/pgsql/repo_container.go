package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/facturio/facturio/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		InvoiceRepo:       newPgxInvoiceRepository(dbPool),
		ProformaRepo:      newPgxProformaRepository(dbPool),
		CustomerOrderRepo: newPgxCustomerOrderRepository(dbPool),
		SupplierOrderRepo: newPgxSupplierOrderRepository(dbPool),
		DeliveryRepo:      newPgxDeliveryRepository(dbPool),
		PaymentRepo:       newPgxPaymentRepository(dbPool),
		ClientRepo:        newPgxClientRepository(dbPool),
		SupplierRepo:      newPgxSupplierRepository(dbPool),
		ProductRepo:       newPgxProductRepository(dbPool),
		ReportingRepo:     newPgxReportingRepository(dbPool),
	}
}
