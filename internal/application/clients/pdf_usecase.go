package clients

// SummaryPDFUseCase genera la hoja resumen de un cliente (datos de la
// empresa, contactos y servicios contratados) como PDF.
type SummaryPDFUseCase struct {
	clients *ClientUseCase
	gen     SummaryPDFGenerator
}

// NewSummaryPDFUseCase construye el caso de uso del PDF resumen.
func NewSummaryPDFUseCase(clients *ClientUseCase, gen SummaryPDFGenerator) *SummaryPDFUseCase {
	return &SummaryPDFUseCase{clients: clients, gen: gen}
}

// Generate devuelve los bytes del PDF. domain.ErrNotFound si el cliente no existe.
func (uc *SummaryPDFUseCase) Generate(id string) ([]byte, error) {
	details, err := uc.clients.Details(id)
	if err != nil {
		return nil, err
	}
	return uc.gen.GenerateClientSummary(details.Client)
}
