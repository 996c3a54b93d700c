package report

// PDFGenerator renderiza el reporte de inventario como PDF.
// Implementado en infrastructure/pdf con Maroto.
type PDFGenerator interface {
	GenerateInventoryPDF(data *Data) ([]byte, error)
}
