package controllers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"github.com/tealeg/xlsx"

	"github.com/mkravets/marketpulse/config"
	"github.com/mkravets/marketpulse/models"
	"github.com/mkravets/marketpulse/utils"
)

// productExportHeader fixes the exported column set and order.
var productExportHeader = []string{"id", "name", "category", "price", "created_at"}

// productExportRows renders products as string rows, header row included.
func productExportRows(products []models.Product) [][]string {
	rows := make([][]string, 0, len(products)+1)
	rows = append(rows, productExportHeader)
	for _, p := range products {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(p.ID), 10),
			p.Name,
			p.Category,
			strconv.FormatFloat(p.Price.InexactFloat64(), 'f', 2, 64),
			p.CreatedAt.Format(time.RFC3339),
		})
	}
	return rows
}

func fetchProductsForExport(c *gin.Context) ([]models.Product, bool) {
	var products []models.Product
	if err := config.DB.Find(&products).Error; err != nil {
		utils.LogError("Failed to fetch products for export: %v", err)
		utils.InternalServerError(c, "Failed to export products")
		return nil, false
	}
	utils.LogDebug("Retrieved %d products for export", len(products))
	return products, true
}

// ExportProductsCSV: download the product catalog as CSV
func ExportProductsCSV(c *gin.Context) {
	utils.LogInfo("ExportProductsCSV called")

	products, ok := fetchProductsForExport(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.WriteAll(productExportRows(products)); err != nil {
		utils.LogError("Failed to write CSV: %v", err)
		utils.InternalServerError(c, "Failed to export CSV")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="products.csv"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
	utils.LogInfo("Successfully exported %d products as CSV", len(products))
}

// ExportProductsExcel: download the product catalog as an Excel sheet
func ExportProductsExcel(c *gin.Context) {
	utils.LogInfo("ExportProductsExcel called")

	products, ok := fetchProductsForExport(c)
	if !ok {
		return
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to export Excel")
		return
	}

	headerRow := sheet.AddRow()
	for _, h := range productExportHeader {
		cell := headerRow.AddCell()
		cell.SetString(h)
		style := xlsx.NewStyle()
		font := xlsx.DefaultFont()
		font.Bold = true
		style.Font = *font
		cell.SetStyle(style)
	}

	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetInt(int(p.ID))
		row.AddCell().SetString(p.Name)
		row.AddCell().SetString(p.Category)
		row.AddCell().SetFloatWithFormat(p.Price.InexactFloat64(), "0.00")
		row.AddCell().SetString(p.CreatedAt.Format("2006-01-02 15:04"))
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=products.xlsx")
	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write Excel file: %v", err)
		utils.InternalServerError(c, "Failed to export Excel")
		return
	}
	utils.LogInfo("Successfully exported %d products as Excel", len(products))
}

// ExportProductsPDF: download the product catalog as PDF
func ExportProductsPDF(c *gin.Context) {
	utils.LogInfo("ExportProductsPDF called")

	products, ok := fetchProductsForExport(c)
	if !ok {
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Product Catalog")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 8, "Generated: "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(12)

	colWidths := []float64{15, 65, 45, 25, 40}
	pdf.SetFont("Arial", "B", 11)
	for i, h := range productExportHeader {
		pdf.SetFillColor(200, 200, 200)
		pdf.CellFormat(colWidths[i], 9, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	fill := false
	for _, p := range products {
		pdf.SetFillColor(245, 245, 245)
		fill = !fill
		pdf.CellFormat(colWidths[0], 8, fmt.Sprintf("%d", p.ID), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[1], 8, p.Name, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(colWidths[2], 8, p.Category, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(colWidths[3], 8, fmt.Sprintf("%.2f", p.Price.InexactFloat64()), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(colWidths[4], 8, p.CreatedAt.Format("2006-01-02 15:04"), "1", 0, "C", fill, 0, "")
		pdf.Ln(-1)
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", "attachment; filename=products.pdf")
	if err := pdf.Output(c.Writer); err != nil {
		utils.LogError("Failed to write PDF file: %v", err)
		utils.InternalServerError(c, "Failed to export PDF")
		return
	}
	utils.LogInfo("Successfully exported %d products as PDF", len(products))
}
