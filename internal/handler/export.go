package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/vebrypp/AKURA-APP-BE/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportQuotation renders one quotation as an XLSX workbook: the header
// fields on top, then one row per quoted line item.
func (h *QuotationHandler) ExportQuotation(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		util.Error(c, http.StatusBadRequest, util.MsgInvalidID)
		return
	}

	q, err := h.loadQuotation(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		util.Error(c, http.StatusNotFound, util.MsgNotFound)
		return
	}
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	detail := toDetail(q)

	f := excelize.NewFile()
	sheetName := "Quotation"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	header := [][2]string{
		{"Quotation No", detail.No},
		{"Date", detail.Date},
		{"Customer", detail.Customer},
		{"Company", detail.Company},
		{"Company Address", detail.CompanyAddress},
		{"Subject", detail.Subject},
		{"Inquiry Method", detail.InquiryMethod},
		{"Inquiry Date", detail.InquiryDate},
		{"Term of Payment", detail.TermOfPayment},
		{"Validity", detail.Validity},
		{"Tax (%)", fmt.Sprintf("%d", detail.Tax)},
		{"Location", detail.Location},
		{"Prepared By", detail.PreparedBy},
	}
	for i, kv := range header {
		row := i + 1
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), kv[0])
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), kv[1])
	}

	itemHeaderRow := len(header) + 2
	columns := []string{"Description", "Item", "Quantity", "Price", "Total Price"}
	for i, col := range columns {
		cell := fmt.Sprintf("%c%d", 'A'+i, itemHeaderRow)
		f.SetCellValue(sheetName, cell, col)
	}

	row := itemHeaderRow + 1
	for _, link := range q.Descriptions {
		descText := ""
		if link.Description != nil {
			descText = link.Description.Description
		}
		for _, item := range link.Items {
			f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), descText)
			f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), item.Name)
			f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), item.Quantity)
			f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), item.Price)
			f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), item.TotalPrice)
			row++
		}
	}

	f.SetColWidth(sheetName, "A", "A", 30)
	f.SetColWidth(sheetName, "B", "B", 25)
	f.SetColWidth(sheetName, "C", "C", 10)
	f.SetColWidth(sheetName, "D", "E", 14)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"quotation_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, "Internal Server Error")
	}
}
