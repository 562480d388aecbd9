package controllers

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"smartsalary/backend/core"
	"smartsalary/backend/logger"
	"smartsalary/backend/models"
	"smartsalary/backend/store"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportStatement renders one month's ledger and budget summary as an XLSX
// download.
func ExportStatement(st *store.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetInt64("user_id")
		key := c.Param("month")
		if key == "current" || key == "" {
			key = core.MonthKey(time.Now())
		}
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		txs, err := st.ListTransactions(ctx, uid, key)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "store error"})
			return
		}
		rec, err := st.GetMonth(ctx, uid, key)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "store error"})
			return
		}

		f := excelize.NewFile()
		sheet := "Statement"
		f.SetSheetName("Sheet1", sheet)
		headers := []string{"Date", "Description", "Category", "Type", "Amount"}
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(sheet, cell, h)
		}
		for i, tx := range txs {
			row := i + 2
			f.SetCellValue(sheet, "A"+strconv.Itoa(row), tx.CreatedAt.Format("2006-01-02"))
			f.SetCellValue(sheet, "B"+strconv.Itoa(row), tx.Description)
			f.SetCellValue(sheet, "C"+strconv.Itoa(row), tx.Category)
			f.SetCellValue(sheet, "D"+strconv.Itoa(row), tx.Type)
			f.SetCellValue(sheet, "E"+strconv.Itoa(row), tx.Amount)
		}

		if rec != nil {
			summary := "Summary"
			f.NewSheet(summary)
			rows := [][]any{
				{"Month", rec.Month},
				{"Income", rec.Income},
				{"EMI", rec.EMI},
				{"Net income", rec.NetIncome},
				{"Needs", rec.BudgetPlan.Needs},
				{"Wants", rec.BudgetPlan.Wants},
				{"Savings", rec.BudgetPlan.Savings},
				{"Emergency", rec.BudgetPlan.Emergency},
				{"Accumulated savings", rec.BudgetPlan.AccumulatedSavings},
				{"Accumulated emergency", rec.BudgetPlan.AccumulatedEmergency},
				{"Expenses", rec.ExpenseTotal},
				{"Health score", fmt.Sprintf("%d (%s)", rec.Score, core.ScoreBand(rec.Score))},
			}
			for i, r := range rows {
				f.SetCellValue(summary, "A"+strconv.Itoa(i+1), r[0])
				f.SetCellValue(summary, "B"+strconv.Itoa(i+1), r[1])
			}
		}

		buf, err := f.WriteToBuffer()
		if err != nil {
			logger.Get().Error("statement export failed", zap.Int64("uid", uid), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "export error"})
			return
		}
		c.Header("Content-Disposition", `attachment; filename="statement-`+key+`.xlsx"`)
		c.Data(http.StatusOK, xlsxMIME, buf.Bytes())
	}
}

// ImportStatement ingests a CSV/XLSX bank statement into financial_records.
// Expected columns (matched case-insensitively, any order): description,
// amount, and optionally type and category. Rows that do not parse are
// skipped and counted.
func ImportStatement(st *store.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, header, err := c.Request.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing file (field 'file')"})
			return
		}
		defer file.Close()

		buf, err := io.ReadAll(file)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file"})
			return
		}
		ext := strings.ToLower(filepath.Ext(header.Filename))
		switch ext {
		case ".csv", ".xlsx":
		case ".xls":
			// excelize only reads OOXML workbooks, not the legacy OLE format.
			c.JSON(http.StatusBadRequest, gin.H{"error": "legacy .xls workbooks are not supported; re-save the statement as .xlsx"})
			return
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported file type; use .csv or .xlsx"})
			return
		}
		rows, err := readAllRows(buf, ext)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		headerIdx, cols := findStatementHeader(rows)
		if headerIdx < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not detect header row (need description and amount columns)"})
			return
		}

		uid := c.GetInt64("user_id")
		month := core.MonthKey(time.Now())
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		imported, skipped := 0, 0
		var expenseTotal float64
		for _, row := range rows[headerIdx+1:] {
			tx, ok := rowToTransaction(row, cols, month)
			if !ok {
				skipped++
				continue
			}
			if _, err := st.AddTransaction(ctx, uid, tx); err != nil {
				logger.Get().Warn("imported row write failed", zap.Error(err))
				skipped++
				continue
			}
			if tx.Type == models.TxExpense {
				expenseTotal += tx.Amount
			}
			imported++
		}

		if expenseTotal > 0 {
			score := liveScore(ctx, st, uid, month, expenseTotal)
			if err := st.AddMonthExpense(ctx, uid, month, expenseTotal, score, ""); err != nil {
				logger.Get().Error("month expense update failed", zap.Int64("uid", uid), zap.Error(err))
			}
		}

		c.JSON(http.StatusOK, gin.H{"imported": imported, "skipped": skipped, "month": month})
	}
}

type statementColumns struct {
	description, amount, txType, category int
}

// findStatementHeader scans for the first row naming a description and an
// amount column. Type and category columns are optional.
func findStatementHeader(rows [][]string) (int, statementColumns) {
	for i, row := range rows {
		cols := statementColumns{description: -1, amount: -1, txType: -1, category: -1}
		for j, cell := range row {
			switch strings.ToLower(strings.TrimSpace(cell)) {
			case "description", "narration", "details":
				cols.description = j
			case "amount", "value":
				cols.amount = j
			case "type":
				cols.txType = j
			case "category":
				cols.category = j
			}
		}
		if cols.description >= 0 && cols.amount >= 0 {
			return i, cols
		}
	}
	return -1, statementColumns{}
}

func rowToTransaction(row []string, cols statementColumns, month string) (models.Transaction, bool) {
	get := func(idx int) string {
		if idx < 0 || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}
	desc := get(cols.description)
	amount := toAmount(get(cols.amount))
	if desc == "" || amount <= 0 {
		return models.Transaction{}, false
	}
	txType := strings.ToLower(get(cols.txType))
	if txType != models.TxIncome {
		txType = models.TxExpense
	}
	category := get(cols.category)
	if category == "" {
		category = "Other"
	}
	return models.Transaction{
		Description: desc,
		Amount:      amount,
		Type:        txType,
		Category:    category,
		Month:       month,
	}, true
}

func toAmount(s string) float64 {
	s = strings.TrimSpace(strings.TrimPrefix(s, "₹"))
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func readAllRows(content []byte, ext string) ([][]string, error) {
	switch ext {
	case ".csv":
		r := csv.NewReader(bytes.NewReader(content))
		r.FieldsPerRecord = -1 // allow variable columns
		rows, err := r.ReadAll()
		if err != nil {
			return nil, err
		}
		return rows, nil
	case ".xls":
		return nil, errors.New("legacy .xls workbooks are not supported; re-save as .xlsx")
	case ".xlsx":
		f, err := excelize.OpenReader(bytes.NewReader(content))
		if err != nil {
			return nil, err
		}
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return [][]string{}, nil
		}
		rows := [][]string{}
		rs, err := f.Rows(sheets[0])
		if err != nil {
			return nil, err
		}
		for rs.Next() {
			r, err := rs.Columns()
			if err != nil {
				return nil, err
			}
			rows = append(rows, r)
		}
		return rows, nil
	default:
		return nil, io.ErrUnexpectedEOF
	}
}
