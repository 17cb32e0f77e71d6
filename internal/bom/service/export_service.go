package service

import (
	"context"
	"fmt"

	"github.com/bitfantasy/garment-bom/internal/bom/entity"
	"github.com/bitfantasy/garment-bom/internal/bom/repository"
	"github.com/xuri/excelize/v2"
)

// ExportService 配料表导出
type ExportService struct {
	variantRepo *repository.VariantRepository
	styleRepo   *repository.StyleRepository
}

func NewExportService(variantRepo *repository.VariantRepository, styleRepo *repository.StyleRepository) *ExportService {
	return &ExportService{
		variantRepo: variantRepo,
		styleRepo:   styleRepo,
	}
}

var bomExportHeaders = []string{
	"序号", "物料名称", "物料颜色", "用量", "单位", "供应商",
}

const fullSizeLabel = "通码"

// ExportVariantBOM 导出指定颜色版本的配料表为xlsx
// 固定列之后按规格出现顺序追加尺码列，单元格为 "规格值 单位"
func (s *ExportService) ExportVariantBOM(ctx context.Context, styleID, variantID uint) (*excelize.File, string, error) {
	style, err := s.styleRepo.FindByID(ctx, styleID)
	if err != nil {
		return nil, "", fmt.Errorf("款号 #%d 不存在: %w", styleID, err)
	}
	variant, err := s.variantRepo.FindDetail(ctx, variantID)
	if err != nil {
		return nil, "", fmt.Errorf("颜色版本 #%d 不存在: %w", variantID, err)
	}
	if variant.StyleID != styleID {
		return nil, "", fmt.Errorf("颜色版本 #%d 不属于款号 #%d: %w", variantID, styleID, repository.ErrNotFound)
	}

	// 尺码列按首次出现顺序排列
	var sizeLabels []string
	sizeCols := make(map[string]int)
	for _, item := range variant.BOMItems {
		for _, spec := range item.SpecDetails {
			label := specSizeLabel(spec)
			if _, ok := sizeCols[label]; !ok {
				sizeCols[label] = len(bomExportHeaders) + len(sizeLabels) + 1
				sizeLabels = append(sizeLabels, label)
			}
		}
	}

	f := excelize.NewFile()
	sheet := "配料表"
	f.SetSheetName("Sheet1", sheet)

	// 表头样式: 加粗
	boldStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	headers := append(append([]string{}, bomExportHeaders...), sizeLabels...)
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, boldStyle)
	}

	for rowIdx, item := range variant.BOMItems {
		row := rowIdx + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), rowIdx+1)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), item.MaterialName)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), item.MaterialColorText)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), item.Usage)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), item.Unit)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), item.Supplier)

		for _, spec := range item.SpecDetails {
			col, _ := excelize.ColumnNumberToName(sizeCols[specSizeLabel(spec)])
			value := spec.SpecValue
			if spec.SpecUnit != "" {
				value = value + " " + spec.SpecUnit
			}
			f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, row), value)
		}
	}

	// 列宽
	colWidths := []float64{6, 20, 14, 8, 6, 16}
	for i, w := range colWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, col, col, w)
	}
	for i := range sizeLabels {
		col, _ := excelize.ColumnNumberToName(len(bomExportHeaders) + i + 1)
		f.SetColWidth(sheet, col, col, 10)
	}

	filename := fmt.Sprintf("配料表_%s_%s.xlsx", style.StyleNo, variant.ColorName)
	return f, filename, nil
}

func specSizeLabel(spec entity.SpecDetail) string {
	if spec.Size == nil || *spec.Size == "" {
		return fullSizeLabel
	}
	return *spec.Size
}
