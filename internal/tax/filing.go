package tax

import (
	"fmt"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
)

// FilingFormCode is the tax-authority template this export mimics.
const FilingFormCode = "01/CNKD"

// BuildFilingDocument renders a 01/CNKD declaration for upload to
// thuedientu.gdt.gov.vn. Taxpayer name and code are free text and are
// XML-escaped by the document builder.
func BuildFilingDocument(revenue, totalTax decimal.Decimal, taxCode, name string, filedAt time.Time) (string, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("HSoThueDTu")
	form := root.CreateElement("HSoKhaiThue")

	info := form.CreateElement("TTinChung")
	info.CreateElement("MSo").SetText(FilingFormCode)
	info.CreateElement("Ten").SetText("Tờ khai thuế đối với cá nhân kinh doanh")
	info.CreateElement("NguoiNopThue").SetText(name)
	info.CreateElement("MaSoThue").SetText(taxCode)
	info.CreateElement("NgayKhai").SetText(filedAt.Format("2006-01-02"))

	body := form.CreateElement("NoiDung")
	body.CreateElement("DoanhThu").SetText(revenue.StringFixed(0))
	body.CreateElement("ThuePhaiNop").SetText(totalTax.StringFixed(0))

	doc.Indent(4)
	out, err := doc.WriteToString()
	if err != nil {
		return "", fmt.Errorf("failed to serialize filing document: %w", err)
	}
	return out, nil
}

// FilingFileName returns the download name for a declaration generated at t.
func FilingFileName(t time.Time) string {
	return fmt.Sprintf("ToKhai_01_CNKD_%d.xml", t.UnixMilli())
}
