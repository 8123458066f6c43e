package tax

import (
	"errors"

	"github.com/shopspring/decimal"
)

// GroupID identifies a presumptive-tax business activity group per
// Circular 40/2021/TT-BTC.
type GroupID int

const (
	GroupDistribution GroupID = iota + 1
	GroupServicesConstruction
	GroupProductionTransport
	GroupOther
	GroupRental
)

// ErrInvalidGroup is returned when a group id does not resolve to a known
// tax group.
var ErrInvalidGroup = errors.New("invalid tax group")

// Group holds the presumptive VAT/PIT rates for one business activity group.
type Group struct {
	ID          GroupID
	Name        string
	ShortName   string
	VATRate     decimal.Decimal // percent
	PITRate     decimal.Decimal // percent
	Description string
	Warning     string
}

var groups = []Group{
	{
		ID:          GroupDistribution,
		Name:        "Phân phối, cung cấp hàng hóa (Bán buôn, bán lẻ)",
		ShortName:   "Thương mại",
		VATRate:     decimal.RequireFromString("1.0"),
		PITRate:     decimal.RequireFromString("0.5"),
		Description: "Cửa hàng tạp hóa, siêu thị mini, bán buôn...",
	},
	{
		ID:          GroupServicesConstruction,
		Name:        "Dịch vụ, xây dựng không bao thầu nguyên vật liệu",
		ShortName:   "Dịch vụ",
		VATRate:     decimal.RequireFromString("5.0"),
		PITRate:     decimal.RequireFromString("2.0"),
		Description: "Lưu trú, sửa chữa, tư vấn, xây dựng nhân công...",
		Warning:     "Lưu ý: Ngành có thuế suất cao nhất. Tránh khai sai từ dịch vụ sang bán hàng.",
	},
	{
		ID:          GroupProductionTransport,
		Name:        "Sản xuất, vận tải, dịch vụ có gắn với hàng hóa",
		ShortName:   "Sản xuất/Vận tải",
		VATRate:     decimal.RequireFromString("3.0"),
		PITRate:     decimal.RequireFromString("1.5"),
		Description: "Nhà hàng, quán ăn, xưởng gia công, vận tải hàng hóa...",
	},
	{
		ID:          GroupOther,
		Name:        "Hoạt động kinh doanh khác",
		ShortName:   "Khác",
		VATRate:     decimal.RequireFromString("2.0"),
		PITRate:     decimal.RequireFromString("1.0"),
		Description: "Các hoạt động không thuộc các nhóm trên.",
	},
	{
		ID:          GroupRental,
		Name:        "Cho thuê tài sản (Doanh thu > 100tr/năm)",
		ShortName:   "Cho thuê tài sản",
		VATRate:     decimal.RequireFromString("5.0"),
		PITRate:     decimal.RequireFromString("5.0"),
		Description: "Cho thuê nhà, mặt bằng, phương tiện...",
		Warning:     "Ngưỡng chịu thuế: Doanh thu > 8.33 triệu/tháng.",
	},
}

// Groups returns the full rate table in declaration order.
func Groups() []Group {
	out := make([]Group, len(groups))
	copy(out, groups)
	return out
}

// GroupByID resolves a group id against the rate table.
func GroupByID(id GroupID) (Group, error) {
	for _, g := range groups {
		if g.ID == id {
			return g, nil
		}
	}
	return Group{}, ErrInvalidGroup
}

// GroupShortName returns the group's short display name, or "Khác" when the
// id is unknown. Used for bucketing income distribution on the dashboard.
func GroupShortName(id GroupID) string {
	g, err := GroupByID(id)
	if err != nil {
		return "Khác"
	}
	return g.ShortName
}
