package models

// DefaultFxLabel is shown when the FX document carries no rate label.
const DefaultFxLabel = "臺銀匯率"

// FxQuote is the FX document.
type FxQuote struct {
	QuotedAt *string `json:"quotedAt"`
	UsdTwd   *UsdTwd `json:"usdTwd"`
	Source   string  `json:"source,omitempty"`
}

// UsdTwd holds the Bank of Taiwan USD/TWD board rates. Only SpotSelling is
// used for conversion.
type UsdTwd struct {
	SpotSelling *float64 `json:"spotSelling"`
	SpotBuying  *float64 `json:"spotBuying,omitempty"`
	CashSelling *float64 `json:"cashSelling,omitempty"`
	CashBuying  *float64 `json:"cashBuying,omitempty"`
	Label       *string  `json:"label"`
}

// Rate returns the USD→TWD conversion rate, or nil when the quote has none.
func (f *FxQuote) Rate() *float64 {
	if f == nil || f.UsdTwd == nil {
		return nil
	}
	return f.UsdTwd.SpotSelling
}

// LabelOr returns the quote label or def when it is missing.
func (f *FxQuote) LabelOr(def string) string {
	if f == nil || f.UsdTwd == nil || f.UsdTwd.Label == nil {
		return def
	}
	return *f.UsdTwd.Label
}

// QuotedAtOr returns the quote timestamp or def when it is missing.
func (f *FxQuote) QuotedAtOr(def string) string {
	if f == nil || f.QuotedAt == nil {
		return def
	}
	return *f.QuotedAt
}
