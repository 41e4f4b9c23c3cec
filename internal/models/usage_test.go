package models

import (
	"encoding/json"
	"testing"
)

func TestUsageSeries_Decode(t *testing.T) {
	doc := `{
		"asOf": "2026-02-13 09:00:00",
		"days": [
			{"date": "2026-02-12", "total": {"costUsd": 1.5, "calls": 12, "tokens": 3400},
			 "byModel": {"zeta": {"costUsd": 1}, "alpha": {"costUsd": 0.5}}},
			{"date": "2026-02-13", "total": {"costUsd": null}, "byModel": {}}
		]
	}`

	var usage UsageSeries
	if err := json.Unmarshal([]byte(doc), &usage); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}

	if got := usage.AsOfOr(""); got != "2026-02-13 09:00:00" {
		t.Errorf("AsOfOr() = %q", got)
	}
	if len(usage.Days) != 2 {
		t.Fatalf("len(Days) = %d, want 2", len(usage.Days))
	}

	first := usage.Days[0]
	if first.CostOrZero() != 1.5 {
		t.Errorf("CostOrZero() = %v, want 1.5", first.CostOrZero())
	}
	if first.Total.Calls == nil || *first.Total.Calls != 12 {
		t.Errorf("Calls = %v, want 12", first.Total.Calls)
	}
	if len(first.ByModel) != 2 || first.ByModel[0].Name != "zeta" || first.ByModel[1].Name != "alpha" {
		t.Errorf("ByModel order = %+v, want zeta then alpha", first.ByModel)
	}

	latest := usage.Latest()
	if latest == nil || latest.Date != "2026-02-13" {
		t.Fatalf("Latest() = %+v", latest)
	}
	if latest.Cost() != nil {
		t.Errorf("Cost() = %v, want nil for null costUsd", *latest.Cost())
	}
	if latest.CostOrZero() != 0 {
		t.Errorf("CostOrZero() = %v, want 0", latest.CostOrZero())
	}
}

func TestUsageSeries_MissingFields(t *testing.T) {
	var usage UsageSeries
	if err := json.Unmarshal([]byte(`{}`), &usage); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if usage.AsOfOr("—") != "—" {
		t.Errorf("AsOfOr() = %q, want default", usage.AsOfOr("—"))
	}
	if usage.Latest() != nil {
		t.Error("Latest() should be nil for an empty series")
	}

	var nilSeries *UsageSeries
	if nilSeries.Records() != nil || nilSeries.Latest() != nil {
		t.Error("nil series should have no records")
	}

	var day DailyRecord
	if err := json.Unmarshal([]byte(`{"date": "d1"}`), &day); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if day.Cost() != nil || day.ByModel != nil {
		t.Errorf("day without total/byModel = %+v", day)
	}
}

func TestModelCosts_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantNames []string
		wantErr   bool
	}{
		{"Ordered", `{"b": {"costUsd": 1}, "a": {"costUsd": 2}, "c": {"costUsd": 3}}`, []string{"b", "a", "c"}, false},
		{"Empty", `{}`, []string{}, false},
		{"Null", `null`, nil, false},
		{"DuplicateKeepsFirstPosition", `{"a": {"costUsd": 1}, "b": {}, "a": {"costUsd": 5}}`, []string{"a", "b"}, false},
		{"NotObject", `[1, 2]`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m ModelCosts
			err := m.UnmarshalJSON([]byte(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("UnmarshalJSON() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(m) != len(tt.wantNames) {
				t.Fatalf("len = %d, want %d", len(m), len(tt.wantNames))
			}
			for i, name := range tt.wantNames {
				if m[i].Name != name {
					t.Errorf("m[%d].Name = %q, want %q", i, m[i].Name, name)
				}
			}
		})
	}
}

func TestModelCosts_DuplicateTakesLastValue(t *testing.T) {
	var m ModelCosts
	if err := m.UnmarshalJSON([]byte(`{"a": {"costUsd": 1}, "a": {"costUsd": 5}}`)); err != nil {
		t.Fatalf("UnmarshalJSON() failed: %v", err)
	}
	if len(m) != 1 || m[0].CostOrZero() != 5 {
		t.Errorf("m = %+v, want single entry with cost 5", m)
	}
}

func TestModelCost_MissingCost(t *testing.T) {
	var m ModelCosts
	if err := m.UnmarshalJSON([]byte(`{"a": {"calls": 3}, "b": {"costUsd": "oops"}}`)); err != nil {
		t.Fatalf("UnmarshalJSON() failed: %v", err)
	}
	for _, entry := range m {
		if entry.CostUSD != nil {
			t.Errorf("%s CostUSD = %v, want nil", entry.Name, *entry.CostUSD)
		}
		if entry.CostOrZero() != 0 {
			t.Errorf("%s CostOrZero() = %v, want 0", entry.Name, entry.CostOrZero())
		}
	}
	if m[0].Calls == nil || *m[0].Calls != 3 {
		t.Errorf("Calls = %v, want 3", m[0].Calls)
	}
}

func TestFxQuote_Accessors(t *testing.T) {
	var fx FxQuote
	doc := `{"quotedAt": "2026-02-13 10:30", "usdTwd": {"spotSelling": 32.85, "label": "即期賣出"}}`
	if err := json.Unmarshal([]byte(doc), &fx); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if r := fx.Rate(); r == nil || *r != 32.85 {
		t.Errorf("Rate() = %v, want 32.85", r)
	}
	if fx.LabelOr(DefaultFxLabel) != "即期賣出" {
		t.Errorf("LabelOr() = %q", fx.LabelOr(DefaultFxLabel))
	}
	if fx.QuotedAtOr("") != "2026-02-13 10:30" {
		t.Errorf("QuotedAtOr() = %q", fx.QuotedAtOr(""))
	}

	var empty FxQuote
	if err := json.Unmarshal([]byte(`{"usdTwd": null}`), &empty); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if empty.Rate() != nil {
		t.Error("Rate() should be nil without usdTwd")
	}
	if empty.LabelOr(DefaultFxLabel) != DefaultFxLabel {
		t.Errorf("LabelOr() = %q, want default", empty.LabelOr(DefaultFxLabel))
	}

	var nilQuote *FxQuote
	if nilQuote.Rate() != nil || nilQuote.QuotedAtOr("x") != "x" {
		t.Error("nil quote should fall back to defaults")
	}
}

func TestReport_Helpers(t *testing.T) {
	var nilReport *Report
	if nilReport.HasData() || nilReport.Cards() != nil || nilReport.DailyValues() != nil {
		t.Error("nil report should be empty")
	}

	r := &Report{
		DayCount: 2,
		Daily: []DailyPoint{
			{Date: "d1", CostUSD: 5},
			{Date: "d2", CostUSD: 7},
		},
	}
	if !r.HasData() {
		t.Error("HasData() = false, want true")
	}
	values := r.DailyValues()
	if len(values) != 2 || values[0] != 5 || values[1] != 7 {
		t.Errorf("DailyValues() = %v", values)
	}
	if len(r.Cards()) != 3 {
		t.Errorf("Cards() len = %d, want 3", len(r.Cards()))
	}
}
